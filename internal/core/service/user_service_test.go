package service

import (
	"context"
	"errors"
	"testing"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

func newUserServiceFixture() (*UserService, *stubUserRepo, domain.Caller, *domain.User) {
	users := newStubUserRepo()
	admin := users.add("Priya", "priya@agency.test", domain.RoleAdmin)
	client := users.add("Carlos", "carlos@client.test", domain.RoleClient)
	return NewUserService(users, discardLogger), users, domain.Caller{ID: admin.ID, Role: domain.RoleAdmin}, client
}

func TestUserService_List_AdminOnly(t *testing.T) {
	svc, _, asAdmin, client := newUserServiceFixture()

	all, err := svc.List(context.Background(), asAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 users, got %d", len(all))
	}

	_, err = svc.List(context.Background(), domain.Caller{ID: client.ID, Role: domain.RoleClient})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_ListByRole(t *testing.T) {
	svc, users, asAdmin, _ := newUserServiceFixture()
	users.add("Eve", "eve@agency.test", domain.RoleEmployee)

	employees, err := svc.ListByRole(context.Background(), asAdmin, domain.RoleEmployee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 1 || employees[0].Name != "Eve" {
		t.Errorf("wrong employees: %+v", employees)
	}

	if _, err := svc.ListByRole(context.Background(), asAdmin, "superuser"); !domain.IsValidation(err) {
		t.Errorf("invalid role: expected validation error, got %v", err)
	}
}

func TestUserService_Update_SelfService(t *testing.T) {
	svc, _, _, client := newUserServiceFixture()
	asClient := domain.Caller{ID: client.ID, Role: domain.RoleClient}

	name := "Carlos M."
	updated, err := svc.Update(context.Background(), asClient, client.ID, ports.UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Carlos M." {
		t.Errorf("name = %q", updated.Name)
	}
	// Untouched fields survive.
	if updated.Email != "carlos@client.test" {
		t.Errorf("email must be untouched, got %q", updated.Email)
	}
}

func TestUserService_Update_OtherUserDenied(t *testing.T) {
	svc, users, _, client := newUserServiceFixture()
	other := users.add("Dana", "dana@client.test", domain.RoleClient)

	name := "hax"
	_, err := svc.Update(context.Background(), domain.Caller{ID: client.ID, Role: domain.RoleClient}, other.ID, ports.UpdateUserInput{Name: &name})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Update_RoleChange(t *testing.T) {
	svc, _, asAdmin, client := newUserServiceFixture()

	role := domain.RoleEmployee
	updated, err := svc.Update(context.Background(), asAdmin, client.ID, ports.UpdateUserInput{Role: &role})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != domain.RoleEmployee {
		t.Errorf("role = %q", updated.Role)
	}

	// Non-admins cannot change a role, not even their own.
	back := domain.RoleAdmin
	_, err = svc.Update(context.Background(), domain.Caller{ID: client.ID, Role: domain.RoleEmployee}, client.ID, ports.UpdateUserInput{Role: &back})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Update_PasswordRehashed(t *testing.T) {
	svc, users, _, client := newUserServiceFixture()
	asClient := domain.Caller{ID: client.ID, Role: domain.RoleClient}

	password := "new-pass"
	if _, err := svc.Update(context.Background(), asClient, client.ID, ports.UpdateUserInput{Password: &password}); err != nil {
		t.Fatal(err)
	}
	stored := users.byID[client.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "new-pass" {
		t.Errorf("password must be stored as a hash, got %q", stored.PasswordHash)
	}
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	svc, users, asAdmin, client := newUserServiceFixture()
	users.add("Dana", "dana@client.test", domain.RoleClient)

	email := "dana@client.test"
	_, err := svc.Update(context.Background(), asAdmin, client.ID, ports.UpdateUserInput{Email: &email})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, users, asAdmin, client := newUserServiceFixture()

	if err := svc.Delete(context.Background(), domain.Caller{ID: client.ID, Role: domain.RoleClient}, client.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), asAdmin, client.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := users.byID[client.ID]; ok {
		t.Error("user must be hard-deleted")
	}
	if err := svc.Delete(context.Background(), asAdmin, client.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second delete: expected ErrUserNotFound, got %v", err)
	}
}
