package ports

import (
	"context"
	"time"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// CreateProjectInput carries the fields for a new project. Title, ClientID,
// ServiceID, Budget and Deadline are required.
type CreateProjectInput struct {
	Title             string
	Description       string
	ClientID          string
	ServiceID         string
	Budget            float64
	AssignedEmployees []string
	Deadline          time.Time
}

// UpdateProjectInput carries a partial project update. Nil fields are left
// untouched; a non-nil field replaces the stored value, so a zero budget or
// an empty employee set are expressible.
type UpdateProjectInput struct {
	Title             *string
	Description       *string
	ClientID          *string
	ServiceID         *string
	Budget            *float64
	AssignedEmployees *[]string
	Status            *domain.ProjectStatus
	Deadline          *time.Time
}

// ProjectDetail is a project with its references resolved to display fields.
type ProjectDetail struct {
	Project   *domain.Project
	Client    *domain.UserRef
	Service   *domain.ServiceRef
	Employees []domain.UserRef
}

// ProjectService governs the project lifecycle and role-conditioned
// visibility.
type ProjectService interface {
	// Create registers a new project. Admin only.
	Create(ctx context.Context, caller domain.Caller, input CreateProjectInput) (*ProjectDetail, error)
	Get(ctx context.Context, caller domain.Caller, id string) (*ProjectDetail, error)
	// ListAll returns every project. Admin only.
	ListAll(ctx context.Context, caller domain.Caller) ([]*ProjectDetail, error)
	// ListMine returns the caller's projects: owned for clients, assigned
	// for employees. Other roles are denied.
	ListMine(ctx context.Context, caller domain.Caller) ([]*ProjectDetail, error)
	// Update applies a partial update. Admin only.
	Update(ctx context.Context, caller domain.Caller, id string, input UpdateProjectInput) (*ProjectDetail, error)
	// UpdateStatus writes one of the four allowed statuses. The caller must
	// be an employee assigned to the project.
	UpdateStatus(ctx context.Context, caller domain.Caller, id string, status domain.ProjectStatus) (*ProjectDetail, error)
	// Delete hard-deletes the project without cascading to messages.
	// Admin only.
	Delete(ctx context.Context, caller domain.Caller, id string) error
}
