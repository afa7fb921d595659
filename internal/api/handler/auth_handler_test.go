package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	getFn func(ctx context.Context, caller domain.Caller, id string) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context, caller domain.Caller) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserService) ListByRole(ctx context.Context, caller domain.Caller, role string) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Get(ctx context.Context, caller domain.Caller, id string) (*domain.User, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubUserService) Update(ctx context.Context, caller domain.Caller, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	return nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			if input.Name != "Carlos" || input.Email != "carlos@example.com" || input.Role != "client" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token123", &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: input.Role}, nil
		},
	}
	h := NewAuthHandler(stub, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Carlos","email":"carlos@example.com","password":"secret1","role":"client"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Carlos" || user["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"secret1"}`)

	_ = h.Register(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register", "not-json")

	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register", `{"name":"NoEmail"}`)

	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "priya@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "u1", Name: "Priya", Role: "admin"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"priya@example.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, &stubUserService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"priya@example.com","password":"bad"}`)

	_ = h.Login(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	users := &stubUserService{
		getFn: func(ctx context.Context, caller domain.Caller, id string) (*domain.User, error) {
			if id != "u1" || caller.ID != "u1" {
				t.Fatalf("unexpected lookup: caller=%+v id=%s", caller, id)
			}
			return &domain.User{ID: "u1", Name: "Priya", Role: "admin"}, nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, users)

	c, rec := newTestContext(t, http.MethodGet, "/v1/auth/me", "")
	c.Set("user_id", "u1")
	c.Set("role", "admin")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["name"] != "Priya" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/auth/me", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
