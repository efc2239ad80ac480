package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	accountFn  func(ctx context.Context, userID string) (*domain.User, error)
	updateFn   func(ctx context.Context, userID string, in ports.UpdateAccountInput) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Account(ctx context.Context, userID string) (*domain.User, error) {
	return s.accountFn(ctx, userID)
}

func (s *stubAuthService) UpdateAccount(ctx context.Context, userID string, in ports.UpdateAccountInput) (*ports.AuthResult, error) {
	return s.updateFn(ctx, userID, in)
}

func newTestContext(method, target, body string, p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if p != nil {
		req = req.WithContext(domain.ContextWithPrincipal(req.Context(), p))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Name != "alice" || in.Role != domain.RoleStartup || in.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				User:  &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: in.Role, PasswordHash: "hash"},
				Token: "tok",
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/users/register",
		`{"name":"alice","email":"a@example.com","password":"secret1","role":"startup"}`, nil)
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
	if resp["_id"] != "u1" || resp["name"] != "alice" || resp["role"] != "startup" || resp["token"] != "tok" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must not be serialised")
	}
}

func TestUserHandler_Register_Validation(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	cases := map[string]string{
		"missing name":   `{"email":"a@example.com","password":"secret1","role":"startup"}`,
		"bad email":      `{"name":"a","email":"nope","password":"secret1","role":"startup"}`,
		"short password": `{"name":"a","email":"a@example.com","password":"123","role":"startup"}`,
		"admin role":     `{"name":"a","email":"a@example.com","password":"secret1","role":"admin"}`,
		"not json":       `{"name":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/api/users/register", body, nil)
			err := h.Register(c)
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUserHandler_Register_PasswordMessage(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})
	c, _ := newTestContext(http.MethodPost, "/api/users/register",
		`{"name":"a","email":"a@example.com","password":"123","role":"investor"}`, nil)

	err := h.Register(c)
	if err == nil || err.Error() != "password must be at least 6 characters" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserHandler_Login_PropagatesInvalidCredentials(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})
	c, _ := newTestContext(http.MethodPost, "/api/users/login", `{"email":"a@example.com","password":"x"}`, nil)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_Profile(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		accountFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Bea", Email: "bea@example.com", Role: domain.RoleInvestor}, nil
		},
	})
	c, rec := newTestContext(http.MethodGet, "/api/users/profile", "", &domain.Principal{ID: "u7", Role: domain.RoleInvestor})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["_id"] != "u7" || resp["email"] != "bea@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["token"]; ok {
		t.Fatalf("profile must not include a token")
	}
}

func TestUserHandler_Profile_NoPrincipal(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})
	c, _ := newTestContext(http.MethodGet, "/api/users/profile", "", nil)
	if err := h.Profile(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		updateFn: func(_ context.Context, id string, in ports.UpdateAccountInput) (*ports.AuthResult, error) {
			if in.Name == nil || *in.Name != "New" || in.Email != nil || in.Password != nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{User: &domain.User{ID: id, Name: *in.Name}, Token: "fresh"}, nil
		},
	})
	c, rec := newTestContext(http.MethodPut, "/api/users/profile", `{"name":"New"}`, &domain.Principal{ID: "u1"})

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "fresh" || resp["name"] != "New" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
