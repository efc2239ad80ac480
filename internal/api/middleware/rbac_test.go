package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, p *domain.Principal) (bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if p != nil {
		req = req.WithContext(domain.ContextWithPrincipal(req.Context(), p))
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err
}

func TestRequireRole_Allows(t *testing.T) {
	mw := RequireRole(domain.RoleStartup, domain.RoleAdmin)
	for _, role := range []domain.Role{domain.RoleStartup, domain.RoleAdmin} {
		called, err := runGuard(t, mw, &domain.Principal{ID: "u", Role: role})
		if err != nil || !called {
			t.Fatalf("role %s: called=%v err=%v", role, called, err)
		}
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	called, err := runGuard(t, RequireRole(domain.RoleStartup), &domain.Principal{ID: "u", Role: domain.RoleInvestor})
	if called {
		t.Fatalf("should not reach next handler")
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	called, err := runGuard(t, RequireRole(domain.RoleInvestor), nil)
	if called {
		t.Fatalf("should not reach next handler")
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRequireRole_PanicsOnUnknownRole(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown role")
		}
	}()
	RequireRole("superuser")
}

func TestRequireRole_PanicsWithoutRoles(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty role set")
		}
	}()
	RequireRole()
}
