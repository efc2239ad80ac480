package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after
// Authenticate. An unknown role is a wiring mistake and panics at
// registration.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	if len(roles) == 0 {
		panic("middleware: RequireRole needs at least one role")
	}
	for _, r := range roles {
		if !r.Valid() {
			panic(fmt.Sprintf("middleware: RequireRole: unknown role %q", r))
		}
	}
	allowed := append([]domain.Role(nil), roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := domain.PrincipalFromContext(c.Request().Context())
			if !ok {
				return reject("no_principal", domain.ErrUnauthorized)
			}
			if !p.HasRole(allowed...) {
				return reject("forbidden_role", domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
