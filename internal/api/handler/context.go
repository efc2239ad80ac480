package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

// ctxPrincipal returns the principal attached by the Authenticate middleware.
// Its absence means the route was registered without authentication.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := domain.PrincipalFromContext(c.Request().Context())
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return p, nil
}
