package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
	"github.com/vcplatform/marketplace/internal/metrics"
)

// Authenticate verifies the bearer token, loads the principal it names and
// attaches it to the request context. Every rejection is a 401; a store
// failure during lookup propagates as an internal error.
func Authenticate(verifier ports.TokenVerifier, resolver ports.PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return reject("missing_token", fmt.Errorf("%w, no token", domain.ErrUnauthorized))
			}

			principalID, err := verifier.Verify(token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired_token"
				}
				return reject(reason, fmt.Errorf("%w, %w", domain.ErrUnauthorized, err))
			}

			ctx := c.Request().Context()
			principal, err := resolver.ResolvePrincipal(ctx, principalID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return reject("unknown_principal", fmt.Errorf("%w, user not found", domain.ErrUnauthorized))
				}
				return fmt.Errorf("resolve principal: %w", err)
			}

			c.SetRequest(c.Request().WithContext(domain.ContextWithPrincipal(ctx, principal)))
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func reject(reason string, err error) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return err
}
