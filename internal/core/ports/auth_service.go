package ports

import (
	"context"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

// RegisterInput is the data needed to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateAccountInput carries optional account changes.
type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Password *string
}

// AuthResult pairs an account with a freshly issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService covers account registration, login and self-service updates.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Account(ctx context.Context, userID string) (*domain.User, error)
	UpdateAccount(ctx context.Context, userID string, input UpdateAccountInput) (*AuthResult, error)
}

// PrincipalResolver loads the principal a verified token refers to.
type PrincipalResolver interface {
	// ResolvePrincipal returns domain.ErrUserNotFound when id no longer exists.
	ResolvePrincipal(ctx context.Context, id string) (*domain.Principal, error)
}
