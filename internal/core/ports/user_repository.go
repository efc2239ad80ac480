package ports

import (
	"context"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

// UserUpdate carries the account fields to change. Nil fields are left as is.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines persistence for accounts (the credential store).
type UserRepository interface {
	// Create inserts user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
}
