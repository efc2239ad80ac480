package domain

import "time"

// Role is the closed set of account kinds a principal can hold.
type Role string

const (
	RoleStartup  Role = "startup"
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStartup, RoleInvestor, RoleAdmin:
		return true
	default:
		return false
	}
}

// SelfRegistrable reports whether an account with this role may be created
// through the public registration endpoint.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleStartup, RoleInvestor:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}

// User models an account in the credential store.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Principal returns the identity view of u that travels with a request.
func (u *User) Principal() *Principal {
	return &Principal{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
