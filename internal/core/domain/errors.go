package domain

import "errors"

// Authentication / authorization.
var (
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("not authorized for this role")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenMalformed   = errors.New("malformed token")
)

// Accounts.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Profiles.
var (
	ErrStartupNotFound  = errors.New("startup profile not found")
	ErrStartupExists    = errors.New("startup profile already exists for this user")
	ErrInvestorNotFound = errors.New("investor profile not found")
	ErrInvestorExists   = errors.New("investor profile already exists for this user")
)

// ValidationError reports input that failed field validation. Its message is
// safe to return to clients verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
