package ports

// TokenIssuer mints bearer tokens for a principal.
type TokenIssuer interface {
	Issue(principalID string) (string, error)
}

// TokenVerifier validates a bearer token and returns the principal ID it
// carries. Failures are domain.ErrTokenExpired, domain.ErrInvalidSignature or
// domain.ErrTokenMalformed.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
