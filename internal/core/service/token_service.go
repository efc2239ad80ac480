package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService issues and verifies HS256 bearer tokens whose subject is the
// principal ID.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithIssuer sets the iss claim written on issue and required on verify.
func WithIssuer(issuer string) TokenOption {
	return func(s *TokenService) { s.issuer = issuer }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret string, ttl time.Duration, opts ...TokenOption) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	s := &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue returns a signed token for principalID expiring after the configured TTL.
func (s *TokenService) Issue(principalID string) (string, error) {
	if principalID == "" {
		return "", domain.ErrTokenMalformed
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   principalID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks expiry first, then the signature, and returns the subject.
func (s *TokenService) Verify(token string) (string, error) {
	// Expiry is decided on the unverified claims so that an expired token is
	// reported as expired whatever its signature.
	var unverified jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &unverified); err != nil {
		return "", domain.ErrTokenMalformed
	}
	if unverified.ExpiresAt == nil {
		return "", domain.ErrTokenMalformed
	}
	if !s.now().Before(unverified.ExpiresAt.Time) {
		return "", domain.ErrTokenExpired
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", domain.ErrInvalidSignature
	default:
		return "", domain.ErrTokenMalformed
	}

	if claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}
