package ports

import "github.com/acadtrack/acadtrack/internal/core/domain"

// TokenClaims is the identity a verified token proves.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService issues and verifies signed, time-limited session tokens.
// Verification is binary: a token either resolves to claims or fails with
// domain.ErrTokenExpired / domain.ErrTokenInvalid.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (TokenClaims, error)
}
