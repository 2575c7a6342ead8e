package ports

import (
	"context"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// RegisterInput carries the registration form fields. AdminCode is optional;
// when it matches the server-held secret the account is created as admin.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
	AdminCode string
}

// RegisterResult reports whether the new account was granted the admin role.
// It never carries the password or its hash.
type RegisterResult struct {
	User    *domain.User
	IsAdmin bool
}

// AuthService implements registration, login and user queries.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	// Login returns a signed session token and the sanitized user on success.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ListUsers returns all accounts newest-first, hashes stripped.
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// Profile returns the sanitized account for the given id.
	Profile(ctx context.Context, id string) (*domain.User, error)
}
