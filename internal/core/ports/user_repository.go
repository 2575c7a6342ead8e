package ports

import (
	"context"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users ordered newest-first.
	List(ctx context.Context) ([]*domain.User, error)
}
