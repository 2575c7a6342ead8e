package ports

import (
	"context"
	"time"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// ActivityUpdate carries a partial update: nil fields are left untouched.
type ActivityUpdate struct {
	UserID      *string
	Title       *string
	Description *string
	Course      *string
	Date        *time.Time
	Status      *domain.ActivityStatus
	Grades      *string
}

// ActivityRepository defines persistence operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	// List returns all activities ordered by date descending.
	List(ctx context.Context) ([]*domain.Activity, error)
	// Update applies the non-nil fields of upd and returns the updated document.
	Update(ctx context.Context, id string, upd ActivityUpdate) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}
