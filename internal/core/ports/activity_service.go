package ports

import (
	"context"
	"time"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// CreateActivityInput carries all data needed to create a new activity.
// ActorID is the authenticated admin; OwnerID optionally assigns the
// activity to another user and defaults to the actor when empty.
type CreateActivityInput struct {
	ActorID     string
	OwnerID     string
	Title       string
	Description string
	Course      string
	Date        time.Time
	Status      string
	Grades      string
}

// ActivityService defines use-case operations for activities.
type ActivityService interface {
	Create(ctx context.Context, in CreateActivityInput) (*domain.Activity, error)
	// List returns every activity regardless of owner, date descending.
	List(ctx context.Context) ([]*domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	Update(ctx context.Context, id string, upd ActivityUpdate) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}
