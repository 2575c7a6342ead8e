package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

// ListCache abstracts the cached activity listing (Redis). A nil cache
// disables caching entirely.
type ListCache interface {
	Get(ctx context.Context) ([]*domain.Activity, bool)
	Set(ctx context.Context, activities []*domain.Activity)
	Invalidate(ctx context.Context)
}

// ActivityService implements activity use cases. Mutations are admin-only;
// the role gate enforces that upstream, so the service assumes a vetted actor.
type ActivityService struct {
	repo   ports.ActivityRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, cache ListCache, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new activity. Title, course and date are required;
// string fields are trimmed; status defaults to Pending; the owner defaults
// to the acting admin when no explicit owner is supplied.
func (s *ActivityService) Create(ctx context.Context, in ports.CreateActivityInput) (*domain.Activity, error) {
	title := strings.TrimSpace(in.Title)
	course := strings.TrimSpace(in.Course)
	if title == "" || course == "" || in.Date.IsZero() {
		return nil, domain.ErrMissingActivityFields
	}

	status := domain.ActivityStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	owner := in.OwnerID
	if owner == "" {
		owner = in.ActorID
	}

	activity := &domain.Activity{
		UserID:      owner,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Course:      course,
		Date:        in.Date,
		Status:      status,
		Grades:      strings.TrimSpace(in.Grades),
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create activity")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info().Str("activity_id", created.ID).Str("owner", owner).Msg("activity created")
	return created, nil
}

// List returns all activities regardless of owner, date descending. The
// result is served from cache when fresh and re-cached after a store read.
func (s *ActivityService) List(ctx context.Context) ([]*domain.Activity, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, activities)
	}
	return activities, nil
}

// Get retrieves a single activity by id.
func (s *ActivityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update: only supplied fields overwrite, untouched
// fields keep their prior values.
func (s *ActivityService) Update(ctx context.Context, id string, upd ports.ActivityUpdate) (*domain.Activity, error) {
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		if t == "" {
			return nil, domain.ErrMissingActivityFields
		}
		upd.Title = &t
	}
	if upd.Course != nil {
		c := strings.TrimSpace(*upd.Course)
		if c == "" {
			return nil, domain.ErrMissingActivityFields
		}
		upd.Course = &c
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info().Str("activity_id", id).Msg("activity updated")
	return updated, nil
}

// Delete removes an activity. Deleting an unknown id fails with
// domain.ErrActivityNotFound rather than silently succeeding.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info().Str("activity_id", id).Msg("activity deleted")
	return nil
}
