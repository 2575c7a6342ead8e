package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

type stubActivityRepo struct {
	activities map[string]*domain.Activity
	nextID     int
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{activities: make(map[string]*domain.Activity)}
}

func cloneActivity(a *domain.Activity) *domain.Activity {
	clone := *a
	return &clone
}

func (r *stubActivityRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.nextID++
	copy := cloneActivity(a)
	copy.ID = fmt.Sprintf("act-%d", r.nextID)
	now := time.Now().UTC()
	copy.CreatedAt = now
	copy.UpdatedAt = now
	r.activities[copy.ID] = cloneActivity(copy)
	return cloneActivity(copy), nil
}

func (r *stubActivityRepo) FindByID(_ context.Context, id string) (*domain.Activity, error) {
	if a, ok := r.activities[id]; ok {
		return cloneActivity(a), nil
	}
	return nil, domain.ErrActivityNotFound
}

func (r *stubActivityRepo) List(_ context.Context) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, cloneActivity(a))
	}
	return out, nil
}

func (r *stubActivityRepo) Update(_ context.Context, id string, upd ports.ActivityUpdate) (*domain.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if upd.UserID != nil {
		a.UserID = *upd.UserID
	}
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Description != nil {
		a.Description = *upd.Description
	}
	if upd.Course != nil {
		a.Course = *upd.Course
	}
	if upd.Date != nil {
		a.Date = *upd.Date
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.Grades != nil {
		a.Grades = *upd.Grades
	}
	a.UpdatedAt = time.Now().UTC()
	return cloneActivity(a), nil
}

func (r *stubActivityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.activities[id]; !ok {
		return domain.ErrActivityNotFound
	}
	delete(r.activities, id)
	return nil
}

// fakeCache records cache traffic so tests can assert invalidation.
type fakeCache struct {
	cached      []*domain.Activity
	sets        int
	invalidates int
}

func (c *fakeCache) Get(context.Context) ([]*domain.Activity, bool) {
	if c.cached == nil {
		return nil, false
	}
	return c.cached, true
}

func (c *fakeCache) Set(_ context.Context, activities []*domain.Activity) {
	c.sets++
	c.cached = activities
}

func (c *fakeCache) Invalidate(context.Context) {
	c.invalidates++
	c.cached = nil
}

func validCreateInput() ports.CreateActivityInput {
	return ports.CreateActivityInput{
		ActorID: "admin-1",
		Title:   "  Essay draft  ",
		Course:  " Literature ",
		Date:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestActivityService_Create_Defaults(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("expected default status Pending, got %s", created.Status)
	}
	if created.UserID != "admin-1" {
		t.Fatalf("owner should default to the acting admin, got %s", created.UserID)
	}
	if created.Title != "Essay draft" || created.Course != "Literature" {
		t.Fatalf("string fields not trimmed: %q %q", created.Title, created.Course)
	}
}

func TestActivityService_Create_ExplicitOwner(t *testing.T) {
	svc := NewActivityService(newStubActivityRepo(), nil, zerolog.Nop())

	in := validCreateInput()
	in.OwnerID = "student-7"
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != "student-7" {
		t.Fatalf("explicit owner ignored, got %s", created.UserID)
	}
}

func TestActivityService_Create_Validation(t *testing.T) {
	svc := NewActivityService(newStubActivityRepo(), nil, zerolog.Nop())
	ctx := context.Background()

	missingTitle := validCreateInput()
	missingTitle.Title = "   "
	if _, err := svc.Create(ctx, missingTitle); !errors.Is(err, domain.ErrMissingActivityFields) {
		t.Fatalf("blank title: expected ErrMissingActivityFields, got %v", err)
	}

	missingDate := validCreateInput()
	missingDate.Date = time.Time{}
	if _, err := svc.Create(ctx, missingDate); !errors.Is(err, domain.ErrMissingActivityFields) {
		t.Fatalf("zero date: expected ErrMissingActivityFields, got %v", err)
	}

	badStatus := validCreateInput()
	badStatus.Status = "Done"
	if _, err := svc.Create(ctx, badStatus); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("bad status: expected ErrInvalidStatus, got %v", err)
	}
}

func TestActivityService_List_UsesCache(t *testing.T) {
	repo := newStubActivityRepo()
	cache := &fakeCache{}
	svc := NewActivityService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCreateInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	// First list misses and populates the cache.
	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 || cache.sets != 1 {
		t.Fatalf("expected one item and one cache fill, got %d items %d sets", len(first), cache.sets)
	}

	// A create behind the cache's back proves the second list is served
	// from cache, not the store.
	repo.activities["ghost"] = &domain.Activity{ID: "ghost"}
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached listing of 1, got %d", len(second))
	}
}

func TestActivityService_Mutations_InvalidateCache(t *testing.T) {
	repo := newStubActivityRepo()
	cache := &fakeCache{}
	svc := NewActivityService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("create should invalidate, got %d", cache.invalidates)
	}

	status := domain.StatusCompleted
	if _, err := svc.Update(ctx, created.ID, ports.ActivityUpdate{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if cache.invalidates != 2 {
		t.Fatalf("update should invalidate, got %d", cache.invalidates)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.invalidates != 3 {
		t.Fatalf("delete should invalidate, got %d", cache.invalidates)
	}
}

func TestActivityService_Update_Partial(t *testing.T) {
	svc := NewActivityService(newStubActivityRepo(), nil, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := domain.StatusCompleted
	updated, err := svc.Update(ctx, created.ID, ports.ActivityUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if updated.Title != created.Title || updated.Course != created.Course || !updated.Date.Equal(created.Date) {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestActivityService_Update_Validation(t *testing.T) {
	svc := NewActivityService(newStubActivityRepo(), nil, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	blank := "  "
	if _, err := svc.Update(ctx, created.ID, ports.ActivityUpdate{Title: &blank}); !errors.Is(err, domain.ErrMissingActivityFields) {
		t.Fatalf("blank title update: expected ErrMissingActivityFields, got %v", err)
	}

	bad := domain.ActivityStatus("Done")
	if _, err := svc.Update(ctx, created.ID, ports.ActivityUpdate{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("bad status update: expected ErrInvalidStatus, got %v", err)
	}
}

func TestActivityService_Delete_Twice(t *testing.T) {
	svc := NewActivityService(newStubActivityRepo(), nil, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("second delete: expected ErrActivityNotFound, got %v", err)
	}
}

func TestActivityService_Get_NotFound(t *testing.T) {
	svc := NewActivityService(newStubActivityRepo(), nil, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}
