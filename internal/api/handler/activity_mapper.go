package handler

import (
	"time"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

// dateLayouts are accepted on input, most specific first. Browser date
// inputs submit plain YYYY-MM-DD; API clients send RFC 3339.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toCreateInput(req createActivityRequest, actorID string) (ports.CreateActivityInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return ports.CreateActivityInput{}, domain.ErrMissingActivityFields
	}

	return ports.CreateActivityInput{
		ActorID:     actorID,
		OwnerID:     req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Course:      req.Course,
		Date:        date,
		Status:      req.Status,
		Grades:      req.Grades,
	}, nil
}

func toUpdate(req updateActivityRequest) (ports.ActivityUpdate, error) {
	upd := ports.ActivityUpdate{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Course:      req.Course,
		Grades:      req.Grades,
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return ports.ActivityUpdate{}, domain.ErrMissingActivityFields
		}
		upd.Date = &date
	}
	if req.Status != nil {
		status := domain.ActivityStatus(*req.Status)
		upd.Status = &status
	}

	return upd, nil
}
