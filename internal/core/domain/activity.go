package domain

import (
	"errors"
	"time"
)

// ActivityStatus represents the completion state of an activity.
type ActivityStatus string

const (
	StatusPending    ActivityStatus = "Pending"
	StatusInProgress ActivityStatus = "In Progress"
	StatusCompleted  ActivityStatus = "Completed"
)

var ErrActivityNotFound = errors.New("activity not found")
var ErrInvalidStatus = errors.New("invalid activity status")
var ErrMissingActivityFields = errors.New("title, course and date are required")

// Valid reports whether s is one of the known statuses.
func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Activity is an academic task owned by a user. Mutations are admin-only;
// every authenticated user can read the full set.
type Activity struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	UserID      string         `json:"user" bson:"user"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Course      string         `json:"course" bson:"course"`
	Date        time.Time      `json:"date" bson:"date"`
	Status      ActivityStatus `json:"status" bson:"status"`
	Grades      string         `json:"grades,omitempty" bson:"grades,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
