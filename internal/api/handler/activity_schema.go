package handler

import "github.com/acadtrack/acadtrack/internal/core/domain"

// createActivityRequest carries the admin form for a new activity. The date
// is a string so both RFC 3339 timestamps and plain YYYY-MM-DD values from
// date inputs are accepted; parsing happens in the mapper.
type createActivityRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Course      string `json:"course"      validate:"required"`
	Date        string `json:"date"        validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Grades      string `json:"grades"`
}

// updateActivityRequest is a partial update: absent fields stay untouched.
type updateActivityRequest struct {
	UserID      *string `json:"userId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Course      *string `json:"course"`
	Date        *string `json:"date"`
	Status      *string `json:"status"`
	Grades      *string `json:"grades"`
}

type activityResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Activity *domain.Activity `json:"activity"`
}
