package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrEmailExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrMissingFields = errors.New("all fields are required")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// User models a registered account. PasswordHash never leaves the server:
// it is excluded from JSON and stripped before any summary is returned.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Firstname    string    `json:"firstname" bson:"firstname"`
	Lastname     string    `json:"lastname" bson:"lastname"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy safe to serialize in API responses.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
