package handler

import "github.com/acadtrack/acadtrack/internal/core/domain"

// --- Request / Response types ---

type registerRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"adminCode,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// messageResponse is the minimal success envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// loginData is the payload nested under "data" on successful login.
type loginData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    loginData `json:"data"`
}

type usersResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Users   []*domain.User `json:"users"`
}

type profileResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}
