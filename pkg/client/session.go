// Package client is the Go counterpart of the browser-side service layer: a
// thin API client with a uniform result envelope, a session mirror of the
// server-issued credentials, and a last-known-good fallback for reads.
package client

import (
	"encoding/json"
	"sync"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// Storage keys, kept identical to the browser's localStorage entries.
const (
	storeKeyToken = "token"
	storeKeyUser  = "user"
)

// Store persists session state between client instances. Implementations
// must tolerate missing keys; values are plain strings (the user record is
// stored JSON-serialized).
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Session mirrors the login session: a cache of server truth, never
// authoritative. It hydrates from its Store at construction and keeps the
// store in sync on Login/Logout. Safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	store Store
	token string
	user  *domain.User
}

// NewSession creates a session hydrated from store. A corrupt or partial
// stored state hydrates as logged-out.
func NewSession(store Store) *Session {
	s := &Session{store: store}

	token, ok := store.Get(storeKeyToken)
	if !ok || token == "" {
		return s
	}
	raw, ok := store.Get(storeKeyUser)
	if !ok {
		return s
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return s
	}

	s.token = token
	s.user = &user
	return s
}

// Login records a session synchronously. It performs no network call: the
// caller is expected to have authenticated through the API already.
func (s *Session) Login(token string, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user

	_ = s.store.Set(storeKeyToken, token)
	if raw, err := json.Marshal(user); err == nil {
		_ = s.store.Set(storeKeyUser, string(raw))
	}
}

// Logout clears both the in-memory and the persisted state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	_ = s.store.Delete(storeKeyToken)
	_ = s.store.Delete(storeKeyUser)
}

// Token returns the held bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns the cached user, nil when logged out.
func (s *Session) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

// LoggedIn reports whether a token is held. Expiry is not checked here; it
// surfaces reactively when the next protected call fails.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// IsAdmin reports whether the cached user holds the admin role.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}
