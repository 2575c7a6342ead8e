package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// Result is the uniform outcome of every API call. Failures, network
// errors included, are normalized into Success=false with a message;
// callers never need to branch on transport errors separately.
type Result struct {
	Success bool
	// Status is the HTTP status code, 0 when the request never reached
	// the server.
	Status int
	// Data is the response payload: the envelope's "data" field when the
	// server wrapped it, otherwise the raw body.
	Data json.RawMessage
	// Message carries the server's human-readable message, or the error
	// description on failure.
	Message string
	// FromCache marks a read served from the last-known-good copy after a
	// network failure.
	FromCache bool
}

// Decode unmarshals Data into v.
func (r Result) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("empty response data")
	}
	return json.Unmarshal(r.Data, v)
}

// envelope is the server's standard response wrapper. Older endpoints
// return flat bodies instead; both shapes are tolerated.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client wraps the AcadTrack REST API. It attaches the session's bearer
// token to every request, normalizes every response into a Result, and
// keeps a last-known-good copy of the activity listing as a read fallback
// (the service-worker pattern of the web client).
type Client struct {
	baseURL string
	http    *http.Client
	session *Session

	mu             sync.Mutex
	lastActivities []domain.Activity
}

// New creates a Client. httpClient may be nil, in which case
// http.DefaultClient is used.
func New(baseURL string, session *Session, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: session,
	}
}

// Session exposes the client's auth state for UI gating.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body any) Result {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Result{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Result{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Message: "Connection error. Please try again later."}
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return Result{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	return normalize(resp.StatusCode, buf.Bytes())
}

// normalize converts an HTTP response into a Result. Enveloped bodies are
// unwrapped; flat bodies pass through as-is.
func normalize(status int, body []byte) Result {
	res := Result{Status: status, Data: body}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Success != nil {
		res.Message = env.Message
		if len(env.Data) > 0 && string(env.Data) != "null" {
			res.Data = env.Data
		}
	}

	if status >= 200 && status < 300 {
		res.Success = true
		return res
	}

	res.Success = false
	if res.Message == "" {
		res.Message = fmt.Sprintf("HTTP Error: %d", status)
	}
	return res
}

// --- Auth endpoints ---

// Register creates an account. AdminCode may be empty.
func (c *Client) Register(ctx context.Context, firstname, lastname, email, password, adminCode string) Result {
	return c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"firstname": firstname,
		"lastname":  lastname,
		"email":     email,
		"password":  password,
		"adminCode": adminCode,
	})
}

// Login authenticates and, on success, persists the session.
func (c *Client) Login(ctx context.Context, email, password string) Result {
	res := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if !res.Success {
		return res
	}

	var data struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := res.Decode(&data); err != nil || data.Token == "" {
		res.Success = false
		res.Message = "malformed login response"
		return res
	}

	c.session.Login(data.Token, data.User)
	return res
}

// Logout clears the session. Purely client-side: tokens are stateless and
// simply stop being presented.
func (c *Client) Logout() Result {
	c.session.Logout()
	return Result{Success: true, Message: "Logged out successfully"}
}

// Profile fetches the authenticated user's account.
func (c *Client) Profile(ctx context.Context) Result {
	return c.do(ctx, http.MethodGet, "/auth/profile", nil)
}

// AllUsers lists every account (admin only).
func (c *Client) AllUsers(ctx context.Context) Result {
	return c.do(ctx, http.MethodGet, "/auth/users/all", nil)
}

// --- Activity endpoints ---

// ActivityForm carries activity fields for create and update calls. Empty
// strings are omitted from the JSON body, so updates stay partial.
type ActivityForm struct {
	UserID      string `json:"userId,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Course      string `json:"course,omitempty"`
	Date        string `json:"date,omitempty"`
	Status      string `json:"status,omitempty"`
	Grades      string `json:"grades,omitempty"`
}

// Activities lists all activities. On network failure the last successful
// listing is returned with FromCache set, when one exists.
func (c *Client) Activities(ctx context.Context) Result {
	res := c.do(ctx, http.MethodGet, "/activities", nil)
	if res.Success {
		var activities []domain.Activity
		if err := res.Decode(&activities); err == nil {
			c.mu.Lock()
			c.lastActivities = activities
			c.mu.Unlock()
		}
		return res
	}

	// Only transport failures fall back; a server-rendered error (401, 500)
	// is authoritative and must surface.
	if res.Status != 0 {
		return res
	}

	c.mu.Lock()
	cached := c.lastActivities
	c.mu.Unlock()
	if cached == nil {
		return res
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return res
	}
	return Result{Success: true, Data: raw, FromCache: true, Message: res.Message}
}

// Activity fetches a single activity by id.
func (c *Client) Activity(ctx context.Context, id string) Result {
	return c.do(ctx, http.MethodGet, "/activities/"+id, nil)
}

// CreateActivity creates an activity (admin only).
func (c *Client) CreateActivity(ctx context.Context, form ActivityForm) Result {
	return c.do(ctx, http.MethodPost, "/activities", form)
}

// UpdateActivity applies a partial update (admin only).
func (c *Client) UpdateActivity(ctx context.Context, id string, form ActivityForm) Result {
	return c.do(ctx, http.MethodPut, "/activities/"+id, form)
}

// DeleteActivity deletes an activity (admin only).
func (c *Client) DeleteActivity(ctx context.Context, id string) Result {
	return c.do(ctx, http.MethodDelete, "/activities/"+id, nil)
}
