package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) List(context.Context) ([]*domain.User, error) {
	return nil, nil
}

func signToken(t *testing.T, user *domain.User) string {
	t.Helper()
	token, err := service.NewTokenService("secret", time.Hour).Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, repo *stubUserRepo, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), repo)
	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	alice := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser}
	repo := &stubUserRepo{users: map[string]*domain.User{"u1": alice}}

	called := false
	rec := runAuth(t, repo, "Bearer "+signToken(t, alice), func(c echo.Context) error {
		called = true
		user := Identity(c)
		if user == nil || user.ID != "u1" {
			t.Fatalf("identity not attached: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_LiveRoleWinsOverTokenRole(t *testing.T) {
	// Token minted while the account was a plain user; the store has since
	// promoted it. The attached identity must carry the current role.
	demotedClaims := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser}
	promoted := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin}
	repo := &stubUserRepo{users: map[string]*domain.User{"u1": promoted}}

	rec := runAuth(t, repo, "Bearer "+signToken(t, demotedClaims), func(c echo.Context) error {
		if got := Identity(c).Role; got != domain.RoleAdmin {
			t.Fatalf("expected live role admin, got %s", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	rec := runAuth(t, repo, "", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	rec := runAuth(t, repo, "Token abc", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	rec := runAuth(t, repo, "Bearer not-a-token", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleUser},
	}}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec := runAuth(t, repo, "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	ghost := &domain.User{ID: "gone", Email: "ghost@example.com", Role: domain.RoleUser}
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	rec := runAuth(t, repo, "Bearer "+signToken(t, ghost), func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %d", rec.Code)
	}
}
