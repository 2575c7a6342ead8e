package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

// AuthService implements registration, login and user queries.
type AuthService struct {
	repo      ports.UserRepository
	tokens    ports.TokenService
	adminCode string
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, adminCode string, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, adminCode: adminCode, logger: logger}
}

// Register creates a new account. The role is fixed at creation time: admin
// when the trimmed admin code matches the server secret, user otherwise.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	firstname := strings.TrimSpace(in.Firstname)
	lastname := strings.TrimSpace(in.Lastname)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if firstname == "" || lastname == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrPasswordTooShort
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if s.adminCode != "" && strings.TrimSpace(in.AdminCode) == s.adminCode {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Firstname:    firstname,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("role", role).Msg("user registered")

	return &ports.RegisterResult{
		User:    created.Sanitized(),
		IsAdmin: role == domain.RoleAdmin,
	}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both fail with domain.ErrInvalidCredentials so the response
// never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", email).Str("role", user.Role).Msg("user logged in")

	return token, user.Sanitized(), nil
}

// ListUsers returns every account newest-first with hashes stripped.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

// Profile returns the sanitized account for the given id.
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}
