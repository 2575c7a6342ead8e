package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

// identityKey is the echo context key holding the resolved *domain.User.
const identityKey = "identity"

// Auth resolves a bearer token to a live user account and injects it into
// the request context. The subject is re-read from the user repository on
// every request so role changes take effect without re-login and tokens of
// deleted accounts stop working immediately.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token missing")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token missing")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
				}
				return err
			}

			c.Set(identityKey, user)

			return next(c)
		}
	}
}

// Identity returns the user attached by Auth, or nil when the middleware
// has not run on this route.
func Identity(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}
