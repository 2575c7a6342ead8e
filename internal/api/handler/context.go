package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadtrack/acadtrack/internal/api/middleware"
	"github.com/acadtrack/acadtrack/internal/core/domain"
)

// ctxIdentity extracts the user attached by the Auth middleware. A missing
// identity means the route was wired without the middleware; fail with 401
// before any service call.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	user := middleware.Identity(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
