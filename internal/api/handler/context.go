package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/api/middleware"
	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. Its presence
// proves the middleware ran; a nil user on a protected route is a wiring
// bug surfaced as 401 rather than a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	return user, nil
}

// paramID parses the :id route parameter. Malformed ids behave like
// missing rows, so each caller maps the failure to its own not-found error.
func paramID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
