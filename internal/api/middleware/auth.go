package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserKey  = "auth_user"
	ContextTokenKey = "auth_token"
)

// Auth resolves the bearer token to its owning user and injects both into
// the request context. Requests without a valid, unexpired token are
// rejected before the handler runs.
func Auth(resolver ports.TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}

			user, token, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}

			c.Set(ContextUserKey, user)
			c.Set(ContextTokenKey, token)

			return next(c)
		}
	}
}
