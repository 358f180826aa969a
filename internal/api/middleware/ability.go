package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// RequireAbility enforces token ability scopes. Freshly minted tokens carry
// the wildcard ability, so every scope passes today; the check exists so
// narrower tokens stay enforceable.
func RequireAbility(ability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get(ContextTokenKey).(*domain.AccessToken)
			if token == nil || !token.Can(ability) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
