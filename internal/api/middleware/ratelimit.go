package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/api/metrics"
)

// Limiter is the admission-control dependency of the RateLimit middleware.
type Limiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
}

// RateLimit rejects callers exceeding the per-minute request budget with
// 429. Subjects are keyed by client IP; a failing limiter backend fails
// open so Redis downtime does not take the API with it.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitRejectedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too Many Attempts.")
			}
			return next(c)
		}
	}
}
