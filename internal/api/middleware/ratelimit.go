package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Limiter is the throttle store consulted before processing a login attempt.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginThrottle bounds login attempts per client IP. The limiter is
// fail-open: a throttle-store error is logged and the attempt proceeds, so
// a Redis outage never locks everyone out.
func LoginThrottle(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("login throttle check failed, allowing")
				return next(c)
			}
			if !ok {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
			}
			return next(c)
		}
	}
}
