package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/api/metrics"
	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
	"github.com/grocerytrack/grocery-api/internal/core/service"
)

const principalKey = "principal"

// Auth authenticates the request: it extracts the bearer token, verifies it,
// and re-fetches the live user record so that downstream authorization sees
// the current stored role rather than the snapshot embedded at issuance.
// The store read per request is a deliberate consistency-over-latency choice.
func Auth(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID())
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusNotFound, "user not found")
				}
				return err
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal returns the authenticated user placed in the context by Auth,
// or nil when the request was not authenticated.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}
