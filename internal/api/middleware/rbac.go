package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces role membership after Auth has run. The decision is
// all-or-nothing against the live principal role; there is no partial
// permission model.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := Principal(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
