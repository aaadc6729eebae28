package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/guard"
)

// RequireRoles rejects requests whose principal does not hold one of the
// allowed roles. Denial is 401, not 403: the API deliberately does not
// distinguish "not authenticated" from "not permitted".
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, _ := c.Get(PrincipalKey).(domain.Principal)
			if err := guard.Check(p, "", roles...); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			return next(c)
		}
	}
}
