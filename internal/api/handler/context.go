package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/api/middleware"
	"github.com/nominasoft/hr-system/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: a populated UserID
// proves the middleware ran. Handlers never trust identity fields from the
// request body.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, _ := c.Get(middleware.PrincipalKey).(domain.Principal)
	if p.UserID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return p, nil
}
