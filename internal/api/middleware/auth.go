package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/api/metrics"
	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/ports"
	"github.com/nominasoft/hr-system/internal/core/token"
)

// PrincipalKey is the echo context key the verified principal is stored
// under.
const PrincipalKey = "principal"

// Auth verifies the bearer access token and injects the principal into the
// request context. Missing, malformed, expired, and revoked tokens all
// terminate the request with 401; no protected handler runs without a
// principal. revoker may be nil when no revocation backend is configured.
func Auth(tokens *token.Service, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			principal, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), principal.UserID)
				if err != nil {
					return err
				}
				if revoked {
					metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
				}
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(PrincipalKey, *principal)

			return next(c)
		}
	}
}
