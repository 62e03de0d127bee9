package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/api/metrics"
	"github.com/clinicore/clinic-system/internal/core/domain"
)

// RequireCapability gates a route on the claim role holding at least one of
// the listed capabilities. The role string from the token is normalized by
// the catalog; unknown roles fail closed.
func RequireCapability(caps ...domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.HasAny(role, caps...) {
				metrics.AuthzDecisionsTotal.WithLabelValues("capability", "deny").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "you don't have permission"})
			}
			metrics.AuthzDecisionsTotal.WithLabelValues("capability", "allow").Inc()
			return next(c)
		}
	}
}

// RequireView gates a route on view access for the claim role.
func RequireView(view domain.View) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.CanEnterView(role, view) {
				metrics.AuthzDecisionsTotal.WithLabelValues("view", "deny").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "you don't have permission"})
			}
			metrics.AuthzDecisionsTotal.WithLabelValues("view", "allow").Inc()
			return next(c)
		}
	}
}
