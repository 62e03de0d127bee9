package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// principalClaims are the identity fields the Auth middleware injects.
type principalClaims struct {
	ID       string
	Role     string
	ClinicID string
	TokenID  string
}

// ctxPrincipal extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: subject and role must
// be non-empty (presence proves the middleware ran). The claim role is only
// ever used for rendering and route gating; guarded mutations re-resolve the
// principal from the store.
func ctxPrincipal(c echo.Context) (principalClaims, error) {
	id, _ := c.Get("principal_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return principalClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	clinicID, _ := c.Get("clinic_id").(string)
	tokenID, _ := c.Get("token_id").(string)
	return principalClaims{ID: id, Role: role, ClinicID: clinicID, TokenID: tokenID}, nil
}
