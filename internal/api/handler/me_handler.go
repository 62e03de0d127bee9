package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// MeHandler serves the caller's own resolved context and grant sets. The
// permission and view listings exist for the UI to decide what to render;
// the guarded action itself is always re-checked server-side at the point of
// use.
type MeHandler struct {
	authz ports.AuthzService
}

func NewMeHandler(authz ports.AuthzService) *MeHandler {
	return &MeHandler{authz: authz}
}

type meResponse struct {
	User   *domain.User   `json:"user"`
	Clinic *domain.Clinic `json:"clinic,omitempty"`
}

// Me returns the resolved principal and clinic context.
//
// @Summary      Resolve own context
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/me [get]
func (h *MeHandler) Me(c echo.Context) error {
	claims, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, clinic, err := h.authz.EnsureContext(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: user, Clinic: clinic})
}

type permissionsResponse struct {
	Role         string              `json:"role"`
	Capabilities []domain.Capability `json:"capabilities"`
}

// Permissions lists the caller's capability grants.
//
// @Summary      List own capabilities
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  permissionsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/permissions [get]
func (h *MeHandler) Permissions(c echo.Context) error {
	claims, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	// Fresh read: the stored role wins over whatever the token was minted
	// with.
	user, _, err := h.authz.ResolveContext(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, permissionsResponse{
		Role:         string(domain.NormalizeRole(user.Role)),
		Capabilities: domain.ListCapabilities(user.Role),
	})
}

type viewsResponse struct {
	DefaultView domain.View   `json:"default_view"`
	Views       []domain.View `json:"views"`
}

// Views lists the caller's accessible views and landing view.
//
// @Summary      List own accessible views
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  viewsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/views [get]
func (h *MeHandler) Views(c echo.Context) error {
	claims, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, _, err := h.authz.ResolveContext(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, viewsResponse{
		DefaultView: domain.DefaultViewFor(user.Role),
		Views:       domain.AccessibleViews(user.Role),
	})
}
