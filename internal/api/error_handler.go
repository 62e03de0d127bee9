package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/api/metrics"
	"github.com/clinicore/clinic-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Surfaces denials generically; the machine reason goes to the log and
//     metrics, never to the client.
//   - Logs unexpected errors internally without leaking details.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Denials: generic message outward, stable reason inward.
	if errors.Is(err, domain.ErrDenied) {
		reason := domain.DenialReason(err)
		metrics.AuthzDenialsTotal.WithLabelValues(reason).Inc()
		log.Info().
			Str("reason", reason).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request denied")
		return http.StatusForbidden, "you don't have permission"
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return http.StatusUnauthorized, "unknown principal"
	case errors.Is(err, domain.ErrTargetNotFound):
		return http.StatusNotFound, "target user not found"
	case errors.Is(err, domain.ErrClinicNotFound):
		return http.StatusNotFound, "clinic not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
