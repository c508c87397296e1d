package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/user-management/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// carries the underlying fault's message on 5xx responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Keeps the 401 message identical for unknown identifier and wrong
//     password, so the response never reveals which half failed.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp, code := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (errorResponse, int) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{Error: fmt.Sprintf("%v", he.Message)}, he.Code
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return errorResponse{Error: err.Error()}, http.StatusBadRequest
	case errors.Is(err, domain.ErrUserExists):
		return errorResponse{Error: "User already exists"}, http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorResponse{Error: "Invalid credentials"}, http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound):
		return errorResponse{Error: "user not found"}, http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return errorResponse{Error: "access forbidden"}, http.StatusForbidden
	}

	// Unexpected error: log the real cause and surface it as a diagnostic.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return errorResponse{Error: "internal server error", Details: err.Error()}, http.StatusInternalServerError
}
