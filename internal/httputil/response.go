// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
	apperrors "github.com/allisson/drinks/internal/errors"
)

const legacyErrorStatusKey = "httputil.legacy_error_status"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LegacyErrorStatusMiddleware makes HandleErrorGin report not-found and conflict
// errors as 422 Unprocessable Entity for the rest of the request.
func LegacyErrorStatusMiddleware(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(legacyErrorStatusKey, enabled)
		c.Next()
	}
}

// ClassifyError maps an error onto an HTTP status, a reason code and a client-safe message.
func ClassifyError(err error, legacyStatus bool) (int, string, string) {
	var authErr *authDomain.AuthError
	if apperrors.As(err, &authErr) {
		return authErr.Status, string(authErr.Code), authErr.Description
	}

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		if legacyStatus {
			return http.StatusUnprocessableEntity, "not_found", "resource not found"
		}
		return http.StatusNotFound, "not_found", "resource not found"

	case apperrors.Is(err, apperrors.ErrConflict):
		if legacyStatus {
			return http.StatusUnprocessableEntity, "conflict", "resource already exists"
		}
		return http.StatusConflict, "conflict", "resource already exists"

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "unprocessable", err.Error()

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "authentication is required"

	case apperrors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden", "permission is not allowed"

	case apperrors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "a required service is unavailable"

	default:
		// Unknown errors never expose details to the client.
		return http.StatusInternalServerError, "internal_error", "an internal error occurred"
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes the JSON error envelope.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, code, message := ClassifyError(err, c.GetBool(legacyErrorStatusKey))

	if logger != nil {
		attrs := []any{
			slog.Int("status_code", statusCode),
			slog.String("error_code", code),
			slog.Any("error", err),
		}
		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error("request failed", attrs...)
		case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
			logger.Debug("request rejected", attrs...)
		default:
			logger.Warn("request failed", attrs...)
		}
	}

	WriteError(c, statusCode, code, message)
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for malformed bodies,
// parameters and validation failures.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	WriteError(c, http.StatusUnprocessableEntity, "unprocessable", err.Error())
}

// WriteError writes the error envelope with statusCode.
func WriteError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   statusCode,
		Code:    code,
		Message: message,
	})
}
