package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto an HTTP status and a short error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusConflict, "duplicate_email"
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, common.ErrMissingCredential):
		return http.StatusUnauthorized, "missing_token"
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired"
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrUnknownField):
		return http.StatusBadRequest, "unknown_field"
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, common.ErrUnsupported):
		return http.StatusNotImplemented, "unsupported"
	case errors.Is(err, common.ErrStorage):
		return http.StatusServiceUnavailable, "storage_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respondError writes the error body and records err for the request logger.
// Internal details are only exposed for client errors.
func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)
	_ = c.Error(err)

	desc := err.Error()
	if status >= http.StatusInternalServerError {
		desc = http.StatusText(status)
	}
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": code, "error_description": desc})
}
