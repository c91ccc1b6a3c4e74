package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "site-security-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Conflicts get their own code so UIs can render a specific message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsConflict(err), apperrors.IsInvalidState(err), apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrBuiltinGateReadOnly):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrDirectoryNotConfigured):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// intQuery parses an integer query parameter, falling back to def
func intQuery(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return value
}
