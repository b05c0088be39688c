// server/internal/api/handlers/helpers.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taller-api-server/internal/api/middleware"
	"taller-api-server/internal/service"
)

// respondError maps service error kinds to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidDate):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrGuardViolation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrToolUnavailable):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNotCustodian):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// callerProfileID reads the authenticated profile ID set by the
// Authenticate middleware.
func callerProfileID(c *gin.Context) string {
	return c.GetString(middleware.CtxProfileID)
}
