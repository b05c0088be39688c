// server/internal/service/errors.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Error kinds returned by the services. Handlers map them to HTTP codes;
// wrap with fmt.Errorf("%w: detail") for context.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicate         = errors.New("resource already exists")
	ErrValidation        = errors.New("invalid input")
	ErrGuardViolation    = errors.New("operation not allowed in current state")
	ErrInvalidDate       = errors.New("estimated delivery precedes intake date")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrToolUnavailable   = errors.New("tool is not available")
	ErrNotCustodian      = errors.New("tool is held by another mechanic")
)

// newID builds a human-readable identifier like "OT-1A2B3C4D".
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.New().String()[:8]))
}
