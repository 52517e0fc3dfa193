package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports an out-of-domain input rejected up front.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ModelNotFoundError signals that no demand model exists for a pair.
// Callers typically fall back to DefaultModel rather than failing.
type ModelNotFoundError struct {
	ProductID int
	StoreID   int
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("no demand model for product %d at store %d", e.ProductID, e.StoreID)
}

// IsModelNotFound reports whether err is (or wraps) a ModelNotFoundError.
func IsModelNotFound(err error) bool {
	var me *ModelNotFoundError
	return errors.As(err, &me)
}
