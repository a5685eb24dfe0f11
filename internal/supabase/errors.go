package supabase

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound reports that the referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports malformed or missing input. It is always returned
// before any row is written. Category is the short machine-readable label
// the API surfaces; Message explains what was wrong with the input.
type ValidationError struct {
	Category string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(category, format string, args ...any) *ValidationError {
	return &ValidationError{Category: category, Message: fmt.Sprintf(format, args...)}
}
