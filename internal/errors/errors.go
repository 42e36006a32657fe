package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes.
const (
	ExitSuccess       = 0   // Successful execution, including non-finite results.
	ExitErrorGeneric  = 1   // Generic error (I/O, unexpected failure).
	ExitErrorTimeout  = 2   // The run exceeded the configured timeout.
	ExitErrorConfig   = 4   // Invalid flags or environment values.
	ExitErrorDomain   = 5   // Series parameters rejected by strict validation.
	ExitErrorCanceled = 130 // Canceled by a signal (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values.
type ConfigError struct {
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure of the timed computation, preserving the
// original cause.
type CalculationError struct {
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a run that did not finish within its limit.
// It matches context.DeadlineExceeded with errors.Is.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap returns context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError represents an input validation failure on a single field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
