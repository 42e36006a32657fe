// Package apperrors defines the structured error types of seriescalc and the
// process exit codes they map to.
//
// All wrapping types implement Unwrap so callers can use errors.Is and
// errors.As across layers.
package apperrors
