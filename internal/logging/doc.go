// Package logging provides the structured logging interface used across
// seriescalc. The default backend is zerolog; a log.Logger adapter exists for
// embedders that already own a standard logger.
package logging
