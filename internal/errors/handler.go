package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/seriescalc/internal/series"
)

// ColorProvider supplies the ANSI sequences used to highlight error output.
// A nil ColorProvider prints plain text.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error to the process exit code without printing.
func ExitCodeFor(err error) int {
	var (
		configErr  ConfigError
		validErr   ValidationError
		timeoutErr TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, series.ErrZeroDenominator), errors.Is(err, series.ErrOverflow):
		return ExitErrorDomain
	case errors.As(err, &configErr), errors.As(err, &validErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleCalculationError prints a one-line description of err to out and
// returns the matching exit code. Nothing is printed for a nil error.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	code := ExitCodeFor(err)
	if err == nil {
		return code
	}

	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The execution limit was reached%s", red, reset)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled by user%s", yellow, reset)
	case ExitErrorDomain:
		fmt.Fprintf(out, "%sStatus: Invalid series parameters: %v%s", red, err, reset)
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Error: %v%s", red, err, reset)
	}
	if duration > 0 {
		fmt.Fprintf(out, " %s(after %s)%s", yellow, duration, reset)
	}
	fmt.Fprintln(out)
	return code
}
