package cli

import (
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/format"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner until done is closed.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, out io.Writer) {
	DisplayProgress(wg, done, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct {
	// Details, when non-nil, is called after the result lines in details mode.
	Details func(res orchestration.CalculationResult, out io.Writer)
}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentResult prints the result lines, followed by the details panel when
// requested and not in quiet mode.
func (p CLIResultPresenter) PresentResult(res orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResultWithConfig(res, OutputConfig{Quiet: opts.Quiet}, out)
	if opts.Details && !opts.Quiet {
		details := p.Details
		if details == nil {
			details = DisplayDetails
		}
		details(res, out)
	}
}

// FormatDuration formats a duration for display.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError handles calculation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies the current theme's colors to apperrors.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
