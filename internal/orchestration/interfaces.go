package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/seriescalc/internal/series"
	"github.com/agbru/seriescalc/internal/sysmon"
)

// CalculationResult is what one harness run observed. It is the shared
// domain type between orchestration and presentation layers.
type CalculationResult struct {
	Params series.Params
	// Scale is the factor applied to Value to obtain Scaled.
	Scale float64
	// Value is the raw accumulator output.
	Value float64
	// Scaled is Value * Scale.
	Scaled float64
	// Duration is the wall-clock time of the Compute call.
	Duration time.Duration
	// CPU is the process CPU time spent during the call.
	CPU sysmon.CPUTime
	// Err is set when the run was rejected or abandoned.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Details bool
	Quiet   bool
}

// ProgressReporter displays activity while the computation runs.
//
// DisplayProgress is started in its own goroutine before the computation and
// must return, calling wg.Done, once done is closed.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, done <-chan struct{}, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, out io.Writer) {
	f(wg, done, out)
}

// NullProgressReporter waits for completion without displaying anything.
// Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress blocks until done is closed.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, _ io.Writer) {
	defer wg.Done()
	<-done
}

// ResultPresenter renders a successful run.
type ResultPresenter interface {
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler reports a failed run and returns its exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
