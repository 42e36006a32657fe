//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/seriescalc/internal/format"
)

// ProgressRefreshRate defines the refresh frequency of the spinner suffix.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressSuffix is the text shown next to the spinner after elapsed time.
func progressSuffix(elapsed time.Duration) string {
	return fmt.Sprintf(" Computing... %s", format.FormatExecutionDuration(elapsed.Truncate(time.Millisecond)))
}

// DisplayProgress shows a spinner with the elapsed time on out until done is
// closed. The spinner only draws when stdout is a terminal, so redirected
// output stays limited to the result lines.
func DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	start := time.Now()
	s.UpdateSuffix(progressSuffix(0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(time.Since(start)))
		}
	}
}
