package cli

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/seriescalc/internal/cli/mocks"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if s.Suffix != " test" {
		t.Errorf("suffix = %q", s.Suffix)
	}
}

func TestProgressSuffix(t *testing.T) {
	t.Parallel()
	got := progressSuffix(1500 * time.Millisecond)
	if !strings.HasPrefix(got, " Computing...") || !strings.Contains(got, "1.5s") {
		t.Errorf("progressSuffix = %q", got)
	}
}

// TestDisplayProgress is not parallel: it swaps the package-level spinner
// constructor.
func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	mockS.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()
	gomock.InOrder(
		mockS.EXPECT().Start().Times(1),
		mockS.EXPECT().Stop().Times(1),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	go func() {
		time.Sleep(2 * ProgressRefreshRate)
		close(done)
	}()

	DisplayProgress(&wg, done, io.Discard)
	wg.Wait()
}

func TestDisplayProgress_ClosedImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	mockS.EXPECT().UpdateSuffix(progressSuffix(0)).Times(1)
	mockS.EXPECT().Start().Times(1)
	mockS.EXPECT().Stop().Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	close(done)
	DisplayProgress(&wg, done, io.Discard)
	wg.Wait()
}
