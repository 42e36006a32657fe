// Package orchestration is the timing harness around series.Compute. It
// records timestamps immediately around the call, drives a progress reporter
// while the call runs, and hands the outcome to a presenter. It decouples the
// computation from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
