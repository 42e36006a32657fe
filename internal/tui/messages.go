package tui

import (
	"time"

	"github.com/agbru/seriescalc/internal/orchestration"
)

// CalculationCompleteMsg carries the outcome of one run.
type CalculationCompleteMsg struct {
	Result     orchestration.CalculationResult
	Generation uint64
}

// TickMsg refreshes the elapsed time and host load while a run is active.
type TickMsg time.Time

// SysStatsMsg carries a host load sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg is sent when the session context ends.
type ContextCancelledMsg struct {
	Err error
}
