package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seriescalc/internal/format"
)

// HeaderModel renders the top bar: title, version and elapsed time of the
// current run.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{startTime: time.Now(), version: version}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the run started, or its total once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "seriescalc"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	row := titleStyle.Render(titleText) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	if gap := h.width - 2 - lipgloss.Width(row); gap > 0 {
		row += strings.Repeat(" ", gap)
	}
	if h.width > 0 {
		return headerStyle.Width(h.width).Render(row)
	}
	return headerStyle.Render(row)
}
