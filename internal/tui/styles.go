package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seriescalc/internal/ui"
)

// Style variables for the dashboard, built from the ui theme by
// initTUIStyles.
var (
	panelStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	versionStyle lipgloss.Style
	elapsedStyle lipgloss.Style
	labelStyle   lipgloss.Style
	valueStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	spinnerStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run after InitTheme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(t.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(t.Accent)
	labelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	valueStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(t.Accent)
}
