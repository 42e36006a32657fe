// Package tui is the interactive dashboard: it runs the timed computation
// in the background, shows a spinner and host load while it runs, and keeps
// the last result on screen until the user reruns or quits.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seriescalc/internal/config"
	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/format"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/sysmon"
)

// runFunc performs one harness run for the dashboard.
type runFunc func(ctx context.Context, cfg config.AppConfig) orchestration.CalculationResult

func defaultRun(ctx context.Context, cfg config.AppConfig) orchestration.CalculationResult {
	req := orchestration.Request{Params: cfg.Params(), Scale: cfg.Scale, Strict: cfg.Strict, Timeout: cfg.Timeout}
	return orchestration.Execute(ctx, req, orchestration.NullProgressReporter{}, io.Discard)
}

// ExecutionState holds the execution-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	running    bool
	result     *orchestration.CalculationResult
	exitCode   int
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header  HeaderModel
	spinner spinner.Model
	help    help.Model
	keymap  KeyMap

	ExecutionState

	config config.AppConfig
	run    runFunc
	load   sysmon.Stats
	width  int
}

// NewModel creates a dashboard model for cfg. The first run starts on Init.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		header:  NewHeaderModel(version),
		spinner: sp,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			running:  true,
			exitCode: apperrors.ExitErrorCanceled,
		},
		config: cfg,
		run:    defaultRun,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(),
		runCalculationCmd(m.ctx, m.config, m.generation, m.run),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		if !m.running {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.load = sysmon.Stats{CPUPercent: msg.CPUPercent, MemPercent: msg.MemPercent}
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		res := msg.Result
		m.result = &res
		m.running = false
		m.exitCode = apperrors.ExitCodeFor(res.Err)
		m.header.SetDone()
		return m, nil

	case ContextCancelledMsg:
		m.running = false
		m.header.SetDone()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		// The computation cannot be interrupted, so a run in progress is
		// left to finish.
		if m.running {
			return m, nil
		}
		m.generation++
		m.running = true
		m.result = nil
		m.header.Reset()
		return m, tea.Batch(
			m.spinner.Tick,
			tickCmd(),
			runCalculationCmd(m.ctx, m.config, m.generation, m.run),
		)
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	sections := []string{m.header.View(), "", m.bodyView(), "", m.help.View(m.keymap)}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) bodyView() string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), value)
	}

	row("Parameters:", valueStyle.Render(m.config.Params().String()))
	row("Scale:", valueStyle.Render(fmt.Sprintf("%g", m.config.Scale)))

	switch {
	case m.running:
		fmt.Fprintf(&b, "\n%s Computing %s iterations...\n", m.spinner.View(), format.FormatCount(m.config.Iterations))
		row("Host load:", fmt.Sprintf("CPU %.1f%%, memory %.1f%%", m.load.CPUPercent, m.load.MemPercent))
	case m.result != nil && m.result.Err != nil:
		b.WriteString("\n")
		row("Status:", errorStyle.Render(m.result.Err.Error()))
	case m.result != nil:
		b.WriteString("\n")
		row("Result:", successStyle.Render(format.FormatResult(m.result.Scaled)))
		row("Execution Time:", valueStyle.Render(format.FormatSeconds(m.result.Duration)+" seconds"))
		row("CPU time:", format.FormatExecutionDuration(m.result.CPU.Total()))
	}

	panel := panelStyle
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}
	return panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Run is the public entry point for the dashboard. It returns the exit code
// of the last completed run, or ExitErrorCanceled if none completed.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// runCalculationCmd performs one run bounded by cfg.Timeout. The session
// context only carries quit and signal cancellation.
func runCalculationCmd(ctx context.Context, cfg config.AppConfig, gen uint64, run runFunc) tea.Cmd {
	return func() tea.Msg {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		return CalculationCompleteMsg{Result: run(runCtx, cfg), Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for the session context to end.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
