package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/seriescalc/internal/config"
	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/series"
)

func testConfig() config.AppConfig {
	return config.AppConfig{Iterations: 1000, ParamA: 4, ParamB: 1, Scale: 4, Timeout: time.Minute}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), testConfig(), "v1.0.0")
	t.Cleanup(m.cancel)
	m.run = func(context.Context, config.AppConfig) orchestration.CalculationResult {
		return orchestration.CalculationResult{
			Params:   series.Params{Iterations: 1000, A: 4, B: 1},
			Scale:    4,
			Value:    0.785,
			Scaled:   3.14,
			Duration: 2 * time.Millisecond,
		}
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_CompletionUpdatesState(t *testing.T) {
	m := newTestModel(t)
	res := m.run(context.Background(), m.config)

	m, _ = update(t, m, CalculationCompleteMsg{Result: res, Generation: 0})
	if m.running {
		t.Error("model still running after completion")
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d", m.exitCode)
	}
	view := m.View()
	for _, want := range []string{"Result:", "3.140000000000", "Execution Time:", "0.002000 seconds"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestModel_StaleGenerationIgnored(t *testing.T) {
	m := newTestModel(t)
	m.generation = 2
	m, _ = update(t, m, CalculationCompleteMsg{Generation: 1})
	if !m.running || m.result != nil {
		t.Error("stale completion should be ignored")
	}
}

func TestModel_ErrorSetsExitCode(t *testing.T) {
	m := newTestModel(t)
	res := orchestration.CalculationResult{Err: series.ErrZeroDenominator}
	m, _ = update(t, m, CalculationCompleteMsg{Result: res})
	if m.exitCode != apperrors.ExitErrorDomain {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorDomain)
	}
	if !strings.Contains(m.View(), "denominator evaluates to zero") {
		t.Errorf("view should show the error:\n%s", m.View())
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t)
		m, cmd := update(t, m, msg)
		if !isQuit(cmd) {
			t.Errorf("%q should quit", msg.String())
		}
		if m.ctx.Err() == nil {
			t.Errorf("%q should cancel the session context", msg.String())
		}
	}
}

func TestModel_Rerun(t *testing.T) {
	m := newTestModel(t)
	rerun := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}

	m, cmd := update(t, m, rerun)
	if cmd != nil || m.generation != 0 {
		t.Fatal("rerun must be ignored while a run is active")
	}

	m, _ = update(t, m, CalculationCompleteMsg{Result: m.run(context.Background(), m.config)})
	m, cmd = update(t, m, rerun)
	if cmd == nil || m.generation != 1 || !m.running || m.result != nil {
		t.Errorf("rerun after completion: generation=%d running=%v", m.generation, m.running)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("help should expand")
	}
}

func TestModel_ContextCancelledQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, ContextCancelledMsg{Err: context.Canceled})
	if !isQuit(cmd) {
		t.Error("context cancellation should quit")
	}
}

func TestModel_DefaultExitCodeIsCanceled(t *testing.T) {
	m := newTestModel(t)
	if m.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exitCode = %d before any run completes", m.exitCode)
	}
}

func TestRunCalculationCmd(t *testing.T) {
	want := errors.New("boom")
	cmd := runCalculationCmd(context.Background(), testConfig(), 7, func(context.Context, config.AppConfig) orchestration.CalculationResult {
		return orchestration.CalculationResult{Err: want}
	})
	msg, ok := cmd().(CalculationCompleteMsg)
	if !ok {
		t.Fatal("expected CalculationCompleteMsg")
	}
	if msg.Generation != 7 || !errors.Is(msg.Result.Err, want) {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestDefaultRun(t *testing.T) {
	res := defaultRun(context.Background(), testConfig())
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Value != series.Compute(1000, 4, 1) {
		t.Errorf("Value = %v", res.Value)
	}
}

func TestHeaderModel_View(t *testing.T) {
	h := NewHeaderModel("v1.2.3")
	h.SetWidth(60)
	h.SetDone()
	view := h.View()
	if !strings.Contains(view, "seriescalc v1.2.3") || !strings.Contains(view, "Elapsed:") {
		t.Errorf("unexpected header %q", view)
	}
}

func TestRunCalculationCmd_TimeoutPerRun(t *testing.T) {
	session, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := testConfig()
	cfg.Timeout = 50 * time.Millisecond

	var deadlines []time.Time
	run := func(ctx context.Context, _ config.AppConfig) orchestration.CalculationResult {
		d, ok := ctx.Deadline()
		if !ok {
			t.Fatal("run context has no deadline")
		}
		deadlines = append(deadlines, d)
		return orchestration.CalculationResult{}
	}

	start := time.Now()
	runCalculationCmd(session, cfg, 0, run)()
	time.Sleep(60 * time.Millisecond)
	runCalculationCmd(session, cfg, 1, run)()

	if _, ok := session.Deadline(); ok {
		t.Error("session context must not carry the run timeout")
	}
	if session.Err() != nil {
		t.Error("session context ended with the first run's timeout")
	}
	if len(deadlines) != 2 || !deadlines[1].After(start.Add(cfg.Timeout)) {
		t.Errorf("second run should get a fresh deadline: %v", deadlines)
	}
}
