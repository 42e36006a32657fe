package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/seriescalc/internal/config"
	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/series"
	"github.com/agbru/seriescalc/internal/ui"
)

func TestPrintExecutionConfig(t *testing.T) {
	ui.InitTheme(true)
	var buf bytes.Buffer
	cfg := config.AppConfig{
		Iterations: 100_000_000,
		ParamA:     4,
		ParamB:     1,
		Scale:      4,
		Timeout:    time.Minute,
		Strict:     true,
	}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()
	for _, want := range []string{"100,000,000", "a=4", "b=1", "1m0s", "strict", "Starting Execution"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestCLIResultPresenter(t *testing.T) {
	ui.InitTheme(true)
	res := orchestration.CalculationResult{
		Params:   series.Params{Iterations: 1000, A: 4, B: 1},
		Scale:    4,
		Value:    series.Compute(1000, 4, 1),
		Duration: time.Millisecond,
	}
	res.Scaled = res.Value * res.Scale

	t.Run("details", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{Details: true}, &buf)
		out := buf.String()
		for _, want := range []string{"Result: ", "Execution Time: ", "--- Details ---", "Rounding drift:", "Heap in use:"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got:\n%s", want, out)
			}
		}
		if strings.Contains(out, "skipped") {
			t.Errorf("drift should be measured for 1000 iterations:\n%s", out)
		}
	})

	t.Run("quiet suppresses details", func(t *testing.T) {
		var buf bytes.Buffer
		called := false
		p := CLIResultPresenter{Details: func(orchestration.CalculationResult, io.Writer) { called = true }}
		p.PresentResult(res, orchestration.PresentationOptions{Details: true, Quiet: true}, &buf)
		if called {
			t.Error("details printed in quiet mode")
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("quiet output = %q", buf.String())
		}
	})

	t.Run("handle error", func(t *testing.T) {
		var buf bytes.Buffer
		code := CLIResultPresenter{}.HandleError(context.DeadlineExceeded, time.Second, &buf)
		if code != apperrors.ExitErrorTimeout {
			t.Errorf("code = %d", code)
		}
		if !strings.Contains(buf.String(), "Timeout") {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestDisplayDrift_Skipped(t *testing.T) {
	var buf bytes.Buffer
	res := orchestration.CalculationResult{Params: series.Params{Iterations: 10_000_000, A: 4, B: 1}}
	DisplayDrift(res, &buf)
	if !strings.Contains(buf.String(), "skipped") {
		t.Errorf("expected skipped drift, got %q", buf.String())
	}
}

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	for _, shell := range []string{"bash", "zsh", "fish", "powershell", "ps"} {
		shell := shell
		t.Run(shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, shell); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out := buf.String()
			for _, want := range []string{"seriescalc", "strict", "metrics-file"} {
				if !strings.Contains(out, want) {
					t.Errorf("%s script should mention %q", shell, want)
				}
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		err := GenerateCompletion(io.Discard, "tcsh")
		if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
			t.Errorf("expected unsupported shell error, got %v", err)
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestGenerateCompletion_WriteError(t *testing.T) {
	t.Parallel()
	if err := GenerateCompletion(failingWriter{}, "bash"); err == nil {
		t.Error("expected write error")
	}
}
