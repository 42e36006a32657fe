package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/seriescalc/internal/cli"
	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/logging"
	"github.com/agbru/seriescalc/internal/metrics"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/ui"
)

// runCalculate runs the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	progressOut := io.Discard
	// The spinner only makes sense on a real stream; buffers used by
	// embedders and tests get the bare result lines.
	if _, isFile := out.(*os.File); isFile && !a.Config.Quiet {
		reporter = cli.CLIProgressReporter{}
		progressOut = out
	}

	req := orchestration.Request{
		Params: a.Config.Params(),
		Scale:  a.Config.Scale,
		Strict:  a.Config.Strict,
		Timeout: a.Config.Timeout,
	}
	opts := append([]orchestration.Option{orchestration.WithLogger(a.Logger)}, a.computeOpts...)
	res := orchestration.Execute(ctx, req, reporter, progressOut, opts...)

	a.Recorder.Observe(metrics.Run{
		Iterations: res.Params.Iterations,
		Value:      res.Value,
		Scaled:     res.Scaled,
		Duration:   res.Duration,
		CPU:        res.CPU.Total(),
		Err:        res.Err,
	})

	presenter := cli.CLIResultPresenter{}
	presOpts := orchestration.PresentationOptions{
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
		Quiet:   a.Config.Quiet,
	}
	exitCode := orchestration.AnalyzeResult(res, presOpts, presenter, presenter, out, a.ErrWriter)

	if err := a.export(res); err != nil {
		a.Logger.Error("export failed", err)
		if exitCode == apperrors.ExitSuccess {
			exitCode = apperrors.ExitErrorGeneric
		}
	} else if res.Err == nil && a.Config.OutputFile != "" && !a.Config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return exitCode
}

// export writes the result file and the metrics textfile concurrently.
// The result file is skipped for failed runs; metrics are always written so
// failures are counted.
func (a *Application) export(res orchestration.CalculationResult) error {
	var g errgroup.Group
	if a.Config.OutputFile != "" && res.Err == nil {
		g.Go(func() error {
			if err := cli.WriteResultToFile(res, a.Config.OutputFile); err != nil {
				return apperrors.WrapError(err, "saving result to %s", a.Config.OutputFile)
			}
			a.Logger.Debug("result saved", logging.String("path", a.Config.OutputFile))
			return nil
		})
	}
	if a.Config.MetricsFile != "" {
		g.Go(func() error {
			if err := a.Recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
				return apperrors.WrapError(err, "writing metrics to %s", a.Config.MetricsFile)
			}
			a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
			return nil
		})
	}
	return g.Wait()
}
