// Package app wires configuration, logging, the timing harness and the
// presentation layers into the seriescalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/seriescalc/internal/cli"
	"github.com/agbru/seriescalc/internal/config"
	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/logging"
	"github.com/agbru/seriescalc/internal/metrics"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/tui"
	"github.com/agbru/seriescalc/internal/ui"
)

// Application represents the seriescalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Recorder  *metrics.Recorder

	computeOpts []orchestration.Option
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithComputeFunc replaces series.Compute in the harness.
func WithComputeFunc(f orchestration.ComputeFunc) AppOption {
	return func(a *Application) { a.computeOpts = append(a.computeOpts, orchestration.WithComputeFunc(f)) }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "seriescalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter, Recorder: metrics.NewRecorder()}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = newLogger(errWriter, cfg.Debug)
	}
	app.Logger.Debug("configuration parsed",
		logging.String("params", cfg.Params().String()),
		logging.Float64("scale", cfg.Scale),
		logging.Duration("timeout", cfg.Timeout),
		logging.String("strict", fmt.Sprint(cfg.Strict)))
	return app, nil
}

// newLogger returns the console logger used on stderr: warnings and errors
// only, everything with debug enabled.
func newLogger(w io.Writer, debug bool) logging.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return logging.NewConsoleLogger(w, "seriescalc").WithLevel(level)
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runCalculate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard. The timeout applies to each
// run, not to the session.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
