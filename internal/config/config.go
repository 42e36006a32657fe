// Package config parses and validates the seriescalc command line and its
// SERIESCALC_* environment overrides.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/series"
)

// EnvPrefix is prepended to every environment variable read by the
// configuration layer.
const EnvPrefix = "SERIESCALC_"

// DefaultTimeout bounds a single run. The reference configuration finishes
// in well under a second on current hardware.
const DefaultTimeout = 5 * time.Minute

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Iterations is the number of accumulator steps.
	Iterations int64
	// ParamA and ParamB are the shape parameters of the denominators.
	ParamA int64
	ParamB int64
	// Scale multiplies the accumulator output before display.
	Scale float64
	// Timeout bounds how long the harness waits for the result.
	Timeout time.Duration
	// Strict validates the series parameters before running and fails fast
	// on zero denominators or int64 overflow.
	Strict bool

	Verbose bool
	Details bool
	Quiet   bool
	TUI     bool
	NoColor bool
	Debug   bool

	// OutputFile, when set, receives a copy of the result.
	OutputFile string
	// MetricsFile, when set, receives the run metrics in the Prometheus
	// textfile format.
	MetricsFile string
	// Completion, when set, selects a shell for completion script output.
	Completion string
}

// Params returns the series parameters described by the configuration.
func (c AppConfig) Params() series.Params {
	return series.Params{Iterations: c.Iterations, A: c.ParamA, B: c.ParamB}
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Iterations < 0 {
		return apperrors.NewConfigError("iteration count must be >= 0, got %d", c.Iterations)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("--quiet and --tui cannot be combined")
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Environment variables fill in any flag that was not set explicitly.
// flag.ErrHelp is returned unchanged when -h or --help is given.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.Int64Var(&cfg.Iterations, "n", series.DefaultIterations, "Number of iterations.")
	fs.Int64Var(&cfg.Iterations, "iterations", series.DefaultIterations, "Number of iterations (alias for -n).")
	fs.Int64Var(&cfg.ParamA, "a", series.DefaultParamA, "Multiplier of the loop index in both denominators.")
	fs.Int64Var(&cfg.ParamB, "b", series.DefaultParamB, "Offset subtracted from and added to i*a.")
	fs.Float64Var(&cfg.Scale, "scale", series.DefaultScale, "Factor applied to the accumulator before display.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum time to wait for the result (e.g., 30s, 1m).")
	fs.BoolVar(&cfg.Strict, "strict", false, "Reject parameters that divide by zero or overflow instead of printing a non-finite result.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Print the execution configuration before running.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print the execution configuration (alias for -v).")
	fs.BoolVar(&cfg.Details, "d", false, "Print timing, CPU, memory and rounding details after the result.")
	fs.BoolVar(&cfg.Details, "details", false, "Print details (alias for -d).")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print a single machine-readable line.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Quiet mode (alias for -q).")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write the result to this file.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Output file (alias for -o).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus textfile format.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Run the interactive dashboard.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging on stderr.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script (bash, zsh, fish, powershell).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Computes 1 - Σ 1/(i*a-b) + Σ 1/(i*a+b) for i = 1..n and times it.\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (%s*) apply to flags not set on the command line.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}
