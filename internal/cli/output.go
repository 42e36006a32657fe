// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/seriescalc/internal/format"
	"github.com/agbru/seriescalc/internal/orchestration"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints a single machine-readable line.
	Quiet bool
}

// DisplayResult prints the two result lines:
//
//	Result: <scaled value, 12 decimals>
//	Execution Time: <seconds, 6 decimals> seconds
//
// Non-finite values are printed as formatted by fmt (+Inf, -Inf, NaN).
func DisplayResult(res orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "Result: %s\n", format.FormatResult(res.Scaled))
	fmt.Fprintf(out, "Execution Time: %s seconds\n", format.FormatSeconds(res.Duration))
}

// FormatQuietResult returns "<value> <seconds>" for scripting.
func FormatQuietResult(res orchestration.CalculationResult) string {
	return format.FormatResult(res.Scaled) + " " + format.FormatSeconds(res.Duration)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(res orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResultWithConfig prints res in the mode selected by cfg.
func DisplayResultWithConfig(res orchestration.CalculationResult, cfg OutputConfig, out io.Writer) {
	if cfg.Quiet {
		DisplayQuietResult(res, out)
		return
	}
	DisplayResult(res, out)
}

// WriteResultToFile writes a commented header followed by the result lines
// to path, creating parent directories as needed.
func WriteResultToFile(res orchestration.CalculationResult, path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	fmt.Fprintf(file, "# Series Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Parameters: %s\n", res.Params)
	fmt.Fprintf(file, "# Scale: %g\n", res.Scale)
	fmt.Fprintf(file, "# Raw value: %s\n", format.FormatResult(res.Value))
	fmt.Fprintf(file, "# Duration: %s\n", format.FormatExecutionDuration(res.Duration))
	fmt.Fprintf(file, "\n")
	DisplayResult(res, file)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
