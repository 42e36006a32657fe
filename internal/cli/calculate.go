package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/seriescalc/internal/config"
	"github.com/agbru/seriescalc/internal/format"
	"github.com/agbru/seriescalc/internal/ui"
)

// PrintExecutionConfig displays the execution configuration before the run.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Summing %s%s%s iterations with a=%s%d%s, b=%s%d%s, scale %s%g%s and a timeout of %s%s%s.\n",
		ui.ColorMagenta(), format.FormatCount(cfg.Iterations), ui.ColorReset(),
		ui.ColorCyan(), cfg.ParamA, ui.ColorReset(),
		ui.ColorCyan(), cfg.ParamB, ui.ColorReset(),
		ui.ColorCyan(), cfg.Scale, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	mode := "parity (non-finite results are printed)"
	if cfg.Strict {
		mode = "strict (invalid parameters are rejected)"
	}
	fmt.Fprintf(out, "Validation: %s.\n", mode)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
