package cli

import (
	"fmt"
	"io"

	"github.com/agbru/seriescalc/internal/format"
	"github.com/agbru/seriescalc/internal/metrics"
	"github.com/agbru/seriescalc/internal/orchestration"
	"github.com/agbru/seriescalc/internal/reference"
	"github.com/agbru/seriescalc/internal/sysmon"
	"github.com/agbru/seriescalc/internal/ui"
)

// DisplayDetails prints timing, CPU, host load, heap statistics and, for
// small iteration counts, the rounding drift against the exact sum.
func DisplayDetails(res orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Details ---\n")
	fmt.Fprintf(out, "Parameters:      %s%s%s (scale %g)\n", ui.ColorCyan(), res.Params, ui.ColorReset(), res.Scale)
	fmt.Fprintf(out, "Raw value:       %s\n", format.FormatResult(res.Value))
	fmt.Fprintf(out, "Wall time:       %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	displayCPU(res.CPU, out)

	load := sysmon.Sample()
	fmt.Fprintf(out, "Host load:       CPU %.1f%%, memory %.1f%%\n", load.CPUPercent, load.MemPercent)

	DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
	DisplayDrift(res, out)
}

func displayCPU(cpu sysmon.CPUTime, out io.Writer) {
	if cpu.Total() == 0 {
		fmt.Fprintf(out, "CPU time:        unavailable\n")
		return
	}
	fmt.Fprintf(out, "CPU time:        %s (user %s, system %s)\n",
		format.FormatExecutionDuration(cpu.Total()),
		format.FormatExecutionDuration(cpu.User),
		format.FormatExecutionDuration(cpu.System))
}

// DisplayMemoryStats shows runtime memory statistics.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "Total allocated: %s\n", format.FormatBytes(snap.TotalAlloc))
	fmt.Fprintf(out, "GC cycles:       %d (pause total %.2fms)\n", snap.NumGC, float64(snap.PauseTotalNs)/1e6)
}

// DisplayDrift prints the difference between the computed raw value and the
// exact partial sum. Large or invalid parameter sets are reported as skipped.
func DisplayDrift(res orchestration.CalculationResult, out io.Writer) {
	drift, err := reference.Measure(res.Params, res.Value)
	if err != nil {
		fmt.Fprintf(out, "Rounding drift:  skipped (%v)\n", err)
		return
	}
	fmt.Fprintf(out, "Rounding drift:  %s%.3e%s absolute, %.3e relative (exact %s)\n",
		ui.ColorGreen(), drift.Absolute, ui.ColorReset(), drift.Relative, format.FormatResult(drift.Exact))
}
