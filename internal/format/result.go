// Package format holds the pure string formatting helpers shared by the CLI
// and the dashboard.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ResultDecimals is the number of digits printed after the decimal point for
// the scaled result.
const ResultDecimals = 12

// FormatResult renders v with exactly ResultDecimals decimals. Non-finite
// values render as "+Inf", "-Inf" or "NaN".
func FormatResult(v float64) string {
	return fmt.Sprintf("%.*f", ResultDecimals, v)
}

// FormatCount renders n with thousands separators (100000000 -> 100,000,000).
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatBytes renders a byte count with binary units (e.g., "1.5 MiB").
func FormatBytes(b uint64) string {
	return humanize.IBytes(b)
}
