package format

import (
	"math"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{0, "0µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Minute, "2m0s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.000000"},
		{1234567 * time.Microsecond, "1.234567"},
		{389 * time.Millisecond, "0.389000"},
		{1500 * time.Nanosecond, "0.000002"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{3.141592658589793, "3.141592658590"},
		{0.8666666666666667, "0.866666666667"},
		{1, "1.000000000000"},
		{math.Inf(-1), "-Inf"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.in); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCountAndBytes(t *testing.T) {
	t.Parallel()
	if got := FormatCount(100_000_000); got != "100,000,000" {
		t.Errorf("FormatCount = %q", got)
	}
	if got := FormatCount(-1234); got != "-1,234" {
		t.Errorf("FormatCount(-1234) = %q", got)
	}
	if got := FormatBytes(1536 * 1024); got != "1.5 MiB" {
		t.Errorf("FormatBytes = %q", got)
	}
}
