package reference

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/series"
)

func TestExactPartialSum_SmallCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		params series.Params
		want   *big.Rat
	}{
		{"zero iterations", series.Params{Iterations: 0, A: 1, B: 1}, big.NewRat(1, 1)},
		{"one iteration", series.Params{Iterations: 1, A: 4, B: 1}, big.NewRat(13, 15)},
		// 13/15 - 1/7 + 1/9 = 263/315
		{"two iterations", series.Params{Iterations: 2, A: 4, B: 1}, big.NewRat(263, 315)},
		// 1 - 1/4 + 1/8 = 7/8
		{"other shape", series.Params{Iterations: 1, A: 6, B: 2}, big.NewRat(7, 8)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sum, err := ExactPartialSum(tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := sum.Rat(); got.Cmp(tt.want) != 0 {
				t.Errorf("ExactPartialSum(%v) = %s, want %s", tt.params, got.RatString(), tt.want.RatString())
			}
		})
	}
}

func TestExactPartialSum_Rejects(t *testing.T) {
	t.Parallel()

	_, err := ExactPartialSum(series.Params{Iterations: MaxIterations + 1, A: 4, B: 1})
	var validationErr apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for large counts, got %v", err)
	}

	_, err = ExactPartialSum(series.Params{Iterations: 5, A: 1, B: 1})
	if !errors.Is(err, series.ErrZeroDenominator) {
		t.Errorf("expected ErrZeroDenominator, got %v", err)
	}
}

func TestMeasure(t *testing.T) {
	t.Parallel()
	p := series.Params{Iterations: 10_000, A: 4, B: 1}
	computed := p.Compute()

	drift, err := Measure(p, computed)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if drift.Computed != computed {
		t.Errorf("Computed = %v, want %v", drift.Computed, computed)
	}
	if drift.Absolute > 1e-11 {
		t.Errorf("Absolute drift %g is larger than expected for 10000 iterations", drift.Absolute)
	}
	if math.Abs(drift.Exact*series.DefaultScale-math.Pi) > 1e-3 {
		t.Errorf("exact scaled sum %v is not close to pi", drift.Exact*series.DefaultScale)
	}
	if drift.Relative < 0 || drift.Relative > 1e-11 {
		t.Errorf("Relative drift = %g", drift.Relative)
	}
}

func TestMeasure_PropagatesErrors(t *testing.T) {
	t.Parallel()
	if _, err := Measure(series.Params{Iterations: 2, A: 1, B: 1}, 0); err == nil {
		t.Error("expected an error for a zero denominator")
	}
}

// TestAgreesWithCompute_PropertyBased checks that the float64 accumulator
// stays within a few ULPs per iteration of the exact sum.
func TestAgreesWithCompute_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Compute is close to the exact partial sum", prop.ForAll(
		func(n, a, b int64) bool {
			p := series.Params{Iterations: n, A: a, B: b}
			if series.Validate(p) != nil {
				return true
			}
			sum, err := ExactPartialSum(p)
			if err != nil {
				return false
			}
			return math.Abs(sum.Float64()-p.Compute()) <= float64(n+1)*1e-14
		},
		gen.Int64Range(0, 500),
		gen.Int64Range(1, 40),
		gen.Int64Range(-40, 40),
	))

	properties.TestingRun(t)
}
