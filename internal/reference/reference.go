package reference

import (
	"fmt"
	"math"
	"math/big"

	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/series"
)

const (
	// MaxIterations bounds the iteration count accepted by ExactPartialSum.
	// The denominator grows by roughly 2*log2(4n) bits per iteration.
	MaxIterations = 100_000

	// floatPrec is the mantissa precision used to round the exact sum.
	floatPrec = 256
)

// Sum is an exact partial sum Num/Den. It is not reduced to lowest terms.
type Sum struct {
	Num *big.Int
	Den *big.Int
}

// Float returns Num/Den rounded to prec bits.
func (s Sum) Float(prec uint) *big.Float {
	num := new(big.Float).SetPrec(prec).SetInt(s.Num)
	den := new(big.Float).SetPrec(prec).SetInt(s.Den)
	return num.Quo(num, den)
}

// Float64 returns the float64 nearest to the exact sum.
func (s Sum) Float64() float64 {
	f, _ := s.Float(floatPrec).Float64()
	return f
}

// Rat returns the sum as a normalized big.Rat. Normalization costs a GCD of
// the full-size operands, so prefer Float for large iteration counts.
func (s Sum) Rat() *big.Rat {
	return new(big.Rat).SetFrac(s.Num, s.Den)
}

// Drift compares a float64 result with the exact partial sum.
type Drift struct {
	Exact    float64
	Computed float64
	Absolute float64
	Relative float64
}

// ExactPartialSum returns the exact value of series.Compute(p) as a Sum.
//
// It rejects iteration counts above MaxIterations and every parameter set
// series.Validate rejects, since the exact sum is undefined there.
func ExactPartialSum(p series.Params) (Sum, error) {
	if p.Iterations > MaxIterations {
		return Sum{}, apperrors.ValidationError{
			Field:   "iterations",
			Message: fmt.Sprintf("exact reference limited to %d iterations, got %d", MaxIterations, p.Iterations),
		}
	}
	if err := series.Validate(p); err != nil {
		return Sum{}, err
	}
	if p.Iterations <= 0 {
		return Sum{Num: big.NewInt(1), Den: big.NewInt(1)}, nil
	}

	// Each iteration contributes -1/d1 + 1/d2 = (d1 - d2) / (d1*d2).
	num, den := splitSum(p.A, p.B, 1, p.Iterations)
	// 1 + num/den
	num.Add(num, den)
	return Sum{Num: num, Den: den}, nil
}

// Measure returns the drift of computed relative to the exact partial sum.
func Measure(p series.Params, computed float64) (Drift, error) {
	exact, err := ExactPartialSum(p)
	if err != nil {
		return Drift{}, err
	}
	exactF := exact.Float(floatPrec)
	if math.IsNaN(computed) {
		e, _ := exactF.Float64()
		return Drift{Exact: e, Computed: computed, Absolute: math.NaN(), Relative: math.NaN()}, nil
	}
	diff := new(big.Float).SetPrec(floatPrec).SetFloat64(computed)
	diff.Sub(diff, exactF)

	abs, _ := diff.Abs(diff).Float64()
	e, _ := exactF.Float64()
	d := Drift{Exact: e, Computed: computed, Absolute: abs}
	if e != 0 {
		d.Relative = abs / math.Abs(e)
	}
	return d, nil
}
