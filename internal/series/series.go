package series

import "fmt"

// Params groups the three numeric inputs of a computation.
type Params struct {
	// Iterations is the number of loop steps. Zero or negative runs no step.
	Iterations int64
	// A multiplies the loop index in both denominators.
	A int64
	// B is subtracted from (first term) and added to (second term) i*A.
	B int64
}

// DefaultParams returns the reference configuration (100,000,000 / 4 / 1).
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		A:          DefaultParamA,
		B:          DefaultParamB,
	}
}

// String returns a compact description such as "n=100 a=4 b=1".
func (p Params) String() string {
	return fmt.Sprintf("n=%d a=%d b=%d", p.Iterations, p.A, p.B)
}

// Compute runs the accumulator for the given parameters.
// It is equivalent to Compute(p.Iterations, p.A, p.B).
func (p Params) Compute() float64 {
	return Compute(p.Iterations, p.A, p.B)
}

// Compute returns the accumulator value after iterations steps of
//
//	acc -= 1/(i*a - b)
//	acc += 1/(i*a + b)
//
// for i = 1..iterations, starting from acc = 1.0.
//
// The denominators are computed in int64 arithmetic and converted to float64
// before the division. No input is validated: a zero denominator yields an
// infinite or NaN result, and i*a wraps silently if it leaves the int64
// range. Use Validate to detect both conditions ahead of time.
//
// The summation order is fixed, so the result is bit-for-bit reproducible.
func Compute(iterations, a, b int64) float64 {
	acc := InitialValue
	for i := int64(1); i <= iterations; i++ {
		acc -= 1.0 / float64(i*a-b)
		acc += 1.0 / float64(i*a+b)
	}
	return acc
}
