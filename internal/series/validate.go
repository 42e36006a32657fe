package series

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrZeroDenominator reports that one of the two denominators evaluates
	// to zero for some index in range.
	ErrZeroDenominator = errors.New("denominator evaluates to zero")

	// ErrOverflow reports that i*a ± b can leave the int64 range.
	ErrOverflow = errors.New("denominator overflows int64")
)

// Term identifies which of the two per-iteration denominators is affected.
type Term string

const (
	// TermSubtracted is the denominator i*a - b.
	TermSubtracted Term = "i*a-b"
	// TermAdded is the denominator i*a + b.
	TermAdded Term = "i*a+b"
)

// DomainError describes parameters for which Compute would silently produce
// a meaningless result.
type DomainError struct {
	Params Params
	// Index is the first loop index hitting the condition, or 0 when the
	// condition is not tied to a single index (overflow).
	Index int64
	Term  Term
	Err   error
}

func (e *DomainError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("%s: %v at i=%d (%s)", e.Term, e.Err, e.Index, e.Params)
	}
	return fmt.Sprintf("%v (%s)", e.Err, e.Params)
}

func (e *DomainError) Unwrap() error { return e.Err }

// Validate reports whether Compute(p) would divide by zero or overflow,
// without running the loop. It returns nil when no division takes place.
//
// The overflow check is conservative: it rejects any parameters for which
// iterations*|a| + |b| exceeds math.MaxInt64.
func Validate(p Params) error {
	if p.Iterations <= 0 {
		return nil
	}
	if overflows(p.Iterations, p.A, p.B) {
		return &DomainError{Params: p, Err: ErrOverflow}
	}

	// Past this point |b| and n*|a| both fit in int64, so -b cannot overflow.
	type candidate struct {
		term      Term
		numerator int64
	}
	var first *DomainError
	for _, c := range []candidate{{TermSubtracted, p.B}, {TermAdded, -p.B}} {
		i, ok := zeroIndex(p.Iterations, p.A, c.numerator)
		if !ok {
			continue
		}
		if first == nil || i < first.Index {
			first = &DomainError{Params: p, Index: i, Term: c.term, Err: ErrZeroDenominator}
		}
	}
	if first != nil {
		return first
	}
	return nil
}

// zeroIndex returns the index i in [1, n] for which i*a == target.
func zeroIndex(n, a, target int64) (int64, bool) {
	if a == 0 {
		if target == 0 {
			return 1, true
		}
		return 0, false
	}
	if target%a != 0 {
		return 0, false
	}
	i := target / a
	return i, i >= 1 && i <= n
}

func overflows(n, a, b int64) bool {
	hi, lo := bits.Mul64(uint64(n), abs64(a))
	if hi != 0 {
		return true
	}
	sum, carry := bits.Add64(lo, abs64(b), 0)
	return carry != 0 || sum > math.MaxInt64
}

// abs64 returns |v| as an unsigned value, which is exact for math.MinInt64.
func abs64(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}
