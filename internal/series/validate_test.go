package series

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		params    Params
		wantErr   error
		wantIndex int64
		wantTerm  Term
	}{
		{name: "reference configuration", params: DefaultParams()},
		{name: "zero iterations skip checks", params: Params{Iterations: 0, A: 1, B: 1}},
		{name: "negative iterations skip checks", params: Params{Iterations: -5, A: 0, B: 0}},
		{
			name:      "first term zero at i=1",
			params:    Params{Iterations: 10, A: 1, B: 1},
			wantErr:   ErrZeroDenominator,
			wantIndex: 1,
			wantTerm:  TermSubtracted,
		},
		{
			name:      "first term zero later in range",
			params:    Params{Iterations: 10, A: 2, B: 8},
			wantErr:   ErrZeroDenominator,
			wantIndex: 4,
			wantTerm:  TermSubtracted,
		},
		{name: "first term zero beyond range", params: Params{Iterations: 3, A: 2, B: 8}},
		{
			name:      "second term zero with negative offset",
			params:    Params{Iterations: 10, A: 3, B: -6},
			wantErr:   ErrZeroDenominator,
			wantIndex: 2,
			wantTerm:  TermAdded,
		},
		{
			name:      "zero multiplier and zero offset",
			params:    Params{Iterations: 1, A: 0, B: 0},
			wantErr:   ErrZeroDenominator,
			wantIndex: 1,
			wantTerm:  TermSubtracted,
		},
		{name: "zero multiplier with offset", params: Params{Iterations: 100, A: 0, B: 3}},
		{name: "non divisible offset", params: Params{Iterations: 100, A: 4, B: 3}},
		{
			name:    "overflow on multiplication",
			params:  Params{Iterations: math.MaxInt64 / 2, A: 4, B: 1},
			wantErr: ErrOverflow,
		},
		{
			name:    "overflow on offset",
			params:  Params{Iterations: 1, A: 1, B: math.MaxInt64},
			wantErr: ErrOverflow,
		},
		{
			name:    "overflow with minimum int64",
			params:  Params{Iterations: 1, A: math.MinInt64, B: 0},
			wantErr: ErrOverflow,
		},
		{name: "largest safe product", params: Params{Iterations: math.MaxInt64 / 4, A: 4, B: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.params)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate(%+v) = %v, want nil", tt.params, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate(%+v) = %v, want %v", tt.params, err, tt.wantErr)
			}
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("expected *DomainError, got %T", err)
			}
			if domainErr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", domainErr.Index, tt.wantIndex)
			}
			if tt.wantTerm != "" && domainErr.Term != tt.wantTerm {
				t.Errorf("Term = %q, want %q", domainErr.Term, tt.wantTerm)
			}
		})
	}
}

func TestValidate_ReportsAddedTerm(t *testing.T) {
	t.Parallel()
	// 2i+2 never vanishes for i >= 1; 2i-2 vanishes at i=1.
	err := Validate(Params{Iterations: 10, A: 2, B: -2})
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected *DomainError, got %v", err)
	}
	if domainErr.Index != 1 || domainErr.Term != TermAdded {
		t.Errorf("got index %d term %q, want 1 %q", domainErr.Index, domainErr.Term, TermAdded)
	}
}

func TestDomainError_Error(t *testing.T) {
	t.Parallel()
	zero := &DomainError{Params: Params{Iterations: 10, A: 1, B: 1}, Index: 1, Term: TermSubtracted, Err: ErrZeroDenominator}
	if got, want := zero.Error(), "i*a-b: denominator evaluates to zero at i=1 (n=10 a=1 b=1)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	overflow := &DomainError{Params: Params{Iterations: 1, A: 1, B: math.MaxInt64}, Err: ErrOverflow}
	if got, want := overflow.Error(), "denominator overflows int64 (n=1 a=1 b=9223372036854775807)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
