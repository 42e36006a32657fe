// Package reference computes the partial sums of the series exactly, as a
// ratio of big integers, so the rounding drift of the float64 accumulator can
// be measured.
//
// The terms are combined by binary splitting. The default backend uses
// math/big; building with the "gmp" tag switches the products to GMP through
// github.com/ncw/gmp (requires libgmp and cgo).
package reference
