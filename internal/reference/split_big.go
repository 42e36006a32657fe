//go:build !gmp

package reference

import "math/big"

// splitSum returns num/den = Σ_{i=lo}^{hi} (d1-d2)/(d1*d2), with
// d1 = i*a - b and d2 = i*a + b.
func splitSum(a, b, lo, hi int64) (num, den *big.Int) {
	if lo == hi {
		d1 := big.NewInt(lo*a - b)
		d2 := big.NewInt(lo*a + b)
		return big.NewInt(-2 * b), d1.Mul(d1, d2)
	}
	mid := lo + (hi-lo)/2
	ln, ld := splitSum(a, b, lo, mid)
	rn, rd := splitSum(a, b, mid+1, hi)

	// ln/ld + rn/rd = (ln*rd + rn*ld) / (ld*rd)
	ln.Mul(ln, rd)
	rn.Mul(rn, ld)
	ln.Add(ln, rn)
	ld.Mul(ld, rd)
	return ln, ld
}
