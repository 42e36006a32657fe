//go:build gmp

package reference

import (
	"math/big"

	"github.com/ncw/gmp"
)

// splitSum returns num/den = Σ_{i=lo}^{hi} (d1-d2)/(d1*d2), with
// d1 = i*a - b and d2 = i*a + b. Products run in GMP; the result is
// converted back to math/big once.
func splitSum(a, b, lo, hi int64) (num, den *big.Int) {
	gn, gd := splitSumGMP(a, b, lo, hi)
	num, _ = new(big.Int).SetString(gn.String(), 10)
	den, _ = new(big.Int).SetString(gd.String(), 10)
	return num, den
}

func splitSumGMP(a, b, lo, hi int64) (num, den *gmp.Int) {
	if lo == hi {
		d1 := gmp.NewInt(lo*a - b)
		d2 := gmp.NewInt(lo*a + b)
		return gmp.NewInt(-2 * b), d1.Mul(d1, d2)
	}
	mid := lo + (hi-lo)/2
	ln, ld := splitSumGMP(a, b, lo, mid)
	rn, rd := splitSumGMP(a, b, mid+1, hi)

	ln.Mul(ln, rd)
	rn.Mul(rn, ld)
	ln.Add(ln, rn)
	ld.Mul(ld, rd)
	return ln, ld
}
