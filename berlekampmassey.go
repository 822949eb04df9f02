package bch

// berlekampMassey synthesizes the error-locator polynomial Lambda(X) from
// the syndrome sequence, writing it into c.elp and returning deg Lambda.
// It returns ErrBadMessage if deg Lambda ends up above t.
//
// The outer loop guard is "i < t && deg Lambda <= t", which deliberately
// allows deg Lambda to exceed t by one iteration before the final check
// below rejects it — do not tighten this to "< t" without also revisiting
// the final check. Grounded on compute_error_locator_polynomial in the
// original C implementation.
func berlekampMassey(c *Control, syn []uint32) (int, error) {
	t := c.t
	n := c.n
	gf := c.gf

	elp, pelp, elpCopy := c.elp, c.pelp, c.elpCopy
	elp.Reset()
	elp.SetCoeff(0, 1)
	pelp.Reset()
	pelp.SetCoeff(0, 1)

	pd := uint32(1)
	d := syn[0]
	pp := -1

	for i := 0; i < t && elp.Deg() <= t; i++ {
		if d != 0 {
			k := 2*i - pp
			elpCopy.CopyFrom(elp)
			scale := gf.Log(d) + n - gf.Log(pd)
			for j := 0; j <= pelp.Deg(); j++ {
				if pc := pelp.Coeff(j); pc != 0 {
					l := gf.Log(pc)
					idx := j + k
					elp.RawSet(idx, elp.RawCoeff(idx)^gf.Exp(scale+l))
				}
			}
			grown := pelp.Deg() + k
			if grown > elp.Deg() {
				elp.SetDeg(grown)
				pelp.CopyFrom(elpCopy)
				pd = d
				pp = 2 * i
			}
		}
		if i < t-1 {
			d = syn[2*i+2]
			for j := 1; j <= elp.Deg(); j++ {
				d ^= gf.Mul(elp.RawCoeff(j), syn[2*i+2-j])
			}
		}
	}

	if elp.Deg() > t {
		return 0, ErrBadMessage
	}
	return elp.Deg(), nil
}
