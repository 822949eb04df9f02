package bch

import "github.com/go-bch/bch/galois"

// buildGenerator synthesizes g(X) = prod_{i in R} (X + alpha^i), where R is
// the set of exponents forced to be roots of g: for each i in 0..t-1, 2i+1
// and all its cyclotomic conjugates under r -> 2r mod n (spec.md 4.2).
// It sets c.eccBits to deg(g) and returns g's coefficients packed as a
// left-justified, big-endian bit string spanning ceil((deg(g)+1)/32)
// 32-bit words, one bit per coefficient from c[deg(g)] (always 1, since g
// is monic) down to c[0]. Grounded on compute_generator_polynomial in the
// original C implementation.
func buildGenerator(c *Control) []uint32 {
	gf := c.gf
	n := c.n
	roots := make([]bool, n)
	for i := 0; i < c.t; i++ {
		r := 2*i + 1
		for j := 0; j < c.m; j++ {
			roots[r] = true
			r *= 2
			if r >= n {
				r -= n
			}
		}
	}

	g := galois.NewPoly(gf, c.m*c.t+1)
	g.SetCoeff(0, 1)
	for i := 0; i < n; i++ {
		if roots[i] {
			g.AddMonicLinearRoot(gf.Exp(i))
		}
	}
	c.eccBits = g.Deg()

	nbits := g.Deg() + 1
	words := make([]uint32, divRoundUp(nbits, 32))
	pos := 0
	for wi := range words {
		var word uint32
		lim := 32
		if nbits-pos < 32 {
			lim = nbits - pos
		}
		for j := 0; j < lim; j++ {
			if g.Coeff(g.Deg()-(pos+j)) != 0 {
				word |= 1 << (31 - j)
			}
		}
		words[wi] = word
		pos += lim
	}
	return words
}
