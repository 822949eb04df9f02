package bch

// computeSyndromes evaluates the received ecc bit-polynomial V(X) at
// alpha^(j+1) for j = 0..2t-1, writing the result into syn (length 2t).
// Odd syndromes are filled from the even ones via S[2j+1] = S[j]^2, which
// holds because squaring is linear in characteristic 2. Grounded on
// compute_syndromes in the original C implementation.
func computeSyndromes(c *Control, ecc []uint32, syn []uint32) {
	t := c.t
	s := c.eccBits

	if m := uint(s) & 31; m != 0 {
		ecc[s/32] &= ^((uint32(1) << (32 - m)) - 1)
	}
	for i := range syn {
		syn[i] = 0
	}

	idx := 0
	for {
		poly := ecc[idx]
		idx++
		s -= 32
		for poly != 0 {
			i := deg32(poly)
			for j := 0; j < 2*t; j += 2 {
				syn[j] ^= c.gf.Exp((j + 1) * (i + s))
			}
			poly ^= 1 << uint(i)
		}
		if s <= 0 {
			break
		}
	}

	for j := 0; j < t; j++ {
		syn[2*j+1] = c.gf.Square(syn[j])
	}
}
