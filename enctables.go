package bch

// buildMod8Tables precomputes, for each byte lane b in {0,1,2,3} and each
// byte value i in 0..255, the residue (i . X^(8b+deg g)) mod g(X), stored
// as c.eccWords 32-bit limbs at mod8Tab[(b*256+i)*eccWords : ...]. The
// computation repeatedly subtracts d-shifted copies of g for each set bit
// d of the dividend. Grounded on build_mod8_tables in the original C
// implementation.
func buildMod8Tables(c *Control, g []uint32) {
	l := c.eccWords
	plen := divRoundUp(c.eccBits+1, 32)
	ecclen := divRoundUp(c.eccBits, 32)

	for i := 0; i < 256; i++ {
		for b := 0; b < 4; b++ {
			tab := c.mod8Tab[(b*256+i)*l : (b*256+i)*l+l]
			data := uint32(i) << (8 * b)
			for data != 0 {
				d := deg32(data)
				data ^= g[0] >> (31 - d)
				for j := 0; j < ecclen; j++ {
					var hi, lo uint32
					if d < 31 {
						hi = g[j] << (d + 1)
					}
					if j+1 < plen {
						lo = g[j+1] >> (31 - d)
					}
					tab[j] ^= hi | lo
				}
			}
		}
	}
}

// deg32 returns the index of the most significant set bit of x (its
// polynomial degree when x is read as a GF(2)[X] coefficient bitmask).
// x must be non-zero.
func deg32(x uint32) int {
	d := -1
	for x != 0 {
		d++
		x >>= 1
	}
	return d
}
