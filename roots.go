package bch

import "github.com/go-bch/bch/galois"

// findRoots finds the roots of poly over GF(2^m) using the Berlekamp-Trace
// / Zinoviev (BTZ) recursion: closed-form solvers for degree 1-4, and a
// trace-based GCD split for anything larger. Roots are written into roots
// as exponents e such that alpha^(-e) is a root, i.e. alpha^e is the
// inverse of a root; for an error-locator polynomial e is the error's
// position exponent, which the caller maps to a bit position. k is the
// trace index to use for the next factoring step.
// Grounded on find_poly_roots in the original C implementation.
func findRoots(c *Control, k int, poly *galois.Poly, roots []int) int {
	switch poly.Deg() {
	case 1:
		return findRootsDeg1(c, poly, roots)
	case 2:
		return findRootsDeg2(c, poly, roots)
	case 3:
		return findRootsDeg3(c, poly, roots)
	case 4:
		return findRootsDeg4(c, poly, roots)
	default:
		if poly.Deg() == 0 || k > c.m {
			return 0
		}
		g, h := factorPolynomial(c, k, poly)
		cnt := findRoots(c, k+1, g, roots)
		if h != nil {
			cnt += findRoots(c, k+1, h, roots[cnt:])
		}
		return cnt
	}
}

// findRootsDeg1 finds the root c/b of bX+c (c = poly.Coeff(0), b =
// poly.Coeff(1)), reporting it as log(b/c), the exponent of its inverse.
func findRootsDeg1(c *Control, poly *galois.Poly, roots []int) int {
	gf := c.gf
	if poly.Coeff(0) == 0 {
		return 0
	}
	roots[0] = gf.ModN(c.n - gf.Log(poly.Coeff(0)) + gf.Log(poly.Coeff(1)))
	return 1
}

// findRootsDeg2 finds the roots of aX^2+bX+c by substituting Z=(a/b)X to
// reach Z^2+Z=u, solving via the precomputed degree-2 trace base, and
// mapping back through the inverse substitution.
func findRootsDeg2(c *Control, poly *galois.Poly, roots []int) int {
	gf := c.gf
	c0, c1, c2 := poly.Coeff(0), poly.Coeff(1), poly.Coeff(2)
	if c0 == 0 || c1 == 0 {
		return 0
	}
	l0, l1, l2 := gf.Log(c0), gf.Log(c1), gf.Log(c2)
	u := gf.Exp(l0 + l2 + 2*(c.n-l1))

	var r uint32
	v := u
	for v != 0 {
		i := deg32(v)
		r ^= c.xiTab[i]
		v ^= 1 << uint(i)
	}
	if gf.Square(r)^r != u {
		return 0
	}
	roots[0] = gf.ModN(2*c.n - l1 - gf.Log(r) + l2)
	roots[1] = gf.ModN(2*c.n - l1 - gf.Log(r^1) + l2)
	return 2
}

// findRootsDeg3 reduces X^3+a2X^2+b2X+c2 to an affine quartic by
// multiplying by (X+a2), solves that with findAffine4Roots, and discards
// the spurious root a2 the multiplication introduced.
func findRootsDeg3(c *Control, poly *galois.Poly, roots []int) int {
	gf := c.gf
	if poly.Coeff(0) == 0 {
		return 0
	}
	e3 := poly.Coeff(3)
	c2 := gf.Div(poly.Coeff(0), e3)
	b2 := gf.Div(poly.Coeff(1), e3)
	a2 := gf.Div(poly.Coeff(2), e3)

	cc := gf.Mul(a2, c2)
	bb := gf.Mul(a2, b2) ^ c2
	aa := gf.Square(a2) ^ b2

	var elems [4]uint32
	if findAffine4Roots(c, aa, bb, cc, elems[:]) != 4 {
		return 0
	}
	n := 0
	for _, e := range elems {
		if e != a2 {
			roots[n] = gf.ILog(e)
			n++
		}
	}
	return n
}

// findRootsDeg4 normalizes to monic X^4+aX^3+bX^2+cX+d. If the cubic term
// is present, it eliminates the linear term via Z=X+e (with e^2 = c/a) and
// then inverts with Y=1/X to reach an affine quartic; without a cubic term
// the quartic is already affine. It solves that and unmaps the
// substitutions.
func findRootsDeg4(c *Control, poly *galois.Poly, roots []int) int {
	gf := c.gf
	if poly.Coeff(0) == 0 {
		return 0
	}
	e4 := poly.Coeff(4)
	d := gf.Div(poly.Coeff(0), e4)
	cc := gf.Div(poly.Coeff(1), e4)
	b := gf.Div(poly.Coeff(2), e4)
	a := gf.Div(poly.Coeff(3), e4)

	var e, a2, b2, c2 uint32
	if a != 0 {
		if cc != 0 {
			f := gf.Div(cc, a)
			l := gf.Log(f)
			if l&1 != 0 {
				l += c.n
			}
			e = gf.Exp(l / 2)
			d = gf.Exp(2*l) ^ gf.Mul(b, f) ^ d
			b = gf.Mul(a, e) ^ b
		}
		if d == 0 {
			// assumes simple roots; a repeated root here means no result
			return 0
		}
		c2 = gf.Inv(d)
		b2 = gf.Div(a, d)
		a2 = gf.Div(b, d)
	} else {
		c2 = d
		b2 = cc
		a2 = b
	}

	var elems [4]uint32
	if findAffine4Roots(c, a2, b2, c2, elems[:]) != 4 {
		return 0
	}
	for i, f := range elems {
		if a != 0 {
			f = gf.Inv(f)
		}
		roots[i] = gf.ILog(f ^ e)
	}
	return 4
}

// findAffine4Roots finds the 4 roots of the affine monic quartic
// X^4+aX^2+bX+c by building the m x m binary linear system whose rows
// encode (alpha^i)^4 + a(alpha^i)^2 + b(alpha^i) = c, transposing it with
// a standard bit-matrix transpose (valid for m < 16), and solving it.
// Grounded on find_affine4_roots.
func findAffine4Roots(c *Control, a, b, cc uint32, roots []uint32) int {
	gf := c.gf
	m := c.m
	var rows [16]uint32

	j := gf.Log(b)
	k := gf.Log(a)
	rows[0] = cc
	for i := 0; i < m; i++ {
		var ta, tb uint32
		if a != 0 {
			ta = gf.Exp(gf.ModS(k))
		}
		if b != 0 {
			tb = gf.Exp(gf.ModS(j))
		}
		rows[i+1] = gf.Exp(4*i) ^ ta ^ tb
		j++
		k += 2
	}

	mask := uint32(0xff)
	for jj := 8; jj != 0; {
		for k2 := 0; k2 < 16; k2 = (k2 + jj + 1) &^ jj {
			t := ((rows[k2] >> uint(jj)) ^ rows[k2+jj]) & mask
			rows[k2] ^= t << uint(jj)
			rows[k2+jj] ^= t
		}
		jj >>= 1
		if jj != 0 {
			mask ^= mask << uint(jj)
		}
	}
	return solveLinearSystem(c, rows[:], roots, 4)
}

// computeTraceBkMod computes Tr_k(X) mod f = (sum_{i=0}^{m-1} (alpha^k X)^(2^i)) mod f,
// using z as scratch for the repeatedly-squared-and-reduced alpha^k.X term
// and writing the result into out. Grounded on compute_trace_bk_mod.
func computeTraceBkMod(c *Control, k int, f *galois.Poly, z, out *galois.Poly) {
	gf := c.gf
	m := c.m

	z.Reset()
	z.SetDeg(1)
	z.RawSet(0, 0)
	z.RawSet(1, gf.Exp(k))

	out.Reset()
	for j := 0; j <= f.Deg(); j++ {
		out.RawSet(j, 0)
	}
	out.SetDeg(0)

	for i := 0; i < m; i++ {
		for j := z.Deg(); j >= 0; j-- {
			out.RawSet(j, out.RawCoeff(j)^z.RawCoeff(j))
			z.RawSet(2*j, gf.Square(z.RawCoeff(j)))
			z.RawSet(2*j+1, 0)
		}
		if z.Deg() > out.Deg() {
			out.SetDeg(z.Deg())
		}
		if i < m-1 {
			z.SetDeg(2 * z.Deg())
			z.Mod(f)
		}
	}
	out.Normalize()
}

// factorPolynomial attempts to split f into two factors via
// gcd(f, Tr_k(X) mod f). It returns f itself as g and a nil h when the
// trace vanishes or the gcd is trivial (the caller retries with k+1), or
// two fresh, non-aliased polynomials otherwise. Unlike the original's
// pointer-aliasing trick (which reuses f's backing storage for one of the
// factors), this always allocates fresh workspaces so f is never mutated.
// Grounded on factor_polynomial.
func factorPolynomial(c *Control, k int, f *galois.Poly) (g, h *galois.Poly) {
	f2 := c.poly2t[0]
	tk := c.poly2t[2]
	z := c.poly2t[3]

	computeTraceBkMod(c, k, f, z, tk)
	if tk.Deg() == 0 {
		return f, nil
	}

	f2.CopyFrom(f)
	x, y := f2, tk
	if x.Deg() < y.Deg() {
		x, y = y, x
	}
	for y.Deg() > 0 {
		x.Mod(y)
		x, y = y, x
	}
	gcdPoly := x

	if gcdPoly.Deg() >= f.Deg() {
		return f, nil
	}

	fCopy := galois.NewPoly(c.gf, f.Deg()+1)
	fCopy.CopyFrom(f)
	hPoly := galois.NewPoly(c.gf, f.Deg()-gcdPoly.Deg()+1)
	fCopy.Div(gcdPoly, hPoly)

	gPoly := galois.NewPoly(c.gf, gcdPoly.Deg()+1)
	gPoly.CopyFrom(gcdPoly)

	return gPoly, hPoly
}
