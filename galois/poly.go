package galois

// Poly is a dense polynomial over GF(2^m): coefficient i (coeff of X^i)
// lives at index i of c, low-degree first, per the (deg, c[0..deg]) model.
// The backing slice has a fixed capacity fixed at construction time; deg is
// always the index of the highest non-zero coefficient, except for the
// formal zero polynomial, represented as deg=0, c[0]=0.
type Poly struct {
	gf  *GF
	deg int
	c   []uint32
}

// NewPoly returns the zero polynomial with room for degree up to cap-1.
func NewPoly(gf *GF, capacity int) *Poly {
	if capacity < 1 {
		capacity = 1
	}
	return &Poly{gf: gf, deg: 0, c: make([]uint32, capacity)}
}

// Deg returns the polynomial's degree.
func (p *Poly) Deg() int { return p.deg }

// Coeff returns the coefficient of X^i, or 0 if i exceeds the degree.
func (p *Poly) Coeff(i int) uint32 {
	if i < 0 || i > p.deg {
		return 0
	}
	return p.c[i]
}

// SetCoeff sets the coefficient of X^i directly, growing deg if needed. The
// caller must not exceed the polynomial's capacity.
func (p *Poly) SetCoeff(i int, v uint32) {
	p.c[i] = v
	if i > p.deg {
		p.deg = i
	}
	p.normalize()
}

// IsZero reports whether p is the formal zero polynomial.
func (p *Poly) IsZero() bool {
	return p.deg == 0 && p.c[0] == 0
}

// Reset zeroes the polynomial, retaining its backing capacity.
func (p *Poly) Reset() {
	for i := 0; i <= p.deg; i++ {
		p.c[i] = 0
	}
	p.deg = 0
}

// CopyFrom overwrites p's contents with src's. src must fit in p's capacity.
func (p *Poly) CopyFrom(src *Poly) {
	p.Reset()
	p.deg = src.deg
	copy(p.c, src.c[:src.deg+1])
}

// normalize shrinks deg while the leading coefficient is zero, as required
// for deg to stay the true degree after an XOR cancels the top term.
func (p *Poly) normalize() {
	for p.deg > 0 && p.c[p.deg] == 0 {
		p.deg--
	}
}

// Eval evaluates p at x using Horner's method.
func (p *Poly) Eval(x uint32) uint32 {
	gf := p.gf
	result := p.c[p.deg]
	for i := p.deg - 1; i >= 0; i-- {
		result = gf.Mul(result, x) ^ p.c[i]
	}
	return result
}

// AddMonicLinearRoot multiplies p in place by (X + root), growing its
// degree by one. Used by the generator-polynomial builder (spec.md 4.2),
// which repeatedly multiplies g(X) by (X - alpha^i) = (X + alpha^i).
func (p *Poly) AddMonicLinearRoot(root uint32) {
	gf := p.gf
	p.c[p.deg+1] = 1
	for j := p.deg; j > 0; j-- {
		p.c[j] = gf.Mul(p.c[j], root) ^ p.c[j-1]
	}
	p.c[0] = gf.Mul(p.c[0], root)
	p.deg++
}

// Mod computes p mod d in place, reducing p's degree below d's. d must be
// non-zero. Grounded on gf_poly_mod in the original C implementation.
func (p *Poly) Mod(d *Poly) {
	gf := p.gf
	if p.deg < d.deg || d.IsZero() {
		return
	}
	dlog := gf.Log(d.c[d.deg])
	for j := p.deg; j >= d.deg; j-- {
		if p.c[j] == 0 {
			continue
		}
		la := gf.Log(p.c[j])
		base := j - d.deg
		for i := 0; i < d.deg; i++ {
			if d.c[i] == 0 {
				continue
			}
			p.c[base+i] ^= gf.Exp(gf.Log(d.c[i]) + la - dlog)
		}
	}
	p.deg = d.deg - 1
	p.normalize()
}

// Div computes the quotient of p by d, writing it into q (whose capacity
// must be at least p.deg-d.deg+1) and reduces p to p mod d as a side
// effect, mirroring gf_poly_div in the original C implementation: Mod
// leaves the quotient sitting in the upper, now-out-of-range part of p's
// backing array, which Div lifts out before normalize-ing it away.
func (p *Poly) Div(d *Poly, q *Poly) {
	if p.deg < d.deg {
		q.Reset()
		return
	}
	qdeg := p.deg - d.deg
	origDeg := p.deg
	p.Mod(d)
	q.Reset()
	q.deg = qdeg
	copy(q.c, p.c[d.deg:origDeg+1])
	// Mod leaves each quotient coefficient multiplied by d's leading
	// coefficient; divide it back out unless d is monic.
	if lead := d.c[d.deg]; lead != 1 {
		for i := 0; i <= qdeg; i++ {
			q.c[i] = p.gf.Div(q.c[i], lead)
		}
	}
	q.normalize()
}

// RawCoeff returns the coefficient at index i regardless of deg, for
// algorithms (trace computation, Berlekamp-Massey) that maintain deg by
// hand while coefficients above the current deg are still meaningful
// mid-computation.
func (p *Poly) RawCoeff(i int) uint32 { return p.c[i] }

// RawSet sets the coefficient at index i without touching deg.
func (p *Poly) RawSet(i int, v uint32) { p.c[i] = v }

// SetDeg forces deg directly, bypassing normalize. The caller is
// responsible for the invariant that c[deg] is meaningful.
func (p *Poly) SetDeg(d int) { p.deg = d }

// Normalize re-applies the "c[deg] != 0 except for formal zero" invariant,
// for callers that used RawSet/SetDeg and need it restored.
func (p *Poly) Normalize() { p.normalize() }

// NewPolyFromCoeffs builds a polynomial from coefficients given low-degree
// first, trimming trailing (high-degree) zeros per the (deg, c[0..deg])
// invariant. The returned polynomial's capacity equals len(coeffs).
func NewPolyFromCoeffs(gf *GF, coeffs []uint32) *Poly {
	p := NewPoly(gf, len(coeffs))
	copy(p.c, coeffs)
	p.deg = len(coeffs) - 1
	p.normalize()
	return p
}

// Gcd computes gcd(a, b) over GF(2^m)[X], using scratch polynomials sa, sb
// as working copies (so that a and b themselves are left untouched); it
// returns whichever of sa/sb holds the final result.
func Gcd(a, b *Poly, sa, sb *Poly) *Poly {
	sa.CopyFrom(a)
	sb.CopyFrom(b)
	x, y := sa, sb
	if x.deg < y.deg {
		x, y = y, x
	}
	for y.deg > 0 {
		x.Mod(y)
		x, y = y, x
	}
	return x
}
