// Package galois implements GF(2^m) arithmetic and dense polynomials over
// that field, the finite-field substrate the BCH codec is built on.
package galois

import "fmt"

// GF represents the finite field GF(2^m) used by a BCH code, built from a
// primitive polynomial of degree m.
//
// Elements are represented as m-bit integers. expTab and logTab are inverse
// of each other on {1..N}; expTab[N] is defined to be 1 so that exponents
// can be taken modulo N without a special case.
type GF struct {
	m       int
	n       int // n = 2^m - 1
	prim    uint32
	expTab  []uint16 // expTab[i] = alpha^i, i in [0, n]
	logTab  []uint16 // logTab[x] = log_alpha(x), x in [1, n]; logTab[0] is unused
}

// New builds GF(2^m) from the primitive polynomial prim, an (m+1)-bit value
// whose high bit, which must be set, is the degree-m term. It fails if prim does not
// have degree exactly m, or if prim is reducible (alpha^i = 1 for some
// 0 < i < n).
func New(m int, prim uint32) (*GF, error) {
	if m < 5 || m > 15 {
		return nil, fmt.Errorf("galois: m=%d out of range [5,15]", m)
	}
	n := (1 << m) - 1
	k := uint32(1) << m
	if deg32(prim) != m {
		return nil, fmt.Errorf("galois: primitive polynomial 0x%x is not degree %d", prim, m)
	}

	gf := &GF{
		m:      m,
		n:      n,
		prim:   prim,
		expTab: make([]uint16, n+1),
		logTab: make([]uint16, n+1),
	}

	x := uint32(1)
	for i := 0; i < n; i++ {
		gf.expTab[i] = uint16(x)
		gf.logTab[x] = uint16(i)
		if i != 0 && x == 1 {
			return nil, fmt.Errorf("galois: polynomial 0x%x is reducible", prim)
		}
		x <<= 1
		if x&k != 0 {
			x ^= prim
		}
	}
	gf.expTab[n] = 1
	gf.logTab[0] = 0

	return gf, nil
}

// M returns the field order (GF(2^m)).
func (gf *GF) M() int { return gf.m }

// N returns 2^m - 1, the multiplicative order and codeword length in bits.
func (gf *GF) N() int { return gf.n }

// Exp returns alpha^i, for any integer i (reduced modulo n).
func (gf *GF) Exp(i int) uint32 {
	return uint32(gf.expTab[gf.ModN(i)])
}

// Log returns log_alpha(x) for x in [1, n]. The caller must not pass 0.
func (gf *GF) Log(x uint32) int {
	return int(gf.logTab[x])
}

// ILog returns log_alpha(1/x), i.e. n - log(x) reduced modulo n.
func (gf *GF) ILog(x uint32) int {
	return gf.ModS(gf.n - int(gf.logTab[x]))
}

// Mul returns a*b in GF(2^m).
func (gf *GF) Mul(a, b uint32) uint32 {
	if a == 0 || b == 0 {
		return 0
	}
	return uint32(gf.expTab[gf.ModS(int(gf.logTab[a])+int(gf.logTab[b]))])
}

// Square returns a^2 in GF(2^m); squaring is a linear map in characteristic 2.
func (gf *GF) Square(a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return uint32(gf.expTab[gf.ModS(2*int(gf.logTab[a]))])
}

// Div returns a/b in GF(2^m). b must be non-zero.
func (gf *GF) Div(a, b uint32) uint32 {
	if a == 0 {
		return 0
	}
	return uint32(gf.expTab[gf.ModS(int(gf.logTab[a])+gf.n-int(gf.logTab[b]))])
}

// Inv returns 1/a in GF(2^m). a must be non-zero.
func (gf *GF) Inv(a uint32) uint32 {
	return uint32(gf.expTab[gf.n-int(gf.logTab[a])])
}

// Trace returns Tr(x) = sum_{i=0}^{m-1} x^(2^i), the GF(2)-linear trace map
// down to GF(2).
func (gf *GF) Trace(x uint32) uint32 {
	var sum uint32
	v := x
	for i := 0; i < gf.m; i++ {
		sum ^= v
		v = gf.Square(v)
	}
	return sum & 1
}

// BuildTraceBase computes the xi_tab basis used to solve z^2+z=u over
// GF(2^m) (spec.md 4.10): first finds any k with Tr(alpha^k)=1, then for
// every field element x records xi_tab[log(x^2+x)] = x, also trying
// (x^2+x) xor alpha^k to reach entries where Tr=1. Returns an error if any
// of the m entries can't be filled, which should never happen for a valid
// m. Grounded on build_deg2_base in the original C implementation.
func (gf *GF) BuildTraceBase() ([]uint32, error) {
	m := gf.m
	var ak uint32
	found := false
	for i := 0; i < m && !found; i++ {
		var sum uint32
		for j := 0; j < m; j++ {
			sum ^= gf.Exp(i * (1 << j))
		}
		if sum != 0 {
			ak = gf.Exp(i)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("galois: no k with Tr(alpha^k)=1 found")
	}

	xi := make([]uint32, m)
	filled := make([]bool, m)
	remaining := m
	for x := 0; x <= gf.n && remaining > 0; x++ {
		y := gf.Square(uint32(x)) ^ uint32(x)
		for i := 0; i < 2 && remaining > 0; i++ {
			if y != 0 {
				r := gf.Log(y)
				if r < m && !filled[r] {
					xi[r] = uint32(x)
					filled[r] = true
					remaining--
				}
			}
			y ^= ak
		}
	}
	if remaining > 0 {
		return nil, fmt.Errorf("galois: could not build complete degree-2 trace base")
	}
	return xi, nil
}

// ModN reduces any integer i into [0, n), handling negative inputs.
func (gf *GF) ModN(i int) int {
	v := i % gf.n
	if v < 0 {
		v += gf.n
	}
	return v
}

// ModS is the fast reduction used throughout the decoder: valid only for
// v in [0, 2n).
func (gf *GF) ModS(v int) int {
	if v < gf.n {
		return v
	}
	return v - gf.n
}

// defaultPrimPoly is the published default primitive polynomial table for
// m in [5,15], indexed by m-5.
var defaultPrimPoly = [...]uint32{
	0x25, 0x43, 0x83, 0x11d, 0x211, 0x409, 0x805, 0x1053, 0x201b, 0x402b, 0x8003,
}

// DefaultPrimitivePoly returns the published default primitive polynomial
// for the given m, or false if m is out of range.
func DefaultPrimitivePoly(m int) (uint32, bool) {
	if m < 5 || m > 15 {
		return 0, false
	}
	return defaultPrimPoly[m-5], true
}

// deg32 returns the degree of a polynomial encoded as an (m+1)-bit integer
// whose top bit is the degree-m term (i.e. the bit-length minus one).
func deg32(p uint32) int {
	d := -1
	for p != 0 {
		d++
		p >>= 1
	}
	return d
}
