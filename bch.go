package bch

import (
	"fmt"

	"github.com/go-bch/bch/galois"
	"github.com/go-bch/bch/internal/arena"
)

// Control is a long-lived context for one (m, t, primPoly) BCH code.
// Everything reachable from Control except its scratch buffers is
// immutable after Init; callers must serialize calls on the same Control.
type Control struct {
	m, t, n  int
	eccBits  int
	eccBytes int
	eccWords int

	gf    *galois.GF
	xiTab []uint32

	// mod8Tab is laid out as 4 lanes of 256 rows of eccWords 32-bit limbs,
	// flattened: mod8Tab[(lane*256+byteVal)*eccWords + limb].
	mod8Tab []uint32

	eccBuf  []uint32
	eccBuf2 []uint32
	syn     []uint32

	elp, pelp, elpCopy *galois.Poly
	poly2t             [4]*galois.Poly

	logger Logger
	alloc  arena.Allocator
}

// Init constructs a Control for the given (m, t) parameters. primPoly may
// be 0 to select the published default for m, or an explicit (m+1)-bit
// primitive polynomial whose high bit, which must be set, is the degree-m
// term.
// Grounded on init_bch in the original C implementation.
func Init(m, t int, primPoly uint32) (*Control, error) {
	return InitWithAllocator(m, t, primPoly, arena.HeapAllocator{})
}

// InitWithAllocator is Init, but lets the caller supply the allocation
// shim Control uses to size and track its scratch buffers (addition: see
// package arena). Using an *arena.BumpAllocator instead of the default
// HeapAllocator gives the Control a fixed memory budget, mirroring the
// original library's embedded-target bump arena but owned per-instance.
func InitWithAllocator(m, t int, primPoly uint32, alloc arena.Allocator) (*Control, error) {
	if m < 5 || m > 15 {
		return nil, fmt.Errorf("%w: m=%d out of range [5,15]", ErrInvalidArg, m)
	}
	n := (1 << m) - 1
	if t < 1 || m*t >= n {
		return nil, fmt.Errorf("%w: t=%d invalid for m=%d (need m*t < n=%d)", ErrInvalidArg, t, m, n)
	}
	if primPoly == 0 {
		primPoly, _ = galois.DefaultPrimitivePoly(m)
	}

	// eccWords here is an upper bound (m*t bits) used only to size the
	// allocation budget check before deg(g) is known; the struct's real
	// eccWords/eccBytes are derived from the actual generator degree below,
	// since deg(g) may be smaller than the m*t bound (spec.md 3).
	eccWordsUB := divRoundUp(m*t, 32)
	budget := 2*(n+1)*2 + eccWordsUB*1024*4 + eccWordsUB*4*2 + m*4 + 2*t*4 + 7*(2*t+1)*4
	if avail := alloc.Available(); avail >= 0 && avail < budget {
		return nil, fmt.Errorf("%w: allocator has %d bytes free, need %d for m=%d t=%d", ErrInvalidArg, avail, budget, m, t)
	}
	alloc.Alloc(budget) // reserve/track the scratch-buffer budget; see package arena

	gf, err := galois.New(m, primPoly)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArg, err)
	}

	c := &Control{
		m:    m,
		t:    t,
		n:    n,
		gf:   gf,
		syn:  make([]uint32, 2*t),
		// Berlekamp-Massey can transiently grow elp's tracked degree well
		// past t on pathological (uncorrectable) inputs before the loop's
		// own guard catches up one iteration later; size generously rather
		// than truncate, matching the original library's own elp
		// allocation being larger than its other degree-2t scratch polys.
		elp:     galois.NewPoly(gf, 3*t+3),
		pelp:    galois.NewPoly(gf, 3*t+3),
		elpCopy: galois.NewPoly(gf, 3*t+3),
		logger:  noopLogger{},
		alloc:   alloc,
	}
	for i := range c.poly2t {
		c.poly2t[i] = galois.NewPoly(gf, 2*t+1)
	}

	genpoly := buildGenerator(c) // sets c.eccBits = deg(g)
	c.eccBytes = divRoundUp(c.eccBits, 8)
	c.eccWords = divRoundUp(c.eccBits, 32)
	c.mod8Tab = make([]uint32, c.eccWords*1024)
	c.eccBuf = make([]uint32, c.eccWords)
	c.eccBuf2 = make([]uint32, c.eccWords)
	buildMod8Tables(c, genpoly)

	c.xiTab, err = gf.BuildTraceBase()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return c, nil
}

// Close releases allocations Init acquired through the Control's
// allocator. It is safe to call multiple times, and optional when the
// default HeapAllocator is in use (the Go garbage collector reclaims that
// memory on its own).
func (c *Control) Close() {
	c.alloc.Release()
}

// SetLogger installs a trace sink. A nil Logger restores the no-op
// default.
func (c *Control) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	c.logger = l
}

// M returns the Galois field order.
func (c *Control) M() int { return c.m }

// T returns the maximum correctable error count.
func (c *Control) T() int { return c.t }

// N returns 2^m - 1, the code's length in bits.
func (c *Control) N() int { return c.n }

// ECCBits returns deg(g), the exact generator-polynomial degree (may be
// less than m*t).
func (c *Control) ECCBits() int { return c.eccBits }

// ECCBytes returns ceil(ECCBits()/8), the byte size of an ecc buffer passed
// to Encode/Decode.
func (c *Control) ECCBytes() int { return c.eccBytes }

func divRoundUp(n, d int) int {
	return (n + d - 1) / d
}
