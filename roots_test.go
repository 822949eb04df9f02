package bch

import (
	"testing"

	"github.com/go-bch/bch/galois"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootsDeg1MatchesEval(t *testing.T) {
	c := mustInit(t, 8, 4)
	gf := c.gf
	for _, e := range []int{0, 1, 7, 200, gf.N() - 1} {
		root := gf.Exp(e)
		// poly = X + root, i.e. coeff0=root, coeff1=1
		poly := galois.NewPolyFromCoeffs(gf, []uint32{root, 1})
		roots := make([]int, 1)
		n := findRootsDeg1(c, poly, roots)
		require.Equal(t, 1, n)
		// findRootsDeg1 reports the exponent of the root's inverse.
		assert.Equal(t, uint32(0), poly.Eval(gf.Inv(gf.Exp(roots[0]))), "alpha^-%d should zero the polynomial", roots[0])
		assert.Equal(t, root, gf.Inv(gf.Exp(roots[0])), "recovered root should equal the one we injected")
	}
}

func TestFindRootsDeg2MatchesEval(t *testing.T) {
	c := mustInit(t, 8, 4)
	gf := c.gf
	for _, pair := range [][2]uint32{{gf.Exp(3), gf.Exp(17)}, {gf.Exp(1), gf.Exp(2)}} {
		r1, r2 := pair[0], pair[1]
		if r1 == r2 {
			continue
		}
		// poly = (X+r1)(X+r2) = X^2 + (r1^r2)X + r1*r2
		poly := galois.NewPolyFromCoeffs(gf, []uint32{gf.Mul(r1, r2), r1 ^ r2, 1})
		roots := make([]int, 2)
		n := findRootsDeg2(c, poly, roots)
		require.Equal(t, 2, n)
		for _, e := range roots {
			assert.Equal(t, uint32(0), poly.Eval(gf.Inv(gf.Exp(e))), "alpha^-%d should zero the polynomial", e)
		}
	}
}

// buildMonicProduct returns prod_i (X+roots[i]), via the same
// AddMonicLinearRoot repeated-multiplication buildGenerator itself uses.
func buildMonicProduct(gf *galois.GF, roots []uint32) *galois.Poly {
	p := galois.NewPoly(gf, len(roots)+1)
	p.SetCoeff(0, 1)
	for _, r := range roots {
		p.AddMonicLinearRoot(r)
	}
	return p
}

func TestFindRootsDeg3MatchesEval(t *testing.T) {
	c := mustInit(t, 8, 4)
	gf := c.gf
	roots := []uint32{gf.Exp(3), gf.Exp(17), gf.Exp(50)}
	poly := buildMonicProduct(gf, roots)
	require.Equal(t, 3, poly.Deg())

	found := make([]int, 3)
	n := findRootsDeg3(c, poly, found)
	require.Equal(t, 3, n)
	seen := map[uint32]bool{}
	for _, e := range found {
		x := gf.Inv(gf.Exp(e))
		assert.Equal(t, uint32(0), poly.Eval(x), "alpha^-%d should zero the polynomial", e)
		seen[x] = true
	}
	for _, r := range roots {
		assert.True(t, seen[r], "injected root %d was not recovered", r)
	}
}

// TestFindRootsAboveDegree4UsesBTARecursion drives findRoots with a
// degree-6 error-locator polynomial, forcing it past the deg1-4 closed
// forms into factorPolynomial/computeTraceBkMod's trace-GCD split.
func TestFindRootsAboveDegree4UsesBTARecursion(t *testing.T) {
	c := mustInit(t, 13, 8)
	gf := c.gf
	roots := []uint32{gf.Exp(1), gf.Exp(10), gf.Exp(100), gf.Exp(1000), gf.Exp(3000), gf.Exp(7000)}
	poly := buildMonicProduct(gf, roots)
	require.Equal(t, 6, poly.Deg())

	found := make([]int, 6)
	n := findRoots(c, 1, poly, found)
	require.Equal(t, 6, n, "BTA recursion should recover all 6 roots of a degree-6 polynomial")
	seen := map[uint32]bool{}
	for _, e := range found[:n] {
		x := gf.Inv(gf.Exp(e))
		assert.Equal(t, uint32(0), poly.Eval(x), "alpha^-%d should zero the polynomial", e)
		seen[x] = true
	}
	for _, r := range roots {
		assert.True(t, seen[r], "injected root %d was not recovered", r)
	}
}

func TestSolveLinearSystemRecoversKnownSolution(t *testing.T) {
	c := mustInit(t, 8, 4)
	m := c.m

	// Pick a target bit vector x and build rows of an identity system
	// x_i = x_i, trivially consistent, no free parameters.
	target := uint32(0b10110011) & (uint32(1)<<uint(m) - 1)
	rows := make([]uint32, m)
	for i := 0; i < m; i++ {
		bit := (target >> uint(m-1-i)) & 1
		rows[i] = (uint32(1) << uint(m-i)) | bit
	}

	sol := make([]uint32, 1)
	n := solveLinearSystem(c, rows, sol, 1)
	require.Equal(t, 1, n)
	assert.Equal(t, target, sol[0])
}
