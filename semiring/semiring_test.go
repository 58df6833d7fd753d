package semiring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnouk/ratalg/semiring"
)

func TestBooleanLaws(t *testing.T) {
	var f, tt = semiring.Boolean(false), semiring.Boolean(true)

	assert.True(t, bool(f.Add(tt)))
	assert.False(t, bool(tt.Mul(f)))
	assert.True(t, f.Idempotent())
	assert.True(t, f.Superior())
	assert.True(t, f.Less(tt))
	assert.False(t, tt.Less(f))

	star, err := tt.Star()
	require.NoError(t, err)
	assert.Equal(t, tt, star)
}

func TestRealStarConvergence(t *testing.T) {
	half := semiring.Real(0.5)
	star, err := half.Star()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, float64(star), 1e-9)

	_, err = semiring.Real(1.5).Star()
	assert.ErrorIs(t, err, semiring.ErrDivergentClosure)

	_, err = semiring.Real(0).Inv()
	assert.ErrorIs(t, err, semiring.ErrNotInvertible)
}

func TestTropicalShortestPathSemantics(t *testing.T) {
	a, b := semiring.Tropical(3), semiring.Tropical(5)
	assert.Equal(t, a, a.Add(b))           // min
	assert.Equal(t, semiring.Tropical(8), a.Mul(b)) // plus
	assert.True(t, a.Less(b))

	zero := a.Zero()
	assert.True(t, math.IsInf(float64(zero), 1))

	// Non-negative self-loop weights never improve a shortest path: the
	// fixed point collapses to one (0, the empty path), not zero (+∞).
	star, err := semiring.Tropical(3).Star()
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(0), star)

	_, err = semiring.Tropical(-1).Star()
	assert.ErrorIs(t, err, semiring.ErrDivergentClosure)

	inv, err := semiring.Tropical(4).Inv()
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(-4), inv)
}

func TestStringSemiringLongestCommonPrefix(t *testing.T) {
	a := semiring.Str("hello")
	b := semiring.Str("help")
	assert.Equal(t, "hel", a.Add(b).String())

	top := a.Zero()
	assert.Equal(t, a, top.Add(a))
	assert.Equal(t, top, a.Mul(top))

	assert.Equal(t, "helloworld", a.Mul(semiring.Str("world")).String())
	assert.True(t, a.Idempotent())
}

func TestDerivationSetSemantics(t *testing.T) {
	d1 := semiring.Sig("NP-VP")
	d2 := semiring.Sig("NP-VP-ADV")

	union := d1.Add(d2)
	assert.Equal(t, 2, union.Len())

	prod := semiring.Sig("a", "b").Mul(semiring.Sig("x", "y"))
	assert.Equal(t, 4, prod.Len())
	assert.ElementsMatch(t, []string{"ax", "ay", "bx", "by"}, prod.Signatures())

	empty := d1.Zero()
	assert.Equal(t, d1, empty.Add(d1))
}

func TestProductCombinator(t *testing.T) {
	p1 := semiring.Pair(semiring.Tropical(2), semiring.Boolean(true))
	p2 := semiring.Pair(semiring.Tropical(5), semiring.Boolean(false))

	sum := p1.Add(p2)
	assert.Equal(t, semiring.Tropical(2), sum.Left)
	assert.True(t, bool(sum.Right))

	prod := p1.Mul(p2)
	assert.Equal(t, semiring.Tropical(7), prod.Left)
	assert.False(t, bool(prod.Right))

	assert.True(t, p1.Zero().Equal(semiring.Pair(semiring.Tropical(0).Zero(), semiring.Boolean(false))))

	star, err := semiring.ProductStar(p1)
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(0), star.Left)
	assert.True(t, bool(star.Right))
}
