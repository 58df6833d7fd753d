package wfsa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/pathsum"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
	"github.com/arnouk/ratalg/wfsa"
)

// tropicalPathsum is a test shorthand for the engine's grand total.
func tropicalPathsum(t *testing.T, f *wfsa.WFSA[semiring.Tropical]) semiring.Tropical {
	t.Helper()
	total, err := pathsum.New(f).Pathsum(pathsum.Lehmann)
	require.NoError(t, err)
	return total
}

// singleArc builds a one-arc Tropical acceptor whose pathsum is w.
func singleArc(prefix string, w semiring.Tropical) *wfsa.WFSA[semiring.Tropical] {
	f := wfsa.New[semiring.Tropical]()
	q0, q1 := st(prefix+"0"), st(prefix+"1")
	_ = f.SetInitial(q0, 0)
	_ = f.SetFinal(q1, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), w)
	return f
}

func st(id string) automatonstate.State { return automatonstate.New(id) }

// chainAcceptor builds the Tropical-weighted acceptor for the two-letter
// word "ab", each arc weighted 1, used as a small worked example across
// several tests below.
func chainAcceptor() *wfsa.WFSA[semiring.Tropical] {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 0)
	_ = f.SetFinal(q2, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q1, q2, symbol.New("b"), 1)
	return f
}

func TestAcceptMatchesShortestPath(t *testing.T) {
	f := chainAcceptor()
	w := f.Accept([]symbol.Sym{symbol.New("a"), symbol.New("b")})
	assert.Equal(t, semiring.Tropical(2), w)

	miss := f.Accept([]symbol.Sym{symbol.New("a")})
	assert.True(t, miss.Equal(semiring.Tropical(0).Zero()))
}

func TestUnionAcceptsEitherLanguage(t *testing.T) {
	a := wfsa.New[semiring.Boolean]()
	qa0, qa1 := st("a0"), st("a1")
	_ = a.SetInitial(qa0, true)
	_ = a.SetFinal(qa1, true)
	_ = a.AddArc(qa0, qa1, symbol.New("x"), true)

	b := wfsa.New[semiring.Boolean]()
	qb0, qb1 := st("b0"), st("b1")
	_ = b.SetInitial(qb0, true)
	_ = b.SetFinal(qb1, true)
	_ = b.AddArc(qb0, qb1, symbol.New("y"), true)

	u := wfsa.Union(a, b)
	assert.True(t, bool(u.Accept([]symbol.Sym{symbol.New("x")})))
	assert.True(t, bool(u.Accept([]symbol.Sym{symbol.New("y")})))
	assert.False(t, bool(u.Accept([]symbol.Sym{symbol.New("z")})))
}

func TestConcatenateAcceptsOrderedPairs(t *testing.T) {
	a := wfsa.New[semiring.Boolean]()
	qa0, qa1 := st("a0"), st("a1")
	_ = a.SetInitial(qa0, true)
	_ = a.SetFinal(qa1, true)
	_ = a.AddArc(qa0, qa1, symbol.New("x"), true)

	b := wfsa.New[semiring.Boolean]()
	qb0, qb1 := st("b0"), st("b1")
	_ = b.SetInitial(qb0, true)
	_ = b.SetFinal(qb1, true)
	_ = b.AddArc(qb0, qb1, symbol.New("y"), true)

	c := wfsa.Concatenate(a, b)
	assert.True(t, bool(c.Accept([]symbol.Sym{symbol.New("x"), symbol.New("y")})))
	assert.False(t, bool(c.Accept([]symbol.Sym{symbol.New("y"), symbol.New("x")})))
}

func TestKleeneClosureAcceptsEmptyAndRepetitions(t *testing.T) {
	a := wfsa.New[semiring.Boolean]()
	qa0, qa1 := st("a0"), st("a1")
	_ = a.SetInitial(qa0, true)
	_ = a.SetFinal(qa1, true)
	_ = a.AddArc(qa0, qa1, symbol.New("x"), true)
	_ = a.AddArc(qa1, qa0, symbol.Eps, true)

	star := wfsa.KleeneClosure(a)
	assert.True(t, bool(star.Accept(nil)))
	assert.True(t, bool(star.Accept([]symbol.Sym{symbol.New("x")})))
	assert.True(t, bool(star.Accept([]symbol.Sym{symbol.New("x"), symbol.New("x")})))
	assert.False(t, bool(star.Accept([]symbol.Sym{symbol.New("y")})))
}

func TestIntersectRequiresBothLanguages(t *testing.T) {
	a := wfsa.New[semiring.Boolean]()
	qa0, qa1, qa2 := st("a0"), st("a1"), st("a2")
	_ = a.SetInitial(qa0, true)
	_ = a.SetFinal(qa2, true)
	_ = a.AddArc(qa0, qa1, symbol.New("x"), true)
	_ = a.AddArc(qa1, qa2, symbol.New("y"), true)

	b := wfsa.New[semiring.Boolean]()
	qb0, qb1 := st("b0"), st("b1")
	_ = b.SetInitial(qb0, true)
	_ = b.SetFinal(qb1, true)
	_ = b.AddArc(qb0, qb1, symbol.New("x"), true)

	inter := wfsa.Intersect(a, b)
	assert.False(t, bool(inter.Accept([]symbol.Sym{symbol.New("x"), symbol.New("y")})))
}

func TestTrimRemovesDeadStates(t *testing.T) {
	f := wfsa.New[semiring.Boolean]()
	q0, q1, dead := st("q0"), st("q1"), st("dead")
	_ = f.SetInitial(q0, true)
	_ = f.SetFinal(q1, true)
	_ = f.AddArc(q0, q1, symbol.New("x"), true)
	_ = f.AddArc(q0, dead, symbol.New("z"), true)

	trimmed := f.Trim()
	assert.False(t, trimmed.HasState(dead))
	assert.True(t, trimmed.HasState(q0))
	assert.True(t, trimmed.HasState(q1))
}

func TestReverseSwapsInitialAndFinal(t *testing.T) {
	f := chainAcceptor()
	r := f.Reverse()
	w := r.Accept([]symbol.Sym{symbol.New("b"), symbol.New("a")})
	assert.Equal(t, semiring.Tropical(2), w)
}

func TestDeterminizeProducesDeterministicAutomaton(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), 0.5)
	_ = f.AddArc(q0, q2, symbol.New("a"), 0.5)
	_ = f.SetFinal(q1, 1)
	_ = f.SetFinal(q2, 1)

	det, err := wfsa.Determinize(f)
	require.NoError(t, err)
	assert.True(t, det.Deterministic())
}

func TestMinimizeRejectsNondeterministicInput(t *testing.T) {
	f := wfsa.New[semiring.Boolean]()
	q0, q1 := st("q0"), st("q1")
	_ = f.SetInitial(q0, true)
	_ = f.SetFinal(q1, true)
	_ = f.AddArc(q0, q1, symbol.New("x"), true)
	_ = f.AddArc(q0, q0, symbol.Eps, true) // epsilon arc makes it non-deterministic

	_, err := wfsa.Minimize(f)
	assert.ErrorIs(t, err, wfsa.ErrNotDeterministic)
}

func TestPushPreservesAcceptedWeight(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), 0.25)
	_ = f.AddArc(q0, q2, symbol.New("a"), 0.75)
	_ = f.SetFinal(q1, 1)
	_ = f.SetFinal(q2, 1)

	before := f.Accept([]symbol.Sym{symbol.New("a")})

	pushed, err := wfsa.Push[semiring.Real](f)
	require.NoError(t, err)
	after := pushed.Accept([]symbol.Sym{symbol.New("a")})

	assert.InDelta(t, float64(before), float64(after), 1e-9)
}

func TestEpsilonRemovalPreservesAcceptedWeight(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.Eps, 1)
	_ = f.AddArc(q1, q2, symbol.New("a"), 2)
	_ = f.SetFinal(q2, 0)

	before := f.Accept([]symbol.Sym{symbol.New("a")})

	noEps, err := wfsa.EpsilonRemoval(f)
	require.NoError(t, err)
	for _, s := range noEps.States() {
		for _, a := range noEps.Arcs(s, false) {
			assert.False(t, a.Label.IsEpsilon())
		}
	}

	after := noEps.Accept([]symbol.Sym{symbol.New("a")})
	assert.Equal(t, before, after)
}

func TestTopComposeChainsTransducers(t *testing.T) {
	t1 := wfsa.NewFST[semiring.Boolean]()
	a0, a1 := st("a0"), st("a1")
	t1.SetInitial(a0, true)
	t1.SetFinal(a1, true)
	t1.AddArc(a0, a1, symbol.New("x"), symbol.New("y"), true)

	t2 := wfsa.NewFST[semiring.Boolean]()
	b0, b1 := st("b0"), st("b1")
	t2.SetInitial(b0, true)
	t2.SetFinal(b1, true)
	t2.AddArc(b0, b1, symbol.New("y"), symbol.New("z"), true)

	composed := wfsa.TopCompose(t1, t2)
	found := false
	for _, s := range composed.States() {
		for _, arc := range composed.Arcs(s, false) {
			if arc.In == symbol.New("x") && arc.Out == symbol.New("z") {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestUnionPathsumSumsOperands(t *testing.T) {
	a := singleArc("a", 3)
	b := singleArc("b", 7)

	u := wfsa.Union(a, b)
	assert.Equal(t, semiring.Tropical(3), tropicalPathsum(t, u))
}

func TestConcatenatePathsumMultipliesOperands(t *testing.T) {
	a := singleArc("a", 3)
	b := singleArc("b", 7)

	c := wfsa.Concatenate(a, b)
	assert.Equal(t, semiring.Tropical(10), tropicalPathsum(t, c))
}

func TestKleeneClosurePathsumAbsorbsEmptyPath(t *testing.T) {
	a := singleArc("a", 3)

	star := wfsa.KleeneClosure(a)
	// The zero-repetition path always contributes One, which no number of
	// positively weighted repetitions can beat.
	assert.Equal(t, semiring.Tropical(0), tropicalPathsum(t, star))
}

func TestReverseInvolutionPreservesPathsumAndArcs(t *testing.T) {
	f := chainAcceptor()
	rr := f.Reverse().Reverse()

	assert.Equal(t, tropicalPathsum(t, f), tropicalPathsum(t, rr))

	count := func(g *wfsa.WFSA[semiring.Tropical]) map[string]semiring.Tropical {
		out := make(map[string]semiring.Tropical)
		for _, s := range g.States() {
			for _, a := range g.Arcs(s, false) {
				out[a.String()] = a.Weight
			}
		}
		return out
	}
	assert.Equal(t, count(f), count(rr))
}

func TestTrimPreservesPathsum(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, dead := st("q0"), st("q1"), st("dead")
	_ = f.SetInitial(q0, 0)
	_ = f.SetFinal(q1, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 4)
	_ = f.AddArc(q0, dead, symbol.New("z"), 1)

	assert.Equal(t, tropicalPathsum(t, f), tropicalPathsum(t, f.Trim()))
}

func TestDeterminizePreservesPathsum(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), 0.25)
	_ = f.AddArc(q0, q2, symbol.New("a"), 0.75)
	_ = f.SetFinal(q1, 1)
	_ = f.SetFinal(q2, 1)

	det, err := wfsa.Determinize(f)
	require.NoError(t, err)

	before, err := pathsum.New(f).Pathsum(pathsum.Viterbi)
	require.NoError(t, err)
	after, err := pathsum.New(det).Pathsum(pathsum.Viterbi)
	require.NoError(t, err)

	assert.InDelta(t, float64(before), float64(after), 1e-9)
	assert.True(t, det.Deterministic())
}

func TestMinimizeIsIdempotent(t *testing.T) {
	// A complete two-state DFA over {a, b}: both states loop on b, a
	// toggles between them.
	f := wfsa.New[semiring.Boolean]()
	qa, qb := st("A"), st("B")
	_ = f.SetInitial(qa, true)
	_ = f.SetFinal(qb, true)
	_ = f.AddArc(qa, qb, symbol.New("a"), true)
	_ = f.AddArc(qa, qa, symbol.New("b"), true)
	_ = f.AddArc(qb, qa, symbol.New("a"), true)
	_ = f.AddArc(qb, qb, symbol.New("b"), true)

	once, err := wfsa.Minimize(f)
	require.NoError(t, err)
	twice, err := wfsa.Minimize(once)
	require.NoError(t, err)

	assert.Len(t, twice.States(), len(once.States()))
}

func TestIntersectEpsilonFilterIsSideSymmetric(t *testing.T) {
	a := wfsa.New[semiring.Tropical]()
	qa0, qa1, qa2 := st("a0"), st("a1"), st("a2")
	_ = a.SetInitial(qa0, 0)
	_ = a.AddArc(qa0, qa1, symbol.Eps, 1)
	_ = a.AddArc(qa1, qa2, symbol.New("x"), 2)
	_ = a.SetFinal(qa2, 0)

	b := wfsa.New[semiring.Tropical]()
	qb0, qb1, qb2 := st("b0"), st("b1"), st("b2")
	_ = b.SetInitial(qb0, 0)
	_ = b.AddArc(qb0, qb1, symbol.New("x"), 3)
	_ = b.AddArc(qb1, qb2, symbol.Eps, 4)
	_ = b.SetFinal(qb2, 0)

	ab := tropicalPathsum(t, wfsa.Intersect(a, b))
	ba := tropicalPathsum(t, wfsa.Intersect(b, a))

	assert.Equal(t, semiring.Tropical(10), ab)
	assert.Equal(t, ab, ba)
}

func TestPushSatisfiesPushedInvariant(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), 0.2)
	_ = f.AddArc(q0, q2, symbol.New("a"), 0.6)
	_ = f.SetFinal(q1, 1)
	_ = f.SetFinal(q2, 1)

	assert.False(t, f.Pushed())

	pushed, err := wfsa.Push[semiring.Real](f)
	require.NoError(t, err)
	assert.True(t, pushed.Pushed())
	assert.Equal(t, f.NumStates(), pushed.NumStates())
}

func TestEquivalentAndDifferenceAreNotSupported(t *testing.T) {
	f := chainAcceptor()
	g := chainAcceptor()

	_, err := f.Equivalent(g)
	assert.ErrorIs(t, err, wfsa.ErrNotSupported)

	_, err = f.Difference(g)
	assert.ErrorIs(t, err, wfsa.ErrNotSupported)
}

func TestStringDumpListsInitialsFinalsAndArcs(t *testing.T) {
	f := chainAcceptor()
	dump := f.String()

	assert.Contains(t, dump, "initial state:\tq0\t0")
	assert.Contains(t, dump, "final state:\tq2\t0")
	assert.Contains(t, dump, "q0\t----a/1---->\tq1")
	assert.Contains(t, dump, "q1\t----b/1---->\tq2")
}

func TestZeroWeightSetHidesStateFromEnumeration(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1 := st("q0"), st("q1")
	_ = f.SetInitial(q0, 1)
	_ = f.SetFinal(q1, 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)

	_ = f.SetInitial(q0, 0)
	assert.Empty(t, f.Initial())
	assert.Equal(t, semiring.Real(0), f.InitialWeight(q0))

	_ = f.SetFinal(q1, 0)
	assert.Empty(t, f.Final())

	_ = f.SetArc(q0, q1, symbol.New("a"), 0)
	assert.Empty(t, f.Arcs(q0, false))
}

func TestAddArcSummingToZeroRemovesTheArc(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1 := st("q0"), st("q1")
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), -1)

	assert.Empty(t, f.Arcs(q0, false))
	assert.Empty(t, f.InArcs(q1))
}

func TestAddInitialSummingToZeroUnmarksInitial(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0 := st("q0")
	_ = f.AddInitial(q0, 1)
	_ = f.AddInitial(q0, -1)

	assert.Empty(t, f.Initial())
	assert.True(t, f.HasState(q0))
}

// TestPushDropsDeadEndInitialFromAccessible exercises the case a pushed
// automaton's backward potential is Zero at a reachable-but-dead-end
// initial state: Push must not leave a zero-weight "initial" entry
// behind, since that would make Accessible/Trim keep states around a
// root that per the WFSA invariant (λ(q) ≠ Zero ⇔ q initial) is not
// really initial at all.
func TestPushDropsDeadEndInitialFromAccessible(t *testing.T) {
	f := wfsa.New[semiring.Real]()
	q0, q1, dead := st("q0"), st("q1"), st("dead")
	_ = f.SetInitial(q0, 1)
	_ = f.SetInitial(dead, 1)
	_ = f.SetFinal(q1, 1)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	// dead has no outgoing arcs and no path to any final state.

	pushed, err := wfsa.Push[semiring.Real](f)
	require.NoError(t, err)

	for _, ws := range pushed.Initial() {
		assert.NotEqual(t, dead, ws.State)
	}
	assert.NotContains(t, pushed.Accessible(), dead)
}
