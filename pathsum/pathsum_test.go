package pathsum_test

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

func st(id string) automatonstate.State { return automatonstate.New(id) }

// chain builds a two-arc Tropical acceptor q0 -1-> q1 -1-> q2, final q2,
// the shortest accepting path totaling 2.
func chain() *wfsa.WFSA[semiring.Tropical] {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q1, q2, symbol.New("b"), 1)
	_ = f.SetFinal(q2, 0)
	return f
}

func TestViterbiBackwardOnAcyclicChain(t *testing.T) {
	f := chain()
	e := pathsum.New(f)

	beta, err := e.Backward(pathsum.Viterbi)
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(2), beta[st("q0")])
	assert.Equal(t, semiring.Tropical(1), beta[st("q1")])
	assert.Equal(t, semiring.Tropical(0), beta[st("q2")])

	total, err := e.Pathsum(pathsum.Viterbi)
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(2), total)
}

func TestBellmanFordMatchesViterbiOnAcyclicChain(t *testing.T) {
	f := chain()
	e := pathsum.New(f)

	viterbi, err := e.Backward(pathsum.Viterbi)
	require.NoError(t, err)
	bf, err := e.Backward(pathsum.BellmanFord)
	require.NoError(t, err)

	for _, s := range f.States() {
		assert.Equal(t, viterbi[s], bf[s])
	}
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1 := st("q0"), st("q1")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q1, q0, symbol.New("b"), -2)
	_ = f.SetFinal(q1, 0)

	_, err := pathsum.New(f).Backward(pathsum.BellmanFord)
	assert.ErrorIs(t, err, pathsum.ErrNegativeCycle)
}

func TestJohnsonDetectsNegativeCycle(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1 := st("q0"), st("q1")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q1, q0, symbol.New("b"), -2)
	_ = f.SetFinal(q1, 0)

	_, err := pathsum.New(f).AllPairs(pathsum.Johnson)
	assert.ErrorIs(t, err, pathsum.ErrNegativeCycle)
}

func TestDijkstraMatchesViterbiOnAcyclicChain(t *testing.T) {
	f := chain()
	e := pathsum.New(f)

	viterbi, err := e.Backward(pathsum.Viterbi)
	require.NoError(t, err)
	dijkstra, err := e.Backward(pathsum.Dijkstra)
	require.NoError(t, err)

	for _, s := range f.States() {
		assert.Equal(t, viterbi[s], dijkstra[s])
	}
}

func TestDijkstraRejectsNonSuperiorWeight(t *testing.T) {
	f := wfsa.New[semiring.Derivation]()
	q0, q1 := st("q0"), st("q1")
	_ = f.SetInitial(q0, semiring.Sig(""))
	_ = f.SetFinal(q1, semiring.Sig(""))
	_ = f.AddArc(q0, q1, symbol.New("x"), semiring.Sig("x"))
	_ = f.AddArc(q1, q0, symbol.New("y"), semiring.Sig("y"))

	_, err := pathsum.New(f).Backward(pathsum.Dijkstra)
	assert.ErrorIs(t, err, pathsum.ErrNotSuperior)
}

func TestLehmannMatchesViterbiOnAcyclicChain(t *testing.T) {
	f := chain()
	e := pathsum.New(f)

	viterbi, err := e.Backward(pathsum.Viterbi)
	require.NoError(t, err)
	lehmann, err := e.Backward(pathsum.Lehmann)
	require.NoError(t, err)

	for _, s := range f.States() {
		assert.Equal(t, viterbi[s], lehmann[s])
	}
}

func TestLehmannAllPairsAgreesWithPathsum(t *testing.T) {
	f := chain()
	e := pathsum.New(f)

	allPairs, err := e.AllPairs(pathsum.Lehmann)
	require.NoError(t, err)

	total, err := e.Pathsum(pathsum.Viterbi)
	require.NoError(t, err)

	var zero semiring.Tropical
	sum := zero.Zero()
	for _, ws1 := range f.Initial() {
		for _, ws2 := range f.Final() {
			sum = sum.Add(ws1.Weight.Mul(allPairs[ws1.State][ws2.State]).Mul(ws2.Weight))
		}
	}
	assert.Equal(t, total, sum)
}

func TestJohnsonAllPairsMatchesLehmann(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 2)
	_ = f.AddArc(q1, q2, symbol.New("b"), 3)
	_ = f.AddArc(q0, q2, symbol.New("c"), 10)
	_ = f.AddArc(q2, q0, symbol.New("d"), 1)
	_ = f.SetFinal(q2, 0)

	e := pathsum.New(f)
	lehmann, err := e.AllPairs(pathsum.Lehmann)
	require.NoError(t, err)
	johnson, err := e.AllPairs(pathsum.Johnson)
	require.NoError(t, err)

	for _, p := range f.States() {
		for _, q := range f.States() {
			assert.InDeltaf(t, float64(lehmann[p][q]), float64(johnson[p][q]), 1e-9,
				"mismatch at (%s, %s)", p, q)
		}
	}
}

// TestShortestPathWithNegativeArc works the four-state graph whose best
// accepting path threads the negative arc: 0 -a/2-> 2 -d/-2-> 1 -c/5-> 3,
// total 5, beating both 0 -a/1-> 1 -c/5-> 3 (6) and 0 -a/2-> 2 -d/6-> 3
// (8). The self-loops at 1 and 2 cost 3 each, so they never help.
func TestShortestPathWithNegativeArc(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, q2, q3 := st("0"), st("1"), st("2"), st("3")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q0, q2, symbol.New("a"), 2)
	_ = f.AddArc(q1, q1, symbol.New("b"), 3)
	_ = f.AddArc(q2, q2, symbol.New("b"), 3)
	_ = f.AddArc(q1, q3, symbol.New("c"), 5)
	_ = f.AddArc(q2, q3, symbol.New("d"), 6)
	_ = f.AddArc(q2, q1, symbol.New("d"), -2)
	_ = f.SetFinal(q3, 0)

	e := pathsum.New(f)

	lehmann, err := e.Pathsum(pathsum.Lehmann)
	require.NoError(t, err)
	johnson, err := e.Pathsum(pathsum.Johnson)
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(5), lehmann)
	assert.Equal(t, semiring.Tropical(5), johnson)

	bf, err := e.Forward(pathsum.BellmanFord)
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(0), bf[q1])
	assert.Equal(t, semiring.Tropical(2), bf[q2])
	assert.Equal(t, semiring.Tropical(5), bf[q3])
}

func TestSCCLehmannMatchesLehmannWithCycle(t *testing.T) {
	f := wfsa.New[semiring.Tropical]()
	q0, q1, q2 := st("q0"), st("q1"), st("q2")
	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q1, q0, symbol.New("b"), 1) // loop between q0, q1
	_ = f.AddArc(q1, q2, symbol.New("c"), 1)
	_ = f.SetFinal(q2, 0)

	e := pathsum.New(f)
	lehmann, err := e.Backward(pathsum.Lehmann)
	require.NoError(t, err)
	scc, err := e.Backward(pathsum.SCCLehmann)
	require.NoError(t, err)

	for _, s := range f.States() {
		assert.Equal(t, lehmann[s], scc[s])
	}
}

func TestForwardViaReverseMatchesBackwardOnReversedChain(t *testing.T) {
	f := chain()
	e := pathsum.New(f)

	alpha, err := e.Forward(pathsum.Viterbi)
	require.NoError(t, err)
	assert.Equal(t, semiring.Tropical(0), alpha[st("q0")])
	assert.Equal(t, semiring.Tropical(1), alpha[st("q1")])
	assert.Equal(t, semiring.Tropical(2), alpha[st("q2")])
}

func TestEdgeMarginalsSumToPathsumOnSingletonPath(t *testing.T) {
	f := wfsa.New[semiring.Boolean]()
	q0, q1 := st("q0"), st("q1")
	_ = f.SetInitial(q0, true)
	_ = f.SetFinal(q1, true)
	_ = f.AddArc(q0, q1, symbol.New("x"), true)

	e := pathsum.New(f)
	marginals, err := e.EdgeMarginals(pathsum.Viterbi)
	require.NoError(t, err)

	for arc, w := range marginals {
		assert.Equal(t, symbol.New("x"), arc.Label)
		assert.True(t, bool(w))
	}
}

func TestAllPairsRejectsUnsupportedStrategy(t *testing.T) {
	f := chain()
	_, err := pathsum.New(f).AllPairs(pathsum.Viterbi)
	assert.ErrorIs(t, err, pathsum.ErrNotSupported)
}

func TestUnimplementedStrategiesReportNotSupported(t *testing.T) {
	e := pathsum.New(chain())

	_, err := e.DijkstraEarly()
	assert.ErrorIs(t, err, pathsum.ErrNotSupported)

	_, err = e.Fixpoint()
	assert.ErrorIs(t, err, pathsum.ErrNotSupported)
}
