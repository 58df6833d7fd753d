package pathsum

import (
	"errors"
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// Engine computes path sums over a single automaton using one of six
// strategies, chosen per call so that callers can pick the cheapest
// strategy valid for their weight type and graph shape (e.g. Viterbi on
// an acyclic automaton, Dijkstra on a superior ordered one, Lehmann
// otherwise).
type Engine[T semiring.Semiring[T]] struct {
	f *wfsa.WFSA[T]
}

// New returns an Engine over f.
func New[T semiring.Semiring[T]](f *wfsa.WFSA[T]) *Engine[T] {
	return &Engine[T]{f: f}
}

// Backward computes β(s), the sum of every path weight from s to a final
// state (s itself included via the zero-length path when s is final),
// for every state, using strategy. An acyclic automaton is always
// dispatched to Viterbi regardless of the requested strategy: a single
// topological pass is exact there and is both cheaper and defined for
// every semiring, so there is never a reason to run anything else.
func (e *Engine[T]) Backward(strategy Strategy) (map[automatonstate.State]T, error) {
	if e.f.Acyclic() {
		strategy = Viterbi
	}
	switch strategy {
	case Viterbi:
		beta, err := viterbiBackward(e.f)
		return beta, wrapPrecondition(err)
	case BellmanFord:
		beta, err := bellmanFordBackward(e.f)
		return beta, wrapPrecondition(err)
	case Dijkstra:
		beta, err := dijkstraBackward(e.f)
		return beta, wrapPrecondition(err)
	case Lehmann:
		beta, err := lehmannBackward(e.f)
		return beta, wrapPrecondition(err)
	case SCCLehmann:
		beta, err := sccLehmannBackward(e.f)
		return beta, wrapPrecondition(err)
	case Johnson:
		allPairs, err := johnsonAllPairs(e.f)
		if err != nil {
			return nil, wrapPrecondition(err)
		}
		return backwardFromAllPairs(e.f, allPairs), nil
	default:
		return nil, fmt.Errorf("pathsum: unknown strategy %v", strategy)
	}
}

// wrapPrecondition tags a strategy's unmet-requirement sentinel with
// ErrPrecondition so callers can match the whole error class with a
// single errors.Is; any other failure passes through untouched.
func wrapPrecondition(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrNotIdempotent, ErrNotSuperior, ErrNotOrdered, ErrNotAcyclic, ErrNotClosed} {
		if errors.Is(err, kind) {
			return fmt.Errorf("%w: %w", ErrPrecondition, err)
		}
	}
	return err
}

// Forward computes α(s), the sum of every path weight from an initial
// state to s, for every state. Johnson reads it off its all-pairs matrix;
// every other strategy computes it as Backward on the automaton with every
// arc reversed and its initial/final vectors
// swapped: a path along reversed arcs from s to an original initial state
// is exactly a path along original arcs from that initial state to s, so
// this reduces Forward to the same per-strategy Backward implementations
// without duplicating them.
func (e *Engine[T]) Forward(strategy Strategy) (map[automatonstate.State]T, error) {
	if e.f.Acyclic() {
		strategy = Viterbi
	}
	if strategy == Johnson {
		allPairs, err := johnsonAllPairs(e.f)
		if err != nil {
			return nil, wrapPrecondition(err)
		}
		return forwardFromAllPairs(e.f, allPairs), nil
	}
	rev := New[T](e.f.Reverse())
	return rev.Backward(strategy)
}

// AllPairs computes the full |Q|×|Q| path-sum matrix. Only Lehmann,
// SCCLehmann, and Johnson are meaningful here — Viterbi/BellmanFord/
// Dijkstra compute single-source sums via the automaton's own initial
// vector and do not have a natural all-pairs form in this engine, so they
// return ErrNotSupported.
func (e *Engine[T]) AllPairs(strategy Strategy) (map[automatonstate.State]map[automatonstate.State]T, error) {
	var z T
	switch strategy {
	case Lehmann:
		if _, ok := any(z).(semiring.Starable[T]); !ok {
			return nil, wrapPrecondition(ErrNotClosed)
		}
		return wfsa.LehmannClosure[T](e.f.States(), e.arcWeight, true)
	case SCCLehmann:
		m, err := sccLehmannAllPairs(e.f)
		return m, wrapPrecondition(err)
	case Johnson:
		m, err := johnsonAllPairs(e.f)
		return m, wrapPrecondition(err)
	default:
		return nil, fmt.Errorf("pathsum: %s: %w", strategy, ErrNotSupported)
	}
}

// Pathsum computes the grand total: the sum over every accepting path's
// weight, Σ_q α(q) ⊗ ρ(q) where ρ is the automaton's final-weight vector.
func (e *Engine[T]) Pathsum(strategy Strategy) (T, error) {
	var zero T
	alpha, err := e.Forward(strategy)
	if err != nil {
		return zero.Zero(), err
	}
	total := zero.Zero()
	for _, ws := range e.f.Final() {
		total = total.Add(alpha[ws.State].Mul(ws.Weight))
	}
	return total, nil
}

// EdgeMarginals computes, for every arc (p, a, q, w), α(p) ⊗ w ⊗ β(q): the
// total weight of every accepting path that uses that arc. It is the
// standard posterior-probability-of-an-edge computation used to inspect
// which transitions matter most under a given weighting.
func (e *Engine[T]) EdgeMarginals(strategy Strategy) (map[wfsa.Arc[T]]T, error) {
	alpha, err := e.Forward(strategy)
	if err != nil {
		return nil, err
	}
	beta, err := e.Backward(strategy)
	if err != nil {
		return nil, err
	}

	out := make(map[wfsa.Arc[T]]T)
	for _, s := range e.f.States() {
		for _, arc := range e.f.Arcs(s, false) {
			out[arc] = alpha[arc.From].Mul(arc.Weight).Mul(beta[arc.To])
		}
	}
	return out, nil
}

// DijkstraEarly would compute the pathsum with early stopping once every
// final state is finalized; it is deliberately left unimplemented and
// always returns ErrNotSupported.
func (e *Engine[T]) DijkstraEarly() (T, error) {
	var zero T
	return zero.Zero(), fmt.Errorf("pathsum: dijkstra-early: %w", ErrNotSupported)
}

// Fixpoint would compute the pathsum by naive fixed-point iteration over
// the weight matrix; it is deliberately left unimplemented and always
// returns ErrNotSupported.
func (e *Engine[T]) Fixpoint() (T, error) {
	var zero T
	return zero.Zero(), fmt.Errorf("pathsum: fixpoint: %w", ErrNotSupported)
}

func (e *Engine[T]) arcWeight(p, q automatonstate.State) T {
	var z T
	total := z.Zero()
	for _, a := range e.f.Arcs(p, false) {
		if a.To == q {
			total = total.Add(a.Weight)
		}
	}
	return total
}

func forwardFromAllPairs[T semiring.Semiring[T]](f *wfsa.WFSA[T], allPairs map[automatonstate.State]map[automatonstate.State]T) map[automatonstate.State]T {
	var z T
	out := make(map[automatonstate.State]T, len(allPairs))
	for _, s := range f.States() {
		total := z.Zero()
		for _, ws := range f.Initial() {
			total = total.Add(ws.Weight.Mul(allPairs[ws.State][s]))
		}
		out[s] = total
	}
	return out
}

func backwardFromAllPairs[T semiring.Semiring[T]](f *wfsa.WFSA[T], allPairs map[automatonstate.State]map[automatonstate.State]T) map[automatonstate.State]T {
	var z T
	out := make(map[automatonstate.State]T, len(allPairs))
	for _, s := range f.States() {
		total := z.Zero()
		for _, ws := range f.Final() {
			total = total.Add(allPairs[s][ws.State].Mul(ws.Weight))
		}
		out[s] = total
	}
	return out
}
