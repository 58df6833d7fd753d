package pathsum

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// bellmanFordBackward computes β by relaxing every arc |V|-1 times: each
// round, β(s) is updated to β(s) ⊕ w(s,t) ⊗ β(t) for every arc s -> t.
// After |V|-1 rounds every acyclic contribution has propagated fully; one
// further round that still finds an improvement means some cycle keeps
// strictly improving the sum without bound, which Idempotent does not
// rule out the way Superior does, so ErrNegativeCycle is reported rather
// than looping forever. Requires an idempotent weight (Bellman-Ford's
// relaxation order is not confluent otherwise).
func bellmanFordBackward[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]T, error) {
	var z T
	if !z.Idempotent() {
		return nil, ErrNotIdempotent
	}

	states := f.States()
	beta := make(map[automatonstate.State]T, len(states))
	for _, s := range states {
		beta[s] = f.FinalWeight(s)
	}

	relaxOnce := func() bool {
		changed := false
		for _, s := range states {
			for _, arc := range f.Arcs(s, false) {
				cand := beta[s].Add(arc.Weight.Mul(beta[arc.To]))
				if !cand.Equal(beta[s]) {
					beta[s] = cand
					changed = true
				}
			}
		}
		return changed
	}

	n := len(states)
	for i := 0; i < n-1; i++ {
		if !relaxOnce() {
			return beta, nil
		}
	}
	if relaxOnce() {
		return nil, ErrNegativeCycle
	}
	return beta, nil
}
