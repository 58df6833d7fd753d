package pathsum

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// viterbiBackward computes β over an acyclic automaton by relaxing states
// in reverse topological order: every successor's β is already finalized
// before a state's own is computed, so a single pass suffices.
func viterbiBackward[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]T, error) {
	order, err := f.Toposort()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAcyclic, err)
	}

	var z T
	beta := make(map[automatonstate.State]T, len(order))
	for _, s := range order {
		beta[s] = z.Zero()
	}

	for i := len(order) - 1; i >= 0; i-- {
		s := order[i]
		total := f.FinalWeight(s)
		for _, arc := range f.Arcs(s, false) {
			total = total.Add(arc.Weight.Mul(beta[arc.To]))
		}
		beta[s] = total
	}

	return beta, nil
}
