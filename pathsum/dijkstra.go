package pathsum

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// dijkstraBackward computes β with a multi-source Dijkstra relaxation
// seeded from every final state's weight and walking arcs backward (an
// arc p -> s lets a candidate β(p) = β(p) ⊕ w(p,s) ⊗ β(s) once s's own β
// is finalized). Requires a superior, ordered weight: superior guarantees
// Add always keeps one of its two operands (so popping the best
// not-yet-finalized state and never revisiting it is safe), and Less
// supplies the priority order. Uses a simple O(V²) extract-min scan
// rather than a heap, since the automata this module targets are small
// and a heap's bookkeeping would add risk without a measurable benefit.
func dijkstraBackward[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]T, error) {
	var z T
	if !z.Superior() {
		return nil, ErrNotSuperior
	}
	if _, ok := any(z).(semiring.Ordered[T]); !ok {
		return nil, ErrNotOrdered
	}

	states := f.States()
	dist := make(map[automatonstate.State]T, len(states))
	done := make(map[automatonstate.State]bool, len(states))
	for _, s := range states {
		dist[s] = z.Zero()
	}
	for _, ws := range f.Final() {
		dist[ws.State] = dist[ws.State].Add(ws.Weight)
	}

	for range states {
		// extract-min among not-done states
		var best automatonstate.State
		found := false
		for _, s := range states {
			if done[s] {
				continue
			}
			if !found {
				best, found = s, true
				continue
			}
			bo := any(dist[best]).(semiring.Ordered[T])
			if bo.Less(dist[s]) {
				continue
			}
			if !dist[best].Equal(dist[s]) {
				best = s
			}
		}
		if !found {
			break
		}
		done[best] = true

		for _, arc := range f.InArcs(best) {
			if done[arc.From] {
				continue
			}
			cand := dist[arc.From].Add(arc.Weight.Mul(dist[best]))
			dist[arc.From] = cand
		}
	}

	return dist, nil
}
