package pathsum

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// johnsonAllPairs computes the full |Q|×|Q| path-sum matrix by reweighting
// every arc with a potential, running a per-source Dijkstra on the
// reweighted graph from every state, then un-reweighting the result. The
// potential α is seeded from the automaton's own initial states (a forward
// Bellman-Ford pass), not a synthetic super-source; the pushing
// potential is α's elementwise inverse, so a reweighted arc carries
// α(i) ⊗ w ⊗ ~α(j) — in Tropical terms α(i) + w - α(j), non-negative by
// the triangle inequality, which is what makes pop-once Dijkstra valid on
// the reweighted graph even when the original arcs carry negative weight.
func johnsonAllPairs[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]map[automatonstate.State]T, error) {
	var z T
	if !z.Superior() {
		return nil, ErrNotSuperior
	}
	if _, ok := any(z).(semiring.Ordered[T]); !ok {
		return nil, ErrNotOrdered
	}
	if _, ok := any(z).(semiring.Invertible[T]); !ok {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, wfsa.ErrNoInverse)
	}

	alpha, err := forwardPotentialFromInitials(f)
	if err != nil {
		return nil, err
	}

	v := make(map[automatonstate.State]T, len(alpha))
	for s, a := range alpha {
		v[s] = invertOrOne[T](a)
	}

	pushed, err := wfsa.PushWithPotential(f, v, wfsa.PushOptions{SanityCheck: false})
	if err != nil {
		return nil, err
	}

	states := f.States()
	out := make(map[automatonstate.State]map[automatonstate.State]T, len(states))
	for _, p := range states {
		dprime := dijkstraForwardFrom(pushed, p)
		row := make(map[automatonstate.State]T, len(states))
		invAlphaP := invertOrOne[T](alpha[p])
		for _, q := range states {
			// d(p,q) = ~α(p) ⊗ d'(p,q) ⊗ α(q) undoes the reweighting
			row[q] = invAlphaP.Mul(dprime[q]).Mul(alpha[q])
		}
		out[p] = row
	}
	return out, nil
}

// forwardPotentialFromInitials runs a forward Bellman-Ford relaxation
// seeded from f's own initial weights, producing a potential vector V(s) =
// the sum of every path weight from an initial state to s. Like
// bellmanFordBackward, it relaxes |V|-1 rounds and then checks one further
// round for a still-improving edge, reporting ErrNegativeCycle rather than
// silently feeding a bogus potential into the reweighting step.
func forwardPotentialFromInitials[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]T, error) {
	var z T
	states := f.States()
	dist := make(map[automatonstate.State]T, len(states))
	for _, s := range states {
		dist[s] = z.Zero()
	}
	for _, ws := range f.Initial() {
		dist[ws.State] = dist[ws.State].Add(ws.Weight)
	}

	relaxOnce := func() bool {
		changed := false
		for _, p := range states {
			for _, arc := range f.Arcs(p, false) {
				cand := dist[arc.To].Add(dist[p].Mul(arc.Weight))
				if !cand.Equal(dist[arc.To]) {
					dist[arc.To] = cand
					changed = true
				}
			}
		}
		return changed
	}

	n := len(states)
	for i := 0; i < n-1; i++ {
		if !relaxOnce() {
			return dist, nil
		}
	}
	if relaxOnce() {
		return nil, ErrNegativeCycle
	}
	return dist, nil
}

// dijkstraForwardFrom computes the shortest-forward-path sum from source to
// every state of f, using the same superior pop-once relaxation as
// dijkstraBackward but walking out-arcs instead of in-arcs.
func dijkstraForwardFrom[T semiring.Semiring[T]](f *wfsa.WFSA[T], source automatonstate.State) map[automatonstate.State]T {
	var z T
	states := f.States()
	dist := make(map[automatonstate.State]T, len(states))
	done := make(map[automatonstate.State]bool, len(states))
	for _, s := range states {
		dist[s] = z.Zero()
	}
	dist[source] = z.One()

	for range states {
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

		for _, arc := range f.Arcs(best, false) {
			if done[arc.To] {
				continue
			}
			cand := dist[arc.To].Add(dist[best].Mul(arc.Weight))
			dist[arc.To] = cand
		}
	}

	return dist
}

// invert returns v's multiplicative inverse when v implements
// semiring.Invertible, an error otherwise.
func invert[T semiring.Semiring[T]](v T) (T, error) {
	var zero T
	inv, ok := any(v).(semiring.Invertible[T])
	if !ok {
		return zero, wfsa.ErrNoInverse
	}
	return inv.Inv()
}

// invertOrOne returns v's inverse, or One() when v is Zero (nothing reaches
// q from the reweighting potential's perspective, so no division is
// needed).
func invertOrOne[T semiring.Semiring[T]](v T) T {
	var z T
	if v.Equal(z.Zero()) {
		return z.One()
	}
	iv, err := invert[T](v)
	if err != nil {
		return z.One()
	}
	return iv
}
