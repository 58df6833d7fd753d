package pathsum

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// sccLehmannBackward decomposes f into strongly connected components and
// processes them in reverse topological order: every arc leaving a
// component points only at components already finalized (by the
// topological property of condensation), so gamma(s) — s's contribution
// from final weights and cross-component arcs — can be computed before a
// component's own intra-component Lehmann closure folds in any cycles
// local to that component.
func sccLehmannBackward[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]T, error) {
	return sccLehmannBackwardWithFinal(f, f.FinalWeight)
}

// sccLehmannBackwardWithFinal is sccLehmannBackward generalized over an
// arbitrary final-weight function, used by sccLehmannAllPairs to isolate a
// single target state per call without rebuilding the automaton.
func sccLehmannBackwardWithFinal[T semiring.Semiring[T]](f *wfsa.WFSA[T], final func(automatonstate.State) T) (map[automatonstate.State]T, error) {
	var z T
	if _, ok := any(z).(semiring.Starable[T]); !ok {
		return nil, ErrNotClosed
	}
	components := f.SCC()
	beta := make(map[automatonstate.State]T, len(f.States()))

	for i := len(components) - 1; i >= 0; i-- {
		comp := components[i]
		inComp := make(map[automatonstate.State]struct{}, len(comp))
		for _, s := range comp {
			inComp[s] = struct{}{}
		}

		gamma := make(map[automatonstate.State]T, len(comp))
		for _, s := range comp {
			total := final(s)
			for _, arc := range f.Arcs(s, false) {
				if _, local := inComp[arc.To]; local {
					continue
				}
				total = total.Add(arc.Weight.Mul(beta[arc.To]))
			}
			gamma[s] = total
		}

		arc := func(p, q automatonstate.State) T {
			total := z.Zero()
			for _, a := range f.Arcs(p, false) {
				if a.To != q {
					continue
				}
				if _, local := inComp[a.To]; !local {
					continue
				}
				total = total.Add(a.Weight)
			}
			return total
		}
		closure, err := wfsa.LehmannClosure[T](comp, arc, true)
		if err != nil {
			return nil, err
		}

		for _, s := range comp {
			total := z.Zero()
			row := closure[s]
			for _, k := range comp {
				total = total.Add(row[k].Mul(gamma[k]))
			}
			beta[s] = total
		}
	}

	return beta, nil
}

// sccLehmannAllPairs computes the full all-pairs matrix by running
// sccLehmannBackwardWithFinal once per target state q, with a final-weight
// function that isolates q (weight One at q, Zero everywhere else) so the
// resulting backward vector's p-th entry is exactly the p -> q path sum.
func sccLehmannAllPairs[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]map[automatonstate.State]T, error) {
	var z T
	states := f.States()
	out := make(map[automatonstate.State]map[automatonstate.State]T, len(states))
	for _, s := range states {
		out[s] = make(map[automatonstate.State]T, len(states))
	}

	for _, q := range states {
		final := func(s automatonstate.State) T {
			if s == q {
				return z.One()
			}
			return z.Zero()
		}
		beta, err := sccLehmannBackwardWithFinal(f, final)
		if err != nil {
			return nil, err
		}
		for _, p := range states {
			out[p][q] = beta[p]
		}
	}
	return out, nil
}
