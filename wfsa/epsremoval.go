package wfsa

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// EpsilonRemoval computes an epsilon-free automaton equivalent to f. It
// partitions f's arcs into an epsilon-only subgraph E and the verbatim
// non-epsilon arcs N (N additionally keeps f's original initial and final
// weights unchanged), computes W, the all-pairs closure of E excluding
// zero-length paths, then:
//
//  1. for every non-epsilon arc i -a/w-> j of f and every state k, adds a
//     new arc i -a/(w⊗W[j][k])-> k to N whenever W[j][k] is nonzero — this
//     splices any epsilon moves trailing a real arc directly onto it;
//  2. for every pair of states (i, j) with W[i][j] nonzero, raises j's
//     initial weight by f's original initial weight at i times W[i][j] —
//     this lets the result "start" at any state reachable from a true
//     initial state by epsilon moves alone, with N's unchanged final
//     weights then accounting for any purely-epsilon accepting path.
//
// Splicing forward from every real arc's source (not just from initial
// states) together with raising every epsilon-reachable state's initial
// weight is what correctly handles epsilon moves interspersed between
// several real-symbol hops, without needing to also adjust final weights.
func EpsilonRemoval[T semiring.Semiring[T]](f *WFSA[T]) (*WFSA[T], error) {
	n, e := epsPartition(f)

	w, err := LehmannClosure[T](f.States(), func(p, q automatonstate.State) T {
		var z T
		total := z.Zero()
		for _, a := range e.out[p] {
			if a.To == q {
				total = total.Add(a.Weight)
			}
		}
		return total
	}, false)
	if err != nil {
		return nil, err
	}

	var z T
	zero := z.Zero()

	for _, i := range f.states {
		for _, arc := range f.out[i] {
			if arc.Label.IsEpsilon() {
				continue
			}
			for _, k := range f.states {
				wjk := w[arc.To][k]
				if wjk.Equal(zero) {
					continue
				}
				_ = n.AddArc(i, k, arc.Label, arc.Weight.Mul(wjk))
			}
		}
	}

	for _, i := range f.states {
		for _, j := range f.states {
			wij := w[i][j]
			if wij.Equal(zero) {
				continue
			}
			_ = n.AddInitial(j, f.InitialWeight(i).Mul(wij))
		}
	}

	return n, nil
}

// epsPartition splits f into E (epsilon-only arcs, no initial/final
// weights) and N (non-epsilon arcs verbatim, carrying f's original
// initial and final weights), both over the same state set as f.
func epsPartition[T semiring.Semiring[T]](f *WFSA[T]) (n, e *WFSA[T]) {
	n, e = New[T](), New[T]()
	for _, s := range f.states {
		n.addState(s)
		e.addState(s)
	}
	for _, ws := range f.Initial() {
		_ = n.SetInitial(ws.State, ws.Weight)
	}
	for _, ws := range f.Final() {
		_ = n.SetFinal(ws.State, ws.Weight)
	}
	for _, s := range f.states {
		for _, arc := range f.out[s] {
			if arc.Label == symbol.Eps || arc.Label.IsEpsilon() {
				_ = e.AddArc(arc.From, arc.To, arc.Label, arc.Weight)
			} else {
				_ = n.AddArc(arc.From, arc.To, arc.Label, arc.Weight)
			}
		}
	}
	return n, e
}
