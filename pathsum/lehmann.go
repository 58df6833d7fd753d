package pathsum

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/wfsa"
)

// lehmannBackward computes β(s) = Σ_q closure[s][q] ⊗ final(q), where
// closure is the all-pairs Lehmann closure of the whole automaton's arc
// weights (zero-length paths included, since a final state's own β must
// count its final weight with no arc taken). Works on any graph shape,
// cyclic or not, at the cost of the closure's cubic running time.
func lehmannBackward[T semiring.Semiring[T]](f *wfsa.WFSA[T]) (map[automatonstate.State]T, error) {
	var probe T
	if _, ok := any(probe).(semiring.Starable[T]); !ok {
		return nil, ErrNotClosed
	}

	states := f.States()
	closure, err := wfsa.LehmannClosure[T](states, arcWeightOf(f), true)
	if err != nil {
		return nil, err
	}

	var z T
	beta := make(map[automatonstate.State]T, len(states))
	for _, p := range states {
		total := z.Zero()
		row := closure[p]
		for _, q := range states {
			total = total.Add(row[q].Mul(f.FinalWeight(q)))
		}
		beta[p] = total
	}
	return beta, nil
}

// arcWeightOf returns the summed weight of every p -> q arc in f, the
// shape wfsa.LehmannClosure expects for its arc callback.
func arcWeightOf[T semiring.Semiring[T]](f *wfsa.WFSA[T]) func(p, q automatonstate.State) T {
	return func(p, q automatonstate.State) T {
		var z T
		total := z.Zero()
		for _, a := range f.Arcs(p, false) {
			if a.To == q {
				total = total.Add(a.Weight)
			}
		}
		return total
	}
}
