package wfsa

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// Union builds the automaton accepting L(a) ∪ L(b): a disjoint copy of
// each operand's states (tagged 1 and 2 via automatonstate.Tagged so that
// colliding IDs never merge), carrying over both operands' arcs and
// initial/final weights unchanged.
func Union[T semiring.Semiring[T]](a, b *WFSA[T]) *WFSA[T] {
	out := New[T]()
	copyTagged(out, a, 1)
	copyTagged(out, b, 2)
	return out
}

func copyTagged[T semiring.Semiring[T]](out, src *WFSA[T], tag int) {
	for _, ws := range src.Initial() {
		_ = out.AddInitial(automatonstate.Tagged(tag, ws.State), ws.Weight)
	}
	for _, ws := range src.Final() {
		_ = out.AddFinal(automatonstate.Tagged(tag, ws.State), ws.Weight)
	}
	for _, s := range src.states {
		for _, arc := range src.out[s] {
			_ = out.AddArc(
				automatonstate.Tagged(tag, arc.From),
				automatonstate.Tagged(tag, arc.To),
				arc.Label,
				arc.Weight,
			)
		}
	}
}

// Concatenate builds the automaton accepting L(a)·L(b): disjoint tagged
// copies of both operands, with an epsilon arc from every final state of a
// (weighted by a's final weight) into every initial state of b (weighted
// by b's initial weight). a's final weights and b's initial weights are
// absorbed into those splicing arcs, so the result's own final weights
// come only from b and initial weights only from a.
func Concatenate[T semiring.Semiring[T]](a, b *WFSA[T]) *WFSA[T] {
	out := New[T]()

	for _, ws := range a.Initial() {
		_ = out.AddInitial(automatonstate.Tagged(1, ws.State), ws.Weight)
	}
	for _, s := range a.states {
		for _, arc := range a.out[s] {
			_ = out.AddArc(automatonstate.Tagged(1, arc.From), automatonstate.Tagged(1, arc.To), arc.Label, arc.Weight)
		}
	}
	for _, s := range b.states {
		for _, arc := range b.out[s] {
			_ = out.AddArc(automatonstate.Tagged(2, arc.From), automatonstate.Tagged(2, arc.To), arc.Label, arc.Weight)
		}
	}
	for _, ws := range b.Final() {
		_ = out.AddFinal(automatonstate.Tagged(2, ws.State), ws.Weight)
	}

	for _, fa := range a.Final() {
		for _, ib := range b.Initial() {
			_ = out.AddArc(
				automatonstate.Tagged(1, fa.State),
				automatonstate.Tagged(2, ib.State),
				symbol.Eps,
				fa.Weight.Mul(ib.Weight),
			)
		}
	}

	return out
}

// KleeneClosure builds the automaton accepting L(a)*: a fresh initial and
// final state, an epsilon arc directly between them weighted One (the
// zero-repetition case), epsilon fan-out from the new initial into every
// state a weighted initial, epsilon fan-in from every a final state into
// the new final, and an epsilon back-arc from every a final into every a
// initial (to splice repetitions), each weighted by the product of the
// relevant endpoint weights.
func KleeneClosure[T semiring.Semiring[T]](a *WFSA[T]) *WFSA[T] {
	out := New[T]()
	one := out.one()

	newInit := automatonstate.New("kleene-init")
	newFinal := automatonstate.New("kleene-final")
	_ = out.SetInitial(newInit, one)
	_ = out.SetFinal(newFinal, one)
	_ = out.AddArc(newInit, newFinal, symbol.Eps, one)

	for _, s := range a.states {
		for _, arc := range a.out[s] {
			_ = out.AddArc(automatonstate.Tagged(1, arc.From), automatonstate.Tagged(1, arc.To), arc.Label, arc.Weight)
		}
	}

	for _, ia := range a.Initial() {
		_ = out.AddArc(newInit, automatonstate.Tagged(1, ia.State), symbol.Eps, ia.Weight)
	}
	for _, fa := range a.Final() {
		_ = out.AddArc(automatonstate.Tagged(1, fa.State), newFinal, symbol.Eps, fa.Weight)
		for _, ia := range a.Initial() {
			_ = out.AddArc(
				automatonstate.Tagged(1, fa.State),
				automatonstate.Tagged(1, ia.State),
				symbol.Eps,
				fa.Weight.Mul(ia.Weight),
			)
		}
	}

	return out
}
