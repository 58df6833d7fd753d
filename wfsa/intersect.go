package wfsa

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// intersectState is the product identity carried by Intersect's states: a
// pair of component states plus Mohri's 3-value epsilon-filter marker.
// Filter 0 is the default; 1 records "the left operand just took an
// epsilon move alone" and 2 the symmetric case for the right operand.
type intersectState struct {
	P, Q   automatonstate.State
	Filter int
}

// Intersect computes the on-the-fly product automaton accepting
// L(a) ∩ L(b), weight w(x) = wa(x) ⊗ wb(x). Because both operands may
// contain epsilon arcs, a naive product would count the same accepting
// path once for every interleaving of the two operands' epsilon moves;
// Intersect guards against that with Mohri's 3-state epsilon filter:
// a real-symbol match is always allowed and resets the filter to 0, a
// lone left epsilon move is only allowed from filter 0 or 1 (and sets the
// filter to 1), a lone right epsilon move only from filter 0 or 2 (and
// sets the filter to 2) — so of the two orderings "left-eps then
// right-eps" vs. "right-eps then left-eps" exactly one survives.
//
// Only states reachable from a product-initial state are materialized,
// via breadth-first exploration, so Intersect runs in time proportional
// to the reachable product rather than |a|·|b|·3 in the worst case.
func Intersect[T semiring.Semiring[T]](a, b *WFSA[T]) *WFSA[T] {
	out := New[T]()

	toState := func(is intersectState) automatonstate.State {
		return automatonstate.New(is)
	}

	var queue []intersectState
	seen := make(map[intersectState]bool)

	enqueue := func(is intersectState) {
		if !seen[is] {
			seen[is] = true
			queue = append(queue, is)
		}
	}

	for _, ia := range a.Initial() {
		for _, ib := range b.Initial() {
			is := intersectState{P: ia.State, Q: ib.State, Filter: 0}
			_ = out.AddInitial(toState(is), ia.Weight.Mul(ib.Weight))
			enqueue(is)
		}
	}

	for len(queue) > 0 {
		is := queue[0]
		queue = queue[1:]
		s := toState(is)

		if wa, ok := a.finalWt[is.P]; ok {
			if wb, ok2 := b.finalWt[is.Q]; ok2 {
				_ = out.AddFinal(s, wa.Mul(wb))
			}
		}

		// Real-symbol matches: allowed from any filter state, reset to 0.
		for _, aArc := range a.out[is.P] {
			if aArc.Label.IsEpsilon() {
				continue
			}
			for _, bArc := range b.out[is.Q] {
				if bArc.Label != aArc.Label {
					continue
				}
				next := intersectState{P: aArc.To, Q: bArc.To, Filter: 0}
				_ = out.AddArc(s, toState(next), aArc.Label, aArc.Weight.Mul(bArc.Weight))
				enqueue(next)
			}
		}

		// Lone left epsilon: allowed from filter 0 or 1.
		if is.Filter == 0 || is.Filter == 1 {
			for _, aArc := range a.out[is.P] {
				if !aArc.Label.IsEpsilon() {
					continue
				}
				next := intersectState{P: aArc.To, Q: is.Q, Filter: 1}
				_ = out.AddArc(s, toState(next), symbol.Eps2, aArc.Weight)
				enqueue(next)
			}
		}

		// Lone right epsilon: allowed from filter 0 or 2.
		if is.Filter == 0 || is.Filter == 2 {
			for _, bArc := range b.out[is.Q] {
				if !bArc.Label.IsEpsilon() {
					continue
				}
				next := intersectState{P: is.P, Q: bArc.To, Filter: 2}
				_ = out.AddArc(s, toState(next), symbol.Eps1, bArc.Weight)
				enqueue(next)
			}
		}
	}

	return out
}

// CoaccessibleIntersection computes Intersect(a, b) and trims it to
// accessible-and-coaccessible states in one call — useful because
// on-the-fly intersection can materialize dead-end product states that
// neither side's trim pass would have produced on its own.
func CoaccessibleIntersection[T semiring.Semiring[T]](a, b *WFSA[T]) *WFSA[T] {
	return Intersect(a, b).Trim()
}
