package wfsa

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// TArc is a transducer arc: it consumes In and emits Out, which may
// independently be epsilon.
type TArc[T semiring.Semiring[T]] struct {
	From, To automatonstate.State
	In, Out  symbol.Sym
	Weight   T
}

// WFST is a weighted finite-state transducer: like WFSA but every arc
// carries an independent input and output symbol instead of one shared
// label.
type WFST[T semiring.Semiring[T]] struct {
	states   []automatonstate.State
	stateSet map[automatonstate.State]struct{}

	out map[automatonstate.State][]TArc[T]

	initOrder []automatonstate.State
	initWt    map[automatonstate.State]T

	finalOrder []automatonstate.State
	finalWt    map[automatonstate.State]T
}

// NewFST returns an empty transducer over weight type T.
func NewFST[T semiring.Semiring[T]]() *WFST[T] {
	return &WFST[T]{
		stateSet: make(map[automatonstate.State]struct{}),
		out:      make(map[automatonstate.State][]TArc[T]),
		initWt:   make(map[automatonstate.State]T),
		finalWt:  make(map[automatonstate.State]T),
	}
}

func (t *WFST[T]) addState(s automatonstate.State) {
	if _, ok := t.stateSet[s]; ok {
		return
	}
	t.stateSet[s] = struct{}{}
	t.states = append(t.states, s)
}

// AddArc appends a From->To transition consuming in and emitting out.
func (t *WFST[T]) AddArc(from, to automatonstate.State, in, out symbol.Sym, w T) {
	t.addState(from)
	t.addState(to)
	t.out[from] = append(t.out[from], TArc[T]{From: from, To: to, In: in, Out: out, Weight: w})
}

// SetInitial assigns w as s's initial weight.
func (t *WFST[T]) SetInitial(s automatonstate.State, w T) {
	t.addState(s)
	if _, ok := t.initWt[s]; !ok {
		t.initOrder = append(t.initOrder, s)
	}
	t.initWt[s] = w
}

// SetFinal assigns w as s's final weight.
func (t *WFST[T]) SetFinal(s automatonstate.State, w T) {
	t.addState(s)
	if _, ok := t.finalWt[s]; !ok {
		t.finalOrder = append(t.finalOrder, s)
	}
	t.finalWt[s] = w
}

func (t *WFST[T]) States() []automatonstate.State {
	out := make([]automatonstate.State, len(t.states))
	copy(out, t.states)
	return out
}

// Arcs returns the outgoing arcs of s.
func (t *WFST[T]) Arcs(s automatonstate.State, noEps bool) []TArc[T] {
	all := t.out[s]
	if !noEps {
		out := make([]TArc[T], len(all))
		copy(out, all)
		return out
	}
	out := make([]TArc[T], 0, len(all))
	for _, a := range all {
		if !a.In.IsEpsilon() && !a.Out.IsEpsilon() {
			out = append(out, a)
		}
	}
	return out
}

// composeState pairs a left-side state with a right-side state, used by
// both TopCompose and BottomCompose.
type composeState struct {
	L, R automatonstate.State
}

// TopCompose computes T1's input composed with T2 applied to T1's output:
// a new transducer mapping T1's input alphabet to T2's output alphabet,
// with weight w1 ⊗ w2 for every pair of arcs whose labels align (T1's
// output symbol equals T2's input symbol; an epsilon output on T1 pairs
// only with an epsilon input on T2, as one synchronized move).
//
// There is no composition epsilon filter (unlike Intersect, which applies
// one), and neither operand ever takes an epsilon move alone: every
// product arc advances both transducers. A pair of paths whose aligned
// tapes carry different numbers of epsilons, or epsilons at different
// positions, therefore yields no path in the result.
func TopCompose[T semiring.Semiring[T]](t1, t2 *WFST[T]) *WFST[T] {
	return compose(t1, t2)
}

// BottomCompose is the same construction as TopCompose; the two names
// differ only by which operand is conventionally drawn on top in
// diagrams, not by any difference in semantics.
func BottomCompose[T semiring.Semiring[T]](t1, t2 *WFST[T]) *WFST[T] {
	return compose(t1, t2)
}

func compose[T semiring.Semiring[T]](t1, t2 *WFST[T]) *WFST[T] {
	out := NewFST[T]()

	toState := func(cs composeState) automatonstate.State { return automatonstate.New(cs) }

	var queue []composeState
	seen := make(map[composeState]bool)
	enqueue := func(cs composeState) {
		if !seen[cs] {
			seen[cs] = true
			queue = append(queue, cs)
		}
	}

	for _, l := range t1.initOrder {
		for _, r := range t2.initOrder {
			cs := composeState{L: l, R: r}
			out.SetInitial(toState(cs), t1.initWt[l].Mul(t2.initWt[r]))
			enqueue(cs)
		}
	}

	for len(queue) > 0 {
		cs := queue[0]
		queue = queue[1:]
		s := toState(cs)

		if fl, ok := t1.finalWt[cs.L]; ok {
			if fr, ok2 := t2.finalWt[cs.R]; ok2 {
				out.SetFinal(s, fl.Mul(fr))
			}
		}

		for _, a1 := range t1.out[cs.L] {
			for _, a2 := range t2.out[cs.R] {
				if a1.Out != a2.In {
					continue
				}
				next := composeState{L: a1.To, R: a2.To}
				out.AddArc(s, toState(next), a1.In, a2.Out, a1.Weight.Mul(a2.Weight))
				enqueue(next)
			}
		}
	}

	return out
}

func (a TArc[T]) String() string {
	return fmt.Sprintf("%s\t----(%s:%s)/%v---->\t%s", a.From, a.In, a.Out, a.Weight, a.To)
}
