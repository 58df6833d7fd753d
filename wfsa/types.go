package wfsa

import (
	"fmt"
	"sort"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// Arc is a single labeled, weighted transition From -> To over Label.
type Arc[T semiring.Semiring[T]] struct {
	From, To automatonstate.State
	Label    symbol.Sym
	Weight   T
}

func (a Arc[T]) String() string {
	return fmt.Sprintf("%s\t----%s/%v---->\t%s", a.From, a.Label, a.Weight, a.To)
}

// WFSA is a weighted finite-state automaton over weight type T. States are
// added implicitly by AddArc/AddInitial/AddFinal; the zero value of WFSA
// is not usable, construct one with New.
type WFSA[T semiring.Semiring[T]] struct {
	states   []automatonstate.State
	stateSet map[automatonstate.State]struct{}

	alphabet map[symbol.Sym]struct{}

	out map[automatonstate.State][]Arc[T]
	in  map[automatonstate.State][]Arc[T]

	initOrder []automatonstate.State
	initWt    map[automatonstate.State]T

	finalOrder []automatonstate.State
	finalWt    map[automatonstate.State]T

	frozen bool
}

// New returns an empty WFSA over weight type T.
func New[T semiring.Semiring[T]]() *WFSA[T] {
	return &WFSA[T]{
		stateSet: make(map[automatonstate.State]struct{}),
		alphabet: make(map[symbol.Sym]struct{}),
		out:      make(map[automatonstate.State][]Arc[T]),
		in:       make(map[automatonstate.State][]Arc[T]),
		initWt:   make(map[automatonstate.State]T),
		finalWt:  make(map[automatonstate.State]T),
	}
}

func (f *WFSA[T]) zero() T { var z T; return z.Zero() }
func (f *WFSA[T]) one() T  { var z T; return z.One() }

func (f *WFSA[T]) isZero(w T) bool { return w.Equal(f.zero()) }

// addState registers s if not already present, preserving insertion order.
func (f *WFSA[T]) addState(s automatonstate.State) {
	if _, ok := f.stateSet[s]; ok {
		return
	}
	f.stateSet[s] = struct{}{}
	f.states = append(f.states, s)
}

// HasState reports whether s has been registered with this automaton,
// either directly or as an arc/initial/final endpoint.
func (f *WFSA[T]) HasState(s automatonstate.State) bool {
	_, ok := f.stateSet[s]
	return ok
}

// States returns every state in insertion order.
func (f *WFSA[T]) States() []automatonstate.State {
	out := make([]automatonstate.State, len(f.states))
	copy(out, f.states)
	return out
}

// Alphabet returns every non-epsilon label used by an arc, sorted for
// determinism.
func (f *WFSA[T]) Alphabet() []symbol.Sym {
	out := make([]symbol.Sym, 0, len(f.alphabet))
	for s := range f.alphabet {
		out = append(out, s)
	}
	sortSyms(out)
	return out
}

// AddArc appends a new From->To transition over Label with weight w. If an
// identical (From, Label, To) arc already exists, the new arc's weight is
// summed into it rather than creating a parallel arc. Per the WFSA
// invariant that arcs with weight Zero are hidden from enumeration, a sum
// that lands back on Zero removes the arc entirely rather than leaving a
// zero-weight entry behind.
func (f *WFSA[T]) AddArc(from, to automatonstate.State, label symbol.Sym, w T) error {
	if f.frozen {
		return ErrFrozen
	}
	f.addState(from)
	f.addState(to)

	for i, a := range f.out[from] {
		if a.To == to && a.Label == label {
			sum := a.Weight.Add(w)
			if f.isZero(sum) {
				f.removeArc(from, to, label)
				return nil
			}
			f.out[from][i].Weight = sum
			f.updateReverse(from, to, label, sum)
			return nil
		}
	}

	if f.isZero(w) {
		return nil
	}
	if !label.IsEpsilon() {
		f.alphabet[label] = struct{}{}
	}
	arc := Arc[T]{From: from, To: to, Label: label, Weight: w}
	f.out[from] = append(f.out[from], arc)
	f.in[to] = append(f.in[to], arc)
	return nil
}

// SetArc unconditionally assigns w as the weight of the From->To arc over
// Label, replacing any existing weight rather than summing it. If no such
// arc exists, it is created, unless w is Zero, in which case no arc is
// created (and any existing arc is removed), matching the hidden-from-
// enumeration invariant for Zero-weight arcs.
func (f *WFSA[T]) SetArc(from, to automatonstate.State, label symbol.Sym, w T) error {
	if f.frozen {
		return ErrFrozen
	}
	f.addState(from)
	f.addState(to)

	if f.isZero(w) {
		f.removeArc(from, to, label)
		return nil
	}
	if !label.IsEpsilon() {
		f.alphabet[label] = struct{}{}
	}

	for i, a := range f.out[from] {
		if a.To == to && a.Label == label {
			f.out[from][i].Weight = w
			f.updateReverse(from, to, label, w)
			return nil
		}
	}

	arc := Arc[T]{From: from, To: to, Label: label, Weight: w}
	f.out[from] = append(f.out[from], arc)
	f.in[to] = append(f.in[to], arc)
	return nil
}

func (f *WFSA[T]) updateReverse(from, to automatonstate.State, label symbol.Sym, w T) {
	for i, a := range f.in[to] {
		if a.From == from && a.Label == label {
			f.in[to][i].Weight = w
			return
		}
	}
}

// removeArc deletes the From->To arc over Label from both the forward and
// reverse adjacency lists, if present.
func (f *WFSA[T]) removeArc(from, to automatonstate.State, label symbol.Sym) {
	out := f.out[from]
	for i, a := range out {
		if a.To == to && a.Label == label {
			f.out[from] = append(out[:i], out[i+1:]...)
			break
		}
	}
	in := f.in[to]
	for i, a := range in {
		if a.From == from && a.Label == label {
			f.in[to] = append(in[:i], in[i+1:]...)
			break
		}
	}
}

// AddInitial marks s as an initial state, summing w into any existing
// initial weight for s. Per the WFSA invariant that λ(q) ≠ Zero is what
// makes q initial, a sum that lands back on Zero un-marks s as initial
// rather than leaving a zero-weight entry behind.
func (f *WFSA[T]) AddInitial(s automatonstate.State, w T) error {
	if f.frozen {
		return ErrFrozen
	}
	f.addState(s)
	if cur, ok := f.initWt[s]; ok {
		sum := cur.Add(w)
		if f.isZero(sum) {
			f.removeInitial(s)
			return nil
		}
		f.initWt[s] = sum
		return nil
	}
	if f.isZero(w) {
		return nil
	}
	f.initWt[s] = w
	f.initOrder = append(f.initOrder, s)
	return nil
}

// SetInitial unconditionally assigns w as s's initial weight. Assigning
// Zero un-marks s as initial (and removes any existing entry) rather than
// creating a zero-weight one, matching λ(q) ≠ Zero ⇔ q initial.
func (f *WFSA[T]) SetInitial(s automatonstate.State, w T) error {
	if f.frozen {
		return ErrFrozen
	}
	f.addState(s)
	if f.isZero(w) {
		f.removeInitial(s)
		return nil
	}
	if _, ok := f.initWt[s]; !ok {
		f.initOrder = append(f.initOrder, s)
	}
	f.initWt[s] = w
	return nil
}

func (f *WFSA[T]) removeInitial(s automatonstate.State) {
	if _, ok := f.initWt[s]; !ok {
		return
	}
	delete(f.initWt, s)
	for i, q := range f.initOrder {
		if q == s {
			f.initOrder = append(f.initOrder[:i], f.initOrder[i+1:]...)
			break
		}
	}
}

// AddFinal marks s as a final state, summing w into any existing final
// weight for s. Per the WFSA invariant that ρ(q) ≠ Zero is what makes q
// final, a sum that lands back on Zero un-marks s as final rather than
// leaving a zero-weight entry behind.
func (f *WFSA[T]) AddFinal(s automatonstate.State, w T) error {
	if f.frozen {
		return ErrFrozen
	}
	f.addState(s)
	if cur, ok := f.finalWt[s]; ok {
		sum := cur.Add(w)
		if f.isZero(sum) {
			f.removeFinal(s)
			return nil
		}
		f.finalWt[s] = sum
		return nil
	}
	if f.isZero(w) {
		return nil
	}
	f.finalWt[s] = w
	f.finalOrder = append(f.finalOrder, s)
	return nil
}

// SetFinal unconditionally assigns w as s's final weight. Assigning Zero
// un-marks s as final (and removes any existing entry) rather than
// creating a zero-weight one, matching ρ(q) ≠ Zero ⇔ q final.
func (f *WFSA[T]) SetFinal(s automatonstate.State, w T) error {
	if f.frozen {
		return ErrFrozen
	}
	f.addState(s)
	if f.isZero(w) {
		f.removeFinal(s)
		return nil
	}
	if _, ok := f.finalWt[s]; !ok {
		f.finalOrder = append(f.finalOrder, s)
	}
	f.finalWt[s] = w
	return nil
}

func (f *WFSA[T]) removeFinal(s automatonstate.State) {
	if _, ok := f.finalWt[s]; !ok {
		return
	}
	delete(f.finalWt, s)
	for i, q := range f.finalOrder {
		if q == s {
			f.finalOrder = append(f.finalOrder[:i], f.finalOrder[i+1:]...)
			break
		}
	}
}

// Freeze marks the automaton read-only; subsequent mutating calls return
// ErrFrozen. Algorithms that build a derived automaton (union, intersect,
// determinize, ...) return a fresh, unfrozen WFSA.
func (f *WFSA[T]) Freeze() { f.frozen = true }

// Frozen reports whether Freeze has been called.
func (f *WFSA[T]) Frozen() bool { return f.frozen }

// Initial returns the (state, weight) pairs with nonzero initial weight,
// in the order they were first set.
func (f *WFSA[T]) Initial() []WeightedState[T] {
	return f.weightedPairs(f.initOrder, f.initWt)
}

// Final returns the (state, weight) pairs with nonzero final weight, in
// the order they were first set.
func (f *WFSA[T]) Final() []WeightedState[T] {
	return f.weightedPairs(f.finalOrder, f.finalWt)
}

func (f *WFSA[T]) weightedPairs(order []automatonstate.State, wt map[automatonstate.State]T) []WeightedState[T] {
	out := make([]WeightedState[T], 0, len(order))
	for _, s := range order {
		out = append(out, WeightedState[T]{State: s, Weight: wt[s]})
	}
	return out
}

// InitialWeight returns s's initial weight, Zero if s is not initial.
func (f *WFSA[T]) InitialWeight(s automatonstate.State) T {
	if w, ok := f.initWt[s]; ok {
		return w
	}
	return f.zero()
}

// FinalWeight returns s's final weight, Zero if s is not final.
func (f *WFSA[T]) FinalWeight(s automatonstate.State) T {
	if w, ok := f.finalWt[s]; ok {
		return w
	}
	return f.zero()
}

// Arcs returns the outgoing arcs of s in insertion order. When noEps is
// true, epsilon-labeled arcs (including the ε₁/ε₂ filter tags) are
// omitted.
func (f *WFSA[T]) Arcs(s automatonstate.State, noEps bool) []Arc[T] {
	all := f.out[s]
	if !noEps {
		out := make([]Arc[T], len(all))
		copy(out, all)
		return out
	}
	out := make([]Arc[T], 0, len(all))
	for _, a := range all {
		if !a.Label.IsEpsilon() {
			out = append(out, a)
		}
	}
	return out
}

// InArcs returns the arcs terminating at s in insertion order.
func (f *WFSA[T]) InArcs(s automatonstate.State) []Arc[T] {
	all := f.in[s]
	out := make([]Arc[T], len(all))
	copy(out, all)
	return out
}

// WeightedState pairs a state with a weight, used for the Initial/Final
// sparse-weight vectors.
type WeightedState[T semiring.Semiring[T]] struct {
	State  automatonstate.State
	Weight T
}

func sortSyms(ss []symbol.Sym) {
	sort.Slice(ss, func(i, j int) bool { return ss[i].Letter < ss[j].Letter })
}
