package wfsa

import (
	"fmt"
	"strings"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/graphutil"
	"github.com/arnouk/ratalg/symbol"
)

// roots returns the initial states, used as DFS/reachability roots.
func (f *WFSA[T]) roots() []automatonstate.State {
	out := make([]automatonstate.State, len(f.initOrder))
	copy(out, f.initOrder)
	return out
}

func (f *WFSA[T]) forwardNeighbors(s automatonstate.State) []automatonstate.State {
	arcs := f.out[s]
	out := make([]automatonstate.State, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}
	return out
}

func (f *WFSA[T]) backwardNeighbors(s automatonstate.State) []automatonstate.State {
	arcs := f.in[s]
	out := make([]automatonstate.State, len(arcs))
	for i, a := range arcs {
		out[i] = a.From
	}
	return out
}

// NumStates returns how many states have been registered with this
// automaton.
func (f *WFSA[T]) NumStates() int { return len(f.states) }

// Pushed reports whether the automaton satisfies the weight-pushing
// post-condition at every state: the sum of all outgoing arc weights plus
// the state's final weight equals One.
func (f *WFSA[T]) Pushed() bool {
	one := f.one()
	for _, s := range f.states {
		sum := f.FinalWeight(s)
		for _, a := range f.out[s] {
			sum = sum.Add(a.Weight)
		}
		if !sum.Equal(one) {
			return false
		}
	}
	return true
}

// Equivalent would test language-and-weight equivalence with other; the
// construction is deliberately left unimplemented and always returns
// ErrNotSupported.
func (f *WFSA[T]) Equivalent(other *WFSA[T]) (bool, error) {
	return false, ErrNotSupported
}

// Difference would compute the weighted language difference with other;
// like Equivalent, it is deliberately left unimplemented and always
// returns ErrNotSupported.
func (f *WFSA[T]) Difference(other *WFSA[T]) (*WFSA[T], error) {
	return nil, ErrNotSupported
}

// Acyclic reports whether the automaton, considered as a whole (regardless
// of reachability from an initial state), has no cycle.
func (f *WFSA[T]) Acyclic() bool {
	return graphutil.Acyclic(f.States(), f.forwardNeighbors)
}

// Toposort returns a topological order of every state. It returns
// ErrNotAcyclic if the automaton has a cycle.
func (f *WFSA[T]) Toposort() ([]automatonstate.State, error) {
	order, err := graphutil.TopologicalSort(f.States(), f.forwardNeighbors)
	if err != nil {
		return nil, ErrNotAcyclic
	}
	return order, nil
}

// SCC returns the automaton's strongly connected components in
// topologically sorted (condensation) order.
func (f *WFSA[T]) SCC() [][]automatonstate.State {
	return graphutil.SCC(f.States(), f.forwardNeighbors, f.backwardNeighbors)
}

// Accessible returns every state reachable from some initial state.
func (f *WFSA[T]) Accessible() []automatonstate.State {
	return graphutil.Reachable(f.roots(), f.forwardNeighbors)
}

// Coaccessible returns every state that can reach some final state.
func (f *WFSA[T]) Coaccessible() []automatonstate.State {
	finals := make([]automatonstate.State, len(f.finalOrder))
	copy(finals, f.finalOrder)
	return graphutil.Reachable(finals, f.backwardNeighbors)
}

// Trim returns a copy of f restricted to states that are both accessible
// and coaccessible, the states that lie on some accepting path at all.
func (f *WFSA[T]) Trim() *WFSA[T] {
	acc := setOf(f.Accessible())
	coacc := setOf(f.Coaccessible())

	out := New[T]()
	for _, s := range f.states {
		if _, a := acc[s]; !a {
			continue
		}
		if _, c := coacc[s]; !c {
			continue
		}
		out.addState(s)
	}
	for _, ws := range f.Initial() {
		if _, a := acc[ws.State]; a {
			if _, c := coacc[ws.State]; c {
				_ = out.SetInitial(ws.State, ws.Weight)
			}
		}
	}
	for _, ws := range f.Final() {
		if _, a := acc[ws.State]; a {
			if _, c := coacc[ws.State]; c {
				_ = out.SetFinal(ws.State, ws.Weight)
			}
		}
	}
	for _, s := range out.states {
		for _, arc := range f.out[s] {
			if _, a := acc[arc.To]; !a {
				continue
			}
			if _, c := coacc[arc.To]; !c {
				continue
			}
			_ = out.AddArc(arc.From, arc.To, arc.Label, arc.Weight)
		}
	}
	return out
}

func setOf(ss []automatonstate.State) map[automatonstate.State]struct{} {
	out := make(map[automatonstate.State]struct{}, len(ss))
	for _, s := range ss {
		out[s] = struct{}{}
	}
	return out
}

// Reverse returns a copy of f with every arc direction flipped and the
// initial and final weight vectors swapped.
func (f *WFSA[T]) Reverse() *WFSA[T] {
	out := New[T]()
	for _, s := range f.states {
		out.addState(s)
	}
	for _, ws := range f.Initial() {
		_ = out.SetFinal(ws.State, ws.Weight)
	}
	for _, ws := range f.Final() {
		_ = out.SetInitial(ws.State, ws.Weight)
	}
	for _, s := range f.states {
		for _, arc := range f.out[s] {
			_ = out.AddArc(arc.To, arc.From, arc.Label, arc.Weight)
		}
	}
	return out
}

// Deterministic reports whether f has exactly one initial state weighted
// One, no epsilon arcs, and at most one outgoing arc per (state, label)
// pair — the precondition Minimize requires.
func (f *WFSA[T]) Deterministic() bool {
	if len(f.initOrder) != 1 {
		return false
	}
	if !f.InitialWeight(f.initOrder[0]).Equal(f.one()) {
		return false
	}
	for _, s := range f.states {
		seen := make(map[symbol.Sym]struct{})
		for _, a := range f.out[s] {
			if a.Label.IsEpsilon() {
				return false
			}
			if _, dup := seen[a.Label]; dup {
				return false
			}
			seen[a.Label] = struct{}{}
		}
	}
	return true
}

// String renders the automaton as a plain-text dump: one line per initial
// state, one per final state, one per arc.
func (f *WFSA[T]) String() string {
	var b strings.Builder
	for _, ws := range f.Initial() {
		fmt.Fprintf(&b, "initial state:\t%s\t%v\n", ws.State, ws.Weight)
	}
	for _, ws := range f.Final() {
		fmt.Fprintf(&b, "final state:\t%s\t%v\n", ws.State, ws.Weight)
	}
	for _, s := range f.states {
		for _, a := range f.out[s] {
			fmt.Fprintf(&b, "%s\n", a)
		}
	}
	return b.String()
}
