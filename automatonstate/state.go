package automatonstate

import "fmt"

// State is an opaque identity plus an optional display label. ID must be a
// comparable value (an int, a string, or a comparable struct such as
// PairState); it is the sole basis for equality and for use as a map key.
// Label never participates in equality or hashing.
type State struct {
	ID    any
	Label string
}

// New wraps id as an unlabeled State.
func New(id any) State { return State{ID: id} }

// Labeled wraps id as a State carrying the given display label.
func Labeled(id any, label string) State { return State{ID: id, Label: label} }

// WithLabel returns a copy of s carrying the given label.
func (s State) WithLabel(label string) State { return State{ID: s.ID, Label: label} }

// String renders the label when present, otherwise the underlying ID.
func (s State) String() string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprint(s.ID)
}

// PairState is a composite identity: either a disjoint-tagged copy of one
// state (as built by Tagged for the operand copies in Union, Concatenate
// and KleeneClosure) or an untagged pair of states (as built by Pair).
// Two PairStates are equal iff their components are equal componentwise.
type PairState struct {
	Tag          int // disjoint-union tag: 1 for the left operand, 2 for the right
	First, Second State
}

// Pair builds the State wrapping a two-component PairState: identity
// (p, q) with no disjointness tag.
func Pair(p, q State) State {
	return State{ID: PairState{First: p, Second: q}}
}

// Tagged builds the State wrapping a disjoint-union copy of a single
// component, used by Union/Concatenate/KleeneClosure to keep each operand's states
// distinct even when their raw IDs collide.
func Tagged(tag int, q State) State {
	return State{ID: PairState{Tag: tag, First: q}}
}

func (p PairState) String() string {
	if p.Second.ID == nil && p.Tag != 0 {
		return fmt.Sprintf("(%d:%s)", p.Tag, p.First)
	}
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}
