package graphutil

import (
	"errors"

	"github.com/arnouk/ratalg/automatonstate"
)

// ErrCycleDetected indicates TopologicalSort was called on a graph that is
// not acyclic.
var ErrCycleDetected = errors.New("graphutil: cycle detected")

// vertexState is the White/Gray/Black DFS coloring: White has not been
// seen, Gray is on the current traversal stack, Black is fully explored.
type vertexState int

const (
	white vertexState = iota
	gray
	black
)

// Neighbors is the adjacency callback every traversal in this package is
// parameterized over: given a state, it returns the states reachable by
// one outgoing arc, in the caller's preferred (ideally deterministic)
// order.
type Neighbors func(s automatonstate.State) []automatonstate.State

// DFSResult collects the outcome of a DFS traversal rooted at one or more
// start states.
type DFSResult struct {
	// PostOrder lists states in the order they finished (post-order),
	// across every tree in the forest when multiple roots are given.
	PostOrder []automatonstate.State

	// Parent maps a state to the state from which it was first
	// discovered; roots are absent from this map.
	Parent map[automatonstate.State]automatonstate.State

	// Visited flags every state reached during the traversal.
	Visited map[automatonstate.State]bool

	// HasCycle is true if a back edge (an arc into a Gray state) was
	// found anywhere during the traversal.
	HasCycle bool
}
