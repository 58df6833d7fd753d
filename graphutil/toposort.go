package graphutil

import "github.com/arnouk/ratalg/automatonstate"

// TopologicalSort returns states in a valid topological order (every arc
// points from an earlier state to a later one). It runs DFS from every
// state in all (so disconnected components are all covered) and reverses
// the post-order, the standard construction. It returns ErrCycleDetected
// if any back edge is found.
func TopologicalSort(all []automatonstate.State, next Neighbors) ([]automatonstate.State, error) {
	res := DFS(all, next)
	if res.HasCycle {
		return nil, ErrCycleDetected
	}

	order := make([]automatonstate.State, len(res.PostOrder))
	for i, s := range res.PostOrder {
		order[len(order)-1-i] = s
	}

	return order, nil
}

// Acyclic reports whether the graph described by all/next has no cycle.
func Acyclic(all []automatonstate.State, next Neighbors) bool {
	return !DFS(all, next).HasCycle
}
