package graphutil

import "github.com/arnouk/ratalg/automatonstate"

// dfsWalker holds the mutable bookkeeping of one traversal.
type dfsWalker struct {
	next  Neighbors
	color map[automatonstate.State]vertexState
	res   *DFSResult
}

// DFS runs a depth-first traversal starting from each state in roots, in
// order, skipping states already visited by an earlier root so the result
// covers the whole reachable forest exactly once.
func DFS(roots []automatonstate.State, next Neighbors) *DFSResult {
	res := &DFSResult{
		PostOrder: make([]automatonstate.State, 0, len(roots)),
		Parent:    make(map[automatonstate.State]automatonstate.State),
		Visited:   make(map[automatonstate.State]bool),
	}
	w := &dfsWalker{
		next:  next,
		color: make(map[automatonstate.State]vertexState),
		res:   res,
	}

	for _, root := range roots {
		if w.color[root] == white {
			w.visit(root)
		}
	}

	return res
}

// dfsFrame is one explicit call-stack frame standing in for a recursive
// visit(s) activation: idx tracks how far through neighbors we've gotten,
// so the frame can be resumed instead of re-entered.
type dfsFrame struct {
	state     automatonstate.State
	neighbors []automatonstate.State
	idx       int
}

// visit explores root and its descendants using an explicit stack rather
// than function recursion, so traversal depth is bounded by heap space
// instead of the goroutine stack. It colors a state Gray the moment it is
// pushed and Black only once every neighbor has been processed (the
// iterative equivalent of "on entry" / "on exit" in the recursive
// formulation), recording a cycle if any outgoing arc lands on a Gray
// state (an ancestor still on the stack).
func (w *dfsWalker) visit(root automatonstate.State) {
	push := func(stack []*dfsFrame, s automatonstate.State) []*dfsFrame {
		w.color[s] = gray
		w.res.Visited[s] = true
		return append(stack, &dfsFrame{state: s, neighbors: w.next(s)})
	}

	stack := push(nil, root)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx >= len(top.neighbors) {
			w.color[top.state] = black
			w.res.PostOrder = append(w.res.PostOrder, top.state)
			stack = stack[:len(stack)-1]
			continue
		}

		t := top.neighbors[top.idx]
		top.idx++
		switch w.color[t] {
		case white:
			w.res.Parent[t] = top.state
			stack = push(stack, t)
		case gray:
			w.res.HasCycle = true
		case black:
			// already fully explored, nothing to do
		}
	}
}

// Reachable returns every state reachable from roots, including the roots
// themselves.
func Reachable(roots []automatonstate.State, next Neighbors) []automatonstate.State {
	res := DFS(roots, next)
	out := make([]automatonstate.State, 0, len(res.Visited))
	for _, s := range res.PostOrder {
		out = append(out, s)
	}

	return out
}
