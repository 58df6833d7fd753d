package graphutil

import (
	"sort"

	"github.com/arnouk/ratalg/automatonstate"
)

// SCC computes strongly connected components with Kosaraju's algorithm and
// returns them in topologically sorted (condensation) order: if component
// A has an arc to component B, A appears before B in the result. Callers
// that need the reverse schedule (pathsum's SCC-decomposed Lehmann, which
// must relax components in reverse topological order for backward
// propagation) iterate the returned slice backwards.
//
// forward and backward must be adjacency functions for the same graph in
// opposite directions; the caller is responsible for keeping them
// consistent (wfsa derives backward directly from its reverse arc index).
func SCC(all []automatonstate.State, forward, backward Neighbors) [][]automatonstate.State {
	finishOrder := DFS(all, forward).PostOrder

	// Second pass: DFS the reverse graph in decreasing finish-time order;
	// each tree produced is one strongly connected component.
	compOf := make(map[automatonstate.State]int)
	var components [][]automatonstate.State
	visited := make(map[automatonstate.State]bool)

	// revVisit collects one component via an explicit stack rather than
	// recursion, so it cannot stack-overflow on a large automaton; the
	// order states are appended in doesn't matter, only component
	// membership does.
	revVisit := func(root automatonstate.State, comp int, acc *[]automatonstate.State) {
		visited[root] = true
		compOf[root] = comp
		*acc = append(*acc, root)
		stack := []automatonstate.State{root}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, t := range backward(s) {
				if !visited[t] {
					visited[t] = true
					compOf[t] = comp
					*acc = append(*acc, t)
					stack = append(stack, t)
				}
			}
		}
	}

	for i := len(finishOrder) - 1; i >= 0; i-- {
		s := finishOrder[i]
		if visited[s] {
			continue
		}
		var acc []automatonstate.State
		revVisit(s, len(components), &acc)
		components = append(components, acc)
	}

	// Build the condensation graph and its in-degrees, then run Kahn's
	// algorithm to obtain components in topological order.
	adj := make([]map[int]bool, len(components))
	indeg := make([]int, len(components))
	for i := range adj {
		adj[i] = make(map[int]bool)
	}

	for _, s := range all {
		for _, t := range forward(s) {
			cs, ct := compOf[s], compOf[t]
			if cs != ct && !adj[cs][ct] {
				adj[cs][ct] = true
				indeg[ct]++
			}
		}
	}

	queue := make([]int, 0, len(components))
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}

	ordered := make([]int, 0, len(components))
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		ordered = append(ordered, c)

		nexts := make([]int, 0, len(adj[c]))
		for next := range adj[c] {
			nexts = append(nexts, next)
		}
		sort.Ints(nexts)
		for _, next := range nexts {
			indeg[next]--
			if indeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	out := make([][]automatonstate.State, 0, len(components))
	for _, c := range ordered {
		out = append(out, components[c])
	}

	return out
}
