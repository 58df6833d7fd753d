package graphutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/graphutil"
)

func st(id string) automatonstate.State { return automatonstate.New(id) }

// chain builds adjacency for 0 -> 1 -> 2 -> ... -> n-1.
func chain(n int) (all []automatonstate.State, next graphutil.Neighbors) {
	states := make([]automatonstate.State, n)
	for i := 0; i < n; i++ {
		states[i] = st(string(rune('A' + i)))
	}
	adj := make(map[automatonstate.State][]automatonstate.State)
	for i := 0; i < n-1; i++ {
		adj[states[i]] = []automatonstate.State{states[i+1]}
	}
	return states, func(s automatonstate.State) []automatonstate.State { return adj[s] }
}

func TestTopologicalSortOnChain(t *testing.T) {
	all, next := chain(4)
	order, err := graphutil.TopologicalSort(all, next)
	require.NoError(t, err)
	assert.Equal(t, all, order)
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	a, b, c := st("a"), st("b"), st("c")
	adj := map[automatonstate.State][]automatonstate.State{
		a: {b}, b: {c}, c: {a},
	}
	next := func(s automatonstate.State) []automatonstate.State { return adj[s] }
	_, err := graphutil.TopologicalSort([]automatonstate.State{a, b, c}, next)
	assert.ErrorIs(t, err, graphutil.ErrCycleDetected)
}

func TestSCCOnTwoComponentGraph(t *testing.T) {
	// a <-> b form a cycle; b -> c is a bridge into a singleton component.
	a, b, c := st("a"), st("b"), st("c")
	fwd := map[automatonstate.State][]automatonstate.State{
		a: {b}, b: {a, c},
	}
	bwd := map[automatonstate.State][]automatonstate.State{
		b: {a}, a: {b}, c: {b},
	}
	forward := func(s automatonstate.State) []automatonstate.State { return fwd[s] }
	backward := func(s automatonstate.State) []automatonstate.State { return bwd[s] }

	comps := graphutil.SCC([]automatonstate.State{a, b, c}, forward, backward)
	require.Len(t, comps, 2)

	// {a,b} must precede {c} since the bridge goes b -> c.
	assert.ElementsMatch(t, []automatonstate.State{a, b}, comps[0])
	assert.ElementsMatch(t, []automatonstate.State{c}, comps[1])
}

func TestReachable(t *testing.T) {
	all, next := chain(5)
	got := graphutil.Reachable([]automatonstate.State{all[0]}, next)
	assert.ElementsMatch(t, all, got)
}
