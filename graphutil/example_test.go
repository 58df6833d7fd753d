package graphutil_test

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/graphutil"
)

// ExampleTopologicalSort demonstrates sorting a small DAG a -> b -> c.
func ExampleTopologicalSort() {
	a := automatonstate.New("a")
	b := automatonstate.New("b")
	c := automatonstate.New("c")

	adj := map[automatonstate.State][]automatonstate.State{
		a: {b},
		b: {c},
		c: {},
	}
	next := func(s automatonstate.State) []automatonstate.State { return adj[s] }

	order, err := graphutil.TopologicalSort([]automatonstate.State{a, b, c}, next)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range order {
		fmt.Println(s.String())
	}

	// Output:
	// a
	// b
	// c
}

// ExampleDFS demonstrates back-edge detection on a <-> b.
func ExampleDFS() {
	a := automatonstate.New("a")
	b := automatonstate.New("b")

	adj := map[automatonstate.State][]automatonstate.State{
		a: {b},
		b: {a},
	}
	next := func(s automatonstate.State) []automatonstate.State { return adj[s] }

	res := graphutil.DFS([]automatonstate.State{a}, next)
	fmt.Println(res.HasCycle)

	// Output:
	// true
}
