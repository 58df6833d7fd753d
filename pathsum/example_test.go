package pathsum_test

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/pathsum"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
	"github.com/arnouk/ratalg/wfsa"
)

// ExampleEngine_Pathsum computes the Tropical (shortest-path) total over a
// two-path automaton using Viterbi, since the automaton is acyclic.
func ExampleEngine_Pathsum() {
	f := wfsa.New[semiring.Tropical]()
	q0 := automatonstate.New("q0")
	q1 := automatonstate.New("q1")
	q2 := automatonstate.New("q2")

	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q0, q2, symbol.New("b"), 5)
	_ = f.AddArc(q1, q2, symbol.New("c"), 1)
	_ = f.SetFinal(q2, 0)

	total, err := pathsum.New[semiring.Tropical](f).Pathsum(pathsum.Viterbi)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(total)

	// Output:
	// 2
}
