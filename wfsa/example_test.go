package wfsa_test

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
	"github.com/arnouk/ratalg/wfsa"
)

// ExampleWFSA_Accept builds a two-state Tropical automaton accepting "ab"
// and reports the shortest-path weight of that word.
func ExampleWFSA_Accept() {
	f := wfsa.New[semiring.Tropical]()
	q0 := automatonstate.New("q0")
	q1 := automatonstate.New("q1")
	q2 := automatonstate.New("q2")

	_ = f.SetInitial(q0, 0)
	_ = f.AddArc(q0, q1, symbol.New("a"), 1)
	_ = f.AddArc(q1, q2, symbol.New("b"), 2)
	_ = f.SetFinal(q2, 0)

	fmt.Println(f.Accept([]symbol.Sym{symbol.New("a"), symbol.New("b")}))

	// Output:
	// 3
}
