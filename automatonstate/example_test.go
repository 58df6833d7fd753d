package automatonstate_test

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
)

// ExampleState demonstrates that State equality follows ID, independent of
// the optional Label, while display prefers the Label when one is set.
func ExampleState() {
	a := automatonstate.Labeled("q0", "start")
	b := automatonstate.New("q0")

	fmt.Println(a.String())
	fmt.Println(b.String())
	fmt.Println(a.ID == b.ID)

	// Output:
	// start
	// q0
	// true
}

// ExamplePair demonstrates the untagged two-component composite identity.
func ExamplePair() {
	p := automatonstate.New("p")
	q := automatonstate.New("q")

	pq := automatonstate.Pair(p, q)
	fmt.Println(pq.String())

	// Output:
	// (p, q)
}
