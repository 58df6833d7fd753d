package symbol_test

import (
	"fmt"

	"github.com/arnouk/ratalg/symbol"
)

// ExampleSym demonstrates the distinction between an ordinary letter and
// the epsilon marker.
func ExampleSym() {
	a := symbol.New("a")

	fmt.Println(a.String(), a.IsEpsilon())
	fmt.Println(symbol.Eps.String(), symbol.Eps.IsEpsilon())
	fmt.Println(symbol.Eps.IsPlainEpsilon(), symbol.Eps1.IsPlainEpsilon())

	// Output:
	// a false
	// ε true
	// true false
}
