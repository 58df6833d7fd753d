package wcfg_test

import (
	"fmt"

	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
	"github.com/arnouk/ratalg/wcfg"
)

// ExampleTreesum builds S -> a S, 0.5 | S -> a, 0.5 (a coin-flip geometric
// grammar) and sums the weight of every derivation tree rooted at S.
func ExampleTreesum() {
	g := wcfg.New[semiring.Real](wcfg.S)
	a := symbol.New("a")

	g.Add(0.5, wcfg.S, wcfg.TermElem(a), wcfg.NTElem(wcfg.S))
	g.Add(0.5, wcfg.S, wcfg.TermElem(a))

	t, err := wcfg.Treesum(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t[wcfg.S])

	// Output:
	// 1
}
