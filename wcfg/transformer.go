package wcfg

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
	"github.com/arnouk/ratalg/wfsa"
)

// Transformer holds the fresh-nonterminal counter shared by every
// transformation that introduces new nonterminals (fold, binarize,
// separate-terminals). A zero-value Transformer is usable.
type Transformer struct {
	counter int
}

func (tr *Transformer) genNT() NT {
	tr.counter++
	return NT(fmt.Sprintf("@%d", tr.counter))
}

// NullaryRemoveMode selects how NullaryRemove handles the restored start
// nullary production S -> ε.
type NullaryRemoveMode int

const (
	// NullaryAlwaysRestore always appends S -> ε weighted by the nullary
	// sub-grammar's treesum at the start symbol, zero weight included.
	NullaryAlwaysRestore NullaryRemoveMode = iota
	// NullaryConditionalRestore omits the restored production when the
	// start symbol's nullary treesum is Zero (the original grammar could
	// not derive ε from its start symbol at all).
	NullaryConditionalRestore
)

// NullaryRemoveOptions configures NullaryRemove.
type NullaryRemoveOptions struct {
	Mode NullaryRemoveMode
}

// DefaultNullaryRemoveOptions returns NullaryAlwaysRestore.
func DefaultNullaryRemoveOptions() NullaryRemoveOptions {
	return NullaryRemoveOptions{Mode: NullaryAlwaysRestore}
}

// NullaryRemoveOption is a functional option for NullaryRemove.
type NullaryRemoveOption func(*NullaryRemoveOptions)

// WithNullaryRemoveMode overrides NullaryRemove's start-restoration mode.
func WithNullaryRemoveMode(m NullaryRemoveMode) NullaryRemoveOption {
	return func(o *NullaryRemoveOptions) { o.Mode = m }
}

// NullaryRemove eliminates every ε-producing nonterminal from g, assuming
// every production body has length 1 or 2 (a pre-binarized grammar). For
// every binary production X -> Y Z, w it emits the original plus X -> Y, w
// ⊗ T₀(Z) and X -> Z, w ⊗ T₀(Y), where T₀ is the treesum of the "nullary
// sub-grammar" (only the binary productions and the bare ε productions).
// Preterminal productions X -> a are kept as-is; X -> ε productions are
// dropped except a single restored start production S -> ε, governed by
// opts.
func NullaryRemove[T semiring.Semiring[T]](g *Grammar[T], opts ...NullaryRemoveOption) (*Grammar[T], error) {
	o := DefaultNullaryRemoveOptions()
	for _, fn := range opts {
		fn(&o)
	}

	for _, p := range g.Productions() {
		if len(p.Body) != 1 && len(p.Body) != 2 {
			return nil, fmt.Errorf("wcfg: nullaryremove: production %s: %w", p, ErrBadArity)
		}
	}

	cfgNull := g.Spawn()
	for _, p := range g.Productions() {
		if len(p.Body) == 2 || (len(p.Body) == 1 && p.Body[0].IsEpsilon()) {
			cfgNull.Add(p.Weight, p.Head, p.Body...)
		}
	}

	tsNull, err := Treesum(cfgNull)
	if err != nil {
		return nil, fmt.Errorf("wcfg: nullaryremove: %w", err)
	}

	cfgNew := g.Spawn()
	for _, p := range g.Productions() {
		if len(p.Body) == 2 {
			y, z := p.Body[0].NT(), p.Body[1].NT()
			cfgNew.Add(p.Weight.Mul(tsNull[z]), p.Head, NTElem(y))
			cfgNew.Add(p.Weight.Mul(tsNull[y]), p.Head, NTElem(z))
			cfgNew.Add(p.Weight, p.Head, NTElem(y), NTElem(z))
			continue
		}
		if !p.Body[0].IsEpsilon() {
			cfgNew.Add(p.Weight, p.Head, p.Body[0])
		}
	}

	var z T
	switch o.Mode {
	case NullaryConditionalRestore:
		if !tsNull[g.Start].Equal(z.Zero()) {
			cfgNew.Add(tsNull[g.Start], g.Start, TermElem(symbol.Eps))
		}
	default:
		cfgNew.Add(tsNull[g.Start], g.Start, TermElem(symbol.Eps))
	}

	return cfgNew, nil
}

// UnaryRemove eliminates every unary production X -> Y, w from g. It
// computes W, the all-pairs Lehmann closure of g.UnaryFSA (so W[Y][X] is
// the total weight of rewriting an X-slot as a Y, across any number of
// chained unary productions, zero-length included so W[X][X] is at least
// One). For every production whose body has more than one symbol, it
// enumerates every way of replacing each nonterminal occurrence A_i in
// the body with some nonterminal B_i, emitting the rewritten production
// at weight w ⊗ ∏_i W[B_i][A_i] whenever that is nonzero (the identity
// substitution reproduces the original production since W[X][X] includes
// the zero-length path; terminal occurrences pass through untouched).
// Preterminal productions are kept unchanged; unary productions are
// dropped, their effect now folded into every other production's
// substitutions.
func UnaryRemove[T semiring.Semiring[T]](g *Grammar[T]) (*Grammar[T], error) {
	fsa := g.UnaryFSA()
	nts := g.Nonterminals()
	ntStates := make([]automatonstate.State, len(nts))
	for i, n := range nts {
		ntStates[i] = ntState(n)
	}

	arc := func(p, q automatonstate.State) T {
		var z T
		total := z.Zero()
		for _, a := range fsa.Arcs(p, false) {
			if a.To == q {
				total = total.Add(a.Weight)
			}
		}
		return total
	}
	closure, err := wfsa.LehmannClosure[T](ntStates, arc, true)
	if err != nil {
		return nil, fmt.Errorf("wcfg: unaryremove: %w", err)
	}

	w := func(y, x NT) T { return closure[ntState(y)][ntState(x)] }

	var z T
	cfgNew := g.Spawn()
	for _, p := range g.Productions() {
		switch {
		case len(p.Body) > 1:
			var ntIdx []int
			for i, e := range p.Body {
				if e.IsNonterminal() {
					ntIdx = append(ntIdx, i)
				}
			}

			// Odometer over every |ntIdx|-tuple of replacement
			// nonterminals; a body with no nonterminal slots runs the
			// loop once and reproduces the production verbatim.
			choice := make([]int, len(ntIdx))
			for {
				wNew := p.Weight
				for k, c := range choice {
					wNew = wNew.Mul(w(nts[c], p.Body[ntIdx[k]].NT()))
				}
				if !wNew.Equal(z.Zero()) {
					body := append(Body(nil), p.Body...)
					for k, c := range choice {
						body[ntIdx[k]] = NTElem(nts[c])
					}
					cfgNew.Add(wNew, p.Head, body...)
				}

				k := len(choice) - 1
				for ; k >= 0; k-- {
					choice[k]++
					if choice[k] < len(nts) {
						break
					}
					choice[k] = 0
				}
				if k < 0 {
					break
				}
			}
		case p.Body[0].IsNonterminal():
			// unary production: discarded, its contribution already folded
			// into every other production's substitutions above via W.
		default:
			cfgNew.Add(p.Weight, p.Head, p.Body[0])
		}
	}

	return cfgNew, nil
}
