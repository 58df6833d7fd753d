package wcfg

import "github.com/arnouk/ratalg/semiring"

// treesumMaxRounds bounds the fixed-point relaxation below. An acyclic
// grammar converges well within |V| rounds (each round can only resolve
// one more layer of the derivation dependency); cyclic grammars over a
// semiring whose self-recursive weights do not shrink never converge at
// all, so a generous but finite bound catches those as
// ErrTreesumDidNotConverge rather than looping forever.
const treesumMaxRounds = 200

// Treesum computes T(X), the sum over every derivation tree rooted at X of
// that tree's weight, for every nonterminal in g: T(X) = ⊕ over
// productions X -> α, w of w ⊗ ∏_i T(α_i), where T of a terminal (plain
// epsilon included) is One. On an acyclic grammar a single bottom-up pass
// would suffice; this instead relaxes every nonterminal repeatedly until
// two consecutive rounds agree under Equal, which also handles grammars
// with self-recursive nonterminals whose contribution converges.
func Treesum[T semiring.Semiring[T]](g *Grammar[T]) (map[NT]T, error) {
	var z T
	t := make(map[NT]T, len(g.ntOrder))
	for _, n := range g.ntOrder {
		t[n] = z.Zero()
	}

	for round := 0; round < treesumMaxRounds; round++ {
		next := make(map[NT]T, len(t))
		for n, v := range t {
			next[n] = v
		}
		for _, n := range g.ntOrder {
			total := z.Zero()
			for _, p := range g.ProductionsFor(n) {
				term := p.Weight
				for _, e := range p.Body {
					if e.IsNonterminal() {
						term = term.Mul(t[e.NT()])
					} else {
						term = term.Mul(z.One())
					}
				}
				total = total.Add(term)
			}
			next[n] = total
		}

		stable := true
		for _, n := range g.ntOrder {
			if !next[n].Equal(t[n]) {
				stable = false
			}
		}
		t = next
		if stable {
			return t, nil
		}
	}

	return nil, ErrTreesumDidNotConverge
}
