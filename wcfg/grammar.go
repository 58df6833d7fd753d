package wcfg

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
	"github.com/arnouk/ratalg/wfsa"
)

// Production is a single weighted rewrite rule X -> α, w.
type Production[T semiring.Semiring[T]] struct {
	Head   NT
	Body   Body
	Weight T
}

func (p Production[T]) String() string {
	return string(p.Head) + " -> " + p.Body.String()
}

// Grammar is a weighted context-free grammar ⟨Σ, V, S, P⟩ over R: V is the
// nonterminal set (always containing Start), P is a multiset of weighted
// productions whose bodies range over V ∪ Σ ∪ {ε}. Productions are kept in
// a genuine multiset (Add always appends, never merges two productions
// with the same head and body), matching the grammar's defining algebra:
// Treesum sums over every production headed at a nonterminal, so two
// identical productions must each contribute their own term.
type Grammar[T semiring.Semiring[T]] struct {
	Start NT

	nts    map[NT]struct{}
	ntOrder []NT

	terms map[symbol.Sym]struct{}

	prods []Production[T]
}

// New returns an empty grammar with the given start nonterminal.
func New[T semiring.Semiring[T]](start NT) *Grammar[T] {
	g := &Grammar[T]{
		Start: start,
		nts:   make(map[NT]struct{}),
		terms: make(map[symbol.Sym]struct{}),
	}
	g.registerNT(start)
	return g
}

// Spawn returns a fresh grammar with the same start symbol and nonterminal
// set as g but no productions, the starting point for every CFG
// transformation (nullaryremove, unaryremove, fold, ...) since each builds
// its output grammar by re-adding productions to a clean multiset.
func (g *Grammar[T]) Spawn() *Grammar[T] {
	out := New[T](g.Start)
	for _, n := range g.ntOrder {
		out.registerNT(n)
	}
	return out
}

func (g *Grammar[T]) registerNT(n NT) {
	if _, ok := g.nts[n]; ok {
		return
	}
	g.nts[n] = struct{}{}
	g.ntOrder = append(g.ntOrder, n)
}

// Add appends a new production Head -> body, weight w to the grammar,
// registering Head and any nonterminal/terminal appearing in body.
func (g *Grammar[T]) Add(w T, head NT, body ...Elem) {
	g.registerNT(head)
	for _, e := range body {
		if e.IsNonterminal() {
			g.registerNT(e.NT())
		} else if !e.term.IsPlainEpsilon() {
			g.terms[e.term] = struct{}{}
		}
	}
	g.prods = append(g.prods, Production[T]{Head: head, Body: append(Body(nil), body...), Weight: w})
}

// Productions returns every production in insertion order.
func (g *Grammar[T]) Productions() []Production[T] {
	out := make([]Production[T], len(g.prods))
	copy(out, g.prods)
	return out
}

// ProductionsFor returns every production headed at n, in insertion order.
func (g *Grammar[T]) ProductionsFor(n NT) []Production[T] {
	out := make([]Production[T], 0)
	for _, p := range g.prods {
		if p.Head == n {
			out = append(out, p)
		}
	}
	return out
}

// Nonterminals returns every nonterminal in first-registration order,
// Start always first.
func (g *Grammar[T]) Nonterminals() []NT {
	out := make([]NT, len(g.ntOrder))
	copy(out, g.ntOrder)
	return out
}

// HasNonterminal reports whether n is part of this grammar's nonterminal
// set.
func (g *Grammar[T]) HasNonterminal(n NT) bool {
	_, ok := g.nts[n]
	return ok
}

func ntState(n NT) automatonstate.State { return automatonstate.Labeled(n, string(n)) }

// UnaryFSA builds the derived automaton used by unary elimination: a state
// for every nonterminal that heads or forms the body of a unary production,
// with an arc Y -> X weighted w for every unary production X -> Y, w.
// Nonterminals with no unary production get no state, and there is no sink
// state. (The direction encodes "Y occurs where X is
// expected", so that Lehmann's closure computed over this automaton gives,
// for every pair (Y, X), the total weight of rewriting an X-slot as a Y).
// No initial or final weights are set: LehmannClosure only reads arc
// weights across the given state list.
func (g *Grammar[T]) UnaryFSA() *wfsa.WFSA[T] {
	f := wfsa.New[T]()
	for _, p := range g.prods {
		if len(p.Body) == 1 && p.Body[0].IsNonterminal() {
			y := p.Body[0].NT()
			_ = f.AddArc(ntState(y), ntState(p.Head), symbol.Eps, p.Weight)
		}
	}
	return f
}
