package wcfg

import "github.com/arnouk/ratalg/symbol"

// Elem is one slot in a production's body: either a nonterminal or a
// terminal symbol (symbol.Eps included, representing a nullary body).
type Elem struct {
	nt      NT
	term    symbol.Sym
	nonTerm bool
}

// NTElem wraps a nonterminal as a body element.
func NTElem(n NT) Elem { return Elem{nt: n, nonTerm: true} }

// TermElem wraps a terminal symbol (or symbol.Eps) as a body element.
func TermElem(s symbol.Sym) Elem { return Elem{term: s} }

// IsNonterminal reports whether e holds a nonterminal.
func (e Elem) IsNonterminal() bool { return e.nonTerm }

// NT returns e's nonterminal. Only meaningful when IsNonterminal is true.
func (e Elem) NT() NT { return e.nt }

// Term returns e's terminal symbol. Only meaningful when IsNonterminal is
// false.
func (e Elem) Term() symbol.Sym { return e.term }

// IsEpsilon reports whether e is the terminal epsilon marker, the sole
// body of a nullary production.
func (e Elem) IsEpsilon() bool { return !e.nonTerm && e.term.IsPlainEpsilon() }

func (e Elem) String() string {
	if e.nonTerm {
		return string(e.nt)
	}
	return e.term.String()
}

// Body is the right-hand side of a production, a short sequence over
// nonterminals and terminals (including the nullary epsilon body).
type Body []Elem

func (b Body) String() string {
	out := ""
	for i, e := range b {
		if i > 0 {
			out += " "
		}
		out += e.String()
	}
	return out
}
