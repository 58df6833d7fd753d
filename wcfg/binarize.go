package wcfg

import "github.com/arnouk/ratalg/semiring"

// Binarize rewrites every production whose body has more than two symbols
// into a left-folded chain of fresh binary productions: X -> A B C D, w
// becomes @1 -> A B, one; @2 -> @1 C, one; X -> @2 D, w. Productions whose
// body already has length 1 or 2 pass through unchanged.
func Binarize[T semiring.Semiring[T]](tr *Transformer, g *Grammar[T]) *Grammar[T] {
	var z T
	one := z.One()

	ncfg := g.Spawn()
	for _, p := range g.Productions() {
		if len(p.Body) <= 2 {
			ncfg.Add(p.Weight, p.Head, p.Body...)
			continue
		}

		head := tr.genNT()
		ncfg.Add(one, head, p.Body[0], p.Body[1])
		for i := 2; i < len(p.Body)-1; i++ {
			next := tr.genNT()
			ncfg.Add(one, next, NTElem(head), p.Body[i])
			head = next
		}
		ncfg.Add(p.Weight, p.Head, NTElem(head), p.Body[len(p.Body)-1])
	}
	return ncfg
}

// SeparateTerminals rewrites every production whose body has more than one
// symbol so that terminals never appear alongside another symbol: each
// terminal occurring inside a multi-symbol body is replaced by a fresh
// nonterminal that solely derives it (one fresh nonterminal per distinct
// terminal, reused across occurrences). Productions with a single-symbol
// body (preterminals, and the bare ε production) pass through unchanged.
func SeparateTerminals[T semiring.Semiring[T]](tr *Transformer, g *Grammar[T]) *Grammar[T] {
	var z T
	one := z.One()

	ncfg := g.Spawn()
	termHeads := make(map[string]NT)
	for _, p := range g.Productions() {
		if len(p.Body) == 1 {
			ncfg.Add(p.Weight, p.Head, p.Body...)
			continue
		}

		newBody := make(Body, len(p.Body))
		for i, e := range p.Body {
			if e.IsNonterminal() {
				newBody[i] = e
				continue
			}
			key := e.Term().String()
			h, ok := termHeads[key]
			if !ok {
				h = tr.genNT()
				termHeads[key] = h
				ncfg.Add(one, h, e)
			}
			newBody[i] = NTElem(h)
		}
		ncfg.Add(p.Weight, p.Head, newBody...)
	}
	return ncfg
}
