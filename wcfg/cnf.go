package wcfg

import "github.com/arnouk/ratalg/semiring"

// Trim discards every nonterminal that is not both reachable from Start
// and productive (able to derive some terminal string), and every
// production that mentions a discarded nonterminal — the standard
// useless-symbol elimination.
func Trim[T semiring.Semiring[T]](g *Grammar[T]) *Grammar[T] {
	productive := make(map[NT]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions() {
			if productive[p.Head] {
				continue
			}
			ok := true
			for _, e := range p.Body {
				if e.IsNonterminal() && !productive[e.NT()] {
					ok = false
					break
				}
			}
			if ok {
				productive[p.Head] = true
				changed = true
			}
		}
	}

	reachable := map[NT]bool{g.Start: true}
	queue := []NT{g.Start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range g.ProductionsFor(n) {
			for _, e := range p.Body {
				if e.IsNonterminal() && !reachable[e.NT()] {
					reachable[e.NT()] = true
					queue = append(queue, e.NT())
				}
			}
		}
	}

	useful := func(n NT) bool { return productive[n] && reachable[n] }

	out := New[T](g.Start)
	for _, p := range g.Productions() {
		if !useful(p.Head) {
			continue
		}
		keep := true
		for _, e := range p.Body {
			if e.IsNonterminal() && !useful(e.NT()) {
				keep = false
				break
			}
		}
		if keep {
			out.Add(p.Weight, p.Head, p.Body...)
		}
	}
	return out
}

// CNF runs the full normalization pipeline: separate-terminals ->
// nullary-remove -> unary-remove -> binarize -> trim.
func CNF[T semiring.Semiring[T]](tr *Transformer, g *Grammar[T], opts ...NullaryRemoveOption) (*Grammar[T], error) {
	g1 := SeparateTerminals(tr, g)

	g2, err := NullaryRemove(g1, opts...)
	if err != nil {
		return nil, err
	}

	g3, err := UnaryRemove(g2)
	if err != nil {
		return nil, err
	}

	g4 := Binarize(tr, g3)

	return Trim(g4), nil
}
