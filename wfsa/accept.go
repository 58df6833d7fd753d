package wfsa

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// Accept computes the total weight of every path that spells word exactly,
// summed over all such paths (epsilon moves may appear between letters).
// It is built by intersecting f with a straight-line acceptor for word and
// summing the product automaton's path weights. The product is acyclic
// whenever f has no epsilon cycle (every non-epsilon arc strictly advances
// the acceptor's position), in which case a single forward topological
// relaxation suffices; an epsilon cycle in f makes the product cyclic, and
// the sum falls back to Lehmann's closure (requiring a Starable weight,
// Zero otherwise). Both sums live locally in this package rather than
// reaching into pathsum, which imports wfsa and so cannot be imported
// back without a cycle.
func (f *WFSA[T]) Accept(word []symbol.Sym) T {
	line := linearAcceptor[T](word)
	product := Intersect(f, line)
	if product.Acyclic() {
		return forwardAcyclicSum(product)
	}
	return closureSum(product)
}

// closureSum computes Σ_{p,q} λ(p) ⊗ W*[p,q] ⊗ ρ(q) over the all-pairs
// closure, the general-shape counterpart of forwardAcyclicSum. Zero is
// returned when the weight type cannot support the closure.
func closureSum[T semiring.Semiring[T]](f *WFSA[T]) T {
	var zero T
	total := zero.Zero()

	states := f.States()
	arc := func(p, q automatonstate.State) T {
		t := zero.Zero()
		for _, a := range f.out[p] {
			if a.To == q {
				t = t.Add(a.Weight)
			}
		}
		return t
	}
	w, err := LehmannClosure[T](states, arc, true)
	if err != nil {
		return total
	}

	for _, ip := range f.Initial() {
		row := w[ip.State]
		for _, fq := range f.Final() {
			total = total.Add(ip.Weight.Mul(row[fq.State]).Mul(fq.Weight))
		}
	}
	return total
}

// linearAcceptor builds the automaton accepting exactly word, weight One
// throughout: states 0..len(word), arc i -(word[i])-> i+1.
func linearAcceptor[T semiring.Semiring[T]](word []symbol.Sym) *WFSA[T] {
	a := New[T]()
	one := a.one()
	n := len(word)
	states := make([]automatonstate.State, n+1)
	for i := 0; i <= n; i++ {
		states[i] = automatonstate.New(i)
	}
	_ = a.SetInitial(states[0], one)
	_ = a.SetFinal(states[n], one)
	for i, sym := range word {
		_ = a.AddArc(states[i], states[i+1], sym, one)
	}
	return a
}

// forwardAcyclicSum computes, for an acyclic automaton, the total weight
// reaching each final state from an initial state and returns the grand
// total. It is a minimal topological relaxation, the same shape as
// pathsum's Viterbi strategy, duplicated here deliberately small to avoid
// a wfsa<->pathsum import cycle.
func forwardAcyclicSum[T semiring.Semiring[T]](f *WFSA[T]) T {
	var zero T
	total := zero.Zero()

	order, err := f.Toposort()
	if err != nil {
		// Callers check Acyclic first; a cycle here is unreachable.
		return total
	}

	alpha := make(map[automatonstate.State]T, len(order))
	for _, s := range order {
		alpha[s] = zero.Zero()
	}
	for _, ws := range f.Initial() {
		alpha[ws.State] = alpha[ws.State].Add(ws.Weight)
	}

	for _, s := range order {
		cur := alpha[s]
		if cur.Equal(zero.Zero()) {
			continue
		}
		for _, arc := range f.out[s] {
			alpha[arc.To] = alpha[arc.To].Add(cur.Mul(arc.Weight))
		}
	}

	for _, ws := range f.Final() {
		total = total.Add(alpha[ws.State].Mul(ws.Weight))
	}
	return total
}
