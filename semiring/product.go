package semiring

import "fmt"

// Product is the pairwise combinator A × B: componentwise Add and Mul,
// identities (A.Zero, B.Zero) and (A.One, B.One). It lets a single WFSA
// carry two weight dimensions at once (e.g. Tropical × Derivation to
// recover a best path alongside its full set of tied derivations).
type Product[A Semiring[A], B Semiring[B]] struct {
	Left  A
	Right B
}

// Pair builds a Product element from its two components.
func Pair[A Semiring[A], B Semiring[B]](a A, b B) Product[A, B] {
	return Product[A, B]{Left: a, Right: b}
}

func (p Product[A, B]) Zero() Product[A, B] {
	var a A
	var b B
	return Product[A, B]{Left: a.Zero(), Right: b.Zero()}
}

func (p Product[A, B]) One() Product[A, B] {
	var a A
	var b B
	return Product[A, B]{Left: a.One(), Right: b.One()}
}

func (p Product[A, B]) Add(other Product[A, B]) Product[A, B] {
	return Product[A, B]{Left: p.Left.Add(other.Left), Right: p.Right.Add(other.Right)}
}

func (p Product[A, B]) Mul(other Product[A, B]) Product[A, B] {
	return Product[A, B]{Left: p.Left.Mul(other.Left), Right: p.Right.Mul(other.Right)}
}

func (p Product[A, B]) Equal(other Product[A, B]) bool {
	return p.Left.Equal(other.Left) && p.Right.Equal(other.Right)
}

// Idempotent and Superior hold only when both components do; a caller
// mixing e.g. Tropical × Real gets a product that is neither idempotent
// nor superior, so Bellman-Ford, Dijkstra and Johnson reject it.
func (p Product[A, B]) Idempotent() bool { return p.Left.Idempotent() && p.Right.Idempotent() }
func (p Product[A, B]) Superior() bool   { return p.Left.Superior() && p.Right.Superior() }

// ProductStar computes the componentwise star, returning
// ErrDivergentClosure when either component is not Starable. It is a free
// function rather than a method, so Product itself does not implement
// Starable and algorithms that type-assert for Starable (Lehmann's
// closure) reject a Product weight.
func ProductStar[A Semiring[A], B Semiring[B]](p Product[A, B]) (Product[A, B], error) {
	la, aok := any(p.Left).(Starable[A])
	rb, bok := any(p.Right).(Starable[B])
	if !aok || !bok {
		return p.Zero(), fmt.Errorf("product.star: %w", ErrDivergentClosure)
	}
	sl, err := la.Star()
	if err != nil {
		return p.Zero(), err
	}
	sr, err := rb.Star()
	if err != nil {
		return p.Zero(), err
	}
	return Product[A, B]{Left: sl, Right: sr}, nil
}

func (p Product[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
