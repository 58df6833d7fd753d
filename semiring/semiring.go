// Package semiring defines the algebraic trait every weighted automaton and
// grammar in this module is parameterized over, plus the concrete rings
// used throughout: Boolean, Real, Tropical, StringSemiring, Derivation, and
// the Product combinator.
//
// A Semiring[T] is a commutative monoid under Add with identity Zero, and a
// monoid under Mul with identity One, where Mul distributes over Add and
// Zero annihilates under Mul. Two boolean flags are decidable per concrete
// ring and are exposed as plain methods rather than computed at runtime:
// Idempotent (x ⊕ x = x) and Superior (a total natural order exists and
// a ⊕ b ∈ {a, b} — required by Dijkstra's algorithm).
//
// Star, Inv, and Less are not part of the base trait: most algorithms need
// only Add/Mul/Zero/One, and boxing every ring into a fatter interface just
// to satisfy the few algorithms that need a closure operator or an inverse
// would be wasteful. Instead Starable, Invertible, and Ordered are
// refinements that the relevant algorithms (Lehmann's closure; pushing,
// Johnson's algorithm, determinization; Dijkstra) type-assert for and
// reject with a precondition error when absent.
package semiring

// Semiring is the algebraic trait every weight type in this module
// satisfies. T is the concrete ring (Boolean, Real, Tropical, ...); methods
// never depend on the receiver's runtime value except Add/Mul/Equal, which
// combine the receiver with another value of the same ring.
type Semiring[T any] interface {
	// Zero is the additive identity: a ⊕ zero = a.
	Zero() T
	// One is the multiplicative identity: a ⊗ one = a.
	One() T
	// Add is ⊕.
	Add(other T) T
	// Mul is ⊗.
	Mul(other T) T
	// Equal reports semiring-element equality.
	Equal(other T) bool
	// Idempotent reports whether x ⊕ x = x holds for every x in this ring.
	Idempotent() bool
	// Superior reports whether a total order exists with a ⊕ b ∈ {a, b}.
	Superior() bool
}

// Starable is a closed semiring: one that supports the Kleene star
// operator, star(a) = one ⊕ a ⊕ a² ⊕ ... . Star may
// fail (return an error) on elements outside the ring's closed subset; a
// closed semiring is simply one where Star never does.
type Starable[T any] interface {
	Semiring[T]
	// Star computes one ⊕ a ⊗ star(a); it errs if a lies outside the
	// domain on which the closure converges (ErrDivergentClosure).
	Star() (T, error)
}

// Invertible exposes the multiplicative inverse required by weight
// pushing, Johnson's algorithm, and determinization's residual
// normalization.
type Invertible[T any] interface {
	Semiring[T]
	// Inv computes ~a such that a ⊗ ~a = one; it errs if a has no inverse
	// (e.g. a == Zero()).
	Inv() (T, error)
}

// Ordered exposes the total order a superior semiring guarantees, used by
// Dijkstra's priority queue to pick the next state to finalize.
type Ordered[T any] interface {
	Semiring[T]
	// Less reports whether the receiver sorts strictly before other in the
	// ring's natural order (the order under which a ⊕ b ∈ {a, b}).
	Less(other T) bool
}
