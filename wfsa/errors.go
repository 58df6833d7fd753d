package wfsa

import "errors"

// Sentinel errors returned by the wfsa package's constructors and
// algorithms.
var (
	// ErrFrozen indicates a mutating method was called on a frozen WFSA.
	ErrFrozen = errors.New("wfsa: automaton is frozen")

	// ErrStateNotFound indicates an operation referenced a state absent
	// from the automaton.
	ErrStateNotFound = errors.New("wfsa: state not found")

	// ErrNotAcyclic indicates an algorithm that requires an acyclic
	// automaton (Toposort) was given one with a cycle.
	ErrNotAcyclic = errors.New("wfsa: automaton is not acyclic")

	// ErrNotDeterministic indicates minimization was called on a non-
	// deterministic automaton.
	ErrNotDeterministic = errors.New("wfsa: automaton is not deterministic")

	// ErrNotInputComplete indicates minimization was called on an
	// automaton missing a transition for some (state, symbol) pair.
	ErrNotInputComplete = errors.New("wfsa: automaton is not input-complete")

	// ErrNoInverse indicates determinization needed to normalize a
	// residual weight by its inverse but the weight type does not
	// implement semiring.Invertible, or the specific element has none.
	ErrNoInverse = errors.New("wfsa: weight has no multiplicative inverse, cannot normalize residuals")

	// ErrNotSupported marks operations declared but deliberately left
	// unimplemented (Equivalent, Difference).
	ErrNotSupported = errors.New("wfsa: operation not supported")

	// ErrNotPushed indicates a post-condition check after weight pushing
	// failed (a state's outgoing weight plus final weight does not sum
	// to one), which would indicate a bug in the pushing implementation
	// rather than caller error.
	ErrNotPushed = errors.New("wfsa: weight pushing post-condition failed")
)
