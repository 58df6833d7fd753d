package semiring

import "errors"

// Sentinel errors returned by the Star/Inv refinements.
var (
	// ErrDivergentClosure indicates Star was invoked on an element outside
	// the ring's closed subset (e.g. Real(2.0).Star(), or a negative
	// Tropical weight).
	ErrDivergentClosure = errors.New("semiring: star does not converge for this element")

	// ErrNotInvertible indicates Inv was invoked on a non-invertible
	// element, most commonly the additive identity.
	ErrNotInvertible = errors.New("semiring: element has no multiplicative inverse")
)
