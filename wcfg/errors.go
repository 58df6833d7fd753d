package wcfg

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrBadArity is returned by operations that require every production
	// body to have length 1 or 2 (NullaryRemove assumes a pre-binarized
	// grammar) when a longer body is found.
	ErrBadArity = errors.New("wcfg: production body must have length 1 or 2")

	// ErrUnknownNonterminal denotes a production referencing a nonterminal
	// outside the grammar's own nonterminal set. No function in this
	// package returns it: Grammar.Add registers every nonterminal a
	// production mentions.
	ErrUnknownNonterminal = errors.New("wcfg: unknown nonterminal")

	// ErrTreesumDidNotConverge is returned when Treesum's relaxation does
	// not stabilize within its iteration bound, a symptom of a cyclic
	// grammar over a semiring where the sum does not converge to a finite
	// fixed point (e.g. a non-idempotent weight on a self-recursive
	// nonterminal with weight at or above the ring's unit circle).
	ErrTreesumDidNotConverge = errors.New("wcfg: treesum relaxation did not converge")

	// ErrInvalidFoldInterval is returned by Fold when an index interval is
	// out of the production body's bounds, or overlaps another interval.
	ErrInvalidFoldInterval = errors.New("wcfg: invalid fold interval")

	// ErrProductionNotFound is returned by Fold when the given production
	// index is out of the grammar's range.
	ErrProductionNotFound = errors.New("wcfg: production not found in grammar")

	// ErrNotSupported marks operations declared but deliberately left
	// unimplemented.
	ErrNotSupported = errors.New("wcfg: operation not supported")
)
