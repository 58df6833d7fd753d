// Package semiring defines the weight algebra shared by wfsa, pathsum, and
// wcfg: every automaton, pathsum strategy, and grammar in this module is
// generic over a weight type satisfying Semiring[T], so the same code
// computes booleans, probabilities, shortest distances, or longest common
// output prefixes depending only on which concrete ring it is instantiated
// with.
//
// What:
//
//   - Semiring[T]: the base algebraic trait every weight type implements —
//     Zero, One, Add, Mul, Equal, plus the two classification flags
//     Idempotent and Superior that algorithms probe to decide which
//     pathsum strategy is valid.
//   - Starable[T], Invertible[T], Ordered[T]: optional refinements adding
//     Kleene star, multiplicative inverse, and a strict order, each
//     embedding Semiring[T] so a concrete ring only opts into the
//     refinements it actually supports.
//   - Boolean, Real, Tropical, StringSemiring, Derivation: the concrete
//     rings. Product[A, B] combines any two into a pairwise weight.
//
// Why:
//
//   - Keeping Star/Inv/Less out of the base trait lets wfsa, pathsum, and
//     wcfg stay parameterized over one constraint, T Semiring[T], and have
//     algorithms that need a refinement assert for it at runtime (e.g.
//     any(w).(semiring.Starable[T])) instead of stacking static generic
//     constraints that would otherwise have to be threaded through every
//     exported type in three packages.
//
// Errors:
//
//   - ErrDivergentClosure  Star invoked outside the ring's closed subset
//   - ErrNotInvertible     Inv invoked on a non-invertible element
package semiring
