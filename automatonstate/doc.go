// Package automatonstate defines the state-identity types shared by every
// automaton in this module: the opaque State, and PairState, the derived
// composite identity that the rational constructions (union, concatenation,
// Kleene closure) use for their disjoint-tagged operand copies.
//
// State equality and hashing are over identity (the ID field) only, never
// over a label; two States with the same ID are the same state even if one
// carries a display label and the other doesn't.
//
// PowerState, the derived identity determinization builds subsets from, is
// defined in the wfsa package instead of here: its identity depends on a
// residual weight
// per member state, and weights live in an arbitrary semiring, so it is
// naturally generic over the weight type. Keeping it next to the
// determinization code that is its only producer also avoids a needless
// import cycle between a generic state type and the semiring package.
package automatonstate
