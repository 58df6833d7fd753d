// Package wfsa implements weighted finite-state automata and transducers
// over an arbitrary semiring: construction, the rational operations
// (union, concatenation, Kleene closure), on-the-fly intersection with an
// epsilon filter, weighted determinization, partition-refinement minimization,
// weight pushing, and epsilon removal.
//
// What:
//
//   - WFSA[T]: states, weighted/labeled arcs, sparse initial/final weight
//     vectors; AddArc/SetArc, AddInitial/SetInitial, AddFinal/SetFinal,
//     Freeze, Arcs/InArcs, Alphabet.
//   - Structural queries: Acyclic, Toposort, SCC, Accessible, Coaccessible,
//     Trim, Reverse, Deterministic, Pushed, Accept, String (a plain ASCII
//     dump).
//   - Rational operations: Union, Concatenate, KleeneClosure.
//   - Intersect / CoaccessibleIntersection: on-the-fly weighted product
//     with Mohri's 3-state epsilon filter.
//   - Determinize: weighted subset construction (requires
//     semiring.Invertible for residual normalization).
//   - Minimize: partition refinement for deterministic, input-complete
//     automata.
//   - Push / PushWithPotential / BackwardPotential: weight pushing via a
//     backward Lehmann closure.
//   - EpsilonRemoval: epsilon-free equivalent via the epsilon subgraph's
//     closure.
//   - WFST, TopCompose, BottomCompose: transducers, composed without an
//     epsilon filter (see TopCompose's doc comment for why).
//
// Why:
//
//   - Keeping every algorithm parameterized on T semiring.Semiring[T], with
//     Starable/Invertible/Ordered checked via runtime type assertion where
//     an algorithm needs one, lets a single implementation serve Boolean
//     reachability, probabilistic scoring, and shortest-distance queries
//     without three parallel automaton types.
//
// Errors:
//
//   - ErrFrozen            mutating a frozen automaton
//   - ErrStateNotFound     referencing an absent state
//   - ErrNotAcyclic        Toposort on a cyclic automaton
//   - ErrNotDeterministic  Minimize on a non-deterministic automaton
//   - ErrNotInputComplete  Minimize on an input-incomplete automaton
//   - ErrNoInverse         a residual or potential has no inverse
//   - ErrNotSupported      an operation deliberately left unimplemented
//   - ErrNotPushed         Push's post-condition check failed
package wfsa
