// Package wcfg implements weighted context-free grammars over an
// arbitrary semiring and the CFG transformer pipeline toward Chomsky
// Normal Form.
//
// What:
//
//   - Grammar[T]: nonterminals, a multiset of weighted productions
//     (Production[T]), Add/Spawn/Productions/ProductionsFor, and the
//     derived UnaryFSA used by unary elimination.
//   - Treesum: the least-fixed-point sum over every derivation tree's
//     weight, per nonterminal.
//   - Transformer: NullaryRemove, UnaryRemove, Fold, Binarize,
//     SeparateTerminals, Trim, and CNF (the top-level pipeline:
//     separate-terminals -> nullary-remove -> unary-remove -> binarize ->
//     trim).
//
// Why:
//
//   - NullaryRemove restricts production bodies to length 1 or 2 (it
//     assumes a pre-binarized grammar); UnaryRemove substitutes
//     nonterminal occurrences in bodies of any length. SeparateTerminals
//     and Binarize are what get a grammar into the pre-binarized shape in
//     the first place.
//   - UnaryRemove reuses wfsa.LehmannClosure over the derived unary FSA
//     rather than a bespoke fixed point, the same closure machinery
//     Push/EpsilonRemoval already rely on in the wfsa package.
//
// Errors:
//
//   - ErrBadArity              a production body outside length {1, 2}
//   - ErrUnknownNonterminal    an unregistered nonterminal (not returned: Add registers them)
//   - ErrTreesumDidNotConverge Treesum's relaxation did not stabilize
//   - ErrInvalidFoldInterval   Fold given an out-of-bounds or overlapping interval
//   - ErrProductionNotFound    Fold given an out-of-range production index
//   - ErrNotSupported          an operation deliberately left unimplemented
package wcfg
