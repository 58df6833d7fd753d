// Package pathsum computes single-source and all-pairs path sums over a
// wfsa.WFSA using one of six strategies, each valid under a different
// combination of the weight semiring's classification flags.
//
// What:
//
//   - Engine[T]: wraps a *wfsa.WFSA[T]. Backward/Forward compute β(s)/α(s)
//     per state; AllPairs computes the full |Q|×|Q| matrix where the
//     strategy supports it; Pathsum computes the grand total; EdgeMarginals
//     computes the posterior weight of every arc.
//   - Strategy: Viterbi (acyclic, any semiring), BellmanFord (idempotent),
//     Dijkstra (superior, ordered), Lehmann (closed/Starable, any graph),
//     Johnson (superior, ordered, invertible; all-pairs via reweighting),
//     SCCLehmann (closed/Starable; decomposes by strongly connected
//     component before applying Lehmann locally).
//
// Why:
//
//   - Forward is computed as Backward on the automaton's Reverse(), since a
//     path along reversed arcs from s back to an original initial state is
//     exactly a path along original arcs from that initial state to s. This
//     halves the strategy implementations that would otherwise be needed,
//     Johnson excepted: its potential-seeding step is not symmetric under
//     reversal, so it is special-cased via its own all-pairs computation.
//
// Errors:
//
//   - ErrPrecondition    wraps a more specific unmet strategy precondition
//   - ErrNegativeCycle   Bellman-Ford's extra round still found an improvement
//   - ErrNotClosed       Lehmann/SCCLehmann need Starable
//   - ErrNotOrdered      Dijkstra/Johnson need semiring.Ordered
//   - ErrNotSuperior     Dijkstra/Johnson on a non-superior weight
//   - ErrNotIdempotent   Bellman-Ford on a non-idempotent weight
//   - ErrNotAcyclic      Viterbi on a cyclic automaton
//   - ErrNotSupported    AllPairs on a strategy without a natural all-pairs form
package pathsum
