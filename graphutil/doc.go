// Package graphutil implements the graph-theoretic primitives wfsa and
// pathsum build on: depth-first search with cycle detection, topological
// sort, and Kosaraju strongly-connected-component decomposition. Rather
// than operating on a concrete graph type, graphutil operates on an
// abstract adjacency function over automatonstate.State, so the same
// traversal code serves a WFSA's arc list, a WCFG's derived
// unary-substitution graph, or any other state-labeled digraph a caller
// can describe with a Neighbors callback — without graphutil importing
// its callers or vice versa.
//
// What:
//
//   - DFS: post-order traversal with three-coloring (White/Gray/Black)
//     cycle detection, over an opaque adjacency function.
//   - TopologicalSort: reverse-finishing-time order of a DAG; reports
//     ErrCycleDetected if the graph is not acyclic.
//   - SCC: Kosaraju's algorithm, returning strongly connected components
//     in topologically sorted (condensation) order, not raw partition
//     order — callers needing a reverse-topological schedule for backward
//     relaxation (pathsum's SCC-decomposed Lehmann strategy) iterate the
//     result in reverse.
//
// Why:
//
//   - wfsa's structural queries (Acyclic, Toposort, SCC, Accessible,
//     Coaccessible) need acyclic/cyclic classification, topological order,
//     SCC decomposition and reachability; pathsum builds on those queries. Sharing one small traversal
//     package avoids three divergent copies of DFS bookkeeping.
//
// Errors:
//
//   - ErrCycleDetected   TopologicalSort called on a graph with a cycle
package graphutil
