// Package ratalg is a library of algorithms over weighted finite-state
// automata and weighted context-free grammars, generic over an arbitrary
// semiring.
//
// Subpackages:
//
//	semiring/       — the Semiring[T] algebra plus its optional refinements
//	                   (Starable, Invertible, Ordered) and the concrete rings
//	symbol/         — alphabet symbols, including the epsilon family
//	automatonstate/ — state identity shared by automata and grammars
//	graphutil/      — abstract DFS, topological sort, and SCC over a bare
//	                   adjacency callback
//	wfsa/           — the weighted finite-state automaton type and its
//	                   rational operations, determinization, minimization,
//	                   weight pushing, and composition
//	pathsum/        — single-source and all-pairs path-sum algorithms
//	                   (Viterbi, Bellman-Ford, Dijkstra, Lehmann, Johnson,
//	                   SCC-decomposed Lehmann)
//	wcfg/           — weighted context-free grammars, tree-sum, and the
//	                   Chomsky Normal Form transformer pipeline
//
// This module has no main package of its own; it is imported as a library.
package ratalg
