// Package symbol defines the alphabet element type shared by every automaton
// and grammar in this module.
//
// A Sym is either an ordinary terminal letter or one of three distinguished
// epsilon markers. The two tagged markers, Eps1 and Eps2, exist only to
// support the epsilon filter used by intersection (see the wfsa package):
// Eps2 stands for "an epsilon move made by the left operand", Eps1 for
// "an epsilon move made by the right operand". Ordinary automata never
// contain Eps1/Eps2 on their own arcs; those symbols appear only inside a
// product automaton built by Intersect.
package symbol
