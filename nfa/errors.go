// Package nfa builds and runs nondeterministic finite automata as
// sim.Graph instances: every regex primitive (a literal, a character
// class, a quantifier lattice) is realized as one or more sim.Nodes
// wired between a graph's "Input" and "Output" ports.
package nfa

import "errors"

// ErrArgType is returned when a builder method is handed an argument of
// the wrong shape (an empty port or wire name).
var ErrArgType = errors.New("nfa: argument has the wrong type or shape")

// ErrEmptyGraph names an operation applied to a graph with no nodes. No
// function in this package returns it: Concat does not check for nodes,
// and the compiler's quantifier wrapping reports compile.ErrEmptyGraph.
var ErrEmptyGraph = errors.New("nfa: operation requires a non-empty graph")
