// Package compile implements the shunting-yard translation of a token
// stream into a spliced NFA, invoking the nfa package's builder
// primitives per operator the way the source's regex_to_nfa does.
package compile

import "errors"

// ErrEmptyGraph means a quantifier or anchor was applied to an NFA with
// no nodes — the caller must have pushed an operand first.
var ErrEmptyGraph = errors.New("compile: quantifier applied to empty NFA")

// ErrStackUnderflow means the token stream asked for more operands or
// operators than were available on the compiler's stacks, usually from
// a malformed pattern (e.g. a bare quantifier with nothing to repeat).
var ErrStackUnderflow = errors.New("compile: operand or operator stack underflow")

// ErrEmptyPattern means the token stream produced no operand at all.
var ErrEmptyPattern = errors.New("compile: pattern produced no NFA")
