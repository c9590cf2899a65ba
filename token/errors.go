// Package token converts a regex source string into the token stream the
// compiler consumes: one token per metacharacter or literal, with an
// explicit concat token inserted between adjacent operands so the
// compiler never has to special-case juxtaposition.
package token

import "errors"

// ErrUnterminatedSet means a '[' was never closed by a matching ']'.
var ErrUnterminatedSet = errors.New("token: unterminated character set")

// ErrUnterminatedRange means a '{' was never closed by a matching '}'.
var ErrUnterminatedRange = errors.New("token: unterminated range quantifier")

// ErrMalformedRange means a '{...}' body matched none of the four
// quantifier forms ({n}, {n,}, {,m}, {n,m}), each of which accepts only a
// single decimal digit per bound.
var ErrMalformedRange = errors.New("token: malformed range quantifier")

// ErrDanglingEscape means a '\' was the final character of the pattern.
var ErrDanglingEscape = errors.New("token: dangling escape at end of pattern")
