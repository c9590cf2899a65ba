package token

import "github.com/dshills/eventrex/nfa"

// Token is one element of a tokenized pattern. Value holds the literal
// rune (as a one-rune string) for Normal/Dot/Trans tokens, or the
// original bracketed text for Set/NegSet/Range tokens. Set carries the
// parsed class items for Set/NegSet; Range carries [lo, hi] for Range,
// with hi == -1 meaning unbounded.
type Token struct {
	Value string
	Type  Type
	Kind  Kind
	Range [2]int
	Set   []nfa.ClassItem
}

func operand(kind Kind, value string) Token {
	return Token{Value: value, Type: TypeOperand, Kind: kind}
}

func operator(kind Kind, value string) Token {
	return Token{Value: value, Type: TypeOperator, Kind: kind}
}

// isRepeat reports whether a token is a postfix repetition operator: '*',
// '+', or a {..} range.
func isRepeat(t Token) bool {
	if t.Kind == KindNormal {
		return t.Value == "*" || t.Value == "+"
	}
	return t.Kind == KindRange
}

func isLeftBracket(t Token) bool {
	return t.Type == TypeOperator && t.Value == "("
}

func isRightBracket(t Token) bool {
	return t.Type == TypeOperator && t.Value == ")"
}

func isConcat(t Token) bool {
	return t.Kind == KindConcat
}

func isPrefix(t Token) bool {
	return t.Type == TypeOperator && t.Value == "^"
}

func isPostfix(t Token) bool {
	return t.Type == TypeOperator && t.Value == "$"
}

// IsRepeat, IsLeftBracket, IsRightBracket, IsConcat, IsPrefix, and
// IsPostfix are the exported forms of the same predicates, for the
// compiler package.
func IsRepeat(t Token) bool       { return isRepeat(t) }
func IsLeftBracket(t Token) bool  { return isLeftBracket(t) }
func IsRightBracket(t Token) bool { return isRightBracket(t) }
func IsConcat(t Token) bool       { return isConcat(t) }
func IsPrefix(t Token) bool       { return isPrefix(t) }
func IsPostfix(t Token) bool      { return isPostfix(t) }
