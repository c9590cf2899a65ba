package token

// Tokenize converts a regex source string into its token stream,
// inserting explicit concat tokens between adjacent operands the way
// add_concat does: after a repeat ('*', '+', or a {..} range) or a ')'
// or an operand, whenever the following token is itself an operand or a
// '('.
func Tokenize(pattern string) ([]Token, error) {
	runes := []rune(pattern)
	var tokens []Token

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\\':
			if i+1 >= len(runes) {
				return nil, ErrDanglingEscape
			}
			tokens = append(tokens, processTrans(runes[i+1]))
			i++
		case c == '.':
			tokens = append(tokens, operand(KindDot, "."))
		case c == '[':
			inc, tok, err := parseSet(string(runes[i:]))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += inc
		case c == '*' || c == '+' || c == '^' || c == '$' || c == '(' || c == ')':
			tokens = append(tokens, operator(KindNormal, string(c)))
		case c == '{':
			inc, tok, err := parseRange(string(runes[i:]))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += inc
		default:
			tokens = append(tokens, operand(KindNormal, string(c)))
		}
	}

	return addConcat(tokens), nil
}

// processTrans interprets the character following a backslash: one of
// sp_chars yields a literal normal token, one of w/s/d yields a trans
// token, and anything else still yields a literal normal token rather
// than reproducing the source's behavior of leaving it unhandled.
func processTrans(c rune) Token {
	if isSpChar(c) || !isTransChar(c) {
		return operand(KindNormal, string(c))
	}
	return operand(KindTrans, string(c))
}

// addConcat inserts a concat token wherever two tokens sit side by side
// with nothing implying how they combine: after a repeat or a ')',
// before an operand or '('; and between two operands directly.
func addConcat(tokens []Token) []Token {
	concat := operator(KindConcat, "concat")

	var insertAt []int
	for i := 0; i < len(tokens)-1; i++ {
		left, right := tokens[i], tokens[i+1]
		switch {
		case isRepeat(left) && (isLeftBracket(right) || right.Type == TypeOperand):
			insertAt = append(insertAt, i+1)
		case isRightBracket(left) && (isLeftBracket(right) || right.Type == TypeOperand):
			insertAt = append(insertAt, i+1)
		case left.Type == TypeOperand && (isLeftBracket(right) || right.Type == TypeOperand):
			insertAt = append(insertAt, i+1)
		}
	}

	out := make([]Token, 0, len(tokens)+len(insertAt))
	insertSet := make(map[int]int, len(insertAt))
	for _, idx := range insertAt {
		insertSet[idx]++
	}
	for i, t := range tokens {
		for n := 0; n < insertSet[i]; n++ {
			out = append(out, concat)
		}
		out = append(out, t)
	}
	return out
}
