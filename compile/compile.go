package compile

import (
	"github.com/dshills/eventrex/nfa"
	"github.com/dshills/eventrex/token"
)

// Compile translates a token stream into a single spliced NFA, following
// the source's regex_to_nfa: a shunting-yard variant with an NFA stack
// and an operator stack, draining higher-precedence operators whenever
// an anchor, a `)`, or end of input is reached.
func Compile(tokens []token.Token) (*nfa.Graph, error) {
	var nfaStack []*nfa.Graph
	var opStack []token.Token
	idx := &counter{}

	applyOp := func(op token.Token) error {
		switch {
		case token.IsConcat(op):
			if len(nfaStack) < 2 {
				return ErrStackUnderflow
			}
			f1 := nfaStack[len(nfaStack)-1]
			f2 := nfaStack[len(nfaStack)-2]
			nfaStack = nfaStack[:len(nfaStack)-2]
			junction := "con" + idx.name(0)
			idx.advance(1)
			merged, err := nfa.Concat(f2, f1, junction)
			if err != nil {
				return err
			}
			nfaStack = append(nfaStack, merged)
		case token.IsPostfix(op):
			if len(nfaStack) < 1 {
				return ErrStackUnderflow
			}
			f := nfaStack[len(nfaStack)-1]
			nfaStack = nfaStack[:len(nfaStack)-1]
			if err := anchorPostfix(f, idx); err != nil {
				return err
			}
			nfaStack = append(nfaStack, f)
		case token.IsPrefix(op):
			if len(nfaStack) < 1 {
				return ErrStackUnderflow
			}
			f := nfaStack[len(nfaStack)-1]
			nfaStack = nfaStack[:len(nfaStack)-1]
			if err := anchorPrefix(f, idx); err != nil {
				return err
			}
			nfaStack = append(nfaStack, f)
		}
		return nil
	}

	drainAboveLeftBracket := func() error {
		for len(opStack) > 0 && !token.IsLeftBracket(opStack[len(opStack)-1]) {
			op := opStack[len(opStack)-1]
			opStack = opStack[:len(opStack)-1]
			if err := applyOp(op); err != nil {
				return err
			}
		}
		return nil
	}

	for _, tok := range tokens {
		switch {
		case tok.Type == token.TypeOperand:
			f, err := operandNFA(tok)
			if err != nil {
				return nil, err
			}
			nfaStack = append(nfaStack, f)

		case token.IsLeftBracket(tok):
			opStack = append(opStack, tok)

		case token.IsRepeat(tok):
			if len(nfaStack) < 1 {
				return nil, ErrStackUnderflow
			}
			f := nfaStack[len(nfaStack)-1]
			nfaStack = nfaStack[:len(nfaStack)-1]

			var result *nfa.Graph
			var err error
			if tok.Kind == token.KindNormal {
				if tok.Value == "*" {
					err = star(f, idx)
					result = f
				} else {
					err = plus(f, idx)
					result = f
				}
			} else {
				lo, hi := tok.Range[0], tok.Range[1]
				if lo == hi {
					result, err = repeatEq(f, lo)
				} else {
					result, err = repeatRange(f, idx, lo, hi)
				}
			}
			if err != nil {
				return nil, err
			}
			nfaStack = append(nfaStack, result)

		case token.IsPrefix(tok) || token.IsPostfix(tok):
			if err := drainAboveLeftBracket(); err != nil {
				return nil, err
			}
			opStack = append(opStack, tok)

		case token.IsConcat(tok):
			for len(opStack) > 0 && token.IsConcat(opStack[len(opStack)-1]) {
				op := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if err := applyOp(op); err != nil {
					return nil, err
				}
			}
			opStack = append(opStack, tok)

		case token.IsRightBracket(tok):
			if err := drainAboveLeftBracket(); err != nil {
				return nil, err
			}
			if len(opStack) == 0 {
				return nil, ErrStackUnderflow
			}
			opStack = opStack[:len(opStack)-1] // discard the '('
		}
	}

	for len(opStack) > 0 {
		op := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		if err := applyOp(op); err != nil {
			return nil, err
		}
	}

	if len(nfaStack) == 0 {
		return nil, ErrEmptyPattern
	}
	return nfaStack[len(nfaStack)-1], nil
}
