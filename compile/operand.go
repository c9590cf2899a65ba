package compile

import (
	"github.com/dshills/eventrex/nfa"
	"github.com/dshills/eventrex/token"
)

// operandNFA builds the single-node NFA a leaf token compiles to.
func operandNFA(tok token.Token) (*nfa.Graph, error) {
	g, err := nfa.NewGraph("nfa")
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.KindNormal:
		r := []rune(tok.Value)[0]
		if _, err := g.AddNormalNode(g.InputPort, g.OutputPort, r, ""); err != nil {
			return nil, err
		}
	case token.KindSet:
		if _, err := g.AddCharsetNode(g.InputPort, g.OutputPort, tok.Set, false, ""); err != nil {
			return nil, err
		}
	case token.KindNegSet:
		if _, err := g.AddCharsetNode(g.InputPort, g.OutputPort, tok.Set, true, ""); err != nil {
			return nil, err
		}
	case token.KindTrans:
		switch tok.Value {
		case "w":
			if _, err := g.AddDigitAlphaNode(g.InputPort, g.OutputPort, ""); err != nil {
				return nil, err
			}
		case "s":
			if _, err := g.AddEmptyCharNode(g.InputPort, g.OutputPort, ""); err != nil {
				return nil, err
			}
		default:
			if _, err := g.AddDigitNode(g.InputPort, g.OutputPort, ""); err != nil {
				return nil, err
			}
		}
	case token.KindDot:
		if _, err := g.AddAnyNode(g.InputPort, g.OutputPort, ""); err != nil {
			return nil, err
		}
	default:
		return nil, ErrEmptyPattern
	}
	return g, nil
}
