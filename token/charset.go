package token

import (
	"context"

	"github.com/dshills/eventrex/nfa"
	"github.com/dshills/eventrex/sim"
)

// newAlphaRangeNFA recognizes a 3-character alpha range body such as
// "a-z": a letter, a literal '-', a letter.
func newAlphaRangeNFA() (*nfa.Graph, error) {
	g, err := nfa.NewGraph("alpha_range")
	if err != nil {
		return nil, err
	}
	if _, err := g.AddAlphaNode(g.InputPort, "n1", ""); err != nil {
		return nil, err
	}
	if _, err := g.AddNormalNode("n1", "n2", '-', ""); err != nil {
		return nil, err
	}
	if _, err := g.AddAlphaNode("n2", g.OutputPort, ""); err != nil {
		return nil, err
	}
	return g, nil
}

// newDigitRangeNFA recognizes a 3-character digit range body such as
// "5-9".
func newDigitRangeNFA() (*nfa.Graph, error) {
	g, err := nfa.NewGraph("digit_range")
	if err != nil {
		return nil, err
	}
	if _, err := g.AddDigitNode(g.InputPort, "n1", ""); err != nil {
		return nil, err
	}
	if _, err := g.AddNormalNode("n1", "n2", '-', ""); err != nil {
		return nil, err
	}
	if _, err := g.AddDigitNode("n2", g.OutputPort, ""); err != nil {
		return nil, err
	}
	return g, nil
}

func fullyMatches(g *nfa.Graph, text string) (bool, error) {
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), text)
	if err != nil {
		return false, err
	}
	return exec.Matched && exec.MatchedIndex == len(text), nil
}

// charsetSubToken is one element of a [..] body, prior to being folded
// into nfa.ClassItems by toClassItems.
type charsetSubToken struct {
	Kind  Kind
	Value rune
	Lo    rune
	Hi    rune
}

// parseCharset analyzes the text between '[' and ']' (exclusive), the
// way the source's charset_parser walks the bracket body character by
// character: backslash escapes, alpha/digit ranges validated against
// small bootstrap NFAs, and otherwise literal characters.
func parseCharset(charset string) ([]charsetSubToken, error) {
	alphaRange, err := newAlphaRangeNFA()
	if err != nil {
		return nil, err
	}
	digitRange, err := newDigitRangeNFA()
	if err != nil {
		return nil, err
	}

	runes := []rune(charset)
	var out []charsetSubToken
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\\' && i+1 < len(runes):
			next := runes[i+1]
			switch {
			case isSpChar(next):
				out = append(out, charsetSubToken{Kind: KindNormal, Value: next})
				i++
			case isTransChar(next):
				out = append(out, charsetSubToken{Kind: KindTrans, Value: next})
				i++
			default:
				out = append(out, charsetSubToken{Kind: KindNormal, Value: next})
				i++
			}
		case isAlphaRune(c) && i+2 < len(runes) && runes[i+1] == '-':
			ok, err := fullyMatches(alphaRange, string(runes[i:i+3]))
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, charsetSubToken{Kind: KindAlphaRange, Lo: c, Hi: runes[i+2]})
				i += 2
			} else {
				out = append(out, charsetSubToken{Kind: KindNormal, Value: c})
			}
		case isDigitRune(c) && i+2 < len(runes) && runes[i+1] == '-':
			ok, err := fullyMatches(digitRange, string(runes[i:i+3]))
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, charsetSubToken{Kind: KindDigitRange, Lo: c, Hi: runes[i+2]})
				i += 2
			} else {
				out = append(out, charsetSubToken{Kind: KindNormal, Value: c})
			}
		default:
			out = append(out, charsetSubToken{Kind: KindNormal, Value: c})
		}
	}
	return out, nil
}

func isAlphaRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// toClassItems folds parsed sub-tokens into the nfa package's class
// predicate form, used directly by nfa.AddCharsetNode.
func toClassItems(subs []charsetSubToken) []nfa.ClassItem {
	items := make([]nfa.ClassItem, 0, len(subs))
	for _, s := range subs {
		switch s.Kind {
		case KindNormal:
			items = append(items, nfa.ClassItem{Kind: nfa.ClassNormal, Value: s.Value})
		case KindTrans:
			items = append(items, nfa.ClassItem{Kind: classKindFor(s.Value)})
		case KindAlphaRange:
			items = append(items, nfa.ClassItem{Kind: nfa.ClassAlphaRange, Lo: s.Lo, Hi: s.Hi})
		case KindDigitRange:
			items = append(items, nfa.ClassItem{Kind: nfa.ClassDigitRange, Lo: s.Lo, Hi: s.Hi})
		}
	}
	return items
}

// parseSet processes a '[...]' starting at text[0] == '[' and returns how
// many runes it consumed (the index of the closing ']', inclusive of
// '[') plus the resulting Token. A leading '^' right after '[' marks
// negation; the body handed to parseCharset still includes that '^' (the
// source slices the same way), so a negated set's class also rejects the
// literal '^' character — a quirk preserved here for fidelity.
func parseSet(text string) (int, Token, error) {
	runes := []rune(text)
	inc := 0
	for inc < len(runes) && runes[inc] != ']' {
		inc++
	}
	if inc >= len(runes) {
		return 0, Token{}, ErrUnterminatedSet
	}

	negative := len(runes) > 1 && runes[1] == '^'
	body := string(runes[1:inc])
	subs, err := parseCharset(body)
	if err != nil {
		return 0, Token{}, err
	}

	kind := KindSet
	if negative {
		kind = KindNegSet
	}
	tok := Token{
		Value: string(runes[0 : inc+1]),
		Type:  TypeOperand,
		Kind:  kind,
		Set:   toClassItems(subs),
	}
	return inc, tok, nil
}
