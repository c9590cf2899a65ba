package token

import (
	"github.com/dshills/eventrex/nfa"
)

// rangeForms returns the four bootstrap NFAs that validate a {..}
// quantifier body: {n}, {n,}, {,m}, and {n,m}. Each digit node consumes
// exactly one rune, so (as in the source) only single-digit bounds are
// recognized; a multi-digit bound such as {12} matches none of them.
func rangeForms() (n, minOpen, maxOpen, minMax *nfa.Graph, err error) {
	n, err = nfa.NewGraph("{n}")
	if err != nil {
		return
	}
	if _, err = n.AddNormalNode(n.InputPort, "n1", '{', ""); err != nil {
		return
	}
	if _, err = n.AddDigitNode("n1", "n2", ""); err != nil {
		return
	}
	if _, err = n.AddNormalNode("n2", n.OutputPort, '}', ""); err != nil {
		return
	}

	minOpen, err = nfa.NewGraph("{min,}")
	if err != nil {
		return
	}
	if _, err = minOpen.AddNormalNode(minOpen.InputPort, "n1", '{', ""); err != nil {
		return
	}
	if _, err = minOpen.AddDigitNode("n1", "n2", ""); err != nil {
		return
	}
	if _, err = minOpen.AddNormalNode("n2", "n3", ',', ""); err != nil {
		return
	}
	if _, err = minOpen.AddNormalNode("n3", minOpen.OutputPort, '}', ""); err != nil {
		return
	}

	maxOpen, err = nfa.NewGraph("{,max}")
	if err != nil {
		return
	}
	if _, err = maxOpen.AddNormalNode(maxOpen.InputPort, "n1", '{', ""); err != nil {
		return
	}
	if _, err = maxOpen.AddNormalNode("n1", "n2", ',', ""); err != nil {
		return
	}
	if _, err = maxOpen.AddDigitNode("n2", "n3", ""); err != nil {
		return
	}
	if _, err = maxOpen.AddNormalNode("n3", maxOpen.OutputPort, '}', ""); err != nil {
		return
	}

	minMax, err = nfa.NewGraph("{min,max}")
	if err != nil {
		return
	}
	if _, err = minMax.AddNormalNode(minMax.InputPort, "n1", '{', ""); err != nil {
		return
	}
	if _, err = minMax.AddDigitNode("n1", "n2", ""); err != nil {
		return
	}
	if _, err = minMax.AddNormalNode("n2", "n3", ',', ""); err != nil {
		return
	}
	if _, err = minMax.AddDigitNode("n3", "n4", ""); err != nil {
		return
	}
	if _, err = minMax.AddNormalNode("n4", minMax.OutputPort, '}', ""); err != nil {
		return
	}
	return
}

// parseRange processes a '{...}' quantifier starting at text[0] == '{',
// returning how many runes it consumed (the index of the closing '}',
// inclusive of '{') plus the resulting Range token.
func parseRange(text string) (int, Token, error) {
	runes := []rune(text)
	inc := 0
	for inc < len(runes) && runes[inc] != '}' {
		inc++
	}
	if inc >= len(runes) {
		return 0, Token{}, ErrUnterminatedRange
	}

	body := string(runes[0 : inc+1])
	n, minOpen, maxOpen, minMax, err := rangeForms()
	if err != nil {
		return 0, Token{}, err
	}

	if ok, err := fullyMatches(n, body); err != nil {
		return 0, Token{}, err
	} else if ok {
		v := int(runes[1] - '0')
		return inc, rangeToken(body, v, v), nil
	}
	if ok, err := fullyMatches(minOpen, body); err != nil {
		return 0, Token{}, err
	} else if ok {
		v := int(runes[1] - '0')
		return inc, rangeToken(body, v, -1), nil
	}
	if ok, err := fullyMatches(maxOpen, body); err != nil {
		return 0, Token{}, err
	} else if ok {
		v := int(runes[2] - '0')
		return inc, rangeToken(body, 0, v), nil
	}
	if ok, err := fullyMatches(minMax, body); err != nil {
		return 0, Token{}, err
	} else if ok {
		lo := int(runes[1] - '0')
		hi := int(runes[3] - '0')
		return inc, rangeToken(body, lo, hi), nil
	}
	return 0, Token{}, ErrMalformedRange
}

func rangeToken(value string, lo, hi int) Token {
	return Token{Value: value, Type: TypeOperator, Kind: KindRange, Range: [2]int{lo, hi}}
}
