package token

import "github.com/dshills/eventrex/nfa"

// spChars lists the characters that, escaped with a backslash, denote
// themselves literally rather than a class shorthand.
const spChars = `\*+.^$[]{}()`

func isSpChar(r rune) bool {
	for _, c := range spChars {
		if c == r {
			return true
		}
	}
	return false
}

func isTransChar(r rune) bool {
	return r == 'w' || r == 's' || r == 'd'
}

func classKindFor(r rune) nfa.ClassKind {
	switch r {
	case 'w':
		return nfa.ClassTransW
	case 's':
		return nfa.ClassTransS
	default:
		return nfa.ClassTransD
	}
}
