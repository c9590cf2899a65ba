// Package regex exposes the matcher API the engine is built to serve:
// match, search, sub, and split over a compiled NFA, mirroring
// regex_lib.py's four entry points including their documented quirks
// (the sub/split count defaults, the anchored fast paths).
package regex

import (
	"context"

	"github.com/dshills/eventrex/compile"
	"github.com/dshills/eventrex/nfa"
	"github.com/dshills/eventrex/sim"
	"github.com/dshills/eventrex/token"
)

// Span is a half-open [Start, End) match range within the text it was
// found in.
type Span struct {
	Start int
	End   int
}

// Regex is a compiled pattern, ready to be matched against any number of
// texts. Its underlying NFA is static after Compile returns, so a Regex
// is safe for concurrent use.
type Regex struct {
	pattern  string
	anchored bool
	graph    *nfa.Graph
}

// Compile tokenizes and compiles pattern into a Regex.
func Compile(pattern string) (*Regex, error) {
	toks, err := token.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	g, err := compile.Compile(toks)
	if err != nil {
		return nil, err
	}
	return &Regex{
		pattern:  pattern,
		anchored: len(pattern) > 0 && pattern[0] == '^',
		graph:    g,
	}, nil
}

func (re *Regex) execute(ctx context.Context, text string) (*nfa.Execution, error) {
	return re.graph.Execute(ctx, sim.DefaultPolicy(), text)
}

// Match succeeds only if the pattern matches a prefix of text starting
// at position zero.
func (re *Regex) Match(ctx context.Context, text string) (Span, bool, error) {
	exec, err := re.execute(ctx, text)
	if err != nil {
		return Span{}, false, err
	}
	if !exec.Matched {
		return Span{}, false, nil
	}
	return Span{Start: 0, End: exec.MatchedIndex}, true, nil
}

// Search scans increasing start positions for the first one where the
// pattern matches a prefix of the remaining text. An anchored pattern
// (leading `^`) behaves exactly like Match, since nothing but position
// zero can ever succeed.
func (re *Regex) Search(ctx context.Context, text string) (Span, bool, error) {
	if re.anchored {
		return re.Match(ctx, text)
	}
	for i := 0; i < len(text); i++ {
		exec, err := re.execute(ctx, text[i:])
		if err != nil {
			return Span{}, false, err
		}
		if exec.Matched {
			return Span{Start: i, End: i + exec.MatchedIndex}, true, nil
		}
	}
	return Span{}, false, nil
}

// Sub replaces non-overlapping matches of the pattern in text with repl.
//
// count bounds how many replacements are made, with one documented
// quirk preserved from the source: when count == 0, the bound actually
// applied is len(repl), not "unlimited" — callers that pass an empty
// repl and count == 0 will see no replacements happen at all. Pass an
// explicit positive count to avoid this.
func (re *Regex) Sub(ctx context.Context, repl, text string, count int) (string, error) {
	if re.anchored {
		exec, err := re.execute(ctx, text)
		if err != nil {
			return "", err
		}
		if !exec.Matched {
			return text, nil
		}
		return repl + text[len(exec.MatchedStr):], nil
	}

	tCount := count
	if tCount == 0 {
		tCount = len(repl)
	}

	res := text
	i, j := 0, 0
	for i < len(res) && j < tCount {
		exec, err := re.execute(ctx, res[i:])
		if err != nil {
			return "", err
		}
		if exec.Matched {
			mst := exec.MatchedStr
			res = res[:i] + repl + res[i+len(mst):]
			i += len(repl)
			j++
		}
		i++
	}
	return res, nil
}

// Split partitions text around non-overlapping matches of the pattern,
// returning the segments between them (including empty leading/trailing
// segments).
//
// maxsplit bounds how many splits are made, with the source's other
// documented quirk preserved: maxsplit == 0 defaults the bound to
// len(text), which is "unlimited" in practice since there can never be
// more than len(text) matches.
func (re *Regex) Split(ctx context.Context, text string, maxsplit int) ([]string, error) {
	if re.anchored {
		exec, err := re.execute(ctx, text)
		if err != nil {
			return nil, err
		}
		if !exec.Matched {
			return []string{}, nil
		}
		return []string{"", text[len(exec.MatchedStr):]}, nil
	}

	tCount := maxsplit
	if tCount == 0 {
		tCount = len(text)
	}

	var out []string
	i, j, k := 0, 0, 0
	for i < len(text) && j < tCount {
		exec, err := re.execute(ctx, text[i:])
		if err != nil {
			return nil, err
		}
		if exec.Matched {
			out = append(out, text[k:i])
			i += exec.MatchedIndex
			k = i
			j++
		} else {
			i++
		}
	}
	out = append(out, text[i:])
	return out, nil
}

// Visualize renders the compiled NFA as a dot digraph.
func (re *Regex) Visualize() string {
	return re.graph.Visualize()
}

// Sim returns the underlying sim.Graph so a caller can attach metrics or
// an emitter after compilation (regex.Compile has no single construction
// site to pass sim.Option through, since the compiler splices many
// intermediate graphs together).
func (re *Regex) Sim() *sim.Graph {
	return re.graph.Sim()
}
