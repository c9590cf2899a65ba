package nfa

import (
	"context"

	"github.com/dshills/eventrex/sim"
)

// Execution is the outcome of running an NFA against text: the
// simulator's state record, whether the output port bound to a
// non-nil value, and (if matched) the matched prefix of text and its
// length, which is also the index in text just past the match.
type Execution struct {
	Record       map[string]any
	Matched      bool
	MatchedStr   string
	MatchedIndex int
	Outcome      sim.Outcome
}

// Execute runs the NFA against text, seeding the graph's input port at
// clock 0, and derives the matched prefix the way the source does: if
// the output value is the empty string the whole text matched; otherwise
// the output value is some suffix of text, and the matched index is
// found by scanning text's suffixes for the one that equals it.
func (g *Graph) Execute(ctx context.Context, policy sim.Policy, text string) (*Execution, error) {
	hist, outcome, err := g.m.Execute(ctx, policy, sim.SourceEvent{Var: g.InputPort, Val: text, Latency: 0})
	if err != nil {
		return nil, err
	}

	record := hist.Record()
	exec := &Execution{Record: record, Outcome: outcome}

	out, ok := record[g.OutputPort]
	if !ok || out == nil {
		return exec, nil
	}
	outStr, ok := out.(string)
	if !ok {
		return exec, nil
	}
	exec.Matched = true

	if outStr == "" {
		exec.MatchedIndex = len(text)
		exec.MatchedStr = text
		return exec, nil
	}
	for i := 0; i < len(text); i++ {
		if text[i:] == outStr {
			exec.MatchedIndex = i
			break
		}
	}
	exec.MatchedStr = text[:exec.MatchedIndex]
	return exec, nil
}

// Visualize renders the NFA as a dot digraph via the underlying simulator.
func (g *Graph) Visualize() string {
	return g.m.Visualize()
}
