package sim

import (
	"context"
	"testing"
)

// notGate builds the one-input, one-output, one-node NOT gate used by the
// simulator's defining test: b = !a when a is a bool, otherwise the
// branch dies.
func notGate(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph("not-gate")
	if err := g.InputPort("A", 1); err != nil {
		t.Fatalf("InputPort: %v", err)
	}
	if err := g.OutputPort("B", 1); err != nil {
		t.Fatalf("OutputPort: %v", err)
	}
	n, err := g.AddNode("n", func(args []any) Result {
		b, ok := args[0].(bool)
		if !ok {
			return Reject()
		}
		return Accept(!b)
	})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := n.Input("A", 1); err != nil {
		t.Fatalf("node Input: %v", err)
	}
	if err := n.Output("B", 1); err != nil {
		t.Fatalf("node Output: %v", err)
	}
	return g
}

func TestNotGateActivate(t *testing.T) {
	g := notGate(t)
	n := g.Nodes[0]

	out := n.Activate(map[string]any{"A": false})
	if len(out) != 1 {
		t.Fatalf("got %d source events, want 1", len(out))
	}
	if out[0].Var != "B" || out[0].Val != true || out[0].Latency != 1 {
		t.Fatalf("got %+v, want {B true 1}", out[0])
	}
}

func TestNotGateExecute(t *testing.T) {
	g := notGate(t)

	hist, outcome, err := g.Execute(context.Background(), DefaultPolicy(),
		SourceEvent{Var: "A", Val: true, Latency: 0},
		SourceEvent{Var: "A", Val: false, Latency: 5},
	)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if outcome != OutcomeCompleted {
		t.Fatalf("outcome = %v, want completed", outcome)
	}

	wantStates := []struct {
		clock int
		state map[string]any
	}{
		{0, map[string]any{"A": nil}},
		{2, map[string]any{"A": true}},
		{4, map[string]any{"A": true, "B": false}},
		{7, map[string]any{"A": false, "B": false}},
		{9, map[string]any{"A": false, "B": true}},
	}
	if len(hist.States) != len(wantStates) {
		t.Fatalf("got %d state entries, want %d: %+v", len(hist.States), len(wantStates), hist.States)
	}
	for i, w := range wantStates {
		got := hist.States[i]
		if got.Clock != w.clock {
			t.Errorf("state[%d].Clock = %d, want %d", i, got.Clock, w.clock)
		}
		if len(got.State) != len(w.state) {
			t.Errorf("state[%d] = %+v, want %+v", i, got.State, w.state)
			continue
		}
		for k, v := range w.state {
			if got.State[k] != v {
				t.Errorf("state[%d][%q] = %v, want %v", i, k, got.State[k], v)
			}
		}
	}

	wantEvents := []struct {
		clock  int
		isNode bool
		v      string
		val    any
	}{
		{2, true, "A", true},
		{4, false, "B", false},
		{7, true, "A", false},
		{9, false, "B", true},
	}
	if len(hist.Events) != len(wantEvents) {
		t.Fatalf("got %d events, want %d: %+v", len(hist.Events), len(wantEvents), hist.Events)
	}
	for i, w := range wantEvents {
		ev := hist.Events[i]
		if ev.Clock != w.clock || ev.Var != w.v || ev.Val != w.val || (ev.Node != nil) != w.isNode {
			t.Errorf("event[%d] = %+v, want clock=%d node!=nil:%v var=%s val=%v", i, ev, w.clock, w.isNode, w.v, w.val)
		}
	}
}

func TestGraphPortErrors(t *testing.T) {
	g := NewGraph("g")
	if err := g.InputPort("", 1); err != ErrArgType {
		t.Fatalf("InputPort(\"\") = %v, want ErrArgType", err)
	}
	if err := g.InputPort("X", 1); err != nil {
		t.Fatalf("InputPort(X): %v", err)
	}
	if err := g.InputPort("X", 2); err != ErrDuplicatePort {
		t.Fatalf("InputPort(X) dup = %v, want ErrDuplicatePort", err)
	}
}
