package sim

import (
	"container/heap"
	"context"
	"time"

	"github.com/dshills/eventrex/emit"
)

// Graph is a directed graph of Nodes wired together by shared port names,
// with its own declared input and output ports. It is the simulator's
// unit of execution: Execute drives events through it until the pending
// set drains, an early-exit condition fires, or Policy's budget runs out.
//
// Nodes and ports are mutated only during construction; Execute reads the
// static graph and produces fresh per-run state, so one Graph can be
// executed repeatedly (the regex package relies on this: a compiled
// Regex runs the same graph for every query and every Search offset,
// without rebuilding or resetting it).
type Graph struct {
	Name    string
	Inputs  portSet
	Outputs portSet
	Nodes   []*Node

	metrics *Metrics
	emitter emit.Emitter
}

// NewGraph constructs an empty Graph.
func NewGraph(name string, opts ...Option) *Graph {
	g := &Graph{
		Name:    name,
		Inputs:  newPortSet(),
		Outputs: newPortSet(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// InputPort declares an external entry port.
func (g *Graph) InputPort(name string, latency int) error {
	return g.Inputs.add(name, latency)
}

// OutputPort declares an external exit port.
func (g *Graph) OutputPort(name string, latency int) error {
	return g.Outputs.add(name, latency)
}

// HasInputPort reports whether name is one of the graph's declared input
// ports.
func (g *Graph) HasInputPort(name string) bool { return g.Inputs.has(name) }

// HasOutputPort reports whether name is one of the graph's declared
// output ports.
func (g *Graph) HasOutputPort(name string) bool { return g.Outputs.has(name) }

// InputPortNames returns the graph's declared input port names.
func (g *Graph) InputPortNames() []string { return g.Inputs.names() }

// OutputPortNames returns the graph's declared output port names.
func (g *Graph) OutputPortNames() []string { return g.Outputs.names() }

// RenameInputPort renames one of the graph's own declared input ports.
func (g *Graph) RenameInputPort(oldName, newName string, latency int) {
	g.Inputs.rename(oldName, newName, latency)
}

// RenameOutputPort renames one of the graph's own declared output ports.
func (g *Graph) RenameOutputPort(oldName, newName string, latency int) {
	g.Outputs.rename(oldName, newName, latency)
}

// AddNode creates a node owned by this graph. The caller wires its ports
// before the next Execute call.
func (g *Graph) AddNode(name string, fn TransitionFunc) (*Node, error) {
	n, err := NewNode(name, fn)
	if err != nil {
		return nil, err
	}
	g.Nodes = append(g.Nodes, n)
	return n, nil
}

// pendingHeap orders Events by clock ascending, breaking ties by
// insertion sequence — container/heap is not stable on its own, so
// stability is recovered by carrying an explicit sequence number.
type pendingHeap []Event

func (h pendingHeap) Len() int { return len(h) }
func (h pendingHeap) Less(i, j int) bool {
	if h[i].Clock != h[j].Clock {
		return h[i].Clock < h[j].Clock
	}
	return h[i].seq < h[j].seq
}
func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x any)   { *h = append(*h, x.(Event)) }
func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// translate converts a batch of SourceEvents produced at a given clock
// into absolute Events, one per matching destination. This reproduces
// §4.1's formula verbatim, including the clock + src_lat + n.inputs[var]
// double-count on the node branch — that is the engine's defined
// semantics, not a bug to fix here.
func (g *Graph) translate(sourceEvents []SourceEvent, clock int, seq *uint64) []Event {
	var events []Event
	for _, se := range sourceEvents {
		srcLat := clock + se.Latency + g.Inputs.get0(se.Var)

		if lat, ok := g.Outputs.get(se.Var); ok {
			events = append(events, Event{
				Clock: srcLat + lat,
				Node:  nil,
				Var:   se.Var,
				Val:   se.Val,
				seq:   *seq,
			})
			*seq++
		}
		for _, n := range g.Nodes {
			if lat, ok := n.Inputs.get(se.Var); ok {
				events = append(events, Event{
					Clock: clock + srcLat + lat,
					Node:  n,
					Var:   se.Var,
					Val:   se.Val,
					seq:   *seq,
				})
				*seq++
			}
		}
	}
	return events
}

// get0 returns the declared latency for name, or 0 if name is not one of
// the graph's own input ports — mirroring the source's inputs.get(var, 0).
func (p *portSet) get0(name string) int {
	if lat, ok := p.get(name); ok {
		return lat
	}
	return 0
}

func (g *Graph) initialState() map[string]any {
	state := make(map[string]any, g.Inputs.len())
	for _, v := range g.Inputs.names() {
		state[v] = nil
	}
	return state
}

// Execute drives the simulation from an initial batch of seed
// SourceEvents, following §4.1's main loop exactly: translate pending
// seeds, pop the earliest event (clock ascending, stable on ties), apply
// it, feed the node's emitted SourceEvents back in as the next seed
// batch, and repeat until the pending set is empty, an early exit fires,
// the policy's event budget is exhausted, the policy's timeout elapses,
// or ctx is cancelled.
func (g *Graph) Execute(ctx context.Context, policy Policy, seeds ...SourceEvent) (*History, Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := now()

	var cancel context.CancelFunc
	if policy.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, policy.Timeout)
		defer cancel()
	}

	state := g.initialState()
	record := g.initialState()

	hist := newHistory()
	var pending pendingHeap
	heap.Init(&pending)

	var seq uint64
	clock := 0
	hist.appendState(clock, cloneState(record))

	limit := policy.maxEvents()
	pendingSeeds := seeds
	outcome := OutcomeCompleted

	for {
		if len(pendingSeeds) == 0 && pending.Len() == 0 {
			break
		}
		if limit <= 0 {
			outcome = OutcomeLimitReached
			break
		}
		select {
		case <-ctx.Done():
			if ctxErr := ctx.Err(); ctxErr == context.DeadlineExceeded {
				outcome = OutcomeTimedOut
			} else {
				outcome = OutcomeCancelled
			}
		default:
		}
		if outcome == OutcomeTimedOut || outcome == OutcomeCancelled {
			break
		}
		limit--

		for _, ev := range g.translate(pendingSeeds, clock, &seq) {
			heap.Push(&pending, ev)
		}
		pendingSeeds = nil

		if pending.Len() == 0 {
			break
		}
		ev := heap.Pop(&pending).(Event)

		for k := range state {
			delete(state, k)
		}
		state[ev.Var] = ev.Val
		clock = ev.Clock

		var produced []SourceEvent
		if ev.Node != nil {
			produced = ev.Node.Activate(state)
		}

		for k, v := range state {
			record[k] = v
		}
		hist.appendState(clock, cloneState(record))
		hist.appendEvent(ev)

		if g.emitter != nil {
			nodeName := ""
			if ev.Node != nil {
				nodeName = ev.Node.Name
			}
			g.emitter.Emit(emit.Event{
				Step:   hist.len(),
				NodeID: nodeName,
				Msg:    "event_dispatched",
				Meta: map[string]any{
					"clock": clock,
					"var":   ev.Var,
					"val":   ev.Val,
				},
			})
		}
		if g.metrics != nil {
			g.metrics.IncEventsDispatched()
			g.metrics.ObserveQueueDepth(pending.Len())
		}

		if policy.EarlyExitOnEmptyOutput {
			if v, ok := record[outputPortName(g)]; ok {
				if s, isStr := v.(string); isStr && s == "" {
					break
				}
			}
		}

		pendingSeeds = produced
	}

	if g.metrics != nil {
		g.metrics.ObserveOutcome(outcome)
		g.metrics.ObserveDuration(outcome, now().Sub(start))
	}
	hist.record = cloneState(record)
	return hist, outcome, nil
}

// outputPortName returns the graph's sole declared output port name, or
// "" if none is declared. NFA graphs always declare exactly one ("Output"),
// but Execute is written generically against any Graph.
func outputPortName(g *Graph) string {
	names := g.Outputs.names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func cloneState(m map[string]any) map[string]any {
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// now exists only so tests can stub wall-clock-dependent metrics without
// pulling time.Now() into the deterministic simulation path itself.
var now = time.Now
