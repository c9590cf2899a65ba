package compile

import "github.com/dshills/eventrex/sim"

// cloneNodes deep-copies nodes onto fresh sim.Node identities, preserving
// every port name exactly. The source still deep-copies the first
// repetition's body (rather than reusing the original node list
// directly) so that the original NFA's nodes are never mutated by the
// splicing that follows — nodes_repeat_range relies on the original NFA
// still being intact when it builds a second, independent repetition off
// the same body.
func cloneNodes(nodes []*sim.Node) []*sim.Node {
	scratch := sim.NewGraph("clone")
	out := make([]*sim.Node, 0, len(nodes))
	for _, n := range nodes {
		nn, _ := scratch.AddNode(n.Name, n.Fn())
		for _, in := range n.InputNames() {
			lat, _ := n.InputLatency(in)
			_ = nn.Input(in, lat)
		}
		for _, o := range n.OutputNames() {
			lat, _ := n.OutputLatency(o)
			_ = nn.Output(o, lat)
		}
		out = append(out, nn)
	}
	return out
}

// cloneNodesSuffixed deep-copies nodes, suffixing every port name except
// inputPort and outputPort ("Input" and "Output"), which are preserved
// literally so the splicing step can still find and rewire the copy's
// boundary nodes. This mirrors the source's per-copy suffixing in
// repeat_nfa/repeat_or_output_nfa: only a copy's internal wires get a
// "_i" suffix, its Input/Output keys stay as-is until explicitly rewired.
func cloneNodesSuffixed(nodes []*sim.Node, inputPort, outputPort, suffix string) []*sim.Node {
	scratch := sim.NewGraph("clone")
	rename := map[string]string{}
	nameFor := func(p string) string {
		if p == inputPort || p == outputPort {
			return p
		}
		if r, ok := rename[p]; ok {
			return r
		}
		r := p + "_" + suffix
		rename[p] = r
		return r
	}

	out := make([]*sim.Node, 0, len(nodes))
	for _, n := range nodes {
		nn, _ := scratch.AddNode(n.Name+"_"+suffix, n.Fn())
		for _, in := range n.InputNames() {
			lat, _ := n.InputLatency(in)
			_ = nn.Input(nameFor(in), lat)
		}
		for _, o := range n.OutputNames() {
			lat, _ := n.OutputLatency(o)
			_ = nn.Output(nameFor(o), lat)
		}
		out = append(out, nn)
	}
	return out
}

func findNodeWithInput(nodes []*sim.Node, name string) *sim.Node {
	for _, n := range nodes {
		if n.HasInput(name) {
			return n
		}
	}
	return nil
}

func findNodeWithOutput(nodes []*sim.Node, name string) *sim.Node {
	for _, n := range nodes {
		if n.HasOutput(name) {
			return n
		}
	}
	return nil
}
