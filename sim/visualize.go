package sim

import (
	"fmt"
	"strings"
)

// Visualize renders the graph as a Graphviz "dot" digraph: one rarrow
// node per declared port, one labelled node per Node, and edges
// connecting graph inputs to nodes, nodes to each other over shared port
// names, and nodes to graph outputs.
func (g *Graph) Visualize() string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("  rankdir=LR;\n")

	for _, p := range g.Inputs.names() {
		fmt.Fprintf(&b, "  %s[shape=rarrow];\n", p)
	}
	for _, p := range g.Outputs.names() {
		fmt.Fprintf(&b, "  %s[shape=rarrow];\n", p)
	}
	for i, n := range g.Nodes {
		fmt.Fprintf(&b, "  n_%d[label=%q];\n", i, n.Name)
	}

	for i, n := range g.Nodes {
		for _, in := range n.Inputs.names() {
			if g.Inputs.has(in) {
				fmt.Fprintf(&b, "  %s -> n_%d;\n", in, i)
			}
			for j, other := range g.Nodes {
				if j == i {
					continue
				}
				if other.Outputs.has(in) {
					fmt.Fprintf(&b, "  n_%d -> n_%d[label=%q];\n", j, i, in)
				}
			}
		}
		for _, out := range n.Outputs.names() {
			if g.Outputs.has(out) {
				fmt.Fprintf(&b, "  n_%d -> %s;\n", i, out)
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
