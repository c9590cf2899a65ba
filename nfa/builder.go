package nfa

import (
	"unicode/utf8"

	"github.com/dshills/eventrex/sim"
)

// Graph is one NFA: a sim.Graph with the fixed "Input"/"Output" boundary
// convention every builder primitive and the compiler rely on.
type Graph struct {
	Name       string
	m          *sim.Graph
	InputPort  string
	OutputPort string
}

// NewGraph constructs an empty NFA with an Input and Output port, each
// latency 1.
func NewGraph(name string, opts ...sim.Option) (*Graph, error) {
	m := sim.NewGraph(name, opts...)
	if err := m.InputPort("Input", 1); err != nil {
		return nil, err
	}
	if err := m.OutputPort("Output", 1); err != nil {
		return nil, err
	}
	return &Graph{Name: name, m: m, InputPort: "Input", OutputPort: "Output"}, nil
}

// Sim returns the underlying sim.Graph, for callers (Execute, Visualize)
// that need the simulator directly.
func (g *Graph) Sim() *sim.Graph { return g.m }

// ExtendNodes appends foreign nodes (typically from a deep-copied
// sub-graph) directly onto this graph's node list.
func (g *Graph) ExtendNodes(nodes []*sim.Node) {
	g.m.Nodes = append(g.m.Nodes, nodes...)
}

// GetNodeList returns the graph's current nodes.
func (g *Graph) GetNodeList() []*sim.Node { return g.m.Nodes }

// GetInputNode finds the node currently wired to the graph's Input port.
// InputPort and OutputPort name the graph's boundary wires and are fixed
// for the life of a Graph ("Input"/"Output" for a freshly built one):
// SetInputNode/SetOutputNode relocate which node answers to that name,
// they never rename the boundary itself. Concatenation relies on this —
// see Concat.
func (g *Graph) GetInputNode() *sim.Node {
	for _, n := range g.m.Nodes {
		if n.HasInput(g.InputPort) {
			return n
		}
	}
	return nil
}

// SetInputNode moves the graph's Input wire off of every node currently
// wired to it and onto newName, freeing "Input" to be reattached to a
// different node later (or left disconnected, when this sub-graph is
// being spliced into a larger one at that point).
func (g *Graph) SetInputNode(newName string, latency int) error {
	if newName == "" {
		return ErrArgType
	}
	for _, n := range g.m.Nodes {
		if n.HasInput(g.InputPort) {
			n.RenameInput(g.InputPort, newName, latency)
		}
	}
	return nil
}

// GetOutputNode finds the node currently wired to the graph's Output port.
func (g *Graph) GetOutputNode() *sim.Node {
	for _, n := range g.m.Nodes {
		if n.HasOutput(g.OutputPort) {
			return n
		}
	}
	return nil
}

// SetOutputNode moves the graph's Output wire off of every node
// currently wired to it (a `*` or `+` lattice has more than one) and
// onto newName.
func (g *Graph) SetOutputNode(newName string, latency int) error {
	if newName == "" {
		return ErrArgType
	}
	for _, n := range g.m.Nodes {
		if n.HasOutput(g.OutputPort) {
			n.RenameOutput(g.OutputPort, newName, latency)
		}
	}
	return nil
}

func firstRune(text string) (rune, string, bool) {
	if text == "" {
		return 0, "", false
	}
	r, size := utf8.DecodeRuneInString(text)
	return r, text[size:], true
}

func textArg(args []any) (string, bool) {
	if len(args) == 0 || args[0] == nil {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}

// consumeOne builds a TransitionFunc that rejects on absent/empty input
// and otherwise decodes the first rune, tests it with accept, and emits
// the remainder on match.
func consumeOne(accept func(r rune) bool) sim.TransitionFunc {
	return func(args []any) sim.Result {
		text, ok := textArg(args)
		if !ok || len(text) < 1 {
			return sim.Reject()
		}
		r, rest, _ := firstRune(text)
		if !accept(r) {
			return sim.Reject()
		}
		return sim.Accept(rest)
	}
}

func wireNode(n *sim.Node, a, b string, c string) error {
	if a == "" || b == "" {
		return ErrArgType
	}
	if err := n.Input(a, 1); err != nil {
		return err
	}
	if err := n.Output(b, 1); err != nil {
		return err
	}
	if c != "" {
		if err := n.Output(c, 1); err != nil {
			return err
		}
	}
	return nil
}

// AddDigitAlphaNode adds a node recognizing \w: letters, digits, '_'.
func (g *Graph) AddDigitAlphaNode(a, b, c string) (*sim.Node, error) {
	n, err := g.m.AddNode("digit_alpha", consumeOne(func(r rune) bool {
		return isDigit(r) || isAlpha(r) || r == '_'
	}))
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

// AddEmptyCharNode adds a node recognizing \s: \n \t \r \f.
func (g *Graph) AddEmptyCharNode(a, b, c string) (*sim.Node, error) {
	n, err := g.m.AddNode("empty_char", consumeOne(func(r rune) bool {
		for _, e := range emptyChars {
			if e == r {
				return true
			}
		}
		return false
	}))
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

// AddDigitNode adds a node recognizing \d.
func (g *Graph) AddDigitNode(a, b, c string) (*sim.Node, error) {
	n, err := g.m.AddNode("digit", consumeOne(isDigit))
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

// AddAlphaNode adds a node recognizing letters.
func (g *Graph) AddAlphaNode(a, b, c string) (*sim.Node, error) {
	n, err := g.m.AddNode("alpha", consumeOne(isAlpha))
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

// AddAnyNode adds a node recognizing '.': anything but '\n'.
func (g *Graph) AddAnyNode(a, b, c string) (*sim.Node, error) {
	n, err := g.m.AddNode("any", consumeOne(func(r rune) bool { return r != '\n' }))
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

// AddNormalNode adds a node recognizing exactly one literal rune.
func (g *Graph) AddNormalNode(a, b string, patternChar rune, c string) (*sim.Node, error) {
	n, err := g.m.AddNode("normal", consumeOne(func(r rune) bool { return r == patternChar }))
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

// AddEndNode adds a node that only accepts the empty string, realizing
// the `$` anchor.
func (g *Graph) AddEndNode(a, b string) (*sim.Node, error) {
	n, err := g.m.AddNode("end", func(args []any) sim.Result {
		text, ok := textArg(args)
		if ok && text == "" {
			return sim.Accept("")
		}
		return sim.Reject()
	})
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, ""); err != nil {
		return nil, err
	}
	return n, nil
}

// AddCharsetNode adds a node recognizing a character class, negated when
// negative is true.
func (g *Graph) AddCharsetNode(a, b string, items []ClassItem, negative bool, c string) (*sim.Node, error) {
	name := "set"
	if negative {
		name = "neg_set"
	}
	n, err := g.m.AddNode(name, func(args []any) sim.Result {
		text, ok := textArg(args)
		if !ok || len(text) < 1 {
			return sim.Reject()
		}
		r, rest, _ := firstRune(text)
		matched := classMatches(items, r)
		if matched == negative {
			return sim.Reject()
		}
		return sim.Accept(rest)
	})
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, c); err != nil {
		return nil, err
	}
	return n, nil
}

func nullFn(args []any) sim.Result {
	if len(args) == 0 {
		return sim.Accept(nil)
	}
	return sim.Accept(args[0])
}

// AddNull11Node adds a one-input one-output epsilon pass-through node.
func (g *Graph) AddNull11Node(a, b string) (*sim.Node, error) {
	n, err := g.m.AddNode("null_11", nullFn)
	if err != nil {
		return nil, err
	}
	if err := wireNode(n, a, b, ""); err != nil {
		return nil, err
	}
	return n, nil
}

// AddNull12Node adds a one-input two-output epsilon fan-out node.
func (g *Graph) AddNull12Node(a, b, c string) (*sim.Node, error) {
	if a == "" || b == "" || c == "" {
		return nil, ErrArgType
	}
	n, err := g.m.AddNode("null_12", nullFn)
	if err != nil {
		return nil, err
	}
	if err := n.Input(a, 1); err != nil {
		return nil, err
	}
	if err := n.Output(b, 1); err != nil {
		return nil, err
	}
	if err := n.Output(c, 1); err != nil {
		return nil, err
	}
	return n, nil
}

// AddNull21Node adds a two-input one-output epsilon join node.
func (g *Graph) AddNull21Node(a, b, c string) (*sim.Node, error) {
	if a == "" || b == "" || c == "" {
		return nil, ErrArgType
	}
	n, err := g.m.AddNode("null_21", nullFn)
	if err != nil {
		return nil, err
	}
	if err := n.Input(a, 1); err != nil {
		return nil, err
	}
	if err := n.Input(b, 1); err != nil {
		return nil, err
	}
	if err := n.Output(c, 1); err != nil {
		return nil, err
	}
	return n, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
