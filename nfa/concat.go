package nfa

// Concat splices b after a over a freshly named connecting wire,
// mutating and returning a. Every node of a wired to "Output" is
// rewired onto junction; every node of b wired to "Input" is rewired
// onto junction; b's nodes are appended to a's. a's own boundary names
// ("Input" for entry, "Output" for the wire b's untouched final nodes
// still answer to) are unaffected, so the
// result is usable exactly like any other Graph.
func Concat(a, b *Graph, junction string) (*Graph, error) {
	if err := a.SetOutputNode(junction, 1); err != nil {
		return nil, err
	}
	if err := b.SetInputNode(junction, 1); err != nil {
		return nil, err
	}
	a.ExtendNodes(b.GetNodeList())
	return a, nil
}
