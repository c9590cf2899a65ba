package compile

import (
	"strconv"

	"github.com/dshills/eventrex/nfa"
)

// star wraps f with the `*` lattice: skip the body entirely, run it
// once, or loop it any number of times.
func star(f *nfa.Graph, idx *counter) error {
	if len(f.GetNodeList()) == 0 {
		return ErrEmptyGraph
	}
	if err := f.SetInputNode(idx.name(2), 1); err != nil {
		return err
	}
	if err := f.SetOutputNode(idx.name(3), 1); err != nil {
		return err
	}
	if _, err := f.AddNull12Node(f.InputPort, idx.name(0), idx.name(1)); err != nil {
		return err
	}
	if _, err := f.AddNull11Node(idx.name(1), f.OutputPort); err != nil {
		return err
	}
	if _, err := f.AddNull21Node(idx.name(0), idx.name(4), idx.name(2)); err != nil {
		return err
	}
	if _, err := f.AddNull12Node(idx.name(3), idx.name(4), f.OutputPort); err != nil {
		return err
	}
	idx.advance(5)
	return nil
}

// plus wraps f with the `+` lattice: the body must run at least once,
// then may loop.
func plus(f *nfa.Graph, idx *counter) error {
	if len(f.GetNodeList()) == 0 {
		return ErrEmptyGraph
	}
	if err := f.SetInputNode(idx.name(1), 1); err != nil {
		return err
	}
	if err := f.SetOutputNode(idx.name(2), 1); err != nil {
		return err
	}
	if _, err := f.AddNull11Node(f.InputPort, idx.name(0)); err != nil {
		return err
	}
	if _, err := f.AddNull21Node(idx.name(0), idx.name(3), idx.name(1)); err != nil {
		return err
	}
	if _, err := f.AddNull12Node(idx.name(2), idx.name(3), f.OutputPort); err != nil {
		return err
	}
	idx.advance(4)
	return nil
}

// anchorPrefix implements the `^` anchor: structurally a no-op, a single
// null_11 appended on the output. The matcher API is what actually gives
// `^` its meaning, by refusing to slide the search start position.
func anchorPrefix(f *nfa.Graph, idx *counter) error {
	if len(f.GetNodeList()) == 0 {
		return ErrEmptyGraph
	}
	if err := f.SetOutputNode(idx.name(0), 1); err != nil {
		return err
	}
	if _, err := f.AddNull11Node(idx.name(0), f.OutputPort); err != nil {
		return err
	}
	idx.advance(1)
	return nil
}

// anchorPostfix implements the `$` anchor: an end node appended on the
// output, so the NFA only succeeds once the input is fully consumed.
func anchorPostfix(f *nfa.Graph, idx *counter) error {
	if len(f.GetNodeList()) == 0 {
		return ErrEmptyGraph
	}
	if err := f.SetOutputNode(idx.name(0), 1); err != nil {
		return err
	}
	if _, err := f.AddEndNode(idx.name(0), f.OutputPort); err != nil {
		return err
	}
	idx.advance(1)
	return nil
}

// repeatEq splices `times` deep copies of f in series, producing the
// NFA for a {n} quantifier. times == 0 collapses to a single epsilon
// edge (the empty-match language).
func repeatEq(f *nfa.Graph, times int) (*nfa.Graph, error) {
	if times <= 0 {
		return epsilonGraph()
	}
	nodes := f.GetNodeList()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	out, err := nfa.NewGraph("nfa")
	if err != nil {
		return nil, err
	}
	newNodes := cloneNodes(nodes)

	for i := 0; i < times-1; i++ {
		suffix := strconv.Itoa(i + 1)
		tmp := cloneNodesSuffixed(nodes, f.InputPort, f.OutputPort, suffix)
		con := "c_" + suffix

		if n := findNodeWithInput(tmp, f.InputPort); n != nil {
			n.RenameInput(f.InputPort, con, 1)
		}
		if n := findNodeWithOutput(newNodes, f.OutputPort); n != nil {
			n.RenameOutput(f.OutputPort, con, 1)
		}
		newNodes = append(newNodes, tmp...)
	}

	out.ExtendNodes(newNodes)
	return out, nil
}

// repeatOrOutput splices `times` deep copies of f in series, the way
// repeatEq does, except each junction also keeps a live path straight to
// the wrapper's own Output, and an epsilon edge from Input to Output
// bypasses the copies entirely — so every copy, the first included, is
// optional.
// This backs the "extra" copies in a {n,m} quantifier (n required copies
// already spliced by repeatEq, m-n further optional ones from here).
func repeatOrOutput(f *nfa.Graph, times int) (*nfa.Graph, error) {
	if times <= 0 {
		return epsilonGraph()
	}
	nodes := f.GetNodeList()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	out, err := nfa.NewGraph("nfa")
	if err != nil {
		return nil, err
	}
	newNodes := cloneNodes(nodes)

	for i := 0; i < times-1; i++ {
		suffix := strconv.Itoa(i + 1)
		tmp := cloneNodesSuffixed(nodes, f.InputPort, f.OutputPort, suffix)
		con := "c_" + suffix

		if n := findNodeWithInput(tmp, f.InputPort); n != nil {
			n.RenameInput(f.InputPort, con, 1)
		}
		for _, n := range newNodes {
			if n.HasOutput(f.OutputPort) {
				_ = n.Output(con, 1)
			}
		}
		newNodes = append(newNodes, tmp...)
	}

	out.ExtendNodes(newNodes)
	if _, err := out.AddNull11Node(out.InputPort, out.OutputPort); err != nil {
		return nil, err
	}
	return out, nil
}

func epsilonGraph() (*nfa.Graph, error) {
	g, err := nfa.NewGraph("nfa")
	if err != nil {
		return nil, err
	}
	if _, err := g.AddNull11Node(g.InputPort, g.OutputPort); err != nil {
		return nil, err
	}
	return g, nil
}

// repeatRange builds the NFA for a {lo,hi} quantifier with lo < hi (or
// hi == -1 for an unbounded upper end, the {lo,} form).
func repeatRange(f *nfa.Graph, idx *counter, lo, hi int) (*nfa.Graph, error) {
	f1, err := repeatEq(f, lo)
	if err != nil {
		return nil, err
	}

	if hi == -1 {
		// {lo,}: lo required copies, then a `*`-style tail spliced on.
		if err := f1.SetOutputNode(idx.name(0), 1); err != nil {
			return nil, err
		}
		if _, err := f1.AddNull12Node(idx.name(0), idx.name(1), idx.name(2)); err != nil {
			return nil, err
		}
		if _, err := f1.AddNull21Node(idx.name(1), idx.name(5), idx.name(3)); err != nil {
			return nil, err
		}
		if _, err := f1.AddNull12Node(idx.name(4), idx.name(5), f1.OutputPort); err != nil {
			return nil, err
		}
		if _, err := f1.AddNull11Node(idx.name(2), f1.OutputPort); err != nil {
			return nil, err
		}
		if err := f.SetInputNode(idx.name(3), 1); err != nil {
			return nil, err
		}
		if err := f.SetOutputNode(idx.name(4), 1); err != nil {
			return nil, err
		}
		idx.advance(6)
		f1.ExtendNodes(f.GetNodeList())
		return f1, nil
	}

	f2, err := repeatOrOutput(f, hi-lo)
	if err != nil {
		return nil, err
	}
	junction := "con" + idx.name(0)
	result, err := nfa.Concat(f1, f2, junction)
	if err != nil {
		return nil, err
	}
	idx.advance(1)
	return result, nil
}
