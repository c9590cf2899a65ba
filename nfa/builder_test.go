package nfa

import (
	"testing"

	"github.com/dshills/eventrex/sim"
)

func accepts(t *testing.T, n *sim.Node, text string) bool {
	t.Helper()
	out := n.Activate(map[string]any{"Input": text})
	return len(out) > 0 && !isRejected(out)
}

func isRejected(out []sim.SourceEvent) bool {
	return len(out) == 0
}

func TestDigitAlphaNode(t *testing.T) {
	g, err := NewGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.AddDigitAlphaNode("Input", "Output", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		text   string
		accept bool
	}{
		{"a", true}, {"1", true}, {"_", true}, {"%", false},
	} {
		if got := accepts(t, n, tc.text); got != tc.accept {
			t.Errorf("digit_alpha(%q) accepted=%v, want %v", tc.text, got, tc.accept)
		}
	}
}

func TestEmptyCharNode(t *testing.T) {
	g, err := NewGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.AddEmptyCharNode("Input", "Output", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"\n", "\t", "\r", "\f"} {
		if !accepts(t, n, text) {
			t.Errorf("empty_char(%q) rejected, want accepted", text)
		}
	}
	if accepts(t, n, "a") {
		t.Errorf("empty_char(%q) accepted, want rejected", "a")
	}
}

func TestAnyNode(t *testing.T) {
	g, err := NewGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.AddAnyNode("Input", "Output", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"a", "#", "\\", "1"} {
		if !accepts(t, n, text) {
			t.Errorf("any(%q) rejected, want accepted", text)
		}
	}
	if accepts(t, n, "\n") {
		t.Errorf("any(\\n) accepted, want rejected")
	}
}

func TestEndNode(t *testing.T) {
	g, err := NewGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.AddEndNode("Input", "Output")
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(t, n, "") {
		t.Errorf("end(\"\") rejected, want accepted")
	}
	if accepts(t, n, "a") {
		t.Errorf("end(%q) accepted, want rejected", "a")
	}
}

func TestCharsetNode(t *testing.T) {
	g, err := NewGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	items := []ClassItem{
		{Kind: ClassTransS},
		{Kind: ClassAlphaRange, Lo: 'a', Hi: 'z'},
		{Kind: ClassAlphaRange, Lo: 'A', Hi: 'Z'},
		{Kind: ClassDigitRange, Lo: '5', Hi: '9'},
	}
	n, err := g.AddCharsetNode("Input", "Output", items, false, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"a", "z", "\n", "6"} {
		if !accepts(t, n, text) {
			t.Errorf("charset(%q) rejected, want accepted", text)
		}
	}
	if accepts(t, n, "1") {
		t.Errorf("charset(%q) accepted, want rejected", "1")
	}
}

func TestNegatedCharsetNode(t *testing.T) {
	g, err := NewGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	items := []ClassItem{{Kind: ClassDigitRange, Lo: '2', Hi: '9'}}
	n, err := g.AddCharsetNode("Input", "Output", items, true, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"2", "5", "9"} {
		if accepts(t, n, text) {
			t.Errorf("neg_charset(%q) accepted, want rejected", text)
		}
	}
	for _, text := range []string{"a", "1"} {
		if !accepts(t, n, text) {
			t.Errorf("neg_charset(%q) rejected, want accepted", text)
		}
	}
}
