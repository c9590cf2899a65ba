package compile

import (
	"context"
	"testing"

	"github.com/dshills/eventrex/sim"
	"github.com/dshills/eventrex/token"
)

func TestCompileDigitPlus(t *testing.T) {
	toks, err := token.Tokenize("[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	g, err := Compile(toks)
	if err != nil {
		t.Fatal(err)
	}
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), "1324354657")
	if err != nil {
		t.Fatal(err)
	}
	if !exec.Matched || exec.MatchedIndex != 10 {
		t.Fatalf("expected full match (index 10), got matched=%v index=%d", exec.Matched, exec.MatchedIndex)
	}
}

func TestCompileDigitPlusRejectsLetters(t *testing.T) {
	toks, err := token.Tokenize("[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	g, err := Compile(toks)
	if err != nil {
		t.Fatal(err)
	}
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), "hello itmo")
	if err != nil {
		t.Fatal(err)
	}
	if exec.Matched {
		t.Fatalf("expected no match, got matched string %q", exec.MatchedStr)
	}
}

func TestCompileAnchoredHello(t *testing.T) {
	toks, err := token.Tokenize("^hello")
	if err != nil {
		t.Fatal(err)
	}
	g, err := Compile(toks)
	if err != nil {
		t.Fatal(err)
	}
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), "hello itmo")
	if err != nil {
		t.Fatal(err)
	}
	if !exec.Matched || exec.MatchedIndex != 5 {
		t.Fatalf("expected match of length 5, got matched=%v index=%d", exec.Matched, exec.MatchedIndex)
	}
}

func TestCompileRepeatEqExact(t *testing.T) {
	toks, err := token.Tokenize("a{3}")
	if err != nil {
		t.Fatal(err)
	}
	g, err := Compile(toks)
	if err != nil {
		t.Fatal(err)
	}
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), "aaa")
	if err != nil {
		t.Fatal(err)
	}
	if !exec.Matched || exec.MatchedIndex != 3 {
		t.Fatalf("expected full match of 'aaa', got matched=%v index=%d", exec.Matched, exec.MatchedIndex)
	}
}

func TestCompileRepeatRangeBounded(t *testing.T) {
	toks, err := token.Tokenize("a{2,4}")
	if err != nil {
		t.Fatal(err)
	}
	g, err := Compile(toks)
	if err != nil {
		t.Fatal(err)
	}
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), "aaaa")
	if err != nil {
		t.Fatal(err)
	}
	if !exec.Matched {
		t.Fatalf("expected a match against 'aaaa'")
	}
}

func TestCompileGroupStar(t *testing.T) {
	toks, err := token.Tokenize("(ab)*")
	if err != nil {
		t.Fatal(err)
	}
	g, err := Compile(toks)
	if err != nil {
		t.Fatal(err)
	}
	exec, err := g.Execute(context.Background(), sim.DefaultPolicy(), "ababab")
	if err != nil {
		t.Fatal(err)
	}
	if !exec.Matched {
		t.Fatalf("expected (ab)* to match 'ababab'")
	}
}
