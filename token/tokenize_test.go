package token

import "testing"

func TestTokenizeSimpleConcat(t *testing.T) {
	toks, err := Tokenize("ab")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[0].Value != "a" || toks[2].Value != "b" {
		t.Fatalf("unexpected operand tokens: %+v", toks)
	}
	if !isConcat(toks[1]) {
		t.Fatalf("expected concat token between operands, got %+v", toks[1])
	}
}

func TestTokenizeRepeatThenOperand(t *testing.T) {
	toks, err := Tokenize("a*b")
	if err != nil {
		t.Fatal(err)
	}
	// a, *, concat, b
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(toks), toks)
	}
	if toks[1].Value != "*" || !isConcat(toks[2]) || toks[3].Value != "b" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenizeNoConcatBeforeRightBracket(t *testing.T) {
	toks, err := Tokenize("(a)")
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range toks {
		if isConcat(tok) {
			t.Fatalf("did not expect a concat token in %+v", toks)
		}
	}
}

func TestTokenizeGroupThenOperand(t *testing.T) {
	toks, err := Tokenize("(a)b")
	if err != nil {
		t.Fatal(err)
	}
	// (, a, ), concat, b
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5: %+v", len(toks), toks)
	}
	if !isConcat(toks[3]) {
		t.Fatalf("expected concat after ')', got %+v", toks[3])
	}
}

func TestTokenizeTransAndDot(t *testing.T) {
	toks, err := Tokenize(`\w.`)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != KindTrans || toks[0].Value != "w" {
		t.Fatalf("expected trans token, got %+v", toks[0])
	}
	if !isConcat(toks[1]) {
		t.Fatalf("expected concat between \\w and ., got %+v", toks[1])
	}
	if toks[2].Kind != KindDot {
		t.Fatalf("expected dot token, got %+v", toks[2])
	}
}

func TestTokenizeCharsetRange(t *testing.T) {
	toks, err := Tokenize("[a-z0-9_]")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != KindSet {
		t.Fatalf("expected a single charset token, got %+v", toks)
	}
	if len(toks[0].Set) != 3 {
		t.Fatalf("expected 3 class items (alpha range, digit range, literal '_'), got %+v", toks[0].Set)
	}
}

func TestTokenizeNegatedCharset(t *testing.T) {
	toks, err := Tokenize("[^0-9]")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != KindNegSet {
		t.Fatalf("expected a single neg-charset token, got %+v", toks)
	}
}

func TestTokenizeRangeQuantifierForms(t *testing.T) {
	cases := []struct {
		in      string
		lo, hi  int
		pattern string
	}{
		{"a{5}", 5, 5, "{5}"},
		{"a{3,}", 3, -1, "{3,}"},
		{"a{,5}", 0, 5, "{,5}"},
		{"a{3,5}", 3, 5, "{3,5}"},
	}
	for _, tc := range cases {
		toks, err := Tokenize(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		var rangeTok *Token
		for i := range toks {
			if toks[i].Kind == KindRange {
				rangeTok = &toks[i]
			}
		}
		if rangeTok == nil {
			t.Fatalf("%s: no range token found in %+v", tc.in, toks)
		}
		if rangeTok.Range[0] != tc.lo || rangeTok.Range[1] != tc.hi {
			t.Errorf("%s: got range %v, want [%d,%d]", tc.in, rangeTok.Range, tc.lo, tc.hi)
		}
		if rangeTok.Value != tc.pattern {
			t.Errorf("%s: got value %q, want %q", tc.in, rangeTok.Value, tc.pattern)
		}
	}
}

func TestTokenizeMalformedRange(t *testing.T) {
	if _, err := Tokenize("a{12}"); err != ErrMalformedRange {
		t.Fatalf("expected ErrMalformedRange for multi-digit bound, got %v", err)
	}
}

// TestTokenizeFullSequence walks the composite pattern
// "(ab)*[^0-9]+\w\s{2,8}{2,}ac{,8}b{6}" token by token, checking both the
// concat-insertion juxtaposition rule and the no-concat-between-
// successive-range-quantifiers case ("\s{2,8}{2,}": two repeat operators
// back to back get nothing inserted between them, since neither side is
// an operand or '(').
func TestTokenizeFullSequence(t *testing.T) {
	toks, err := Tokenize(`(ab)*[^0-9]+\w\s{2,8}{2,}ac{,8}b{6}`)
	if err != nil {
		t.Fatal(err)
	}

	wantKinds := []Kind{
		KindNormal, KindNormal, KindConcat, KindNormal, KindNormal, KindNormal,
		KindConcat, KindNegSet, KindNormal, KindConcat, KindTrans, KindConcat,
		KindTrans, KindRange, KindRange, KindConcat, KindNormal, KindConcat,
		KindNormal, KindRange, KindConcat, KindNormal, KindRange,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantKinds), toks)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token[%d]: got kind %q, want %q (value %q)", i, toks[i].Kind, want, toks[i].Value)
		}
	}

	concats := 0
	for _, tok := range toks {
		if isConcat(tok) {
			concats++
		}
	}
	if concats != 7 {
		t.Errorf("got %d concat tokens, want 7", concats)
	}

	// The two successive range quantifiers in "\s{2,8}{2,}" sit directly
	// next to each other with no concat inserted between them: neither a
	// repeat nor a ')' is followed by another operator.
	for i := 0; i < len(toks)-1; i++ {
		if toks[i].Kind == KindRange && toks[i+1].Kind == KindRange {
			if isConcat(toks[i]) || isConcat(toks[i+1]) {
				t.Fatalf("did not expect a concat between adjacent range tokens at %d", i)
			}
			return
		}
	}
	t.Fatal("expected to find two adjacent range tokens in the sequence")
}
