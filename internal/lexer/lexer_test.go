package lexer

import (
	"testing"

	"minim/internal/diag"
	"minim/internal/source"
	"minim/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.minim", []byte(input))
	bag := diag.NewBag(50)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexDeclaration(t *testing.T) {
	toks, bag := lexAll(t, "int counter;")
	want := []token.Kind{token.KwInt, token.Ident, token.Semicolon}

	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Text != "counter" {
		t.Errorf("ident text = %q", toks[1].Text)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestLexOperators(t *testing.T) {
	toks, bag := lexAll(t, "++ -- << >> <= >= == != && || < > = ! . ,")
	want := []token.Kind{
		token.PlusPlus, token.MinusMinus, token.Shl, token.Shr,
		token.LtEq, token.GtEq, token.EqEq, token.BangEq,
		token.AndAnd, token.OrOr, token.Lt, token.Gt,
		token.Assign, token.Bang, token.Dot, token.Comma,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestLexReadWriteStatementTokens(t *testing.T) {
	toks, _ := lexAll(t, "input >> x; disp << y;")
	want := []token.Kind{
		token.KwInput, token.Shr, token.Ident, token.Semicolon,
		token.KwDisp, token.Shl, token.Ident, token.Semicolon,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexComments(t *testing.T) {
	toks, bag := lexAll(t, "int a; // trailing\n/* block\ncomment */ bool b;")
	want := []token.Kind{token.KwInt, token.Ident, token.Semicolon, token.KwBool, token.Ident, token.Semicolon}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestLexUnterminatedComment(t *testing.T) {
	_, bag := lexAll(t, "int a; /* never closed")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("want one LexUnterminatedComment, got %v", bag.Items())
	}
}

func TestLexString(t *testing.T) {
	toks, bag := lexAll(t, `disp << "hello\nworld";`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[2].Kind != token.StringLit {
		t.Fatalf("token 2 = %v", toks[2].Kind)
	}
	if toks[2].Text != `"hello\nworld"` {
		t.Errorf("string text = %q", toks[2].Text)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, "disp << \"oops\nint a;")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Fatalf("LexUnterminatedString not reported: %v", bag.Items())
	}
}

func TestLexIntOverflow(t *testing.T) {
	toks, bag := lexAll(t, "x = 99999999999;")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexIntOverflow {
		t.Fatalf("want one LexIntOverflow, got %v", bag.Items())
	}
	// The token survives so parsing can continue.
	if toks[2].Kind != token.IntLit {
		t.Fatalf("token 2 = %v", toks[2].Kind)
	}
}

func TestLexUnknownChar(t *testing.T) {
	_, bag := lexAll(t, "int a; @")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("want one LexUnknownChar, got %v", bag.Items())
	}
}

func TestLexSpans(t *testing.T) {
	toks, _ := lexAll(t, "int abc;")
	if toks[1].Span.Start != 4 || toks[1].Span.End != 7 {
		t.Fatalf("ident span = %v", toks[1].Span)
	}
}

func TestLexPeek(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.minim", []byte("int a;"))
	lx := New(fs.Get(id), Options{})

	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatalf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatalf("lookahead buffer misbehaved")
	}
}
