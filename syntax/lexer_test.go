package syntax

import (
	"testing"

	"sablec/report"
)

func TestTokenize_MinimalProgram(t *testing.T) {
	input := "func foo() (Int) {\nreturn 5 + 10\n}\nfoo()\n"

	tests := []struct {
		expectedKind  int
		expectedValue string
	}{
		{TOK_FUNC, "func"},
		{TOK_IDENT, "foo"},
		{TOK_LPAREN, "("},
		{TOK_RPAREN, ")"},
		{TOK_LPAREN, "("},
		{TOK_IDENT, "Int"},
		{TOK_RPAREN, ")"},
		{TOK_LBRACE, "{"},
		{TOK_SEP, ""},
		{TOK_RETURN, "return"},
		{TOK_INTLIT, "5"},
		{TOK_PLUS, "+"},
		{TOK_INTLIT, "10"},
		{TOK_SEP, ""},
		{TOK_RBRACE, "}"},
		{TOK_SEP, ""},
		{TOK_IDENT, "foo"},
		{TOK_LPAREN, "("},
		{TOK_RPAREN, ")"},
		{TOK_SEP, ""},
	}

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}

	if len(toks) != len(tests) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(tests), len(toks))
	}

	for i, tt := range tests {
		if toks[i].Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - token kind wrong. expected=%d, got=%d", i, tt.expectedKind, toks[i].Kind)
		}

		if toks[i].Value != tt.expectedValue {
			t.Fatalf("tests[%d] - token value wrong. expected=%q, got=%q", i, tt.expectedValue, toks[i].Value)
		}
	}
}

func TestTokenize_SeparatorCoalescing(t *testing.T) {
	inputs := []string{
		"a\nb",
		"a\n\nb",
		"a\n\n\n\n\nb",
		"a\n \n\t\n b",
		"a\r\n\r\nb",
	}

	for i, input := range inputs {
		toks, err := Tokenize(input)
		if err != nil {
			t.Fatalf("inputs[%d] - Tokenize failed: %s", i, err)
		}

		if len(toks) != 3 {
			t.Fatalf("inputs[%d] - wrong token count. expected=3, got=%d", i, len(toks))
		}

		if toks[0].Kind != TOK_IDENT || toks[1].Kind != TOK_SEP || toks[2].Kind != TOK_IDENT {
			t.Fatalf("inputs[%d] - expected IDENT SEP IDENT, got %d %d %d", i, toks[0].Kind, toks[1].Kind, toks[2].Kind)
		}
	}
}

func TestTokenize_LocationMonotonicity(t *testing.T) {
	input := "func foo() (Int) {\n\treturn 5 + 10\n}\n\nfoo()\n"

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}

	for i, tok := range toks {
		if tok.Span.StartOffset > tok.Span.EndOffset {
			t.Fatalf("token %d - start offset %d after end offset %d", i, tok.Span.StartOffset, tok.Span.EndOffset)
		}

		if i > 0 && toks[i-1].Span.EndOffset > tok.Span.StartOffset {
			t.Fatalf("token %d - starts at offset %d before previous token ends at %d", i, tok.Span.StartOffset, toks[i-1].Span.EndOffset)
		}
	}
}

func TestTokenize_NewlineAdvancesLine(t *testing.T) {
	toks, err := Tokenize("a\nb")
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}

	a, b := toks[0], toks[2]

	if a.Span.StartLine != 0 || a.Span.StartCol != 0 {
		t.Fatalf("token `a` position wrong. got line=%d col=%d", a.Span.StartLine, a.Span.StartCol)
	}

	if b.Span.StartLine != 1 || b.Span.StartCol != 0 {
		t.Fatalf("token `b` position wrong. got line=%d col=%d", b.Span.StartLine, b.Span.StartCol)
	}
}

func TestTokenize_UnrecognizedCharacter(t *testing.T) {
	_, err := Tokenize("func $ foo")
	if err == nil {
		t.Fatal("expected an error for unrecognized character")
	}

	cerr, ok := err.(*report.CompileError)
	if !ok {
		t.Fatalf("expected a *report.CompileError, got %T", err)
	}

	if cerr.Kind != report.ErrKindLexical {
		t.Fatalf("wrong error kind. expected=%d, got=%d", report.ErrKindLexical, cerr.Kind)
	}

	if cerr.Span == nil || cerr.Span.StartCol != 5 || cerr.Span.StartOffset != 5 {
		t.Fatalf("wrong error span: %+v", cerr.Span)
	}
}

func TestTokenize_WordClassification(t *testing.T) {
	tests := []struct {
		input        string
		expectedKind int
	}{
		{"10", TOK_INTLIT},
		{"0", TOK_INTLIT},
		{"5.5", TOK_FLOATLIT},
		{"1e5", TOK_FLOATLIT},
		{"foo", TOK_IDENT},
		{"foo1", TOK_IDENT},
		{"Int", TOK_IDENT},
		{"func", TOK_FUNC},
		{"return", TOK_RETURN},
		{"if", TOK_IF},
		{"else", TOK_ELSE},
		{"returnx", TOK_IDENT},
	}

	for i, tt := range tests {
		toks, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("tests[%d] - Tokenize failed: %s", i, err)
		}

		if len(toks) != 1 {
			t.Fatalf("tests[%d] - wrong token count. expected=1, got=%d", i, len(toks))
		}

		if toks[0].Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - token kind wrong for %q. expected=%d, got=%d", i, tt.input, tt.expectedKind, toks[0].Kind)
		}
	}
}
