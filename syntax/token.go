package syntax

import "sablec/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  Separator tokens carry no value.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// IsNumeric returns whether the token is a numeric literal.
func (t *Token) IsNumeric() bool {
	return t.Kind == TOK_INTLIT || t.Kind == TOK_FLOATLIT
}

// Enumeration of token kinds.
const (
	TOK_FUNC = iota
	TOK_RETURN
	TOK_IF
	TOK_ELSE

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD
	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMA

	TOK_SEP

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT

	TOK_EOF
)
