package syntax

import (
	"sablec/ast"
	"sablec/report"
	"sablec/util"
)

// Parser is the parser for a Sable token sequence.  It is a single-pass,
// single-lookahead recursive descent parser with no backtracking: it moves
// over the sequence token by token and decides what to parse based on the
// token it is currently positioned on.  All parsing functions assume that they
// begin with the parser centered on the first token of their production and
// must consume all tokens of their production, leaving the parser on the next
// token.  Any structural failure aborts the entire parse: no partial program
// is salvaged.
type Parser struct {
	// toks is the token sequence being parsed.
	toks []*Token

	// pos is the parser's position within the token sequence.
	pos int

	// funcNames records the names of the functions parsed so far.  Call
	// expressions are only recognized for names in this list, which makes call
	// recognition order-dependent: forward references are unsupported.
	funcNames []string
}

// NewParser creates a new parser over the given token sequence.
func NewParser(toks []*Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses the token sequence into a list of top-level nodes: function
// declarations and bare call expressions, in source order.  Tokens that begin
// neither are skipped.
func (p *Parser) Parse() ([]ast.TopLevel, error) {
	var program []ast.TopLevel

	for !p.got(TOK_EOF) {
		switch p.tok().Kind {
		case TOK_FUNC:
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}

			program = append(program, fn)
			p.funcNames = append(p.funcNames, fn.Name)
		case TOK_IDENT:
			if util.Contains(p.funcNames, p.tok().Value) {
				call, err := p.parseCall()
				if err != nil {
					return nil, err
				}

				program = append(program, call)
			} else {
				p.next()
			}
		default:
			p.next()
		}
	}

	return program, nil
}

// -----------------------------------------------------------------------------

// eofToken is the sentinel token the parser is positioned on once it has
// consumed the whole sequence.
var eofToken = &Token{Kind: TOK_EOF}

// tok returns the token the parser is currently positioned on.
func (p *Parser) tok() *Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}

	if len(p.toks) > 0 {
		return &Token{Kind: TOK_EOF, Span: p.toks[len(p.toks)-1].Span}
	}

	return eofToken
}

// next moves the parser forward one token.
func (p *Parser) next() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok().Kind == kind
}

// assert checks if the parser is on a token of a given kind and rejects the
// token if not.
func (p *Parser) assert(kind int) error {
	if p.got(kind) {
		return nil
	}

	return p.reject()
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) error {
	if err := p.assert(kind); err != nil {
		return err
	}

	p.next()
	return nil
}

// skipSeparators moves the parser forward until a non-separator token is
// encountered.  The current token is considered.
func (p *Parser) skipSeparators() {
	for p.got(TOK_SEP) {
		p.next()
	}
}

// -----------------------------------------------------------------------------

// reject produces an unexpected-token error on the current token.
func (p *Parser) reject() error {
	switch p.tok().Kind {
	case TOK_SEP:
		return report.Raise(report.ErrKindSyntax, p.tok().Span, "unexpected statement separator")
	case TOK_EOF:
		return report.Raise(report.ErrKindSyntax, p.tok().Span, "unexpected end of file")
	default:
		return report.Raise(report.ErrKindSyntax, p.tok().Span, "unexpected token: `%s`", p.tok().Value)
	}
}

// rejectWithMsg produces an error on the current token with a specific
// message.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) error {
	return report.Raise(report.ErrKindSyntax, p.tok().Span, msg, args...)
}
