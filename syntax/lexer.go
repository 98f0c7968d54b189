package syntax

import (
	"strconv"
	"strings"
	"unicode"

	"sablec/report"
)

// Lexer is responsible for tokenizing Sable source text.  It maintains a
// cursor over the source runes along with a running line, column, and absolute
// offset which are folded into the span of every produced token.
type Lexer struct {
	src     []rune
	pos     int
	tokBuff *strings.Builder

	line, col, ofs                int
	startLine, startCol, startOfs int
}

// NewLexer creates a new lexer over the given source text.
func NewLexer(source string) *Lexer {
	return &Lexer{
		src:     []rune(source),
		tokBuff: &strings.Builder{},
	}
}

// Tokenize converts source text into a token sequence.  The end-of-input token
// that terminates lexing is not appended to the returned sequence, and runs of
// consecutive separator tokens are collapsed so callers never observe repeated
// statement terminators.
func Tokenize(source string) ([]*Token, error) {
	l := NewLexer(source)

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		if tok.Kind == TOK_EOF {
			return toks, nil
		}

		if tok.Kind == TOK_SEP && len(toks) > 0 && toks[len(toks)-1].Kind == TOK_SEP {
			continue
		}

		toks = append(toks, tok)
	}
}

// NextToken retrieves the next token from the source text.  If the text has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case ' ', '\t', '\r', '\v', '\f':
			l.skip()
		case '\n':
			return l.lexSeparator(), nil
		default:
			if kind, ok := symbolPatterns[c]; ok {
				l.mark()
				l.eat()
				return l.makeToken(kind), nil
			} else if isWordChar(c) {
				return l.lexWord(), nil
			} else {
				l.mark()
				l.eat()
				return nil, report.Raise(report.ErrKindLexical, l.getSpan(), "unrecognized character `%c`", c)
			}
		}
	}

	l.mark()
	return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps single-rune symbols to their punctuation/operator token
// kind.  Symbol matching takes precedence over all other classification.
var symbolPatterns = map[rune]int{
	'+': TOK_PLUS,
	'-': TOK_MINUS,
	'*': TOK_STAR,
	'/': TOK_DIV,
	'%': TOK_MOD,
	'=': TOK_ASSIGN,

	'(': TOK_LPAREN,
	')': TOK_RPAREN,
	'{': TOK_LBRACE,
	'}': TOK_RBRACE,
	',': TOK_COMMA,
}

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"func":   TOK_FUNC,
	"return": TOK_RETURN,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
}

// lexSeparator lexes a statement separator.  Consecutive newlines are consumed
// as a single separator token.
func (l *Lexer) lexSeparator() *Token {
	l.mark()
	l.skip()

	for {
		c := l.peek()
		if c != '\n' && c != '\r' {
			break
		}

		l.skip()
	}

	return l.makeToken(TOK_SEP)
}

// lexWord lexes a maximal run of word characters and classifies it as a
// keyword, a numeric literal, or an identifier, in that order.
func (l *Lexer) lexWord() *Token {
	l.mark()
	l.eat()

	for isWordChar(l.peek()) {
		l.eat()
	}

	word := l.tokBuff.String()

	if kind, ok := keywordPatterns[word]; ok {
		return l.makeToken(kind)
	}

	if _, err := strconv.ParseInt(word, 10, 64); err == nil {
		return l.makeToken(TOK_INTLIT)
	}

	if _, err := strconv.ParseFloat(word, 64); err == nil {
		return l.makeToken(TOK_FLOATLIT)
	}

	return l.makeToken(TOK_IDENT)
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start position to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
	l.startOfs = l.ofs
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine:   l.startLine,
		StartCol:    l.startCol,
		EndLine:     l.line,
		EndCol:      l.col,
		StartOffset: l.startOfs,
		EndOffset:   l.ofs,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.  If the lexer is at the end of the source, -1 is returned.
func (l *Lexer) eat() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	c := l.src[l.pos]
	l.pos++
	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer is at the end of the source, -1 is returned.
func (l *Lexer) skip() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	c := l.src[l.pos]
	l.pos++
	l.updatePos(c)

	return c
}

// peek returns the next rune without moving the lexer forward.  If the lexer
// is at the end of the source, -1 is returned.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	return l.src[l.pos]
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	l.ofs++

	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isWordChar returns whether c can be part of a keyword, numeric literal, or
// identifier.
func isWordChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.'
}
