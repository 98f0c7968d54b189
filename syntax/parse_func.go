package syntax

import (
	"strconv"

	"sablec/ast"
	"sablec/report"
)

// func_def = `func` `IDENT` `(` `)` `(` [`IDENT`] `)` `{` body `}`
func (p *Parser) parseFunction() (*ast.Function, error) {
	start := p.tok().Span
	p.next()

	// parse the function name
	if err := p.assert(TOK_IDENT); err != nil {
		return nil, err
	}

	nameTok := p.tok()
	p.next()

	// parse the parameter list
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	// parse the return-type annotation
	ret, err := p.parseReturnSpec()
	if err != nil {
		return nil, err
	}

	// parse the function body
	body, end, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		NodeBase: ast.NewNodeBaseOver(start, end),
		Name:     nameTok.Value,
		Params:   params,
		Return:   ret,
		Body:     body,
	}, nil
}

// params = `(` `)`
// The grammar only accepts an immediately-empty parameter list: any other
// parenthesized content rejects the enclosing function.
func (p *Parser) parseParams() ([]ast.Parameter, error) {
	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return nil, err
	}

	if !p.got(TOK_RPAREN) {
		return nil, p.rejectWithMsg("parameter lists must be empty")
	}

	p.next()
	return nil, nil
}

// return_spec = `(` [`IDENT`] `)`
// An empty annotation resolves to the void return type.
func (p *Parser) parseReturnSpec() (ast.ReturnSpec, error) {
	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return ast.ReturnSpec{}, err
	}

	if p.got(TOK_RPAREN) {
		p.next()
		return ast.ReturnSpec{Type: ast.TypeVoid}, nil
	}

	if err := p.assert(TOK_IDENT); err != nil {
		return ast.ReturnSpec{}, err
	}

	typeTok := p.tok()
	pt := ast.ParamTypeFromName(typeTok.Value)
	if pt == ast.TypeUnknown {
		return ast.ReturnSpec{}, report.Raise(report.ErrKindSemantic, typeTok.Span, "unknown type name: `%s`", typeTok.Value)
	}

	p.next()

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return ast.ReturnSpec{}, err
	}

	return ast.ReturnSpec{Type: pt}, nil
}

// -----------------------------------------------------------------------------

// body = `{` {expr | `SEP`} `}`
// The body loop only produces nodes for return statements and for the
// two-operand binary pattern `NUMBER OP NUMBER`; every other token yields no
// node but is remembered as the "previous token" the operator rule consults.
// An explicit end-of-input check guarantees termination on malformed input.
func (p *Parser) parseBody() ([]ast.Expr, *report.TextSpan, error) {
	if err := p.assertAndNext(TOK_LBRACE); err != nil {
		return nil, nil, err
	}

	var body []ast.Expr
	var prev *Token

	for {
		t := p.tok()

		switch t.Kind {
		case TOK_RBRACE:
			p.next()
			return body, t.Span, nil
		case TOK_EOF:
			return nil, nil, report.Raise(report.ErrKindSyntax, t.Span, "unexpected end of file in function body")
		case TOK_RETURN:
			p.next()

			value, err := p.parseOperand()
			if err != nil {
				return nil, nil, err
			}

			body = append(body, &ast.ReturnStmt{
				NodeBase: ast.NewNodeBaseOver(t.Span, value.Span()),
				Value:    value,
			})
			prev = nil
		case TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_DIV, TOK_MOD, TOK_ASSIGN:
			// The operator rule: only valid if the previous token was a number
			// literal.  Otherwise the operator is skipped like any other token.
			if prev != nil && prev.IsNumeric() {
				op := operatorPatterns[t.Kind]
				p.next()

				if !p.tok().IsNumeric() {
					return nil, nil, p.reject()
				}

				rhsTok := p.tok()
				p.next()

				body = append(body, &ast.BinaryOp{
					NodeBase: ast.NewNodeBaseOver(prev.Span, rhsTok.Span),
					Lhs:      numberLitFromToken(prev),
					Rhs:      numberLitFromToken(rhsTok),
					Op:       op,
				})
				prev = rhsTok
			} else {
				prev = t
				p.next()
			}
		default:
			prev = t
			p.next()
		}
	}
}

// operand = `NUMBER` [op `NUMBER`]
// Separator tokens before the operand are skipped.
func (p *Parser) parseOperand() (ast.Expr, error) {
	p.skipSeparators()

	if !p.tok().IsNumeric() {
		return nil, p.reject()
	}

	lhsTok := p.tok()
	p.next()

	op, isOp := operatorPatterns[p.tok().Kind]
	if !isOp {
		return numberLitFromToken(lhsTok), nil
	}

	p.next()

	if !p.tok().IsNumeric() {
		return nil, p.reject()
	}

	rhsTok := p.tok()
	p.next()

	return &ast.BinaryOp{
		NodeBase: ast.NewNodeBaseOver(lhsTok.Span, rhsTok.Span),
		Lhs:      numberLitFromToken(lhsTok),
		Rhs:      numberLitFromToken(rhsTok),
		Op:       op,
	}, nil
}

// call_expr = `IDENT` `(` `)`
// The callee identifier is already known to name a previously parsed function.
func (p *Parser) parseCall() (*ast.CallExpr, error) {
	nameTok := p.tok()
	p.next()

	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return nil, err
	}

	end := p.tok().Span
	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		NodeBase: ast.NewNodeBaseOver(nameTok.Span, end),
		Name:     nameTok.Value,
	}, nil
}

// -----------------------------------------------------------------------------

// operatorPatterns maps operator token kinds to their AST operator.
var operatorPatterns = map[int]ast.Operator{
	TOK_PLUS:   ast.OpPlus,
	TOK_MINUS:  ast.OpMinus,
	TOK_STAR:   ast.OpTimes,
	TOK_DIV:    ast.OpDivide,
	TOK_MOD:    ast.OpModulo,
	TOK_ASSIGN: ast.OpEqual,
}

// numberLitFromToken builds a number literal node from a numeric token.
func numberLitFromToken(t *Token) *ast.NumberLit {
	// strconv should always succeed (classified by the lexer)
	x, _ := strconv.ParseFloat(t.Value, 64)

	return &ast.NumberLit{
		NodeBase: ast.NewNodeBaseOn(t.Span),
		Value:    x,
	}
}
