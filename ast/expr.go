package ast

// Expr represents an expression in a function body.  The set of implementing
// node kinds is closed: expression trees are finite, acyclic, and each
// non-leaf node exclusively owns its children.
type Expr interface {
	Node

	expr()
}

func (n *NumberLit) expr()  {}
func (b *BinaryOp) expr()   {}
func (r *ReturnStmt) expr() {}
func (c *CallExpr) expr()   {}

// -----------------------------------------------------------------------------

// Operator is the closed set of binary operators.
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpTimes
	OpDivide
	OpModulo
	OpEqual
)

func (op Operator) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpEqual:
		return "="
	default:
		return "?"
	}
}

// -----------------------------------------------------------------------------

// NumberLit is a numeric literal.  All numeric values are carried as doubles
// regardless of how code generation ultimately materializes them.
type NumberLit struct {
	NodeBase

	Value float64
}

// BinaryOp is the application of a binary operator to two operand expressions.
type BinaryOp struct {
	NodeBase

	Lhs, Rhs Expr
	Op       Operator
}

// ReturnStmt wraps the expression whose value a function returns.
type ReturnStmt struct {
	NodeBase

	Value Expr
}

// CallExpr is a zero-argument call of a declared function.  Args is always
// empty in the current grammar but kept so the node shape can grow arguments.
type CallExpr struct {
	NodeBase

	Name string
	Args []Expr
}
