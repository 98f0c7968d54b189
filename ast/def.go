package ast

// Function is an AST node for a top-level function declaration.  The declared
// name is the function's identity: call resolution looks functions up by name
// in declaration order.
type Function struct {
	NodeBase

	Name   string
	Params []Parameter
	Return ReturnSpec

	// Body is the ordered list of expressions parsed between the function's
	// braces.
	Body []Expr
}
