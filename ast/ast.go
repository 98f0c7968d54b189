package ast

import "sablec/report"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Span returns the text span of the node.
	Span() *report.TextSpan
}

// NodeBase is a utility base struct for all AST nodes.
type NodeBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewNodeBaseOn creates a new node base with the given span.
func NewNodeBaseOn(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextSpan) NodeBase {
	return NodeBase{span: report.NewSpanOver(start, end)}
}

func (nb NodeBase) Span() *report.TextSpan {
	return nb.span
}

// TopLevel is the closed set of nodes that may appear at the top level of a
// Sable program: function declarations and bare call expressions.  Top-level
// calls are executed in declaration order after all functions are emitted.
type TopLevel interface {
	Node

	topLevel()
}

func (f *Function) topLevel() {}
func (c *CallExpr) topLevel() {}
