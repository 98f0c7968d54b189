package generate

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"sablec/ast"
	"sablec/report"
)

// genExpr lowers a body expression to an LLVM value in the current block.  All
// arithmetic is carried out on 64-bit integers to match the fixed function
// signature.
func (g *Generator) genExpr(expr ast.Expr) (value.Value, error) {
	switch v := expr.(type) {
	case *ast.NumberLit:
		return constant.NewInt(types.I64, int64(v.Value)), nil
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	case *ast.ReturnStmt:
		val, err := g.genExpr(v.Value)
		if err != nil {
			return nil, err
		}

		g.block.NewRet(val)
		return val, nil
	case *ast.CallExpr:
		callee, err := g.lookupFunc(v)
		if err != nil {
			return nil, err
		}

		return g.block.NewCall(callee), nil
	}

	return nil, report.Raise(report.ErrKindSemantic, expr.Span(), "expression cannot be lowered")
}

// genBinaryOp lowers a binary operator application.
func (g *Generator) genBinaryOp(bop *ast.BinaryOp) (value.Value, error) {
	lhs, err := g.genExpr(bop.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := g.genExpr(bop.Rhs)
	if err != nil {
		return nil, err
	}

	switch bop.Op {
	case ast.OpPlus:
		return g.block.NewAdd(lhs, rhs), nil
	case ast.OpMinus:
		return g.block.NewSub(lhs, rhs), nil
	case ast.OpTimes:
		return g.block.NewMul(lhs, rhs), nil
	case ast.OpDivide:
		return g.block.NewSDiv(lhs, rhs), nil
	case ast.OpModulo:
		return g.block.NewSRem(lhs, rhs), nil
	case ast.OpEqual:
		cmp := g.block.NewICmp(enum.IPredEQ, lhs, rhs)
		return g.block.NewZExt(cmp, types.I64), nil
	}

	return nil, report.Raise(report.ErrKindSemantic, bop.Span(), "unsupported operator: `%s`", bop.Op)
}

// lookupFunc resolves a call's callee in the emitted-function table.  A callee
// that was never emitted is a semantic error, not a fatal lookup.
func (g *Generator) lookupFunc(call *ast.CallExpr) (value.Value, error) {
	if callee, ok := g.funcTable[call.Name]; ok {
		return callee, nil
	}

	return nil, report.Raise(report.ErrKindSemantic, call.Span(), "call to unknown function: `%s`", call.Name)
}

// genStringLit interns a global string constant and yields a pointer to its
// first byte.
func (g *Generator) genStringLit(lit string) value.Value {
	strLit := g.mod.NewGlobalDef(fmt.Sprintf("__strlit.%d", g.globalCounter), constant.NewCharArrayFromString(lit+"\x00"))
	g.globalCounter++

	zero := constant.NewInt(types.I32, 0)
	return g.block.NewGetElementPtr(strLit.Typ.ElemType, strLit, zero, zero)
}
