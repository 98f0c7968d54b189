package generate

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"sablec/ast"
)

// genFunction lowers a declared function.  Every function is emitted with the
// same fixed signature: zero parameters and a 64-bit integer return type.  The
// parameter and return types carried in the AST are not consulted here.  The
// function's native handle is recorded in the emitted-function table under its
// declared name.
func (g *Generator) genFunction(fn *ast.Function) error {
	llFunc := g.mod.NewFunc(fn.Name, types.I64)
	g.setBlock(llFunc)

	terminated := false
	for _, expr := range fn.Body {
		if ret, ok := expr.(*ast.ReturnStmt); ok {
			val, err := g.genExpr(ret.Value)
			if err != nil {
				return err
			}

			g.block.NewRet(val)
			terminated = true
			break
		}

		// non-return expressions are evaluated for their side effects only
		if _, err := g.genExpr(expr); err != nil {
			return err
		}
	}

	// a body with no return statement falls back to returning zero
	if !terminated {
		g.block.NewRet(constant.NewInt(types.I64, 0))
	}

	g.funcTable[fn.Name] = llFunc
	return nil
}
