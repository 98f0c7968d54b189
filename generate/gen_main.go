package generate

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"sablec/ast"
)

// genMain emits the program entry point.  The entry point prints a greeting
// and a completion message, exercises the `value` helper through a
// store/reload round trip, then executes every top-level call expression in
// declaration order, printing each result.  The instruction order is part of
// the observable output and must not change.
func (g *Generator) genMain() error {
	mainFunc := g.mod.NewFunc("main", types.I64)

	printf := g.getPrintf()

	g.setBlock(mainFunc)

	g.block.NewCall(printf, g.genStringLit("hello from sable\n"))
	g.block.NewCall(printf, g.genStringLit("compilation finished\n"))

	// call the always-present `value` helper, store its result, and reload it
	// before printing
	valueResult := g.block.NewCall(g.funcTable["value"])
	slot := g.block.NewAlloca(types.I64)
	g.block.NewStore(valueResult, slot)
	loaded := g.block.NewLoad(types.I64, slot)
	g.block.NewCall(printf, g.genStringLit("value() = %ld\n"), loaded)

	// execute the top-level call expressions in declaration order
	for _, node := range g.program {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			continue
		}

		callee, err := g.lookupFunc(call)
		if err != nil {
			return err
		}

		result := g.block.NewCall(callee)
		g.block.NewCall(printf, g.genStringLit(fmt.Sprintf("%s() = %%ld\n", call.Name)), result)
	}

	g.block.NewRet(constant.NewInt(types.I64, 0))
	return nil
}

// getPrintf resolves the variadic external formatted-output function.  If the
// module already declares `printf`, its handle is reused; otherwise one is
// declared and cached in the emitted-function table.
func (g *Generator) getPrintf() *ir.Func {
	if printf, ok := g.funcTable["printf"]; ok {
		return printf
	}

	for _, fn := range g.mod.Funcs {
		if fn.Name() == "printf" {
			g.funcTable["printf"] = fn
			return fn
		}
	}

	printf := g.mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	g.funcTable["printf"] = printf
	return printf
}
