package generate

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"sablec/ast"
)

// Generator is responsible for converting a parsed Sable program into LLVM IR.
// The module is externally owned: the generator only appends functions and
// instructions to it and never inspects or re-reads what it has emitted.
// Generation is a pure function of the AST: identical programs emitted into
// freshly constructed modules produce structurally identical IR.
type Generator struct {
	// program is the ordered list of top-level nodes being lowered.
	program []ast.TopLevel

	// mod is the LLVM module being generated.
	mod *ir.Module

	// funcTable maps emitted function names to their native handles.  It is
	// scoped to one generation run.  Every declared function must be recorded
	// here before any call referencing it is lowered.
	funcTable map[string]*ir.Func

	// enclosingFunc is the function enclosing the block being generated.
	enclosingFunc *ir.Func

	// block stores the current block being generated.
	block *ir.Block

	// globalCounter is a counter used to name anonymous globals such as those
	// for interned strings.
	globalCounter int
}

// NewGenerator creates a new generator emitting the given program into the
// given module.
func NewGenerator(mod *ir.Module, program []ast.TopLevel) *Generator {
	return &Generator{
		program:   program,
		mod:       mod,
		funcTable: make(map[string]*ir.Func),
	}
}

// Generate runs the main generation algorithm: the fixed `value` helper is
// emitted first, then every declared function in source order, then the
// program entry point.  The emission order is part of the observable output
// and must not change.
func (g *Generator) Generate() error {
	g.genValueHelper()

	for _, node := range g.program {
		if fn, ok := node.(*ast.Function); ok {
			if err := g.genFunction(fn); err != nil {
				return err
			}
		}
	}

	return g.genMain()
}

// -----------------------------------------------------------------------------

// setBlock positions the generator at the entry block of a function.
func (g *Generator) setBlock(fn *ir.Func) {
	g.enclosingFunc = fn
	g.block = fn.NewBlock("entry")
}

// genValueHelper emits the fixed `value` helper function which unconditionally
// returns a constant integer.  It always exists regardless of program content
// and is called from the entry point.
func (g *Generator) genValueHelper() {
	fn := g.mod.NewFunc("value", types.I64)
	g.setBlock(fn)
	g.block.NewRet(constant.NewInt(types.I64, 100))

	g.funcTable["value"] = fn
}
