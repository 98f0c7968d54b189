package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llir/llvm/ir"

	"sablec/ast"
	"sablec/common"
	"sablec/generate"
	"sablec/llc"
	"sablec/mods"
	"sablec/report"
	"sablec/syntax"
	"sablec/util"
)

// Compiler represents the overall state of one compilation: a single source
// file carried through the lexing, parsing, generation, and toolchain phases.
type Compiler struct {
	// srcPath is the absolute path to the source file being compiled.
	srcPath string

	// mod is the module configuration for the source file.
	mod *mods.SableModule

	// outputPath is the user-selected output path.  If empty, output paths are
	// derived from the source path by replacing its extension.
	outputPath string

	// emitLLVM indicates compilation should stop after writing textual IR.
	emitLLVM bool

	// runAfter indicates the textual IR should be handed to the interpreter
	// once compilation succeeds.
	runAfter bool
}

// NewCompiler creates a new compiler for the given source file.
func NewCompiler(srcPath string, mod *mods.SableModule, outputPath string, emitLLVM, runAfter bool) *Compiler {
	return &Compiler{
		srcPath:    srcPath,
		mod:        mod,
		outputPath: outputPath,
		emitLLVM:   emitLLVM,
		runAfter:   runAfter,
	}
}

// Compile runs the compilation pipeline end to end and reports whether it
// succeeded.  All failures have already been displayed when it returns.
func (c *Compiler) Compile() bool {
	src, err := os.ReadFile(c.srcPath)
	if err != nil {
		report.ReportStdError(c.srcPath, err)
		return false
	}

	// tokenize the source text
	toks, err := syntax.Tokenize(string(src))
	if err != nil {
		c.reportError(err)
		return false
	}

	// parse the token sequence
	program, err := syntax.NewParser(toks).Parse()
	if err != nil {
		c.reportError(err)
		return false
	}

	if c.mod.Debug {
		report.ReportInfo("parse", "%d top-level nodes: %s", len(program),
			strings.Join(util.Map(program, topLevelName), ", "))
	}

	// generate the LLVM module
	irMod := ir.NewModule()
	if err := generate.NewGenerator(irMod, program).Generate(); err != nil {
		c.reportError(err)
		return false
	}

	return c.emitOutput(irMod)
}

// emitOutput hands the completed module to the toolchain services: textual IR
// serialization, object compilation, and interpreter execution.
func (c *Compiler) emitOutput(irMod *ir.Module) bool {
	llPath := c.derivedPath(".ll")

	if c.runAfter {
		if err := llc.WriteModule(irMod, llPath); err != nil {
			report.ReportStdError(llPath, err)
			return false
		}

		if err := llc.RunModule(c.mod.LLIPath, llPath); err != nil {
			report.ReportStdError(llPath, err)
			return false
		}

		return true
	}

	if c.emitLLVM {
		if err := llc.WriteModule(irMod, llPath); err != nil {
			report.ReportStdError(llPath, err)
			return false
		}

		report.ReportInfo("emit", "wrote `%s`", llPath)
		return true
	}

	objPath := c.derivedPath(".o")
	if err := llc.CompileModule(c.mod.LLCPath, irMod, objPath); err != nil {
		report.ReportStdError(objPath, err)
		return false
	}

	report.ReportInfo("emit", "wrote `%s`", objPath)
	return true
}

// derivedPath computes an output path with the given extension: the selected
// output path if one was given, otherwise the source path relocated to the
// module's output directory with its extension replaced.
func (c *Compiler) derivedPath(ext string) string {
	if c.outputPath != "" {
		if strings.HasSuffix(c.outputPath, ext) {
			return c.outputPath
		}

		return strings.TrimSuffix(c.outputPath, filepath.Ext(c.outputPath)) + ext
	}

	base := strings.TrimSuffix(filepath.Base(c.srcPath), common.SrcFileExtension)
	return filepath.Join(c.mod.OutputDir, base+ext)
}

// reportError displays a pipeline error, attaching source positions for
// compile errors.
func (c *Compiler) reportError(err error) {
	if cerr, ok := err.(*report.CompileError); ok {
		report.ReportCompileError(c.srcPath, cerr)
	} else {
		report.ReportStdError(c.srcPath, err)
	}
}

// topLevelName describes a top-level node for debug output.
func topLevelName(node ast.TopLevel) string {
	switch v := node.(type) {
	case *ast.Function:
		return "func " + v.Name
	case *ast.CallExpr:
		return v.Name + "()"
	default:
		return "?"
	}
}
