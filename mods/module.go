package mods

import (
	"path/filepath"
	"strings"

	"sablec/common"
)

// SableModule is the in-memory form of a Sable project: the source file being
// compiled plus the configuration loaded from its module file, if one exists.
type SableModule struct {
	// Name is the module name.  Defaults to the source file name without its
	// extension.
	Name string

	// ModuleRoot is the directory enclosing the module file and source.
	ModuleRoot string

	// OutputDir is the directory compilation output is written to.  Defaults
	// to the module root.
	OutputDir string

	// LLCPath and LLIPath locate the LLVM toolchain binaries.  They default to
	// the bare binary names, resolved through PATH.
	LLCPath, LLIPath string

	// Debug indicates whether the compiler should emit extra diagnostics.
	Debug bool
}

// DefaultModule builds the module configuration used when no module file is
// present: every path is derived from the source file path.
func DefaultModule(srcPath string) *SableModule {
	root := filepath.Dir(srcPath)

	return &SableModule{
		Name:       strings.TrimSuffix(filepath.Base(srcPath), common.SrcFileExtension),
		ModuleRoot: root,
		OutputDir:  root,
		LLCPath:    "llc",
		LLIPath:    "lli",
	}
}
