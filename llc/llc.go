// Package llc is the narrow boundary between the compiler core and the LLVM
// toolchain binaries.  The core treats "emit object code" and "run the
// program" as opaque services: it never interprets the tools' output beyond
// surfacing their errors.
package llc

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/llir/llvm/ir"
)

// WriteModule writes the textual IR of a module to a file.
func WriteModule(mod *ir.Module, path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(mod.String())
	return err
}

// CompileModule takes an LLVM module and an output path and attempts to
// compile it to a relocatable object file using LLC.  The textual IR is
// written next to the object file with the extension replaced.
func CompileModule(llcPath string, mod *ir.Module, objPath string) error {
	modFilePath := objPath[:len(objPath)-2] + ".ll"
	if err := WriteModule(mod, modFilePath); err != nil {
		return err
	}

	llc := exec.Command(llcPath, "-filetype", "obj", "-o", objPath, modFilePath)
	stderrBuff := bytes.Buffer{}
	llc.Stderr = &stderrBuff

	if err := llc.Run(); err != nil {
		return errors.New(stderrBuff.String())
	}

	return nil
}

// RunModule launches the LLI interpreter on a textual IR file.  The launch is
// fire-and-forget: the interpreter inherits the compiler's standard streams
// and the compiler does not wait on or inspect its exit status.
func RunModule(lliPath, irPath string) error {
	lli := exec.Command(lliPath, irPath)
	lli.Stdout = os.Stdout
	lli.Stderr = os.Stderr

	return lli.Start()
}
