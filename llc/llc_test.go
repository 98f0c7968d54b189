package llc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llir/llvm/ir"

	"sablec/ast"
	"sablec/generate"
)

func TestWriteModule(t *testing.T) {
	mod := ir.NewModule()
	program := []ast.TopLevel{
		&ast.Function{
			Name: "foo",
			Body: []ast.Expr{&ast.ReturnStmt{Value: &ast.NumberLit{Value: 5}}},
		},
	}

	if err := generate.NewGenerator(mod, program).Generate(); err != nil {
		t.Fatalf("Generate failed: %s", err)
	}

	llPath := filepath.Join(t.TempDir(), "foo.ll")
	if err := WriteModule(mod, llPath); err != nil {
		t.Fatalf("WriteModule failed: %s", err)
	}

	buff, err := os.ReadFile(llPath)
	if err != nil {
		t.Fatalf("failed to read written IR: %s", err)
	}

	llText := string(buff)
	for _, want := range []string{
		"define i64 @foo()",
		"define i64 @main()",
	} {
		if !strings.Contains(llText, want) {
			t.Fatalf("written IR missing %q:\n%s", want, llText)
		}
	}
}

func TestWriteModule_Truncates(t *testing.T) {
	llPath := filepath.Join(t.TempDir(), "foo.ll")
	if err := os.WriteFile(llPath, []byte(strings.Repeat("x", 4096)), 0666); err != nil {
		t.Fatalf("failed to seed output file: %s", err)
	}

	if err := WriteModule(ir.NewModule(), llPath); err != nil {
		t.Fatalf("WriteModule failed: %s", err)
	}

	buff, err := os.ReadFile(llPath)
	if err != nil {
		t.Fatalf("failed to read written IR: %s", err)
	}

	if strings.Contains(string(buff), "xxxx") {
		t.Fatal("stale output file contents survived the write")
	}
}
