package generate

import (
	"strings"
	"testing"

	"github.com/llir/llvm/ir"

	"sablec/ast"
	"sablec/report"
)

// testProgram builds the AST for:
//
//	func foo() (Int) { return 5 + 10 }
//	foo()
func testProgram() []ast.TopLevel {
	return []ast.TopLevel{
		&ast.Function{
			Name:   "foo",
			Return: ast.ReturnSpec{Type: ast.TypeInt},
			Body: []ast.Expr{
				&ast.ReturnStmt{
					Value: &ast.BinaryOp{
						Lhs: &ast.NumberLit{Value: 5},
						Rhs: &ast.NumberLit{Value: 10},
						Op:  ast.OpPlus,
					},
				},
			},
		},
		&ast.CallExpr{Name: "foo"},
	}
}

func generateModule(t *testing.T, program []ast.TopLevel) *ir.Module {
	t.Helper()

	mod := ir.NewModule()
	if err := NewGenerator(mod, program).Generate(); err != nil {
		t.Fatalf("Generate failed: %s", err)
	}

	return mod
}

func TestGenerate_EmittedFunctions(t *testing.T) {
	mod := generateModule(t, testProgram())

	llText := mod.String()
	for _, want := range []string{
		"define i64 @value()",
		"define i64 @foo()",
		"define i64 @main()",
		"@printf",
	} {
		if !strings.Contains(llText, want) {
			t.Fatalf("module missing %q:\n%s", want, llText)
		}
	}
}

func TestGenerate_BodyLowering(t *testing.T) {
	mod := generateModule(t, testProgram())

	llText := mod.String()
	for _, want := range []string{
		"add i64 5, 10",
		"ret i64 0",
	} {
		if !strings.Contains(llText, want) {
			t.Fatalf("module missing %q:\n%s", want, llText)
		}
	}
}

func TestGenerate_Determinism(t *testing.T) {
	first := generateModule(t, testProgram()).String()
	second := generateModule(t, testProgram()).String()

	if first != second {
		t.Fatalf("generation is not deterministic:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

func TestGenerate_UnknownCallee(t *testing.T) {
	program := []ast.TopLevel{
		&ast.CallExpr{Name: "bar"},
	}

	err := NewGenerator(ir.NewModule(), program).Generate()
	if err == nil {
		t.Fatal("expected an error for a call to an unemitted function")
	}

	cerr, ok := err.(*report.CompileError)
	if !ok {
		t.Fatalf("expected a *report.CompileError, got %T", err)
	}

	if cerr.Kind != report.ErrKindSemantic {
		t.Fatalf("wrong error kind. expected=%d, got=%d", report.ErrKindSemantic, cerr.Kind)
	}
}

func TestGenerate_TopLevelCallOrder(t *testing.T) {
	program := []ast.TopLevel{
		&ast.Function{Name: "first", Body: []ast.Expr{&ast.ReturnStmt{Value: &ast.NumberLit{Value: 1}}}},
		&ast.Function{Name: "second", Body: []ast.Expr{&ast.ReturnStmt{Value: &ast.NumberLit{Value: 2}}}},
		&ast.CallExpr{Name: "second"},
		&ast.CallExpr{Name: "first"},
	}

	llText := generateModule(t, program).String()

	secondCall := strings.Index(llText, "call i64 @second()")
	firstCall := strings.Index(llText, "call i64 @first()")

	if secondCall == -1 || firstCall == -1 {
		t.Fatalf("module missing top-level calls:\n%s", llText)
	}

	if secondCall > firstCall {
		t.Fatalf("top-level calls emitted out of declaration order:\n%s", llText)
	}
}
