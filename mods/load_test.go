package mods

import (
	"os"
	"path/filepath"
	"testing"

	"sablec/common"
)

func writeModuleFile(t *testing.T, dir, contents string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(contents), 0666); err != nil {
		t.Fatalf("failed to write module file: %s", err)
	}
}

func TestLoadModule_Defaults(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "hello"+common.SrcFileExtension)

	mod, err := LoadModule(srcPath)
	if err != nil {
		t.Fatalf("LoadModule failed: %s", err)
	}

	if mod.Name != "hello" {
		t.Fatalf("module name wrong. expected=%q, got=%q", "hello", mod.Name)
	}

	if mod.ModuleRoot != dir || mod.OutputDir != dir {
		t.Fatalf("module paths wrong. got root=%q output=%q", mod.ModuleRoot, mod.OutputDir)
	}

	if mod.LLCPath != "llc" || mod.LLIPath != "lli" {
		t.Fatalf("toolchain paths wrong. got llc=%q lli=%q", mod.LLCPath, mod.LLIPath)
	}

	if mod.Debug {
		t.Fatal("debug should default to false")
	}
}

func TestLoadModule_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeModuleFile(t, dir, `
[module]
name = "greeter"
sable-version = "`+common.SableVersion+`"
output = "out"
llc = "/usr/lib/llvm/bin/llc"
debug = true
`)

	mod, err := LoadModule(filepath.Join(dir, "hello"+common.SrcFileExtension))
	if err != nil {
		t.Fatalf("LoadModule failed: %s", err)
	}

	if mod.Name != "greeter" {
		t.Fatalf("module name wrong. expected=%q, got=%q", "greeter", mod.Name)
	}

	if mod.OutputDir != filepath.Join(dir, "out") {
		t.Fatalf("output dir wrong. got=%q", mod.OutputDir)
	}

	if mod.LLCPath != "/usr/lib/llvm/bin/llc" {
		t.Fatalf("llc path wrong. got=%q", mod.LLCPath)
	}

	// lli was not configured so the default survives
	if mod.LLIPath != "lli" {
		t.Fatalf("lli path wrong. got=%q", mod.LLIPath)
	}

	if !mod.Debug {
		t.Fatal("debug flag not loaded")
	}
}

func TestLoadModule_VersionMismatch(t *testing.T) {
	dir := t.TempDir()
	writeModuleFile(t, dir, `
[module]
name = "greeter"
sable-version = "9.9.0"
`)

	if _, err := LoadModule(filepath.Join(dir, "hello"+common.SrcFileExtension)); err == nil {
		t.Fatal("expected an error for a version mismatch")
	}
}

func TestLoadModule_MissingName(t *testing.T) {
	dir := t.TempDir()
	writeModuleFile(t, dir, "[module]\ndebug = true\n")

	if _, err := LoadModule(filepath.Join(dir, "hello"+common.SrcFileExtension)); err == nil {
		t.Fatal("expected an error for a missing module name")
	}
}

func TestMajorMinor(t *testing.T) {
	tests := []struct {
		version  string
		expected string
	}{
		{"0.1.0", "0.1"},
		{"0.1", "0.1"},
		{"1", "1"},
		{"2.3.4-beta", "2.3"},
	}

	for i, tt := range tests {
		if got := majorMinor(tt.version); got != tt.expected {
			t.Fatalf("tests[%d] - prefix wrong for %q. expected=%q, got=%q", i, tt.version, tt.expected, got)
		}
	}
}
