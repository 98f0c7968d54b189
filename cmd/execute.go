// Package cmd is the top-level "driver" package for the Sable compiler: it
// contains the functionality for parsing command-line arguments, managing
// compiler state, and running all the phases of the compiler.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"sablec/common"
	"sablec/mods"
	"sablec/report"
)

// Execute runs the main `sablec` application and returns its exit code.
func Execute() int {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("sablec", "sablec is the compiler for the Sable language", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file to an object file", true)
	buildCmd.AddPrimaryArg("src-path", "the path to the source file to build", true)
	buildCmd.AddStringArg("outpath", "o", "the path for compilation output", false)
	buildCmd.AddFlag("emit-llvm", "el", "stop after writing textual LLVM IR")

	runCmd := cli.AddSubcommand("run", "compile a source file and hand it to the IR interpreter", true)
	runCmd.AddPrimaryArg("src-path", "the path to the source file to run", true)

	cli.AddSubcommand("version", "print the Sable version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportStdError("sablec", err)
		return 1
	}

	initLogLevel(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, false)
	case "run":
		return execBuildCommand(subResult, true)
	case "version":
		fmt.Println("sablec " + common.SableVersion)
	}

	return 0
}

// initLogLevel initializes the global reporter from the log level argument.
func initLogLevel(level string) {
	switch level {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	case "warn":
		report.InitReporter(report.LogLevelWarn)
	default:
		report.InitReporter(report.LogLevelVerbose)
	}
}

// execBuildCommand executes the build or run subcommand and handles all of the
// errors related to them.
func execBuildCommand(result *olive.ArgParseResult, runAfter bool) int {
	srcRelPath, _ := result.PrimaryArg()

	srcAbsPath, err := filepath.Abs(srcRelPath)
	if err != nil {
		report.ReportStdError(srcRelPath, err)
		return 1
	}

	if filepath.Ext(srcAbsPath) != common.SrcFileExtension {
		report.ReportFatal("source file must have the `%s` extension: %s", common.SrcFileExtension, srcAbsPath)
	}

	// load the module configuration for the source file
	mod, err := mods.LoadModule(srcAbsPath)
	if err != nil {
		report.ReportStdError(srcAbsPath, err)
		return 1
	}

	outputPath := ""
	if outArgVal, ok := result.Arguments["outpath"]; ok {
		outputPath = outArgVal.(string)
	}

	emitLLVM := false
	if !runAfter {
		emitLLVM = result.HasFlag("emit-llvm")
	}

	// build the project
	c := NewCompiler(srcAbsPath, mod, outputPath, emitLLVM, runAfter)
	if c.Compile() {
		return 0
	}

	return 1
}
