package report

import (
	"fmt"
	"os"
)

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The srcPath is the path to the erroneous source file.  The error's span may
// be nil in which case no position information is printed.
func ReportCompileError(srcPath string, cerr *CompileError) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayCompileMessage(cerr.KindLabel(), srcPath, cerr.Span, cerr.Message)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(srcPath string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayStdError(srcPath, err)
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  They are expected errors that generally
// result from invalid configuration of some form: a missing module file, a
// missing `llc` binary, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportInfo reports an informational message.  These messages are only
// displayed at the verbose log level.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel >= LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}
