package report

import "fmt"

// Enumeration of compile error kinds.  Each kind corresponds to a pipeline
// stage that can reject the translation unit.
const (
	ErrKindLexical  = iota // Unrecognized characters, malformed literals.
	ErrKindSyntax          // Structural failures: a required token is absent.
	ErrKindSemantic        // Unknown callees, invalid type names.
)

// errKindLabels maps error kinds to the labels used when displaying them.
var errKindLabels = map[int]string{
	ErrKindLexical:  "lexical error",
	ErrKindSyntax:   "syntax error",
	ErrKindSemantic: "semantic error",
}

// CompileError is an error produced by a stage of the compilation pipeline in
// response to erroneous input code.  It carries the kind of failure and the
// span of source text that triggered it so the caller can decide how to
// surface it.
type CompileError struct {
	// The kind of the error.  This must be one of the enumerated error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil if no position
	// information is available.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// KindLabel returns the display label for the error's kind.
func (ce *CompileError) KindLabel() string {
	return errKindLabels[ce.Kind]
}

// Raise creates a new compile error of the given kind over the given span.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}
