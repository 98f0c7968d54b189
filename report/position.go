package report

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in a Sable program.  Text
// spans are inclusive on both sides: the starting position is the position of
// the first character in the span and the ending position is the position of
// the last character in the span.  The line and column numbers are
// zero-indexed.  The offsets are absolute rune offsets from the start of the
// source text.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int

	// The absolute rune offsets bounding the text span.
	StartOffset, EndOffset int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine:   start.StartLine,
		StartCol:    start.StartCol,
		EndLine:     end.EndLine,
		EndCol:      end.EndCol,
		StartOffset: start.StartOffset,
		EndOffset:   end.EndOffset,
	}
}
