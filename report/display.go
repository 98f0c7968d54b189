package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	InfoColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("fatal error")
	ErrorColorFG.Println(" " + message)
}

// displayInfo displays an informational message with a tag.
func displayInfo(tag, message string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + message)
}

// displayStdError displays a standard Go error.
func displayStdError(srcPath string, err error) {
	ErrorStyleBG.Print("error")
	ErrorColorFG.Printf(" %s: %s\n", srcPath, err)
}

// displayCompileMessage displays a compilation error.  The label is the string
// to prefix the message with: eg. "syntax error".
func displayCompileMessage(label, srcPath string, span *TextSpan, message string) {
	if span == nil {
		ErrorStyleBG.Print(label)
		ErrorColorFG.Printf(" %s: %s\n\n", srcPath, message)
	} else {
		ErrorStyleBG.Print(label)
		ErrorColorFG.Printf(" %s:%d:%d: %s\n\n", srcPath, span.StartLine+1, span.StartCol+1, message)
		displaySourceText(srcPath, span)
	}
}

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(srcPath string, span *TextSpan) {
	// Open the file so we can read the desired source text.  If the source is
	// not available on disk, the message alone has to suffice.
	file, err := os.Open(srcPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar.
		fmt.Printf(lineNumFmtStr, i+span.StartLine+1)

		// Print the source text with the leading indent trimmed off.
		fmt.Println(line[minIndent:])

		// Print the line and bar used for the line for caret underlining.
		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// The number of spaces before caret underlining begins.  For any line
		// which is not the starting line, this is always zero since the
		// underlining is always continuing from the previous line.
		var caretPrefixCount int
		if i == 0 {
			caretPrefixCount = span.StartCol - minIndent
		}

		// The number of characters at the end of the source line that should
		// not be underlined.  Nonzero only on the last line.
		var caretSuffixCount int
		if i == len(lines)-1 {
			caretSuffixCount = len(line) - span.EndCol
		}

		fmt.Print(strings.Repeat(" ", caretPrefixCount))

		caretCount := len(line) - caretSuffixCount - caretPrefixCount - minIndent
		if caretCount < 1 {
			caretCount = 1
		}
		fmt.Println(strings.Repeat("^", caretCount))
	}

	fmt.Println()
}
