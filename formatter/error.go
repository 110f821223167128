package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/exprify/parser"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	kindStyle    = color.New(color.FgYellow, color.Bold)
	sourceStyle  = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// FormatError renders err for the user. A parse error is shown with the
// offending line of input and a caret under the failing position:
//
//	error: Unterminated phrase
//	 --> query:1:5
//	  |
//	1 | foo "bar
//	  |     ^ UnterminatedPhrase
//
// Other errors are rendered as a single line.
func FormatError(source, input string, err error) string {
	if err == nil {
		return ""
	}

	var perr *parser.Error
	if !errors.As(err, &perr) {
		return errorStyle.Sprint("error: ") + messageStyle.Sprintf("%s\n", err)
	}

	lineNum, column, line := locate(input, perr.Pos)
	lineNumStr := fmt.Sprintf("%d", lineNum)
	padding := strings.Repeat(" ", len(lineNumStr))

	var b strings.Builder
	b.WriteString(errorStyle.Sprint("error: "))
	b.WriteString(messageStyle.Sprintf("%s\n", perr.Msg))
	b.WriteString(lineStyle.Sprintf("%s--> ", padding))
	b.WriteString(sourceStyle.Sprintf("%s:%d:%d\n", source, lineNum, column))
	b.WriteString(lineStyle.Sprintf("%s |\n", padding))
	b.WriteString(lineStyle.Sprintf("%s | ", lineNumStr))
	b.WriteString(expandTabs(line) + "\n")
	b.WriteString(lineStyle.Sprintf("%s | ", padding))
	b.WriteString(strings.Repeat(" ", calculateVisualColumn(line, column)))
	b.WriteString(kindStyle.Sprintf("^ %s\n", perr.Kind))
	return b.String()
}

// locate returns the 1-based line and byte column of offset in input along
// with the text of that line.
func locate(input string, offset int) (lineNum, column int, line string) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}

	start := strings.LastIndexByte(input[:offset], '\n') + 1
	end := strings.IndexByte(input[start:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += start
	}

	lineNum = strings.Count(input[:start], "\n") + 1
	column = offset - start + 1
	line = strings.TrimSuffix(input[start:end], "\r")
	return lineNum, column, line
}

func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
			column += spaceCount
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// calculateVisualColumn converts a 1-based byte column into the number of
// cells before it, taking into account tab characters.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
