package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"nac/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a diagnostic ready for rendering
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // E0100 and friends
	Message     string       // Primary message
	Position    ast.Position // Location in source
	Length      int          // Width of the underline in runes
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a hint attached to a diagnostic
type Suggestion struct {
	Message     string
	Replacement string // optional replacement text shown beneath the hint
}

// ErrorReporter renders diagnostics against the source they came from
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatParseError renders any error. Errors produced by the front end get
// the full source excerpt; anything else is printed on a single line.
func (er *ErrorReporter) FormatParseError(err error) string {
	if pe, ok := AsParseError(err); ok {
		return er.FormatError(FromParseError(pe))
	}
	return fmt.Sprintf("%s: %s\n", levelStyle(Error)(string(Error)), err)
}

// FormatError formats a diagnostic with a source excerpt, an underline and any hints
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var out strings.Builder

	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	header := levelStyle(err.Level)(string(err.Level))
	if err.Code != "" {
		header += "[" + err.Code + "]"
	}
	fmt.Fprintf(&out, "%s: %s\n", header, err.Message)

	pos := err.Position
	width := gutterWidth(pos.Line + 1)
	pad := strings.Repeat(" ", width)
	bar := dim("│")

	if !pos.IsValid() {
		fmt.Fprintf(&out, "%s %s %s\n\n", pad, dim("-->"), er.filename)
		return out.String()
	}

	fmt.Fprintf(&out, "%s %s %s:%d:%d\n", pad, dim("-->"), er.filename, pos.Line, pos.Column)
	fmt.Fprintf(&out, "%s %s\n", pad, bar)

	if text, ok := er.line(pos.Line - 1); ok {
		fmt.Fprintf(&out, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, pos.Line-1)), bar, text)
	}
	if text, ok := er.line(pos.Line); ok {
		fmt.Fprintf(&out, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, pos.Line)), bar, text)
		fmt.Fprintf(&out, "%s %s %s\n", pad, bar, marker(text, pos.Column, err.Length, err.Level))
	}
	if text, ok := er.line(pos.Line + 1); ok {
		fmt.Fprintf(&out, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, pos.Line+1)), bar, text)
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	for i, s := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&out, "%s %s\n", pad, bar)
			fmt.Fprintf(&out, "%s %s: %s\n", pad, cyan("help"), s.Message)
		} else {
			fmt.Fprintf(&out, "%s       %s\n", pad, s.Message)
		}
		if s.Replacement != "" {
			for _, l := range strings.Split(s.Replacement, "\n") {
				fmt.Fprintf(&out, "%s %s %s\n", pad, cyan("│"), cyan(l))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&out, "%s %s %s %s\n", pad, bar, noteColor("note:"), note)
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&out, "%s %s %s %s\n", pad, bar, helpColor("help:"), err.HelpText)
	}

	out.WriteString("\n")
	return out.String()
}

// line returns the 1-based source line n
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return strings.TrimRight(er.lines[n-1], "\r"), true
}

func levelStyle(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// marker underlines length runes starting at column, clamped to the line.
// Tabs before the column are preserved so the caret lines up.
func marker(text string, column, length int, level ErrorLevel) string {
	runes := []rune(text)
	column = max(1, column)
	length = max(1, length)
	if room := len(runes) - (column - 1); room > 0 && length > room {
		length = room
	}

	var lead strings.Builder
	for i := 0; i < column-1; i++ {
		if i < len(runes) && runes[i] == '\t' {
			lead.WriteByte('\t')
		} else {
			lead.WriteByte(' ')
		}
	}
	return lead.String() + levelStyle(level)(strings.Repeat("^", length))
}

// gutterWidth is the width of the line-number column, at least 3
func gutterWidth(line int) int {
	return max(3, len(strconv.Itoa(line)))
}
