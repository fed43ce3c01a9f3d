/*
Package gqlerror implements the error type for syntax errors raised by the
lexer/parser (spec §7). Every syntax error is an *Error, so downstream code
(validators, executors) can type-switch on one thing, the way the teacher's
parser package has one *parser.Error for every grammar violation.
Programming-invariant violations are not *Error values: internal/invariant
reports them by panicking with a plain message string.
*/
package gqlerror

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/krotik/gqlfront/source"
)

// Error is a GraphQL error: a message plus optional source positions, AST
// node references and a free-form extensions bag (spec §7).
type Error struct {
	Message    string
	Source     *source.Source
	Positions  []int // byte offsets into Source.Body
	Locations  []source.Location
	Path       []interface{}
	Nodes      []interface{} // ast.Node, kept as interface{} to avoid an import cycle
	Original   error
	Extensions map[string]interface{}
}

// New builds a plain Error with no source position information.
func New(message string) *Error {
	return &Error{Message: message}
}

// NewAt builds an Error with a single source position, computing its
// line/column from src via GetLocation.
func NewAt(message string, src *source.Source, position int) *Error {
	e := &Error{Message: message, Source: src, Positions: []int{position}}
	if src != nil {
		e.Locations = []source.Location{src.GetLocation(position)}
	}
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Locations) > 0 {
		loc := e.Locations[0]
		fmt.Fprintf(&b, " (%s:%d:%d)", sourceName(e.Source), loc.Line, loc.Column)
	}

	return b.String()
}

// Unwrap exposes Original so errors.Is/errors.As work across the boundary.
func (e *Error) Unwrap() error {
	return e.Original
}

func sourceName(src *source.Source) string {
	if src == nil {
		return source.DefaultName
	}
	return src.Name
}

// PrintExcerpt renders the multi-line caret-underlined source excerpt
// required by spec §7: the offending line, two lines of context above and
// below, a line-number gutter, and a caret under the reported column.
func PrintExcerpt(src *source.Source, loc source.Location) string {
	if src == nil {
		return ""
	}

	lines := strings.Split(src.Body, "\n")

	// loc is in the caller's coordinate space (after LocationOffset); map
	// back to a zero-based index into the raw lines of Body.
	lineIndex := loc.Line - src.LocationOffset.Line
	if lineIndex < 0 || lineIndex >= len(lines) {
		return ""
	}

	column := loc.Column
	if lineIndex == 0 {
		column -= src.LocationOffset.Column - 1
	}

	firstLine := 0
	if lineIndex-2 > firstLine {
		firstLine = lineIndex - 2
	}

	lastLine := len(lines) - 1
	if lineIndex+2 < lastLine {
		lastLine = lineIndex + 2
	}

	pad := len(fmt.Sprint(lastLine + 1 + src.LocationOffset.Line - 1))

	var b bytes.Buffer
	for i := firstLine; i <= lastLine; i++ {
		lineNum := i + src.LocationOffset.Line
		fmt.Fprintf(&b, "%*d | %s\n", pad, lineNum, lines[i])
		if i == lineIndex {
			fmt.Fprintf(&b, "%s | %s^\n", strings.Repeat(" ", pad), strings.Repeat(" ", column-1))
		}
	}

	return b.String()
}

// Format renders the error message followed by its source excerpt, if any.
func (e *Error) Format() string {
	var b strings.Builder
	b.WriteString(e.Error())

	if e.Source != nil && len(e.Locations) > 0 {
		b.WriteString("\n\n")
		b.WriteString(PrintExcerpt(e.Source, e.Locations[0]))
	}

	return b.String()
}
