package errors

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

// Position locates a fatal error in source text. Line and Column are
// 1-based; a zero Line means no source location applies.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// Fatal is a single fatal error. All errors in this system are fatal:
// the caller that receives one aborts the current ingestion/elaboration/
// derivation, there is no partial-result or retry path.
type Fatal struct {
	Kind    Kind
	Message string
	Pos     Position
}

func (e *Fatal) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s:%d:%d)", e.Kind, e.Message, e.Pos.Filename, e.Pos.Line, e.Pos.Column)
}

// New builds a Fatal with no source position.
func New(kind Kind, format string, args ...any) *Fatal {
	return &Fatal{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds a Fatal anchored to a source position.
func NewAt(kind Kind, pos Position, format string, args ...any) *Fatal {
	return &Fatal{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// FromParticiple converts a participle parse error into a ParseError Fatal,
// preserving the caret position participle already computed.
func FromParticiple(sourceName string, err error) *Fatal {
	pe, ok := err.(participle.Error)
	if !ok {
		return New(Parse, "%s", err)
	}
	p := pe.Position()
	return NewAt(Parse, Position{Filename: sourceName, Line: p.Line, Column: p.Column}, "%s", pe.Message())
}

// Reporter renders a Fatal as a bold coloured header, a source snippet,
// and a caret under the offending column.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders err for terminal output.
func (r *Reporter) Format(err *Fatal) string {
	bold := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", bold(string(err.Kind)), err.Message)

	if err.Pos.Line <= 0 || err.Pos.Line > len(r.lines) {
		return b.String()
	}

	fname := err.Pos.Filename
	if fname == "" {
		fname = r.filename
	}
	fmt.Fprintf(&b, " %s %s:%d:%d\n", dim("-->"), fname, err.Pos.Line, err.Pos.Column)
	fmt.Fprintf(&b, " %s\n", dim("|"))
	line := r.lines[err.Pos.Line-1]
	fmt.Fprintf(&b, " %s %s\n", dim("|"), line)
	col := err.Pos.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + bold("^")
	fmt.Fprintf(&b, " %s %s\n", dim("|"), caret)
	return b.String()
}

// Print formats and writes err through color.Error (stderr).
func Print(filename, source string, err *Fatal) {
	_, _ = fmt.Fprint(color.Error, NewReporter(filename, source).Format(err))
}
