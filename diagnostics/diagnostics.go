/*
File    : loxwalk/diagnostics/diagnostics.go

Package diagnostics implements the phase-scoped error reporting contract:
each phase (lex/parse/runtime) accumulates a Report of Diagnostic values,
printed with the "<Phase> produced N error[s]:" header the driver and REPL
both use.
*/
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Phase names a pipeline stage whose diagnostics are reported together.
type Phase string

const (
	Lex     Phase = "Lexing"
	Parse   Phase = "Parsing"
	Runtime Phase = "Evaluation"
)

// Diagnostic is a single user-facing message with optional source
// coordinates. Line/Column are zero when unavailable.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
}

// New builds a Diagnostic with source coordinates.
func New(message string, line, column int) Diagnostic {
	return Diagnostic{Message: message, Line: line, Column: column}
}

// Without builds a Diagnostic with no known source coordinates.
func Without(message string) Diagnostic {
	return Diagnostic{Message: message}
}

func (d Diagnostic) String() string {
	if d.Line == 0 && d.Column == 0 {
		return d.Message
	}
	return fmt.Sprintf("%s => line %d | column %d", d.Message, d.Line, d.Column)
}

// Report is an ordered collection of diagnostics for a single phase.
type Report struct {
	Phase       Phase
	Diagnostics []Diagnostic
}

func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

func (r *Report) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Format renders the report in the driver's canonical shape:
//
//	<Phase> produced N error[s]:
//	    ERROR: <msg>
func (r *Report) Format() string {
	var b strings.Builder
	plural := "errors"
	if len(r.Diagnostics) == 1 {
		plural = "error"
	}
	fmt.Fprintf(&b, "%s produced %d %s:\n", r.Phase, len(r.Diagnostics), plural)
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "    ERROR: %s\n", d)
	}
	return b.String()
}

var errorColor = color.New(color.FgRed)

// Print writes the formatted report to w in red.
func (r *Report) Print(w io.Writer) {
	errorColor.Fprint(w, r.Format())
}
