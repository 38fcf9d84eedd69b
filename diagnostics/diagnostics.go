// Package diagnostics implements the (severity, span, message) sink the
// parser reports through. It is grounded on the teacher parser's
// syntax.SyntaxError (github.com/boergens/gotypst, syntax/node.go and
// syntax/error.go): a message plus a list of hints, reported at a span.
package diagnostics

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"

	"github.com/langkit/scalaparse/source"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported triple, plus the hints a production attached
// to it — several pattern-grammar errors (e.g. sequence-wildcard misuse)
// report one or more remediation hints alongside the message.
type Diagnostic struct {
	Severity Severity
	Span     source.Origin
	Message  string
	Hints    []string
}

// AddHint appends a hint to the diagnostic (used by productions such as the
// sequence-wildcard misuse checks in parser/pattern.go).
func (d *Diagnostic) AddHint(hint string) {
	d.Hints = append(d.Hints, hint)
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
}

// Sink is the injected collaborator every Diagnostic is emitted to.
type Sink interface {
	Report(d *Diagnostic)
}

// MemorySink is the default Sink: it simply accumulates every reported
// Diagnostic, the way a CLI driver or test harness wants to inspect them
// afterwards.
type MemorySink struct {
	Diagnostics []*Diagnostic
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Report(d *Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// HasErrors reports whether any Error-severity diagnostic was reported.
func (s *MemorySink) HasErrors() bool {
	for _, d := range s.Diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the Error-severity diagnostics, in report order.
func (s *MemorySink) Errors() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range s.Diagnostics {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// IllegalCharMessage formats a "disallowed character" message naming the
// Unicode code point, following the teacher lexer's error-reporting style
// (syntax/unicode.go's GetScript, which resolves a rune's Unicode name via
// golang.org/x/text/unicode/runenames). Cursor.Unexpected calls this for a
// token.Illegal token's stored byte rather than reporting the bare token
// kind.
func IllegalCharMessage(c rune) string {
	name := runenames.Name(c)
	if name == "" {
		name = "UNKNOWN"
	}
	return fmt.Sprintf("character %q (U+%04X %s) is not valid here", c, c, name)
}

// ParseError is an error value wrapping the first Error-severity Diagnostic
// collected during a failed parse, plus all of them. The parser's entry
// points do not return it (they report to a Sink and return a tree), and
// the CLI does not construct it.
type ParseError struct {
	First *Diagnostic
	All   []*Diagnostic
}

func (e *ParseError) Error() string {
	if e.First == nil {
		return "parse error"
	}
	return e.First.String()
}
