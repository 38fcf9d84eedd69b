package parser

import (
	"github.com/langkit/scalaparse/dialect"
	"github.com/langkit/scalaparse/diagnostics"
	"github.com/langkit/scalaparse/source"
	"github.com/langkit/scalaparse/token"
)

// Parser is the top-level driver wiring a Cursor, a dialect-aware
// Classifier, and the shared infix engines together. One Parser instance
// handles exactly one buffer; distinct parses never share mutable state, so
// separate goroutines may each drive their own Parser over the same
// dialect.Dialect value concurrently.
type Parser struct {
	*Cursor
	Classifier Classifier
}

// New builds a Parser over tokens already produced by package scanner for
// buf, gated by dialect d and reporting through sink.
func New(tokens []token.Token, buf *source.Buffer, d dialect.Dialect, sink diagnostics.Sink) *Parser {
	return &Parser{
		Cursor:     NewCursor(tokens, buf, d, sink),
		Classifier: NewClassifier(d),
	}
}

// report is a small convenience wrapper around Sink.Report used throughout
// the parser subpackage files.
func (p *Parser) report(origin source.Origin, message string) {
	p.Sink.Report(&diagnostics.Diagnostic{
		Severity: diagnostics.Error,
		Span:     origin,
		Message:  message,
	})
}

func (p *Parser) reportHint(origin source.Origin, message string, hints ...string) {
	p.Sink.Report(&diagnostics.Diagnostic{
		Severity: diagnostics.Error,
		Span:     origin,
		Message:  message,
		Hints:    hints,
	})
}
