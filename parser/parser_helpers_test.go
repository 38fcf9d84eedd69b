package parser

import (
	"testing"

	"github.com/langkit/scalaparse/dialect"
	"github.com/langkit/scalaparse/diagnostics"
	"github.com/langkit/scalaparse/scanner"
	"github.com/langkit/scalaparse/source"
)

// newParser builds a Parser over text under the scala3 preset, the way
// cmd/scalaparse's parseEntry wires the same three collaborators together.
func newParser(t *testing.T, text string) (*Parser, *diagnostics.MemorySink) {
	t.Helper()
	d, err := dialect.Preset("scala3")
	if err != nil {
		t.Fatalf("dialect.Preset(scala3) error: %v", err)
	}
	return newParserWithDialect(t, text, d)
}

func newParserWithDialect(t *testing.T, text string, d dialect.Dialect) (*Parser, *diagnostics.MemorySink) {
	t.Helper()
	toks := scanner.Tokenize(text)
	buf := &source.Buffer{Path: "test.scala", Text: text, Dialect: d.Name}
	sink := diagnostics.NewMemorySink()
	return New(toks, buf, d, sink), sink
}
