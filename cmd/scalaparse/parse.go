package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/diagnostics"
	"github.com/langkit/scalaparse/dialect"
	"github.com/langkit/scalaparse/parser"
	"github.com/langkit/scalaparse/scanner"
	"github.com/langkit/scalaparse/source"
)

// parseEntry tokenizes text and runs the named entry point over it. The CLI
// is a thin wrapper — it carries no parsing logic of its own, only dispatch
// to the parser package's public entry points.
func parseEntry(entry, text, path string, d dialect.Dialect) (any, *diagnostics.MemorySink) {
	toks := scanner.Tokenize(text)
	buf := &source.Buffer{Path: path, Text: text, Dialect: d.Name}
	sink := diagnostics.NewMemorySink()
	p := parser.New(toks, buf, d, sink)

	switch entry {
	case "stat":
		return p.ParseStat(), sink
	case "term":
		return p.ParseTerm(), sink
	case "type":
		return p.ParseType(), sink
	case "pattern":
		return p.ParsePattern(), sink
	default:
		return p.ParseSource(), sink
	}
}

// dumpNode prints a parse result one line per top-level node (its Go type
// and Origin); children are not printed. Every AST node is a plain struct
// behind a small marker interface, so there is no single polymorphic
// pretty-printer to call into; fmt's %T/%v is the idiomatic fallback for a
// family of tagged variants.
func dumpNode(w io.Writer, v any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := v.(type) {
	case []ast.Stat:
		for _, s := range v {
			dumpNode(w, s, depth)
		}
	case ast.Node:
		fmt.Fprintf(w, "%s%T %s\n", indent, v, v.Origin())
	default:
		fmt.Fprintf(w, "%s%#v\n", indent, v)
	}
}
