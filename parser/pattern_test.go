package parser

import (
	"testing"

	"github.com/langkit/scalaparse/ast"
)

func TestParsePatternWildcard(t *testing.T) {
	p, sink := newParser(t, "_")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := pat.(*ast.PatWildcard); !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatWildcard", pat)
	}
}

func TestParsePatternLowerVariable(t *testing.T) {
	p, sink := newParser(t, "x")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	v, ok := pat.(*ast.PatVar)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatVar", pat)
	}
	if v.Name != "x" {
		t.Errorf("Name = %q, want x", v.Name)
	}
}

func TestParsePatternBackquotedIsStableRef(t *testing.T) {
	p, sink := newParser(t, "`x`")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := pat.(*ast.PatStableRef); !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatStableRef", pat)
	}
}

func TestParsePatternBind(t *testing.T) {
	p, sink := newParser(t, "x @ Some(y)")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	bind, ok := pat.(*ast.PatBind)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatBind", pat)
	}
	if bind.Name != "x" {
		t.Errorf("Name = %q, want x", bind.Name)
	}
	if _, ok := bind.Pat.(*ast.PatExtract); !ok {
		t.Errorf("bound pattern = %T, want *ast.PatExtract", bind.Pat)
	}
}

func TestParsePatternExtract(t *testing.T) {
	p, sink := newParser(t, "Some(x)")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	ex, ok := pat.(*ast.PatExtract)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatExtract", pat)
	}
	if len(ex.Patterns) != 1 {
		t.Fatalf("Patterns has %d members, want 1", len(ex.Patterns))
	}
}

func TestParsePatternTyped(t *testing.T) {
	p, sink := newParser(t, "x: Int")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	typed, ok := pat.(*ast.PatTyped)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatTyped", pat)
	}
	if name, ok := typed.Tpe.(*ast.TypeName); !ok || name.Value != "Int" {
		t.Errorf("Tpe = %#v, want TypeName(Int)", typed.Tpe)
	}
}

func TestParsePatternAlternative(t *testing.T) {
	p, sink := newParser(t, "1 | 2 | 3")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	alt, ok := pat.(*ast.PatAlternative)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatAlternative", pat)
	}
	if len(alt.Alts) != 3 {
		t.Errorf("Alts has %d members, want 3", len(alt.Alts))
	}
}

func TestParsePatternTuple(t *testing.T) {
	p, sink := newParser(t, "(x, y)")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	tup, ok := pat.(*ast.PatTuple)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatTuple", pat)
	}
	if len(tup.Elements) != 2 {
		t.Errorf("Elements has %d members, want 2", len(tup.Elements))
	}
}

func TestParsePatternInfixExtractor(t *testing.T) {
	p, sink := newParser(t, "x :: xs")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	infix, ok := pat.(*ast.PatExtractInfix)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatExtractInfix", pat)
	}
	if infix.Op.Value != "::" {
		t.Errorf("Op = %q, want ::", infix.Op.Value)
	}
}

func TestParsePatternSeqWildcardInsideExtractorIsLegal(t *testing.T) {
	p, sink := newParser(t, "List(a, b, _*)")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics for legal sequence wildcard: %v", sink.Errors())
	}
	ex, ok := pat.(*ast.PatExtract)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatExtract", pat)
	}
	last := ex.Patterns[len(ex.Patterns)-1]
	if _, ok := last.(*ast.PatSeqWildcard); !ok {
		t.Errorf("last extractor arg = %T, want *ast.PatSeqWildcard", last)
	}
}

func TestParsePatternSeqWildcardAtTopLevelIsDiagnosed(t *testing.T) {
	// A bare `_*` outside any sequence-OK context is misuse.
	p, sink := newParser(t, "_*")
	p.ParsePattern()
	if !sink.HasErrors() {
		t.Error("a top-level `_*` pattern should be diagnosed")
	}
}

func TestParsePatternSeqWildcardInNonFinalPositionIsDiagnosed(t *testing.T) {
	p, sink := newParser(t, "List(_*, b)")
	pat := p.ParsePattern()
	if !sink.HasErrors() {
		t.Error("a non-final `_*` extractor argument should be diagnosed")
	}
	ex, ok := pat.(*ast.PatExtract)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatExtract", pat)
	}
	if len(ex.Patterns) != 2 {
		t.Fatalf("Patterns has %d members, want 2", len(ex.Patterns))
	}
	if _, ok := ex.Patterns[0].(*ast.PatSeqWildcard); !ok {
		t.Errorf("Patterns[0] = %T, want *ast.PatSeqWildcard", ex.Patterns[0])
	}
}

func TestParsePatternNegativeNumericLiteral(t *testing.T) {
	p, sink := newParser(t, "-1")
	pat := p.ParsePattern()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	lit, ok := pat.(*ast.PatLit)
	if !ok {
		t.Fatalf("ParsePattern() = %T, want *ast.PatLit", pat)
	}
	n, ok := lit.Value.(*ast.LitInt)
	if !ok || n.Value != -1 {
		t.Errorf("Value = %#v, want LitInt(-1)", lit.Value)
	}
}
