package parser

import (
	"testing"

	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/dialect"
)

func TestParseTypeName(t *testing.T) {
	p, sink := newParser(t, "Int")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	name, ok := tpe.(*ast.TypeName)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeName", tpe)
	}
	if name.Value != "Int" {
		t.Errorf("Value = %q, want Int", name.Value)
	}
}

func TestParseTypeApply(t *testing.T) {
	p, sink := newParser(t, "List[Int]")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	app, ok := tpe.(*ast.TypeApply)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeApply", tpe)
	}
	if len(app.TypeArgs) != 1 {
		t.Fatalf("TypeArgs has %d elements, want 1", len(app.TypeArgs))
	}
	if name, ok := app.TypeArgs[0].(*ast.TypeName); !ok || name.Value != "Int" {
		t.Errorf("type arg = %#v, want TypeName(Int)", app.TypeArgs[0])
	}
}

func TestParseTupleType(t *testing.T) {
	p, sink := newParser(t, "(Int, String)")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	tup, ok := tpe.(*ast.TypeTuple)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeTuple", tpe)
	}
	if len(tup.Elements) != 2 {
		t.Fatalf("Elements has %d members, want 2", len(tup.Elements))
	}
}

func TestParseFunctionType(t *testing.T) {
	p, sink := newParser(t, "(Int, String) => Boolean")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	fn, ok := tpe.(*ast.TypeFunction)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeFunction", tpe)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("Params has %d members, want 2", len(fn.Params))
	}
	if res, ok := fn.Res.(*ast.TypeName); !ok || res.Value != "Boolean" {
		t.Errorf("Res = %#v, want TypeName(Boolean)", fn.Res)
	}
}

func TestParseContextFunctionType(t *testing.T) {
	p, sink := newParser(t, "(Int) ?=> Boolean")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := tpe.(*ast.TypeContextFunction); !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeContextFunction", tpe)
	}
}

func TestParseDependentFunctionType(t *testing.T) {
	p, sink := newParser(t, "(x: Int, y: String) => Boolean")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	fn, ok := tpe.(*ast.TypeDependentFunction)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeDependentFunction", tpe)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name.Value != "x" {
		t.Errorf("Params = %#v", fn.Params)
	}
}

func TestParseMixedTupleAndNamedParamsIsAnError(t *testing.T) {
	// a named parameter and a plain type may not appear in the same list.
	p, sink := newParser(t, "(x: Int, String)")
	p.ParseType()
	if !sink.HasErrors() {
		t.Error("mixing a typed parameter and a plain type in the same parenthesized type list should be an error")
	}
}

func TestParseIntersectionType(t *testing.T) {
	p, sink := newParser(t, "A & B")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	infix, ok := tpe.(*ast.TypeApplyInfix)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeApplyInfix", tpe)
	}
	if infix.Op.Value != "&" {
		t.Errorf("Op = %q, want &", infix.Op.Value)
	}
}

func TestParseUnionType(t *testing.T) {
	p, sink := newParser(t, "A | B")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	infix, ok := tpe.(*ast.TypeApplyInfix)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeApplyInfix", tpe)
	}
	if infix.Op.Value != "|" {
		t.Errorf("Op = %q, want |", infix.Op.Value)
	}
}

func TestParseSingletonType(t *testing.T) {
	p, sink := newParser(t, "x.type")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := tpe.(*ast.TypeSingleton); !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeSingleton", tpe)
	}
}

func TestParseExistentialTypeRequiresDialectFlag(t *testing.T) {
	d, err := dialect.Preset("scala211")
	if err != nil {
		t.Fatalf("dialect.Preset(scala211) error: %v", err)
	}
	p, sink := newParserWithDialect(t, "List[Int] forSome { type Int }", d)
	tpe := p.ParseType()
	p.expectEOF()
	if sink.HasErrors() {
		t.Fatalf("scala211 should allow existential types: %v", sink.Errors())
	}
	if _, ok := tpe.(*ast.TypeExistential); !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeExistential", tpe)
	}

	p2, sink2 := newParser(t, "List[Int] forSome { type Int }")
	p2.ParseType()
	p2.expectEOF()
	if !sink2.HasErrors() {
		t.Error("scala3 preset disables existential types; trailing 'forSome' should be rejected at EOF")
	}
}

func TestParseMatchType(t *testing.T) {
	p, sink := newParser(t, "X match { case Int => String }")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	m, ok := tpe.(*ast.TypeMatch)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeMatch", tpe)
	}
	if len(m.Cases) != 1 {
		t.Fatalf("Cases has %d members, want 1", len(m.Cases))
	}
}

func TestParseTypeLambda(t *testing.T) {
	p, sink := newParser(t, "[X] =>> List[X]")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	lam, ok := tpe.(*ast.TypeLambda)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeLambda", tpe)
	}
	if lam.IsPolyFunc {
		t.Error("=>> should produce a type-level lambda, not a polymorphic function type")
	}
}

func TestParseRefinementType(t *testing.T) {
	p, sink := newParser(t, "Base { type T }")
	tpe := p.ParseType()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	ref, ok := tpe.(*ast.TypeRefine)
	if !ok {
		t.Fatalf("ParseType() = %T, want *ast.TypeRefine", tpe)
	}
	if ref.Base == nil {
		t.Error("Base should be set for 'Base { ... }'")
	}
}
