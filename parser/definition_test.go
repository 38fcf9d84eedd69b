package parser

import (
	"testing"

	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/diagnostics"
)

func parseOneStat(t *testing.T, src string) (ast.Stat, *diagnostics.MemorySink) {
	t.Helper()
	p, sink := newParser(t, src)
	stat := p.ParseStat()
	return stat, sink
}

func TestParseValDefinition(t *testing.T) {
	stat, sink := parseOneStat(t, "val x = 1")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	v, ok := stat.(*ast.DefnVal)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnVal", stat)
	}
	if v.Rhs == nil {
		t.Error("Rhs should be set")
	}
}

func TestParseValDeclaration(t *testing.T) {
	stat, sink := parseOneStat(t, "val x: Int")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	decl, ok := stat.(*ast.DeclVal)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DeclVal", stat)
	}
	if len(decl.Names) != 1 || decl.Names[0].Value != "x" {
		t.Errorf("Names = %#v", decl.Names)
	}
}

func TestParseVarDefinition(t *testing.T) {
	stat, sink := parseOneStat(t, "var x = 1")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := stat.(*ast.DefnVar); !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnVar", stat)
	}
}

func TestParseDefWithParamsAndReturnType(t *testing.T) {
	stat, sink := parseOneStat(t, "def f(x: Int): Int = x")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	d, ok := stat.(*ast.DefnDef)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnDef", stat)
	}
	if d.Name.Value != "f" {
		t.Errorf("Name = %q, want f", d.Name.Value)
	}
	if len(d.ParamLists) != 1 || len(d.ParamLists[0]) != 1 {
		t.Errorf("ParamLists = %#v", d.ParamLists)
	}
	if name, ok := d.Decltpe.(*ast.TypeName); !ok || name.Value != "Int" {
		t.Errorf("Decltpe = %#v, want TypeName(Int)", d.Decltpe)
	}
}

func TestParseAbstractDefDeclaration(t *testing.T) {
	stat, sink := parseOneStat(t, "def f(x: Int): Int")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := stat.(*ast.DeclDef); !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DeclDef", stat)
	}
}

func TestParseTypeAlias(t *testing.T) {
	stat, sink := parseOneStat(t, "type Id[T] = T")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	d, ok := stat.(*ast.DefnType)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnType", stat)
	}
	if len(d.TypeParams) != 1 {
		t.Errorf("TypeParams has %d members, want 1", len(d.TypeParams))
	}
}

func TestParseTypeDeclarationWithBounds(t *testing.T) {
	stat, sink := parseOneStat(t, "type T <: Upper >: Lower")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	decl, ok := stat.(*ast.DeclType)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DeclType", stat)
	}
	if decl.Upper == nil || decl.Lower == nil {
		t.Error("both Upper and Lower bounds should be set")
	}
}

func TestParseGivenAliasInstance(t *testing.T) {
	stat, sink := parseOneStat(t, "given intOrd: Ord[Int] = defaultOrd")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	g, ok := stat.(*ast.DefnGivenAlias)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnGivenAlias", stat)
	}
	if g.Name == nil || g.Name.Value != "intOrd" {
		t.Errorf("Name = %#v, want intOrd", g.Name)
	}
}

func TestParseAnonymousGivenDeclaration(t *testing.T) {
	stat, sink := parseOneStat(t, "given Ord[Int]")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	g, ok := stat.(*ast.DefnGiven)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnGiven", stat)
	}
	if g.Name != nil {
		t.Errorf("Name should be nil for an anonymous given, got %#v", g.Name)
	}
}

func TestParseClassWithTypeParamsAndTemplate(t *testing.T) {
	stat, sink := parseOneStat(t, "class C[T <: Ord[T]](x: T) extends B with M { def f = x }")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	cls, ok := stat.(*ast.DefnClass)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnClass", stat)
	}
	if cls.Name.Value != "C" {
		t.Errorf("Name = %q, want C", cls.Name.Value)
	}
	if len(cls.TypeParams) != 1 || cls.TypeParams[0].Name != "T" {
		t.Errorf("TypeParams = %#v", cls.TypeParams)
	}
	ctor, ok := cls.Ctor.(*ast.CtorPrimary)
	if !ok {
		t.Fatalf("Ctor = %T, want *ast.CtorPrimary", cls.Ctor)
	}
	if len(ctor.ParamLists) != 1 || len(ctor.ParamLists[0]) != 1 {
		t.Errorf("Ctor.ParamLists = %#v", ctor.ParamLists)
	}
	tmpl, ok := cls.Template.(*ast.TemplateBody)
	if !ok {
		t.Fatalf("Template = %T, want *ast.TemplateBody", cls.Template)
	}
	if len(tmpl.Inits) != 2 {
		t.Fatalf("Inits has %d members, want 2", len(tmpl.Inits))
	}
	if len(tmpl.Stats) != 1 {
		t.Fatalf("Stats has %d members, want 1", len(tmpl.Stats))
	}
	if _, ok := tmpl.Stats[0].(*ast.DefnDef); !ok {
		t.Errorf("Stats[0] = %T, want *ast.DefnDef", tmpl.Stats[0])
	}
}

func TestParseTraitWithoutTemplate(t *testing.T) {
	stat, sink := parseOneStat(t, "trait T")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	tr, ok := stat.(*ast.DefnTrait)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnTrait", stat)
	}
	body, ok := tr.Template.(*ast.TemplateBody)
	if !ok {
		t.Fatalf("Template = %T, want *ast.TemplateBody", tr.Template)
	}
	if len(body.Inits) != 0 || len(body.Stats) != 0 {
		t.Error("a bare 'trait T' should have no inits or stats")
	}
}

func TestParseObjectWithSelfType(t *testing.T) {
	stat, sink := parseOneStat(t, "object O { self: Base => val x = 1 }")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	obj, ok := stat.(*ast.DefnObject)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.DefnObject", stat)
	}
	tmpl, ok := obj.Template.(*ast.TemplateBody)
	if !ok {
		t.Fatalf("Template = %T, want *ast.TemplateBody", obj.Template)
	}
	self, ok := tmpl.Self.(*ast.SelfVal)
	if !ok {
		t.Fatalf("Self = %T, want *ast.SelfVal", tmpl.Self)
	}
	if self.Name != "self" {
		t.Errorf("Self.Name = %q, want self", self.Name)
	}
}

func TestParseImportSingleName(t *testing.T) {
	stat, sink := parseOneStat(t, "import foo")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	imp, ok := stat.(*ast.Import)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.Import", stat)
	}
	if len(imp.Importers) != 1 {
		t.Fatalf("Importers has %d members, want 1", len(imp.Importers))
	}
}

func TestParseImportWithSelectorList(t *testing.T) {
	stat, sink := parseOneStat(t, "import pkg.{A, B => C, _}")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	imp, ok := stat.(*ast.Import)
	if !ok {
		t.Fatalf("ParseStat() = %T, want *ast.Import", stat)
	}
	if len(imp.Importers) != 1 {
		t.Fatalf("Importers has %d members, want 1", len(imp.Importers))
	}
	importees := imp.Importers[0].Importees
	if len(importees) != 3 {
		t.Fatalf("Importees has %d members, want 3", len(importees))
	}
	if _, ok := importees[0].(*ast.ImporteeName); !ok {
		t.Errorf("Importees[0] = %T, want *ast.ImporteeName", importees[0])
	}
	rename, ok := importees[1].(*ast.ImporteeRename)
	if !ok {
		t.Fatalf("Importees[1] = %T, want *ast.ImporteeRename", importees[1])
	}
	if rename.Name.Value != "B" || rename.Alias.Value != "C" {
		t.Errorf("rename = %#v", rename)
	}
	if _, ok := importees[2].(*ast.ImporteeWildcard); !ok {
		t.Errorf("Importees[2] = %T, want *ast.ImporteeWildcard", importees[2])
	}
}

func TestParseIncompatibleModifiersIsDiagnosed(t *testing.T) {
	// "sealed" and "final" are a defined conflicting pair.
	_, sink := parseOneStat(t, "sealed final class C")
	if !sink.HasErrors() {
		t.Error("combining conflicting modifiers should be diagnosed")
	}
}
