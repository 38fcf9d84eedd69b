package parser

import (
	"testing"

	"github.com/langkit/scalaparse/ast"
)

func TestParseCaseEntryPoint(t *testing.T) {
	p, sink := newParser(t, "case x if x > 0 => x")
	c := p.ParseCase()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if c.Cond == nil {
		t.Error("Cond should be set for a guarded case")
	}
}

func TestParseCtorEntryPoint(t *testing.T) {
	p, sink := newParser(t, "(x: Int, y: String)")
	ctor := p.ParseCtor()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	primary, ok := ctor.(*ast.CtorPrimary)
	if !ok {
		t.Fatalf("ParseCtor() = %T, want *ast.CtorPrimary", ctor)
	}
	if len(primary.ParamLists) != 1 || len(primary.ParamLists[0]) != 2 {
		t.Errorf("ParamLists = %#v", primary.ParamLists)
	}
}

func TestParseInitEntryPoint(t *testing.T) {
	p, sink := newParser(t, "Base(1, 2)")
	init := p.ParseInit()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	call, ok := init.(*ast.InitCall)
	if !ok {
		t.Fatalf("ParseInit() = %T, want *ast.InitCall", init)
	}
	if len(call.ArgLists) != 1 || len(call.ArgLists[0]) != 2 {
		t.Errorf("ArgLists = %#v", call.ArgLists)
	}
}

func TestParseSelfEntryPointPresent(t *testing.T) {
	p, sink := newParser(t, "self: Base =>")
	self, ok := p.ParseSelf()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if !ok {
		t.Fatal("ParseSelf() should report ok=true for a well-formed self annotation")
	}
	if _, ok := self.(*ast.SelfVal); !ok {
		t.Fatalf("ParseSelf() = %T, want *ast.SelfVal", self)
	}
}

func TestParseTemplateEntryPoint(t *testing.T) {
	p, sink := newParser(t, "extends Base { val x = 1 }")
	tmpl := p.ParseTemplate()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	body, ok := tmpl.(*ast.TemplateBody)
	if !ok {
		t.Fatalf("ParseTemplate() = %T, want *ast.TemplateBody", tmpl)
	}
	if len(body.Inits) != 1 || len(body.Stats) != 1 {
		t.Errorf("Inits/Stats = %#v/%#v", body.Inits, body.Stats)
	}
}

func TestParseModEntryPoint(t *testing.T) {
	p, sink := newParser(t, "private")
	mod := p.ParseMod()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := mod.(*ast.ModPrivate); !ok {
		t.Fatalf("ParseMod() = %T, want *ast.ModPrivate", mod)
	}
}

func TestParseModEntryPointNoneReturnsNil(t *testing.T) {
	p, sink := newParser(t, "")
	mod := p.ParseMod()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if mod != nil {
		t.Errorf("ParseMod() = %#v, want nil when no modifier is present", mod)
	}
}

func TestParseEnumeratorEntryPointGenerator(t *testing.T) {
	p, sink := newParser(t, "x <- xs")
	e := p.ParseEnumerator()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := e.(*ast.Generator); !ok {
		t.Fatalf("ParseEnumerator() = %T, want *ast.Generator", e)
	}
}

func TestParseImporterEntryPoint(t *testing.T) {
	p, sink := newParser(t, "foo.bar")
	imp := p.ParseImporter()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if len(imp.Importees) != 1 {
		t.Fatalf("Importees has %d members, want 1", len(imp.Importees))
	}
	name, ok := imp.Importees[0].(*ast.ImporteeName)
	if !ok || name.Name.Value != "bar" {
		t.Errorf("Importees[0] = %#v, want ImporteeName(bar)", imp.Importees[0])
	}
}

func TestParseImporteeEntryPointWildcard(t *testing.T) {
	p, sink := newParser(t, "_")
	imp := p.ParseImportee()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if _, ok := imp.(*ast.ImporteeWildcard); !ok {
		t.Fatalf("ParseImportee() = %T, want *ast.ImporteeWildcard", imp)
	}
}

func TestParseTermParamEntryPoint(t *testing.T) {
	p, sink := newParser(t, "x: Int = 1")
	param := p.ParseTermParam()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if param.Name.Value != "x" {
		t.Errorf("Name = %q, want x", param.Name.Value)
	}
	if param.Default == nil {
		t.Error("Default should be set")
	}
}

func TestParseTypeParamEntryPointWithBounds(t *testing.T) {
	p, sink := newParser(t, "T <: Upper")
	tp := p.ParseTypeParam()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if tp.Name != "T" {
		t.Errorf("Name = %q, want T", tp.Name)
	}
	if tp.Upper == nil {
		t.Error("Upper should be set")
	}
}

func TestParseAmmoniteSplitsOnAtDelimiter(t *testing.T) {
	p, sink := newParser(t, "val x = 1\n@\nval y = 2")
	chunks := p.ParseAmmonite()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if len(chunks) != 2 {
		t.Fatalf("ParseAmmonite() returned %d chunks, want 2", len(chunks))
	}
	if len(chunks[0]) != 1 || len(chunks[1]) != 1 {
		t.Errorf("chunk sizes = %d/%d, want 1/1", len(chunks[0]), len(chunks[1]))
	}
}

func TestParseAmmoniteSingleChunkWithoutDelimiter(t *testing.T) {
	p, sink := newParser(t, "val x = 1")
	chunks := p.ParseAmmonite()
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if len(chunks) != 1 || len(chunks[0]) != 1 {
		t.Fatalf("chunks = %#v, want a single chunk with one statement", chunks)
	}
}
