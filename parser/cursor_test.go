package parser

import (
	"testing"

	"github.com/langkit/scalaparse/token"
)

func TestCursorEatAndAt(t *testing.T) {
	p, _ := newParser(t, "class Foo")
	if !p.At(token.KwClass) {
		t.Fatalf("expected cursor to start at 'class', got %v", p.Current())
	}
	tok := p.Eat()
	if tok.Kind != token.KwClass {
		t.Errorf("Eat() returned %v, want KwClass", tok.Kind)
	}
	if !p.At(token.IdentUpper) {
		t.Errorf("expected cursor at identifier after 'class', got %v", p.Current())
	}
}

func TestCursorEatIf(t *testing.T) {
	p, _ := newParser(t, "val x")
	if p.EatIf(token.KwDef) {
		t.Error("EatIf(KwDef) should fail at 'val'")
	}
	if !p.EatIf(token.KwVal) {
		t.Error("EatIf(KwVal) should succeed")
	}
	if !p.At(token.IdentLower) {
		t.Errorf("cursor should sit at identifier, got %v", p.Current())
	}
}

func TestCursorEndAtEOF(t *testing.T) {
	p, _ := newParser(t, "")
	if !p.End() {
		t.Error("empty source should leave the cursor at EOF")
	}
}

func TestCursorCheckpointRestore(t *testing.T) {
	p, _ := newParser(t, "val x = 1")
	cp := p.Checkpoint()
	p.Eat()
	p.Eat()
	if p.At(token.KwVal) {
		t.Fatal("cursor should have advanced past 'val'")
	}
	p.Restore(cp)
	if !p.At(token.KwVal) {
		t.Errorf("Restore should rewind to 'val', cursor is at %v", p.Current())
	}
}

func TestCursorExpectReportsDiagnosticOnMismatch(t *testing.T) {
	p, sink := newParser(t, "val")
	_, ok := p.Expect(token.KwDef)
	if ok {
		t.Error("Expect(KwDef) should fail when the current token is 'val'")
	}
	if !sink.HasErrors() {
		t.Error("a failed Expect should report a diagnostic")
	}
}

func TestCursorExpectSucceeds(t *testing.T) {
	p, sink := newParser(t, "val x")
	tok, ok := p.Expect(token.KwVal)
	if !ok || tok.Kind != token.KwVal {
		t.Fatalf("Expect(KwVal) should succeed, got ok=%v tok=%v", ok, tok.Kind)
	}
	if sink.HasErrors() {
		t.Error("a successful Expect should not report a diagnostic")
	}
}

func TestCursorHadNewlineBefore(t *testing.T) {
	p, _ := newParser(t, "val x\nval y")
	p.Eat() // val
	p.Eat() // x
	if !p.HadNewlineBefore() {
		t.Error("expected a newline between 'x' and the following 'val'")
	}
}

func TestCursorEnterDepthGuardsRecursion(t *testing.T) {
	p, sink := newParser(t, "x")
	var leaves []func()
	ok := true
	for i := 0; i < MaxDepth+2 && ok; i++ {
		var leave func()
		leave, ok = p.EnterDepth()
		leaves = append(leaves, leave)
	}
	if ok {
		t.Fatal("EnterDepth should eventually report ok=false once MaxDepth is exceeded")
	}
	if !sink.HasErrors() {
		t.Error("exceeding MaxDepth should report a diagnostic")
	}
	for _, leave := range leaves {
		leave()
	}
}

func TestCursorPushNewlineModeRestoresPrevious(t *testing.T) {
	p, _ := newParser(t, "x")
	restore := p.PushNewlineMode(NLStop, 4)
	if p.nlMode != NLStop || p.indent != 4 {
		t.Fatalf("PushNewlineMode did not install the new mode: %v/%d", p.nlMode, p.indent)
	}
	restore()
	if p.nlMode != NLContinue {
		t.Errorf("restore() should bring back the previous mode, got %v", p.nlMode)
	}
}
