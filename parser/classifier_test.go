package parser

import (
	"testing"

	"github.com/langkit/scalaparse/dialect"
)

func TestClassifierAtUsingGatedByDialect(t *testing.T) {
	p, _ := newParser(t, "using")
	if !p.Classifier.AtUsing(p.Cursor) {
		t.Error("scala3 should recognize 'using' as a soft keyword")
	}

	d211, err := dialect.Preset("scala211")
	if err != nil {
		t.Fatalf("dialect.Preset(scala211) error: %v", err)
	}
	p2, _ := newParserWithDialect(t, "using", d211)
	if p2.Classifier.AtUsing(p2.Cursor) {
		t.Error("scala211 does not support given/using; 'using' should not be classified as the soft keyword")
	}
}

func TestClassifierAtEndRequiresDialectFlagAndSpelling(t *testing.T) {
	p, _ := newParser(t, "end")
	if !p.Classifier.AtEnd(p.Cursor) {
		t.Error("scala3 should recognize 'end' as a soft keyword")
	}

	p2, _ := newParser(t, "endX")
	if p2.Classifier.AtEnd(p2.Cursor) {
		t.Error("an identifier merely starting with 'end' should not classify as the soft keyword")
	}
}

func TestClassifierAtExtensionIsHardKeyword(t *testing.T) {
	p, _ := newParser(t, "extension")
	if !p.Classifier.AtExtension(p.Cursor) {
		t.Error("scala3 should recognize 'extension' as the extension-clause introducer")
	}
}

func TestClassifierAtDerivesRequiresEnumsFlag(t *testing.T) {
	p, _ := newParser(t, "derives")
	if !p.Classifier.AtDerives(p.Cursor) {
		t.Error("scala3 should recognize 'derives' as a soft keyword")
	}
}

func TestClassifierIsSoftKeywordExactMatchOnly(t *testing.T) {
	p, _ := newParser(t, "inline")
	if !p.Classifier.IsSoftKeyword(p.CurrentToken(), "inline") {
		t.Error("IsSoftKeyword should match the exact spelling under an enabling dialect")
	}
	if p.Classifier.IsSoftKeyword(p.CurrentToken(), "opaque") {
		t.Error("IsSoftKeyword should not match a different word")
	}
}
