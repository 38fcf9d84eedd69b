package parser

import (
	"github.com/langkit/scalaparse/dialect"
	"github.com/langkit/scalaparse/token"
)

// Classifier answers the dialect-gated "is the current token actually
// keyword X here" questions the grammar needs: soft keywords are ordinary
// IdentLower tokens at the scanner
// level (scanner/scanner.go never special-cases them), so whether `using`,
// `derives`, `inline`, `opaque`, `open`, `transparent`, or `end` introduces
// a production is entirely a function of the active dialect and the
// surrounding grammar position, never the lexical class of the token.
type Classifier struct {
	Dialect dialect.Dialect
}

// NewClassifier wraps d for predicate lookups.
func NewClassifier(d dialect.Dialect) Classifier {
	return Classifier{Dialect: d}
}

// softKeywordText reports t's identifier spelling if it is any flavor of
// identifier token, else "".
func softKeywordText(t token.Token) string {
	if !t.Kind.IsIdent() {
		return ""
	}
	return t.Text
}

// IsSoftKeyword reports whether t spells a soft keyword the active dialect
// currently recognizes.
func (c Classifier) IsSoftKeyword(t token.Token, word string) bool {
	text := softKeywordText(t)
	return text == word && c.Dialect.IsSoftKeyword(word)
}

// AtUsing reports whether the cursor sits at a dialect-gated `using`
// soft keyword (given/using clauses).
func (c Classifier) AtUsing(cur *Cursor) bool {
	return c.Dialect.AllowGivenUsing && c.IsSoftKeyword(cur.CurrentToken(), "using")
}

// AtDerives reports whether the cursor sits at a `derives` soft keyword
// closing a class/trait/enum header.
func (c Classifier) AtDerives(cur *Cursor) bool {
	return c.Dialect.AllowEnums && c.IsSoftKeyword(cur.CurrentToken(), "derives")
}

// AtInline reports whether the cursor sits at the `inline` modifier
// soft keyword.
func (c Classifier) AtInline(cur *Cursor) bool {
	return c.Dialect.AllowExtensionMethods && c.IsSoftKeyword(cur.CurrentToken(), "inline")
}

// AtOpaque reports whether the cursor sits at the `opaque` modifier
// soft keyword.
func (c Classifier) AtOpaque(cur *Cursor) bool {
	return c.Dialect.AllowOpaqueTypes && c.IsSoftKeyword(cur.CurrentToken(), "opaque")
}

// AtOpen reports whether the cursor sits at the `open` class modifier.
func (c Classifier) AtOpen(cur *Cursor) bool {
	return c.Dialect.AllowOpenModifier && c.IsSoftKeyword(cur.CurrentToken(), "open")
}

// AtTransparent reports whether the cursor sits at the `transparent`
// inline-def modifier.
func (c Classifier) AtTransparent(cur *Cursor) bool {
	return c.Dialect.AllowExtensionMethods && c.IsSoftKeyword(cur.CurrentToken(), "transparent")
}

// AtInfixModifier reports whether the cursor sits at the `infix` def
// modifier.
func (c Classifier) AtInfixModifier(cur *Cursor) bool {
	return c.Dialect.AllowExtensionMethods && c.IsSoftKeyword(cur.CurrentToken(), "infix")
}

// AtExtension reports whether the cursor sits at an `extension` clause
// introducer. `extension` is a hard keyword (token.KwExtension) whenever
// it appears, but the production itself is dialect-gated.
func (c Classifier) AtExtension(cur *Cursor) bool {
	return c.Dialect.AllowExtensionMethods && cur.At(token.KwExtension)
}

// AtEnd reports whether the cursor sits at an `end` marker soft keyword.
// Unlike the other soft keywords, `end` is recognized only when it is
// immediately followed by a name/underscore/hard-keyword-as-name token on
// the same logical construct, which the caller (parser/definition.go)
// checks after this predicate passes.
func (c Classifier) AtEnd(cur *Cursor) bool {
	return c.Dialect.AllowEndMarkers && c.IsSoftKeyword(cur.CurrentToken(), "end")
}

// AtAs reports whether the cursor sits at an `as` rename soft keyword,
// used by Scala 3's import-rename shorthand (`import a.b as c`) in
// addition to the always-legal `=>` form.
func (c Classifier) AtAs(cur *Cursor) bool {
	return c.Dialect.AllowExtensionMethods && c.IsSoftKeyword(cur.CurrentToken(), "as")
}

// AtErased reports whether the cursor sits at the `erased` parameter
// modifier soft keyword.
func (c Classifier) AtErased(cur *Cursor) bool {
	return c.Dialect.AllowGivenUsing && c.IsSoftKeyword(cur.CurrentToken(), "erased")
}

// AtMatchableAsInfixOperator reports whether `match` may be used as an
// infix operator name in term position, gated by the dialect's
// allowMatchAsOperator flag; older dialects reserve `match` unconditionally.
func (c Classifier) AtMatchableAsInfixOperator(cur *Cursor) bool {
	return c.Dialect.AllowMatchAsOperator && cur.At(token.KwMatch)
}
