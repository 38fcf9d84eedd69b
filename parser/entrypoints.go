package parser

import (
	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/token"
)

// This file collects the thin public entry points, one per named grammar
// production, on top of the productions implemented across the rest of the
// package. Every wrapper here follows the same shape: the cursor already
// sits past BOF (NewCursor skips it as trivia), the wrapper runs exactly one
// production, and then requires EOF — a trailing token of any other kind is
// a hard error, matching the "(1) accepts BOF, (2) runs its production,
// (3) accepts EOF" entry-point contract. Productions that are themselves
// recursive (ParseTerm, ParseType, ParsePattern, ParseStat, ParseSource) are
// exported directly from expression.go/types.go/pattern.go/definition.go
// without an EOF check, since they are also called as sub-productions of one
// another; the wrappers below exist for the remaining, non-recursive named
// entry points that otherwise have no public surface.

func (p *Parser) expectEOF() {
	if !p.End() {
		p.Unexpected("end of input")
	}
}

// ParseCase parses a single `case pattern [if guard] => body` arm.
func (p *Parser) ParseCase() *ast.Case {
	c := p.parseCaseClause()
	p.expectEOF()
	return c
}

// ParseCtor parses a primary constructor's parameter lists.
func (p *Parser) ParseCtor() ast.Ctor {
	c := p.parsePrimaryCtor()
	p.expectEOF()
	return c
}

// ParseInit parses one `Type(args)(args)` parent-constructor application.
func (p *Parser) ParseInit() ast.Init {
	i := p.parseInit()
	p.expectEOF()
	return i
}

// ParseSelf parses a template's self-type annotation, if present.
func (p *Parser) ParseSelf() (ast.Self, bool) {
	s, ok := p.tryParseSelf()
	p.expectEOF()
	return s, ok
}

// ParseTemplate parses a full `extends ... { ... }` template body.
func (p *Parser) ParseTemplate() ast.Template {
	t := p.parseTemplate()
	p.expectEOF()
	return t
}

// ParseMod parses the leading modifiers/annotations and returns the first
// of them, or nil if none is present at the cursor.
func (p *Parser) ParseMod() ast.Mod {
	mods := p.parseMods()
	p.expectEOF()
	if len(mods) == 0 {
		return nil
	}
	return mods[0]
}

// ParseEnumerator parses one for-comprehension clause.
func (p *Parser) ParseEnumerator() ast.Enumerator {
	e := p.parseEnumerator()
	p.expectEOF()
	return e
}

// ParseImporter parses one `ref.selector` import/export clause.
func (p *Parser) ParseImporter() *ast.Importer {
	i := p.parseImporter()
	p.expectEOF()
	return i
}

// ParseImportee parses a single element of an import/export selector list.
func (p *Parser) ParseImportee() ast.Importee {
	i := p.parseImportee()
	p.expectEOF()
	return i
}

// ParseTermParam parses one term parameter of a def/class/lambda parameter
// list.
func (p *Parser) ParseTermParam() *ast.TermParam {
	param, ok := p.tryParseTermParam()
	if !ok {
		p.Unexpected("parameter")
		return nil
	}
	p.expectEOF()
	return param
}

// ParseTypeParam parses one element of a `[...]` type parameter clause.
func (p *Parser) ParseTypeParam() *ast.TypeParam {
	tp := p.parseTypeParam()
	p.expectEOF()
	return tp
}

// ParseUnquoteTerm parses a quasiquote splice placeholder in term position
// (`$name`), used when expanding a quasiquote's unquoted holes rather than
// parsing ordinary source.
func (p *Parser) ParseUnquoteTerm() ast.Term {
	t := p.parseTermQuasi()
	p.expectEOF()
	return t
}

// ParseUnquotePat parses a quasiquote splice placeholder in pattern
// position.
func (p *Parser) ParseUnquotePat() ast.Pat {
	pat := p.parsePatternQuasi()
	p.expectEOF()
	return pat
}

// ParseAmmonite parses Ammonite REPL-script input: one or more ordinary
// compilation units concatenated in a single buffer, separated by a bare
// `@` line (the REPL's "new statement group" delimiter). There is no error
// recovery: a chunk that fails reports to the sink and parsing continues
// from wherever it stopped, without resynchronizing at the next `@`.
func (p *Parser) ParseAmmonite() [][]ast.Stat {
	var chunks [][]ast.Stat
	var stats []ast.Stat
	for !p.End() {
		if p.atAmmoniteDelimiter() {
			p.eatAmmoniteDelimiter()
			chunks = append(chunks, stats)
			stats = nil
			continue
		}
		stats = append(stats, p.parseTopStat())
		p.EatIf(token.Semicolon)
	}
	chunks = append(chunks, stats)
	return chunks
}

// atAmmoniteDelimiter reports whether the cursor sits at a bare `@` used as
// an Ammonite statement-group separator: a token.At that starts its own
// line.
func (p *Parser) atAmmoniteDelimiter() bool {
	return p.At(token.At) && p.HadNewlineBefore()
}

func (p *Parser) eatAmmoniteDelimiter() {
	p.Eat()
}
