package parser

import (
	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/source"
	"github.com/langkit/scalaparse/token"
)

// seqMode controls whether a `_*`/`xs @ _*` sequence wildcard may terminate
// the pattern list currently being parsed:
//   - seqNone:  no sequence wildcard is legal here (a case clause's own
//     top-level pattern, a val-pattern, a for-comprehension pattern).
//   - seqLast:  a sequence wildcard is legal only as the final element of
//     the list (an extractor's argument list, `case List(a, b, _*)`).
//   - seqAlone: the entire pattern list is nothing but the wildcard itself
//     (the whole-scrutinee shorthand some extractor calls allow,
//     `case _* =>` inside a nested repeated-param extractor).
type seqMode int

const (
	seqNone seqMode = iota
	seqLast
	seqAlone
)

// ParsePattern is the pattern grammar's entry point: alternation (`|`) is
// the loosest level.
func (p *Parser) ParsePattern() ast.Pat {
	first := p.parsePattern1(seqNone)
	if !p.At(token.IdentOp) || p.CurrentToken().Text != "|" {
		return first
	}
	alts := []ast.Pat{first}
	for p.At(token.IdentOp) && p.CurrentToken().Text == "|" {
		p.Eat()
		alts = append(alts, p.parsePattern1(seqNone))
	}
	return &ast.PatAlternative{Pos: unionPatOrigins(alts), Alts: alts}
}

// unionPatOrigins spans every element of pats, the way the teacher's own
// Parser.wrap derives a composite node's range from its children.
func unionPatOrigins(pats []ast.Pat) source.Origin {
	if len(pats) == 0 {
		return source.Detached()
	}
	o := pats[0].Origin()
	for _, pat := range pats[1:] {
		o = o.Union(pat.Origin())
	}
	return o
}

// parsePattern1 is pattern1: an optional `: Type` ascription layered on
// pattern2.
func (p *Parser) parsePattern1(mode seqMode) ast.Pat {
	start := p.Mark()
	pat := p.parsePattern2(mode)
	if p.At(token.Colon) {
		p.Eat()
		tpe := p.ParseType()
		return &ast.PatTyped{Pos: p.Origin(start), Pat: pat, Tpe: tpe}
	}
	return pat
}

// parsePattern2 is pattern2: an optional `name @ pattern` binding layered
// on pattern3.
func (p *Parser) parsePattern2(mode seqMode) ast.Pat {
	start := p.Mark()
	if p.At(token.IdentLower) && p.peekIsAt() {
		nameTok := p.Eat()
		p.Eat() // @
		inner := p.parsePattern3(mode)
		return &ast.PatBind{Pos: p.Origin(start), Name: nameTok.Text, Pat: inner}
	}
	return p.parsePattern3(mode)
}

func (p *Parser) peekIsAt() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.At)
	p.Restore(cp)
	return at
}

// parsePattern3 is pattern3: infix extractor application via the shared
// infix engine.
func (p *Parser) parsePattern3(mode seqMode) ast.Pat {
	return ParseInfix[ast.Pat](p.Cursor, patternInfixEngine{p, mode}, 0)
}

type patternInfixEngine struct {
	p    *Parser
	mode seqMode
}

func (e patternInfixEngine) AtOperator(cur *Cursor) (string, bool) {
	if cur.At(token.IdentOp) && cur.CurrentToken().Text != "|" {
		return cur.CurrentToken().Text, true
	}
	if cur.At(token.ColonColon) {
		return "::", true
	}
	return "", false
}

func (e patternInfixEngine) ParseOperand(cur *Cursor, minPrec int) ast.Pat {
	return e.p.parseSimplePattern(e.mode)
}

func (e patternInfixEngine) Reduce(lhs ast.Pat, op string, rhs []ast.Pat) ast.Pat {
	opNode := &ast.Name{Value: op}
	start := lhs.Origin().Start
	return &ast.PatExtractInfix{Pos: e.p.Pos.Origin(start, e.p.Mark()-1), Lhs: lhs, Op: opNode, Rhs: rhs}
}

func (e patternInfixEngine) SplatTuple(rhs ast.Pat) ([]ast.Pat, bool) {
	if t, ok := rhs.(*ast.PatTuple); ok {
		return t.Elements, true
	}
	return nil, false
}

// parseSimplePattern handles the pattern grammar's atoms: literals,
// extractors, variables, wildcards, tuples, interpolations, and XML
// patterns.
func (p *Parser) parseSimplePattern(mode seqMode) ast.Pat {
	start := p.Mark()
	switch {
	case p.Dialect.AllowUnquotes && p.At(token.LitSpliceStart):
		return p.parsePatternQuasi()

	case p.At(token.Underscore):
		p.Eat()
		if p.atSeqWildcardStar() {
			p.Eat()
			if mode == seqNone {
				p.reportHint(p.Origin(start), "sequence wildcard `_*` is not allowed here",
					"`_*` may only terminate an extractor's argument list")
			}
			return &ast.PatSeqWildcard{Pos: p.Origin(start)}
		}
		return &ast.PatWildcard{Pos: p.Origin(start)}

	case p.At(token.LitInt), p.At(token.LitLong), p.At(token.LitFloat), p.At(token.LitDouble),
		p.At(token.LitChar), p.At(token.LitString), p.At(token.LitStringTriple), p.At(token.LitSymbol),
		p.At(token.KwTrue), p.At(token.KwFalse), p.At(token.KwNull):
		return p.parsePatternLiteral(start)

	case p.At(token.IdentOp) && p.CurrentToken().Text == "-":
		// A leading minus on a numeric literal pattern, `case -1 =>`.
		p.Eat()
		lit := p.parsePatternLiteral(start)
		if l, ok := lit.(*ast.PatLit); ok {
			if neg, ok := negateLiteral(l.Value); ok {
				l.Value = neg
			}
		}
		return lit

	case p.At(token.LitInterpStart):
		return p.parsePatternInterpolation(start)

	case p.At(token.LParen):
		return p.parsePatternTuple(start)

	case p.At(token.IdentBackquoted):
		nameTok := p.Eat()
		ref := &ast.Name{Pos: p.Origin(start), Value: nameTok.Text, IsBackquoted: true}
		return &ast.PatStableRef{Pos: p.Origin(start), Ref: ref}

	case p.At(token.IdentLower):
		return p.parsePatternLowerIdent(start, mode)

	case p.At(token.IdentUpper):
		return p.parsePatternExtractorOrStable(start, mode)

	case p.At(token.KwThis):
		p.Eat()
		ref := ast.Term(&ast.This{Pos: p.Origin(start)})
		return p.finishStableRefOrExtractor(start, ref, mode)

	default:
		p.Unexpected("pattern")
		p.Eat()
		return &ast.PatWildcard{Pos: p.Origin(start)}
	}
}

func (p *Parser) atSeqWildcardStar() bool {
	return p.At(token.IdentOp) && p.CurrentToken().Text == "*"
}

func (p *Parser) parsePatternQuasi() ast.Pat {
	start := p.Mark()
	p.Eat()
	name, _ := p.Expect(token.IdentLower)
	p.Expect(token.LitSpliceEnd)
	return &ast.QuasiPat{Pos: p.Origin(start), Name: name.Text}
}

func (p *Parser) parsePatternLiteral(start int) ast.Pat {
	term := p.parseLiteralTerm()
	return &ast.PatLit{Pos: p.Origin(start), Value: term}
}

func negateLiteral(t ast.Term) (ast.Term, bool) {
	switch t := t.(type) {
	case *ast.LitInt:
		t.Value = -t.Value
		return t, true
	case *ast.LitLong:
		t.Value = -t.Value
		return t, true
	case *ast.LitFloat:
		t.Value = -t.Value
		return t, true
	case *ast.LitDouble:
		t.Value = -t.Value
		return t, true
	default:
		return t, false
	}
}

func (p *Parser) parsePatternInterpolation(start int) ast.Pat {
	prefixTok := p.Eat() // LitInterpStart carries the prefix in .Text
	prefix := &ast.Name{Pos: p.Origin(start), Value: prefixTok.Text}
	var parts []string
	var args []ast.Pat
	for {
		part := p.Eat() // LitInterpPart
		parts = append(parts, part.Text)
		if p.At(token.LitInterpEnd) {
			p.Eat()
			break
		}
		p.Expect(token.LitSpliceStart)
		args = append(args, p.parseSimplePattern(seqNone))
		p.Expect(token.LitSpliceEnd)
	}
	return &ast.PatInterpolate{Pos: p.Origin(start), Prefix: prefix, Parts: parts, Args: args}
}

func (p *Parser) parsePatternTuple(start int) ast.Pat {
	p.Eat() // (
	if p.EatIf(token.RParen) {
		return &ast.PatTuple{Pos: p.Origin(start)}
	}
	var elems []ast.Pat
	for {
		elems = append(elems, p.ParsePattern())
		if !p.EatIf(token.Comma) {
			break
		}
	}
	p.Expect(token.RParen)
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.PatTuple{Pos: p.Origin(start), Elements: elems}
}

// parsePatternLowerIdent resolves the variable-vs-extractor ambiguity for a
// lower-case identifier: a bare lower-case name is a
// PatVar binding unless followed directly by `(` (a user-defined extractor
// function referenced by a lower-case name, legal wherever a stable
// identifier is) or `.` (a stable path used as an equality pattern).
func (p *Parser) parsePatternLowerIdent(start int, mode seqMode) ast.Pat {
	nameTok := p.Eat()
	name := &ast.Name{Pos: p.Origin(start), Value: nameTok.Text}
	if p.At(token.Dot) || p.At(token.LParen) {
		return p.finishStableRefOrExtractor(start, name, mode)
	}
	return &ast.PatVar{Pos: p.Origin(start), Name: nameTok.Text}
}

// parsePatternExtractorOrStable resolves an upper-case identifier: it is
// always treated as a stable reference to a value/object (never a
// binding), optionally applied as an extractor.
func (p *Parser) parsePatternExtractorOrStable(start int, mode seqMode) ast.Pat {
	nameTok := p.Eat()
	name := &ast.Name{Pos: p.Origin(start), Value: nameTok.Text}
	return p.finishStableRefOrExtractor(start, name, mode)
}

func (p *Parser) finishStableRefOrExtractor(start int, ref ast.Term, mode seqMode) ast.Pat {
	for p.At(token.Dot) {
		p.Eat()
		var memberTok token.Token
		switch {
		case p.At(token.IdentUpper):
			memberTok = p.Eat()
		default:
			memberTok, _ = p.Expect(token.IdentLower)
		}
		ref = &ast.Select{Pos: p.Origin(start), Qual: ref, Name: &ast.Name{Pos: p.Origin(start), Value: memberTok.Text}}
	}
	var typeArgs []ast.Type
	if p.At(token.LBracket) {
		typeArgs = p.parseTypeArgList()
	}
	if p.At(token.LParen) {
		p.Eat()
		var elems []ast.Pat
		if !p.At(token.RParen) {
			for {
				elemStart := p.Mark()
				childMode := seqNone
				if mode != seqAlone {
					childMode = seqLast
				}
				elem := p.parsePattern1(childMode)
				elems = append(elems, elem)
				more := p.EatIf(token.Comma)
				if more {
					if _, isSeq := elem.(*ast.PatSeqWildcard); isSeq {
						p.reportHint(p.Origin(elemStart), "sequence wildcard `_*` is not allowed here",
							"`_*` may only terminate an extractor's argument list")
					}
					continue
				}
				break
			}
		}
		p.Expect(token.RParen)
		return &ast.PatExtract{Pos: p.Origin(start), Fun: ref, TypeArgs: typeArgs, Patterns: elems}
	}
	return &ast.PatStableRef{Pos: p.Origin(start), Ref: ref}
}
