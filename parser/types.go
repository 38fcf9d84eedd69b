package parser

import (
	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/token"
)

// ParseType is the types entry point: the outermost level handles function
// arrows (including context-function and dependent forms) and falls
// through to the infix/simple-type levels otherwise.
func (p *Parser) ParseType() ast.Type {
	start := p.Mark()
	if p.quasiAvailable() {
		if q, ok := p.tryParseTypeQuasi(); ok {
			return q
		}
	}

	if t, ok := p.tryParseFunctionType(start); ok {
		return t
	}

	tpe := p.parseTypeInfixLevel()
	if p.At(token.LBrace) {
		tpe = p.parseRefinement(start, tpe)
	}
	if p.Dialect.AllowExistentialTypes && p.At(token.KwForSome) {
		tpe = p.parseExistentialSuffix(start, tpe)
	}
	return p.parseTypeAnnotations(start, tpe)
}

// parseExistentialSuffix finishes `base forSome { decls }`, gated by
// AllowExistentialTypes since Scala 3 dialects drop the existential-types
// feature entirely.
func (p *Parser) parseExistentialSuffix(start int, base ast.Type) ast.Type {
	p.Eat() // forSome
	p.Expect(token.LBrace)
	var decls []ast.Stat
	for !p.At(token.RBrace) && !p.End() {
		decls = append(decls, p.parseTopStat())
		if !p.EatIf(token.Semicolon) && !p.HadNewlineBefore() {
			break
		}
	}
	p.Expect(token.RBrace)
	return &ast.TypeExistential{Pos: p.Origin(start), Tpe: base, Decls: decls}
}

// tryParseTypeQuasi recognizes a splice placeholder in type position,
// dialect-gated by AllowUnquotes.
func (p *Parser) tryParseTypeQuasi() (ast.Type, bool) {
	if !p.Dialect.AllowUnquotes || !p.At(token.LitSpliceStart) {
		return nil, false
	}
	start := p.Mark()
	p.Eat()
	name, _ := p.Expect(token.IdentLower)
	p.Expect(token.LitSpliceEnd)
	return &ast.QuasiType{Pos: p.Origin(start), Name: name.Text}, true
}

func (p *Parser) quasiAvailable() bool { return p.Dialect.AllowUnquotes }

// tryParseFunctionType speculatively parses a parameter list followed by
// `=>` or `?=>`, backtracking to a tuple/parenthesized type on failure —
// tuple, function, and dependent-function types all begin with `(`, so the
// distinction only resolves once the closing arrow (or its absence)
// appears.
func (p *Parser) tryParseFunctionType(start int) (ast.Type, bool) {
	if !p.At(token.LParen) {
		return nil, false
	}
	cp := p.Checkpoint()

	named, plain, ok := p.tryParseTypeParamList()
	if !ok {
		p.Restore(cp)
		return nil, false
	}

	switch {
	case p.EatIf(token.ContextArrow):
		res := p.ParseType()
		return &ast.TypeContextFunction{Pos: p.Origin(start), Params: plain, Res: res}, true
	case p.EatIf(token.Arrow):
		res := p.ParseType()
		if len(named) > 0 {
			return &ast.TypeDependentFunction{Pos: p.Origin(start), Params: named, Res: res}, true
		}
		return &ast.TypeFunction{Pos: p.Origin(start), Params: plain, Res: res}, true
	default:
		p.Restore(cp)
		return nil, false
	}
}

// tryParseTypeParamList parses `(name: T, ...)` or `(T, ...)`, reporting
// whether every element had a name (named != nil) so the caller can decide
// between TypeDependentFunction and TypeFunction. Returns ok=false (with
// the cursor left wherever it stopped; caller must Restore) if the
// contents don't parse as a type-or-named-type list at all.
func (p *Parser) tryParseTypeParamList() (named []*ast.TypeNamedParam, plain []ast.Type, ok bool) {
	listStart := p.Mark()
	p.Eat() // (
	if p.EatIf(token.RParen) {
		return nil, nil, true
	}
	allNamed := true
	for {
		elemStart := p.Mark()
		if p.At(token.IdentLower) && p.peekIsColon() {
			nameTok := p.Eat()
			p.Eat() // :
			tpe := p.ParseType()
			n := &ast.Name{Pos: p.Origin(elemStart), Value: nameTok.Text}
			named = append(named, &ast.TypeNamedParam{Pos: p.Origin(elemStart), Name: n, Tpe: tpe})
			plain = append(plain, tpe)
		} else {
			allNamed = false
			plain = append(plain, p.ParseType())
		}
		if !p.EatIf(token.Comma) {
			break
		}
	}
	if _, closed := p.Expect(token.RParen); !closed {
		return nil, nil, false
	}
	if !allNamed {
		if len(named) > 0 {
			p.report(p.Origin(listStart), "named and unnamed parameter types cannot be mixed in one list")
		}
		named = nil
	}
	return named, plain, true
}

// peekIsColon reports whether the token after the current one is `:`,
// without consuming anything — the bounded one-token lookahead the
// teacher's own peekIsIdent (syntax/parser_code.go) uses for a similar
// disambiguation.
func (p *Parser) peekIsColon() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.Colon)
	p.Restore(cp)
	return at
}

// parseTypeAnnotations wraps tpe in TypeAnnotated for each trailing `@Annot`.
func (p *Parser) parseTypeAnnotations(start int, tpe ast.Type) ast.Type {
	var annots []ast.Init
	for p.At(token.At) {
		annots = append(annots, p.parseAnnotationInit())
	}
	if len(annots) == 0 {
		return tpe
	}
	return &ast.TypeAnnotated{Pos: p.Origin(start), Tpe: tpe, Annots: annots}
}

func (p *Parser) parseAnnotationInit() ast.Init {
	start := p.Mark()
	p.Eat() // @
	tpe := p.parseSimpleType()
	argLists := p.parseArgListsOpt()
	return &ast.InitCall{Pos: p.Origin(start), Tpe: tpe, ArgLists: argLists}
}

// --- infix level (&, |, user-defined infix type constructors) ---

type typeInfixEngine struct{ p *Parser }

func (e typeInfixEngine) AtOperator(cur *Cursor) (string, bool) {
	if cur.At(token.Ampersand) && e.p.Dialect.AllowIntersectionTypes {
		return "&", true
	}
	if cur.At(token.IdentOp) {
		return cur.CurrentToken().Text, true
	}
	if cur.At(token.IdentLower) && cur.Current() != token.EOF {
		// A lower-case identifier can be a user-defined infix type
		// constructor (`T Or U`), but never when it is actually a soft
		// keyword the surrounding grammar already claimed (`derives`,
		// `extends`, ...); callers that need those reserved never route
		// through here with such a word still pending.
		return cur.CurrentToken().Text, true
	}
	return "", false
}

func (e typeInfixEngine) ParseOperand(cur *Cursor, minPrec int) ast.Type {
	return e.p.parseTypeApplied()
}

func (e typeInfixEngine) Reduce(lhs ast.Type, op string, rhs []ast.Type) ast.Type {
	start := lhs.Origin().Start
	opNode := &ast.Name{Value: op}
	if op == "|" {
		// `|` is a fixed, non-dialect-gated built-in infix type operator;
		// it is still represented through TypeApplyInfix, see
		// ast/types.go's note on why no dedicated TypeOr node exists.
	}
	r := rhs[0]
	for _, extra := range rhs[1:] {
		r = &ast.TypeTuple{Elements: []ast.Type{r, extra}}
	}
	return &ast.TypeApplyInfix{Pos: e.p.Pos.Origin(start, e.p.Mark()-1), Lhs: lhs, Op: opNode, Rhs: r}
}

func (e typeInfixEngine) SplatTuple(rhs ast.Type) ([]ast.Type, bool) {
	if t, ok := rhs.(*ast.TypeTuple); ok {
		return t.Elements, true
	}
	return nil, false
}

func (p *Parser) parseTypeInfixLevel() ast.Type {
	return ParseInfix[ast.Type](p.Cursor, typeInfixEngine{p}, 0)
}

// parseTypeApplied parses a simple type plus any trailing `[args]`
// application and `#Member` projection.
func (p *Parser) parseTypeApplied() ast.Type {
	start := p.Mark()
	tpe := p.parseSimpleType()
	for {
		switch {
		case p.At(token.LBracket):
			args := p.parseTypeArgList()
			tpe = &ast.TypeApply{Pos: p.Origin(start), Tpe: tpe, TypeArgs: args}
		case p.At(token.Hash):
			p.Eat()
			nameTok, _ := p.Expect(token.IdentUpper)
			name := &ast.TypeName{Pos: p.Origin(start), Value: nameTok.Text}
			tpe = &ast.TypeProject{Pos: p.Origin(start), Qual: tpe, Name: name}
		case p.At(token.Dot):
			p.Eat()
			if p.EatIf(token.KwType) {
				// expr.type handled in parseSimpleType for the This/Name
				// qualifier case; here we only get `.type` after an
				// already-built qualified type, which Scala disallows, so
				// treat as a project of the synthesized name "type".
				name := &ast.TypeName{Pos: p.Origin(start), Value: "type"}
				tpe = &ast.TypeProject{Pos: p.Origin(start), Qual: tpe, Name: name}
				continue
			}
			nameTok, _ := p.Expect(token.IdentUpper)
			name := &ast.TypeName{Pos: p.Origin(start), Value: nameTok.Text}
			tpe = &ast.TypeProject{Pos: p.Origin(start), Qual: tpe, Name: name}
		default:
			return tpe
		}
	}
}

func (p *Parser) parseTypeArgList() []ast.Type {
	p.Eat() // [
	var args []ast.Type
	if !p.At(token.RBracket) {
		for {
			args = append(args, p.parseWildcardOrType())
			if !p.EatIf(token.Comma) {
				break
			}
		}
	}
	p.Expect(token.RBracket)
	return args
}

func (p *Parser) parseWildcardOrType() ast.Type {
	if p.At(token.Underscore) {
		start := p.Mark()
		p.Eat()
		return &ast.TypeWildcard{Pos: p.Origin(start)}
	}
	return p.ParseType()
}

// parseSimpleType handles the atoms of the type grammar: names, paths,
// singleton types, tuples, refinements, match types, and type lambdas.
func (p *Parser) parseSimpleType() ast.Type {
	start := p.Mark()
	switch {
	case p.Dialect.AllowTypeLambdas && p.At(token.LBracket):
		return p.parseTypeLambdaOrPolyFunc(start)
	case p.At(token.LParen):
		return p.parseTupleOrParenType(start)
	case p.At(token.LBrace):
		return p.parseRefinement(start, nil)
	case p.At(token.Underscore):
		p.Eat()
		return p.parseWildcardBounds(start)
	case p.At(token.KwForSome):
		return p.parseExistentialFallback(start)
	case p.At(token.TripleDot), p.At(token.Hash):
		p.Unexpected("type")
		p.Eat()
		return &ast.TypeName{Pos: p.Origin(start), Value: "<error>"}
	default:
		return p.parsePathType(start)
	}
}

func (p *Parser) finishMatchType(start int, scrutinee ast.Type) ast.Type {
	p.Expect(token.KwMatch)
	p.Expect(token.LBrace)
	var cases []*ast.TypeMatchCase
	for p.At(token.KwCase) {
		caseStart := p.Mark()
		p.Eat()
		pat := p.ParseType()
		p.Expect(token.Arrow)
		body := p.ParseType()
		cases = append(cases, &ast.TypeMatchCase{Pos: p.Origin(caseStart), Pat: pat, Body: body})
	}
	p.Expect(token.RBrace)
	return &ast.TypeMatch{Pos: p.Origin(start), Scrutinee: scrutinee, Cases: cases}
}

func (p *Parser) parseWildcardBounds(start int) ast.Type {
	w := &ast.TypeWildcard{Pos: p.Origin(start)}
	if p.EatIf(token.Subtype) {
		w.Upper = p.ParseType()
	}
	if p.EatIf(token.Supertype) {
		w.Lower = p.ParseType()
	}
	return w
}

func (p *Parser) parseExistentialFallback(start int) ast.Type {
	// `T forSome { decls }`; the leading T was already consumed by the
	// caller's infix/applied level in the one context this appears
	// (trailing modifier on an already-parsed type), so here we only
	// handle a forSome with no visible base, which is a parse error in
	// real Scala. We still build a best-effort node rather than abort,
	// since entry points must never panic on malformed input.
	p.Eat()
	p.Expect(token.LBrace)
	var decls []ast.Stat
	p.Expect(token.RBrace)
	return &ast.TypeExistential{Pos: p.Origin(start), Tpe: &ast.TypeName{Value: "<error>"}, Decls: decls}
}

func (p *Parser) parseRefinement(start int, base ast.Type) ast.Type {
	p.Eat() // {
	var decls []ast.Stat
	for !p.At(token.RBrace) && !p.End() {
		decls = append(decls, p.parseRefinementStat())
		p.EatIf(token.Semicolon)
	}
	p.Expect(token.RBrace)
	return &ast.TypeRefine{Pos: p.Origin(start), Base: base, Decls: decls}
}

// parseRefinementStat parses one statement inside a `{ ... }` refinement by
// delegating to parseDeclOnlyStat. Definitions with a body are accepted as
// well; nothing here rejects them.
func (p *Parser) parseRefinementStat() ast.Stat {
	return p.parseDeclOnlyStat()
}

func (p *Parser) parseTupleOrParenType(start int) ast.Type {
	p.Eat() // (
	if p.EatIf(token.RParen) {
		return &ast.TypeTuple{Pos: p.Origin(start)}
	}
	var elems []ast.Type
	for {
		elems = append(elems, p.ParseType())
		if !p.EatIf(token.Comma) {
			break
		}
	}
	p.Expect(token.RParen)
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TypeTuple{Pos: p.Origin(start), Elements: elems}
}

// parseTypeLambdaOrPolyFunc parses `[X, Y] =>> T` or `[X, Y] => T`,
// dialect-gated by AllowTypeLambdas.
func (p *Parser) parseTypeLambdaOrPolyFunc(start int) ast.Type {
	params := p.parseTypeParamListBracketed()
	switch {
	case p.EatIf(token.Arrow):
		body := p.ParseType()
		return &ast.TypeLambda{Pos: p.Origin(start), TypeParams: params, Body: body, IsPolyFunc: true}
	default:
		p.Expect(token.IdentOp) // `=>>`, lexed as an operator identifier
		body := p.ParseType()
		return &ast.TypeLambda{Pos: p.Origin(start), TypeParams: params, Body: body}
	}
}

func (p *Parser) parseTypeParamListBracketed() []*ast.TypeParam {
	p.Eat() // [
	var params []*ast.TypeParam
	for !p.At(token.RBracket) && !p.End() {
		params = append(params, p.parseTypeParam())
		if !p.EatIf(token.Comma) {
			break
		}
	}
	p.Expect(token.RBracket)
	return params
}

// parseTypeParam parses one element of a `[...]` type parameter clause,
// including variance annotations, bounds, view bounds, and context
// bounds.
func (p *Parser) parseTypeParam() *ast.TypeParam {
	start := p.Mark()
	tp := &ast.TypeParam{}
	if p.At(token.IdentOp) && (p.CurrentToken().Text == "+" || p.CurrentToken().Text == "-") {
		p.Eat() // variance marker, not separately modeled: variance-checking is out of scope
	}
	switch {
	case p.At(token.Underscore):
		p.Eat()
		tp.Name = "_"
	default:
		nameTok, _ := p.Expect(token.IdentUpper)
		tp.Name = nameTok.Text
	}
	if p.At(token.LBracket) {
		tp.TypeParams = p.parseTypeParamListBracketed()
	}
	if p.EatIf(token.Subtype) {
		tp.Upper = p.ParseType()
	}
	if p.EatIf(token.Supertype) {
		tp.Lower = p.ParseType()
	}
	for p.EatIf(token.Viewbound) {
		tp.ViewBounds = append(tp.ViewBounds, p.ParseType())
	}
	for p.At(token.Colon) {
		p.Eat()
		tp.ContextBounds = append(tp.ContextBounds, p.ParseType())
	}
	tp.Pos = p.Origin(start)
	return tp
}

// parsePathType parses `Name`, `qual.Name`, `expr.type`, possibly followed
// by a match-type tail when the dialect allows it.
func (p *Parser) parsePathType(start int) ast.Type {
	var base ast.Type
	switch {
	case p.At(token.KwThis):
		term := p.parseStablePrefixTerm(start)
		base = p.finishSingletonOrSelect(start, term)
	case p.At(token.IdentUpper), p.At(token.IdentLower), p.At(token.IdentBackquoted):
		nameTok := p.Eat()
		name := &ast.TypeName{Pos: p.Origin(start), Value: nameTok.Text}
		base = p.parseTypeSelectChain(start, name)
	default:
		p.Unexpected("type")
		base = &ast.TypeName{Pos: p.Origin(start), Value: "<error>"}
	}
	if p.Dialect.AllowMatchTypes && p.At(token.KwMatch) {
		return p.finishMatchType(start, base)
	}
	return base
}

// parseTypeSelectChain extends a leading TypeName through `.member` and
// `.type` singleton suffixes.
func (p *Parser) parseTypeSelectChain(start int, name *ast.TypeName) ast.Type {
	var tpe ast.Type = name
	for p.At(token.Dot) {
		cp := p.Checkpoint()
		p.Eat()
		if p.At(token.KwType) {
			p.Eat()
			ref := typeToTermPath(tpe)
			return &ast.TypeSingleton{Pos: p.Origin(start), Ref: ref}
		}
		if p.At(token.IdentUpper) || p.At(token.IdentLower) {
			nameTok := p.Eat()
			n := &ast.TypeName{Pos: p.Origin(start), Value: nameTok.Text}
			ref := typeToTermPath(tpe)
			tpe = &ast.TypeSelect{Pos: p.Origin(start), Qual: ref, Name: n}
			continue
		}
		p.Restore(cp)
		break
	}
	return tpe
}

// typeToTermPath converts an already-parsed qualifier type back into the
// stable-path term it denotes, since `.` is overloaded between type-select
// and singleton-type-of-a-term in Scala's grammar.
func typeToTermPath(t ast.Type) ast.Term {
	switch t := t.(type) {
	case *ast.TypeName:
		return &ast.Name{Pos: t.Pos, Value: t.Value}
	case *ast.TypeSelect:
		return &ast.Select{Pos: t.Pos, Qual: t.Qual, Name: &ast.Name{Pos: t.Name.Pos, Value: t.Name.Value}}
	default:
		return &ast.Name{Value: "<error>"}
	}
}

func (p *Parser) finishSingletonOrSelect(start int, term ast.Term) ast.Type {
	p.Expect(token.Dot)
	if p.EatIf(token.KwType) {
		return &ast.TypeSingleton{Pos: p.Origin(start), Ref: term}
	}
	nameTok, _ := p.Expect(token.IdentUpper)
	return &ast.TypeSelect{Pos: p.Origin(start), Qual: term, Name: &ast.TypeName{Pos: p.Origin(start), Value: nameTok.Text}}
}

// parseStablePrefixTerm parses a `this` qualifier used as a
// singleton-type or type-select prefix.
func (p *Parser) parseStablePrefixTerm(start int) ast.Term {
	p.Eat() // this
	return &ast.This{Pos: p.Origin(start)}
}
