package parser

import (
	"math"
	"strconv"

	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/source"
	"github.com/langkit/scalaparse/token"
)

// ParseTerm is the expression grammar's entry point. The outermost decision
// is the lambda-vs-expr1 disambiguation: a parameter list or bare identifier
// followed by `=>`/`?=>` is a Function; everything else falls through to
// expr1.
func (p *Parser) ParseTerm() ast.Term {
	if lam, ok := p.tryParseLambda(); ok {
		return lam
	}
	return p.parseExpr1()
}

// tryParseLambda speculatively parses a parameter list (or a single bare
// name, or `implicit name`) followed by `=>`/`?=>`, restoring the cursor on
// failure so the caller can fall back to ordinary expression parsing — a
// fork/restore speculative lookahead applied to the single hardest
// disambiguation in the term grammar.
func (p *Parser) tryParseLambda() (ast.Term, bool) {
	start := p.Mark()
	cp := p.Checkpoint()

	var params []*ast.TermParam
	switch {
	case p.At(token.LParen):
		var ok bool
		params, ok = p.tryParseTermParamList()
		if !ok {
			p.Restore(cp)
			return nil, false
		}
	case p.At(token.KwImplicit) && p.peekIsIdentAfterImplicit():
		p.Eat()
		nameTok := p.Eat()
		params = []*ast.TermParam{{Pos: p.Origin(start), Name: &ast.Name{Value: nameTok.Text}}}
	case p.At(token.IdentLower) && p.peekIsArrow():
		nameTok := p.Eat()
		params = []*ast.TermParam{{Pos: p.Origin(start), Name: &ast.Name{Value: nameTok.Text}}}
	case p.At(token.Underscore) && p.peekIsArrow():
		p.Eat()
		params = []*ast.TermParam{{Pos: p.Origin(start), Name: &ast.Name{Value: "_"}}}
	default:
		return nil, false
	}

	if !p.EatIf(token.Arrow) && !p.EatIf(token.ContextArrow) {
		p.Restore(cp)
		return nil, false
	}
	body := p.ParseTerm()
	return &ast.Function{Pos: p.Origin(start), Params: params, Body: body}, true
}

func (p *Parser) peekIsArrow() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.Arrow) || p.At(token.ContextArrow)
	p.Restore(cp)
	return at
}

func (p *Parser) peekIsIdentAfterImplicit() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.IdentLower)
	p.Restore(cp)
	return at
}

// tryParseTermParamList parses `(mods name: Type = default, ...)`, used
// both for a lambda's parameter list and (via parser/definition.go) for a
// def's parameter list.
func (p *Parser) tryParseTermParamList() ([]*ast.TermParam, bool) {
	p.Eat() // (
	if p.Classifier.AtUsing(p.Cursor) {
		p.Eat()
	}
	var params []*ast.TermParam
	if p.EatIf(token.RParen) {
		return params, true
	}
	for {
		param, ok := p.tryParseTermParam()
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if !p.EatIf(token.Comma) {
			break
		}
	}
	if _, closed := p.Expect(token.RParen); !closed {
		return nil, false
	}
	return params, true
}

func (p *Parser) tryParseTermParam() (*ast.TermParam, bool) {
	start := p.Mark()
	var mods []ast.Mod
	for {
		m, ok := p.tryParseParamModifier()
		if !ok {
			break
		}
		mods = append(mods, m)
	}
	if !p.At(token.IdentLower) && !p.At(token.IdentUpper) && !p.At(token.Underscore) {
		return nil, false
	}
	nameTok := p.Eat()
	param := &ast.TermParam{Mods: mods, Name: &ast.Name{Value: nameTok.Text}}
	if p.EatIf(token.Colon) {
		param.Decltpe = p.parseParamType()
	}
	if p.EatIf(token.Equals) {
		param.Default = p.ParseTerm()
	}
	param.Pos = p.Origin(start)
	return param, true
}

// parseParamType parses a parameter's declared type, including the
// parameter-position-only `=>T` (by-name) and `T*` (repeated) forms.
func (p *Parser) parseParamType() ast.Type {
	start := p.Mark()
	if p.EatIf(token.Arrow) {
		return &ast.TypeByName{Pos: p.Origin(start), Tpe: p.ParseType()}
	}
	tpe := p.ParseType()
	if p.At(token.IdentOp) && p.CurrentToken().Text == "*" {
		p.Eat()
		return &ast.TypeRepeated{Pos: p.Origin(start), Tpe: tpe}
	}
	return tpe
}

func (p *Parser) tryParseParamModifier() (ast.Mod, bool) {
	start := p.Mark()
	switch {
	case p.At(token.KwImplicit):
		p.Eat()
		return &ast.ModImplicit{Pos: p.Origin(start)}, true
	case p.Classifier.AtErased(p.Cursor):
		p.Eat()
		return &ast.ModImplicit{Pos: p.Origin(start)}, true // erased carries no dedicated Mod; tracked as an implicit-like marker
	case p.At(token.KwVal):
		p.Eat()
		return &ast.ModValParam{Pos: p.Origin(start)}, true
	case p.At(token.KwVar):
		p.Eat()
		return &ast.ModVarParam{Pos: p.Origin(start)}, true
	default:
		return nil, false
	}
}

// parseExpr1 handles the keyword-introduced expression forms:
// if/while/do-while/for/try/throw/return/new, falling through to
// the assignment/ascription/match level otherwise.
func (p *Parser) parseExpr1() ast.Term {
	start := p.Mark()
	switch {
	case p.At(token.KwIf):
		return p.parseIf(start)
	case p.At(token.KwWhile):
		return p.parseWhile(start)
	case p.At(token.KwDo):
		return p.parseDoWhile(start)
	case p.At(token.KwFor):
		return p.parseFor(start)
	case p.At(token.KwTry):
		return p.parseTry(start)
	case p.At(token.KwThrow):
		p.Eat()
		return &ast.Throw{Pos: p.Origin(start), Expr: p.ParseTerm()}
	case p.At(token.KwReturn):
		p.Eat()
		if p.atExprEnd() {
			return &ast.Return{Pos: p.Origin(start)}
		}
		return &ast.Return{Pos: p.Origin(start), Expr: p.ParseTerm()}
	case p.At(token.KwNew):
		return p.parseNew(start)
	default:
		return p.parsePostfixLevel(start)
	}
}

// atExprEnd reports whether the cursor sits at a token that can never begin
// an expression, used to decide whether a bare `return` takes an operand.
func (p *Parser) atExprEnd() bool {
	switch p.Current() {
	case token.Semicolon, token.RBrace, token.RParen, token.EOF, token.Comma:
		return true
	}
	return p.StoppedAtNewline()
}

func (p *Parser) parseIf(start int) ast.Term {
	p.Eat() // if
	p.Expect(token.LParen)
	cond := p.ParseTerm()
	p.Expect(token.RParen)
	p.EatIf(token.Semicolon)
	then := p.ParseTerm()
	node := &ast.If{Pos: p.Origin(start), Cond: cond, Then: then}
	cp := p.Checkpoint()
	p.EatIf(token.Semicolon)
	if p.At(token.KwElse) {
		p.Eat()
		node.Else = p.ParseTerm()
	} else {
		p.Restore(cp)
	}
	node.Pos = p.Origin(start)
	return node
}

func (p *Parser) parseWhile(start int) ast.Term {
	p.Eat()
	p.Expect(token.LParen)
	cond := p.ParseTerm()
	p.Expect(token.RParen)
	body := p.ParseTerm()
	return &ast.While{Pos: p.Origin(start), Cond: cond, Body: body}
}

func (p *Parser) parseDoWhile(start int) ast.Term {
	p.Eat() // do
	body := p.ParseTerm()
	p.EatIf(token.Semicolon)
	p.Expect(token.KwWhile)
	p.Expect(token.LParen)
	cond := p.ParseTerm()
	p.Expect(token.RParen)
	return &ast.DoWhile{Pos: p.Origin(start), Body: body, Cond: cond}
}

func (p *Parser) parseFor(start int) ast.Term {
	p.Eat() // for
	braced := p.At(token.LBrace)
	closeKind := token.RParen
	if braced {
		closeKind = token.RBrace
	}
	p.Eat() // ( or {
	var enums []ast.Enumerator
	enums = append(enums, p.parseGenerator())
	for p.EatIf(token.Semicolon) || p.EatIf(token.Comma) || p.At(token.KwIf) {
		enums = append(enums, p.parseEnumerator())
	}
	p.Expect(closeKind)
	p.EatIf(token.Semicolon)
	if p.EatIf(token.KwYield) {
		body := p.ParseTerm()
		return &ast.ForYield{Pos: p.Origin(start), Enums: enums, Body: body}
	}
	body := p.ParseTerm()
	return &ast.For{Pos: p.Origin(start), Enums: enums, Body: body}
}

func (p *Parser) parseGenerator() ast.Enumerator {
	start := p.Mark()
	pat := p.ParsePattern()
	p.Expect(token.LArrow)
	rhs := p.ParseTerm()
	return &ast.Generator{Pos: p.Origin(start), Pat: pat, Rhs: rhs}
}

func (p *Parser) parseEnumerator() ast.Enumerator {
	start := p.Mark()
	if p.At(token.KwIf) {
		p.Eat()
		cond := p.parsePostfixLevel(p.Mark())
		return &ast.Guard{Pos: p.Origin(start), Cond: cond}
	}
	if p.Dialect.AllowValInForComprehension && p.At(token.KwVal) {
		p.Eat()
	}
	cp := p.Checkpoint()
	pat := p.ParsePattern()
	if p.At(token.LArrow) {
		p.Eat()
		rhs := p.ParseTerm()
		return &ast.Generator{Pos: p.Origin(start), Pat: pat, Rhs: rhs}
	}
	if p.At(token.Equals) {
		p.Eat()
		rhs := p.ParseTerm()
		return &ast.EnumeratorVal{Pos: p.Origin(start), Pat: pat, Rhs: rhs}
	}
	p.Restore(cp)
	cond := p.ParseTerm()
	return &ast.Guard{Pos: p.Origin(start), Cond: cond}
}

func (p *Parser) parseTry(start int) ast.Term {
	p.Eat() // try
	body := p.ParseTerm()
	node := &ast.Try{Pos: p.Origin(start), Expr: body}
	if p.At(token.KwCatch) {
		p.Eat()
		if p.At(token.LBrace) {
			node.Catches = p.parseCaseClauses()
		} else {
			pat := p.ParsePattern()
			caseBody := p.ParseTerm()
			node.Catches = []*ast.Case{{Pat: pat, Body: caseBody}}
		}
	}
	if p.At(token.KwFinally) {
		p.Eat()
		node.Finally = p.ParseTerm()
	}
	node.Pos = p.Origin(start)
	return node
}

// parseCaseClauses parses `{ case p1 [if g1] => b1 ... }`, shared by match,
// try/catch, and bare partial-function literals.
func (p *Parser) parseCaseClauses() []*ast.Case {
	p.Expect(token.LBrace)
	var cases []*ast.Case
	for p.At(token.KwCase) {
		cases = append(cases, p.parseCaseClause())
	}
	p.Expect(token.RBrace)
	return cases
}

func (p *Parser) parseCaseClause() *ast.Case {
	start := p.Mark()
	p.Eat() // case
	pat := p.ParsePattern()
	var cond ast.Term
	if p.At(token.KwIf) {
		p.Eat()
		cond = p.parsePostfixLevel(p.Mark())
	}
	p.Expect(token.Arrow)
	body := p.parseCaseBody()
	return &ast.Case{Pos: p.Origin(start), Pat: pat, Cond: cond, Body: body}
}

// parseCaseBody parses the statement sequence making up a case arm's body
// as an implicit block, stopping at the next `case`, `}`, or EOF.
func (p *Parser) parseCaseBody() ast.Term {
	start := p.Mark()
	var stats []ast.Stat
	for !p.At(token.KwCase) && !p.At(token.RBrace) && !p.End() {
		stats = append(stats, p.parseBlockStat())
		if !p.EatIf(token.Semicolon) {
			if !p.At(token.KwCase) && !p.At(token.RBrace) {
				continue
			}
			break
		}
	}
	if len(stats) == 1 {
		if t, ok := stats[0].(ast.Term); ok {
			return t
		}
	}
	return &ast.Block{Pos: p.Origin(start), Stats: stats}
}

func (p *Parser) parseNew(start int) ast.Term {
	p.Eat() // new
	init := p.parseInit()
	return &ast.New{Pos: p.Origin(start), Init: init}
}

func (p *Parser) parseInit() ast.Init {
	start := p.Mark()
	tpe := p.parseTypeApplied()
	argLists := p.parseArgListsOpt()
	return &ast.InitCall{Pos: p.Origin(start), Tpe: tpe, ArgLists: argLists}
}

func (p *Parser) parseArgListsOpt() [][]ast.Arg {
	var lists [][]ast.Arg
	for p.At(token.LParen) {
		lists = append(lists, p.parseArgList())
	}
	return lists
}

func (p *Parser) parseArgList() []ast.Arg {
	p.Eat() // (
	var args []ast.Arg
	if p.Classifier.AtUsing(p.Cursor) {
		p.Eat()
	}
	if !p.At(token.RParen) {
		for {
			args = append(args, p.parseArg())
			if !p.EatIf(token.Comma) {
				break
			}
		}
	}
	p.Expect(token.RParen)
	return args
}

func (p *Parser) parseArg() ast.Arg {
	start := p.Mark()
	if p.At(token.IdentLower) && p.peekIsEquals() {
		nameTok := p.Eat()
		p.Eat() // =
		value := p.ParseTerm()
		return ast.Arg{Pos: p.Origin(start), Name: &ast.Name{Value: nameTok.Text}, Value: value}
	}
	value := p.ParseTerm()
	if p.At(token.Colon) && p.peekIsUnderscoreStarAfterColon() {
		p.Eat() // :
		p.Eat() // _
		p.Eat() // *
		return ast.Arg{Pos: p.Origin(start), Value: value, Repeated: true}
	}
	return ast.Arg{Pos: p.Origin(start), Value: value}
}

func (p *Parser) peekIsEquals() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.Equals)
	p.Restore(cp)
	return at
}

func (p *Parser) peekIsUnderscoreStarAfterColon() bool {
	cp := p.Checkpoint()
	p.Eat() // :
	at := p.At(token.Underscore)
	p.Restore(cp)
	return at
}

// --- postfix/infix/ascription level ---

func (p *Parser) parsePostfixLevel(start int) ast.Term {
	lhs := p.parseTermInfixLevel()
	switch {
	case p.At(token.Equals) && isAssignable(lhs):
		p.Eat()
		rhs := p.ParseTerm()
		return &ast.Assign{Pos: p.Origin(start), Lhs: lhs, Rhs: rhs}
	case p.At(token.Colon):
		p.Eat()
		if p.At(token.Underscore) && p.peekIsStarAfterUnderscore() {
			p.Eat()
			p.Eat()
			return &ast.Ascribe{Pos: p.Origin(start), Expr: lhs, Tpe: &ast.TypeRepeated{Tpe: &ast.TypeWildcard{}}}
		}
		tpe := p.ParseType()
		return &ast.Ascribe{Pos: p.Origin(start), Expr: lhs, Tpe: tpe}
	case p.At(token.KwMatch):
		p.Eat()
		cases := p.parseCaseClauses()
		return &ast.Match{Pos: p.Origin(start), Expr: lhs, Cases: cases}
	default:
		return lhs
	}
}

func (p *Parser) peekIsStarAfterUnderscore() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.IdentOp) && p.CurrentToken().Text == "*"
	p.Restore(cp)
	return at
}

func isAssignable(t ast.Term) bool {
	switch t.(type) {
	case *ast.Name, *ast.Select, *ast.Apply:
		return true
	default:
		return false
	}
}

// --- term infix engine ---

type termInfixEngine struct{ p *Parser }

func (e termInfixEngine) AtOperator(cur *Cursor) (string, bool) {
	if cur.At(token.IdentOp) {
		return cur.CurrentToken().Text, true
	}
	if cur.At(token.ColonColon) {
		return "::", true
	}
	if e.p.Classifier.AtMatchableAsInfixOperator(cur) {
		return "match", true
	}
	if cur.At(token.IdentLower) || cur.At(token.IdentBackquoted) {
		return cur.CurrentToken().Text, true
	}
	return "", false
}

func (e termInfixEngine) ParseOperand(cur *Cursor, minPrec int) ast.Term {
	return e.p.parseUnaryPrefix()
}

func (e termInfixEngine) Reduce(lhs ast.Term, op string, rhs []ast.Term) ast.Term {
	start := lhs.Origin().Start
	if op == "match" && len(rhs) == 1 {
		if pf, ok := rhs[0].(*ast.PartialFunction); ok {
			return &ast.Match{Pos: e.p.Pos.Origin(start, e.p.Mark()-1), Expr: lhs, Cases: pf.Cases}
		}
	}
	return &ast.ApplyInfix{Pos: e.p.Pos.Origin(start, e.p.Mark()-1), Lhs: lhs, Op: &ast.Name{Value: op}, Rhs: rhs}
}

func (e termInfixEngine) SplatTuple(rhs ast.Term) ([]ast.Term, bool) {
	if t, ok := rhs.(*ast.Tuple); ok {
		return t.Elements, true
	}
	return nil, false
}

func (p *Parser) parseTermInfixLevel() ast.Term {
	return ParseInfix[ast.Term](p.Cursor, termInfixEngine{p}, 0)
}

// parseUnaryPrefix handles prefix `-`/`!`/`~`/`+` before falling through to
// the postfix-application chain.
func (p *Parser) parseUnaryPrefix() ast.Term {
	start := p.Mark()
	if p.At(token.IdentOp) {
		switch p.CurrentToken().Text {
		case "-", "!", "~", "+":
			op := p.Eat().Text
			arg := p.parseUnaryPrefix()
			return &ast.ApplyUnary{Pos: p.Origin(start), Op: op, Arg: arg}
		}
	}
	return p.parsePostfixChain()
}

// parsePostfixChain parses a simple term plus any trailing `.member`,
// `(args)`, `[TypeArgs]`, and the `_` eta-expansion postfix marker.
func (p *Parser) parsePostfixChain() ast.Term {
	start := p.Mark()
	term := p.parseSimpleTerm()
	for {
		switch {
		case p.At(token.Dot):
			p.Eat()
			var nameTok token.Token
			switch {
			case p.At(token.IdentUpper):
				nameTok = p.Eat()
			default:
				nameTok, _ = p.Expect(token.IdentLower)
			}
			term = &ast.Select{Pos: p.Origin(start), Qual: term, Name: &ast.Name{Pos: p.Origin(start), Value: nameTok.Text}}
		case p.directlyAtArgs():
			args := p.parseArgList()
			term = &ast.Apply{Pos: p.Origin(start), Fun: term, Args: args}
		case p.At(token.LBracket):
			typeArgs := p.parseTypeArgList()
			term = &ast.ApplyType{Pos: p.Origin(start), Fun: term, TypeArgs: typeArgs}
		case p.At(token.Underscore) && !p.HadNewlineBefore():
			p.Eat()
			term = &ast.Eta{Pos: p.Origin(start), Fun: term}
		default:
			return term
		}
	}
}

// directlyAtArgs reports whether the cursor sits at `(` with no preceding
// newline — Scala forbids a call's argument list from starting a new
// logical line when significant indentation is active.
func (p *Parser) directlyAtArgs() bool {
	return p.At(token.LParen) && !(p.Dialect.AllowSignificantIndentation && p.HadNewlineBefore())
}

// parseSimpleTerm handles the term grammar's atoms: literals,
// identifiers/paths, this/super, parenthesized/tuple
// expressions, blocks, placeholders, interpolation, XML, and macro
// quote/splice forms.
func (p *Parser) parseSimpleTerm() ast.Term {
	start := p.Mark()
	switch {
	case p.Dialect.AllowUnquotes && p.At(token.LitSpliceStart):
		return p.parseTermQuasi()

	case p.At(token.LitInt), p.At(token.LitLong), p.At(token.LitFloat), p.At(token.LitDouble),
		p.At(token.LitChar), p.At(token.LitString), p.At(token.LitStringTriple), p.At(token.LitSymbol),
		p.At(token.KwTrue), p.At(token.KwFalse), p.At(token.KwNull):
		return p.parseLiteralTerm()

	case p.At(token.LitInterpStart):
		return p.parseInterpolation()

	case p.Dialect.AllowXMLLiterals && p.At(token.XMLStart):
		return p.parseXml()

	case p.At(token.Underscore):
		p.Eat()
		return &ast.Placeholder{Pos: p.Origin(start)}

	case p.At(token.KwThis):
		p.Eat()
		return &ast.This{Pos: p.Origin(start)}

	case p.At(token.KwSuper):
		p.Eat()
		sup := &ast.Super{Pos: p.Origin(start)}
		if p.At(token.LBracket) {
			p.Eat()
			nameTok, _ := p.Expect(token.IdentUpper)
			sup.MixinOf = nameTok.Text
			p.Expect(token.RBracket)
		}
		return sup

	case p.At(token.IdentLower), p.At(token.IdentUpper), p.At(token.IdentBackquoted):
		nameTok := p.Eat()
		return &ast.Name{Pos: p.Origin(start), Value: nameTok.Text, IsBackquoted: nameTok.Kind == token.IdentBackquoted}

	case p.At(token.LParen):
		return p.parseParensOrTuple(start)

	case p.At(token.LBrace):
		return p.parseBraceExpr(start)

	case p.Dialect.AllowQuasiquotes && p.At(token.QuoteBrace):
		return p.parseQuoteTerm(start)

	case p.Dialect.AllowQuasiquotes && p.At(token.QuoteBracket):
		return p.parseQuoteType(start)

	case p.Dialect.AllowMacroSplices && p.At(token.SpliceBrace):
		p.Eat() // ${
		body := p.ParseTerm()
		p.Expect(token.RBrace)
		return &ast.MacroSplice{Pos: p.Origin(start), Body: body}

	default:
		p.Unexpected("expression")
		p.Eat()
		return &ast.Name{Pos: p.Origin(start), Value: "<error>"}
	}
}

func (p *Parser) parseTermQuasi() ast.Term {
	start := p.Mark()
	p.Eat()
	name, _ := p.Expect(token.IdentLower)
	p.Expect(token.LitSpliceEnd)
	return &ast.QuasiTerm{Pos: p.Origin(start), Name: name.Text}
}

// parseLiteralTerm decodes a literal token's stored payload into the
// matching Lit* node; shared by term and pattern parsing, since a literal
// is also a legal pattern.
func (p *Parser) parseLiteralTerm() ast.Term {
	start := p.Mark()
	tok := p.Eat()
	pos := p.Origin(start)
	switch tok.Kind {
	case token.LitInt:
		return &ast.LitInt{Pos: pos, Value: p.literalInt(tok, pos, 32)}
	case token.LitLong:
		return &ast.LitLong{Pos: pos, Value: p.literalInt(tok, pos, 64)}
	case token.LitFloat:
		return &ast.LitFloat{Pos: pos, Value: float32(p.literalFloat(tok, pos, 32))}
	case token.LitDouble:
		return &ast.LitDouble{Pos: pos, Value: p.literalFloat(tok, pos, 64)}
	case token.LitChar:
		r, _ := tok.Literal.(rune)
		return &ast.LitChar{Pos: pos, Value: r}
	case token.LitString, token.LitStringTriple:
		s, _ := tok.Literal.(string)
		return &ast.LitString{Pos: pos, Value: s}
	case token.LitSymbol:
		s, _ := tok.Literal.(string)
		return &ast.LitSymbol{Pos: pos, Value: s}
	case token.KwTrue:
		return &ast.LitBoolean{Pos: pos, Value: true}
	case token.KwFalse:
		return &ast.LitBoolean{Pos: pos, Value: false}
	case token.KwNull:
		return &ast.LitNull{Pos: pos}
	default:
		return &ast.LitNull{Pos: pos}
	}
}

// literalInt decodes an integer literal token and checks the decoded value
// against bits (32 for Int, 64 for Long), reporting an out-of-range
// diagnostic rather than silently truncating or wrapping.
func (p *Parser) literalInt(tok token.Token, pos source.Origin, bits int) int64 {
	v, ok := tok.Literal.(int64)
	if !ok {
		// The scanner only leaves Literal un-decoded when the digits
		// overflowed int64 outright.
		p.report(pos, "integer literal out of range")
		v, _ = strconv.ParseInt(tok.Text, 0, 64)
		return v
	}
	if bits < 64 {
		limit := int64(1) << (bits - 1)
		if v < -limit || v >= limit {
			p.report(pos, "integer literal out of range")
		}
	}
	return v
}

// literalFloat decodes a floating-point literal token. The scanner already
// parses Float-suffixed and Double literals at their respective bit widths,
// so an overflow surfaces here as an infinite value with no corresponding
// Infinity spelling in source.
func (p *Parser) literalFloat(tok token.Token, pos source.Origin, bits int) float64 {
	v, ok := tok.Literal.(float64)
	if !ok {
		p.report(pos, "floating-point literal out of range")
		v, _ = strconv.ParseFloat(tok.Text, bits)
		return v
	}
	if math.IsInf(v, 0) {
		p.report(pos, "floating-point literal out of range")
	}
	return v
}

func (p *Parser) parseInterpolation() ast.Term {
	start := p.Mark()
	prefixTok := p.Eat() // LitInterpStart
	prefix := &ast.Name{Pos: p.Origin(start), Value: prefixTok.Text}
	var parts []string
	var args []ast.Term
	for {
		part := p.Eat() // LitInterpPart
		parts = append(parts, part.Text)
		if p.At(token.LitInterpEnd) {
			p.Eat()
			break
		}
		p.Expect(token.LitSpliceStart)
		args = append(args, p.ParseTerm())
		p.Expect(token.LitSpliceEnd)
	}
	return &ast.Interpolate{Pos: p.Origin(start), Prefix: prefix, Parts: parts, Args: args}
}

func (p *Parser) parseXml() ast.Term {
	start := p.Mark()
	var parts []string
	var args []ast.Term
	for p.At(token.XMLStart) || p.At(token.XMLName) || p.At(token.XMLAttrEq) || p.At(token.XMLText) {
		tok := p.Eat()
		parts = append(parts, tok.Text)
		if p.At(token.LitSpliceStart) {
			p.Eat()
			args = append(args, p.ParseTerm())
			p.Expect(token.LitSpliceEnd)
		}
	}
	p.Expect(token.XMLEnd)
	return &ast.Xml{Pos: p.Origin(start), Parts: parts, Args: args}
}

func (p *Parser) parseQuoteTerm(start int) ast.Term {
	p.Eat() // '{
	body := p.ParseTerm()
	p.Expect(token.RBrace)
	return &ast.QuoteTerm{Pos: p.Origin(start), Body: body}
}

func (p *Parser) parseQuoteType(start int) ast.Term {
	p.Eat() // '[
	body := p.ParseType()
	p.Expect(token.RBracket)
	return &ast.QuoteType{Pos: p.Origin(start), Body: body}
}

// parseParensOrTuple disambiguates `(expr)` from `(e1, e2, ...)` (a Tuple
// literal), both starting identically.
func (p *Parser) parseParensOrTuple(start int) ast.Term {
	p.Eat() // (
	if p.EatIf(token.RParen) {
		return &ast.LitUnit{Pos: p.Origin(start)}
	}
	var elems []ast.Term
	for {
		elems = append(elems, p.ParseTerm())
		if !p.EatIf(token.Comma) {
			break
		}
	}
	p.Expect(token.RParen)
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.Tuple{Pos: p.Origin(start), Elements: elems}
}

// parseBraceExpr parses `{ ... }`: a plain Block of statements, or, when
// the first statement is a `case` clause, a bare PartialFunction literal.
func (p *Parser) parseBraceExpr(start int) ast.Term {
	if p.peekIsCaseAfterBrace() {
		cases := p.parseCaseClauses()
		return &ast.PartialFunction{Pos: p.Origin(start), Cases: cases}
	}
	return p.parseBlock(start)
}

func (p *Parser) peekIsCaseAfterBrace() bool {
	cp := p.Checkpoint()
	p.Eat() // {
	at := p.At(token.KwCase)
	p.Restore(cp)
	return at
}

func (p *Parser) parseBlock(start int) ast.Term {
	p.Eat() // {
	var stats []ast.Stat
	for !p.At(token.RBrace) && !p.End() {
		stats = append(stats, p.parseBlockStat())
		if !p.EatIf(token.Semicolon) && !p.HadNewlineBefore() {
			break
		}
	}
	p.Expect(token.RBrace)
	return &ast.Block{Pos: p.Origin(start), Stats: stats}
}
