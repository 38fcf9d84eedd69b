package parser

import (
	"github.com/langkit/scalaparse/ast"
	"github.com/langkit/scalaparse/token"
)

// ParseSource is the top-level entry point: a compilation unit is an
// optional package clause followed by a statement
// sequence.
func (p *Parser) ParseSource() []ast.Stat {
	var stats []ast.Stat
	for !p.End() {
		stats = append(stats, p.parseTopStat())
		if !p.EatIf(token.Semicolon) && !p.HadNewlineBefore() && !p.End() {
			break
		}
	}
	return stats
}

// ParseStat is the general block/top-level statement entry point.
func (p *Parser) ParseStat() ast.Stat { return p.parseTopStat() }

func (p *Parser) parseTopStat() ast.Stat {
	start := p.Mark()
	switch {
	case p.At(token.KwPackage):
		return p.parsePackage(start)
	case p.At(token.KwImport):
		return p.parseImport(start)
	case p.Dialect.AllowExportStatements && p.At(token.KwExport):
		return p.parseExport(start)
	case p.Classifier.AtEnd(p.Cursor) && p.peekEndMarkerName():
		return p.parseEndMarker(start)
	default:
		return p.parseBlockStat()
	}
}

// parseBlockStat parses one statement inside a block or at the top level,
// after package/import/export/end have already been ruled out by the
// caller where relevant: modifiers plus a definition keyword, or a bare
// expression statement (every Term satisfies Stat directly, see
// ast/stat.go).
func (p *Parser) parseBlockStat() ast.Stat {
	start := p.Mark()
	if p.At(token.KwImport) {
		return p.parseImport(start)
	}
	if p.Dialect.AllowExportStatements && p.At(token.KwExport) {
		return p.parseExport(start)
	}
	if p.Classifier.AtEnd(p.Cursor) && p.peekEndMarkerName() {
		return p.parseEndMarker(start)
	}
	if p.Classifier.AtExtension(p.Cursor) {
		return p.parseExtensionGroup(start)
	}

	mods := p.parseMods()
	return p.parseDefnOrDecl(start, mods)
}

// parseDeclOnlyStat parses one statement of a type refinement body:
// modifiers followed by a declaration or definition. Definitions with a
// body are accepted too; nothing here rejects them.
func (p *Parser) parseDeclOnlyStat() ast.Stat {
	start := p.Mark()
	mods := p.parseMods()
	return p.parseDefnOrDecl(start, mods)
}

func (p *Parser) peekEndMarkerName() bool {
	cp := p.Checkpoint()
	p.Eat() // end
	at := p.At(token.IdentLower) || p.At(token.IdentUpper) || p.At(token.Underscore) || p.Current().IsHardKeyword()
	p.Restore(cp)
	return at
}

func (p *Parser) parseEndMarker(start int) ast.Stat {
	p.Eat() // end
	nameTok := p.Eat()
	return &ast.EndMarker{Pos: p.Origin(start), Name: nameTok.Text}
}

func (p *Parser) parsePackage(start int) ast.Stat {
	p.Eat() // package
	nameStart := p.Mark()
	nameTok, _ := p.Expect(token.IdentUpper)
	name := &ast.Name{Pos: p.Origin(nameStart), Value: nameTok.Text}
	for p.At(token.Dot) {
		p.Eat()
		memberTok, _ := p.Expect(token.IdentUpper)
		name = &ast.Name{Pos: p.Origin(nameStart), Value: name.Value + "." + memberTok.Text}
	}
	if p.At(token.LBrace) {
		p.Eat()
		var stats []ast.Stat
		for !p.At(token.RBrace) && !p.End() {
			stats = append(stats, p.parseTopStat())
			p.EatIf(token.Semicolon)
		}
		p.Expect(token.RBrace)
		return &ast.PkgDecl{Pos: p.Origin(start), Name: name, Stats: stats}
	}
	return &ast.PkgDecl{Pos: p.Origin(start), Name: name}
}

// --- import / export ---

func (p *Parser) parseImport(start int) ast.Stat {
	p.Eat() // import
	importers := p.parseImporters()
	return &ast.Import{Pos: p.Origin(start), Importers: importers}
}

func (p *Parser) parseExport(start int) ast.Stat {
	p.Eat() // export
	importers := p.parseImporters()
	return &ast.Export{Pos: p.Origin(start), Importers: importers}
}

func (p *Parser) parseImporters() []*ast.Importer {
	var importers []*ast.Importer
	for {
		importers = append(importers, p.parseImporter())
		if !p.EatIf(token.Comma) {
			break
		}
	}
	return importers
}

// parseImporter parses one `ref.selector` clause of an import/export
// statement: a stable-id chain, where every `.member` except
// possibly the last extends the qualifier, and the last segment becomes
// either a single-name selector or, when followed by `.{...}`/`._`/`.*`, the
// selector list itself. A bare stable id with no trailing selector imports
// that name directly (`import foo`), with no separate qualifier.
func (p *Parser) parseImporter() *ast.Importer {
	start := p.Mark()
	nameTok, _ := p.Expect(token.IdentLower)
	var ref ast.Term = &ast.Name{Pos: p.Origin(start), Value: nameTok.Text}
	var pendingName *ast.Name
	for p.At(token.Dot) {
		if pendingName != nil {
			ref = &ast.Select{Pos: p.Origin(start), Qual: ref, Name: pendingName}
			pendingName = nil
		}
		cp := p.Checkpoint()
		p.Eat()
		switch {
		case p.At(token.LBrace):
			return &ast.Importer{Pos: p.Origin(start), Ref: ref, Importees: p.parseImporteeList()}
		case (p.At(token.IdentOp) && p.CurrentToken().Text == "*") || p.At(token.Underscore):
			p.Eat()
			return &ast.Importer{Pos: p.Origin(start), Ref: ref, Importees: []ast.Importee{&ast.ImporteeWildcard{}}}
		}
		memberTok, ok := p.tryIdent()
		if !ok {
			p.Restore(cp)
			break
		}
		pendingName = &ast.Name{Pos: p.Origin(start), Value: memberTok.Text}
	}
	if pendingName == nil {
		if n, ok := ref.(*ast.Name); ok {
			return &ast.Importer{Pos: p.Origin(start), Importees: []ast.Importee{&ast.ImporteeName{Name: n}}}
		}
		return &ast.Importer{Pos: p.Origin(start), Ref: ref, Importees: []ast.Importee{&ast.ImporteeName{Name: &ast.Name{Value: "<error>"}}}}
	}
	return &ast.Importer{Pos: p.Origin(start), Ref: ref, Importees: []ast.Importee{&ast.ImporteeName{Name: pendingName}}}
}

func (p *Parser) tryIdent() (token.Token, bool) {
	if p.At(token.IdentLower) || p.At(token.IdentUpper) || p.At(token.IdentBackquoted) {
		return p.Eat(), true
	}
	return token.Token{}, false
}

func (p *Parser) parseImporteeList() []ast.Importee {
	p.Eat() // {
	var importees []ast.Importee
	for !p.At(token.RBrace) && !p.End() {
		importees = append(importees, p.parseImportee())
		if !p.EatIf(token.Comma) {
			break
		}
	}
	p.Expect(token.RBrace)
	return importees
}

func (p *Parser) parseImportee() ast.Importee {
	start := p.Mark()
	if p.Dialect.AllowGivenUsing && p.At(token.KwGiven) {
		p.Eat()
		if p.atTypeStart() {
			tpe := p.ParseType()
			return &ast.ImporteeGiven{Pos: p.Origin(start), Tpe: tpe}
		}
		return &ast.ImporteeGiven{Pos: p.Origin(start)}
	}
	if p.At(token.IdentOp) && p.CurrentToken().Text == "*" {
		p.Eat()
		return &ast.ImporteeWildcard{Pos: p.Origin(start)}
	}
	if p.At(token.Underscore) {
		p.Eat()
		return &ast.ImporteeWildcard{Pos: p.Origin(start)}
	}
	nameTok, _ := p.tryIdent()
	name := &ast.Name{Pos: p.Origin(start), Value: nameTok.Text}
	if p.At(token.Arrow) || p.Classifier.AtAs(p.Cursor) {
		p.Eat()
		if p.At(token.Underscore) {
			p.Eat()
			return &ast.ImporteeUnimport{Pos: p.Origin(start), Name: name}
		}
		aliasTok, _ := p.tryIdent()
		return &ast.ImporteeRename{Pos: p.Origin(start), Name: name, Alias: &ast.Name{Value: aliasTok.Text}}
	}
	return &ast.ImporteeName{Pos: p.Origin(start), Name: name}
}

func (p *Parser) atTypeStart() bool {
	return p.At(token.IdentUpper) || p.At(token.IdentLower) || p.At(token.LParen) || p.At(token.LBracket)
}

// --- modifiers ---

func (p *Parser) parseMods() []ast.Mod {
	var mods []ast.Mod
	for {
		start := p.Mark()
		switch {
		case p.At(token.At):
			mods = append(mods, p.parseAnnotationMod(start))
		case p.At(token.KwPrivate):
			p.Eat()
			mods = append(mods, &ast.ModPrivate{Pos: p.Origin(start), Within: p.parseWithinClauseOpt()})
		case p.At(token.KwProtected):
			p.Eat()
			mods = append(mods, &ast.ModProtected{Pos: p.Origin(start), Within: p.parseWithinClauseOpt()})
		case p.At(token.KwImplicit):
			p.Eat()
			mods = append(mods, &ast.ModImplicit{Pos: p.Origin(start)})
		case p.At(token.KwFinal):
			p.Eat()
			mods = append(mods, &ast.ModFinal{Pos: p.Origin(start)})
		case p.At(token.KwSealed):
			p.Eat()
			mods = append(mods, &ast.ModSealed{Pos: p.Origin(start)})
		case p.At(token.KwAbstract):
			p.Eat()
			mods = append(mods, &ast.ModAbstract{Pos: p.Origin(start)})
		case p.At(token.KwOverride):
			p.Eat()
			mods = append(mods, &ast.ModOverride{Pos: p.Origin(start)})
		case p.At(token.KwLazy):
			p.Eat()
			mods = append(mods, &ast.ModLazy{Pos: p.Origin(start)})
		case p.At(token.KwCase):
			p.Eat()
			mods = append(mods, &ast.ModCase{Pos: p.Origin(start)})
		case p.Classifier.AtOpen(p.Cursor):
			p.Eat()
			mods = append(mods, &ast.ModOpen{Pos: p.Origin(start)})
		case p.Classifier.AtInline(p.Cursor):
			p.Eat()
			mods = append(mods, &ast.ModInline{Pos: p.Origin(start)})
		case p.Classifier.AtOpaque(p.Cursor):
			p.Eat()
			mods = append(mods, &ast.ModOpaque{Pos: p.Origin(start)})
		case p.Classifier.AtTransparent(p.Cursor):
			p.Eat()
			mods = append(mods, &ast.ModTransparent{Pos: p.Origin(start)})
		case p.Classifier.AtInfixModifier(p.Cursor):
			p.Eat()
			mods = append(mods, &ast.ModInfix{Pos: p.Origin(start)})
		default:
			if a, b, conflict := ast.ConflictingPair(mods); conflict {
				p.report(p.Origin(start), "incompatible modifiers: `"+a+"` and `"+b+"`")
			}
			return mods
		}
	}
}

func (p *Parser) parseAnnotationMod(start int) ast.Mod {
	init := p.parseAnnotationInit()
	return &ast.ModAnnot{Pos: p.Origin(start), Init: init}
}

func (p *Parser) parseWithinClauseOpt() string {
	if !p.At(token.LBracket) {
		return ""
	}
	p.Eat()
	if p.At(token.KwThis) {
		p.Eat()
		p.Expect(token.RBracket)
		return "this"
	}
	nameTok, _ := p.tryIdent()
	p.Expect(token.RBracket)
	return nameTok.Text
}

// --- defn/decl dispatch ---

func (p *Parser) parseDefnOrDecl(start int, mods []ast.Mod) ast.Stat {
	switch {
	case p.At(token.KwVal):
		return p.parseValOrVar(start, mods, false)
	case p.At(token.KwVar):
		return p.parseValOrVar(start, mods, true)
	case p.At(token.KwDef):
		return p.parseDef(start, mods)
	case p.At(token.KwType):
		return p.parseTypeDef(start, mods)
	case p.Dialect.AllowGivenUsing && p.At(token.KwGiven):
		return p.parseGiven(start, mods)
	case p.At(token.KwClass):
		return p.parseClassOrTrait(start, mods, false)
	case p.At(token.KwTrait):
		return p.parseClassOrTrait(start, mods, true)
	case p.At(token.KwObject):
		return p.parseObject(start, mods)
	case p.Dialect.AllowEnums && p.At(token.KwEnum):
		return p.parseEnum(start, mods)
	case len(mods) > 0:
		p.Unexpected("definition")
		return &ast.EndMarker{Pos: p.Origin(start), Name: "<error>"}
	default:
		return p.ParseTerm().(ast.Stat)
	}
}

// --- val / var ---

func (p *Parser) parseValOrVar(start int, mods []ast.Mod, isVar bool) ast.Stat {
	p.Eat() // val/var
	pats := p.parseValPatternList()
	var decltpe ast.Type
	if p.EatIf(token.Colon) {
		decltpe = p.parseParamType()
	}
	if !p.At(token.Equals) {
		names := patternsToNames(pats)
		if isVar {
			return &ast.DeclVar{Pos: p.Origin(start), Mods: mods, Names: names, Decltpe: decltpe}
		}
		return &ast.DeclVal{Pos: p.Origin(start), Mods: mods, Names: names, Decltpe: decltpe}
	}
	p.Eat() // =
	if isVar && p.At(token.Underscore) && p.Dialect.AllowProcedureSyntax {
		p.Eat()
		return &ast.DefnVar{Pos: p.Origin(start), Mods: mods, Pats: pats, Decltpe: decltpe}
	}
	rhs := p.ParseTerm()
	if isVar {
		return &ast.DefnVar{Pos: p.Origin(start), Mods: mods, Pats: pats, Decltpe: decltpe, Rhs: rhs}
	}
	return &ast.DefnVal{Pos: p.Origin(start), Mods: mods, Pats: pats, Decltpe: decltpe, Rhs: rhs}
}

func (p *Parser) parseValPatternList() []ast.Pat {
	var pats []ast.Pat
	for {
		pats = append(pats, p.parsePattern2(seqNone))
		if !p.EatIf(token.Comma) {
			break
		}
	}
	return pats
}

func patternsToNames(pats []ast.Pat) []*ast.Name {
	names := make([]*ast.Name, 0, len(pats))
	for _, pat := range pats {
		if v, ok := pat.(*ast.PatVar); ok {
			names = append(names, &ast.Name{Pos: v.Pos, Value: v.Name})
		}
	}
	return names
}

// --- def ---

func (p *Parser) parseDef(start int, mods []ast.Mod) ast.Stat {
	p.Eat() // def
	nameTok := p.parseDefName()
	name := &ast.Name{Value: nameTok.Text}
	var typeParams []*ast.TypeParam
	if p.At(token.LBracket) {
		typeParams = p.parseTypeParamListBracketed()
	}
	var paramLists [][]*ast.TermParam
	for p.At(token.LParen) {
		params, _ := p.tryParseTermParamList()
		paramLists = append(paramLists, params)
	}
	var decltpe ast.Type
	if p.EatIf(token.Colon) {
		decltpe = p.parseParamType()
	}
	if !p.EatIf(token.Equals) {
		return &ast.DeclDef{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, ParamLists: paramLists, Decltpe: decltpe}
	}
	if p.At(token.KwMacro) {
		p.Eat()
		body := p.ParseTerm()
		return &ast.DefnMacro{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, ParamLists: paramLists, Decltpe: decltpe, Body: body}
	}
	rhs := p.ParseTerm()
	return &ast.DefnDef{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, ParamLists: paramLists, Decltpe: decltpe, Rhs: rhs}
}

// parseDefName accepts `this` for secondary constructors in addition to an
// ordinary identifier or operator identifier (`def +=(...)`).
func (p *Parser) parseDefName() token.Token {
	if p.At(token.IdentLower) || p.At(token.IdentUpper) || p.At(token.IdentOp) || p.At(token.IdentBackquoted) {
		return p.Eat()
	}
	if p.At(token.KwThis) {
		return p.Eat()
	}
	tok, _ := p.Expect(token.IdentLower)
	return tok
}

// --- type ---

func (p *Parser) parseTypeDef(start int, mods []ast.Mod) ast.Stat {
	p.Eat() // type
	nameTok, _ := p.Expect(token.IdentUpper)
	name := &ast.TypeName{Value: nameTok.Text}
	var typeParams []*ast.TypeParam
	if p.At(token.LBracket) {
		typeParams = p.parseTypeParamListBracketed()
	}
	switch {
	case p.EatIf(token.Equals):
		body := p.ParseType()
		return &ast.DefnType{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, Body: body}
	default:
		decl := &ast.DeclType{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams}
		if p.EatIf(token.Subtype) {
			decl.Upper = p.ParseType()
		}
		if p.EatIf(token.Supertype) {
			decl.Lower = p.ParseType()
		}
		return decl
	}
}

// --- given ---

// parseGiven parses a Scala 3 given instance. A body introduced by `=` is
// always an alias to an existing term (DefnGivenAlias). The structural
// `given ... with { defs }` form yields a DefnGiven whose Body is the braced
// statements parsed as a Block term, since DefnGiven.Body is a Term rather
// than a Template (see DESIGN.md); omitting the body yields an abstract
// given declaration (DefnGiven with a nil Body).
func (p *Parser) parseGiven(start int, mods []ast.Mod) ast.Stat {
	p.Eat() // given
	var name *ast.Name
	if p.At(token.IdentLower) && p.peekIsColonOrBracketOrParen() {
		nameTok := p.Eat()
		name = &ast.Name{Value: nameTok.Text}
	}
	var typeParams []*ast.TypeParam
	if p.At(token.LBracket) {
		typeParams = p.parseTypeParamListBracketed()
	}
	var paramLists [][]*ast.TermParam
	for p.At(token.LParen) {
		params, _ := p.tryParseTermParamList()
		paramLists = append(paramLists, params)
	}
	if name != nil {
		p.Expect(token.Colon)
	} else {
		p.EatIf(token.Colon)
	}
	sig := p.ParseType()
	if p.EatIf(token.Equals) {
		rhs := p.ParseTerm()
		return &ast.DefnGivenAlias{Pos: p.Origin(start), Mods: mods, Name: name, Sig: sig, Rhs: rhs}
	}
	var body ast.Term
	if p.EatIf(token.KwWith) {
		if p.At(token.LBrace) {
			body = p.parseBlock(p.Mark())
		} else {
			p.Expect(token.LBrace)
		}
	}
	return &ast.DefnGiven{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, ParamLists: paramLists, Sig: sig, Body: body}
}

func (p *Parser) peekIsColonOrBracketOrParen() bool {
	cp := p.Checkpoint()
	p.Eat()
	at := p.At(token.Colon) || p.At(token.LBracket) || p.At(token.LParen)
	p.Restore(cp)
	return at
}

// --- extension ---

func (p *Parser) parseExtensionGroup(start int) ast.Stat {
	p.Eat() // extension
	var typeParams []*ast.TypeParam
	if p.At(token.LBracket) {
		typeParams = p.parseTypeParamListBracketed()
	}
	params, _ := p.tryParseTermParamList()
	var stats []ast.Stat
	if p.At(token.LBrace) {
		p.Eat()
		for !p.At(token.RBrace) && !p.End() {
			stats = append(stats, p.parseBlockStat())
			p.EatIf(token.Semicolon)
		}
		p.Expect(token.RBrace)
	} else {
		stats = []ast.Stat{p.parseBlockStat()}
	}
	return &ast.ExtensionGroup{Pos: p.Origin(start), TypeParams: typeParams, Params: params, Stats: stats}
}

// --- class / trait / object / enum ---

func (p *Parser) parseClassOrTrait(start int, mods []ast.Mod, isTrait bool) ast.Stat {
	p.Eat() // class/trait
	nameTok, _ := p.Expect(token.IdentUpper)
	name := &ast.TypeName{Value: nameTok.Text}
	var typeParams []*ast.TypeParam
	if p.At(token.LBracket) {
		typeParams = p.parseTypeParamListBracketed()
	}
	ctor := p.parsePrimaryCtor()
	tmpl := p.parseTemplate()
	if isTrait {
		return &ast.DefnTrait{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, Ctor: ctor, Template: tmpl}
	}
	return &ast.DefnClass{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, Ctor: ctor, Template: tmpl}
}

func (p *Parser) parsePrimaryCtor() ast.Ctor {
	start := p.Mark()
	var ctorMods []ast.Mod
	if p.At(token.KwPrivate) || p.At(token.KwProtected) {
		ctorMods = p.parseMods()
	}
	var paramLists [][]*ast.TermParam
	for p.At(token.LParen) {
		params, ok := p.tryParseTermParamList()
		if !ok {
			break
		}
		paramLists = append(paramLists, params)
	}
	if len(paramLists) == 0 && len(ctorMods) == 0 {
		return &ast.CtorPrimary{Pos: p.Origin(start)}
	}
	return &ast.CtorPrimary{Pos: p.Origin(start), Mods: ctorMods, ParamLists: paramLists}
}

func (p *Parser) parseObject(start int, mods []ast.Mod) ast.Stat {
	p.Eat() // object
	nameTok, _ := p.Expect(token.IdentUpper)
	name := &ast.Name{Value: nameTok.Text}
	tmpl := p.parseTemplate()
	return &ast.DefnObject{Pos: p.Origin(start), Mods: mods, Name: name, Template: tmpl}
}

func (p *Parser) parseEnum(start int, mods []ast.Mod) ast.Stat {
	p.Eat() // enum
	nameTok, _ := p.Expect(token.IdentUpper)
	name := &ast.TypeName{Value: nameTok.Text}
	var typeParams []*ast.TypeParam
	if p.At(token.LBracket) {
		typeParams = p.parseTypeParamListBracketed()
	}
	ctor := p.parsePrimaryCtor()
	tmpl := p.parseTemplate()
	return &ast.DefnEnum{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, Ctor: ctor, Template: tmpl}
}

func (p *Parser) parseEnumCase() ast.Stat {
	start := p.Mark()
	p.Eat() // case
	mods := p.parseMods()
	nameTok, _ := p.Expect(token.IdentUpper)
	name := &ast.TypeName{Value: nameTok.Text}
	switch {
	case p.At(token.Comma):
		names := []*ast.Name{{Value: name.Value}}
		for p.EatIf(token.Comma) {
			extraTok, _ := p.Expect(token.IdentUpper)
			names = append(names, &ast.Name{Value: extraTok.Text})
		}
		return &ast.EnumCaseSimple{Pos: p.Origin(start), Mods: mods, Names: names}
	case p.At(token.LBracket), p.At(token.LParen), p.At(token.KwExtends):
		var typeParams []*ast.TypeParam
		if p.At(token.LBracket) {
			typeParams = p.parseTypeParamListBracketed()
		}
		ctor := p.parsePrimaryCtor()
		var inits []ast.Init
		if p.EatIf(token.KwExtends) {
			inits = p.parseInitList()
		}
		return &ast.EnumCaseClass{Pos: p.Origin(start), Mods: mods, Name: name, TypeParams: typeParams, Ctor: ctor, Inits: inits}
	default:
		return &ast.EnumCaseSimple{Pos: p.Origin(start), Mods: mods, Names: []*ast.Name{{Value: name.Value}}}
	}
}

func (p *Parser) parseInitList() []ast.Init {
	var inits []ast.Init
	for {
		inits = append(inits, p.parseInit())
		if !p.EatIf(token.KwWith) {
			break
		}
	}
	return inits
}

// --- template / self-type / secondary ctor ---

// parseTemplate parses the optional `extends Init with Init ... { [self =>]
// stats }` suffix of a class/trait/object/enum header.
func (p *Parser) parseTemplate() ast.Template {
	start := p.Mark()
	var inits []ast.Init
	if p.EatIf(token.KwExtends) {
		inits = p.parseInitList()
	}
	if p.Dialect.AllowEnums {
		if p.Classifier.AtDerives(p.Cursor) {
			p.Eat()
			p.parseInitList() // derives clauses are not modeled as distinct Inits; consumed for grammar completeness
		}
	}
	if !p.At(token.LBrace) {
		return &ast.TemplateBody{Pos: p.Origin(start), Inits: inits}
	}
	p.Eat() // {
	var self ast.Self
	if s, ok := p.tryParseSelf(); ok {
		self = s
	}
	var stats []ast.Stat
	for !p.At(token.RBrace) && !p.End() {
		if p.Dialect.AllowEnums && p.At(token.KwCase) {
			stats = append(stats, p.parseEnumCase())
		} else if p.At(token.KwDef) && p.peekIsThisCtor() {
			stats = append(stats, p.parseSecondaryCtor())
		} else {
			stats = append(stats, p.parseBlockStat())
		}
		if !p.EatIf(token.Semicolon) && !p.HadNewlineBefore() {
			break
		}
	}
	p.Expect(token.RBrace)
	return &ast.TemplateBody{Pos: p.Origin(start), Inits: inits, Self: self, Stats: stats}
}

func (p *Parser) peekIsThisCtor() bool {
	cp := p.Checkpoint()
	p.Eat() // def
	at := p.At(token.KwThis)
	p.Restore(cp)
	return at
}

func (p *Parser) parseSecondaryCtor() ast.Stat {
	start := p.Mark()
	p.Eat() // def
	p.Eat() // this
	var paramLists [][]*ast.TermParam
	for p.At(token.LParen) {
		params, _ := p.tryParseTermParamList()
		paramLists = append(paramLists, params)
	}
	p.Expect(token.Equals)
	body := p.ParseTerm()
	return &ast.CtorSecondary{Pos: p.Origin(start), ParamLists: paramLists, Body: body}
}

// tryParseSelf speculatively parses `name[: Type] =>` at the head of a
// template body, restoring on failure.
func (p *Parser) tryParseSelf() (ast.Self, bool) {
	start := p.Mark()
	cp := p.Checkpoint()
	var selfName string
	switch {
	case p.At(token.KwThis):
		p.Eat()
		selfName = "this"
	case p.At(token.IdentLower):
		selfName = p.Eat().Text
	case p.At(token.Underscore):
		p.Eat()
		selfName = "_"
	default:
		return nil, false
	}
	var tpe ast.Type
	if p.EatIf(token.Colon) {
		tpe = p.ParseType()
	}
	if !p.EatIf(token.Arrow) {
		p.Restore(cp)
		return nil, false
	}
	return &ast.SelfVal{Pos: p.Origin(start), Name: selfName, Tpe: tpe}, true
}
