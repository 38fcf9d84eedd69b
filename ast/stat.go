package ast

// Stat family: definitions, declarations, imports/exports, package clauses,
// and end markers. Term nodes satisfy Stat directly (an expression is a
// legal statement), so no ExprStat wrapper is needed — the same choice the
// teacher's own Node sum type makes by not special casing
// expression-statements.

// PkgDecl is a `package name` clause, either the header form or the
// braced-body form with nested Stats.
type PkgDecl struct {
	base
	Name  *Name
	Stats []Stat // nil for the bare header form
}

func (*PkgDecl) isStat() {}

// Import is a single `import` clause with one or more per-source selectors.
type Import struct {
	base
	Importers []*Importer
}

func (*Import) isStat() {}

// Export mirrors Import for Scala 3's `export` clause.
type Export struct {
	base
	Importers []*Importer
}

func (*Export) isStat() {}

// Importer is `ref.{importees}` within an import/export clause.
type Importer struct {
	base
	Ref       Term
	Importees []Importee
}

// ImporteeName imports a single identifier unchanged.
type ImporteeName struct {
	base
	Name *Name
}

func (*ImporteeName) isImportee() {}

// ImporteeRename is `name => alias`.
type ImporteeRename struct {
	base
	Name  *Name
	Alias *Name
}

func (*ImporteeRename) isImportee() {}

// ImporteeUnimport is `name => _`.
type ImporteeUnimport struct {
	base
	Name *Name
}

func (*ImporteeUnimport) isImportee() {}

// ImporteeWildcard is the bare `_` (pre-Scala-3) or `*` (Scala 3) selector.
type ImporteeWildcard struct{ base }

func (*ImporteeWildcard) isImportee() {}

// ImporteeGiven is Scala 3's `given` or `given Type` selector.
type ImporteeGiven struct {
	base
	Tpe Type // nil selects all givens
}

func (*ImporteeGiven) isImportee() {}

// --- value and variable definitions/declarations ---

type DefnVal struct {
	base
	Mods    []Mod
	Pats    []Pat
	Decltpe Type // nil if inferred
	Rhs     Term
}

func (*DefnVal) isStat() {}

type DefnVar struct {
	base
	Mods    []Mod
	Pats    []Pat
	Decltpe Type
	Rhs     Term // nil for `var x: T = _`
}

func (*DefnVar) isStat() {}

type DeclVal struct {
	base
	Mods    []Mod
	Names   []*Name
	Decltpe Type
}

func (*DeclVal) isStat() {}

type DeclVar struct {
	base
	Mods    []Mod
	Names   []*Name
	Decltpe Type
}

func (*DeclVar) isStat() {}

// --- def ---

type DefnDef struct {
	base
	Mods       []Mod
	Name       *Name
	TypeParams []*TypeParam
	ParamLists [][]*TermParam
	Decltpe    Type // nil if no result type is written
	Rhs        Term // always set; a def without `=` parses as a DeclDef (so procedure syntax `def f { ... }` is not recognized)
}

func (*DefnDef) isStat() {}

type DeclDef struct {
	base
	Mods       []Mod
	Name       *Name
	TypeParams []*TypeParam
	ParamLists [][]*TermParam
	Decltpe    Type
}

func (*DeclDef) isStat() {}

// DefnMacro is a Scala 2 `def f = macro impl` definition.
type DefnMacro struct {
	base
	Mods       []Mod
	Name       *Name
	TypeParams []*TypeParam
	ParamLists [][]*TermParam
	Decltpe    Type
	Body       Term
}

func (*DefnMacro) isStat() {}

// --- type ---

type DefnType struct {
	base
	Mods       []Mod
	Name       *TypeName
	TypeParams []*TypeParam
	Body       Type
}

func (*DefnType) isStat() {}

type DeclType struct {
	base
	Mods         []Mod
	Name         *TypeName
	TypeParams   []*TypeParam
	Lower, Upper Type
}

func (*DeclType) isStat() {}

// --- given (Scala 3) ---

// DefnGiven is `given name: Type with { ... }` (Body is the braced block) or
// an abstract `given name: Type` (Body nil); the name may be omitted. The
// `= rhs` form is a DefnGivenAlias.
type DefnGiven struct {
	base
	Mods       []Mod
	Name       *Name // nil for an anonymous given
	TypeParams []*TypeParam
	ParamLists [][]*TermParam
	Sig        Type // the implemented/given type
	Body       Term
}

func (*DefnGiven) isStat() {}

// DefnGivenAlias is `given name: Type = existingTerm`, an alias given.
type DefnGivenAlias struct {
	base
	Mods []Mod
	Name *Name
	Sig  Type
	Rhs  Term
}

func (*DefnGivenAlias) isStat() {}

// --- extension (Scala 3) ---

// ExtensionGroup is `extension (x: T) { defs }` or the single-def shorthand.
type ExtensionGroup struct {
	base
	TypeParams []*TypeParam
	Params     []*TermParam
	Stats      []Stat
}

func (*ExtensionGroup) isStat() {}

// --- class / trait / object / enum ---

type DefnClass struct {
	base
	Mods       []Mod
	Name       *TypeName
	TypeParams []*TypeParam
	Ctor       Ctor
	Template   Template
}

func (*DefnClass) isStat() {}

type DefnTrait struct {
	base
	Mods       []Mod
	Name       *TypeName
	TypeParams []*TypeParam
	Ctor       Ctor // primary ctor params only meaningful for Scala 3 traits
	Template   Template
}

func (*DefnTrait) isStat() {}

type DefnObject struct {
	base
	Mods     []Mod
	Name     *Name
	Template Template
}

func (*DefnObject) isStat() {}

// DefnEnum is Scala 3's `enum Name[...] extends ... { cases }`.
type DefnEnum struct {
	base
	Mods       []Mod
	Name       *TypeName
	TypeParams []*TypeParam
	Ctor       Ctor
	Template   Template
}

func (*DefnEnum) isStat() {}

// EnumCaseSimple is a value enum case: `case Red, Green, Blue`.
type EnumCaseSimple struct {
	base
	Mods  []Mod
	Names []*Name
}

func (*EnumCaseSimple) isStat() {}

// EnumCaseClass is a parameterized or extending enum case:
// `case Some(x: A) extends Option[A]`.
type EnumCaseClass struct {
	base
	Mods       []Mod
	Name       *TypeName
	TypeParams []*TypeParam
	Ctor       Ctor
	Inits      []Init
}

func (*EnumCaseClass) isStat() {}

// EndMarker closes a significant-indentation block in Scala 3: `end name`,
// a dialect-gated production.
type EndMarker struct {
	base
	Name string
}

func (*EndMarker) isStat() {}
