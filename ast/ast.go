// Package ast defines the typed syntax tree the parser produces: one
// interface per node family (Term, Type, Pat, Mod, Stat, Enumerator,
// Importee, Init, Template, Case, Self, Ctor), each carrying a source.Origin
// uniformly, as a family of tagged variants rather than one polymorphic
// node type.
//
// The AST node library has no dedicated external package to depend on in
// this corpus, so it is implemented here in the teacher's idiom
// (github.com/boergens/gotypst, syntax/node.go, syntax/ast.go): plain
// structs implementing small marker interfaces rather than a single node
// type carrying a kind tag.
package ast

import "github.com/langkit/scalaparse/source"

// Node is implemented by every AST node, typed or Quasi.
type Node interface {
	Origin() source.Origin
}

// base is embedded by every concrete node to satisfy Node without repeating
// the accessor.
type base struct {
	Pos source.Origin
}

func (b base) Origin() source.Origin { return b.Pos }

// Term is any expression-family node.
type Term interface {
	Node
	isTerm()
}

// Type is any type-expression node.
type Type interface {
	Node
	isType()
}

// Pat is any pattern node.
type Pat interface {
	Node
	isPat()
}

// Mod is any modifier/annotation node attached to a definition.
type Mod interface {
	Node
	isMod()
}

// Stat is any top-level or block statement: a definition, declaration,
// import/export, or a bare expression statement.
type Stat interface {
	Node
	isStat()
}

// Enumerator is one clause of a for-comprehension.
type Enumerator interface {
	Node
	isEnumerator()
}

// Importee is one element of an import/export selector clause.
type Importee interface {
	Node
	isImportee()
}

// Init is a single parent-constructor application in an extends clause.
type Init interface {
	Node
	isInit()
}

// Template is a class/trait/object/enum body.
type Template interface {
	Node
	isTemplate()
}

// CaseNode is one `case pattern [if guard] => body` arm.
type CaseNode interface {
	Node
	isCase()
}

// Self is a template's self-type annotation.
type Self interface {
	Node
	isSelf()
}

// Ctor is a primary or secondary constructor.
type Ctor interface {
	Node
	isCtor()
}

// Quasi is implemented by every family's unquote-placeholder variant, used
// only when the dialect enables quasiquote unquoting.
type Quasi interface {
	Node
	Rank() int    // nesting depth: 0 for `$x`, 1 for `$x.$$`, etc.
	Ident() string
}

// ---------------------------------------------------------------------------
// Quasi variants, one per family.
// ---------------------------------------------------------------------------

type QuasiTerm struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiTerm) isTerm()        {}
func (q *QuasiTerm) isStat()        {}
func (q *QuasiTerm) Rank() int      { return q.Lvl }
func (q *QuasiTerm) Ident() string  { return q.Name }

type QuasiType struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiType) isType()       {}
func (q *QuasiType) Rank() int     { return q.Lvl }
func (q *QuasiType) Ident() string { return q.Name }

type QuasiPat struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiPat) isPat()        {}
func (q *QuasiPat) Rank() int     { return q.Lvl }
func (q *QuasiPat) Ident() string { return q.Name }

type QuasiStat struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiStat) isStat()       {}
func (q *QuasiStat) Rank() int     { return q.Lvl }
func (q *QuasiStat) Ident() string { return q.Name }

type QuasiEnumerator struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiEnumerator) isEnumerator() {}
func (q *QuasiEnumerator) Rank() int     { return q.Lvl }
func (q *QuasiEnumerator) Ident() string { return q.Name }

type QuasiImportee struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiImportee) isImportee() {}
func (q *QuasiImportee) Rank() int     { return q.Lvl }
func (q *QuasiImportee) Ident() string { return q.Name }

type QuasiInit struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiInit) isInit()       {}
func (q *QuasiInit) Rank() int     { return q.Lvl }
func (q *QuasiInit) Ident() string { return q.Name }

type QuasiTemplate struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiTemplate) isTemplate() {}
func (q *QuasiTemplate) Rank() int     { return q.Lvl }
func (q *QuasiTemplate) Ident() string { return q.Name }

type QuasiCase struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiCase) isCase()       {}
func (q *QuasiCase) Rank() int     { return q.Lvl }
func (q *QuasiCase) Ident() string { return q.Name }

type QuasiSelf struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiSelf) isSelf()       {}
func (q *QuasiSelf) Rank() int     { return q.Lvl }
func (q *QuasiSelf) Ident() string { return q.Name }

type QuasiCtor struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiCtor) isCtor()       {}
func (q *QuasiCtor) Rank() int     { return q.Lvl }
func (q *QuasiCtor) Ident() string { return q.Name }
