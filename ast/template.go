package ast

// Template/Init/Self/Ctor families model a class/trait/object/enum body
// and its parent-constructor list, mirroring how the teacher separates a
// definition's header from its body.

// TemplateBody is `{ [self =>] stats }`, the concrete Template most
// definitions carry. A DefnObject/DefnClass/etc. with no braces at all
// still gets an empty TemplateBody so downstream code need not nil-check.
type TemplateBody struct {
	base
	Early    []Stat // early-initializer statements before `extends`
	Inits    []Init
	Self     Self // nil if no self-type annotation is present
	Stats    []Stat
}

func (*TemplateBody) isTemplate() {}

// InitCall is one `Type(args...)(args...)` parent application within an
// `extends` clause.
type InitCall struct {
	base
	Tpe      Type
	Name     *Name // nil unless this Init also names an anonymous-class parent
	ArgLists [][]Arg
}

func (*InitCall) isInit() {}

// SelfVal is `name: Type =>` or the bare `this: Type =>` self-type form.
type SelfVal struct {
	base
	Name string // "this" for the implicit-this form
	Tpe  Type   // nil if no explicit type was ascribed
}

func (*SelfVal) isSelf() {}

// CtorPrimary is the parameter-list form attached directly to a class/trait
// header: `class Foo(x: Int)(implicit y: String)`.
type CtorPrimary struct {
	base
	Mods       []Mod
	ParamLists [][]*TermParam
}

func (*CtorPrimary) isCtor() {}

// CtorSecondary is `def this(...) = { ... }` / `def this(...) = this(...)`.
// It also satisfies Stat, since it is written directly among a template
// body's other statements rather than through a header field.
type CtorSecondary struct {
	base
	Mods       []Mod
	ParamLists [][]*TermParam
	Body       Term // typically an Apply of `this(...)`, or a Block
}

func (*CtorSecondary) isCtor() {}
func (*CtorSecondary) isStat() {}
