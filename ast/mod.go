package ast

// Mod family: the modifier and annotation tokens that prefix a definition.
// Each keyword modifier is its own zero/near-zero-field type rather than one
// Mod struct carrying a kind enum, matching the teacher's
// tagged-variant-per-concept style used throughout ast/.

type ModAnnot struct {
	base
	Init Init
}

func (*ModAnnot) isMod() {}

type ModPrivate struct {
	base
	Within string // empty, "this", or a qualifying identifier
}

func (*ModPrivate) isMod() {}

type ModProtected struct {
	base
	Within string
}

func (*ModProtected) isMod() {}

type ModImplicit struct{ base }

func (*ModImplicit) isMod() {}

type ModFinal struct{ base }

func (*ModFinal) isMod() {}

type ModSealed struct{ base }

func (*ModSealed) isMod() {}

type ModOpen struct{ base }

func (*ModOpen) isMod() {}

type ModOverride struct{ base }

func (*ModOverride) isMod() {}

type ModCase struct{ base }

func (*ModCase) isMod() {}

type ModAbstract struct{ base }

func (*ModAbstract) isMod() {}

type ModLazy struct{ base }

func (*ModLazy) isMod() {}

type ModValParam struct{ base } // val in a primary-ctor parameter

func (*ModValParam) isMod() {}

type ModVarParam struct{ base }

func (*ModVarParam) isMod() {}

// ModInline is Scala 3's dialect-gated `inline` modifier.
type ModInline struct{ base }

func (*ModInline) isMod() {}

// ModInfix is Scala 3's `infix` method/def marker.
type ModInfix struct{ base }

func (*ModInfix) isMod() {}

// ModOpaque is Scala 3's `opaque type` marker.
type ModOpaque struct{ base }

func (*ModOpaque) isMod() {}

// ModTransparent is Scala 3's `transparent inline` companion marker.
type ModTransparent struct{ base }

func (*ModTransparent) isMod() {}

func (*QuasiMod) isMod() {}

// QuasiMod is the Mod family's unquote placeholder.
type QuasiMod struct {
	base
	Name string
	Lvl  int
}

func (q *QuasiMod) Rank() int     { return q.Lvl }
func (q *QuasiMod) Ident() string { return q.Name }

// conflicts lists modifier pairs that are mutually exclusive on the same
// definition. Kept as data rather than inline if-chains; the table is fixed
// and no dialect setting extends it.
type modPair struct{ a, b string }

var conflicts = []modPair{
	{"private", "protected"},
	{"private", "override"}, // a private member isn't visible for overriding
	{"abstract", "final"},
	{"sealed", "final"},
	{"sealed", "open"},
	{"final", "open"},
	{"abstract", "override"},
	{"case", "implicit"},
}

// modName reports the modifier-table key for m, or "" if m carries no
// conflict-table identity (e.g. an annotation).
func modName(m Mod) string {
	switch m.(type) {
	case *ModPrivate:
		return "private"
	case *ModProtected:
		return "protected"
	case *ModImplicit:
		return "implicit"
	case *ModFinal:
		return "final"
	case *ModSealed:
		return "sealed"
	case *ModOpen:
		return "open"
	case *ModOverride:
		return "override"
	case *ModCase:
		return "case"
	case *ModAbstract:
		return "abstract"
	case *ModLazy:
		return "lazy"
	case *ModInline:
		return "inline"
	case *ModInfix:
		return "infix"
	case *ModOpaque:
		return "opaque"
	case *ModTransparent:
		return "transparent"
	default:
		return ""
	}
}

// ConflictingPair returns the first pair of mutually exclusive modifiers
// present in mods, and true, or ("", "", false) if none conflict.
func ConflictingPair(mods []Mod) (string, string, bool) {
	present := make(map[string]bool, len(mods))
	for _, m := range mods {
		if n := modName(m); n != "" {
			present[n] = true
		}
	}
	for _, c := range conflicts {
		if present[c.a] && present[c.b] {
			return c.a, c.b, true
		}
	}
	return "", "", false
}
