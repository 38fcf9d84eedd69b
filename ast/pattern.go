package ast

// PatVar binds a name. Whether a given identifier token becomes a PatVar or
// an arity-zero PatExtract is decided by the variable-vs-extractor rule: a
// lower-case name not followed by `(` or `.` binds, everything else refers.
type PatVar struct {
	base
	Name string
}

func (*PatVar) isPat() {}

// PatWildcard is the bare `_` pattern.
type PatWildcard struct{ base }

func (*PatWildcard) isPat() {}

// PatSeqWildcard is `_*`, legal only as the last element of an extractor's
// argument list.
type PatSeqWildcard struct{ base }

func (*PatSeqWildcard) isPat() {}

// PatLit wraps a literal term reused as a pattern (`case 1 =>`, `case "x" =>`).
type PatLit struct {
	base
	Value Term
}

func (*PatLit) isPat() {}

// PatStableRef is a backquoted or otherwise-stable identifier reference used
// as an equality pattern rather than a binding: back-quoted identifiers are
// always stable references, never bindings.
type PatStableRef struct {
	base
	Ref Term
}

func (*PatStableRef) isPat() {}

// PatExtract is `Name(subpatterns...)`, the unapply-style extractor pattern.
type PatExtract struct {
	base
	Fun      Term
	TypeArgs []Type
	Patterns []Pat
}

func (*PatExtract) isPat() {}

// PatExtractInfix is produced by the pattern infix engine: `a :: b` desugars
// to `::(a, b)`. If the RHS was a tuple it is splatted into multiple
// sub-patterns.
type PatExtractInfix struct {
	base
	Lhs Pat
	Op  *Name
	Rhs []Pat
}

func (*PatExtractInfix) isPat() {}

// PatTyped is `name: Type`.
type PatTyped struct {
	base
	Pat Pat
	Tpe Type
}

func (*PatTyped) isPat() {}

// PatBind is `name @ pattern`.
type PatBind struct {
	base
	Name string
	Pat  Pat
}

func (*PatBind) isPat() {}

// PatAlternative is `p1 | p2`.
type PatAlternative struct {
	base
	Alts []Pat
}

func (*PatAlternative) isPat() {}

type PatTuple struct {
	base
	Elements []Pat
}

func (*PatTuple) isPat() {}

// PatInterpolate mirrors Interpolate at pattern position
// (`case s"hello $name" => ...`).
type PatInterpolate struct {
	base
	Prefix *Name
	Parts  []string
	Args   []Pat
}

func (*PatInterpolate) isPat() {}

// PatXml mirrors Xml at pattern position.
type PatXml struct {
	base
	Parts []string
	Args  []Pat
}

func (*PatXml) isPat() {}

// PatArg is a named-argument pattern, `name = pattern`, used in some
// extractor call shapes.
type PatArg struct {
	base
	Name *Name
	Pat  Pat
}

func (*PatArg) isPat() {}

// Bindings returns every name a pattern introduces, used by downstream
// semantic analysis (out of scope here, but the accessor is part of the
// typed-pattern contract the teacher's own Pattern interface exposes,
// syntax/pattern.go).
func Bindings(p Pat) []string {
	switch p := p.(type) {
	case *PatVar:
		return []string{p.Name}
	case *PatBind:
		return append([]string{p.Name}, Bindings(p.Pat)...)
	case *PatTyped:
		return Bindings(p.Pat)
	case *PatTuple:
		var out []string
		for _, e := range p.Elements {
			out = append(out, Bindings(e)...)
		}
		return out
	case *PatExtract:
		var out []string
		for _, e := range p.Patterns {
			out = append(out, Bindings(e)...)
		}
		return out
	case *PatExtractInfix:
		out := Bindings(p.Lhs)
		for _, e := range p.Rhs {
			out = append(out, Bindings(e)...)
		}
		return out
	case *PatAlternative:
		if len(p.Alts) == 0 {
			return nil
		}
		return Bindings(p.Alts[0])
	default:
		return nil
	}
}
