package parser

import "strings"

// infixOperand is the capability interface the infix engine climbs over: it
// knows how to parse the next operand, recognize an infix operator
// identifier, and build the reduced node once an operator's relative
// precedence decides the shape of the tree. Term, pattern and type parsing
// each implement it (parser/expression.go, parser/pattern.go,
// parser/types.go) so this single precedence-climbing loop serves all three
// grammars: term infix expressions, pattern extractor infixes and infix types
// share the same precedence and associativity rules, so a single capability
// interface implemented once for each avoids duplicating the climbing logic.
//
// This is the Go rendering of the teacher's codeExprPrec loop
// (github.com/boergens/gotypst, syntax/parser_code.go): a minPrec parameter
// threaded through recursive calls, eating the operator only once its
// precedence clears the caller's floor, and bumping prec by one on a
// left-associative operator to keep the next recursive call from also
// consuming same-precedence operators.
type infixOperand[T any] interface {
	// AtOperator reports whether the cursor sits at an infix operator
	// identifier, returning its spelling.
	AtOperator(cur *Cursor) (string, bool)
	// ParseOperand parses the next primary/prefix operand (no infix
	// climbing of its own — climbInfix performs all climbing).
	ParseOperand(cur *Cursor, minPrec int) T
	// Reduce builds the infix node lhs OP rhs... for operator name op.
	Reduce(lhs T, op string, rhs []T) T
	// SplatTuple reports whether rhs, if it is a literal tuple-shaped
	// operand, should be splatted into multiple Reduce arguments: `a op (b,
	// c)` and `a op b` are both legal, and a tuple RHS is splatted into
	// multiple arguments of the reduced node rather than passed as one.
	// Returns the splatted elements and true, or (nil, false) when rhs is
	// not a tuple.
	SplatTuple(rhs T) ([]T, bool)
}

// precedence mirrors Scala's fixed first-character precedence rule: the
// operator's leading character picks one of ten precedence bands, from
// lowest (letters, i.e. alphabetic/underscore-led operators like
// `contains`) to highest (characters in no listed band, conventionally `#`
// and friends).
//
// Bands are listed highest-precedence first so callers can read the table
// the way the language reference does.
var precedenceBands = []string{
	"*/%",
	"+-",
	":",
	"=!",
	"<>",
	"&",
	"^",
	"|",
}

func precedence(op string) int {
	if op == "" {
		return 0
	}
	first := op[0]
	if isLetterOrUnderscore(first) {
		return 0 // lowest: alphabetic operators (contains, until, ...)
	}
	for i, band := range precedenceBands {
		if strings.IndexByte(band, first) >= 0 {
			// Bands are listed highest-first; invert so a higher index in
			// precedenceBands still yields a lower numeric precedence than
			// an earlier one, keeping "higher number binds tighter".
			return len(precedenceBands) - i + 1
		}
	}
	return len(precedenceBands) + 2 // unlisted leading characters: highest
}

func isLetterOrUnderscore(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isLeftAssociative reports Scala's associativity rule: an operator is
// right-associative iff its last character is `:`; every other operator is
// left-associative.
func isLeftAssociative(op string) bool {
	if op == "" {
		return true
	}
	return op[len(op)-1] != ':'
}

// ParseInfix parses a full infix expression at precedence floor minPrec:
// one operand via eng.ParseOperand, then as many infix operators as bind at
// least that tightly. Term, pattern and type parsers call this as their sole
// entry point into the shared infix engine.
func ParseInfix[T any](cur *Cursor, eng infixOperand[T], minPrec int) T {
	lhs := eng.ParseOperand(cur, minPrec)
	return climbInfix(cur, eng, lhs, minPrec)
}

// climbInfix runs one precedence-climbing pass starting from an
// already-parsed lhs, consuming operators whose precedence is >= minPrec.
// It is the generic core the term, pattern and type infix parsers call.
func climbInfix[T any](cur *Cursor, eng infixOperand[T], lhs T, minPrec int) T {
	for {
		op, ok := eng.AtOperator(cur)
		if !ok {
			return lhs
		}
		prec := precedence(op)
		if prec < minPrec {
			return lhs
		}

		nextMin := prec
		if isLeftAssociative(op) {
			nextMin = prec + 1
		}

		cur.Eat() // the operator identifier itself

		rhsOperand := eng.ParseOperand(cur, nextMin)
		// Continue climbing on the RHS before reducing, so a chain like
		// `a + b * c` reduces as `a + (b * c)`.
		rhsOperand = climbInfix(cur, eng, rhsOperand, nextMin)

		var rhs []T
		if elems, isTuple := eng.SplatTuple(rhsOperand); isTuple {
			rhs = elems
		} else {
			rhs = []T{rhsOperand}
		}

		lhs = eng.Reduce(lhs, op, rhs)
	}
}
