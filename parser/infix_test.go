package parser

import "testing"

func TestPrecedenceBands(t *testing.T) {
	tests := []struct{ a, b string }{
		{"*", "+"},  // * binds tighter than +
		{"+", ":"},  // + binds tighter than :
		{":", "="},  // : binds tighter than =! band
		{"=", "<"},  // =! binds tighter than <>
		{"<", "&"},  // <> binds tighter than &
		{"&", "^"},  // & binds tighter than ^
		{"^", "|"},  // ^ binds tighter than |
		{"|", "contains"}, // any symbolic operator binds tighter than a letter-led one
	}
	for _, tt := range tests {
		pa, pb := precedence(tt.a), precedence(tt.b)
		if pa <= pb {
			t.Errorf("precedence(%q)=%d should be > precedence(%q)=%d", tt.a, pa, tt.b, pb)
		}
	}
}

func TestPrecedenceUnlistedCharacterIsHighest(t *testing.T) {
	if precedence("#") <= precedence("*") {
		t.Error("an operator starting with an unlisted character should bind tighter than */%")
	}
}

func TestIsLeftAssociative(t *testing.T) {
	if !isLeftAssociative("+") {
		t.Error("+ should be left-associative")
	}
	if isLeftAssociative("::") {
		t.Error(":: should be right-associative (trailing ':')")
	}
	if !isLeftAssociative("") {
		t.Error("empty operator spelling should default to left-associative")
	}
}

// fakeTree is a minimal infixOperand[*fakeTree] operand used to exercise
// climbInfix's reduction/precedence logic directly, without going through
// the term/pattern grammars (which have their own, separately exercised
// tests): each "operand" is just the integer value of a digit token.
type fakeTree struct {
	val      int
	op       string
	children []*fakeTree
}

func shapeOf(t *fakeTree) string {
	if t.op == "" {
		return string(rune('0' + t.val))
	}
	s := "(" + shapeOf(t.children[0])
	for _, c := range t.children[1:] {
		s += t.op + shapeOf(c)
	}
	return s + ")"
}

func TestClimbInfixLeftAssociativeEqualPrecedence(t *testing.T) {
	// "1 + 2 + 3" should reduce as (1+2)+3, not 1+(2+3).
	p, _ := newParser(t, "x") // only used to obtain a *Cursor value; unused by the fake engine
	eng := &driverFakeInfix{seq: []string{"1", "+", "2", "+", "3"}}
	got := ParseInfix[*fakeTree](p.Cursor, eng, 0)
	if want := "((1+2)+3)"; shapeOf(got) != want {
		t.Errorf("shape = %s, want %s", shapeOf(got), want)
	}
}

func TestClimbInfixRightAssociativeEqualPrecedence(t *testing.T) {
	// "1 :: 2 :: 3" should reduce as 1::(2::3) since :: is right-associative.
	p, _ := newParser(t, "x")
	eng := &driverFakeInfix{seq: []string{"1", "::", "2", "::", "3"}}
	got := ParseInfix[*fakeTree](p.Cursor, eng, 0)
	if want := "(1::(2::3))"; shapeOf(got) != want {
		t.Errorf("shape = %s, want %s", shapeOf(got), want)
	}
}

func TestClimbInfixHigherPrecedenceBindsTighter(t *testing.T) {
	// "1 + 2 * 3" should reduce as 1+(2*3) since * binds tighter than +.
	p, _ := newParser(t, "x")
	eng := &driverFakeInfix{seq: []string{"1", "+", "2", "*", "3"}}
	got := ParseInfix[*fakeTree](p.Cursor, eng, 0)
	if want := "(1+(2*3))"; shapeOf(got) != want {
		t.Errorf("shape = %s, want %s", shapeOf(got), want)
	}
}

// driverFakeInfix is a self-contained infixOperand[*fakeTree] that owns its
// own token queue instead of reading from the real Cursor, so these tests
// exercise climbInfix's reduction/precedence logic in isolation from the
// term/pattern grammars (which have their own, separately exercised tests).
type driverFakeInfix struct{ seq []string }

func (d *driverFakeInfix) AtOperator(cur *Cursor) (string, bool) {
	if len(d.seq) == 0 {
		return "", false
	}
	switch d.seq[0] {
	case "+", "*", "::":
		return d.seq[0], true
	}
	return "", false
}

func (d *driverFakeInfix) ParseOperand(cur *Cursor, minPrec int) *fakeTree {
	// climbInfix consumes an accepted operator by advancing the real
	// Cursor, which this fake ignores, so drop it from the queue here.
	if _, isOp := d.AtOperator(cur); isOp {
		d.seq = d.seq[1:]
	}
	v := int(d.seq[0][0] - '0')
	d.seq = d.seq[1:]
	return &fakeTree{val: v}
}

func (d *driverFakeInfix) Reduce(lhs *fakeTree, op string, rhs []*fakeTree) *fakeTree {
	return &fakeTree{op: op, children: append([]*fakeTree{lhs}, rhs...)}
}

func (d *driverFakeInfix) SplatTuple(rhs *fakeTree) ([]*fakeTree, bool) { return nil, false }
