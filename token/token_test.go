package token

import "testing"

func TestKindStringKnown(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{KwClass, "'class'"},
		{LParen, "'('"},
		{Arrow, "'=>'"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindStringUnknownFallsBackToNumber(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got != "kind(9999)" {
		t.Errorf("String() = %q, want kind(9999)", got)
	}
}

func TestIsTrivia(t *testing.T) {
	trivia := []Kind{Whitespace, LF, LFLF, CommentLine, CommentBlock, Indent, Outdent, BOF}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = false, want true", k)
		}
	}
	nonTrivia := []Kind{EOF, IdentLower, KwClass, LParen}
	for _, k := range nonTrivia {
		if k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = true, want false", k)
		}
	}
}

func TestIsIndentControl(t *testing.T) {
	if !Indent.IsIndentControl() || !Outdent.IsIndentControl() {
		t.Error("Indent/Outdent should be indent control kinds")
	}
	if LF.IsIndentControl() {
		t.Error("LF should not be an indent control kind")
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []Kind{LitInt, LitLong, LitFloat, LitDouble, LitChar, LitString, LitStringTriple, LitSymbol}
	for _, k := range lits {
		if !k.IsLiteral() {
			t.Errorf("%v.IsLiteral() = false, want true", k)
		}
	}
	if IdentLower.IsLiteral() {
		t.Error("IdentLower should not be a literal kind")
	}
}

func TestIsIdent(t *testing.T) {
	idents := []Kind{IdentLower, IdentUpper, IdentBackquoted, IdentOp}
	for _, k := range idents {
		if !k.IsIdent() {
			t.Errorf("%v.IsIdent() = false, want true", k)
		}
	}
	if KwClass.IsIdent() {
		t.Error("KwClass should not be an identifier kind")
	}
}

func TestIsHardKeyword(t *testing.T) {
	if !KwClass.IsHardKeyword() {
		t.Error("KwClass should be a hard keyword")
	}
	if !KwMacro.IsHardKeyword() {
		t.Error("KwMacro should be a hard keyword")
	}
	if IdentLower.IsHardKeyword() {
		t.Error("IdentLower should not be a hard keyword")
	}
	if Arrow.IsHardKeyword() {
		t.Error("Arrow should not be a hard keyword")
	}
}
