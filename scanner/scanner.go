// Package scanner implements the tokenizer the parser treats as an external
// collaborator: it exposes indexed token access, a raw-text accessor, and a
// classifier predicate set, but makes no grammar decisions of its own.
//
// It is a rune-at-a-time scanner in the style of the teacher parser's own
// (github.com/boergens/gotypst, syntax/scanner.go + syntax/lexer.go): a
// small cursor primitive (runeScanner) plus a Next() entry point that
// classifies the next run of source text into a single Token.
package scanner

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/langkit/scalaparse/token"
)

// runeScanner is the low-level cursor over source bytes, mirroring the
// teacher's Scanner type (syntax/scanner.go): Peek/Scout/Eat over runes,
// with a bare byte cursor underneath.
type runeScanner struct {
	text   string
	cursor int
}

func newRuneScanner(text string) *runeScanner {
	return &runeScanner{text: text}
}

func (s *runeScanner) done() bool { return s.cursor >= len(s.text) }

func (s *runeScanner) peek() rune {
	if s.done() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.cursor:])
	return r
}

func (s *runeScanner) peekAt(offset int) rune {
	pos := s.cursor
	for i := 0; i < offset; i++ {
		if pos >= len(s.text) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(s.text[pos:])
		pos += size
	}
	if pos >= len(s.text) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.text[pos:])
	return r
}

func (s *runeScanner) eat() rune {
	if s.done() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.text[s.cursor:])
	s.cursor += size
	return r
}

func (s *runeScanner) eatIf(r rune) bool {
	if s.peek() == r {
		s.eat()
		return true
	}
	return false
}

// Scanner tokenizes Scala-family source text into a flat stream of Tokens.
// It has no knowledge of dialects or grammar: every dialect-gated decision
// (is this "using" a soft keyword here? is "$" a valid unquote escape?) is
// made by the parser, never here.
type Scanner struct {
	s            *runeScanner
	line, column int
	// lineStart is the byte offset at which the current line begins; the
	// column recorded on each token is counted in grapheme clusters from
	// there (see columnOf), not in bytes.
	lineStart int
}

// New creates a Scanner over text.
func New(text string) *Scanner {
	return &Scanner{s: newRuneScanner(text), line: 1, column: 0}
}

// Cursor returns the current byte offset, which Jump accepts to rewind the
// scanner. The parser does not call it: it backtracks over the pre-lexed
// slice from Tokenize (parser.Cursor.Checkpoint/Restore).
func (sc *Scanner) Cursor() int { return sc.s.cursor }

// Jump resets the scanner to a previously observed byte offset.
func (sc *Scanner) Jump(pos int) {
	sc.s.cursor = pos
	sc.recomputePosition(pos)
}

func (sc *Scanner) recomputePosition(pos int) {
	line, lineStart := 1, 0
	for i, r := range sc.s.text[:pos] {
		if r == '\n' {
			line++
			lineStart = i + 1
		}
	}
	sc.line = line
	sc.lineStart = lineStart
	sc.column = columnOf(sc.s.text[lineStart:pos])
}

// columnOf returns the display column (grapheme-cluster count, not byte or
// rune count) of text measured from a line start. This is the component
// that exercises github.com/rivo/uniseg: wide/combining characters and
// multi-byte identifiers must not desynchronize the significant-indentation
// cursor's column bookkeeping for significant-indentation tracking.
func columnOf(text string) int {
	n := 0
	remaining := text
	for len(remaining) > 0 {
		_, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		n++
		remaining = rest
	}
	return n
}

// Tokenize drains a Scanner into a flat token slice, ending with exactly one
// EOF token, the shape parser.NewCursor expects. It is the batching
// convenience every entry point (package parser is driven from a pre-lexed
// slice, not a pull-based Next()) sits on top of.
func Tokenize(text string) []token.Token {
	sc := New(text)
	var toks []token.Token
	for {
		t := sc.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// Next produces the next Token in the stream, starting at the scanner's
// current cursor. It never looks at dialect flags.
func (sc *Scanner) Next() token.Token {
	start := sc.s.cursor
	line, col := sc.line, sc.column

	if sc.s.done() {
		return sc.tok(token.EOF, start, line, col, nil)
	}

	c := sc.s.peek()
	switch {
	case c == '\n':
		sc.eatNewline()
		return sc.tok(token.LF, start, line, col, nil)
	case c == ' ' || c == '\t' || c == '\r':
		sc.eatWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' })
		return sc.tok(token.Whitespace, start, line, col, nil)
	case c == '/' && sc.s.peekAt(1) == '/':
		sc.eatWhile(func(r rune) bool { return r != '\n' })
		return sc.tok(token.CommentLine, start, line, col, nil)
	case c == '/' && sc.s.peekAt(1) == '*':
		sc.eatBlockComment()
		return sc.tok(token.CommentBlock, start, line, col, nil)
	case unicode.IsDigit(c):
		return sc.scanNumber(start, line, col)
	case c == '"':
		return sc.scanString(start, line, col)
	case c == '\'':
		return sc.scanQuote(start, line, col)
	case c == '`':
		return sc.scanBackquoted(start, line, col)
	case c == '$' && sc.s.peekAt(1) == '{':
		sc.s.eat()
		sc.s.eat()
		sc.advanceColumn("${")
		return sc.tok(token.SpliceBrace, start, line, col, nil)
	case c == '_' && !isIdentContinue(sc.s.peekAt(1)):
		sc.s.eat()
		sc.advanceColumn("_")
		return sc.tok(token.Underscore, start, line, col, nil)
	case isIdentStart(c):
		return sc.scanIdentOrKeyword(start, line, col)
	default:
		return sc.scanOperatorOrPunct(start, line, col)
	}
}

func (sc *Scanner) eatNewline() {
	sc.s.eat()
	sc.line++
	sc.lineStart = sc.s.cursor
	sc.column = 0
}

func (sc *Scanner) advanceColumn(consumed string) {
	sc.column += columnOf(consumed)
}

func (sc *Scanner) eatWhile(pred func(rune) bool) string {
	startByte := sc.s.cursor
	for !sc.s.done() && pred(sc.s.peek()) {
		sc.s.eat()
	}
	text := sc.s.text[startByte:sc.s.cursor]
	sc.advanceColumn(text)
	return text
}

func (sc *Scanner) eatBlockComment() {
	startByte := sc.s.cursor
	sc.s.eat()
	sc.s.eat() // "/*"
	depth := 1
	for !sc.s.done() && depth > 0 {
		switch {
		case sc.s.peek() == '/' && sc.s.peekAt(1) == '*':
			sc.s.eat()
			sc.s.eat()
			depth++
		case sc.s.peek() == '*' && sc.s.peekAt(1) == '/':
			sc.s.eat()
			sc.s.eat()
			depth--
		case sc.s.peek() == '\n':
			sc.eatNewline()
		default:
			sc.s.eat()
		}
	}
	sc.advanceColumn(sc.s.text[startByte:sc.s.cursor])
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isOperatorChar(r rune) bool {
	switch r {
	case '~', '!', '@', '#', '%', '^', '*', '+', '-', '<', '>', '?', ':', '=', '&', '|', '/', '\\':
		return true
	}
	return unicode.IsSymbol(r) && !unicode.IsLetter(r)
}

func (sc *Scanner) scanIdentOrKeyword(start, line, col int) token.Token {
	text := sc.eatWhile(isIdentContinue)
	if kw, ok := keywords[text]; ok {
		return sc.tok(kw, start, line, col, text)
	}
	kind := token.IdentLower
	if r, _ := utf8.DecodeRuneInString(text); unicode.IsUpper(r) {
		kind = token.IdentUpper
	}
	return sc.tok(kind, start, line, col, text)
}

func (sc *Scanner) scanBackquoted(start, line, col int) token.Token {
	sc.s.eat() // opening `
	text := sc.eatWhile(func(r rune) bool { return r != '`' })
	sc.s.eatIf('`')
	return sc.tok(token.IdentBackquoted, start, line, col, text)
}

func (sc *Scanner) scanOperatorOrPunct(start, line, col int) token.Token {
	c := sc.s.peek()
	switch c {
	case '(':
		sc.s.eat()
		return sc.tok(token.LParen, start, line, col, nil)
	case ')':
		sc.s.eat()
		return sc.tok(token.RParen, start, line, col, nil)
	case '{':
		sc.s.eat()
		return sc.tok(token.LBrace, start, line, col, nil)
	case '}':
		sc.s.eat()
		return sc.tok(token.RBrace, start, line, col, nil)
	case '[':
		sc.s.eat()
		return sc.tok(token.LBracket, start, line, col, nil)
	case ']':
		sc.s.eat()
		return sc.tok(token.RBracket, start, line, col, nil)
	case ',':
		sc.s.eat()
		return sc.tok(token.Comma, start, line, col, nil)
	case ';':
		sc.s.eat()
		return sc.tok(token.Semicolon, start, line, col, nil)
	case '@':
		sc.s.eat()
		return sc.tok(token.At, start, line, col, nil)
	case '#':
		sc.s.eat()
		return sc.tok(token.Hash, start, line, col, nil)
	}

	if c == '.' && sc.s.peekAt(1) == '.' && sc.s.peekAt(2) == '.' {
		sc.s.eat()
		sc.s.eat()
		sc.s.eat()
		return sc.tok(token.TripleDot, start, line, col, nil)
	}
	if c == '.' {
		sc.s.eat()
		return sc.tok(token.Dot, start, line, col, nil)
	}

	text := sc.eatWhile(isOperatorChar)
	if text == "" {
		// A stray, unclassifiable byte: consume one rune so the scanner
		// always makes progress, and hand the parser an Illegal token, which
		// Cursor.Unexpected reports via diagnostics.IllegalCharMessage.
		r := sc.s.eat()
		return sc.tok(token.Illegal, start, line, col, string(r))
	}
	return sc.classifyOperator(text, start, line, col)
}

func (sc *Scanner) classifyOperator(text string, start, line, col int) token.Token {
	switch text {
	case ".":
		return sc.tok(token.Dot, start, line, col, nil)
	case ":":
		return sc.tok(token.Colon, start, line, col, nil)
	case "=":
		return sc.tok(token.Equals, start, line, col, nil)
	case "_":
		return sc.tok(token.Underscore, start, line, col, nil)
	case "=>":
		return sc.tok(token.Arrow, start, line, col, nil)
	case "?=>":
		return sc.tok(token.ContextArrow, start, line, col, nil)
	case "<-":
		return sc.tok(token.LArrow, start, line, col, nil)
	case "::":
		return sc.tok(token.ColonColon, start, line, col, nil)
	case "<:":
		return sc.tok(token.Subtype, start, line, col, nil)
	case ">:":
		return sc.tok(token.Supertype, start, line, col, nil)
	case "<%":
		return sc.tok(token.Viewbound, start, line, col, nil)
	case "'{":
		return sc.tok(token.QuoteBrace, start, line, col, nil)
	case "'[":
		return sc.tok(token.QuoteBracket, start, line, col, nil)
	case "${":
		return sc.tok(token.SpliceBrace, start, line, col, nil)
	case "&":
		return sc.tok(token.Ampersand, start, line, col, nil)
	}
	return sc.tok(token.IdentOp, start, line, col, text)
}

func (sc *Scanner) scanNumber(start, line, col int) token.Token {
	isDigitOrUnderscore := func(r rune) bool { return unicode.IsDigit(r) || r == '_' }
	intPart := sc.eatWhile(isDigitOrUnderscore)
	isFloat := false
	if sc.s.peek() == '.' && unicode.IsDigit(sc.s.peekAt(1)) {
		isFloat = true
		sc.s.eat()
		sc.advanceColumn(".")
		sc.eatWhile(isDigitOrUnderscore)
	}
	if sc.s.peek() == 'e' || sc.s.peek() == 'E' {
		isFloat = true
		sc.s.eat()
		sc.advanceColumn("e")
		if sc.s.peek() == '+' || sc.s.peek() == '-' {
			r := sc.s.eat()
			sc.advanceColumn(string(r))
		}
		sc.eatWhile(isDigitOrUnderscore)
	}

	raw := sc.s.text[start:sc.s.cursor]
	clean := stripUnderscores(raw)

	switch sc.s.peek() {
	case 'L', 'l':
		sc.s.eat()
		sc.advanceColumn("L")
		v, _ := strconv.ParseInt(clean, 10, 64)
		return sc.tok(token.LitLong, start, line, col, v)
	case 'f', 'F':
		sc.s.eat()
		sc.advanceColumn("f")
		v, _ := strconv.ParseFloat(clean, 32)
		return sc.tok(token.LitFloat, start, line, col, v)
	case 'd', 'D':
		sc.s.eat()
		sc.advanceColumn("d")
		v, _ := strconv.ParseFloat(clean, 64)
		return sc.tok(token.LitDouble, start, line, col, v)
	}
	_ = intPart
	if isFloat {
		v, _ := strconv.ParseFloat(clean, 64)
		return sc.tok(token.LitDouble, start, line, col, v)
	}
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return sc.tok(token.LitLong, start, line, col, clean)
	}
	return sc.tok(token.LitInt, start, line, col, v)
}

func stripUnderscores(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func (sc *Scanner) scanQuote(start, line, col int) token.Token {
	// Disambiguate a character literal ('x') from a quasiquote opener ('{,
	// '[) and from a symbol literal ('ident); the scanner only classifies
	// shape here, and whether quasiquote forms are legal is left to the
	// parser's dialect flags.
	if sc.s.peekAt(1) == '{' {
		sc.s.eat()
		sc.s.eat()
		return sc.tok(token.QuoteBrace, start, line, col, nil)
	}
	if sc.s.peekAt(1) == '[' {
		sc.s.eat()
		sc.s.eat()
		return sc.tok(token.QuoteBracket, start, line, col, nil)
	}
	if isIdentStart(sc.s.peekAt(1)) && sc.s.peekAt(1) != '\\' {
		// Try a symbol literal: 'ident with no closing quote.
		save := sc.s.cursor
		sc.s.eat()
		ident := sc.eatWhile(isIdentContinue)
		if sc.s.peek() != '\'' {
			return sc.tok(token.LitSymbol, start, line, col, ident)
		}
		sc.s.cursor = save
	}

	sc.s.eat() // opening '
	var sb []rune
	for !sc.s.done() && sc.s.peek() != '\'' {
		r := sc.s.eat()
		if r == '\\' && !sc.s.done() {
			r2 := sc.s.eat()
			sb = append(sb, '\\', r2)
			continue
		}
		sb = append(sb, r)
	}
	sc.s.eatIf('\'')
	return sc.tok(token.LitChar, start, line, col, string(sb))
}

func (sc *Scanner) scanString(start, line, col int) token.Token {
	if sc.s.peekAt(1) == '"' && sc.s.peekAt(2) == '"' {
		sc.s.eat()
		sc.s.eat()
		sc.s.eat()
		var sb []rune
		for !sc.s.done() {
			if sc.s.peek() == '"' && sc.s.peekAt(1) == '"' && sc.s.peekAt(2) == '"' {
				sc.s.eat()
				sc.s.eat()
				sc.s.eat()
				break
			}
			if sc.s.peek() == '\n' {
				sc.eatNewline()
				sb = append(sb, '\n')
				continue
			}
			sb = append(sb, sc.s.eat())
		}
		return sc.tok(token.LitStringTriple, start, line, col, string(sb))
	}

	sc.s.eat()
	var sb []rune
	for !sc.s.done() && sc.s.peek() != '"' && sc.s.peek() != '\n' {
		r := sc.s.eat()
		if r == '\\' && !sc.s.done() {
			sb = append(sb, r, sc.s.eat())
			continue
		}
		sb = append(sb, r)
	}
	sc.s.eatIf('"')
	return sc.tok(token.LitString, start, line, col, string(sb))
}

func (sc *Scanner) tok(kind token.Kind, start, line, col int, literal any) token.Token {
	end := sc.s.cursor
	return token.Token{
		Kind: kind, Start: start, End: end,
		Line: line, Column: col,
		Literal: literal,
		Text:    sc.s.text[start:end],
	}
}

var keywords = map[string]token.Kind{
	"abstract": token.KwAbstract, "case": token.KwCase, "catch": token.KwCatch,
	"class": token.KwClass, "def": token.KwDef, "do": token.KwDo, "else": token.KwElse,
	"enum": token.KwEnum, "export": token.KwExport, "extends": token.KwExtends,
	"extension": token.KwExtension, "false": token.KwFalse, "final": token.KwFinal,
	"finally": token.KwFinally, "for": token.KwFor, "forSome": token.KwForSome,
	"given": token.KwGiven, "if": token.KwIf, "implicit": token.KwImplicit,
	"import": token.KwImport, "lazy": token.KwLazy, "match": token.KwMatch,
	"new": token.KwNew, "null": token.KwNull, "object": token.KwObject,
	"override": token.KwOverride, "package": token.KwPackage, "private": token.KwPrivate,
	"protected": token.KwProtected, "return": token.KwReturn, "sealed": token.KwSealed,
	"super": token.KwSuper, "this": token.KwThis, "throw": token.KwThrow,
	"trait": token.KwTrait, "true": token.KwTrue, "try": token.KwTry, "type": token.KwType,
	"val": token.KwVal, "var": token.KwVar, "while": token.KwWhile, "with": token.KwWith,
	"yield": token.KwYield, "macro": token.KwMacro,
}
