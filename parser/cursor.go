// Package parser implements a hand-written recursive-descent parser over
// the token stream produced by package scanner, guided by an immutable
// dialect.Dialect. Its structure follows the teacher's own
// parser (github.com/boergens/gotypst, syntax/parser.go): a cursor over a
// pre-lexed token slice, speculative lookahead via checkpoint/restore
// rather than exceptions, and a newline-sensitivity mode that a caller
// pushes/pops around a parse of indentation-significant constructs.
package parser

import (
	"github.com/langkit/scalaparse/diagnostics"
	"github.com/langkit/scalaparse/dialect"
	"github.com/langkit/scalaparse/source"
	"github.com/langkit/scalaparse/token"
)

// MaxDepth bounds expression nesting the same way the teacher's
// syntax/parser.go does, guarding against stack overflow on adversarial
// input rather than any property of the grammar itself.
const MaxDepth = 256

// AtNewline governs what happens when the cursor finds itself at a newline
// token it would otherwise skip as trivia — the dialect-gated
// significant-indentation mechanism. It mirrors the
// teacher's AtNewline (syntax/parser.go) almost verbatim, since the
// underlying problem (when does a line break end a production) is the
// same one Typst's markup/code boundary solves.
type AtNewline int

const (
	// NLContinue treats newlines as ordinary trivia.
	NLContinue AtNewline = iota
	// NLStop ends the current production at any newline.
	NLStop
	// NLStopOutdented ends the production only when the next
	// non-trivia token's column is <= the indentation recorded when
	// this mode was pushed (a significant-indentation block close).
	NLStopOutdented
)

// Checkpoint is an opaque cursor position a caller can Restore to, used by
// every speculative/backtracking production that needs to fork a
// checkpoint, retry, and restore on failure.
type Checkpoint struct {
	index  int
	indent int
}

// Cursor walks a fixed token slice, tracking the dialect-gated newline mode
// and the reference indentation column for the innermost
// significant-indentation block.
type Cursor struct {
	Tokens []token.Token
	Pos    source.Tracker
	Dialect dialect.Dialect
	Sink    diagnostics.Sink

	index   int // index into Tokens of the current non-trivia token
	nlMode  AtNewline
	indent  int // reference column for NLStopOutdented
	depth   int
}

// NewCursor builds a Cursor positioned at the first non-trivia token.
func NewCursor(tokens []token.Token, buf *source.Buffer, d dialect.Dialect, sink diagnostics.Sink) *Cursor {
	c := &Cursor{
		Tokens:  tokens,
		Pos:     source.NewTracker(tokens, buf),
		Dialect: d,
		Sink:    sink,
		nlMode:  NLContinue,
	}
	c.skipTrivia()
	return c
}

// skipTrivia advances index past trivia tokens (whitespace, comments,
// newlines) without consuming significant tokens.
func (c *Cursor) skipTrivia() {
	for c.index < len(c.Tokens) && c.Tokens[c.index].Kind.IsTrivia() {
		c.index++
	}
}

// Current returns the current non-trivia token's kind.
func (c *Cursor) Current() token.Kind {
	if c.index >= len(c.Tokens) {
		return token.EOF
	}
	return c.Tokens[c.index].Kind
}

// CurrentToken returns the full current token.
func (c *Cursor) CurrentToken() token.Token {
	if c.index >= len(c.Tokens) {
		return token.Token{Kind: token.EOF}
	}
	return c.Tokens[c.index]
}

// At reports whether the current token has the given kind.
func (c *Cursor) At(k token.Kind) bool { return c.Current() == k }

// End reports whether the cursor has exhausted its tokens.
func (c *Cursor) End() bool { return c.Current() == token.EOF }

// HadNewlineBefore reports whether a newline token precedes the current
// token among the trivia just skipped — used by productions that must
// decide, per AtNewline's rules, whether to continue on the same logical
// line.
func (c *Cursor) HadNewlineBefore() bool {
	i := c.index - 1
	for i >= 0 && c.Tokens[i].Kind.IsTrivia() {
		if c.Tokens[i].Kind == token.LF || c.Tokens[i].Kind == token.LFLF {
			return true
		}
		i--
	}
	return false
}

// Column reports the column of the current token, used to compare against
// the reference indentation of an enclosing significant-indentation block.
func (c *Cursor) Column() int {
	if c.index >= len(c.Tokens) {
		return 0
	}
	return c.Tokens[c.index].Column
}

// Eat consumes and returns the current token, advancing past any trailing
// trivia to the next significant token.
func (c *Cursor) Eat() token.Token {
	t := c.CurrentToken()
	if c.index < len(c.Tokens) {
		c.index++
	}
	c.skipTrivia()
	return t
}

// EatIf consumes the current token and returns true if it has kind k,
// otherwise leaves the cursor untouched and returns false — the cursor
// analogue of the teacher's Parser.eatIf.
func (c *Cursor) EatIf(k token.Kind) bool {
	if c.At(k) {
		c.Eat()
		return true
	}
	return false
}

// Expect consumes the current token if it matches k, else reports a
// diagnostic and leaves the cursor in place; the caller carries on parsing
// from there, with no resynchronization.
func (c *Cursor) Expect(k token.Kind) (token.Token, bool) {
	if c.At(k) {
		return c.Eat(), true
	}
	c.Unexpected(k.String())
	return token.Token{}, false
}

// Unexpected reports that `thing` was expected at the current position. A
// byte the scanner could not classify gets the character-naming message
// IllegalCharMessage builds rather than the generic "found illegal".
func (c *Cursor) Unexpected(thing string) {
	origin := c.Pos.Origin(c.index, c.index)
	message := "expected " + thing + ", found " + c.Current().String()
	if c.Current() == token.Illegal {
		if s, ok := c.CurrentToken().Literal.(string); ok {
			for _, r := range s {
				message = diagnostics.IllegalCharMessage(r)
				break
			}
		}
	}
	c.Sink.Report(&diagnostics.Diagnostic{
		Severity: diagnostics.Error,
		Span:     origin,
		Message:  message,
	})
}

// Mark returns the current index for use as the start of a node's Origin
// span once the node's extent is known.
func (c *Cursor) Mark() int { return c.index }

// Origin builds a source.Origin spanning from the index Mark returned up to,
// but not including, the current token — Tracker.Origin takes an inclusive
// end index, hence the -1.
func (c *Cursor) Origin(from int) source.Origin {
	return c.Pos.Origin(from, c.index-1)
}

// Checkpoint captures cursor state for a later Restore, the mechanism every
// lookahead-bounded disambiguation (lambda-vs-tuple, infix-vs-newline-stop,
// pattern-vs-expression) forks from before committing to a branch.
func (c *Cursor) Checkpoint() Checkpoint {
	return Checkpoint{index: c.index, indent: c.indent}
}

// Restore rewinds the cursor to a previously captured Checkpoint.
func (c *Cursor) Restore(cp Checkpoint) {
	c.index = cp.index
	c.indent = cp.indent
}

// PushNewlineMode installs a new AtNewline mode (optionally with a
// reference indentation column for NLStopOutdented) and returns a restore
// function the caller must invoke when leaving the construct that needed
// it — mirroring the teacher's enterModes/withNLMode nesting discipline.
func (c *Cursor) PushNewlineMode(mode AtNewline, indentCol int) (restore func()) {
	prevMode, prevIndent := c.nlMode, c.indent
	c.nlMode = mode
	c.indent = indentCol
	return func() {
		c.nlMode = prevMode
		c.indent = prevIndent
	}
}

// StoppedAtNewline reports whether the current newline mode says the
// calling production should treat "here" as an implicit end, without
// consuming anything.
func (c *Cursor) StoppedAtNewline() bool {
	if !c.HadNewlineBefore() {
		return false
	}
	switch c.nlMode {
	case NLContinue:
		return false
	case NLStop:
		return true
	case NLStopOutdented:
		return c.Column() <= c.indent
	default:
		return false
	}
}

// EnterDepth increments the nesting-depth counter and returns a matching
// decrement, reporting a diagnostic and returning ok=false once MaxDepth is
// exceeded so callers can unwind instead of blowing the Go call stack.
func (c *Cursor) EnterDepth() (leave func(), ok bool) {
	c.depth++
	if c.depth > MaxDepth {
		origin := c.Pos.Origin(c.index, c.index)
		c.Sink.Report(&diagnostics.Diagnostic{
			Severity: diagnostics.Error,
			Span:     origin,
			Message:  "expression nested too deeply",
		})
		return func() { c.depth-- }, false
	}
	return func() { c.depth-- }, true
}
