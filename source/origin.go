// Package source provides the position-tracking types every AST node carries:
// a Buffer (the shared, immutable source text a parse ran over) and an
// Origin (a trimmed, token-index span into that buffer).
//
// This is a Go rendering of the teacher parser's Span/Origin bookkeeping
// (github.com/boergens/gotypst, syntax/span.go), adapted from byte-offset
// spans to token-index spans: every node's position is defined as a start
// index and an end index into the token stream, not a byte offset, so
// Origin is shaped around that contract instead of the teacher's
// numbered-span scheme.
package source

import "fmt"

// Buffer is the shared, read-only handle every Origin produced by one parse
// points into. Distinct parses never share a Buffer, so distinct parser
// instances share no mutable state.
type Buffer struct {
	// Path is a human-readable identifier for diagnostics; empty for
	// anonymous/REPL input.
	Path string
	// Text is the full source text the token stream was scanned from.
	Text string
	// Dialect is recorded on the buffer because every Origin needs to be
	// able to answer "which dialect was active here" without threading an
	// extra parameter through every AST constructor.
	Dialect string
}

// Origin is the span attached to every AST node: it records the input
// buffer and a trimmed [start,endExclusive) token-index span.
type Origin struct {
	Buffer *Buffer
	Start  int // inclusive token index
	End    int // exclusive token index
}

// Detached returns an Origin that points at no real span, for nodes or
// unions that have no source position.
func Detached() Origin {
	return Origin{}
}

// IsDetached reports whether o was never assigned a buffer.
func (o Origin) IsDetached() bool {
	return o.Buffer == nil
}

// Contains reports whether o's span fully contains other's span — the
// invariant that must hold between a composite node and each of its
// children after trivia trimming.
func (o Origin) Contains(other Origin) bool {
	if o.IsDetached() || other.IsDetached() {
		return false
	}
	return o.Start <= other.Start && other.End <= o.End
}

// Union returns the smallest Origin spanning both o and other. Both must
// share a Buffer.
func (o Origin) Union(other Origin) Origin {
	if o.IsDetached() {
		return other
	}
	if other.IsDetached() {
		return o
	}
	start, end := o.Start, o.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Origin{Buffer: o.Buffer, Start: start, End: end}
}

// String implements fmt.Stringer for diagnostics and test failure messages.
func (o Origin) String() string {
	if o.IsDetached() {
		return "<detached>"
	}
	return fmt.Sprintf("%s[%d,%d)", o.Buffer.Path, o.Start, o.End)
}
