package source

import "github.com/langkit/scalaparse/token"

// Tracker computes Origins from raw token-index ranges by trimming the
// trivia tokens at both ends of the range.
//
// This is the position-tracker component: a small, stateless leaf depended
// on by every other parser component that needs to stamp a node with its
// source range.
type Tracker struct {
	Tokens []token.Token
	Buffer *Buffer
}

// NewTracker builds a Tracker over the given token slice and buffer.
func NewTracker(tokens []token.Token, buf *Buffer) Tracker {
	return Tracker{Tokens: tokens, Buffer: buf}
}

// Origin computes the trimmed Origin for the inclusive token range
// [start, end]:
//   - if end < start the range is empty and the span is [start, start);
//   - if the range is a single trivia token, the span is [start, start+1).
func (t Tracker) Origin(start, end int) Origin {
	if end < start {
		return Origin{Buffer: t.Buffer, Start: start, End: start}
	}
	if start == end && t.isTrivia(start) {
		return Origin{Buffer: t.Buffer, Start: start, End: start + 1}
	}

	trimmedStart := start
	for trimmedStart <= end && t.isTrivia(trimmedStart) {
		trimmedStart++
	}
	trimmedEnd := end
	for trimmedEnd >= trimmedStart && t.isTrivia(trimmedEnd) {
		trimmedEnd--
	}
	if trimmedEnd < trimmedStart {
		// The whole range was trivia; fall back to the single-trivia-token rule
		// applied to the original start index.
		return Origin{Buffer: t.Buffer, Start: start, End: start + 1}
	}
	return Origin{Buffer: t.Buffer, Start: trimmedStart, End: trimmedEnd + 1}
}

func (t Tracker) isTrivia(i int) bool {
	if i < 0 || i >= len(t.Tokens) {
		return false
	}
	return t.Tokens[i].Kind.IsTrivia()
}
