package token

import (
	"github.com/swanandpatil9195/culit/internal/source"
)

// TriviaKind classifies non-semantic content attached to a token.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of newlines.
	TriviaNewline
	// TriviaLineComment is a // comment up to the end of line.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment, possibly nested.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is whitespace or a comment preceding a token. The printer replays
// trivia verbatim, so untouched source round-trips byte-identically.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
