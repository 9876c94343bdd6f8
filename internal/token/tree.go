package token

import (
	"github.com/swanandpatil9195/culit/internal/source"
)

// Delimiter identifies the bracket pair of a Group.
type Delimiter uint8

const (
	// Paren is the ( ) delimiter pair.
	Paren Delimiter = iota
	// Bracket is the [ ] delimiter pair.
	Bracket
	// Brace is the { } delimiter pair.
	Brace
)

func (d Delimiter) String() string {
	switch d {
	case Paren:
		return "Paren"
	case Bracket:
		return "Bracket"
	case Brace:
		return "Brace"
	}
	return "Unknown"
}

// OpenKind returns the token kind that opens the delimiter pair.
func (d Delimiter) OpenKind() Kind {
	switch d {
	case Bracket:
		return LBracket
	case Brace:
		return LBrace
	default:
		return LParen
	}
}

// CloseKind returns the token kind that closes the delimiter pair.
func (d Delimiter) CloseKind() Kind {
	switch d {
	case Bracket:
		return RBracket
	case Brace:
		return RBrace
	default:
		return RParen
	}
}

// OpenText returns the source text of the opening delimiter.
func (d Delimiter) OpenText() string {
	switch d {
	case Bracket:
		return "["
	case Brace:
		return "{"
	default:
		return "("
	}
}

// CloseText returns the source text of the closing delimiter.
func (d Delimiter) CloseText() string {
	switch d {
	case Bracket:
		return "]"
	case Brace:
		return "}"
	default:
		return ")"
	}
}

// DelimiterFor maps an opening delimiter kind to its Delimiter, reporting
// false for non-delimiter kinds.
func DelimiterFor(k Kind) (Delimiter, bool) {
	switch k {
	case LParen:
		return Paren, true
	case LBracket:
		return Bracket, true
	case LBrace:
		return Brace, true
	default:
		return 0, false
	}
}

// Tree is one node of the nested token stream: either a Leaf holding a
// single token or a *Group holding a delimited sub-stream.
type Tree interface {
	Span() source.Span
	tree()
}

// Leaf wraps a single non-delimiter token.
type Leaf struct {
	Tok Token
}

func (l Leaf) Span() source.Span { return l.Tok.Span }
func (Leaf) tree()               {}

// Group is a delimited sub-stream. Open and Close keep the original
// delimiter tokens so trivia and exact spans survive re-emission.
type Group struct {
	Delim Delimiter
	Open  Token
	Close Token
	Items []Tree
}

func (g *Group) Span() source.Span { return g.Open.Span.Cover(g.Close.Span) }
func (*Group) tree()               {}
