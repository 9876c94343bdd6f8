// Package parser nests a flat token stream into token trees: delimited
// groups become token.Group nodes, everything else stays a leaf. This is
// the only structure the rewriter needs; no expression grammar is involved.
package parser

import (
	"fmt"

	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/lexer"
	"github.com/swanandpatil9195/culit/internal/token"
)

// Options configures tree building.
type Options struct {
	Reporter diag.Reporter
}

// Build drains the lexer and nests its tokens into trees. Unclosed groups
// are reported and closed at EOF with a zero-width synthetic delimiter so
// the result is always a well-formed forest.
func Build(lx *lexer.Lexer, opts Options) []token.Tree {
	b := &builder{lx: lx, opts: opts}
	trees, _ := b.stream(nil)
	return trees
}

// Nest builds trees from an already-collected token slice (EOF token
// optional). Used by tests and by tools that buffer tokens first.
func Nest(tokens []token.Token, opts Options) []token.Tree {
	b := &builder{buf: tokens, opts: opts}
	trees, _ := b.stream(nil)
	return trees
}

type builder struct {
	lx   *lexer.Lexer
	buf  []token.Token
	pos  int
	opts Options
}

func (b *builder) next() token.Token {
	if b.lx != nil {
		return b.lx.Next()
	}
	if b.pos >= len(b.buf) {
		return token.Token{Kind: token.EOF}
	}
	t := b.buf[b.pos]
	b.pos++
	return t
}

// stream consumes tokens until EOF or until the close delimiter of the
// enclosing group. open is nil at top level.
func (b *builder) stream(open *token.Token) ([]token.Tree, token.Token) {
	var out []token.Tree
	for {
		tok := b.next()
		switch {
		case tok.Kind == token.EOF:
			if open != nil {
				if b.opts.Reporter != nil {
					b.opts.Reporter.Report(diag.SynUnclosedDelimiter, diag.SevError, open.Span,
						fmt.Sprintf("unclosed %q", open.Text), nil)
				}
				// Synthesize a zero-width close so the group stays usable.
				delim, _ := token.DelimiterFor(open.Kind)
				return out, token.Token{
					Kind: delim.CloseKind(),
					Span: tok.Span,
					Text: "",
				}
			}
			// Keep EOF as a leaf: its leading trivia is the file's trailing
			// whitespace and comments, which the printer replays.
			out = append(out, token.Leaf{Tok: tok})
			return out, tok

		case tok.Kind.IsOpenDelim():
			delim, _ := token.DelimiterFor(tok.Kind)
			openTok := tok
			items, closeTok := b.stream(&openTok)
			out = append(out, &token.Group{
				Delim: delim,
				Open:  openTok,
				Close: closeTok,
				Items: items,
			})

		case tok.Kind.IsCloseDelim():
			if open == nil {
				if b.opts.Reporter != nil {
					b.opts.Reporter.Report(diag.SynStrayCloseDelimiter, diag.SevError, tok.Span,
						fmt.Sprintf("unexpected %q", tok.Text), nil)
				}
				// Drop the stray token and continue.
				continue
			}
			wantDelim, _ := token.DelimiterFor(open.Kind)
			if tok.Kind != wantDelim.CloseKind() {
				if b.opts.Reporter != nil {
					b.opts.Reporter.Report(diag.SynMismatchedDelimiter, diag.SevError, tok.Span,
						fmt.Sprintf("expected %q to close %q", wantDelim.CloseText(), open.Text),
						[]diag.Note{{Span: open.Span, Msg: "opened here"}})
				}
			}
			return out, tok

		default:
			out = append(out, token.Leaf{Tok: tok})
		}
	}
}
