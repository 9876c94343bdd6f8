// Package format renders token trees back to source text. Each token is
// emitted as its leading trivia followed by its text, so a stream that was
// never rewritten prints byte-identically to the file it was lexed from.
// Synthesized tokens carry no trivia and concatenate directly, which is
// exactly the compact call shape the expansion wants.
package format

import (
	"strings"

	"github.com/swanandpatil9195/culit/internal/token"
)

// Print renders a token-tree forest to source text.
func Print(trees []token.Tree) string {
	var b strings.Builder
	printTrees(&b, trees)
	return b.String()
}

func printTrees(b *strings.Builder, trees []token.Tree) {
	for _, tree := range trees {
		switch t := tree.(type) {
		case token.Leaf:
			printToken(b, t.Tok)
		case *token.Group:
			printToken(b, t.Open)
			printTrees(b, t.Items)
			printToken(b, t.Close)
		}
	}
}

func printToken(b *strings.Builder, tok token.Token) {
	for _, tr := range tok.Leading {
		b.WriteString(tr.Text)
	}
	// EOF carries the file's trailing trivia and no text of its own; a
	// synthesized close delimiter from error recovery has empty text too.
	b.WriteString(tok.Text)
}
