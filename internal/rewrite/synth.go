package rewrite

import (
	"github.com/swanandpatil9195/culit/internal/literal"
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

// Token synthesis. Every token produced here is stamped with the span of
// the literal it replaces, so downstream diagnostics and editor tooling
// point at the user's source. The literal's leading trivia moves onto the
// first synthesized token, which keeps the printed output byte-faithful
// around the replacement.

func synthTok(kind token.Kind, text string, sp source.Span) token.Token {
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// synthesizeCall builds the handler invocation
//
//	crate::custom_literal::<subtype>::<suffix>!(<component>)
//
// for one custom-suffixed literal.
func synthesizeCall(lit literal.Literal, sp source.Span, leading []token.Trivia, component token.Token) []token.Tree {
	crate := synthTok(token.Ident, "crate", sp)
	crate.Leading = leading

	return []token.Tree{
		token.Leaf{Tok: crate},
		token.Leaf{Tok: synthTok(token.ColonColon, "::", sp)},
		token.Leaf{Tok: synthTok(token.Ident, "custom_literal", sp)},
		token.Leaf{Tok: synthTok(token.ColonColon, "::", sp)},
		token.Leaf{Tok: synthTok(token.Ident, lit.Kind.Name(), sp)},
		token.Leaf{Tok: synthTok(token.ColonColon, "::", sp)},
		token.Leaf{Tok: synthTok(token.Ident, lit.Suffix, sp)},
		token.Leaf{Tok: synthTok(token.Bang, "!", sp)},
		&token.Group{
			Delim: token.Paren,
			Open:  synthTok(token.LParen, "(", sp),
			Close: synthTok(token.RParen, ")", sp),
			Items: []token.Tree{token.Leaf{Tok: component}},
		},
	}
}

// compileError builds the embedded diagnostic sequence
//
//	::core::compile_error!{"<message>"}
//
// The path is fully qualified so the expansion works in any namespace,
// including ones that shadow `core`.
func compileError(sp source.Span, leading []token.Trivia, msg string) []token.Tree {
	head := synthTok(token.ColonColon, "::", sp)
	head.Leading = leading

	return []token.Tree{
		token.Leaf{Tok: head},
		token.Leaf{Tok: synthTok(token.Ident, "core", sp)},
		token.Leaf{Tok: synthTok(token.ColonColon, "::", sp)},
		token.Leaf{Tok: synthTok(token.Ident, "compile_error", sp)},
		token.Leaf{Tok: synthTok(token.Bang, "!", sp)},
		&token.Group{
			Delim: token.Brace,
			Open:  synthTok(token.LBrace, "{", sp),
			Close: synthTok(token.RBrace, "}", sp),
			Items: []token.Tree{
				token.Leaf{Tok: synthTok(token.StringLit, literal.QuoteText(msg), sp)},
			},
		},
	}
}
