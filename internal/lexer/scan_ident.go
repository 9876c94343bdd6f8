package lexer

import (
	"github.com/swanandpatil9195/culit/internal/token"
)

// scanIdentOrBool scans an identifier. The only words with a kind of their
// own are true/false: boolean constants must never look like literals to the
// rewriter, and must never look like identifiers to anything printing them.
func (lx *Lexer) scanIdentOrBool() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if isIdentContinueByte(b) {
				lx.cursor.Bump()
				continue
			}
			if b >= utf8RuneSelf {
				r2, sz2 := lx.peekRune()
				if sz2 > 0 && isIdentContinueRune(r2) {
					lx.bumpRune()
					continue
				}
			}
			break
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}
	if text == "true" || text == "false" {
		return token.Token{Kind: token.BoolLit, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// lifetimeAhead reports whether the quote at the cursor starts a lifetime
// rather than a character literal: an identifier follows and no closing
// quote terminates it ('a' is a char, 'a is a lifetime, '_ included).
func (lx *Lexer) lifetimeAhead() bool {
	b := lx.cursor.PeekAt(1)
	if b != '_' && !isIdentStartByte(b) && b < utf8RuneSelf {
		return false
	}
	n := uint32(2)
	for {
		b = lx.cursor.PeekAt(n)
		if isIdentContinueByte(b) || b >= utf8RuneSelf {
			n++
			continue
		}
		break
	}
	return b != '\''
}

// scanLifetime scans 'ident as a single token.
func (lx *Lexer) scanLifetime() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Lifetime, Span: sp, Text: lx.text(sp)}
}
