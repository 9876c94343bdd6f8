package lexer

import (
	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/token"
)

// scanString scans "..." bodies for plain, byte and c strings. The cursor
// sits on the opening quote; start marks the literal prefix, so the token
// text includes it. Escapes are validated here so that downstream
// decomposition is total.
func (lx *Lexer) scanString(kind token.Kind, start Mark) token.Token {
	lx.cursor.Bump() // opening '"'
	bad := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			lx.eatSuffix()
			sp := lx.cursor.SpanFrom(start)
			if bad {
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			if !lx.scanEscape(kind) {
				bad = true
			}
			continue
		}
		if b >= utf8RuneSelf && kind == token.ByteStringLit {
			sp := lx.cursor.SpanFrom(lx.cursor.Mark())
			lx.errLex(diag.LexBadEscape, sp, "non-ASCII byte in byte string literal")
			bad = true
			lx.bumpRune()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF without a closing quote.
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanRawString scans r"..." / r#"..."# bodies (also the br/cr variants).
// The cursor sits on the first '#' or the opening quote; raw bodies have no
// escape processing at all.
func (lx *Lexer) scanRawString(kind token.Kind, start Mark) token.Token {
	hashes := 0
	for lx.cursor.Peek() == '#' {
		lx.cursor.Bump()
		hashes++
	}
	lx.cursor.Bump() // opening '"', guaranteed by rawQuoteFollows

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() != '"' {
			lx.cursor.Bump()
			continue
		}
		closeMark := lx.cursor.Mark()
		lx.cursor.Bump() // '"'
		matched := true
		for i := 0; i < hashes; i++ {
			if !lx.cursor.Eat('#') {
				matched = false
				break
			}
		}
		if matched {
			lx.eatSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Reset(closeMark)
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanChar scans '...' bodies for character and byte-character literals.
func (lx *Lexer) scanChar(kind token.Kind, start Mark) token.Token {
	lx.cursor.Bump() // opening '\''
	bad := false

	switch b := lx.cursor.Peek(); {
	case b == '\'' || b == '\n' || lx.cursor.EOF():
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "empty or unterminated character literal")
		if b == '\'' {
			lx.cursor.Bump()
		}
		return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start), Text: lx.text(lx.cursor.SpanFrom(start))}
	case b == '\\':
		if !lx.scanEscape(kind) {
			bad = true
		}
	case b >= utf8RuneSelf:
		if kind == token.ByteCharLit {
			sp := lx.cursor.SpanFrom(lx.cursor.Mark())
			lx.errLex(diag.LexBadEscape, sp, "non-ASCII byte in byte character literal")
			bad = true
		}
		lx.bumpRune()
	default:
		lx.cursor.Bump()
	}

	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	lx.eatSuffix()
	sp := lx.cursor.SpanFrom(start)
	if bad {
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanEscape validates one escape sequence starting at '\'. Byte-oriented
// literals may not use \u, c strings may not encode NUL. Reports and returns
// false on malformed escapes; the cursor always makes progress.
func (lx *Lexer) scanEscape(kind token.Kind) bool {
	escMark := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	if lx.cursor.EOF() {
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "escape at end of file")
		return false
	}

	byteMode := kind == token.ByteCharLit || kind == token.ByteStringLit
	cMode := kind == token.CStringLit

	b := lx.cursor.Bump()
	switch b {
	case 'n', 'r', 't', '\\', '\'', '"':
		return true
	case '\n':
		// Line continuation inside string bodies.
		return true
	case '0':
		if cMode {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "NUL escape in c-string literal")
			return false
		}
		return true
	case 'x':
		hi := lx.cursor.Peek()
		if !isHex(hi) {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "expected hex digit after \\x")
			return false
		}
		lx.cursor.Bump()
		lo := lx.cursor.Peek()
		if !isHex(lo) {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "expected two hex digits after \\x")
			return false
		}
		lx.cursor.Bump()
		v := hexVal(hi)<<4 | hexVal(lo)
		// Byte and c-string families take the full byte range; plain text
		// escapes above ASCII must use \u{...}.
		if !byteMode && !cMode && v > 0x7F {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "\\x escape out of ASCII range, use \\u{...}")
			return false
		}
		if cMode && v == 0 {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "NUL escape in c-string literal")
			return false
		}
		return true
	case 'u':
		if byteMode {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "\\u escape in byte literal")
			return false
		}
		if !lx.cursor.Eat('{') {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "expected '{' after \\u")
			return false
		}
		digits := 0
		value := uint32(0)
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			if lx.cursor.Peek() != '_' {
				value = value<<4 | uint32(hexVal(lx.cursor.Peek()))
				digits++
			}
			lx.cursor.Bump()
		}
		if !lx.cursor.Eat('}') || digits == 0 || digits > 6 {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "malformed \\u{...} escape")
			return false
		}
		if value > 0x10FFFF || (value >= 0xD800 && value <= 0xDFFF) {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "\\u escape is not a valid scalar value")
			return false
		}
		if cMode && value == 0 {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "NUL escape in c-string literal")
			return false
		}
		return true
	default:
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escMark), "unknown escape sequence")
		return false
	}
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
