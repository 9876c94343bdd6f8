package lexer

import (
	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/token"
)

// Numbers: 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, 1.0e+10, with '_'
// separators and an optional glued suffix identifier (10km, 1u8, 2.5feet).
// Bad forms are reported and come back as Invalid tokens.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	kind := token.IntLit

	// Leading dot means the ".digits" form.
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump() // '.'
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		goto emitWithMaybeExp
	}

	// Leading zero with a base prefix?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			// Only lowercase 0b is a binary prefix in the host grammar, but
			// accepting 0B here gives a better diagnostic downstream.
			lx.cursor.Bump()
			hasDigit := false
			for {
				b := lx.cursor.Peek()
				if b == '0' || b == '1' {
					hasDigit = true
					lx.cursor.Bump()
				} else if b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			if !hasDigit {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "binary literal has no digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			goto emit
		case 'o', 'O':
			lx.cursor.Bump()
			hasDigit := false
			for {
				b := lx.cursor.Peek()
				if b >= '0' && b <= '7' {
					hasDigit = true
					lx.cursor.Bump()
				} else if b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			if !hasDigit {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "octal literal has no digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			goto emit
		case 'x', 'X':
			lx.cursor.Bump()
			hasDigit := false
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				if lx.cursor.Peek() != '_' {
					hasDigit = true
				}
				lx.cursor.Bump()
			}
			if !hasDigit {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "hex literal has no digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			goto emit
		default:
			// Plain "0", possibly with a decimal fraction below.
		}
	}

	// Decimal integer part.
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// Fractional part. A dot followed by an identifier is a method call
	// (1.km()), not a fraction; a dot followed by a dot is a range.
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) {
			lx.cursor.Bump() // '.'
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		} else if next != '.' && !isIdentStartByte(next) && next < utf8RuneSelf {
			// Trailing dot without fraction: "1." is a float.
			lx.cursor.Bump()
			kind = token.FloatLit
		}
	}

emitWithMaybeExp:
	// Exponent.
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		expMark := lx.cursor.Mark()
		lx.cursor.Bump() // e/E
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// Not an exponent after all: "10elephants" is 10 with a suffix.
			lx.cursor.Reset(expMark)
		} else {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

emit:
	lx.eatSuffix()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
