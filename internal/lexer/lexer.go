package lexer

import (
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

// Lexer produces tokens of the Rust-like host grammar. Literal suffixes are
// kept glued to the literal token text; the literal package splits them off.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '_':
		// A lone underscore is its own token; anything longer is an ident.
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			tok = lx.scanIdentOrBool()
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	case ch == 'b' || ch == 'c' || ch == 'r':
		// Possible literal prefix: b'..', b".."., br".."., c".."., cr".."., r"..".
		if lit, ok := lx.scanPrefixedLiteral(); ok {
			tok = lit
		} else {
			tok = lx.scanIdentOrBool()
		}

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrBool()

	case ch >= utf8RuneSelf:
		// Possible Unicode identifier.
		tok = lx.scanIdentOrBool()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString(token.StringLit, lx.cursor.Mark())

	case ch == '\'':
		if lx.lifetimeAhead() {
			tok = lx.scanLifetime()
		} else {
			tok = lx.scanChar(token.CharLit, lx.cursor.Mark())
		}

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer into a slice, EOF included.
func (lx *Lexer) Tokens() []token.Token {
	out := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// scanPrefixedLiteral recognizes the b/r/c literal prefixes. The cursor is
// left untouched when the lookahead is not a literal.
func (lx *Lexer) scanPrefixedLiteral() (token.Token, bool) {
	start := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case 'r':
		// r"..." or r#"..."#
		if lx.rawQuoteFollows(1) {
			lx.cursor.Bump() // 'r'
			return lx.scanRawString(token.StringLit, start), true
		}
	case 'b':
		switch lx.cursor.PeekAt(1) {
		case '\'':
			lx.cursor.Bump() // 'b'
			return lx.scanChar(token.ByteCharLit, start), true
		case '"':
			lx.cursor.Bump() // 'b'
			return lx.scanString(token.ByteStringLit, start), true
		case 'r':
			if lx.rawQuoteFollows(2) {
				lx.cursor.Bump() // 'b'
				lx.cursor.Bump() // 'r'
				return lx.scanRawString(token.ByteStringLit, start), true
			}
		}
	case 'c':
		switch lx.cursor.PeekAt(1) {
		case '"':
			lx.cursor.Bump() // 'c'
			return lx.scanString(token.CStringLit, start), true
		case 'r':
			if lx.rawQuoteFollows(2) {
				lx.cursor.Bump() // 'c'
				lx.cursor.Bump() // 'r'
				return lx.scanRawString(token.CStringLit, start), true
			}
		}
	}
	return token.Token{}, false
}

// rawQuoteFollows reports whether the bytes at offset n form zero or more
// '#' followed by '"' (the tail of a raw-string opener).
func (lx *Lexer) rawQuoteFollows(n uint32) bool {
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	return lx.cursor.PeekAt(n) == '"'
}

// eatSuffix consumes a trailing identifier glued to a literal.
func (lx *Lexer) eatSuffix() {
	b := lx.cursor.Peek()
	if b >= utf8RuneSelf {
		r, _ := lx.peekRune()
		if !isIdentStartRune(r) {
			return
		}
	} else if !isIdentStartByte(b) {
		return
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
