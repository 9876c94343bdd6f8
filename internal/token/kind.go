package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a 'name lifetime token. Lifetimes share the quote
	// with character literals but are never literals themselves.
	Lifetime
	// BoolLit represents the boolean constants true/false. Booleans are a
	// distinct kind so they never enter literal handling.
	BoolLit

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token, including raw strings.
	StringLit
	// CharLit represents a character literal token.
	CharLit
	// ByteCharLit represents a byte-character literal token (b'a').
	ByteCharLit
	// ByteStringLit represents a byte-string literal token (b"..").
	ByteStringLit
	// CStringLit represents a c-string literal token (c"..").
	CStringLit

	// Pound represents the pound token.
	Pound // #
	// Bang represents the bang token.
	Bang // !
	// ColonColon represents the path separator token.
	ColonColon // ::
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the dot dot token.
	DotDot // ..
	// DotDotEq represents the dot dot eq token.
	DotDotEq // ..=
	// DotDotDot represents the dot dot dot token.
	DotDotDot // ...
	// Arrow represents the arrow token.
	Arrow // ->
	// FatArrow represents the fat arrow token.
	FatArrow // =>
	// Assign represents the assign token.
	Assign // =
	// EqEq represents the eq eq token.
	EqEq // ==
	// BangEq represents the bang eq token.
	BangEq // !=
	// Lt represents the lt token.
	Lt // <
	// LtEq represents the lt eq token.
	LtEq // <=
	// Gt represents the gt token.
	Gt // >
	// GtEq represents the gt eq token.
	GtEq // >=
	// Shl represents the shl token.
	Shl // <<
	// Shr represents the shr token.
	Shr // >>
	// Plus represents the plus token.
	Plus // +
	// Minus represents the minus token.
	Minus // -
	// Star represents the star token.
	Star // *
	// Slash represents the slash token.
	Slash // /
	// Percent represents the percent token.
	Percent // %
	// Amp represents the amp token.
	Amp // &
	// AndAnd represents the and and token.
	AndAnd // &&
	// Pipe represents the pipe token.
	Pipe // |
	// OrOr represents the or or token.
	OrOr // ||
	// Caret represents the caret token.
	Caret // ^
	// Tilde represents the tilde token.
	Tilde // ~
	// Question represents the question token.
	Question // ?
	// At represents the at token.
	At // @
	// Dollar represents the dollar token.
	Dollar // $
	// Underscore represents the lone underscore token.
	Underscore // _

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = map[Kind]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Lifetime:      "Lifetime",
	BoolLit:       "BoolLit",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	StringLit:     "StringLit",
	CharLit:       "CharLit",
	ByteCharLit:   "ByteCharLit",
	ByteStringLit: "ByteStringLit",
	CStringLit:    "CStringLit",
	Pound:         "Pound",
	Bang:          "Bang",
	ColonColon:    "ColonColon",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Dot:           "Dot",
	DotDot:        "DotDot",
	DotDotEq:      "DotDotEq",
	DotDotDot:     "DotDotDot",
	Arrow:         "Arrow",
	FatArrow:      "FatArrow",
	Assign:        "Assign",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shl:           "Shl",
	Shr:           "Shr",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Amp:           "Amp",
	AndAnd:        "AndAnd",
	Pipe:          "Pipe",
	OrOr:          "OrOr",
	Caret:         "Caret",
	Tilde:         "Tilde",
	Question:      "Question",
	At:            "At",
	Dollar:        "Dollar",
	Underscore:    "Underscore",
	LParen:        "LParen",
	RParen:        "RParen",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsLiteral reports whether the kind is one of the seven literal subtypes
// handled by the rewriter. BoolLit is deliberately excluded.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, CharLit, ByteCharLit, ByteStringLit, CStringLit:
		return true
	default:
		return false
	}
}

// IsOpenDelim reports whether the kind opens a delimited group.
func (k Kind) IsOpenDelim() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsCloseDelim reports whether the kind closes a delimited group.
func (k Kind) IsCloseDelim() bool {
	return k == RParen || k == RBracket || k == RBrace
}
