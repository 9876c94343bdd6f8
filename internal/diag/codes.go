package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for uncategorized failures.
	UnknownCode Code = 0

	// Lexical errors
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBadEscape                Code = 1006

	// Structural (token tree) errors
	SynUnclosedDelimiter   Code = 2001
	SynMismatchedDelimiter Code = 2002
	SynStrayCloseDelimiter Code = 2003

	// Expansion errors
	ExpUsage              Code = 3001
	ExpReservedSuffix     Code = 3002
	ExpCStringUnsupported Code = 3003
	ExpIntOverflow        Code = 3004

	// I/O errors
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexBadEscape:                "malformed escape sequence",
	SynUnclosedDelimiter:        "unclosed delimiter",
	SynMismatchedDelimiter:      "mismatched closing delimiter",
	SynStrayCloseDelimiter:      "closing delimiter without an opening one",
	ExpUsage:                    "culit attribute takes no arguments",
	ExpReservedSuffix:           "literal suffix is reserved by the host language",
	ExpCStringUnsupported:       "c-string literals require the c_strings capability",
	ExpIntOverflow:              "integer literal exceeds 128-bit unsigned range",
	IOLoadFileError:             "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
