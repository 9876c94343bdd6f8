// Package literal classifies literal token text into (subtype, suffix, raw
// payload) and decomposes payloads into the canonical components handed to
// suffix handlers. Classification mirrors the host grammar exactly: numeric
// bases, fractional/exponent parts, escape processing and raw-string
// semantics.
//
// Parsing here is total for input produced by the lexer. A parse error on
// text that came out of the lexer is an internal defect, not a user error,
// and callers treat it as fatal.
package literal

import (
	"fmt"
	"strings"
)

// Kind is the literal subtype. The seven values form a closed set; the
// handler namespace has one sub-module per kind.
type Kind uint8

const (
	// Int is an integer literal in any base.
	Int Kind = iota
	// Float is a literal with a fractional or exponent part.
	Float
	// Str is a plain or raw string literal.
	Str
	// Char is a character literal.
	Char
	// ByteChar is a byte-character literal (b'a').
	ByteChar
	// ByteStr is a plain or raw byte-string literal (b"..").
	ByteStr
	// CStr is a plain or raw c-string literal (c"..").
	CStr
)

// Name returns the handler namespace segment for the kind. Renaming any of
// these is a breaking change for every registered handler module.
func (k Kind) Name() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	case Char:
		return "char"
	case ByteChar:
		return "byte_char"
	case ByteStr:
		return "byte_str"
	case CStr:
		return "c_str"
	}
	return "unknown"
}

// Literal is the classified form of a literal token.
type Literal struct {
	Kind   Kind
	Text   string // full literal text, suffix included
	Body   string // raw payload: quoted content or numeric text without suffix
	Suffix string // trailing identifier, "" when absent
	Base   int    // Int only: 2, 8, 10 or 16
	Raw    bool   // string family only: raw spelling, no escape processing
}

// Parse classifies literal text. The text must be a complete literal as
// produced by the lexer, with any suffix still glued on.
func Parse(text string) (Literal, error) {
	if text == "" {
		return Literal{}, fmt.Errorf("empty literal text")
	}

	switch {
	case text[0] == '"':
		return parseQuoted(text, Str, 0, false)
	case text[0] == '\'':
		return parseChar(text, Char, 0)
	case strings.HasPrefix(text, "r\"") || strings.HasPrefix(text, "r#"):
		return parseRaw(text, Str, 1)
	case strings.HasPrefix(text, "b'"):
		return parseChar(text, ByteChar, 1)
	case strings.HasPrefix(text, "b\""):
		return parseQuoted(text, ByteStr, 1, false)
	case strings.HasPrefix(text, "br\"") || strings.HasPrefix(text, "br#"):
		return parseRaw(text, ByteStr, 2)
	case strings.HasPrefix(text, "c\""):
		return parseQuoted(text, CStr, 1, false)
	case strings.HasPrefix(text, "cr\"") || strings.HasPrefix(text, "cr#"):
		return parseRaw(text, CStr, 2)
	case text[0] >= '0' && text[0] <= '9' || text[0] == '.':
		return parseNumber(text)
	}
	return Literal{}, fmt.Errorf("unrecognized literal text %q", text)
}

// parseQuoted handles "...", b"..." and c"..." with escape processing. open
// is the index of the opening quote.
func parseQuoted(text string, kind Kind, open int, raw bool) (Literal, error) {
	i := open + 1
	for i < len(text) {
		switch text[i] {
		case '"':
			suffix := text[i+1:]
			if err := checkSuffix(suffix); err != nil {
				return Literal{}, err
			}
			return Literal{
				Kind:   kind,
				Text:   text,
				Body:   text[open+1 : i],
				Suffix: suffix,
				Raw:    raw,
			}, nil
		case '\\':
			// Skip the escape introducer and the next byte; longer escapes
			// (\xNN, \u{...}) contain no quotes, so this is enough to find
			// the terminator.
			i += 2
		default:
			i++
		}
	}
	return Literal{}, fmt.Errorf("unterminated string in literal %q", text)
}

// parseRaw handles r"...", r#"..."# and the br/cr variants. hashStart is the
// index of the first '#' or the opening quote.
func parseRaw(text string, kind Kind, hashStart int) (Literal, error) {
	hashes := 0
	i := hashStart
	for i < len(text) && text[i] == '#' {
		hashes++
		i++
	}
	if i >= len(text) || text[i] != '"' {
		return Literal{}, fmt.Errorf("malformed raw string opener in %q", text)
	}
	open := i
	terminator := `"` + strings.Repeat("#", hashes)
	end := strings.LastIndex(text, terminator)
	if end <= open {
		return Literal{}, fmt.Errorf("unterminated raw string in literal %q", text)
	}
	suffix := text[end+len(terminator):]
	if err := checkSuffix(suffix); err != nil {
		return Literal{}, err
	}
	return Literal{
		Kind:   kind,
		Text:   text,
		Body:   text[open+1 : end],
		Suffix: suffix,
		Raw:    true,
	}, nil
}

// parseChar handles '...' and b'...'. open is the index of the opening quote.
func parseChar(text string, kind Kind, open int) (Literal, error) {
	i := open + 1
	for i < len(text) {
		switch text[i] {
		case '\'':
			suffix := text[i+1:]
			if err := checkSuffix(suffix); err != nil {
				return Literal{}, err
			}
			return Literal{
				Kind:   kind,
				Text:   text,
				Body:   text[open+1 : i],
				Suffix: suffix,
			}, nil
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return Literal{}, fmt.Errorf("unterminated character in literal %q", text)
}

func parseNumber(text string) (Literal, error) {
	base := 10
	i := 0
	isFloat := false

	digits := isDecDigit
	if strings.HasPrefix(text, "0b") {
		base, i, digits = 2, 2, isBinDigit
	} else if strings.HasPrefix(text, "0o") {
		base, i, digits = 8, 2, isOctDigit
	} else if strings.HasPrefix(text, "0x") {
		base, i, digits = 16, 2, isHexDigit
	}

	hasDigit := false
	for i < len(text) && (digits(text[i]) || text[i] == '_') {
		if text[i] != '_' {
			hasDigit = true
		}
		i++
	}
	if !hasDigit && base != 10 {
		return Literal{}, fmt.Errorf("numeric literal %q has no digits", text)
	}

	if base == 10 {
		// Fractional part: a dot followed by a decimal digit.
		if i+1 < len(text) && text[i] == '.' && isDecDigit(text[i+1]) {
			isFloat = true
			i++
			for i < len(text) && (isDecDigit(text[i]) || text[i] == '_') {
				i++
			}
		} else if i < len(text) && text[i] == '.' && i+1 == len(text) {
			// Trailing "1." form.
			isFloat = true
			i++
		}
		// Exponent: e/E with at least one digit after the optional sign;
		// otherwise the e starts the suffix (10elephants).
		if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
			j := i + 1
			if j < len(text) && (text[j] == '+' || text[j] == '-') {
				j++
			}
			if j < len(text) && isDecDigit(text[j]) {
				isFloat = true
				i = j
				for i < len(text) && (isDecDigit(text[i]) || text[i] == '_') {
					i++
				}
			}
		}
	}

	body, suffix := text[:i], text[i:]
	if err := checkSuffix(suffix); err != nil {
		return Literal{}, err
	}
	kind := Int
	if isFloat {
		kind = Float
		base = 10
	}
	return Literal{
		Kind:   kind,
		Text:   text,
		Body:   body,
		Suffix: suffix,
		Base:   base,
	}, nil
}

// checkSuffix verifies the trailing text is a well-formed identifier (or
// empty). Anything else means the lexer handed over garbage.
func checkSuffix(s string) error {
	if s == "" {
		return nil
	}
	if s[0] >= '0' && s[0] <= '9' {
		return fmt.Errorf("literal suffix %q starts with a digit", s)
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 {
			// Unicode suffixes pass through; the lexer already validated
			// identifier structure.
			continue
		}
		if b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' {
			continue
		}
		return fmt.Errorf("literal suffix %q is not an identifier", s)
	}
	return nil
}

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }
func isBinDigit(b byte) bool { return b == '0' || b == '1' }
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }
func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}
