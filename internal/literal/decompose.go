package literal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// ErrOverflow is returned when an integer literal exceeds the supported
// 128-bit unsigned decomposition range. Handlers are promised a value that
// fits u128; larger literals are rejected rather than truncated or promoted.
var ErrOverflow = errors.New("integer literal exceeds 128-bit unsigned range")

// uint128Max = 2^128 - 1.
var uint128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// IntValue normalizes an integer literal to its decimal text, independent
// of the written base: 0b1111 -> "15", 0xDEAD_BEEF -> "3735928559".
func (l Literal) IntValue() (string, error) {
	if l.Kind != Int {
		return "", fmt.Errorf("IntValue on %s literal", l.Kind.Name())
	}
	digits := strings.ReplaceAll(l.Body, "_", "")
	if l.Base != 10 {
		digits = digits[2:] // strip 0b/0o/0x
	}
	v, ok := new(big.Int).SetString(digits, l.Base)
	if !ok {
		return "", fmt.Errorf("malformed integer digits %q (base %d)", digits, l.Base)
	}
	if v.Cmp(uint128Max) > 0 {
		return "", ErrOverflow
	}
	return v.String(), nil
}

// FloatText normalizes a float literal to value-preserving base-10 text:
// grouping separators are stripped, fractional and exponent parts are kept
// exactly as written. 70.8e7 stays 70.8e7.
func (l Literal) FloatText() (string, error) {
	if l.Kind != Float {
		return "", fmt.Errorf("FloatText on %s literal", l.Kind.Name())
	}
	return strings.ReplaceAll(l.Body, "_", ""), nil
}

// StringValue fully resolves a string literal's escapes. Raw and escaped
// spellings of the same content produce identical values.
func (l Literal) StringValue() (string, error) {
	if l.Kind != Str {
		return "", fmt.Errorf("StringValue on %s literal", l.Kind.Name())
	}
	if l.Raw {
		return l.Body, nil
	}
	return unescapeText(l.Body)
}

// CharValue resolves a character literal to its scalar.
func (l Literal) CharValue() (rune, error) {
	if l.Kind != Char {
		return 0, fmt.Errorf("CharValue on %s literal", l.Kind.Name())
	}
	if len(l.Body) == 0 {
		return 0, fmt.Errorf("empty character literal")
	}
	if l.Body[0] == '\\' {
		r, next, err := resolveEscape(l.Body, 0, false)
		if err != nil {
			return 0, err
		}
		if r < 0 || next != len(l.Body) {
			return 0, fmt.Errorf("malformed character body %q", l.Body)
		}
		return r, nil
	}
	r, size := utf8.DecodeRuneInString(l.Body)
	if size != len(l.Body) {
		return 0, fmt.Errorf("character body %q holds more than one scalar", l.Body)
	}
	return r, nil
}

// ByteValue resolves a byte-character literal to its byte.
func (l Literal) ByteValue() (byte, error) {
	if l.Kind != ByteChar {
		return 0, fmt.Errorf("ByteValue on %s literal", l.Kind.Name())
	}
	if len(l.Body) == 0 {
		return 0, fmt.Errorf("empty byte-character literal")
	}
	if l.Body[0] == '\\' {
		r, next, err := resolveEscape(l.Body, 0, true)
		if err != nil {
			return 0, err
		}
		if r < 0 || r > 0xFF || next != len(l.Body) {
			return 0, fmt.Errorf("malformed byte-character body %q", l.Body)
		}
		return byte(r), nil
	}
	if len(l.Body) != 1 || l.Body[0] >= 0x80 {
		return 0, fmt.Errorf("byte-character body %q is not a single ASCII byte", l.Body)
	}
	return l.Body[0], nil
}

// ByteStringValue fully resolves a byte-string literal's escapes.
func (l Literal) ByteStringValue() ([]byte, error) {
	if l.Kind != ByteStr {
		return nil, fmt.Errorf("ByteStringValue on %s literal", l.Kind.Name())
	}
	if l.Raw {
		return []byte(l.Body), nil
	}
	return unescapeBytes(l.Body)
}

// CStringValue fully resolves a c-string literal's escapes. The resolved
// bytes never contain NUL; the implicit terminator is the handler's concern.
func (l Literal) CStringValue() ([]byte, error) {
	if l.Kind != CStr {
		return nil, fmt.Errorf("CStringValue on %s literal", l.Kind.Name())
	}
	if l.Raw {
		data := []byte(l.Body)
		for _, b := range data {
			if b == 0 {
				return nil, fmt.Errorf("interior NUL in c-string body %q", l.Body)
			}
		}
		return data, nil
	}
	return unescapeCBytes(l.Body)
}
