package literal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Escape resolution. The lexer has already validated escape syntax, so an
// error out of these functions means a defect somewhere upstream.

// unescapeText resolves the escapes of a plain string body into Unicode
// text. Raw bodies must not be passed here.
func unescapeText(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		if body[i] != '\\' {
			b.WriteByte(body[i])
			i++
			continue
		}
		r, next, err := resolveEscape(body, i, false)
		if err != nil {
			return "", err
		}
		if r >= 0 {
			b.WriteRune(r)
		}
		i = next
	}
	return b.String(), nil
}

// unescapeBytes resolves the escapes of a byte-string body. \xNN covers the
// whole byte range; \u is not permitted.
func unescapeBytes(body string) ([]byte, error) {
	out := make([]byte, 0, len(body))
	i := 0
	for i < len(body) {
		if body[i] != '\\' {
			out = append(out, body[i])
			i++
			continue
		}
		r, next, err := resolveEscape(body, i, true)
		if err != nil {
			return nil, err
		}
		if r >= 0 {
			out = append(out, byte(r))
		}
		i = next
	}
	return out, nil
}

// unescapeCBytes resolves the escapes of a c-string body into bytes. Both
// \xNN (any byte) and \u{...} (UTF-8 encoded) are permitted; NUL is not.
func unescapeCBytes(body string) ([]byte, error) {
	out := make([]byte, 0, len(body)+1)
	i := 0
	for i < len(body) {
		if body[i] != '\\' {
			out = append(out, body[i])
			i++
			continue
		}
		if i+1 < len(body) && body[i+1] == 'u' {
			r, next, err := resolveEscape(body, i, false)
			if err != nil {
				return nil, err
			}
			if r >= 0 {
				out = utf8.AppendRune(out, r)
			}
			i = next
			continue
		}
		r, next, err := resolveEscape(body, i, true)
		if err != nil {
			return nil, err
		}
		if r >= 0 {
			out = append(out, byte(r))
		}
		i = next
	}
	for _, b := range out {
		if b == 0 {
			return nil, fmt.Errorf("interior NUL in c-string body %q", body)
		}
	}
	return out, nil
}

// resolveEscape resolves one escape starting at the backslash at body[i].
// It returns the resolved scalar (-1 for a line continuation, which
// produces nothing), and the index after the escape. byteMode widens \x to
// the full byte range and is used for the byte and c-string families.
func resolveEscape(body string, i int, byteMode bool) (rune, int, error) {
	if i+1 >= len(body) {
		return 0, 0, fmt.Errorf("dangling backslash in %q", body)
	}
	switch body[i+1] {
	case 'n':
		return '\n', i + 2, nil
	case 'r':
		return '\r', i + 2, nil
	case 't':
		return '\t', i + 2, nil
	case '0':
		return 0, i + 2, nil
	case '\\':
		return '\\', i + 2, nil
	case '\'':
		return '\'', i + 2, nil
	case '"':
		return '"', i + 2, nil
	case '\n':
		// Line continuation: the newline and all leading whitespace of the
		// next line are dropped.
		j := i + 2
		for j < len(body) && (body[j] == ' ' || body[j] == '\t' || body[j] == '\n' || body[j] == '\r') {
			j++
		}
		return -1, j, nil
	case 'x':
		if i+3 >= len(body) || !isHexDigit(body[i+2]) || !isHexDigit(body[i+3]) {
			return 0, 0, fmt.Errorf("malformed \\x escape in %q", body)
		}
		v := hexVal(body[i+2])<<4 | hexVal(body[i+3])
		if !byteMode && v > 0x7F {
			return 0, 0, fmt.Errorf("\\x escape out of ASCII range in %q", body)
		}
		return rune(v), i + 4, nil
	case 'u':
		j := i + 2
		if j >= len(body) || body[j] != '{' {
			return 0, 0, fmt.Errorf("malformed \\u escape in %q", body)
		}
		j++
		value := rune(0)
		digits := 0
		for j < len(body) && body[j] != '}' {
			if body[j] == '_' {
				j++
				continue
			}
			if !isHexDigit(body[j]) {
				return 0, 0, fmt.Errorf("malformed \\u escape in %q", body)
			}
			value = value<<4 | rune(hexVal(body[j]))
			digits++
			j++
		}
		if j >= len(body) || digits == 0 || digits > 6 || !utf8.ValidRune(value) {
			return 0, 0, fmt.Errorf("malformed \\u escape in %q", body)
		}
		return value, j + 1, nil
	default:
		return 0, 0, fmt.Errorf("unknown escape \\%c in %q", body[i+1], body)
	}
}

func hexVal(b byte) rune {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0')
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10
	default:
		return rune(b-'A') + 10
	}
}

// ===== Re-quoting for synthesized components =====

// QuoteText renders resolved text as a plain double-quoted literal.
func QuoteText(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		writeEscapedRune(&b, r)
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteChar renders a resolved scalar as a character literal.
func QuoteChar(r rune) string {
	var b strings.Builder
	b.WriteByte('\'')
	if r == '\'' {
		b.WriteString(`\'`)
	} else if r == '"' {
		b.WriteByte('"')
	} else {
		writeEscapedRune(&b, r)
	}
	b.WriteByte('\'')
	return b.String()
}

// QuoteBytes renders resolved bytes as a byte-string literal b"...".
func QuoteBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) + 3)
	b.WriteString(`b"`)
	writeEscapedBytes(&b, data)
	b.WriteByte('"')
	return b.String()
}

// QuoteCBytes renders resolved bytes as a c-string literal c"...".
func QuoteCBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) + 3)
	b.WriteString(`c"`)
	writeEscapedBytes(&b, data)
	b.WriteByte('"')
	return b.String()
}

func writeEscapedRune(b *strings.Builder, r rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case '"':
		b.WriteString(`\"`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	case 0:
		b.WriteString(`\0`)
	default:
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(b, `\u{%x}`, r)
			return
		}
		b.WriteRune(r)
	}
}

func writeEscapedBytes(b *strings.Builder, data []byte) {
	for _, c := range data {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if c < 0x20 || c >= 0x7F {
				fmt.Fprintf(b, `\x%02x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
}
