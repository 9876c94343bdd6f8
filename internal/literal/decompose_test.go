package literal_test

import (
	"strings"
	"testing"

	"github.com/swanandpatil9195/culit/internal/literal"
)

func TestIntValue(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"0km", "0"},
		{"15km", "15"},
		{"1_000_000m", "1000000"},
		{"0b1111v", "15"},
		{"0o17v", "15"},
		{"0xDEAD_BEEFv", "3735928559"},
		{"340282366920938463463374607431768211455big", "340282366920938463463374607431768211455"}, // u128 max
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lit := mustParse(t, tt.text)
			got, err := lit.IntValue()
			if err != nil {
				t.Fatalf("IntValue: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntValueOverflow(t *testing.T) {
	// u128 max + 1 must be rejected, not truncated or promoted.
	lit := mustParse(t, "340282366920938463463374607431768211456big")
	if _, err := lit.IntValue(); err != literal.ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestFloatText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"70.8e7meters", "70.8e7"},
		{"1.5km", "1.5"},
		{"3.14_15pi", "3.1415"},
		{"2.5E-3v", "2.5E-3"},
		{"1e10v", "1e10"},
	}
	for _, tt := range tests {
		lit := mustParse(t, tt.text)
		got, err := lit.FloatText()
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestStringValue(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`"plain"s`, "plain"},
		{`"tab\tend"s`, "tab\tend"},
		{`"quote\"q"s`, `quote"q`},
		{`"nul\0"s`, "nul\x00"},
		{`"\x41\u{1F600}"s`, "A\U0001F600"},
		{`r"raw \n stays"s`, `raw \n stays`},
		{`r#"hash "inner""#s`, `hash "inner"`},
		{"\"line\\\n   cont\"s", "linecont"},
	}
	for _, tt := range tests {
		lit := mustParse(t, tt.text)
		got, err := lit.StringValue()
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestEscapedAndRawSpellingsAgree(t *testing.T) {
	a := mustParse(t, `"a\\b"s`)
	b := mustParse(t, `r"a\b"s`)
	av, _ := a.StringValue()
	bv, _ := b.StringValue()
	if av != bv {
		t.Errorf("escaped %q != raw %q", av, bv)
	}
}

func TestCharValue(t *testing.T) {
	tests := []struct {
		text string
		want rune
	}{
		{`'x'deg`, 'x'},
		{`'\n'deg`, '\n'},
		{`'\''deg`, '\''},
		{`'\u{1F600}'deg`, '\U0001F600'},
		{`'é'deg`, 'é'},
	}
	for _, tt := range tests {
		lit := mustParse(t, tt.text)
		got, err := lit.CharValue()
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestByteValue(t *testing.T) {
	tests := []struct {
		text string
		want byte
	}{
		{`b'a'v`, 'a'},
		{`b'\xFF'v`, 0xFF},
		{`b'\0'v`, 0},
		{`b'\t'v`, '\t'},
	}
	for _, tt := range tests {
		lit := mustParse(t, tt.text)
		got, err := lit.ByteValue()
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestByteStringValue(t *testing.T) {
	lit := mustParse(t, `b"ab\xFF\0"v`)
	got, err := lit.ByteStringValue()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'a', 'b', 0xFF, 0}
	if string(got) != string(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCStringValue(t *testing.T) {
	lit := mustParse(t, `c"ab\xC3\xA9"v`)
	got, err := lit.CStringValue()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ab\xc3\xa9" {
		t.Errorf("got %q", got)
	}

	// Interior NUL is impossible to smuggle through any spelling.
	for _, text := range []string{`c"a\0b"v`, `c"a\x00b"v`, `c"a\u{0}b"v`} {
		lit := mustParse(t, text)
		if _, err := lit.CStringValue(); err == nil {
			t.Errorf("%q: expected interior NUL error", text)
		}
	}
}

func TestKindMismatchRejected(t *testing.T) {
	lit := mustParse(t, `"str"s`)
	if _, err := lit.IntValue(); err == nil {
		t.Error("IntValue on a string literal must fail")
	}
	if _, err := lit.ByteValue(); err == nil {
		t.Error("ByteValue on a string literal must fail")
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	values := []string{"plain", "with \"quotes\"", "tab\t", "nl\n", "unicode é\U0001F600"}
	for _, v := range values {
		quoted := literal.QuoteText(v)
		relit, err := literal.Parse(quoted)
		if err != nil {
			t.Fatalf("re-parsing %q: %v", quoted, err)
		}
		back, err := relit.StringValue()
		if err != nil {
			t.Fatalf("resolving %q: %v", quoted, err)
		}
		if back != v {
			t.Errorf("round trip: %q -> %q -> %q", v, quoted, back)
		}
	}
}

func TestQuoteBytesEscapesNonASCII(t *testing.T) {
	quoted := literal.QuoteBytes([]byte{'a', 0xFF, 0})
	if !strings.Contains(quoted, `\xff`) || !strings.Contains(quoted, `\0`) {
		t.Errorf("QuoteBytes output %q lacks expected escapes", quoted)
	}
	if !strings.HasPrefix(quoted, `b"`) {
		t.Errorf("QuoteBytes output %q lacks b prefix", quoted)
	}
}
