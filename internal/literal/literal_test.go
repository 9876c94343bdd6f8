package literal_test

import (
	"testing"

	"github.com/swanandpatil9195/culit/internal/literal"
)

func mustParse(t *testing.T, text string) literal.Literal {
	t.Helper()
	lit, err := literal.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return lit
}

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		text string
		kind literal.Kind
	}{
		{"0", literal.Int},
		{"0b1010", literal.Int},
		{"0o777", literal.Int},
		{"0xFF", literal.Int},
		{"1.5", literal.Float},
		{"1e10", literal.Float},
		{"70.8e7meters", literal.Float},
		{`"s"`, literal.Str},
		{`r"s"`, literal.Str},
		{`r#"s"#`, literal.Str},
		{`'c'`, literal.Char},
		{`b'c'`, literal.ByteChar},
		{`b"s"`, literal.ByteStr},
		{`br#"s"#`, literal.ByteStr},
		{`c"s"`, literal.CStr},
		{`cr##"s"##`, literal.CStr},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lit := mustParse(t, tt.text)
			if lit.Kind != tt.kind {
				t.Errorf("kind: got %s, want %s", lit.Kind.Name(), tt.kind.Name())
			}
		})
	}
}

func TestKindNames(t *testing.T) {
	// These names are the handler namespace segments and must never change.
	want := map[literal.Kind]string{
		literal.Int:      "int",
		literal.Float:    "float",
		literal.Str:      "str",
		literal.Char:     "char",
		literal.ByteChar: "byte_char",
		literal.ByteStr:  "byte_str",
		literal.CStr:     "c_str",
	}
	for kind, name := range want {
		if got := kind.Name(); got != name {
			t.Errorf("Kind(%d).Name(): got %q, want %q", kind, got, name)
		}
	}
}

func TestSuffixSplit(t *testing.T) {
	tests := []struct {
		text   string
		body   string
		suffix string
	}{
		{"15km", "15", "km"},
		{"15", "15", ""},
		{"100u8", "100", "u8"},
		{"0xffem", "0xffe", "m"},
		{"10elephants", "10", "elephants"},
		{"70.8e7meters", "70.8e7", "meters"},
		{"1.5f32", "1.5", "f32"},
		{`"ride"km`, "ride", "km"},
		{`""`, "", ""},
		{`""x`, "", "x"},
		{`r#"raw"#suf`, "raw", "suf"},
		{`'x'deg`, "x", "deg"},
		{`b'a'x`, "a", "x"},
		{`b"data"blob`, "data", "blob"},
		{`b""`, "", ""},
		{`c"s"h`, "s", "h"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lit := mustParse(t, tt.text)
			if lit.Body != tt.body {
				t.Errorf("body: got %q, want %q", lit.Body, tt.body)
			}
			if lit.Suffix != tt.suffix {
				t.Errorf("suffix: got %q, want %q", lit.Suffix, tt.suffix)
			}
		})
	}
}

func TestBaseDetection(t *testing.T) {
	tests := []struct {
		text string
		base int
	}{
		{"42", 10},
		{"0b11", 2},
		{"0o7", 8},
		{"0x1F", 16},
	}
	for _, tt := range tests {
		lit := mustParse(t, tt.text)
		if lit.Base != tt.base {
			t.Errorf("%q: base got %d, want %d", tt.text, lit.Base, tt.base)
		}
	}
}

func TestRawFlag(t *testing.T) {
	if lit := mustParse(t, `r"x"`); !lit.Raw {
		t.Error(`r"x" must be raw`)
	}
	if lit := mustParse(t, `"x"`); lit.Raw {
		t.Error(`"x" must not be raw`)
	}
}

func TestNativeSuffixes(t *testing.T) {
	native := []struct {
		kind   literal.Kind
		suffix string
	}{
		{literal.Int, "i8"}, {literal.Int, "i16"}, {literal.Int, "i32"},
		{literal.Int, "i64"}, {literal.Int, "i128"}, {literal.Int, "isize"},
		{literal.Int, "u8"}, {literal.Int, "u16"}, {literal.Int, "u32"},
		{literal.Int, "u64"}, {literal.Int, "u128"}, {literal.Int, "usize"},
		{literal.Int, "f32"}, {literal.Int, "f64"},
		{literal.Float, "f32"}, {literal.Float, "f64"},
	}
	for _, tt := range native {
		if !literal.NativeSuffix(tt.kind, tt.suffix) {
			t.Errorf("%s %q must be native", tt.kind.Name(), tt.suffix)
		}
	}

	custom := []struct {
		kind   literal.Kind
		suffix string
	}{
		{literal.Int, "km"},
		{literal.Float, "i32"}, // int suffixes are not native on floats
		{literal.Str, "u8"},    // non-numeric kinds have no native suffixes
		{literal.Char, "f32"},
		{literal.ByteStr, "usize"},
	}
	for _, tt := range custom {
		if literal.NativeSuffix(tt.kind, tt.suffix) {
			t.Errorf("%s %q must not be native", tt.kind.Name(), tt.suffix)
		}
	}
}

func TestReservedSuffixes(t *testing.T) {
	reserved := []struct {
		kind   literal.Kind
		suffix string
	}{
		{literal.Int, "i256"}, {literal.Int, "u256"},
		{literal.Int, "f16"}, {literal.Int, "f128"},
		{literal.Float, "f16"}, {literal.Float, "f128"},
	}
	for _, tt := range reserved {
		if !literal.ReservedSuffix(tt.kind, tt.suffix) {
			t.Errorf("%s %q must be reserved", tt.kind.Name(), tt.suffix)
		}
	}

	// Reservation is numeric-only: the same spellings are ordinary custom
	// suffixes on other kinds.
	notReserved := []struct {
		kind   literal.Kind
		suffix string
	}{
		{literal.Str, "f16"},
		{literal.Char, "u256"},
		{literal.ByteStr, "i256"},
		{literal.CStr, "f128"},
		{literal.Int, "km"},
	}
	for _, tt := range notReserved {
		if literal.ReservedSuffix(tt.kind, tt.suffix) {
			t.Errorf("%s %q must not be reserved", tt.kind.Name(), tt.suffix)
		}
	}
}
