package rewrite_test

import (
	"strings"
	"testing"

	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/format"
	"github.com/swanandpatil9195/culit/internal/lexer"
	"github.com/swanandpatil9195/culit/internal/parser"
	"github.com/swanandpatil9195/culit/internal/rewrite"
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

func expandSource(t *testing.T, input string, opts rewrite.Options) (string, *diag.Bag, []token.Tree) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	opts.Reporter = reporter

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	trees := parser.Build(lx, parser.Options{Reporter: reporter})

	out, err := rewrite.New(opts).Rewrite(trees)
	if err != nil {
		t.Fatalf("Rewrite(%q): %v", input, err)
	}
	return format.Print(out), bag, out
}

// ====== Pass-through ======

func TestPassThroughIsByteIdentical(t *testing.T) {
	inputs := []string{
		"let x = 15;\n",
		"let y = 1.5f64;\n",
		"let z = 100u8 + 0xFFi32;\n",
		"let s = \"plain\"; let c = 'x';\n",
		"let e = \"\"; let be = b\"\";\n",
		"let t = true; let f = false;\n",
		"fn f() { /* comment */ return 0b1010; }\n",
		"fn first<'a>(v: &'a [u32]) -> &'a u32 { &v[0] }\n",
	}
	for _, input := range inputs {
		got, bag, _ := expandSource(t, input, rewrite.Options{})
		if got != input {
			t.Errorf("pass-through changed the source\ninput:  %q\noutput: %q", input, got)
		}
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics: %d", input, bag.Len())
		}
	}
}

// ====== Call synthesis ======

func TestCustomSuffixBecomesHandlerCall(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"15km", `crate::custom_literal::int::km!(15)`},
		{"0b1111v", `crate::custom_literal::int::v!(15)`},
		{"1_000m", `crate::custom_literal::int::m!(1000)`},
		{"70.8e7meters", `crate::custom_literal::float::meters!(70.8e7)`},
		{`"ride"km`, `crate::custom_literal::str::km!("ride")`},
		{`""empty`, `crate::custom_literal::str::empty!("")`},
		{`r"raw"km`, `crate::custom_literal::str::km!("raw")`},
		{`'x'deg`, `crate::custom_literal::char::deg!('x')`},
		{`b'a'v`, `crate::custom_literal::byte_char::v!(97)`},
		{`b"data"blob`, `crate::custom_literal::byte_str::blob!(b"data")`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, bag, _ := expandSource(t, tt.input, rewrite.Options{})
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if bag.Len() != 0 {
				t.Errorf("unexpected diagnostics: %d", bag.Len())
			}
		})
	}
}

func TestSurroundingTextPreserved(t *testing.T) {
	got, _, _ := expandSource(t, "let x = 15km;\n", rewrite.Options{})
	want := "let x = crate::custom_literal::int::km!(15);\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGroupRecursion(t *testing.T) {
	got, _, _ := expandSource(t, "f((10km))", rewrite.Options{})
	want := "f((crate::custom_literal::int::km!(10)))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEscapedAndRawSpellingsExpandIdentically(t *testing.T) {
	a, _, _ := expandSource(t, `"a\\b"s`, rewrite.Options{})
	b, _, _ := expandSource(t, `r"a\b"s`, rewrite.Options{})
	if a != b {
		t.Errorf("escaped %q != raw %q", a, b)
	}
}

// ====== Span stamping ======

func TestSynthesizedTokensCarryLiteralSpan(t *testing.T) {
	input := "let x = 15km;"
	litStart := uint32(strings.Index(input, "15km"))
	litEnd := litStart + 4

	_, _, trees := expandSource(t, input, rewrite.Options{})

	var check func([]token.Tree)
	synth := 0
	check = func(ts []token.Tree) {
		for _, tree := range ts {
			switch tr := tree.(type) {
			case token.Leaf:
				if tr.Tok.Kind == token.Ident && tr.Tok.Text == "custom_literal" ||
					tr.Tok.Kind == token.Bang {
					synth++
					if tr.Tok.Span.Start != litStart || tr.Tok.Span.End != litEnd {
						t.Errorf("synthesized %q span %v, want %d-%d",
							tr.Tok.Text, tr.Tok.Span, litStart, litEnd)
					}
				}
			case *token.Group:
				check(tr.Items)
			}
		}
	}
	check(trees)
	if synth == 0 {
		t.Fatal("no synthesized tokens found")
	}
}

// ====== Policy diagnostics ======

func TestReservedSuffixAlwaysErrors(t *testing.T) {
	for _, input := range []string{"1i256", "1u256", "1f16", "1f128", "1.5f16", "1.5f128"} {
		got, bag, _ := expandSource(t, input, rewrite.Options{})
		if !strings.Contains(got, "::core::compile_error!") {
			t.Errorf("%q: expected embedded compile_error, got %q", input, got)
		}
		if !bag.HasErrors() {
			t.Errorf("%q: diagnostic not mirrored into the bag", input)
		}
	}
}

func TestReservedSpellingIsCustomOnStrings(t *testing.T) {
	// Reservation binds to numeric kinds only.
	got, bag, _ := expandSource(t, `"x"f16`, rewrite.Options{})
	want := `crate::custom_literal::str::f16!("x")`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestCStringGating(t *testing.T) {
	input := `c"lit"h`

	got, bag, _ := expandSource(t, input, rewrite.Options{})
	if !strings.Contains(got, "::core::compile_error!") {
		t.Errorf("gated c-string must error, got %q", got)
	}
	if !bag.HasErrors() {
		t.Error("capability diagnostic not mirrored")
	}

	got, bag, _ = expandSource(t, input, rewrite.Options{CStrings: true})
	want := `crate::custom_literal::c_str::h!(c"lit")`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestUnsuffixedCStringPassesThroughRegardless(t *testing.T) {
	input := `let s = c"plain";`
	got, bag, _ := expandSource(t, input, rewrite.Options{})
	if got != input {
		t.Errorf("got %q, want %q", got, input)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestIntegerOverflowErrors(t *testing.T) {
	got, bag, _ := expandSource(t, "340282366920938463463374607431768211456big", rewrite.Options{})
	if !strings.Contains(got, "::core::compile_error!") {
		t.Errorf("overflowing literal must error, got %q", got)
	}
	if !bag.HasErrors() {
		t.Error("overflow diagnostic not mirrored")
	}
}

func TestFailureIsolation(t *testing.T) {
	// One bad literal must not stop the others from expanding.
	got, bag, _ := expandSource(t, "f(1f16, 15km)", rewrite.Options{})
	if !strings.Contains(got, "::core::compile_error!") {
		t.Errorf("expected compile_error for the reserved suffix, got %q", got)
	}
	if !strings.Contains(got, "crate::custom_literal::int::km!(15)") {
		t.Errorf("good literal was not expanded: %q", got)
	}
	if bag.Len() != 1 {
		t.Errorf("expected exactly one diagnostic, got %d", bag.Len())
	}
}

func TestDiagnosticMessageEmbedsSuffix(t *testing.T) {
	got, _, _ := expandSource(t, "1i256", rewrite.Options{})
	if !strings.Contains(got, "i256") {
		t.Errorf("message must name the suffix: %q", got)
	}
}

// ====== Usage errors ======

func TestExpandRejectsAttributeArguments(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("args.rs", []byte("xyz")))
	lx := lexer.New(file, lexer.Options{})
	args := parser.Build(lx, parser.Options{})

	bodyFS := source.NewFileSet()
	bodyFile := bodyFS.Get(bodyFS.AddVirtual("body.rs", []byte("let x = 15km;")))
	body := parser.Build(lexer.New(bodyFile, lexer.Options{}), parser.Options{})

	bag := diag.NewBag(4)
	rw := rewrite.New(rewrite.Options{Reporter: &diag.BagReporter{Bag: bag}})
	out, err := rw.Expand(args, body)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	printed := format.Print(out)
	if !strings.Contains(printed, "::core::compile_error!") {
		t.Errorf("usage error must replace the body, got %q", printed)
	}
	if strings.Contains(printed, "custom_literal") {
		t.Errorf("no literal may be processed after a usage error: %q", printed)
	}
	if bag.Len() != 1 {
		t.Errorf("usage error must be reported exactly once, got %d", bag.Len())
	}
}

func TestExpandWithEmptyArgsProcessesBody(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("body.rs", []byte("15km")))
	body := parser.Build(lexer.New(file, lexer.Options{}), parser.Options{})

	rw := rewrite.New(rewrite.Options{})
	out, err := rw.Expand(nil, body)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got := format.Print(out); got != "crate::custom_literal::int::km!(15)" {
		t.Errorf("got %q", got)
	}
}

// ====== Native suffixes ======

func TestNativeSuffixesPassThrough(t *testing.T) {
	inputs := []string{"1u8", "1i128", "1usize", "1f32", "1.5f64"}
	for _, input := range inputs {
		got, bag, _ := expandSource(t, input, rewrite.Options{})
		if got != input {
			t.Errorf("%q: native suffix must pass through, got %q", input, got)
		}
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics", input)
		}
	}
}
