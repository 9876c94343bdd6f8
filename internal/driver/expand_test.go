package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/swanandpatil9195/culit/internal/driver"
	"github.com/swanandpatil9195/culit/internal/pipeline"
)

func TestExpandSourceWholeFile(t *testing.T) {
	res, err := driver.ExpandSource("test.rs", []byte("let x = 15km;\n"), driver.ExpandOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := "let x = crate::custom_literal::int::km!(15);\n"
	if res.Output != want {
		t.Errorf("got %q, want %q", res.Output, want)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", res.Bag.Len())
	}
}

func TestExpandSourcePassThrough(t *testing.T) {
	input := "fn main() {\n    let x = 100u8; // native\n}\n"
	res, err := driver.ExpandSource("test.rs", []byte(input), driver.ExpandOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != input {
		t.Errorf("pass-through changed the file\ninput:  %q\noutput: %q", input, res.Output)
	}
}

func TestExpandAttrScoped(t *testing.T) {
	input := strings.Join([]string{
		"#[culit]",
		"fn annotated() { let x = 15km; }",
		"fn plain() { let y = 20km; }",
		"",
	}, "\n")

	res, err := driver.ExpandSource("test.rs", []byte(input), driver.ExpandOptions{AttrScoped: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Output, "crate::custom_literal::int::km!(15)") {
		t.Errorf("annotated item was not expanded: %q", res.Output)
	}
	if !strings.Contains(res.Output, "20km") {
		t.Errorf("unannotated item was rewritten: %q", res.Output)
	}
	if strings.Contains(res.Output, "#[culit]") {
		t.Errorf("attribute marker must be consumed: %q", res.Output)
	}
}

func TestExpandAttrScopedNested(t *testing.T) {
	input := "mod m {\n#[culit]\nfn f() { let x = 1q; }\n}\n"
	res, err := driver.ExpandSource("test.rs", []byte(input), driver.ExpandOptions{AttrScoped: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Output, "crate::custom_literal::int::q!(1)") {
		t.Errorf("nested annotated item was not expanded: %q", res.Output)
	}
}

func TestExpandAttrWithArgumentsIsUsageError(t *testing.T) {
	input := "#[culit(nope)]\nfn f() { let x = 15km; }\n"
	res, err := driver.ExpandSource("test.rs", []byte(input), driver.ExpandOptions{AttrScoped: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Output, "::core::compile_error!") {
		t.Errorf("expected usage compile_error: %q", res.Output)
	}
	if strings.Contains(res.Output, "custom_literal") {
		t.Errorf("no literal may expand after a usage error: %q", res.Output)
	}
	if res.Bag.Len() != 1 {
		t.Errorf("usage error must be reported once, got %d", res.Bag.Len())
	}
}

func TestExpandOtherAttributesUntouched(t *testing.T) {
	input := "#[derive(Debug)]\nstruct S;\n"
	res, err := driver.ExpandSource("test.rs", []byte(input), driver.ExpandOptions{AttrScoped: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != input {
		t.Errorf("foreign attribute changed\ninput:  %q\noutput: %q", input, res.Output)
	}
}

func TestStageTimingsCoverLexing(t *testing.T) {
	// Lexing happens eagerly within its own stage; on a file this size its
	// recorded duration cannot be zero.
	src := strings.Repeat("let x = 15km; // one more line\n", 4000)
	res, err := driver.ExpandSource("big.rs", []byte(src), driver.ExpandOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Timings.Duration(pipeline.StageLex) <= 0 {
		t.Error("lex stage recorded no time")
	}
	if res.Timings.Duration(pipeline.StageExpand) <= 0 {
		t.Error("expand stage recorded no time")
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.rs")
	if err := os.WriteFile(path, []byte("let x = 15km;"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics")
	}
	if len(res.Tokens) == 0 {
		t.Fatal("no tokens")
	}
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.rs":     "let a = 1km;\n",
		"sub/b.rs": "let b = 2;\n",
		"skip.txt": "not code",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	outDir := t.TempDir()
	results, err := driver.ExpandDir(context.Background(), dir, driver.ExpandDirOptions{
		OutDir: outDir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	a, err := os.ReadFile(filepath.Join(outDir, "a.rs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(a), "crate::custom_literal::int::km!(1)") {
		t.Errorf("a.rs not expanded: %q", a)
	}

	b, err := os.ReadFile(filepath.Join(outDir, "sub", "b.rs"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "let b = 2;\n" {
		t.Errorf("b.rs must pass through: %q", b)
	}
}
