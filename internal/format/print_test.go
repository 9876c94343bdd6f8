package format_test

import (
	"testing"

	"github.com/swanandpatil9195/culit/internal/format"
	"github.com/swanandpatil9195/culit/internal/lexer"
	"github.com/swanandpatil9195/culit/internal/parser"
	"github.com/swanandpatil9195/culit/internal/source"
)

// Untouched streams must re-emit byte-identically: trivia carries every
// space, newline, and comment, and EOF carries the file tail.
func TestRoundTripIdentity(t *testing.T) {
	inputs := []string{
		"",
		"let x = 10;\n",
		"fn main() {\n\t// comment\n\tlet x = 0xFF;\n}\n",
		"a  +   b\n\n\n",
		"/* block\n   comment */ x /* tail */\n",
		"let s = \"str\"; let r = r#\"raw\"#;\n",
		"fn first<'a>(v: &'a [u32]) -> &'a u32 { &v[0] }\n",
		"no trailing newline",
		"\t\t\n  // only trivia\n",
	}

	for _, input := range inputs {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
		lx := lexer.New(file, lexer.Options{})
		trees := parser.Build(lx, parser.Options{})

		if got := format.Print(trees); got != input {
			t.Errorf("round trip changed the source\ninput:  %q\noutput: %q", input, got)
		}
	}
}
