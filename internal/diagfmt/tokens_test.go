package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/swanandpatil9195/culit/internal/diagfmt"
	"github.com/swanandpatil9195/culit/internal/lexer"
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

func lexTokens(t *testing.T, input string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	return lexer.New(file, lexer.Options{}).Tokens(), fs
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := lexTokens(t, "let x = 15km;")
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Ident", `"15km"`, "Semicolon", "EOF"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, _ := lexTokens(t, "15km")
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 2 { // literal + EOF
		t.Fatalf("got %d tokens", len(out))
	}
	if out[0].Kind != "IntLit" || out[0].Text != "15km" {
		t.Errorf("first token: %+v", out[0])
	}
}

func TestFormatTokensMsgpackRoundTrip(t *testing.T) {
	tokens, _ := lexTokens(t, "15km")
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensMsgpack(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := msgpack.NewDecoder(&buf).Decode(&out); err != nil {
		t.Fatalf("invalid msgpack: %v", err)
	}
	if len(out) != 2 || out[0].Text != "15km" {
		t.Errorf("decoded: %+v", out)
	}
}
