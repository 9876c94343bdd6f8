package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

// TokenOutput is the serialized shape of one token, shared by the JSON and
// msgpack encoders.
type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Text    string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Span    source.Span `json:"span" msgpack:"span"`
	Leading []string    `json:"leading,omitempty" msgpack:"leading,omitempty"`
}

// FormatTokensPretty dumps tokens in a human-readable listing.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func buildTokenOutput(tokens []token.Token) []TokenOutput {
	var output []TokenOutput
	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leading,
		})

		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON dumps tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokenOutput(tokens))
}

// FormatTokensMsgpack dumps tokens as a msgpack array, for tools that feed
// the token stream into another process.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(buildTokenOutput(tokens))
}
