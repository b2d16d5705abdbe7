package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"sysdl/internal/source"
	"sysdl/internal/token"
)

// TokenOutput — JSON-представление одного токена.
type TokenOutput struct {
	Kind string   `json:"kind"`
	Text string   `json:"text,omitempty"`
	Num  *float64 `json:"num,omitempty"`
	Line uint32   `json:"line"`
	Col  uint32   `json:"col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.Number {
			fmt.Fprintf(w, " (=%v)", tok.Num)
		}
		fmt.Fprintf(w, " at %d:%d", tok.Line, tok.Col)
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Line,
			Col:  tok.Col,
		}
		if tok.Kind == token.Number && !math.IsNaN(tok.Num) {
			num := tok.Num
			out.Num = &num
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
