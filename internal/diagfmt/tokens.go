package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"ember/internal/source"
	"ember/internal/token"
)

// TokenOutput is the JSON shape of one token. End is inclusive.
// Text is nil only for booleans and numbers, so "" stays visible.
type TokenOutput struct {
	Kind  string  `json:"kind"`
	Text  *string `json:"text,omitempty"`
	Value any     `json:"value,omitempty"`
	Start uint32  `json:"start"`
	End   uint32  `json:"end"`
	Line  uint32  `json:"line"`
	Col   uint32  `json:"col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, f *source.File) error {
	for i, tok := range tokens {
		startPos := f.Position(tok.Meta.Start)
		endPos := f.Position(tok.Meta.End)

		if _, err := fmt.Fprintf(w, "%3d: %-13s %-20s at %d:%d-%d:%d [%d..%d]\n",
			i+1, tok.Kind, tok.Value(),
			startPos.Line, startPos.Col, endPos.Line, endPos.Col,
			tok.Meta.Start, tok.Meta.End); err != nil {
			return err
		}
	}
	return nil
}

// BuildTokensOutput converts tokens to their JSON shape without encoding.
func BuildTokensOutput(tokens []token.Token, f *source.File) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos := f.Position(tok.Meta.Start)
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Start: tok.Meta.Start,
			End:   tok.Meta.End,
			Line:  pos.Line,
			Col:   pos.Col,
		}
		switch tok.Kind {
		case token.LowerIdent, token.UpperIdent, token.StringLit:
			text := tok.Text
			out.Text = &text
		case token.BoolLit:
			out.Value = tok.Bool
		case token.NumberLit:
			// JSON has no infinities
			if math.IsInf(tok.Num, 0) || math.IsNaN(tok.Num) {
				out.Value = tok.Value()
			} else {
				out.Value = tok.Num
			}
		default:
			text, _ := token.Fixed(tok.Kind)
			out.Text = &text
		}
		output = append(output, out)
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, f *source.File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens, f))
}
