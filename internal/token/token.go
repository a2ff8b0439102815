package token

import (
	"fmt"
	"strconv"

	"ember/internal/source"
)

// Meta is the position record shared by every token: an inclusive byte range.
type Meta struct {
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

// Len returns the lexeme length in bytes.
func (m Meta) Len() uint32 {
	return m.End - m.Start + 1
}

// Span converts the inclusive range into a half-open source.Span of file.
func (m Meta) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: m.Start, End: m.End + 1}
}

// Token represents a single source token with its location and payload.
// Only the payload field matching Kind is meaningful.
type Token struct {
	Kind Kind    `msgpack:"k"`
	Meta Meta    `msgpack:"m"`
	Text string  `msgpack:"t,omitempty"` // LowerIdent, UpperIdent, StringLit (decoded)
	Bool bool    `msgpack:"b,omitempty"` // BoolLit
	Num  float64 `msgpack:"n"`         // NumberLit; omitempty would drop -0
}

// Value renders the payload as it would appear in source, or the fixed lexeme.
func (t Token) Value() string {
	switch t.Kind {
	case LowerIdent, UpperIdent:
		return t.Text
	case StringLit:
		return strconv.Quote(t.Text)
	case BoolLit:
		return strconv.FormatBool(t.Bool)
	case NumberLit:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	}
	text, _ := Fixed(t.Kind)
	return text
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d..%d", t.Kind, t.Value(), t.Meta.Start, t.Meta.End)
}
