package token_test

import (
	"testing"

	"ember/internal/source"
	"ember/internal/token"
)

func TestKindClasses(t *testing.T) {
	for _, k := range token.Kinds() {
		classes := 0
		if k.IsLiteral() {
			classes++
		}
		if k.IsIdent() {
			classes++
		}
		if k.IsPunct() {
			classes++
		}
		if classes != 1 {
			t.Errorf("%v belongs to %d classes, want exactly 1", k, classes)
		}
		if !k.IsValid() {
			t.Errorf("%v should be valid", k)
		}
	}
	if token.Invalid.IsValid() {
		t.Errorf("Invalid must not be valid")
	}
}

func TestFixed(t *testing.T) {
	cases := map[token.Kind]string{
		token.LParen:       "(",
		token.Bar:          "|",
		token.RAngle:       ">",
		token.Arrow:        "->",
		token.FatArrow:     "=>",
		token.LeftArrow:    "<-",
		token.FatLeftArrow: "<=",
	}
	for k, want := range cases {
		got, ok := token.Fixed(k)
		if !ok || got != want {
			t.Errorf("Fixed(%v) = %q,%v; want %q", k, got, ok, want)
		}
	}
	for _, k := range []token.Kind{token.LowerIdent, token.NumberLit, token.StringLit, token.Invalid} {
		if _, ok := token.Fixed(k); ok {
			t.Errorf("Fixed(%v) should not be ok", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.FatLeftArrow.String(); got != "FatLeftArrow" {
		t.Errorf("String = %q", got)
	}
	if got := token.Kind(200).String(); got != "Kind(200)" {
		t.Errorf("String(200) = %q", got)
	}
}

func TestMetaSpan(t *testing.T) {
	m := token.Meta{Start: 3, End: 5}
	if m.Len() != 3 {
		t.Fatalf("Len = %d", m.Len())
	}
	sp := m.Span(source.FileID(2))
	if sp != (source.Span{File: 2, Start: 3, End: 6}) {
		t.Fatalf("Span = %v", sp)
	}
}

func TestTokenValue(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.LowerIdent, Text: "x42"}, "x42"},
		{token.Token{Kind: token.StringLit, Text: "a\nb"}, `"a\nb"`},
		{token.Token{Kind: token.BoolLit, Bool: true}, "true"},
		{token.Token{Kind: token.NumberLit, Num: 0.035}, "0.035"},
		{token.Token{Kind: token.LeftArrow}, "<-"},
	}
	for _, tt := range tests {
		if got := tt.tok.Value(); got != tt.want {
			t.Errorf("Value(%v) = %q, want %q", tt.tok.Kind, got, tt.want)
		}
	}
	s := token.Token{Kind: token.Comma, Meta: token.Meta{Start: 4, End: 4}}.String()
	if s != "Comma(,)@4..4" {
		t.Errorf("String = %q", s)
	}
}
