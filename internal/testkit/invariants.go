package testkit

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"ember/internal/lexer"
	"ember/internal/token"
)

// CheckTokens verifies that toks is a faithful tokenization of content:
//  1. every Meta range is non-empty and inside content
//  2. ranges are strictly increasing and never overlap
//  3. bytes between tokens are whitespace or '#' comments only
//  4. each token's payload is what its source bytes say
//  5. no identifier, number or string could have taken one more byte
func CheckTokens(content []byte, toks []token.Token) error {
	lenContent, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var gapStart uint32
	for i, tok := range toks {
		m := tok.Meta
		if m.End < m.Start {
			return fmt.Errorf("token %d (%s): empty range", i, tok)
		}
		if m.End >= lenContent {
			return fmt.Errorf("token %d (%s): end beyond content %d", i, tok, lenContent)
		}
		if m.Start < gapStart {
			return fmt.Errorf("token %d (%s): overlaps previous token ending at %d", i, tok, gapStart)
		}
		if err := checkJunk(content[gapStart:m.Start]); err != nil {
			return fmt.Errorf("before token %d (%s): %w", i, tok, err)
		}
		if err := checkPayload(tok, string(content[m.Start:m.End+1])); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		if err := checkMunch(tok, content); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		gapStart = m.End + 1
	}
	if err := checkJunk(content[gapStart:]); err != nil {
		return fmt.Errorf("after last token: %w", err)
	}
	return nil
}

// checkMunch re-lexes the lexeme extended by the following byte. A single
// token of the same class means the lexer stopped too early.
func checkMunch(tok token.Token, content []byte) error {
	class := munchClass(tok.Kind)
	if class == token.Invalid || int(tok.Meta.End)+1 >= len(content) {
		return nil
	}
	longer := content[tok.Meta.Start : tok.Meta.End+2]
	toks, err := lexer.TokenizeString(string(longer), lexer.Options{})
	if err != nil || len(toks) != 1 || int(toks[0].Meta.End) != len(longer)-1 {
		return nil
	}
	if munchClass(toks[0].Kind) == class {
		return fmt.Errorf("%s stops before %q, %q is still one token", tok, content[tok.Meta.End+1], longer)
	}
	return nil
}

// BoolLit shares the lower identifier class: "true" followed by 'x' is "truex".
func munchClass(k token.Kind) token.Kind {
	switch k {
	case token.LowerIdent, token.BoolLit:
		return token.LowerIdent
	case token.UpperIdent, token.NumberLit, token.StringLit:
		return k
	}
	return token.Invalid
}

func checkJunk(gap []byte) error {
	for i := 0; i < len(gap); {
		if gap[i] == '#' {
			for i < len(gap) && gap[i] != '\n' && gap[i] != '\r' {
				i++
			}
			continue
		}
		r, sz := utf8.DecodeRune(gap[i:])
		if !unicode.IsSpace(r) {
			return fmt.Errorf("non-junk byte %q between tokens", gap[i])
		}
		i += sz
	}
	return nil
}

func checkPayload(tok token.Token, lexeme string) error {
	switch tok.Kind {
	case token.LowerIdent, token.UpperIdent:
		if tok.Text != lexeme {
			return fmt.Errorf("%s text %q, source %q", tok.Kind, tok.Text, lexeme)
		}
	case token.BoolLit:
		if strconv.FormatBool(tok.Bool) != lexeme {
			return fmt.Errorf("bool %v, source %q", tok.Bool, lexeme)
		}
	case token.NumberLit:
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("number source %q: %w", lexeme, err)
		}
		if v != tok.Num {
			return fmt.Errorf("number %v, source %q parses to %v", tok.Num, lexeme, v)
		}
	case token.StringLit:
		if len(lexeme) < 2 || lexeme[0] != '"' || lexeme[len(lexeme)-1] != '"' {
			return fmt.Errorf("string source %q is not quoted", lexeme)
		}
		if got := lexer.Unescape(lexeme[1 : len(lexeme)-1]); got != tok.Text {
			return fmt.Errorf("string text %q, source decodes to %q", tok.Text, got)
		}
	default:
		text, ok := token.Fixed(tok.Kind)
		if !ok {
			return fmt.Errorf("unexpected kind %s", tok.Kind)
		}
		if text != lexeme {
			return fmt.Errorf("%s source %q", tok.Kind, lexeme)
		}
	}
	return nil
}
