package lexer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/testkit"
	"ember/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.TokenizeString(src, lexer.Options{})
	require.NoError(t, err, "input %q", src)
	require.NoError(t, testkit.CheckTokens([]byte(src), toks))
	return toks
}

func single(t *testing.T, src string) token.Token {
	t.Helper()
	toks := tokenize(t, src)
	require.Len(t, toks, 1, "input %q: %v", src, toks)
	return toks[0]
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func lexErr(t *testing.T, src string) *lexer.Error {
	t.Helper()
	toks, err := lexer.TokenizeString(src, lexer.Options{})
	require.Error(t, err, "input %q", src)
	assert.Nil(t, toks)
	var le *lexer.Error
	require.True(t, errors.As(err, &le))
	return le
}

func TestEndToEnd(t *testing.T) {
	toks := tokenize(t, "# c\n  x42 <- 3.5e-2 \"a\\nb\"")
	require.Len(t, toks, 4)

	assert.Equal(t, token.LowerIdent, toks[0].Kind)
	assert.Equal(t, "x42", toks[0].Text)
	assert.Equal(t, token.Meta{Start: 6, End: 8}, toks[0].Meta)

	assert.Equal(t, token.LeftArrow, toks[1].Kind)
	assert.Equal(t, token.Meta{Start: 10, End: 11}, toks[1].Meta)

	assert.Equal(t, token.NumberLit, toks[2].Kind)
	assert.InDelta(t, 0.035, toks[2].Num, 1e-12)
	assert.Equal(t, token.Meta{Start: 13, End: 18}, toks[2].Meta)

	assert.Equal(t, token.StringLit, toks[3].Kind)
	assert.Equal(t, "a\nb", toks[3].Text)
	assert.Equal(t, token.Meta{Start: 20, End: 25}, toks[3].Meta)
}

func TestEmptyAndJunkOnly(t *testing.T) {
	for _, src := range []string{"", " ", "\n\t\r ", "# only a comment", "#a\n#b\n", "  # trailing"} {
		toks, err := lexer.TokenizeString(src, lexer.Options{})
		require.NoError(t, err, "input %q", src)
		assert.Empty(t, toks, "input %q", src)
	}
}

func TestWhitespaceOffsets(t *testing.T) {
	tok := single(t, "      \n\t\rfalse")
	assert.Equal(t, token.BoolLit, tok.Kind)
	assert.False(t, tok.Bool)
	assert.Equal(t, token.Meta{Start: 9, End: 13}, tok.Meta)
}

func TestCommentThenToken(t *testing.T) {
	src := "#this is a comment\n                        false\n        "
	tok := single(t, src)
	assert.Equal(t, token.BoolLit, tok.Kind)
	assert.Equal(t, token.Meta{Start: 43, End: 47}, tok.Meta)
}

func TestCommentStopsAtCarriageReturn(t *testing.T) {
	toks := tokenize(t, "# x\ry")
	require.Len(t, toks, 1)
	assert.Equal(t, "y", toks[0].Text)
	assert.Equal(t, uint32(4), toks[0].Meta.Start)
}

func TestBooleansAndIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
		value bool
	}{
		{"true", token.BoolLit, "", true},
		{"false", token.BoolLit, "", false},
		{"true_", token.LowerIdent, "true_", false},
		{"_true", token.LowerIdent, "_true", false},
		{"falsex", token.LowerIdent, "falsex", false},
		{"false_", token.LowerIdent, "false_", false},
		{"lower_symbol", token.LowerIdent, "lower_symbol", false},
		{"l", token.LowerIdent, "l", false},
		{"_", token.LowerIdent, "_", false},
		{"x42", token.LowerIdent, "x42", false},
		{"переменная", token.LowerIdent, "переменная", false},
		{"UpperSymbol", token.UpperIdent, "UpperSymbol", false},
		{"U", token.UpperIdent, "U", false},
		{"True", token.UpperIdent, "True", false},
		{"Δelta2", token.UpperIdent, "Δelta2", false},
		{"ªb", token.LowerIdent, "ªb", false},
		{"ⅰx", token.LowerIdent, "ⅰx", false},
		{"aि", token.LowerIdent, "aि", false},
		{"Xॉ", token.UpperIdent, "Xॉ", false},
		{"Ⓐ", token.UpperIdent, "Ⓐ", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := single(t, tt.input)
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.text, tok.Text)
			assert.Equal(t, tt.value, tok.Bool)
			assert.Equal(t, uint32(0), tok.Meta.Start)
			assert.Equal(t, uint32(len(tt.input)-1), tok.Meta.End)
		})
	}
}

func TestUpperIdentStopsAtUnderscore(t *testing.T) {
	toks := tokenize(t, "Foo_bar")
	require.Len(t, toks, 2)
	assert.Equal(t, token.UpperIdent, toks[0].Kind)
	assert.Equal(t, "Foo", toks[0].Text)
	assert.Equal(t, token.LowerIdent, toks[1].Kind)
	assert.Equal(t, "_bar", toks[1].Text)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"0.0", 0},
		{"1E1", 1e1},
		{"1e1", 1e1},
		{"+1.0", 1},
		{"-1.0", -1},
		{"1E+1", 1e+1},
		{"1e+1", 1e+1},
		{"1234.5678", 1234.5678},
		{"1234.5678E-90", 1234.5678e-90},
		{"1234.5678e-90", 1234.5678e-90},
		{"1234.5678e-901", 0},
		{"1234", 1234},
		{"1.", 1},
		{".5", 0.5},
		{"-.5", -0.5},
		{"3.5e-2", 0.035},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := single(t, tt.input)
			require.Equal(t, token.NumberLit, tok.Kind)
			assert.Equal(t, tt.want, tok.Num)
			assert.Equal(t, token.Meta{Start: 0, End: uint32(len(tt.input) - 1)}, tok.Meta)
		})
	}
}

func TestNumberOverflowSaturates(t *testing.T) {
	tok := single(t, "1e999")
	assert.True(t, math.IsInf(tok.Num, 1))
}

func TestNumberExponentBacktracks(t *testing.T) {
	toks := tokenize(t, "1ex")
	require.Equal(t, []token.Kind{token.NumberLit, token.LowerIdent}, kinds(toks))
	assert.Equal(t, 1.0, toks[0].Num)
	assert.Equal(t, "ex", toks[1].Text)

	toks = tokenize(t, "2E)")
	require.Equal(t, []token.Kind{token.NumberLit, token.UpperIdent, token.RParen}, kinds(toks))
}

// A sign, a dot and an exponent marker never make a number without a digit.
func TestNumberNeedsMantissaDigit(t *testing.T) {
	parts := []string{"", "+", "-"}
	for _, sign := range parts {
		for _, dot := range []string{"", "."} {
			for _, exp := range []string{"", "e", "E"} {
				src := sign + dot + exp
				if src == "" {
					continue
				}
				toks, err := lexer.TokenizeString(src, lexer.Options{})
				if err != nil {
					continue
				}
				for _, tok := range toks {
					assert.NotEqual(t, token.NumberLit, tok.Kind, "input %q: %v", src, toks)
				}
			}
		}
	}

	toks := tokenize(t, ".e1")
	assert.Equal(t, []token.Kind{token.Dot, token.LowerIdent}, kinds(toks))
}

func TestArrowsAreNotNumbers(t *testing.T) {
	toks := tokenize(t, "a->b=>c")
	assert.Equal(t, []token.Kind{
		token.LowerIdent, token.Arrow, token.LowerIdent, token.FatArrow, token.LowerIdent,
	}, kinds(toks))

	toks = tokenize(t, "x -1")
	require.Equal(t, []token.Kind{token.LowerIdent, token.NumberLit}, kinds(toks))
	assert.Equal(t, -1.0, toks[1].Num)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"string input"`, "string input"},
		{`"string \n input"`, "string \n input"},
		{`"string \r input"`, "string \r input"},
		{`"string \0 input"`, "string \x00 input"},
		{`"string \t input"`, "string \t input"},
		{`"string \\ input"`, "string \\ input"},
		{`"string \" input"`, "string \" input"},
		{`""`, ""},
		{"\"multi\nline\"", "multi\nline"},
		{`"keep \q"`, `keep \q`},
		{`"юникод"`, "юникод"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := single(t, tt.input)
			require.Equal(t, token.StringLit, tok.Kind)
			assert.Equal(t, tt.want, tok.Text)
			assert.Equal(t, token.Meta{Start: 0, End: uint32(len(tt.input) - 1)}, tok.Meta)
		})
	}
}

func TestUnescapeMatchesLexer(t *testing.T) {
	for _, body := range []string{`a\nb`, `\\\"`, `\q\0`, `plain`} {
		tok := single(t, `"`+body+`"`)
		assert.Equal(t, lexer.Unescape(body), tok.Text)
	}
}

func TestPunctuation(t *testing.T) {
	toks := tokenize(t, "( ) { } [ ] , ; : . | > -> => <- <= <")
	assert.Equal(t, []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.Comma, token.Semicolon, token.Colon, token.Dot, token.Bar, token.RAngle,
		token.Arrow, token.FatArrow, token.LeftArrow, token.FatLeftArrow, token.LAngle,
	}, kinds(toks))
}

func TestAngleDisambiguation(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		end   uint32
	}{
		{" <=", token.FatLeftArrow, 2},
		{" <-", token.LeftArrow, 2},
		{" <", token.LAngle, 1},
		{" <a", token.LAngle, 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := tokenize(t, tt.input)
			require.NotEmpty(t, toks)
			assert.Equal(t, tt.kind, toks[0].Kind)
			assert.Equal(t, token.Meta{Start: 1, End: tt.end}, toks[0].Meta)
		})
	}

	// "<<-" is a bare angle followed by a left arrow
	assert.Equal(t, []token.Kind{token.LAngle, token.LeftArrow}, kinds(tokenize(t, "<<-")))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   lexer.ErrorKind
		offset uint32
	}{
		{`"abc`, lexer.UnexpectedEndOfInput, 0},
		{`"abc\`, lexer.UnexpectedEndOfInput, 0},
		{"1e", lexer.UnexpectedEndOfInput, 0},
		{"1e+", lexer.UnexpectedEndOfInput, 0},
		{"-", lexer.UnexpectedEndOfInput, 0},
		{"$", lexer.PositionedError, 0},
		{"a $", lexer.PositionedError, 2},
		{"x = 1", lexer.PositionedError, 2},
		{"-x", lexer.PositionedError, 0},
		{"=)", lexer.PositionedError, 0},
		{"\xff", lexer.PositionedError, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			le := lexErr(t, tt.input)
			assert.Equal(t, tt.kind, le.Kind)
			if tt.kind == lexer.PositionedError {
				assert.Equal(t, tt.offset, le.Offset)
				assert.ErrorIs(t, le, lexer.ErrUnexpectedChar)
			} else {
				assert.ErrorIs(t, le, lexer.ErrUnexpectedEOF)
			}
		})
	}
}

func TestErrorReported(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.em", []byte("ok \"open"))
	bag := diag.NewBag(10)

	_, err := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.ErrorIs(t, err, lexer.ErrUnexpectedEOF)
	require.Equal(t, 1, bag.Len())

	d := bag.Items()[0]
	assert.Equal(t, diag.LexUnexpectedEOF, d.Code)
	assert.Equal(t, source.Span{File: id, Start: 8, End: 8}, d.Primary)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, uint32(3), d.Notes[0].Span.Start)

	var le *lexer.Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, uint32(3), le.Start)
}

func TestPositionedDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.em", []byte("a €"))
	le := &lexer.Error{Kind: lexer.PositionedError, Offset: 2, Start: 2}

	d := lexer.Diagnose(fs.Get(id), le)
	assert.Equal(t, diag.LexUnexpectedChar, d.Code)
	assert.Equal(t, source.Span{File: id, Start: 2, End: 5}, d.Primary)
	assert.Contains(t, d.Message, "'€'")
	assert.Empty(t, d.Notes)
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
		first string
	}{
		{"x42y", []token.Kind{token.LowerIdent}, "x42y"},
		{"1.5e3", []token.Kind{token.NumberLit}, "1500"},
		{"abc_9", []token.Kind{token.LowerIdent}, "abc_9"},
		{"Abc9_x", []token.Kind{token.UpperIdent, token.LowerIdent}, "Abc9"},
		{"truefalse", []token.Kind{token.LowerIdent}, "truefalse"},
		{"-12.75", []token.Kind{token.NumberLit}, "-12.75"},
		{`"a b"c`, []token.Kind{token.StringLit, token.LowerIdent}, `"a b"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := tokenize(t, tt.input)
			assert.Equal(t, tt.kinds, kinds(toks))
			assert.Equal(t, tt.first, toks[0].Value())
		})
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	src := "Main { run: x -> \"hi\" } # done"
	a := tokenize(t, src)
	b := tokenize(t, src)
	assert.Equal(t, a, b)
}
