package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"ember/internal/token"
)

// matchNumber matches
//
//	[+-]? digits? ('.' digits?)? ([eE] [+-]? digits)?
//
// with at least one digit before the exponent. An 'e' that is not followed
// by exponent digits is left for the next lexeme, unless input ends there.
func matchNumber(c Cursor) (lexeme, Cursor, miss) {
	cur, _ := c.EatAny('+', '-')

	intEnd := cur.Skip(isDigit)
	digits := intEnd.Off > cur.Off
	cur = intEnd

	if dot, ok := cur.Eat('.'); ok {
		fracEnd := dot.Skip(isDigit)
		digits = digits || fracEnd.Off > dot.Off
		cur = fracEnd
	}
	if !digits {
		return lexeme{}, c, missAt(cur)
	}

	if e, ok := cur.EatAny('e', 'E'); ok {
		exp, _ := e.EatAny('+', '-')
		expEnd := exp.Skip(isDigit)
		switch {
		case expEnd.Off > exp.Off:
			cur = expEnd
		case exp.EOF():
			return lexeme{}, c, eofMiss(exp)
		}
	}

	return lexeme{kind: token.NumberLit, num: parseNumber(cur.Text(c))}, cur, miss{}
}

// parseNumber converts a lexeme already validated by matchNumber.
// Overflow saturates to ±Inf.
func parseNumber(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Errorf("lexer: number lexeme %q rejected by ParseFloat: %w", text, err))
	}
	return v
}
