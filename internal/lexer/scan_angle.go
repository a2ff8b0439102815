package lexer

import "ember/internal/token"

// angleTail picks what follows '<': "<-", then "<=", then a bare '<'.
// The last alternative consumes nothing, so angleTail never misses.
var angleTail = firstOf(
	follow('-', token.LeftArrow),
	follow('=', token.FatLeftArrow),
	yield(token.LAngle),
)

func matchAngle(c Cursor) (lexeme, Cursor, miss) {
	after, m := expectByte(c, '<')
	if m.failed() {
		return lexeme{}, c, m
	}
	return angleTail(after)
}

// follow consumes b and produces kind.
func follow(b byte, kind token.Kind) matcher {
	return func(c Cursor) (lexeme, Cursor, miss) {
		next, m := expectByte(c, b)
		if m.failed() {
			return lexeme{}, c, m
		}
		return lexeme{kind: kind}, next, miss{}
	}
}
