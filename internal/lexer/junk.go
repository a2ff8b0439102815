package lexer

// Junk is recognised like any other lexeme and dropped by the driver.

func matchWhitespace(c Cursor) (lexeme, Cursor, miss) {
	next, m := expect(c, isSpace)
	if m.failed() {
		return lexeme{}, c, m
	}
	return lexeme{junk: true}, next.Skip(isSpace), miss{}
}

// matchComment matches '#' up to, not including, the line end or EOF.
func matchComment(c Cursor) (lexeme, Cursor, miss) {
	next, m := expectByte(c, '#')
	if m.failed() {
		return lexeme{}, c, m
	}
	return lexeme{junk: true}, next.Skip(notLineEnd), miss{}
}

var matchJunk = firstOf(matchWhitespace, matchComment)
