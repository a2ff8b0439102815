package lexer

import "ember/internal/token"

// matchLowerIdent matches a lower identifier. The words true and false are
// carved out of this class and become boolean literals.
func matchLowerIdent(c Cursor) (lexeme, Cursor, miss) {
	next, m := expect(c, isLowerStart)
	if m.failed() {
		return lexeme{}, c, m
	}
	end := next.Skip(isLowerContinue)
	switch word := end.Since(c); string(word) {
	case "true":
		return lexeme{kind: token.BoolLit, flag: true}, end, miss{}
	case "false":
		return lexeme{kind: token.BoolLit, flag: false}, end, miss{}
	default:
		return lexeme{kind: token.LowerIdent, text: string(word)}, end, miss{}
	}
}

func matchUpperIdent(c Cursor) (lexeme, Cursor, miss) {
	next, m := expect(c, isUpperStart)
	if m.failed() {
		return lexeme{}, c, m
	}
	end := next.Skip(isUpperContinue)
	return lexeme{kind: token.UpperIdent, text: end.Text(c)}, end, miss{}
}
