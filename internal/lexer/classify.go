package lexer

import "unicode"

// Lowercase, Uppercase and Alphabetic are derived Unicode properties: the
// general category plus the Other_* lists (ª, ⅰ, Ⓐ, combining vowel signs).
func isLowerStart(r rune) bool {
	return r == '_' || unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

func isLowerContinue(r rune) bool {
	return r == '_' || isAlnum(r)
}

func isUpperStart(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// Upper identifiers do not admit '_'.
func isUpperContinue(r rune) bool {
	return isAlnum(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isLineEnd(r rune) bool {
	return r == '\n' || r == '\r'
}

func notLineEnd(r rune) bool {
	return !isLineEnd(r)
}
