package lexer

import "ember/internal/token"

// matchPunct tries the two-character arrows before any single character so
// that "->" never splits into '-' and '>'.
var matchPunct = firstOf(
	fixed(token.Arrow),
	fixed(token.FatArrow),
	fixed(token.LParen),
	fixed(token.RParen),
	fixed(token.LBrace),
	fixed(token.RBrace),
	fixed(token.LBracket),
	fixed(token.RBracket),
	fixed(token.Comma),
	fixed(token.Semicolon),
	fixed(token.Colon),
	fixed(token.Dot),
	fixed(token.Bar),
	fixed(token.RAngle),
)
