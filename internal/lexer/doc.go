// Package lexer turns ember source text into a token sequence.
//
// Every lexical class is a matcher: a function from a Cursor to a lexeme, a
// new Cursor, and a miss. Matchers are combined with firstOf, which tries
// alternatives in order from the same position; a miss never moves the
// cursor, so backtracking is free. The driver applies the ordered rule list
// until input runs out and drops whitespace and comments. When no rule
// matches, running out of input inside any attempted lexeme is reported as
// UnexpectedEndOfInput, and anything else as a PositionedError at the
// offset where no lexeme could start.
package lexer
