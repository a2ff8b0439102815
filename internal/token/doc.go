// Package token defines the lexical token kinds of the ember language.
// Invariants:
//   - Token.Meta is an inclusive byte range: Content[Start:End+1] is exactly
//     the lexeme the token was produced from.
//   - Token payloads (Text, Bool, Num) are owned values, never slices of the
//     source buffer.
//   - "true" and "false" are the only reserved words; they are BoolLit, never
//     LowerIdent.
//   - Whitespace and comments are never represented as tokens.
package token
