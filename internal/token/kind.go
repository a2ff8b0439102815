package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never produces it.
	Invalid Kind = iota

	// LowerIdent is an identifier starting with a lowercase letter or '_'.
	LowerIdent
	// UpperIdent is an identifier starting with an uppercase letter.
	UpperIdent
	// BoolLit is the literal true or false.
	BoolLit
	// NumberLit is a floating-point literal.
	NumberLit
	// StringLit is a double-quoted string literal.
	StringLit

	LParen       // (
	RParen       // )
	LBrace       // {
	RBrace       // }
	LBracket     // [
	RBracket     // ]
	LAngle       // <
	RAngle       // >
	Comma        // ,
	Semicolon    // ;
	Colon        // :
	Dot          // .
	Bar          // |
	Arrow        // ->
	FatArrow     // =>
	LeftArrow    // <-
	FatLeftArrow // <=

	kindCount
)

var fixedText = [...]string{
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	LBracket:     "[",
	RBracket:     "]",
	LAngle:       "<",
	RAngle:       ">",
	Comma:        ",",
	Semicolon:    ";",
	Colon:        ":",
	Dot:          ".",
	Bar:          "|",
	Arrow:        "->",
	FatArrow:     "=>",
	LeftArrow:    "<-",
	FatLeftArrow: "<=",
}

var kindNames = [...]string{
	Invalid:      "Invalid",
	LowerIdent:   "LowerIdent",
	UpperIdent:   "UpperIdent",
	BoolLit:      "BoolLit",
	NumberLit:    "NumberLit",
	StringLit:    "StringLit",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	LAngle:       "LAngle",
	RAngle:       "RAngle",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Colon:        "Colon",
	Dot:          "Dot",
	Bar:          "Bar",
	Arrow:        "Arrow",
	FatArrow:     "FatArrow",
	LeftArrow:    "LeftArrow",
	FatLeftArrow: "FatLeftArrow",
}

// String returns the Go-style name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Fixed returns the exact lexeme of a punctuation kind.
// ok is false for kinds whose text varies (identifiers and literals).
func Fixed(k Kind) (text string, ok bool) {
	if k >= LParen && k < kindCount {
		return fixedText[k], true
	}
	return "", false
}

// IsLiteral reports whether the kind is a boolean, number or string literal.
func (k Kind) IsLiteral() bool {
	return k == BoolLit || k == NumberLit || k == StringLit
}

// IsIdent reports whether the kind is one of the identifier classes.
func (k Kind) IsIdent() bool {
	return k == LowerIdent || k == UpperIdent
}

// IsPunct reports whether the kind is a fixed punctuation or operator.
func (k Kind) IsPunct() bool {
	return k >= LParen && k < kindCount
}

// IsValid reports whether k is a kind the lexer can produce.
func (k Kind) IsValid() bool {
	return k > Invalid && k < kindCount
}

// Kinds returns every producible kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := LowerIdent; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
