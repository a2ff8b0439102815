package diag

import (
	"fmt"
)

// Code identifies a diagnostic class.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo           Code = 1000
	LexUnexpectedEOF  Code = 1001
	LexUnexpectedChar Code = 1002

	// IO
	IOInfo         Code = 4000
	IOLoadFailed   Code = 4001
	IOCacheFailure Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	LexInfo:           "Lexical information",
	LexUnexpectedEOF:  "Unexpected end of input",
	LexUnexpectedChar: "Unexpected character",
	IOInfo:            "IO information",
	IOLoadFailed:      "Failed to load file",
	IOCacheFailure:    "Token cache failure",
}

// ID returns the stable identifier, e.g. LEX1002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
