package lexer

import (
	"errors"
	"fmt"

	"ember/internal/diag"
	"ember/internal/source"
)

// ErrorKind classifies a tokenization failure.
type ErrorKind uint8

const (
	// UnexpectedEndOfInput: the input ended inside a lexeme.
	UnexpectedEndOfInput ErrorKind = iota + 1
	// PositionedError: the character at Offset cannot start or continue any lexeme.
	PositionedError
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case PositionedError:
		return "PositionedError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is.
var (
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
	ErrUnexpectedChar = errors.New("unexpected character")
)

// Error is returned by Tokenize. Offset is only meaningful for PositionedError.
// Start is where the lexeme that could not be completed began.
type Error struct {
	Kind   ErrorKind
	Offset uint32
	Start  uint32
}

func (e *Error) Error() string {
	if e.Kind == PositionedError {
		return fmt.Sprintf("%s at offset %d", ErrUnexpectedChar, e.Offset)
	}
	return ErrUnexpectedEOF.Error()
}

// Is matches the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case UnexpectedEndOfInput:
		return target == ErrUnexpectedEOF
	case PositionedError:
		return target == ErrUnexpectedChar
	}
	return false
}

// errorFromMiss converts the combined miss of all rules at c. Running out of
// input anywhere wins; otherwise no rule can start at c and c is the culprit.
func errorFromMiss(m miss, c Cursor) *Error {
	if m.kind == missEOF {
		return &Error{Kind: UnexpectedEndOfInput, Start: c.Off}
	}
	return &Error{Kind: PositionedError, Offset: c.Off, Start: c.Off}
}

// Diagnose builds the diagnostic for err in file. A note points at err.Start
// when the lexeme began before the failure point.
func Diagnose(file *source.File, err *Error) diag.Diagnostic {
	var d diag.Diagnostic
	var at uint32
	switch err.Kind {
	case UnexpectedEndOfInput:
		at = file.Len()
		d = diag.NewError(diag.LexUnexpectedEOF, source.Span{File: file.ID, Start: at, End: at}, "unexpected end of input")
	default:
		at = err.Offset
		c := Cursor{File: file, Off: at, Limit: file.Len()}
		r, sz := c.Rune()
		d = diag.NewError(diag.LexUnexpectedChar, source.Span{File: file.ID, Start: at, End: at + sz},
			fmt.Sprintf("unexpected character %q", r))
	}
	if err.Start < at {
		d = d.WithNote(source.Span{File: file.ID, Start: err.Start, End: at}, "lexeme started here")
	}
	return d
}

// Report sends the diagnostic for err to r. Nil reporters are ignored.
func Report(r diag.Reporter, file *source.File, err *Error) {
	if r == nil {
		return
	}
	d := Diagnose(file, err)
	r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}
