package lexer

import (
	"fmt"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
	"ember/internal/trace"
)

// Options configures a Tokenize call. Both fields may be nil.
type Options struct {
	Reporter diag.Reporter // receives one diagnostic when tokenizing fails
	Tracer   trace.Tracer
	Parent   uint64 // trace span the lexer events belong to
}

// nextLexeme is the ordered rule list. Earlier rules win at the same offset,
// which is what keeps true/false out of LowerIdent and "->" out of NumberLit.
var nextLexeme = firstOf(
	matchJunk,
	matchLowerIdent,
	matchUpperIdent,
	matchNumber,
	matchString,
	matchPunct,
	matchAngle,
)

// Tokenize splits the whole file into tokens. On failure no tokens are
// returned and err is a *Error.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	cur := NewCursor(file)
	toks := make([]token.Token, 0, len(file.Content)/4)

	for {
		lx, next, m := nextLexeme(cur)
		if m.failed() {
			// the only acceptable way to stop: nothing left to read
			if m.kind == missEOF && cur.EOF() {
				break
			}
			err := errorFromMiss(m, cur)
			Report(opts.Reporter, file, err)
			trace.Error(opts.Tracer, trace.ScopeFile, "lex", err, opts.Parent)
			return nil, err
		}
		if next.Off <= cur.Off {
			panic(fmt.Errorf("lexer: rule matched empty input at offset %d", cur.Off))
		}
		if !lx.junk {
			toks = append(toks, lx.token(next.Meta(cur)))
		}
		cur = next
	}

	trace.Point(opts.Tracer, trace.ScopeDebug, "lex", fmt.Sprintf("%s: %d tokens", file.Path, len(toks)), opts.Parent)
	return toks, nil
}

// TokenizeString tokenizes src as an anonymous in-memory file.
func TokenizeString(src string, opts Options) ([]token.Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return Tokenize(fs.Get(id), opts)
}
