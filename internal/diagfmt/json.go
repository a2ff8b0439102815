package diagfmt

import (
	"encoding/json"
	"io"

	"ember/internal/diag"
	"ember/internal/source"
)

// LocationJSON is a half-open byte range; line and column are 1-based and
// only present with JSONOpts.IncludePositions.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате.
// SourceLine is the text of the first line of the primary span.
type DiagnosticJSON struct {
	Severity   string       `json:"severity"`
	Code       string       `json:"code"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	Location   LocationJSON `json:"location"`
	SourceLine string       `json:"source_line,omitempty"`
	Notes      []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Truncated   bool             `json:"truncated,omitempty"` // JSONOpts.Max cut the list
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(span source.Span) LocationJSON {
	f := b.fs.Get(span.File)
	if f == nil {
		return LocationJSON{File: "<unknown>", StartByte: span.Start, EndByte: span.End}
	}
	loc := LocationJSON{
		File:      formatPath(f, b.fs, b.opts.PathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (b jsonBuilder) diagnostic(d diag.Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	if f := b.fs.Get(d.Primary.File); f != nil && b.opts.IncludePositions {
		out.SourceLine = f.GetLine(out.Location.StartLine)
	}
	if !b.opts.IncludeNotes {
		return out
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: b.location(n.Span)})
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
		out.Truncated = true
	}
	b := jsonBuilder{fs: fs, opts: opts}
	for _, d := range items {
		out.Diagnostics = append(out.Diagnostics, b.diagnostic(d))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
