package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ember/internal/diag"
	"ember/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f := fs.Get(d.Primary.File)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
			continue
		}
		pos := f.Position(d.Primary.Start)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(f, fs, opts.PathMode), pos.Line, pos.Col,
			p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
		writeContext(w, f, d.Primary, opts, p)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			if nf == nil {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
				continue
			}
			np := nf.Position(n.Span.Start)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				formatPath(nf, fs, opts.PathMode), np.Line, np.Col, n.Msg)
		}
	}
}

func writeContext(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, p palette) {
	line := buildSnippet(f, sp.Start, sp.End, int(opts.Width))
	if line.text == "" && line.caret == "" {
		return
	}
	first := line.num
	if ctx := uint32(max(opts.Context, 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	gw := len(fmt.Sprint(line.num))

	for n := first; n < line.num; n++ {
		text := expandTabs(f.GetLine(n))
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gw, n), text)
	}
	fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gw, line.num), line.text)
	fmt.Fprintf(w, "%s %s\n", p.gutter.Sprint(strings.Repeat(" ", gw)+" |"), p.caret.Sprint(line.caret))
}
