package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() (callers are
// expected to Sort() first) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline over the span, then the
// notes in the same shape. Color is opt-in.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.diagnostic(&d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) diagnostic(d *diag.Diagnostic) {
	f := p.fs.Get(d.Primary.File)
	start, end := p.fs.Resolve(d.Primary)

	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n",
		p.path(f), start.Line, start.Col,
		p.severity(d.Severity), p.code(d.Code), d.Message)

	p.snippet(f, start, end)

	if !p.opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nf := p.fs.Get(note.Span.File)
		nstart, nend := p.fs.Resolve(note.Span)
		fmt.Fprintf(p.w, "%s:%d:%d: %s: %s\n",
			p.path(nf), nstart.Line, nstart.Col, p.noteLabel(), note.Msg)
		p.snippet(nf, nstart, nend)
	}
}

// snippet prints the primary line with its underline, plus up to
// opts.Context lines of surrounding source.
func (p *prettyPrinter) snippet(f *source.File, start, end source.LineCol) {
	line := f.GetLine(start.Line)
	if line == "" && start.Line != 1 {
		return
	}

	ctx := uint32(0)
	if p.opts.Context > 0 {
		ctx = uint32(p.opts.Context)
	}
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	for n := first; n < start.Line; n++ {
		p.gutterLine(n, f.GetLine(n))
	}

	p.gutterLine(start.Line, line)
	p.underline(line, start, end)

	for n := start.Line + 1; n <= start.Line+ctx; n++ {
		text := f.GetLine(n)
		if text == "" {
			break
		}
		p.gutterLine(n, text)
	}
}

func (p *prettyPrinter) gutterLine(n uint32, text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.gutter(fmt.Sprintf("%5d |", n)), text)
}

// underline prints the ^~~~ marker row under the primary line. Widths are
// display widths, so tabs and wide runes keep the marker aligned.
func (p *prettyPrinter) underline(line string, start, end source.LineCol) {
	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	prefix := sliceCols(line, 0, col-1)
	pad := runewidth.StringWidth(expandTabs(prefix))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		marked := sliceCols(line, col-1, int(end.Col)-1)
		if w := runewidth.StringWidth(expandTabs(marked)); w > 1 {
			width = w
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(p.w, "%s %s%s\n",
		p.gutter("      |"), strings.Repeat(" ", pad), p.marker(marker))
}

// sliceCols cuts line between two rune offsets, clamped to its length.
func sliceCols(line string, from, to int) string {
	runes := []rune(line)
	if from > len(runes) {
		from = len(runes)
	}
	if to > len(runes) {
		to = len(runes)
	}
	if to < from {
		to = from
	}
	return string(runes[from:to])
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func (p *prettyPrinter) path(f *source.File) string {
	switch p.opts.PathMode {
	case PathModeFull:
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.DisplayPath()
	}
}

func (p *prettyPrinter) severity(s diag.Severity) string {
	if !p.opts.Color {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(s.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(s.String())
	default:
		return color.New(color.FgCyan).Sprint(s.String())
	}
}

func (p *prettyPrinter) code(c diag.Code) string {
	if !p.opts.Color {
		return c.ID()
	}
	return color.New(color.Bold).Sprint(c.ID())
}

func (p *prettyPrinter) noteLabel() string {
	if !p.opts.Color {
		return "note"
	}
	return color.New(color.FgCyan).Sprint("note")
}

func (p *prettyPrinter) gutter(s string) string {
	if !p.opts.Color {
		return s
	}
	return color.New(color.FgBlue).Sprint(s)
}

func (p *prettyPrinter) marker(s string) string {
	if !p.opts.Color {
		return s
	}
	return color.New(color.FgRed, color.Bold).Sprint(s)
}
