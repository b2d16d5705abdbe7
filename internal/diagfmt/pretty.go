package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sysdl/internal/diag"
	"sysdl/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, &d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	f := fs.Get(d.Primary.File)
	if f == nil {
		// спан не резолвится (файла нет в FileSet) — печатаем без пути
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		f.FormatPath("auto", fs.BaseDir()), start.Line, start.Col,
		sev, d.Code.ID(), d.Message)

	writeSourceLine(w, f, d.Primary, start, opts)

	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		if nf == nil {
			fmt.Fprintf(w, "note: %s\n", n.Msg)
			continue
		}
		nStart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
			nf.FormatPath("auto", fs.BaseDir()), nStart.Line, nStart.Col, n.Msg)
	}
}

// writeSourceLine печатает строку с ошибкой и подчёркивание ^~~~ по спану.
func writeSourceLine(w io.Writer, f *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" && sp.Empty() {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	// подчёркивание: табы сохраняем, остальное — пробелы
	var underline strings.Builder
	for i := uint32(1); i < start.Col; i++ {
		if int(i) <= len(line) && line[i-1] == '\t' {
			underline.WriteByte('\t')
		} else {
			underline.WriteByte(' ')
		}
	}
	underline.WriteByte('^')
	width := sp.Len()
	for i := uint32(1); i < width; i++ {
		underline.WriteByte('~')
	}

	marker := underline.String()
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s\n", marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
