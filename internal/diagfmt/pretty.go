// Package diagfmt renders diagnostics, token streams, and syntax trees
// for the CLI. Rendering is presentation only; nothing here mutates the
// structures it formats.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"garnet/internal/diag"
	"garnet/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen)
	gutterColor  = color.New(color.FgHiBlack)
)

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by its notes. Callers sort the bag first when they want
// positional order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for i, d := range bag.Items() {
		if opts.Max > 0 && i >= opts.Max {
			fmt.Fprintf(w, "... and %d more\n", bag.Len()-opts.Max)
			return
		}
		writeHeading(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		writeSnippet(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeNote(w, fs, n, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(sp)
	path := displayPath(fs, sp.File, opts.PathMode)
	label := sev.String() + " " + code.String()
	if opts.Color {
		label = severityColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, msg)
}

func writeNote(w io.Writer, fs *source.FileSet, n diag.Note, opts PrettyOpts) {
	start, _ := fs.Resolve(n.Span)
	path := displayPath(fs, n.Span.File, opts.PathMode)
	label := "note"
	if opts.Color {
		label = infoColor.Sprint(label)
	}
	fmt.Fprintf(w, "  %s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, n.Msg)
	writeSnippet(w, fs, n.Span, opts)
}

// writeSnippet prints the first line the span touches with a caret and
// tilde underline beneath the spanned columns.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, _ := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	line = strings.TrimRight(line, "\n")
	expanded := strings.ReplaceAll(line, "\t", "    ")

	gutter := fmt.Sprintf("%5d | ", start.Line)
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, expanded)

	prefix := line[:min(int(start.Col)-1, len(line))]
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))

	spanLen := int(sp.End - sp.Start)
	covered := line[min(int(start.Col)-1, len(line)):]
	if spanLen < len(covered) {
		covered = covered[:spanLen]
	}
	underline := runewidth.StringWidth(covered)
	if underline < 1 {
		underline = 1
	}
	marker := "^" + strings.Repeat("~", underline-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	file := fs.Get(id)
	if file == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(file.Path)
	}
	return file.Path
}
