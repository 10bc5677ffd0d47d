package diagfmt

import (
	"encoding/json"
	"io"

	"garnet/internal/diag"
	"garnet/internal/source"
)

// PositionOutput is a 1-based line/column pair.
type PositionOutput struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// NoteOutput is the JSON shape of a diagnostic note.
type NoteOutput struct {
	Message string          `json:"message"`
	Start   uint32          `json:"start"`
	End     uint32          `json:"end"`
	Pos     *PositionOutput `json:"pos,omitempty"`
}

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string          `json:"severity"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Path     string          `json:"path"`
	Start    uint32          `json:"start"`
	End      uint32          `json:"end"`
	Pos      *PositionOutput `json:"pos,omitempty"`
	Notes    []NoteOutput    `json:"notes,omitempty"`
}

// JSON writes the bag as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]DiagnosticOutput, 0, bag.Len())
	for i, d := range bag.Items() {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		rec := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Path:     displayPath(fs, d.Primary.File, opts.PathMode),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		if opts.IncludePositions {
			rec.Pos = position(fs, d.Primary)
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				no := NoteOutput{Message: n.Msg, Start: n.Span.Start, End: n.Span.End}
				if opts.IncludePositions {
					no.Pos = position(fs, n.Span)
				}
				rec.Notes = append(rec.Notes, no)
			}
		}
		out = append(out, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func position(fs *source.FileSet, sp source.Span) *PositionOutput {
	start, _ := fs.Resolve(sp)
	return &PositionOutput{Line: start.Line, Col: start.Col}
}
