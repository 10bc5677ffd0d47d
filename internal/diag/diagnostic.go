package diag

import (
	"garnet/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a structured error or warning with a source location.
// Diagnostics never halt parsing; they accumulate in a Bag.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// IsLexical reports whether the diagnostic came from the lexer.
func (d Diagnostic) IsLexical() bool {
	return d.Code >= 1000 && d.Code < 2000
}
