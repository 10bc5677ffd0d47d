package token

import (
	"garnet/internal/source"
)

// Token is a single lexical token. Text is the raw source slice; for
// StringContent tokens Text holds the escape-processed value instead
// (the raw bytes are always recoverable through Span).
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Flags carries lexer-determined attributes (heredoc style,
	// interpolation capability, spacing context).
	Flags Flags
}

// Flags are per-token attributes set by the lexer.
type Flags uint8

const (
	// FlagInterpolates marks literal openers whose body may interpolate.
	FlagInterpolates Flags = 1 << iota
	// FlagSquiggly marks <<~ heredoc openers (leading whitespace dedent).
	FlagSquiggly
	// FlagDashed marks <<- heredoc openers (indented terminator allowed).
	FlagDashed
	// FlagSpaceBefore records that whitespace preceded the token. The
	// parser uses it to tell `a -b` (call with argument) from `a - b`.
	FlagSpaceBefore
)

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAlias && t.Kind <= KwEncoding
}

// IsLiteralStart reports whether the token can begin a literal.
func (t Token) IsLiteralStart() bool {
	switch t.Kind {
	case Integer, Float, Rational, Imaginary, CharLit, StringBegin,
		XStringBegin, Symbol, SymbolBegin, RegexpBegin, WordsBegin,
		SymbolsBegin, HeredocBegin, KwNil, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// Terminates reports whether the token ends a statement.
func (t Token) Terminates() bool {
	switch t.Kind {
	case Newline, Semicolon, EOF:
		return true
	default:
		return false
	}
}
