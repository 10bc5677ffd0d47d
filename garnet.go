// Package garnet parses Ruby source into syntax trees. Parsing never
// fails: malformed input produces a best-effort tree plus diagnostics.
// The only error any entry point returns is a *VersionError for an
// unsupported grammar version string.
package garnet

import (
	"fmt"

	"garnet/internal/driver"
	"garnet/internal/parser"
)

// ParseConfig carries the caller-facing parse options.
type ParseConfig struct {
	// Grammar selects the Ruby grammar edition: "3.3", "3.4", or
	// "latest". Empty means latest.
	Grammar string
	// Filepath substitutes for __FILE__ and names the source in
	// diagnostics.
	Filepath string
	// Scopes seeds enclosing local-variable scopes for eval-style
	// fragments, outermost first.
	Scopes [][]string
	// MaxDiagnostics caps collected diagnostics, zero for unlimited.
	MaxDiagnostics int
	// LineOffset shifts reported line numbers, for fragments embedded
	// at a known line of a larger document (ERB, doc snippets).
	LineOffset uint32
	// FrozenStringLiteral is the frozen default applied when the source
	// carries no frozen_string_literal magic comment.
	FrozenStringLiteral bool
}

// VersionError reports an unsupported grammar version string.
type VersionError struct {
	Requested string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("garnet: unsupported grammar version %q (supported: 3.3, 3.4, latest)", e.Requested)
}

// ResolveVersion maps a grammar version string to a parser edition.
func ResolveVersion(grammar string) (parser.RubyVersion, error) {
	switch grammar {
	case "", "latest", "3.4":
		return parser.Ruby34, nil
	case "3.3":
		return parser.Ruby33, nil
	default:
		return 0, &VersionError{Requested: grammar}
	}
}

func (c ParseConfig) driverConfig() (driver.Config, error) {
	version, err := ResolveVersion(c.Grammar)
	if err != nil {
		return driver.Config{}, err
	}
	return driver.Config{
		MaxDiagnostics:      c.MaxDiagnostics,
		Version:             version,
		Scopes:              c.Scopes,
		Filepath:            c.Filepath,
		LineOffset:          c.LineOffset,
		FrozenStringLiteral: c.FrozenStringLiteral,
	}, nil
}

// Parse parses src. The name labels the source in diagnostics; it
// defaults to "(string)".
func Parse(src []byte, cfg ParseConfig) (*driver.ParseResult, error) {
	dcfg, err := cfg.driverConfig()
	if err != nil {
		return nil, err
	}
	name := cfg.Filepath
	if name == "" {
		name = "(string)"
	}
	return driver.ParseSource(name, src, dcfg)
}

// ParseFile loads and parses path. Besides *VersionError it can return
// the underlying read error.
func ParseFile(path string, cfg ParseConfig) (*driver.ParseResult, error) {
	dcfg, err := cfg.driverConfig()
	if err != nil {
		return nil, err
	}
	return driver.Parse(path, dcfg)
}

// Lex tokenizes src without parsing.
func Lex(src []byte, cfg ParseConfig) (*driver.TokenizeResult, error) {
	dcfg, err := cfg.driverConfig()
	if err != nil {
		return nil, err
	}
	name := cfg.Filepath
	if name == "" {
		name = "(string)"
	}
	return driver.TokenizeSource(name, src, dcfg), nil
}

// ParseLex parses src and also returns the token stream the tree was
// built from. Tokens and tree come from separate lexer runs over the
// same buffer, so their spans agree.
func ParseLex(src []byte, cfg ParseConfig) (*driver.TokenizeResult, *driver.ParseResult, error) {
	tokens, err := Lex(src, cfg)
	if err != nil {
		return nil, nil, err
	}
	result, err := Parse(src, cfg)
	if err != nil {
		return nil, nil, err
	}
	return tokens, result, nil
}
