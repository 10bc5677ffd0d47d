// Package driver orchestrates lexing, parsing, and the post-parse
// passes into one call per file, plus the parallel directory walk the
// CLI builds on.
package driver

import (
	"fmt"

	"fortio.org/safecast"

	"garnet/internal/diag"
	"garnet/internal/lexer"
	"garnet/internal/parser"
	"garnet/internal/source"
)

// Config carries the per-parse knobs shared by every driver entry
// point.
type Config struct {
	// MaxDiagnostics caps the Bag and the parser's error reporting,
	// zero for unlimited.
	MaxDiagnostics int
	Version        parser.RubyVersion
	// Scopes seeds enclosing local-variable scopes for eval-style
	// fragments, outermost first.
	Scopes [][]string
	// Filepath overrides the path used for __FILE__; defaults to the
	// loaded path.
	Filepath string
	// LineOffset shifts reported line numbers for embedded fragments.
	LineOffset uint32
	// FrozenStringLiteral sets the frozen default when the file has no
	// frozen_string_literal magic comment of its own.
	FrozenStringLiteral bool
}

// Parse loads and parses one file from disk.
func Parse(path string, cfg Config) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(id), cfg)
}

// ParseSource parses an in-memory buffer under the given name.
func ParseSource(name string, src []byte, cfg Config) (*ParseResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return parseFile(fs, fs.Get(id), cfg)
}

func parseFile(fs *source.FileSet, file *source.File, cfg Config) (*ParseResult, error) {
	file.LineOffset = cfg.LineOffset
	bag := diag.NewBag(cfg.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	prologue := source.ScanPrologue(file)
	if prologue.UnknownEncoding != "" {
		var sp source.Span
		for _, m := range prologue.Magics {
			if m.Key == "encoding" || m.Key == "coding" {
				sp = m.Span
			}
		}
		reporter.Report(diag.LexUnknownEncoding, diag.SevError, sp,
			fmt.Sprintf("unknown source encoding %q", prologue.UnknownEncoding), nil)
	}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](cfg.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	filePath := cfg.Filepath
	if filePath == "" {
		filePath = file.Path
	}
	tree := parser.ParseProgram(file, lx, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  reporter,
		Version:   cfg.Version,
		Scopes:    cfg.Scopes,
		Filepath:  filePath,
	})

	frozen := prologue.FrozenStringLiteral
	if !prologue.HasFrozenDirective {
		frozen = cfg.FrozenStringLiteral
	}
	result := &ParseResult{
		FileSet:             fs,
		File:                file,
		Tree:                tree,
		Bag:                 bag,
		Comments:            lx.Comments(),
		MagicComments:       prologue.Magics,
		EncodingName:        prologue.EncodingName,
		FrozenStringLiteral: frozen,
	}
	if off, ok := lx.DataOffset(); ok {
		result.DataOffset = off
		result.HasData = true
	}
	return result, nil
}
