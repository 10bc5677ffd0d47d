package driver

import (
	"garnet/internal/diag"
	"garnet/internal/lexer"
	"garnet/internal/source"
	"garnet/internal/token"
)

// TokenizeResult is the token stream of one file plus its lexical
// diagnostics and comments.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Comments []token.Comment
	Bag      *diag.Bag
}

// Tokenize lexes one file from disk to EOF.
func Tokenize(path string, cfg Config) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(id), cfg), nil
}

// TokenizeSource lexes an in-memory buffer under the given name.
func TokenizeSource(name string, src []byte, cfg Config) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fs.Get(id), cfg)
}

func tokenizeFile(fs *source.FileSet, file *source.File, cfg Config) *TokenizeResult {
	file.LineOffset = cfg.LineOffset
	bag := diag.NewBag(cfg.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Tokens:   tokens,
		Comments: lx.Comments(),
		Bag:      bag,
	}
}
