package lexer

import (
	"garnet/internal/diag"
)

// Options configures one Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; lexing always
	// continues to end of input either way.
	Reporter diag.Reporter
}
