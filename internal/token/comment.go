package token

import (
	"garnet/internal/source"
)

// CommentKind distinguishes the two Ruby comment forms.
type CommentKind uint8

const (
	// CommentInline is a `#` comment running to end of line.
	CommentInline CommentKind = iota
	// CommentEmbDoc is a `=begin`/`=end` block.
	CommentEmbDoc
)

// Comment is an out-of-band comment produced by the lexer on a side
// channel, independent of the token stream. Attachment to AST nodes
// happens in a post-parse pass.
type Comment struct {
	Kind CommentKind
	Span source.Span
}

func (k CommentKind) String() string {
	switch k {
	case CommentInline:
		return "inline"
	case CommentEmbDoc:
		return "embdoc"
	}
	return "unknown"
}
