package lexer

import (
	"garnet/internal/diag"
	"garnet/internal/token"
)

// scanInlineComment consumes `#` to end of line into the comment side
// channel. The trailing newline is left for the main loop.
func (lx *Lexer) scanInlineComment() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.comments = append(lx.comments, token.Comment{
		Kind: token.CommentInline,
		Span: lx.cursor.SpanFrom(start),
	})
}

// atEmbDocBegin reports whether the cursor sits on a column-zero
// "=begin" line.
func (lx *Lexer) atEmbDocBegin() bool {
	m := lx.cursor.Mark()
	defer lx.cursor.Reset(m)
	if !lx.cursor.EatStr("=begin") {
		return false
	}
	b := lx.cursor.Peek()
	return lx.cursor.EOF() || b == '\n' || b == ' ' || b == '\t'
}

// scanEmbDoc consumes a =begin/=end block into the comment side channel.
// A missing =end runs to end of input with a diagnostic.
func (lx *Lexer) scanEmbDoc() {
	start := lx.cursor.Mark()
	terminated := false
	for !lx.cursor.EOF() {
		if lx.cursor.AtLineStart() {
			m := lx.cursor.Mark()
			if lx.cursor.EatStr("=end") {
				b := lx.cursor.Peek()
				if lx.cursor.EOF() || b == '\n' || b == ' ' || b == '\t' {
					for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
						lx.cursor.Bump()
					}
					terminated = true
					break
				}
			}
			lx.cursor.Reset(m)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.errLex(diag.LexUnterminatedEmbDoc, sp, "embedded document missing `=end`")
	}
	lx.comments = append(lx.comments, token.Comment{
		Kind: token.CommentEmbDoc,
		Span: sp,
	})
}

// atEndMarker reports whether the cursor sits on a column-zero __END__
// line.
func (lx *Lexer) atEndMarker() bool {
	m := lx.cursor.Mark()
	defer lx.cursor.Reset(m)
	if !lx.cursor.EatStr("__END__") {
		return false
	}
	b := lx.cursor.Peek()
	return lx.cursor.EOF() || b == '\n'
}

// consumeEndMarker stops lexing at __END__ and records where the data
// section starts.
func (lx *Lexer) consumeEndMarker() {
	lx.cursor.EatStr("__END__")
	lx.cursor.Eat('\n')
	lx.dataOffset = lx.cursor.Off
	lx.hasData = true
	lx.cursor.Limit = lx.cursor.Off
}
