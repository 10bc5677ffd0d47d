package lexer

import (
	"garnet/internal/token"
)

// scanIdentOrKeyword lexes a local name, constant, keyword, or label.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	// `foo?` / `foo!` method names, but never `foo?=` (that is `foo ?=`).
	if b := lx.cursor.Peek(); (b == '?' || b == '!') && lx.cursor.PeekAt(1) != '=' {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.cursor.Slice(sp))

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}

	// A name directly followed by `:` (but not `::`) is a label, except
	// right after `?` where it would swallow the ternary separator.
	if lx.cursor.Peek() == ':' && lx.cursor.PeekAt(1) != ':' && lx.lastKind != token.Question {
		lx.cursor.Bump()
		sp = lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Label, Span: sp, Text: text}
	}

	kind := token.Ident
	if first >= 'A' && first <= 'Z' {
		kind = token.Constant
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanIVarOrCVar lexes @name and @@name.
func (lx *Lexer) scanIVarOrCVar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	kind := token.IVar
	if lx.cursor.Peek() == '@' {
		lx.cursor.Bump()
		kind = token.CVar
	}
	if !isIdentStart(lx.cursor.Peek()) && lx.cursor.Peek() < 0x80 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.cursor.Slice(sp))}
	}
	for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.cursor.Slice(sp))}
}

// scanGVar lexes $name, $1 (NthRef), and the $& family (BackRef).
func (lx *Lexer) scanGVar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	b := lx.cursor.Peek()
	switch {
	case isIdentStart(b) || b >= 0x80:
		for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.GVar, Span: sp, Text: string(lx.cursor.Slice(sp))}
	case isDigit(b):
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.NthRef, Span: sp, Text: string(lx.cursor.Slice(sp))}
	case b == '&' || b == '\'' || b == '`' || b == '+':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.BackRef, Span: sp, Text: string(lx.cursor.Slice(sp))}
	case isSpecialGVarChar(b):
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.GVar, Span: sp, Text: string(lx.cursor.Slice(sp))}
	default:
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.cursor.Slice(sp))}
	}
}

func isSpecialGVarChar(b byte) bool {
	switch b {
	case '!', '@', '/', '\\', ';', ',', '.', '=', ':', '<', '>', '"',
		'~', '*', '$', '?', '0', '_':
		return true
	default:
		return false
	}
}
