package lexer

import (
	"garnet/internal/diag"
	"garnet/internal/token"
)

// scanOperatorOrPunct lexes operators, punctuation, and the literal
// openers that start with operator characters.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	switch b {
	case '"':
		return lx.scanStringBegin('"', flavStr, true)
	case '\'':
		return lx.scanStringBegin('\'', flavStr, false)
	case '`':
		return lx.scanStringBegin('`', flavXStr, true)
	case '/':
		if lx.exprBeg() {
			return lx.scanRegexpBegin()
		}
		if lx.argBeg() && lx.cursor.PeekAt(1) != ' ' && lx.cursor.PeekAt(1) != '=' {
			sp := lx.cursor.SpanFrom(start)
			sp.End = sp.Start + 1
			lx.warnLex(diag.WarnAmbiguousSlash, sp, "ambiguous `/`; interpreted as a regexp beginning")
			return lx.scanRegexpBegin()
		}
	case '%':
		if lx.exprBeg() || (lx.argBeg() && isPercentLiteralStart(lx.cursor.PeekAt(1))) {
			if tok, ok := lx.scanPercentLiteral(); ok {
				return tok
			}
		}
	case ':':
		if lx.cursor.PeekAt(1) != ':' {
			if tok, ok := lx.scanSymbolOrColon(); ok {
				return tok
			}
		}
	case '?':
		if lx.exprBeg() {
			if tok, ok := lx.scanCharLit(); ok {
				return tok
			}
		}
	case '<':
		if lx.cursor.PeekAt(1) == '<' && (lx.exprBeg() || lx.argBeg() || lx.afterAssignLike()) {
			if tok, ok := lx.scanHeredocBegin(); ok {
				return tok
			}
		}
	}

	return lx.scanPunct()
}

// afterAssignLike loosens heredoc detection for `x = <<~DOC` and
// `call(<<~DOC)` style positions that exprBeg already covers, plus the
// receiverless `puts <<~DOC` case where the previous token was a name.
func (lx *Lexer) afterAssignLike() bool {
	switch lx.lastKind {
	case token.Ident, token.Constant:
		return lx.sawSpace
	default:
		return false
	}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	mk := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.cursor.Slice(sp))}
	}

	switch b {
	case '+':
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		if lx.exprBeg() || (lx.argBeg() && lx.cursor.Peek() != ' ') {
			return mk(token.UPlus)
		}
		return mk(token.Plus)
	case '-':
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		if lx.cursor.Eat('>') {
			return mk(token.Arrow)
		}
		if lx.exprBeg() || (lx.argBeg() && lx.cursor.Peek() != ' ') {
			return mk(token.UMinus)
		}
		return mk(token.Minus)
	case '*':
		if lx.cursor.Peek() == '*' {
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				return mk(token.OpAssign)
			}
			if lx.exprBeg() || (lx.argBeg() && lx.cursor.Peek() != ' ') {
				return mk(token.UStar2)
			}
			return mk(token.Star2)
		}
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		if lx.exprBeg() || (lx.argBeg() && lx.cursor.Peek() != ' ') {
			return mk(token.UStar)
		}
		return mk(token.Star)
	case '/':
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		return mk(token.Slash)
	case '%':
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		return mk(token.Percent)
	case '^':
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		return mk(token.Caret)
	case '&':
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				return mk(token.OpAssign)
			}
			return mk(token.Amp2)
		}
		if lx.cursor.Eat('.') {
			return mk(token.AmpDot)
		}
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		if lx.exprBeg() || (lx.argBeg() && lx.cursor.Peek() != ' ') {
			return mk(token.UAmp)
		}
		return mk(token.Amp)
	case '|':
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				return mk(token.OpAssign)
			}
			return mk(token.Pipe2)
		}
		if lx.cursor.Eat('=') {
			return mk(token.OpAssign)
		}
		return mk(token.Pipe)
	case '~':
		return mk(token.Tilde)
	case '!':
		if lx.cursor.Eat('=') {
			return mk(token.BangEq)
		}
		if lx.cursor.Eat('~') {
			return mk(token.BangTilde)
		}
		return mk(token.Bang)
	case '=':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				return mk(token.EqEqEq)
			}
			return mk(token.EqEq)
		}
		if lx.cursor.Eat('>') {
			return mk(token.FatArrow)
		}
		if lx.cursor.Eat('~') {
			return mk(token.EqTilde)
		}
		return mk(token.Assign)
	case '<':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			if lx.cursor.Eat('>') {
				return mk(token.Spaceship)
			}
			return mk(token.LtEq)
		}
		if lx.cursor.Peek() == '<' {
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				return mk(token.OpAssign)
			}
			return mk(token.Shl)
		}
		return mk(token.Lt)
	case '>':
		if lx.cursor.Eat('=') {
			return mk(token.GtEq)
		}
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				return mk(token.OpAssign)
			}
			return mk(token.Shr)
		}
		return mk(token.Gt)
	case '.':
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			if lx.cursor.Eat('.') {
				return mk(token.Dot3)
			}
			return mk(token.Dot2)
		}
		return mk(token.Dot)
	case ':':
		if lx.cursor.Eat(':') {
			return mk(token.ColonColon)
		}
		return mk(token.Colon)
	case ',':
		return mk(token.Comma)
	case ';':
		return mk(token.Semicolon)
	case '?':
		return mk(token.Question)
	case '(':
		lx.parenDepth++
		return mk(token.LParen)
	case ')':
		if lx.parenDepth > 0 {
			lx.parenDepth--
		}
		return mk(token.RParen)
	case '[':
		lx.bracketDepth++
		if lx.exprBeg() || lx.sawSpace && lx.argBeg() {
			return mk(token.LBracket)
		}
		return mk(token.LBracketIdx)
	case ']':
		if lx.bracketDepth > 0 {
			lx.bracketDepth--
		}
		return mk(token.RBracket)
	case '{':
		if top := lx.topMode(); top != nil && top.kind == modeInterp {
			top.braceDepth++
		}
		return mk(token.LBrace)
	case '}':
		if top := lx.topMode(); top != nil && top.kind == modeInterp && top.braceDepth > 0 {
			top.braceDepth--
		}
		return mk(token.RBrace)
	}

	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.cursor.Slice(sp))}
	lx.reportInvalidByte(sp)
	return tok
}
