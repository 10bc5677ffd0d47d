package lexer

import (
	"strings"
	"unicode/utf8"

	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

// scanStringBegin opens a quoted literal and pushes its literal mode.
func (lx *Lexer) scanStringBegin(delim byte, flavor litFlavor, interp bool) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lit := &literal{flavor: flavor, close: delim, interp: interp}
	lx.pushMode(lexMode{kind: modeLiteral, lit: lit})

	kind := token.StringBegin
	if flavor == flavXStr {
		kind = token.XStringBegin
	}
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: kind, Span: sp, Text: string(lx.cursor.Slice(sp))}
	if interp {
		tok.Flags |= token.FlagInterpolates
	}
	return tok
}

// scanRegexpBegin opens a /.../ literal.
func (lx *Lexer) scanRegexpBegin() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lit := &literal{flavor: flavRegexp, close: '/', interp: true}
	lx.pushMode(lexMode{kind: modeLiteral, lit: lit})
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.RegexpBegin, Span: sp, Text: "/", Flags: token.FlagInterpolates}
}

func isPercentLiteralStart(b byte) bool {
	switch b {
	case 'q', 'Q', 'w', 'W', 'i', 'I', 'r', 's', 'x':
		return true
	default:
		// A bare %(...) string: any punctuation delimiter works.
		return b != 0 && !isIdentCont(b) && b != ' ' && b != '\t' && b != '\n' && b != '='
	}
}

// scanPercentLiteral opens %q %Q %w %W %i %I %r %s %x and bare %(...)
// literals. Returns false when the input is a plain % operator.
func (lx *Lexer) scanPercentLiteral() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '%'

	letter := byte(0)
	b := lx.cursor.Peek()
	if b >= 'A' && b <= 'z' && isIdentStart(b) {
		switch b {
		case 'q', 'Q', 'w', 'W', 'i', 'I', 'r', 's', 'x':
			letter = b
			lx.cursor.Bump()
		default:
			lx.cursor.Reset(start)
			return token.Token{}, false
		}
	}

	open := lx.cursor.Peek()
	if open == 0 || isIdentCont(open) || open == ' ' || open == '\t' || open == '\n' {
		if letter != 0 {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadPercentDelimiter, sp, "missing delimiter after %"+string(letter))
			lx.cursor.Reset(start)
			return token.Token{}, false
		}
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	lx.cursor.Bump()

	closeByte, bracketed := bracketClose(open)
	lit := &literal{close: closeByte}
	if !bracketed {
		lit.close = open
	} else {
		lit.open = open
	}

	var kind token.Kind
	switch letter {
	case 'q':
		kind, lit.flavor, lit.interp = token.StringBegin, flavStr, false
	case 0, 'Q':
		kind, lit.flavor, lit.interp = token.StringBegin, flavStr, true
	case 'w':
		kind, lit.flavor, lit.interp = token.WordsBegin, flavWords, false
	case 'W':
		kind, lit.flavor, lit.interp = token.WordsBegin, flavWords, true
	case 'i':
		kind, lit.flavor, lit.interp = token.SymbolsBegin, flavSymbols, false
	case 'I':
		kind, lit.flavor, lit.interp = token.SymbolsBegin, flavSymbols, true
	case 'r':
		kind, lit.flavor, lit.interp = token.RegexpBegin, flavRegexp, true
	case 's':
		kind, lit.flavor, lit.interp = token.SymbolBegin, flavSym, false
	case 'x':
		kind, lit.flavor, lit.interp = token.XStringBegin, flavXStr, true
	}

	lx.pushMode(lexMode{kind: modeLiteral, lit: lit})
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: kind, Span: sp, Text: string(lx.cursor.Slice(sp))}
	if lit.interp {
		tok.Flags |= token.FlagInterpolates
	}
	return tok, true
}

// operatorSymbols are the operator method names legal after `:`,
// longest first so prefix matching is greedy.
var operatorSymbols = []string{
	"[]=", "[]", "<=>", "===", "==", "=~", "<<", ">>", "<=", ">=", "**",
	"+@", "-@", "!=", "!~", "+", "-", "*", "/", "%", "<", ">", "!", "&",
	"|", "^", "~", "`",
}

// scanSymbolOrColon lexes :name, :"...", :'...', and operator symbols.
// Returns false when the colon is plain punctuation.
func (lx *Lexer) scanSymbolOrColon() (token.Token, bool) {
	start := lx.cursor.Mark()
	next := lx.cursor.PeekAt(1)

	switch {
	case next == '"', next == '\'':
		lx.cursor.Bump() // ':'
		lx.cursor.Bump() // quote
		lit := &literal{flavor: flavSym, close: next, interp: next == '"'}
		lx.pushMode(lexMode{kind: modeLiteral, lit: lit})
		sp := lx.cursor.SpanFrom(start)
		tok := token.Token{Kind: token.SymbolBegin, Span: sp, Text: string(lx.cursor.Slice(sp))}
		if lit.interp {
			tok.Flags |= token.FlagInterpolates
		}
		return tok, true

	case isIdentStart(next) || next >= 0x80 || next == '@' || next == '$':
		lx.cursor.Bump() // ':'
		if lx.cursor.Peek() == '@' {
			lx.cursor.Bump()
			lx.cursor.Eat('@')
		} else if lx.cursor.Peek() == '$' {
			lx.cursor.Bump()
		}
		for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if b := lx.cursor.Peek(); b == '?' || b == '!' {
			lx.cursor.Bump()
		} else if b == '=' {
			if n := lx.cursor.PeekAt(1); n != '=' && n != '>' && n != '~' {
				lx.cursor.Bump()
			}
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Symbol, Span: sp, Text: string(lx.cursor.Slice(sp))}, true

	default:
		m := lx.cursor.Mark()
		lx.cursor.Bump() // ':'
		for _, op := range operatorSymbols {
			if lx.cursor.EatStr(op) {
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.Symbol, Span: sp, Text: string(lx.cursor.Slice(sp))}, true
			}
		}
		lx.cursor.Reset(m)
		return token.Token{}, false
	}
}

// scanCharLit lexes ?a character literals. Returns false when `?` is the
// ternary operator.
func (lx *Lexer) scanCharLit() (token.Token, bool) {
	start := lx.cursor.Mark()
	next := lx.cursor.PeekAt(1)
	if next == 0 || next == ' ' || next == '\t' || next == '\n' {
		return token.Token{}, false
	}
	// `?ab` is never a char literal.
	if isIdentCont(next) && next < 0x80 && isIdentCont(lx.cursor.PeekAt(2)) {
		return token.Token{}, false
	}

	lx.cursor.Bump() // '?'
	var val strings.Builder
	if lx.cursor.Peek() == '\\' {
		lx.scanEscape(&val, &literal{flavor: flavStr, interp: true})
	} else {
		r, size := utf8.DecodeRune(lx.cursor.File.Content[lx.cursor.Off:lx.cursor.Limit])
		for i := 0; i < size; i++ {
			lx.cursor.Bump()
		}
		val.WriteRune(r)
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: val.String()}, true
}

// scanHeredocBegin lexes <<TERM / <<-TERM / <<~TERM openers and queues
// the body for lexing at the end of the current line. Returns false for
// plain << readings.
func (lx *Lexer) scanHeredocBegin() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump() // <<

	lit := &literal{flavor: flavStr, heredoc: true, interp: true}
	switch lx.cursor.Peek() {
	case '-':
		lit.dashed = true
		lx.cursor.Bump()
	case '~':
		lit.squiggly = true
		lx.cursor.Bump()
	}

	quote := byte(0)
	if b := lx.cursor.Peek(); b == '\'' || b == '"' || b == '`' {
		quote = b
		lx.cursor.Bump()
	}

	termStart := lx.cursor.Mark()
	if !isIdentStart(lx.cursor.Peek()) && lx.cursor.Peek() < 0x80 {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lit.term = string(lx.cursor.Slice(lx.cursor.SpanFrom(termStart)))

	if quote != 0 {
		if !lx.cursor.Eat(quote) {
			lx.cursor.Reset(start)
			return token.Token{}, false
		}
		lit.interp = quote != '\''
		if quote == '`' {
			lit.flavor = flavXStr
		}
	}

	lx.pendingHeredocs = append(lx.pendingHeredocs, lit)
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: token.HeredocBegin, Span: sp, Text: string(lx.cursor.Slice(sp))}
	if lit.interp {
		tok.Flags |= token.FlagInterpolates
	}
	if lit.squiggly {
		tok.Flags |= token.FlagSquiggly
	}
	if lit.dashed {
		tok.Flags |= token.FlagDashed
	}
	return tok, true
}

// scanLiteralPart produces the next token inside an open literal:
// content, an interpolation marker, a separator, or the closing token.
func (lx *Lexer) scanLiteralPart(lit *literal) token.Token {
	if lit.heredoc && lx.cursor.AtLineStart() {
		if tok, ok := lx.tryHeredocTerminator(lit); ok {
			return tok
		}
	}

	isWords := lit.flavor == flavWords || lit.flavor == flavSymbols
	if isWords {
		if tok, ok := lx.scanWordsSep(lit); ok {
			return tok
		}
	}

	start := lx.cursor.Mark()
	var val strings.Builder

	for !lx.cursor.EOF() {
		if lit.heredoc && lx.cursor.AtLineStart() && lx.heredocTerminatorAhead(lit) {
			break
		}
		b := lx.cursor.Peek()

		if !lit.heredoc {
			if lit.open != 0 && b == lit.open {
				lit.depth++
				val.WriteByte(lx.cursor.Bump())
				continue
			}
			if b == lit.close {
				if lit.depth == 0 {
					break
				}
				lit.depth--
				val.WriteByte(lx.cursor.Bump())
				continue
			}
		}

		if isWords && (b == ' ' || b == '\t' || b == '\n' || b == '\r') {
			break
		}

		if lit.interp && b == '#' {
			if n := lx.cursor.PeekAt(1); n == '{' || n == '@' || n == '$' {
				break
			}
		}

		if b == '\\' {
			lx.scanEscape(&val, lit)
			continue
		}
		val.WriteByte(lx.cursor.Bump())
	}

	if lx.cursor.Off > uint32(start) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.StringContent, Span: sp, Text: val.String()}
	}

	if lx.cursor.EOF() {
		return lx.closeUnterminated(lit)
	}

	b := lx.cursor.Peek()
	if lit.interp && b == '#' {
		if lx.cursor.PeekAt(1) == '{' {
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.pushMode(lexMode{kind: modeInterp})
			sp := lx.cursor.SpanFrom(m)
			return token.Token{Kind: token.EmbExprBegin, Span: sp, Text: "#{"}
		}
		// #@ivar, #@@cvar, #$gvar shorthand.
		m := lx.cursor.Mark()
		lx.cursor.Bump() // '#'
		vstart := lx.cursor.Mark()
		if lx.cursor.Peek() == '@' {
			lx.cursor.Bump()
			lx.cursor.Eat('@')
		} else {
			lx.cursor.Bump() // '$'
		}
		for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(m)
		return token.Token{
			Kind: token.EmbVar,
			Span: sp,
			Text: string(lx.cursor.Slice(lx.cursor.SpanFrom(vstart))),
		}
	}

	// Closing delimiter.
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.popMode()

	if lit.flavor == flavRegexp {
		// Text carries only the trailing flags, not the delimiter.
		fstart := lx.cursor.Mark()
		for isRegexpFlag(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		flags := string(lx.cursor.Slice(lx.cursor.SpanFrom(fstart)))
		return token.Token{Kind: token.RegexpEnd, Span: lx.cursor.SpanFrom(m), Text: flags}
	}
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: token.StringEnd, Span: sp, Text: string(lx.cursor.Slice(sp))}
}

// scanWordsSep consumes whitespace between percent-list elements.
func (lx *Lexer) scanWordsSep(lit *literal) (token.Token, bool) {
	b := lx.cursor.Peek()
	if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b = lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	if lx.cursor.EOF() || (lit.depth == 0 && lx.cursor.Peek() == lit.close) {
		// Trailing whitespace folds into the close; re-dispatch.
		return lx.scanLiteralPart(lit), true
	}
	return token.Token{Kind: token.WordsSep, Span: sp}, true
}

// closeUnterminated reports the unterminated literal once and emits a
// synthetic zero-width end token so parsing can continue.
func (lx *Lexer) closeUnterminated(lit *literal) token.Token {
	sp := lx.EmptySpan()
	if !lit.unterminated {
		lit.unterminated = true
		switch {
		case lit.heredoc:
			lx.errLex(diag.LexUnterminatedHeredoc, sp, "unterminated heredoc; expected `"+lit.term+"`")
		case lit.flavor == flavRegexp:
			lx.errLex(diag.LexUnterminatedRegexp, sp, "unterminated regexp literal")
		case lit.flavor == flavWords || lit.flavor == flavSymbols:
			lx.errLex(diag.LexUnterminatedWordList, sp, "unterminated percent literal")
		default:
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
		}
	}
	lx.popMode()
	kind := token.StringEnd
	if lit.heredoc {
		kind = token.HeredocEnd
	} else if lit.flavor == flavRegexp {
		kind = token.RegexpEnd
	}
	return token.Token{Kind: kind, Span: sp}
}

// heredocTerminatorAhead reports whether the current line is the
// terminator for lit, without moving the cursor.
func (lx *Lexer) heredocTerminatorAhead(lit *literal) bool {
	m := lx.cursor.Mark()
	defer lx.cursor.Reset(m)
	return lx.eatHeredocTerminator(lit)
}

func (lx *Lexer) eatHeredocTerminator(lit *literal) bool {
	if lit.dashed || lit.squiggly {
		for {
			b := lx.cursor.Peek()
			if b != ' ' && b != '\t' {
				break
			}
			lx.cursor.Bump()
		}
	}
	if !lx.cursor.EatStr(lit.term) {
		return false
	}
	b := lx.cursor.Peek()
	return lx.cursor.EOF() || b == '\n' || b == '\r'
}

// tryHeredocTerminator consumes the terminator line and closes the body.
func (lx *Lexer) tryHeredocTerminator(lit *literal) (token.Token, bool) {
	if !lx.heredocTerminatorAhead(lit) {
		return token.Token{}, false
	}
	if lit.dashed || lit.squiggly {
		for {
			b := lx.cursor.Peek()
			if b != ' ' && b != '\t' {
				break
			}
			lx.cursor.Bump()
		}
	}
	start := lx.cursor.Mark()
	lx.cursor.EatStr(lit.term)
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Eat('\r')
	lx.cursor.Eat('\n')
	lx.popMode()
	return token.Token{Kind: token.HeredocEnd, Span: sp, Text: lit.term}, true
}

// scanEscape processes one backslash escape into val. Single-quoted
// literals only honor \\ and the delimiter; regexps keep escapes raw for
// the regexp engine.
func (lx *Lexer) scanEscape(val *strings.Builder, lit *literal) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	if lx.cursor.EOF() {
		val.WriteByte('\\')
		return
	}
	c := lx.cursor.Bump()

	if !lit.interp {
		if c == '\\' || c == lit.close || (lit.open != 0 && c == lit.open) || c == '\'' {
			val.WriteByte(c)
		} else {
			val.WriteByte('\\')
			val.WriteByte(c)
		}
		return
	}
	if lit.flavor == flavRegexp {
		val.WriteByte('\\')
		val.WriteByte(c)
		return
	}

	switch c {
	case 'n':
		val.WriteByte('\n')
	case 't':
		val.WriteByte('\t')
	case 'r':
		val.WriteByte('\r')
	case 's':
		val.WriteByte(' ')
	case 'e':
		val.WriteByte(0x1b)
	case 'a':
		val.WriteByte(0x07)
	case 'b':
		val.WriteByte(0x08)
	case 'f':
		val.WriteByte(0x0c)
	case 'v':
		val.WriteByte(0x0b)
	case '\n':
		// Escaped newline: removed from the value.
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := uint32(c - '0')
		for i := 0; i < 2 && isOctalDigit(lx.cursor.Peek()); i++ {
			n = n*8 + uint32(lx.cursor.Bump()-'0')
		}
		val.WriteByte(byte(n))
	case 'x':
		if !isHexDigit(lx.cursor.Peek()) {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid hex escape")
			return
		}
		n := uint32(0)
		for i := 0; i < 2 && isHexDigit(lx.cursor.Peek()); i++ {
			n = n*16 + hexVal(lx.cursor.Bump())
		}
		val.WriteByte(byte(n))
	case 'u':
		lx.scanUnicodeEscape(val, start)
	default:
		val.WriteByte(c)
	}
}

func (lx *Lexer) scanUnicodeEscape(val *strings.Builder, start Mark) {
	if lx.cursor.Eat('{') {
		for {
			for lx.cursor.Peek() == ' ' {
				lx.cursor.Bump()
			}
			if lx.cursor.Eat('}') {
				return
			}
			if !isHexDigit(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode escape")
				return
			}
			n := uint32(0)
			for isHexDigit(lx.cursor.Peek()) {
				n = n*16 + hexVal(lx.cursor.Bump())
			}
			val.WriteRune(rune(n))
		}
	}
	n := uint32(0)
	for i := 0; i < 4; i++ {
		if !isHexDigit(lx.cursor.Peek()) {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode escape")
			return
		}
		n = n*16 + hexVal(lx.cursor.Bump())
	}
	val.WriteRune(rune(n))
}

func hexVal(b byte) uint32 {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0')
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10
	default:
		return uint32(b-'A') + 10
	}
}

func isRegexpFlag(b byte) bool {
	switch b {
	case 'i', 'm', 'x', 'o', 'u', 'e', 's', 'n':
		return true
	default:
		return false
	}
}

// reportInvalidByte emits a diagnostic for a byte no token can start with.
func (lx *Lexer) reportInvalidByte(sp source.Span) {
	lx.errLex(diag.LexInvalidByte, sp, "invalid byte in source")
}
