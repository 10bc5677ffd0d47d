package lexer

import (
	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

// Lexer converts one source file into a lazy token stream. It never
// aborts: malformed input produces Invalid tokens plus diagnostics and
// lexing continues to end of input. A fresh Lexer over the same file
// restarts the sequence from the beginning.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	look []token.Token // lookahead buffer for Peek/PeekN

	modes    []lexMode
	lastKind token.Kind
	started  bool
	sawSpace bool

	parenDepth   int
	bracketDepth int

	pendingHeredocs []*literal
	owedNewline     *source.Span

	comments []token.Comment

	// dataOffset is the offset just past "__END__\n", or 0 with
	// hasData=false when the marker never appeared.
	dataOffset uint32
	hasData    bool
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		lastKind: token.Newline,
	}
}

// Next returns the next significant token. After EOF it returns EOF
// forever.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		copy(lx.look, lx.look[1:])
		lx.look = lx.look[:len(lx.look)-1]
		return tok
	}
	return lx.scan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekN(0)
}

// PeekN returns the token n positions ahead without consuming anything.
func (lx *Lexer) PeekN(n int) token.Token {
	for len(lx.look) <= n {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[n]
}

// Comments returns the side-channel comments collected so far, in
// source order.
func (lx *Lexer) Comments() []token.Comment {
	return lx.comments
}

// DataOffset returns the byte offset of the content following a
// top-level __END__ line, if one was seen.
func (lx *Lexer) DataOffset() (uint32, bool) {
	return lx.dataOffset, lx.hasData
}

// EmptySpan returns a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scan() token.Token {
	tok := lx.scanNext()
	lx.lastKind = tok.Kind
	lx.started = true
	return tok
}

func (lx *Lexer) topMode() *lexMode {
	if len(lx.modes) == 0 {
		return nil
	}
	return &lx.modes[len(lx.modes)-1]
}

func (lx *Lexer) pushMode(m lexMode) {
	lx.modes = append(lx.modes, m)
}

func (lx *Lexer) popMode() {
	lx.modes = lx.modes[:len(lx.modes)-1]
}

func (lx *Lexer) scanNext() token.Token {
	if top := lx.topMode(); top != nil && top.kind == modeLiteral {
		return lx.scanLiteralPart(top.lit)
	}
	if lx.owedNewline != nil && len(lx.modes) == 0 {
		sp := *lx.owedNewline
		lx.owedNewline = nil
		return token.Token{Kind: token.Newline, Span: sp, Text: "\n"}
	}

	lx.sawSpace = false
	for {
		if lx.cursor.EOF() {
			return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
		}
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			lx.cursor.Bump()
			lx.sawSpace = true
			continue
		}

		// Line continuation.
		if b == '\\' && lx.cursor.PeekAt(1) == '\n' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.sawSpace = true
			continue
		}

		if b == '#' {
			lx.scanInlineComment()
			continue
		}

		if b == '=' && lx.cursor.AtLineStart() && lx.atEmbDocBegin() {
			lx.scanEmbDoc()
			continue
		}

		if b == '_' && lx.cursor.AtLineStart() && lx.atEndMarker() {
			lx.consumeEndMarker()
			return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
		}

		if b == '\n' {
			if tok, ok := lx.handleNewline(); ok {
				return tok
			}
			continue
		}

		break
	}

	// Closing brace of an interpolation.
	if top := lx.topMode(); top != nil && top.kind == modeInterp && lx.cursor.Peek() == '}' && top.braceDepth == 0 {
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.popMode()
		return token.Token{Kind: token.EmbExprEnd, Span: lx.cursor.SpanFrom(start), Text: "}"}
	}

	b := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStart(b):
		tok = lx.scanIdentOrKeyword()
	case b >= 0x80:
		if n := source.ValidUTF8Prefix(lx.file.Content[:lx.cursor.Limit], lx.cursor.Off); n == 0 {
			tok = lx.scanInvalidBytes()
		} else {
			tok = lx.scanIdentOrKeyword()
		}
	case isDigit(b):
		tok = lx.scanNumber()
	case b == '@':
		tok = lx.scanIVarOrCVar()
	case b == '$':
		tok = lx.scanGVar()
	default:
		tok = lx.scanOperatorOrPunct()
	}
	if lx.sawSpace {
		tok.Flags |= token.FlagSpaceBefore
	}
	return tok
}

// handleNewline consumes the '\n' and decides whether to emit a Newline
// token, start pending heredoc bodies, or swallow the line break.
func (lx *Lexer) handleNewline() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)

	if len(lx.pendingHeredocs) > 0 {
		if lx.newlineSignificant() {
			owed := sp
			lx.owedNewline = &owed
		}
		// First heredoc body lexes first: push in reverse.
		for i := len(lx.pendingHeredocs) - 1; i >= 0; i-- {
			lx.pushMode(lexMode{kind: modeLiteral, lit: lx.pendingHeredocs[i]})
		}
		lx.pendingHeredocs = lx.pendingHeredocs[:0]
		top := lx.topMode()
		return lx.scanLiteralPart(top.lit), true
	}

	if lx.newlineSignificant() {
		return token.Token{Kind: token.Newline, Span: sp, Text: "\n"}, true
	}
	return token.Token{}, false
}

// newlineSignificant reports whether a line break terminates a statement
// given the preceding token and bracket depth.
func (lx *Lexer) newlineSignificant() bool {
	if !lx.started {
		return false
	}
	if lx.parenDepth > 0 || lx.bracketDepth > 0 {
		return false
	}
	switch lx.lastKind {
	case token.Newline, token.Semicolon:
		return false
	case token.Plus, token.Minus, token.Star, token.Star2, token.Slash,
		token.Percent, token.Caret, token.Amp, token.Amp2, token.AmpDot,
		token.Pipe, token.Pipe2, token.EqEq, token.EqEqEq, token.BangEq,
		token.EqTilde, token.BangTilde, token.Lt, token.LtEq, token.Gt,
		token.GtEq, token.Spaceship, token.Shl, token.Shr,
		token.UPlus, token.UMinus, token.UStar, token.UStar2, token.UAmp,
		token.Assign, token.OpAssign, token.FatArrow, token.Arrow,
		token.Comma, token.Dot, token.ColonColon, token.Question,
		token.Colon, token.LParen, token.LBracket, token.LBracketIdx,
		token.LBrace, token.Dot2, token.Dot3, token.Tilde, token.Bang,
		token.EmbExprBegin, token.Label:
		return false
	case token.KwAnd, token.KwOr, token.KwNot, token.KwIf, token.KwUnless,
		token.KwWhile, token.KwUntil, token.KwRescue, token.KwCase:
		return false
	default:
		return true
	}
}

// exprBeg reports whether the lexer sits where an expression may begin,
// which disambiguates unary operators, regexps, percent literals, and
// heredocs from their binary readings.
func (lx *Lexer) exprBeg() bool {
	if !lx.started {
		return true
	}
	switch lx.lastKind {
	case token.Newline, token.Semicolon, token.LParen, token.LBracket,
		token.LBracketIdx, token.LBrace, token.Comma, token.Assign,
		token.OpAssign, token.FatArrow, token.Question, token.Colon,
		token.Pipe, token.Pipe2, token.Amp2, token.Bang, token.Tilde,
		token.EqEq, token.EqEqEq, token.BangEq, token.EqTilde,
		token.BangTilde, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.Spaceship, token.Plus, token.Minus, token.Star, token.Star2,
		token.Slash, token.Percent, token.Caret, token.Amp, token.Shl,
		token.Shr, token.UPlus, token.UMinus, token.UStar, token.UStar2,
		token.UAmp, token.Dot2, token.Dot3, token.EmbExprBegin,
		token.Label, token.WordsSep, token.Arrow:
		return true
	case token.KwAnd, token.KwOr, token.KwNot, token.KwIf, token.KwUnless,
		token.KwWhile, token.KwUntil, token.KwCase, token.KwWhen,
		token.KwIn, token.KwThen, token.KwElse, token.KwElsif, token.KwDo,
		token.KwBegin, token.KwEnsure, token.KwRescue, token.KwReturn,
		token.KwBreak, token.KwNext, token.KwYield:
		return true
	default:
		return false
	}
}

// argBeg reports the `a -b` / `foo *args` situation: whitespace before
// the operator, none after, following a name. Ruby reads the operator as
// a unary prefix of a command argument there.
func (lx *Lexer) argBeg() bool {
	if !lx.sawSpace {
		return false
	}
	switch lx.lastKind {
	case token.Ident, token.Constant:
		return true
	default:
		return false
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}

// scanInvalidBytes consumes a maximal run of invalid UTF-8 bytes into a
// single Invalid token with one diagnostic.
func (lx *Lexer) scanInvalidBytes() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() >= 0x80 {
		if source.ValidUTF8Prefix(lx.file.Content[:lx.cursor.Limit], lx.cursor.Off) > 0 {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexInvalidByte, sp, "invalid UTF-8 byte sequence")
	return token.Token{Kind: token.Invalid, Span: sp}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b >= 0x80
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
