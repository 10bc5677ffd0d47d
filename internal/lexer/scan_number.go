package lexer

import (
	"garnet/internal/diag"
	"garnet/internal/token"
)

// scanNumber lexes integer, float, rational, and imaginary literals,
// including 0x/0o/0b/0d prefixes and digit underscores.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.Integer

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.scanDigitRun(isHexDigit)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.scanDigitRun(func(b byte) bool { return b == '0' || b == '1' })
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.scanDigitRun(isOctalDigit)
		case 'd', 'D':
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.scanDigitRun(isDigit)
		default:
			if isOctalDigit(lx.cursor.PeekAt(1)) || lx.cursor.PeekAt(1) == '_' {
				// Bare leading zero: octal.
				lx.cursor.Bump()
				lx.scanDigitRun(isOctalDigit)
			} else {
				kind = lx.scanDecimal()
			}
		}
	} else {
		kind = lx.scanDecimal()
	}

	kind = lx.scanNumericSuffix(kind)
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.cursor.Slice(sp))
	if len(text) > 0 && text[len(text)-1] == '_' {
		lx.errLex(diag.LexBadNumber, sp, "trailing underscore in number")
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) scanDecimal() token.Kind {
	kind := token.Integer
	lx.scanDigitRun(isDigit)
	// Fraction only when a digit follows the dot; `1.to_s` keeps the dot.
	if lx.cursor.Peek() == '.' && isDigit(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.scanDigitRun(isDigit)
		kind = token.Float
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		n := uint32(1)
		if nb := lx.cursor.PeekAt(1); nb == '+' || nb == '-' {
			n = 2
		}
		if isDigit(lx.cursor.PeekAt(n)) {
			for i := uint32(0); i < n; i++ {
				lx.cursor.Bump()
			}
			lx.scanDigitRun(isDigit)
			kind = token.Float
		}
	}
	return kind
}

// scanNumericSuffix handles the r (rational) and i (imaginary) suffixes.
// `ri` is imaginary: (1/1)i.
func (lx *Lexer) scanNumericSuffix(kind token.Kind) token.Kind {
	if lx.cursor.Peek() == 'r' && !isIdentCont(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		kind = token.Rational
	} else if lx.cursor.Peek() == 'r' && lx.cursor.PeekAt(1) == 'i' && !isIdentCont(lx.cursor.PeekAt(2)) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return token.Imaginary
	}
	if lx.cursor.Peek() == 'i' && !isIdentCont(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		kind = token.Imaginary
	}
	return kind
}

func (lx *Lexer) scanDigitRun(valid func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if valid(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '_' && valid(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		return
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}
