package parser

import (
	"garnet/internal/token"
)

// Binding powers, low to high. Modifier keywords and assignment are
// dispatched outside the Pratt loop; everything here feeds
// parseExpressionPrec directly.
const (
	precNone = iota
	precComposition // and, or, not
	precAssign      // = and op=
	precModifierRescue
	precTernary
	precRange
	precLogicalOr  // ||
	precLogicalAnd // &&
	precDefined
	precEquality   // <=> == === != =~ !~
	precComparison // < <= > >=
	precBitOr      // | ^
	precBitAnd     // &
	precShift      // << >>
	precAdditive   // + -
	precMultiplicative
	precUnaryMinus
	precPower // ** (right associative)
	precUnary // ! ~ unary +
	precMax
)

// binaryPrec returns the binding power of k as an infix operator, and
// whether it associates to the right. Zero means not an infix operator.
func binaryPrec(k token.Kind) (int, bool) {
	switch k {
	case token.KwAnd, token.KwOr:
		return precComposition, false
	case token.Question:
		return precTernary, true
	case token.Dot2, token.Dot3:
		return precRange, false
	case token.Pipe2:
		return precLogicalOr, false
	case token.Amp2:
		return precLogicalAnd, false
	case token.Spaceship, token.EqEq, token.EqEqEq, token.BangEq,
		token.EqTilde, token.BangTilde:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Pipe, token.Caret:
		return precBitOr, false
	case token.Amp:
		return precBitAnd, false
	case token.Shl, token.Shr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.Star2:
		return precPower, true
	default:
		return precNone, false
	}
}

// methodOperators are the tokens that double as definable method names
// after def, dot, undef, and alias.
func isOperatorMethodToken(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.Star2, token.Slash,
		token.Percent, token.UPlus, token.UMinus, token.UStar, token.UStar2,
		token.Caret, token.Amp, token.Pipe, token.Tilde, token.Bang,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.Spaceship,
		token.EqEq, token.EqEqEq, token.BangEq, token.EqTilde,
		token.BangTilde, token.Shl, token.Shr, token.LBracket,
		token.LBracketIdx:
		return true
	default:
		return false
	}
}

// operatorMethodName maps an operator token to its method name,
// consuming the extra tokens of []= and [] forms at the call site.
func operatorMethodName(t token.Token) string {
	switch t.Kind {
	case token.UPlus:
		return "+@"
	case token.UMinus:
		return "-@"
	case token.UStar:
		return "*"
	case token.UStar2:
		return "**"
	case token.LBracket, token.LBracketIdx:
		return "[" // caller completes [] or []=
	default:
		return t.Text
	}
}
