package diag

import (
	"fmt"
)

// Code identifies a diagnostic class. Lexical codes live in the 1xxx
// range, syntax codes in the 2xxx range, warnings in 3xxx.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInvalidByte          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedRegexp   Code = 1003
	LexUnterminatedHeredoc  Code = 1004
	LexUnterminatedEmbDoc   Code = 1005
	LexBadNumber            Code = 1006
	LexBadEscape            Code = 1007
	LexUnknownEncoding      Code = 1008
	LexUnterminatedEmbExpr  Code = 1009
	LexUnterminatedWordList Code = 1010
	LexBadPercentDelimiter  Code = 1011

	// Syntax.
	SynUnexpectedToken     Code = 2001
	SynExpectExpression    Code = 2002
	SynExpectIdentifier    Code = 2003
	SynExpectConstant      Code = 2004
	SynExpectEnd           Code = 2005
	SynExpectThen          Code = 2006
	SynExpectDo            Code = 2007
	SynExpectDelimiter     Code = 2008
	SynExpectMethodName    Code = 2009
	SynExpectParameter     Code = 2010
	SynExpectPattern       Code = 2011
	SynExpectWhen          Code = 2012
	SynExpectRescueClass   Code = 2013
	SynExpectAssignTarget  Code = 2014
	SynExpectArgument      Code = 2015
	SynExpectSuperclass    Code = 2016
	SynUnexpectedTopLevel  Code = 2017
	SynVoidValueExpression Code = 2018
	SynDuplicateParameter  Code = 2019
	SynNumberedInOrdinary  Code = 2020
	SynItOutsideBlock      Code = 2021
	SynTopLevelReturn      Code = 2022
	SynBeginBlockPlacement Code = 2023
	SynEndlessSetterDef    Code = 2024
	SynUnknownRegexpFlag   Code = 2025
	SynInvalidForwarding   Code = 2026

	// Warnings.
	WarnAmbiguousSlash    Code = 3001
	WarnAmbiguousPrefix   Code = 3002
	WarnUnusedLiteral     Code = 3003
	WarnDeprecatedSyntax  Code = 3004
	WarnShadowedParameter Code = 3005
	WarnEndInMethod       Code = 3006
)

func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("L%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("S%04d", uint16(c))
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("W%04d", uint16(c))
	default:
		return fmt.Sprintf("D%04d", uint16(c))
	}
}
