package token

// Kind identifies a lexical token class.
type Kind uint16

const (
	// EOF marks the end of input. The lexer returns it forever once reached.
	EOF Kind = iota
	// Invalid covers byte runs the lexer could not form a token from.
	Invalid
	// Missing is a zero-width token synthesized during error recovery.
	Missing

	// Newline is a significant statement-terminating line break.
	Newline
	Semicolon

	// Identifier families.
	Ident    // local variable or method name
	Constant // leading-uppercase name
	IVar     // @foo
	CVar     // @@foo
	GVar     // $foo
	BackRef  // $&, $', $`, $+
	NthRef   // $1, $2, ...
	Label    // foo: in hash literals and keyword arguments

	// Literals.
	Integer
	Float
	Rational  // 3r, 1.5r
	Imaginary // 3i, 1.5i
	CharLit   // ?a

	// String machinery. A string literal is Begin, zero or more
	// Content/EmbExprBegin.../EmbExprEnd/EmbVar parts, then End.
	StringBegin
	StringContent
	StringEnd
	XStringBegin // `cmd` or %x{...}
	EmbExprBegin // #{
	EmbExprEnd   // } closing an interpolation
	EmbVar       // # before @ivar/@@cvar/$gvar inside a literal

	Symbol      // :foo, :+, :[]=
	SymbolBegin // :" or :' or %s{
	RegexpBegin // / or %r{
	RegexpEnd   // closing delimiter; Text carries trailing flags

	WordsBegin   // %w{ or %W{
	SymbolsBegin // %i{ or %I{
	WordsSep     // whitespace between percent-list elements

	HeredocBegin // <<TERM, <<-TERM, <<~TERM
	HeredocEnd   // terminator line

	// Operators and punctuation.
	Plus
	Minus
	Star
	Star2 // **
	Slash
	Percent
	UPlus  // unary +
	UMinus // unary -
	UStar  // splat *
	UStar2 // keyword splat **
	UAmp   // block-pass &
	Caret
	Amp
	Amp2   // &&
	AmpDot // &.
	Pipe
	Pipe2 // ||
	Tilde
	Bang
	BangEq
	BangTilde // !~
	Assign    // =
	OpAssign  // +=, -=, ||=, <<=, ...; Text carries the operator
	EqEq
	EqEqEq
	FatArrow  // =>
	EqTilde   // =~
	Lt
	LtEq
	Spaceship // <=>
	Shl       // <<
	Gt
	GtEq
	Shr // >>
	Dot
	Dot2 // ..
	Dot3 // ...
	Colon
	ColonColon
	Comma
	Question
	Arrow // ->
	LParen
	RParen
	LBracket    // [ starting an array literal
	LBracketIdx // [ directly after a receiver (indexing)
	RBracket
	LBrace
	RBrace

	// Keywords.
	KwAlias
	KwAnd
	KwBegin
	KwBEGIN
	KwBreak
	KwCase
	KwClass
	KwDef
	KwDefined
	KwDo
	KwElse
	KwElsif
	KwEnd
	KwEND
	KwEnsure
	KwFalse
	KwFor
	KwIf
	KwIn
	KwModule
	KwNext
	KwNil
	KwNot
	KwOr
	KwRedo
	KwRescue
	KwRetry
	KwReturn
	KwSelf
	KwSuper
	KwThen
	KwTrue
	KwUndef
	KwUnless
	KwUntil
	KwWhen
	KwWhile
	KwYield
	KwFile     // __FILE__
	KwLine     // __LINE__
	KwEncoding // __ENCODING__

	kindCount
)

var kindNames = map[Kind]string{
	EOF: "EOF", Invalid: "Invalid", Missing: "Missing",
	Newline: "Newline", Semicolon: "Semicolon",
	Ident: "Ident", Constant: "Constant", IVar: "IVar", CVar: "CVar",
	GVar: "GVar", BackRef: "BackRef", NthRef: "NthRef", Label: "Label",
	Integer: "Integer", Float: "Float", Rational: "Rational",
	Imaginary: "Imaginary", CharLit: "CharLit",
	StringBegin: "StringBegin", StringContent: "StringContent",
	StringEnd: "StringEnd", XStringBegin: "XStringBegin",
	EmbExprBegin: "EmbExprBegin", EmbExprEnd: "EmbExprEnd", EmbVar: "EmbVar",
	Symbol: "Symbol", SymbolBegin: "SymbolBegin",
	RegexpBegin: "RegexpBegin", RegexpEnd: "RegexpEnd",
	WordsBegin: "WordsBegin", SymbolsBegin: "SymbolsBegin", WordsSep: "WordsSep",
	HeredocBegin: "HeredocBegin", HeredocEnd: "HeredocEnd",
	Plus: "Plus", Minus: "Minus", Star: "Star", Star2: "Star2",
	Slash: "Slash", Percent: "Percent", UPlus: "UPlus", UMinus: "UMinus",
	UStar: "UStar", UStar2: "UStar2", UAmp: "UAmp",
	Caret: "Caret", Amp: "Amp", Amp2: "Amp2", AmpDot: "AmpDot",
	Pipe: "Pipe", Pipe2: "Pipe2", Tilde: "Tilde", Bang: "Bang",
	BangEq: "BangEq", BangTilde: "BangTilde", Assign: "Assign",
	OpAssign: "OpAssign", EqEq: "EqEq", EqEqEq: "EqEqEq",
	FatArrow: "FatArrow", EqTilde: "EqTilde", Lt: "Lt", LtEq: "LtEq",
	Spaceship: "Spaceship", Shl: "Shl", Gt: "Gt", GtEq: "GtEq", Shr: "Shr",
	Dot: "Dot", Dot2: "Dot2", Dot3: "Dot3", Colon: "Colon",
	ColonColon: "ColonColon", Comma: "Comma", Question: "Question",
	Arrow: "Arrow", LParen: "LParen", RParen: "RParen",
	LBracket: "LBracket", LBracketIdx: "LBracketIdx", RBracket: "RBracket",
	LBrace: "LBrace", RBrace: "RBrace",
	KwAlias: "alias", KwAnd: "and", KwBegin: "begin", KwBEGIN: "BEGIN",
	KwBreak: "break", KwCase: "case", KwClass: "class", KwDef: "def",
	KwDefined: "defined?", KwDo: "do", KwElse: "else", KwElsif: "elsif",
	KwEnd: "end", KwEND: "END", KwEnsure: "ensure", KwFalse: "false",
	KwFor: "for", KwIf: "if", KwIn: "in", KwModule: "module",
	KwNext: "next", KwNil: "nil", KwNot: "not", KwOr: "or", KwRedo: "redo",
	KwRescue: "rescue", KwRetry: "retry", KwReturn: "return",
	KwSelf: "self", KwSuper: "super", KwThen: "then", KwTrue: "true",
	KwUndef: "undef", KwUnless: "unless", KwUntil: "until", KwWhen: "when",
	KwWhile: "while", KwYield: "yield",
	KwFile: "__FILE__", KwLine: "__LINE__", KwEncoding: "__ENCODING__",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
