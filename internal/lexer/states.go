package lexer

// litFlavor says what kind of literal a literal mode is lexing.
type litFlavor uint8

const (
	flavStr litFlavor = iota
	flavXStr
	flavSym
	flavRegexp
	flavWords   // %w / %W
	flavSymbols // %i / %I
)

// literal is one entry of the lexer's literal-mode state. Strings,
// regexps, symbols, percent lists, and heredoc bodies all lex through
// the same machinery; only the delimiters and escape rules differ.
type literal struct {
	flavor litFlavor
	open   byte // 0 for heredocs and same-delimiter literals
	close  byte
	depth  int  // nesting of open/close inside bracket-paired literals
	interp bool // #{...}, #@var allowed

	// Heredoc fields.
	heredoc  bool
	term     string
	squiggly bool
	dashed   bool

	unterminated bool // diagnostic already reported
}

// modeKind distinguishes literal lexing from expression lexing pushed by
// an interpolation.
type modeKind uint8

const (
	modeLiteral modeKind = iota
	modeInterp
)

// lexMode is one entry of the explicit mode stack. Interpolation pushes
// a modeInterp entry; its braceDepth tracks nested `{` so the closing
// `}` of `#{...}` is recognized correctly.
type lexMode struct {
	kind       modeKind
	lit        *literal
	braceDepth int
}

func bracketClose(open byte) (byte, bool) {
	switch open {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	case '<':
		return '>', true
	default:
		return 0, false
	}
}
