package parser

import (
	"slices"

	"fortio.org/safecast"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/lexer"
	"garnet/internal/source"
	"garnet/internal/token"
)

// RubyVersion selects the grammar edition. Version validation against
// user-supplied strings happens at the API boundary, so the parser only
// ever sees a known edition.
type RubyVersion uint8

const (
	Ruby33 RubyVersion = iota
	Ruby34
)

// Options configure one parse.
type Options struct {
	// MaxErrors stops diagnostic reporting past the limit; zero means
	// unlimited. Parsing itself always continues to EOF.
	MaxErrors uint
	Reporter  diag.Reporter
	Version   RubyVersion
	// Scopes seeds the enclosing local-variable scope chain, outermost
	// first, for parsing eval-style fragments.
	Scopes [][]string
	// Filepath is substituted for __FILE__ literals.
	Filepath string
}

func (o *Options) enough(current uint) bool {
	return o.MaxErrors != 0 && current >= o.MaxErrors
}

// Parser holds the state for parsing one file. It consumes the whole
// token stream up front so heredoc bodies can be stitched back next to
// their openers before grammar work starts.
type Parser struct {
	file *source.File
	opts Options

	toks []token.Token
	pos  int

	scope  *scope
	errors uint

	// noDoDepth suppresses do-block attachment while parsing the
	// condition of while/until/for, where do is the body separator.
	noDoDepth int

	// defDepth and blockDepth track enclosing method and block nesting
	// for placement rules (BEGIN blocks, END warnings, returns).
	defDepth   int
	blockDepth int
	classDepth int

	lastSpan source.Span
}

// ParseProgram parses the file into a ProgramNode. The tree is always
// produced; errors surface through the reporter and MissingNodes.
func ParseProgram(file *source.File, lx *lexer.Lexer, opts Options) *ast.ProgramNode {
	p := &Parser{
		file: file,
		opts: opts,
		toks: drain(lx),
	}
	p.toks = inlineHeredocBodies(p.toks)
	p.scope = newScopeChain(opts.Scopes)
	return p.parseProgram()
}

func drain(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes a token of kind k or reports and synthesizes a
// zero-width Missing token at the current position.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.report(code, p.peek().Span, msg)
	return token.Token{Kind: token.Missing, Span: p.hereSpan()}
}

// hereSpan returns a zero-width span at the current token's start.
func (p *Parser) hereSpan() source.Span {
	sp := p.peek().Span
	return source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.errors++
	if p.opts.enough(p.errors) {
		return
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (p *Parser) warn(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}

// missing builds the placeholder node for an expected-but-absent
// construct.
func (p *Parser) missing() *ast.MissingNode {
	return &ast.MissingNode{Base: ast.Base{Loc: p.hereSpan()}}
}

func (p *Parser) missingExpr(msg string) ast.Node {
	p.report(diag.SynExpectExpression, p.peek().Span, msg)
	return p.missing()
}

// atTerminator reports whether the current token ends a statement.
func (p *Parser) atTerminator() bool {
	return p.peek().Terminates()
}

// skipTerminators consumes any run of newlines and semicolons.
func (p *Parser) skipTerminators() {
	for p.atAny(token.Newline, token.Semicolon) {
		p.advance()
	}
}

// skipNewlines consumes newline tokens only, keeping semicolons for the
// caller.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// resync advances until one of the stop kinds, a terminator, or EOF.
// The stopping token is left for the caller.
func (p *Parser) resync(stops ...token.Kind) {
	for !p.at(token.EOF) {
		if p.atTerminator() || slices.Contains(stops, p.peek().Kind) {
			return
		}
		p.advance()
	}
}

// spanFrom covers from a start span through the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func spanOf(n ast.Node) source.Span {
	return n.Span()
}

func (p *Parser) parseProgram() *ast.ProgramNode {
	start := p.peek().Span
	stmts := p.parseStatements(stopAtEOF)
	if !p.at(token.EOF) {
		p.report(diag.SynUnexpectedToken, p.peek().Span,
			"unexpected "+p.peek().Kind.String()+", expected end of input")
	}
	end, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		end = p.lastSpan.End
	}
	full := source.Span{File: start.File, Start: 0, End: end}
	return &ast.ProgramNode{
		Base:       ast.Base{Loc: full},
		Statements: stmts,
	}
}
