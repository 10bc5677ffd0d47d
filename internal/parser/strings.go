package parser

import (
	"strings"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/token"
)

// parseStringLiteral parses the parts between a StringBegin and its
// StringEnd. A literal with no interpolation collapses to a plain
// StringNode.
func (p *Parser) parseStringLiteral(begin token.Token) ast.Node {
	parts := p.parseLiteralParts(token.StringEnd)
	p.expect(token.StringEnd, diag.SynExpectDelimiter, "unterminated string literal")
	sp := p.spanFrom(begin.Span)

	if text, plain := plainText(parts); plain {
		return &ast.StringNode{Base: ast.Base{Loc: sp}, Unescaped: text}
	}
	return &ast.InterpolatedStringNode{Base: ast.Base{Loc: sp}, Parts: parts}
}

// parseStringConcat folds adjacent string literals into one
// interpolated node, matching the juxtaposition rule.
func (p *Parser) parseStringConcat(first ast.Node) ast.Node {
	if !p.atAny(token.StringBegin, token.HeredocBegin) {
		return first
	}
	parts := concatParts(nil, first)
	for {
		var next ast.Node
		switch p.peek().Kind {
		case token.StringBegin:
			next = p.parseStringLiteral(p.advance())
		case token.HeredocBegin:
			next = p.parseHeredoc(p.advance())
		default:
			sp := first.Span().Cover(parts[len(parts)-1].Span())
			return &ast.InterpolatedStringNode{Base: ast.Base{Loc: sp}, Parts: parts}
		}
		parts = concatParts(parts, next)
	}
}

func concatParts(parts []ast.Node, n ast.Node) []ast.Node {
	switch lit := n.(type) {
	case *ast.InterpolatedStringNode:
		return append(parts, lit.Parts...)
	default:
		return append(parts, n)
	}
}

// parseXStringLiteral parses a backtick or %x command literal.
func (p *Parser) parseXStringLiteral(begin token.Token) ast.Node {
	parts := p.parseLiteralParts(token.StringEnd)
	p.expect(token.StringEnd, diag.SynExpectDelimiter, "unterminated command literal")
	sp := p.spanFrom(begin.Span)

	if text, plain := plainText(parts); plain {
		return &ast.XStringNode{Base: ast.Base{Loc: sp}, Unescaped: text}
	}
	return &ast.InterpolatedXStringNode{Base: ast.Base{Loc: sp}, Parts: parts}
}

// parseSymbolLiteral parses the quoted symbol forms :"..." and %s.
func (p *Parser) parseSymbolLiteral(begin token.Token) ast.Node {
	parts := p.parseLiteralParts(token.StringEnd)
	p.expect(token.StringEnd, diag.SynExpectDelimiter, "unterminated symbol literal")
	sp := p.spanFrom(begin.Span)

	if text, plain := plainText(parts); plain {
		return &ast.SymbolNode{Base: ast.Base{Loc: sp}, Unescaped: text}
	}
	return &ast.InterpolatedSymbolNode{Base: ast.Base{Loc: sp}, Parts: parts}
}

// parseRegexpLiteral parses a / or %r literal; the closing token's Text
// carries the option letters.
func (p *Parser) parseRegexpLiteral(begin token.Token) ast.Node {
	parts := p.parseLiteralParts(token.RegexpEnd)
	end := p.expect(token.RegexpEnd, diag.SynExpectDelimiter, "unterminated regular expression")
	sp := p.spanFrom(begin.Span)
	flags := p.regexpFlags(end)

	if text, plain := plainText(parts); plain {
		return &ast.RegularExpressionNode{
			Base:      ast.Base{Loc: sp},
			Unescaped: text,
			Flags:     flags,
		}
	}
	return &ast.InterpolatedRegularExpressionNode{
		Base:  ast.Base{Loc: sp},
		Parts: parts,
		Flags: flags,
	}
}

func (p *Parser) regexpFlags(end token.Token) ast.RegexpFlags {
	var flags ast.RegexpFlags
	for _, c := range end.Text {
		switch c {
		case 'i':
			flags |= ast.RegexpIgnoreCase
		case 'm':
			flags |= ast.RegexpMultiline
		case 'x':
			flags |= ast.RegexpExtended
		case 'o':
			flags |= ast.RegexpOnce
		default:
			p.report(diag.SynUnknownRegexpFlag, end.Span,
				"unknown regexp option `"+string(c)+"`")
		}
	}
	return flags
}

// parseWordList parses %w/%W/%i/%I lists into an ArrayNode. Elements
// are separated by WordsSep tokens; an element with interpolation
// becomes an interpolated node.
func (p *Parser) parseWordList(begin token.Token, symbols bool) ast.Node {
	var elements []ast.Node
	var pending []ast.Node

	flush := func() {
		if len(pending) == 0 {
			return
		}
		sp := pending[0].Span().Cover(pending[len(pending)-1].Span())
		if text, plain := plainText(pending); plain {
			if symbols {
				elements = append(elements, &ast.SymbolNode{Base: ast.Base{Loc: sp}, Unescaped: text})
			} else {
				elements = append(elements, &ast.StringNode{Base: ast.Base{Loc: sp}, Unescaped: text})
			}
		} else if symbols {
			elements = append(elements, &ast.InterpolatedSymbolNode{Base: ast.Base{Loc: sp}, Parts: pending})
		} else {
			elements = append(elements, &ast.InterpolatedStringNode{Base: ast.Base{Loc: sp}, Parts: pending})
		}
		pending = nil
	}

	for !p.atAny(token.StringEnd, token.EOF) {
		if _, ok := p.accept(token.WordsSep); ok {
			flush()
			continue
		}
		part := p.parseLiteralPart()
		if part == nil {
			break
		}
		pending = append(pending, part)
	}
	flush()
	p.expect(token.StringEnd, diag.SynExpectDelimiter, "unterminated percent list")

	return &ast.ArrayNode{
		Base:     ast.Base{Loc: p.spanFrom(begin.Span)},
		Elements: elements,
	}
}

// parseHeredoc parses the body tokens that were spliced in after the
// opener. Squiggly heredocs dedent their content by the shallowest
// line indentation.
func (p *Parser) parseHeredoc(begin token.Token) ast.Node {
	parts := p.parseLiteralParts(token.HeredocEnd)
	p.expect(token.HeredocEnd, diag.SynExpectDelimiter, "unterminated heredoc")
	sp := p.spanFrom(begin.Span)

	if begin.Flags&token.FlagSquiggly != 0 {
		dedentParts(parts)
	}
	if strings.Contains(begin.Text, "`") {
		if text, plain := plainText(parts); plain {
			return &ast.XStringNode{Base: ast.Base{Loc: sp}, Unescaped: text}
		}
		return &ast.InterpolatedXStringNode{Base: ast.Base{Loc: sp}, Parts: parts}
	}
	if text, plain := plainText(parts); plain {
		return &ast.StringNode{Base: ast.Base{Loc: sp}, Unescaped: text}
	}
	return &ast.InterpolatedStringNode{Base: ast.Base{Loc: sp}, Parts: parts}
}

// parseLiteralParts collects string parts until the end kind, EOF, or
// an unexpected token.
func (p *Parser) parseLiteralParts(end token.Kind) []ast.Node {
	var parts []ast.Node
	for !p.atAny(end, token.EOF) {
		part := p.parseLiteralPart()
		if part == nil {
			return parts
		}
		parts = append(parts, part)
	}
	return parts
}

// parseLiteralPart parses one content, #{...}, or #@var part. Returns
// nil on a token that cannot be part of a literal.
func (p *Parser) parseLiteralPart() ast.Node {
	switch t := p.peek(); t.Kind {
	case token.StringContent:
		p.advance()
		return &ast.StringNode{Base: ast.Base{Loc: t.Span}, Unescaped: t.Text}
	case token.EmbExprBegin:
		p.advance()
		p.skipTerminators()
		var stmts *ast.StatementsNode
		if !p.at(token.EmbExprEnd) {
			stmts = p.parseStatements(stopAt(token.EmbExprEnd))
		}
		p.expect(token.EmbExprEnd, diag.SynExpectDelimiter, "unterminated interpolation")
		return &ast.EmbeddedStatementsNode{
			Base:       ast.Base{Loc: p.spanFrom(t.Span)},
			Statements: stmts,
		}
	case token.EmbVar:
		p.advance()
		return &ast.EmbeddedVariableNode{
			Base:     ast.Base{Loc: t.Span},
			Variable: p.embeddedVariableRead(t),
		}
	default:
		p.report(diag.SynUnexpectedToken, t.Span,
			"unexpected "+t.Kind.String()+" inside literal")
		p.advance()
		return nil
	}
}

// embeddedVariableRead builds the read node for the #@ivar shorthand
// from the token text's sigil.
func (p *Parser) embeddedVariableRead(t token.Token) ast.Node {
	base := ast.Base{Loc: t.Span}
	switch {
	case strings.HasPrefix(t.Text, "@@"):
		return &ast.ClassVariableReadNode{Base: base, Name: t.Text}
	case strings.HasPrefix(t.Text, "@"):
		return &ast.InstanceVariableReadNode{Base: base, Name: t.Text}
	default:
		return &ast.GlobalVariableReadNode{Base: base, Name: t.Text}
	}
}

// plainText reports whether parts are all plain string content and
// returns their concatenation.
func plainText(parts []ast.Node) (string, bool) {
	if len(parts) == 0 {
		return "", true
	}
	var b strings.Builder
	for _, part := range parts {
		s, ok := part.(*ast.StringNode)
		if !ok {
			return "", false
		}
		b.WriteString(s.Unescaped)
	}
	return b.String(), true
}

// dedentParts strips the common leading whitespace of a squiggly
// heredoc from every line start in the content parts. Tab stops are
// eight columns wide, matching the runtime.
func dedentParts(parts []ast.Node) {
	common := -1
	atLineStart := true
	for _, part := range parts {
		s, ok := part.(*ast.StringNode)
		if !ok {
			atLineStart = false
			continue
		}
		for _, line := range splitKeepNewlines(s.Unescaped) {
			if atLineStart && strings.TrimSpace(line) != "" {
				w := indentWidth(line)
				if common < 0 || w < common {
					common = w
				}
			}
			atLineStart = strings.HasSuffix(line, "\n")
		}
	}
	if common <= 0 {
		return
	}

	atLineStart = true
	for _, part := range parts {
		s, ok := part.(*ast.StringNode)
		if !ok {
			atLineStart = false
			continue
		}
		var b strings.Builder
		for _, line := range splitKeepNewlines(s.Unescaped) {
			if atLineStart {
				line = stripIndent(line, common)
			}
			b.WriteString(line)
			atLineStart = strings.HasSuffix(line, "\n")
		}
		s.Unescaped = b.String()
	}
}

func splitKeepNewlines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// indentWidth measures leading whitespace in columns.
func indentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w = (w/8 + 1) * 8
		default:
			return w
		}
	}
	return w
}

// stripIndent removes up to width columns of leading whitespace.
func stripIndent(line string, width int) string {
	w := 0
	for i := 0; i < len(line); i++ {
		if w >= width {
			return line[i:]
		}
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w = (w/8 + 1) * 8
		default:
			return line[i:]
		}
	}
	return ""
}
