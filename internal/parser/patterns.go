package parser

import (
	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

// parsePattern parses a case/in or => pattern: alternation over
// capture over primary patterns.
func (p *Parser) parsePattern() ast.Node {
	left := p.parseCapturePattern()
	for p.at(token.Pipe) {
		p.advance()
		p.skipNewlines()
		right := p.parseCapturePattern()
		left = &ast.AlternationPatternNode{
			Base:  ast.Base{Loc: left.Span().Cover(right.Span())},
			Left:  left,
			Right: right,
		}
	}
	return left
}

// parseCapturePattern handles the `pattern => name` binding form.
func (p *Parser) parseCapturePattern() ast.Node {
	value := p.parsePrimaryPattern()
	for p.at(token.FatArrow) {
		p.advance()
		name := p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected a variable name after `=>` in pattern")
		var target *ast.LocalVariableTargetNode
		sp := value.Span().Cover(p.lastSpan)
		if name.Kind != token.Missing {
			p.declare(name.Text)
			target = &ast.LocalVariableTargetNode{
				Base: ast.Base{Loc: name.Span},
				Name: name.Text,
			}
			sp = value.Span().Cover(name.Span)
		}
		value = &ast.CapturePatternNode{
			Base:   ast.Base{Loc: sp},
			Value:  value,
			Target: target,
		}
	}
	return value
}

// parsePrimaryPattern parses one pattern atom.
func (p *Parser) parsePrimaryPattern() ast.Node {
	switch t := p.peek(); t.Kind {
	case token.LBracket, token.LBracketIdx:
		p.advance()
		pat := p.parseBracketPattern(nil, t.Span)
		p.expect(token.RBracket, diag.SynExpectDelimiter, "expected `]` to close array pattern")
		return p.withEndSpan(pat)
	case token.LBrace:
		p.advance()
		pat := p.parseBracePattern(nil, t.Span)
		p.expect(token.RBrace, diag.SynExpectDelimiter, "expected `}` to close hash pattern")
		return p.withEndSpan(pat)
	case token.Constant, token.ColonColon:
		return p.parseConstantPattern()
	case token.Caret:
		return p.parsePinnedPattern(p.advance())
	case token.Ident:
		p.advance()
		p.declare(t.Text)
		return &ast.LocalVariableTargetNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.UStar, token.Star:
		// A bare splat at this level only occurs in malformed input;
		// bracketed patterns consume theirs directly.
		p.advance()
		var expr ast.Node
		sp := t.Span
		if p.at(token.Ident) {
			id := p.advance()
			p.declare(id.Text)
			expr = &ast.LocalVariableTargetNode{Base: ast.Base{Loc: id.Span}, Name: id.Text}
			sp = sp.Cover(id.Span)
		}
		return &ast.SplatNode{Base: ast.Base{Loc: sp}, Expression: expr}
	default:
		return p.parseValuePattern()
	}
}

// parseValuePattern parses literal and range patterns, which match by
// ===.
func (p *Parser) parseValuePattern() ast.Node {
	if p.atAny(token.Dot2, token.Dot3) {
		op := p.advance()
		right := p.parseExpressionPrec(precRange + 1)
		return &ast.RangeNode{
			Base:      ast.Base{Loc: op.Span.Cover(right.Span())},
			Right:     right,
			Exclusive: op.Kind == token.Dot3,
		}
	}

	left := p.parseExpressionPrec(precRange + 1)
	if p.atAny(token.Dot2, token.Dot3) {
		op := p.advance()
		var right ast.Node
		sp := left.Span().Cover(op.Span)
		if p.rangeOperandAhead() {
			right = p.parseExpressionPrec(precRange + 1)
			sp = left.Span().Cover(right.Span())
		}
		return &ast.RangeNode{
			Base:      ast.Base{Loc: sp},
			Left:      left,
			Right:     right,
			Exclusive: op.Kind == token.Dot3,
		}
	}
	return left
}

// parseConstantPattern parses Foo, Foo::Bar, and their deconstructing
// forms Foo[...] and Foo(...).
func (p *Parser) parseConstantPattern() ast.Node {
	var path ast.Node
	start := p.peek().Span
	if _, ok := p.accept(token.ColonColon); ok {
		name := p.expect(token.Constant, diag.SynExpectConstant, "expected a constant after `::`")
		path = &ast.ConstantPathNode{
			Base: ast.Base{Loc: start.Cover(p.lastSpan)},
			Name: name.Text,
		}
	} else {
		name := p.advance()
		path = &ast.ConstantReadNode{Base: ast.Base{Loc: name.Span}, Name: name.Text}
	}
	for p.at(token.ColonColon) && p.peekN(1).Kind == token.Constant {
		p.advance()
		name := p.advance()
		path = &ast.ConstantPathNode{
			Base:   ast.Base{Loc: path.Span().Cover(name.Span)},
			Parent: path,
			Name:   name.Text,
		}
	}

	switch p.peek().Kind {
	case token.LBracketIdx, token.LBracket:
		p.advance()
		pat := p.parseBracketPattern(path, path.Span())
		p.expect(token.RBracket, diag.SynExpectDelimiter, "expected `]` to close pattern")
		return p.withEndSpan(pat)
	case token.LParen:
		p.advance()
		if p.atAny(token.Label, token.UStar2, token.Star2) {
			pat := p.parseHashPatternBody(path, path.Span(), token.RParen)
			p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close pattern")
			return p.withEndSpan(pat)
		}
		pat := p.parseBracketPattern(path, path.Span())
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close pattern")
		return p.withEndSpan(pat)
	default:
		return path
	}
}

// parseBracketPattern parses the inside of an array or find pattern;
// the caller consumes the closing delimiter.
func (p *Parser) parseBracketPattern(constant ast.Node, start source.Span) ast.Node {
	var splats []*ast.SplatNode
	var groups [][]ast.Node
	current := []ast.Node{}

	p.skipNewlines()
	for !p.atAny(token.RBracket, token.RParen, token.EOF) {
		if p.atAny(token.UStar, token.Star) {
			st := p.advance()
			var expr ast.Node
			sp := st.Span
			if p.at(token.Ident) {
				id := p.advance()
				p.declare(id.Text)
				expr = &ast.LocalVariableTargetNode{Base: ast.Base{Loc: id.Span}, Name: id.Text}
				sp = sp.Cover(id.Span)
			}
			splats = append(splats, &ast.SplatNode{Base: ast.Base{Loc: sp}, Expression: expr})
			groups = append(groups, current)
			current = []ast.Node{}
		} else {
			current = append(current, p.parsePattern())
		}
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}
	groups = append(groups, current)
	sp := start.Cover(p.lastSpan)

	switch len(splats) {
	case 0:
		return &ast.ArrayPatternNode{
			Base:      ast.Base{Loc: sp},
			Constant:  constant,
			Requireds: groups[0],
		}
	case 1:
		return &ast.ArrayPatternNode{
			Base:      ast.Base{Loc: sp},
			Constant:  constant,
			Requireds: groups[0],
			Rest:      splats[0],
			Posts:     groups[1],
		}
	case 2:
		if len(groups[0]) > 0 || len(groups[2]) > 0 {
			p.report(diag.SynExpectPattern, sp,
				"find pattern elements must sit between the two splats")
		}
		return &ast.FindPatternNode{
			Base:      ast.Base{Loc: sp},
			Constant:  constant,
			Left:      splats[0],
			Requireds: groups[1],
			Right:     splats[1],
		}
	default:
		p.report(diag.SynExpectPattern, sp, "too many splats in pattern")
		return &ast.ArrayPatternNode{
			Base:      ast.Base{Loc: sp},
			Constant:  constant,
			Requireds: groups[0],
			Rest:      splats[0],
			Posts:     groups[1],
		}
	}
}

// parseBracePattern parses the inside of a hash pattern; the caller
// consumes the closing brace.
func (p *Parser) parseBracePattern(constant ast.Node, start source.Span) ast.Node {
	return p.parseHashPatternBody(constant, start, token.RBrace)
}

func (p *Parser) parseHashPatternBody(constant ast.Node, start source.Span, closing token.Kind) ast.Node {
	var elements []ast.Node
	var rest ast.Node

	p.skipNewlines()
	for !p.atAny(closing, token.EOF) {
		switch t := p.peek(); t.Kind {
		case token.Label:
			p.advance()
			key := &ast.SymbolNode{Base: ast.Base{Loc: t.Span}, Unescaped: t.Text}
			var value ast.Node
			sp := t.Span
			if !p.atAny(token.Comma, closing, token.Newline) {
				value = p.parsePattern()
				sp = sp.Cover(value.Span())
			} else {
				// {x:} binds the value to a local of the same name.
				p.declare(t.Text)
			}
			elements = append(elements, &ast.AssocNode{
				Base:  ast.Base{Loc: sp},
				Key:   key,
				Value: value,
			})
		case token.UStar2, token.Star2:
			p.advance()
			if nilTok, ok := p.accept(token.KwNil); ok {
				rest = &ast.NoKeywordsParameterNode{Base: ast.Base{Loc: t.Span.Cover(nilTok.Span)}}
				break
			}
			var expr ast.Node
			sp := t.Span
			if p.at(token.Ident) {
				id := p.advance()
				p.declare(id.Text)
				expr = &ast.LocalVariableTargetNode{Base: ast.Base{Loc: id.Span}, Name: id.Text}
				sp = sp.Cover(id.Span)
			}
			rest = &ast.AssocSplatNode{Base: ast.Base{Loc: sp}, Value: expr}
		default:
			p.report(diag.SynExpectPattern, t.Span,
				"expected a label or `**` in hash pattern")
			p.resync(closing, token.Comma)
		}
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}

	return &ast.HashPatternNode{
		Base:     ast.Base{Loc: start.Cover(p.lastSpan)},
		Constant: constant,
		Elements: elements,
		Rest:     rest,
	}
}

// parsePinnedPattern parses ^var and ^(expr).
func (p *Parser) parsePinnedPattern(caret token.Token) ast.Node {
	switch t := p.peek(); t.Kind {
	case token.LParen:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close pinned expression")
		return &ast.PinnedExpressionNode{
			Base:       ast.Base{Loc: p.spanFrom(caret.Span)},
			Expression: expr,
		}
	case token.Ident:
		p.advance()
		if !p.declared(t.Text) {
			p.report(diag.SynExpectPattern, t.Span,
				"cannot pin the undefined variable `"+t.Text+"`")
		}
		return &ast.PinnedVariableNode{
			Base:     ast.Base{Loc: caret.Span.Cover(t.Span)},
			Variable: &ast.LocalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text},
		}
	case token.IVar:
		p.advance()
		return &ast.PinnedVariableNode{
			Base:     ast.Base{Loc: caret.Span.Cover(t.Span)},
			Variable: &ast.InstanceVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text},
		}
	case token.CVar:
		p.advance()
		return &ast.PinnedVariableNode{
			Base:     ast.Base{Loc: caret.Span.Cover(t.Span)},
			Variable: &ast.ClassVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text},
		}
	case token.GVar:
		p.advance()
		return &ast.PinnedVariableNode{
			Base:     ast.Base{Loc: caret.Span.Cover(t.Span)},
			Variable: &ast.GlobalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text},
		}
	default:
		p.report(diag.SynExpectPattern, t.Span, "expected a variable or `(` after `^`")
		return p.missing()
	}
}

// withEndSpan stretches a pattern's span through the just-consumed
// closing delimiter.
func (p *Parser) withEndSpan(n ast.Node) ast.Node {
	switch pat := n.(type) {
	case *ast.ArrayPatternNode:
		pat.Loc = pat.Loc.Cover(p.lastSpan)
	case *ast.FindPatternNode:
		pat.Loc = pat.Loc.Cover(p.lastSpan)
	case *ast.HashPatternNode:
		pat.Loc = pat.Loc.Cover(p.lastSpan)
	}
	return n
}
