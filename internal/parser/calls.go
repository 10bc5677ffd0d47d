package parser

import (
	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

// parseCallOn parses the method call after `.`, `&.`, or `::`.
func (p *Parser) parseCallOn(receiver ast.Node, safe bool) ast.Node {
	name, nameSpan := p.parseMethodName()
	start := receiver.Span()

	if p.at(token.LParen) {
		return p.parseCallTail(receiver, start, name, safe)
	}
	if p.startsCommandArg() {
		return p.parseCommandCall(receiver, start, name, safe)
	}
	return &ast.CallNode{
		Base:           ast.Base{Loc: start.Cover(nameSpan)},
		Receiver:       receiver,
		Name:           name,
		SafeNavigation: safe,
	}
}

// parseMethodName accepts identifiers, constants, keywords, and
// operator tokens as a method name position.
func (p *Parser) parseMethodName() (string, source.Span) {
	t := p.peek()
	switch {
	case t.Kind == token.Ident || t.Kind == token.Constant || t.IsKeyword():
		p.advance()
		return t.Text, t.Span
	case isOperatorMethodToken(t.Kind):
		p.advance()
		name := operatorMethodName(t)
		if name == "[" {
			name = p.finishBracketMethodName()
		}
		return name, p.spanFrom(t.Span)
	default:
		p.report(diag.SynExpectMethodName, t.Span, "expected a method name")
		return "", p.hereSpan()
	}
}

// finishBracketMethodName completes `[]` and `[]=` after the opening
// bracket token.
func (p *Parser) finishBracketMethodName() string {
	p.expect(token.RBracket, diag.SynExpectDelimiter, "expected `]` in method name")
	if t := p.peek(); t.Kind == token.Assign && t.Flags&token.FlagSpaceBefore == 0 {
		p.advance()
		return "[]="
	}
	return "[]"
}

// parseCallTail parses the parenthesized argument list and builds the
// call node.
func (p *Parser) parseCallTail(receiver ast.Node, start source.Span, name string, safe bool) ast.Node {
	p.advance() // (
	args, blockArg := p.parseArguments(token.RParen)
	p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close argument list")
	return &ast.CallNode{
		Base:           ast.Base{Loc: p.spanFrom(start)},
		Receiver:       receiver,
		Name:           name,
		Arguments:      args,
		Block:          blockArg,
		SafeNavigation: safe,
	}
}

// parseCommandCall parses a paren-less argument list.
func (p *Parser) parseCommandCall(receiver ast.Node, start source.Span, name string, safe bool) ast.Node {
	args, blockArg := p.parseCommandArguments()
	return &ast.CallNode{
		Base:           ast.Base{Loc: p.spanFrom(start)},
		Receiver:       receiver,
		Name:           name,
		Arguments:      args,
		Block:          blockArg,
		SafeNavigation: safe,
	}
}

// parseIndexCall parses receiver[arguments].
func (p *Parser) parseIndexCall(receiver ast.Node) ast.Node {
	p.advance() // [
	args, blockArg := p.parseArguments(token.RBracket)
	p.expect(token.RBracket, diag.SynExpectDelimiter, "expected `]` to close index arguments")
	return &ast.CallNode{
		Base:      ast.Base{Loc: p.spanFrom(receiver.Span())},
		Receiver:  receiver,
		Name:      "[]",
		Arguments: args,
		Block:     blockArg,
	}
}

// parseArguments parses a bracketed argument list up to (not consuming)
// the closing token. Trailing label pairs collapse into a
// KeywordHashNode; a &block argument is returned separately.
func (p *Parser) parseArguments(closing token.Kind) (*ast.ArgumentsNode, ast.Node) {
	p.skipNewlines()
	if p.at(closing) {
		return nil, nil
	}
	start := p.peek().Span
	var args []ast.Node
	var assocs []ast.Node
	var blockArg ast.Node

	for !p.atAny(closing, token.EOF) {
		switch p.peek().Kind {
		case token.UAmp, token.Amp:
			st := p.advance()
			var expr ast.Node
			sp := st.Span
			if !p.argListEnds(closing) {
				expr = p.parseExpressionPrec(precTernary)
				sp = sp.Cover(expr.Span())
			}
			blockArg = &ast.BlockArgumentNode{Base: ast.Base{Loc: sp}, Expression: expr}
		case token.UStar, token.Star:
			st := p.advance()
			var expr ast.Node
			sp := st.Span
			if !p.argListEnds(closing) {
				expr = p.parseExpressionPrec(precTernary)
				sp = sp.Cover(expr.Span())
			}
			args = append(args, &ast.SplatNode{Base: ast.Base{Loc: sp}, Expression: expr})
		case token.UStar2, token.Star2:
			st := p.advance()
			var expr ast.Node
			sp := st.Span
			if !p.argListEnds(closing) {
				expr = p.parseExpressionPrec(precTernary)
				sp = sp.Cover(expr.Span())
			}
			assocs = append(assocs, &ast.AssocSplatNode{Base: ast.Base{Loc: sp}, Value: expr})
		case token.Label:
			assocs = append(assocs, p.parseHashElement())
		case token.Dot3:
			st := p.advance()
			if !p.argListEnds(closing) {
				// Beginless range argument: foo(...limit)
				args = append(args, p.parseRangeTail(nil, st))
				break
			}
			// Argument forwarding: foo(...)
			if !p.declared("...") {
				p.report(diag.SynInvalidForwarding, st.Span,
					"... can only forward arguments from a method declared with ...")
			}
			args = append(args, &ast.ForwardingArgumentsNode{Base: ast.Base{Loc: st.Span}})
		default:
			expr := p.parseExpressionPrec(precTernary)
			if p.at(token.FatArrow) {
				p.advance()
				value := p.parseExpressionPrec(precTernary)
				assocs = append(assocs, &ast.AssocNode{
					Base:  ast.Base{Loc: expr.Span().Cover(value.Span())},
					Key:   expr,
					Value: value,
				})
			} else {
				args = append(args, expr)
			}
		}
		p.skipNewlines()
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}

	if len(assocs) > 0 {
		sp := assocs[0].Span().Cover(assocs[len(assocs)-1].Span())
		args = append(args, &ast.KeywordHashNode{Base: ast.Base{Loc: sp}, Elements: assocs})
	}
	if len(args) == 0 {
		return nil, blockArg
	}
	sp := start.Cover(args[len(args)-1].Span())
	return &ast.ArgumentsNode{Base: ast.Base{Loc: sp}, Arguments: args}, blockArg
}

func (p *Parser) argListEnds(closing token.Kind) bool {
	return p.atAny(closing, token.Comma, token.Newline, token.EOF)
}

// parseCommandArguments parses paren-less arguments up to the end of
// the command.
func (p *Parser) parseCommandArguments() (*ast.ArgumentsNode, ast.Node) {
	start := p.peek().Span
	var args []ast.Node
	var assocs []ast.Node
	var blockArg ast.Node

	for !p.commandEnds() {
		switch p.peek().Kind {
		case token.UAmp:
			st := p.advance()
			expr := p.parseExpressionPrec(precTernary)
			blockArg = &ast.BlockArgumentNode{
				Base:       ast.Base{Loc: st.Span.Cover(expr.Span())},
				Expression: expr,
			}
		case token.UStar:
			st := p.advance()
			expr := p.parseExpressionPrec(precTernary)
			args = append(args, &ast.SplatNode{
				Base:       ast.Base{Loc: st.Span.Cover(expr.Span())},
				Expression: expr,
			})
		case token.UStar2:
			st := p.advance()
			expr := p.parseExpressionPrec(precTernary)
			assocs = append(assocs, &ast.AssocSplatNode{
				Base:  ast.Base{Loc: st.Span.Cover(expr.Span())},
				Value: expr,
			})
		case token.Label:
			assocs = append(assocs, p.parseHashElement())
		default:
			expr := p.parseExpressionPrec(precTernary)
			if p.at(token.FatArrow) {
				p.advance()
				value := p.parseExpressionPrec(precTernary)
				assocs = append(assocs, &ast.AssocNode{
					Base:  ast.Base{Loc: expr.Span().Cover(value.Span())},
					Key:   expr,
					Value: value,
				})
			} else {
				args = append(args, expr)
			}
		}
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}

	if len(assocs) > 0 {
		sp := assocs[0].Span().Cover(assocs[len(assocs)-1].Span())
		args = append(args, &ast.KeywordHashNode{Base: ast.Base{Loc: sp}, Elements: assocs})
	}
	if len(args) == 0 {
		return nil, blockArg
	}
	sp := start.Cover(args[len(args)-1].Span())
	return &ast.ArgumentsNode{Base: ast.Base{Loc: sp}, Arguments: args}, blockArg
}

func (p *Parser) commandEnds() bool {
	switch p.peek().Kind {
	case token.Newline, token.Semicolon, token.EOF,
		token.RParen, token.RBracket, token.RBrace, token.EmbExprEnd,
		token.KwDo, token.KwThen, token.KwIf, token.KwUnless, token.KwWhile,
		token.KwUntil, token.KwRescue, token.KwEnd, token.KwAnd, token.KwOr,
		token.KwIn:
		return true
	default:
		return false
	}
}

// parseBraceBlock parses { |params| body }.
func (p *Parser) parseBraceBlock() ast.Node {
	lb := p.advance() // {
	p.blockDepth++
	p.pushBlockScope()

	params := p.parseBlockParameters()
	body := p.parseStatements(stopAt(token.RBrace))
	p.expect(token.RBrace, diag.SynExpectDelimiter, "expected `}` to close block")

	blockScope := p.popScope()
	p.blockDepth--
	sp := p.spanFrom(lb.Span)
	return &ast.BlockNode{
		Base:       ast.Base{Loc: sp},
		Parameters: p.resolveBlockParameters(params, blockScope, sp),
		Body:       body,
	}
}

// parseDoBlock parses do |params| ... end, allowing rescue clauses in
// the body.
func (p *Parser) parseDoBlock() ast.Node {
	kw := p.advance() // do
	p.blockDepth++
	p.pushBlockScope()

	params := p.parseBlockParameters()
	body := p.parseBodyStatements()
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close block")

	blockScope := p.popScope()
	p.blockDepth--
	sp := p.spanFrom(kw.Span)
	return &ast.BlockNode{
		Base:       ast.Base{Loc: sp},
		Parameters: p.resolveBlockParameters(params, blockScope, sp),
		Body:       body,
	}
}

// resolveBlockParameters picks explicit parameters, numbered
// parameters, or `it` for the finished block.
func (p *Parser) resolveBlockParameters(params ast.Node, s *scope, sp source.Span) ast.Node {
	if params != nil {
		return params
	}
	if s.numberedMax > 0 {
		return &ast.NumberedParametersNode{
			Base:    ast.Base{Loc: sp},
			Maximum: s.numberedMax,
		}
	}
	if s.usedIt {
		return &ast.ItParametersNode{Base: ast.Base{Loc: sp}}
	}
	return nil
}

// parseBlockParameters parses the |a, b; local| declaration when
// present.
func (p *Parser) parseBlockParameters() ast.Node {
	p.skipNewlines()
	switch p.peek().Kind {
	case token.Pipe2:
		// || lexes as one token for an empty parameter list.
		t := p.advance()
		p.scope.hasParams = true
		return &ast.BlockParametersNode{Base: ast.Base{Loc: t.Span}}
	case token.Pipe:
		open := p.advance()
		p.scope.hasParams = true
		params := p.parseParameterList(token.Pipe, token.Semicolon)
		var locals []ast.Node
		if _, ok := p.accept(token.Semicolon); ok {
			for {
				name := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a block-local variable name")
				if name.Kind != token.Missing {
					p.declare(name.Text)
					locals = append(locals, &ast.LocalVariableTargetNode{
						Base: ast.Base{Loc: name.Span},
						Name: name.Text,
					})
				}
				if _, ok := p.accept(token.Comma); !ok {
					break
				}
			}
		}
		p.expect(token.Pipe, diag.SynExpectDelimiter, "expected `|` to close block parameters")
		return &ast.BlockParametersNode{
			Base:       ast.Base{Loc: p.spanFrom(open.Span)},
			Parameters: params,
			Locals:     locals,
		}
	default:
		return nil
	}
}

// parseLambda parses -> (params) { body } literals.
func (p *Parser) parseLambda(arrow token.Token) ast.Node {
	p.blockDepth++
	p.pushBlockScope()
	p.scope.hasParams = true

	var params ast.Node
	if open, ok := p.accept(token.LParen); ok {
		list := p.parseParameterList(token.RParen)
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close lambda parameters")
		params = &ast.BlockParametersNode{
			Base:       ast.Base{Loc: p.spanFrom(open.Span)},
			Parameters: list,
		}
	} else if p.atAny(token.Ident, token.UStar, token.UStar2, token.UAmp, token.Label) {
		start := p.peek().Span
		list := p.parseParameterList(token.LBrace, token.KwDo)
		params = &ast.BlockParametersNode{
			Base:       ast.Base{Loc: start.Cover(p.lastSpan)},
			Parameters: list,
		}
	} else {
		p.scope.hasParams = false
	}

	var body ast.Node
	if _, ok := p.accept(token.LBrace); ok {
		body = p.parseStatements(stopAt(token.RBrace))
		p.expect(token.RBrace, diag.SynExpectDelimiter, "expected `}` to close lambda body")
	} else if _, ok := p.accept(token.KwDo); ok {
		body = p.parseBodyStatements()
		p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close lambda body")
	} else {
		p.report(diag.SynExpectDelimiter, p.peek().Span, "expected `{` or `do` after lambda parameters")
	}

	p.popScope()
	p.blockDepth--
	return &ast.LambdaNode{
		Base:       ast.Base{Loc: p.spanFrom(arrow.Span)},
		Parameters: params,
		Body:       body,
	}
}

func (p *Parser) parseSuper(kw token.Token) ast.Node {
	if p.at(token.LParen) {
		p.advance()
		args, blockArg := p.parseArguments(token.RParen)
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close super arguments")
		return &ast.SuperNode{
			Base:      ast.Base{Loc: p.spanFrom(kw.Span)},
			Arguments: args,
			Block:     blockArg,
		}
	}
	if p.startsCommandArg() {
		args, blockArg := p.parseCommandArguments()
		return &ast.SuperNode{
			Base:      ast.Base{Loc: p.spanFrom(kw.Span)},
			Arguments: args,
			Block:     blockArg,
		}
	}
	return &ast.ForwardingSuperNode{Base: ast.Base{Loc: kw.Span}}
}

func (p *Parser) parseYield(kw token.Token) ast.Node {
	if p.at(token.LParen) {
		p.advance()
		args, _ := p.parseArguments(token.RParen)
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close yield arguments")
		return &ast.YieldNode{
			Base:      ast.Base{Loc: p.spanFrom(kw.Span)},
			Arguments: args,
		}
	}
	if p.startsCommandArg() {
		args, _ := p.parseCommandArguments()
		return &ast.YieldNode{
			Base:      ast.Base{Loc: p.spanFrom(kw.Span)},
			Arguments: args,
		}
	}
	return &ast.YieldNode{Base: ast.Base{Loc: kw.Span}}
}

// parseJump parses break, next, and return with their optional bare
// argument lists.
func (p *Parser) parseJump(kw token.Token) ast.Node {
	var args *ast.ArgumentsNode
	if !p.jumpArgEnds() {
		start := p.peek().Span
		items := []ast.Node{p.parseRHSItem()}
		for {
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			items = append(items, p.parseRHSItem())
		}
		args = &ast.ArgumentsNode{
			Base:      ast.Base{Loc: start.Cover(items[len(items)-1].Span())},
			Arguments: items,
		}
	}
	sp := kw.Span
	if args != nil {
		sp = sp.Cover(args.Loc)
	}
	switch kw.Kind {
	case token.KwBreak:
		return &ast.BreakNode{Base: ast.Base{Loc: sp}, Arguments: args}
	case token.KwNext:
		return &ast.NextNode{Base: ast.Base{Loc: sp}, Arguments: args}
	default:
		if p.classDepth > 0 && p.defDepth == 0 {
			p.report(diag.SynTopLevelReturn, kw.Span, "return is not allowed in a class or module body")
		}
		return &ast.ReturnNode{Base: ast.Base{Loc: sp}, Arguments: args}
	}
}

func (p *Parser) jumpArgEnds() bool {
	switch p.peek().Kind {
	case token.Newline, token.Semicolon, token.EOF,
		token.RParen, token.RBracket, token.RBrace, token.EmbExprEnd,
		token.KwIf, token.KwUnless, token.KwWhile, token.KwUntil,
		token.KwRescue, token.KwEnd, token.KwAnd, token.KwOr,
		token.KwThen, token.KwDo, token.Dot, token.AmpDot:
		return true
	default:
		return false
	}
}
