package parser

import (
	"strings"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

// parseDef parses a method definition, including singleton receivers,
// setter and operator names, and the endless form.
func (p *Parser) parseDef(kw token.Token) ast.Node {
	receiver := p.parseDefReceiver()
	name, nameSpan := p.parseDefName()

	p.pushClosedScope()
	p.defDepth++

	var params *ast.ParametersNode
	parenthesized := false
	if open, ok := p.accept(token.LParen); ok {
		parenthesized = true
		if !p.at(token.RParen) {
			params = p.parseParameterList(token.RParen)
		}
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close parameters")
		if params != nil {
			params.Loc = open.Span.Cover(p.lastSpan)
		}
	} else if p.startsBareParameter() {
		start := p.peek().Span
		params = p.parseParameterList(token.Newline, token.Semicolon, token.Assign)
		if params != nil {
			params.Loc = start.Cover(p.lastSpan)
		}
	}

	var body ast.Node
	endless := false
	if (parenthesized || params == nil) && p.at(token.Assign) {
		p.advance()
		endless = true
		if strings.HasSuffix(name, "=") {
			p.report(diag.SynEndlessSetterDef, nameSpan,
				"setter methods cannot use the endless form")
		}
		expr := p.parseExpressionPrec(precModifierRescue)
		body = &ast.StatementsNode{
			Base: ast.Base{Loc: expr.Span()},
			Body: []ast.Node{expr},
		}
	} else {
		p.skipTerminators()
		body = p.parseBodyStatements()
		p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close method definition")
	}

	p.defDepth--
	p.popScope()
	return &ast.DefNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Name:       name,
		Receiver:   receiver,
		Parameters: params,
		Body:       body,
		Endless:    endless,
	}
}

// parseDefReceiver consumes `expr.` before the method name of a
// singleton definition, if present.
func (p *Parser) parseDefReceiver() ast.Node {
	if p.peekN(1).Kind != token.Dot {
		return nil
	}
	t := p.peek()
	var recv ast.Node
	switch t.Kind {
	case token.KwSelf:
		recv = &ast.SelfNode{Base: ast.Base{Loc: t.Span}}
	case token.Constant:
		recv = &ast.ConstantReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.Ident:
		if p.declared(t.Text) {
			recv = &ast.LocalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
		} else {
			recv = &ast.CallNode{Base: ast.Base{Loc: t.Span}, Name: t.Text, VariableCall: true}
		}
	case token.IVar:
		recv = &ast.InstanceVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.CVar:
		recv = &ast.ClassVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.GVar:
		recv = &ast.GlobalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.KwNil:
		recv = &ast.NilNode{Base: ast.Base{Loc: t.Span}}
	case token.KwTrue:
		recv = &ast.TrueNode{Base: ast.Base{Loc: t.Span}}
	case token.KwFalse:
		recv = &ast.FalseNode{Base: ast.Base{Loc: t.Span}}
	default:
		return nil
	}
	p.advance() // receiver
	p.advance() // .
	return recv
}

// parseDefName accepts identifiers, constants, keywords, operators, and
// the setter form name=.
func (p *Parser) parseDefName() (string, source.Span) {
	t := p.peek()
	switch {
	case t.Kind == token.Ident || t.Kind == token.Constant || t.IsKeyword():
		p.advance()
		name := t.Text
		sp := t.Span
		if nx := p.peek(); nx.Kind == token.Assign && nx.Flags&token.FlagSpaceBefore == 0 {
			p.advance()
			name += "="
			sp = sp.Cover(nx.Span)
		}
		return name, sp
	case isOperatorMethodToken(t.Kind):
		p.advance()
		name := operatorMethodName(t)
		if name == "[" {
			name = p.finishBracketMethodName()
		}
		return name, p.spanFrom(t.Span)
	default:
		p.report(diag.SynExpectMethodName, t.Span, "expected a method name after def")
		return "", p.hereSpan()
	}
}

func (p *Parser) startsBareParameter() bool {
	switch p.peek().Kind {
	case token.Ident, token.Label, token.UStar, token.Star, token.UStar2,
		token.Star2, token.UAmp, token.Amp, token.LParen:
		return true
	default:
		return false
	}
}

// parseParameterList parses a signature until one of the stop kinds,
// declaring each name and grouping parameters by family.
func (p *Parser) parseParameterList(stops ...token.Kind) *ast.ParametersNode {
	params := &ast.ParametersNode{}
	start := p.peek().Span
	sawRest := false

	for !p.at(token.EOF) && !p.atAny(stops...) {
		switch t := p.peek(); t.Kind {
		case token.Ident:
			p.advance()
			p.declareParameter(t.Text, t.Span)
			if _, ok := p.accept(token.Assign); ok {
				value := p.parseExpressionPrec(precTernary)
				params.Optionals = append(params.Optionals, &ast.OptionalParameterNode{
					Base:  ast.Base{Loc: t.Span.Cover(value.Span())},
					Name:  t.Text,
					Value: value,
				})
			} else {
				node := &ast.RequiredParameterNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
				if sawRest {
					params.Posts = append(params.Posts, node)
				} else {
					params.Requireds = append(params.Requireds, node)
				}
			}
		case token.Label:
			p.advance()
			p.declareParameter(t.Text, t.Span)
			if p.keywordHasDefault(stops) {
				value := p.parseExpressionPrec(precTernary)
				params.Keywords = append(params.Keywords, &ast.OptionalKeywordParameterNode{
					Base:  ast.Base{Loc: t.Span.Cover(value.Span())},
					Name:  t.Text,
					Value: value,
				})
			} else {
				params.Keywords = append(params.Keywords, &ast.RequiredKeywordParameterNode{
					Base: ast.Base{Loc: t.Span},
					Name: t.Text,
				})
			}
		case token.UStar, token.Star:
			p.advance()
			sawRest = true
			name := ""
			sp := t.Span
			if id, ok := p.accept(token.Ident); ok {
				name = id.Text
				sp = sp.Cover(id.Span)
				p.declareParameter(name, id.Span)
			}
			params.Rest = &ast.RestParameterNode{Base: ast.Base{Loc: sp}, Name: name}
		case token.UStar2, token.Star2:
			p.advance()
			if nilTok, ok := p.accept(token.KwNil); ok {
				params.KeywordRest = &ast.NoKeywordsParameterNode{
					Base: ast.Base{Loc: t.Span.Cover(nilTok.Span)},
				}
				break
			}
			name := ""
			sp := t.Span
			if id, ok := p.accept(token.Ident); ok {
				name = id.Text
				sp = sp.Cover(id.Span)
				p.declareParameter(name, id.Span)
			}
			params.KeywordRest = &ast.KeywordRestParameterNode{Base: ast.Base{Loc: sp}, Name: name}
		case token.UAmp, token.Amp:
			p.advance()
			name := ""
			sp := t.Span
			if id, ok := p.accept(token.Ident); ok {
				name = id.Text
				sp = sp.Cover(id.Span)
				p.declareParameter(name, id.Span)
			}
			params.Block = &ast.BlockParameterNode{Base: ast.Base{Loc: sp}, Name: name}
		case token.Dot3:
			// def build(...): forward positionals, keywords, and block.
			p.advance()
			p.declare("...")
			params.KeywordRest = &ast.ForwardingParameterNode{Base: ast.Base{Loc: t.Span}}
		case token.LParen:
			node := p.parseDestructuredParameter()
			if sawRest {
				params.Posts = append(params.Posts, node)
			} else {
				params.Requireds = append(params.Requireds, node)
			}
		default:
			p.report(diag.SynExpectParameter, t.Span,
				"unexpected "+t.Kind.String()+" in parameter list")
			p.resync(append(stops, token.Comma)...)
		}
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}

	if paramsEmpty(params) {
		return nil
	}
	params.Loc = start.Cover(p.lastSpan)
	return params
}

// keywordHasDefault distinguishes `k:` from `k: expr` after a label.
func (p *Parser) keywordHasDefault(stops []token.Kind) bool {
	if p.atAny(token.Comma, token.Newline, token.Semicolon, token.EOF) {
		return false
	}
	return !p.atAny(stops...)
}

// parseDestructuredParameter parses a (a, (b, c), *rest) group.
func (p *Parser) parseDestructuredParameter() ast.Node {
	open := p.advance() // (
	var lefts []ast.Node
	var rest ast.Node
	var rights []ast.Node

	for !p.atAny(token.RParen, token.EOF) {
		switch t := p.peek(); t.Kind {
		case token.Ident:
			p.advance()
			p.declareParameter(t.Text, t.Span)
			node := &ast.RequiredParameterNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
			if rest != nil {
				rights = append(rights, node)
			} else {
				lefts = append(lefts, node)
			}
		case token.UStar, token.Star:
			p.advance()
			name := ""
			sp := t.Span
			if id, ok := p.accept(token.Ident); ok {
				name = id.Text
				sp = sp.Cover(id.Span)
				p.declareParameter(name, id.Span)
			}
			rest = &ast.RestParameterNode{Base: ast.Base{Loc: sp}, Name: name}
		case token.LParen:
			node := p.parseDestructuredParameter()
			if rest != nil {
				rights = append(rights, node)
			} else {
				lefts = append(lefts, node)
			}
		default:
			p.report(diag.SynExpectParameter, t.Span,
				"unexpected "+t.Kind.String()+" in destructured parameter")
			p.resync(token.RParen, token.Comma)
		}
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close destructured parameter")
	return &ast.MultiTargetNode{
		Base:   ast.Base{Loc: p.spanFrom(open.Span)},
		Lefts:  lefts,
		Rest:   rest,
		Rights: rights,
	}
}

// declareParameter adds a parameter name to the current scope,
// reporting duplicates. Underscore-prefixed names may repeat.
func (p *Parser) declareParameter(name string, sp source.Span) {
	if _, dup := p.scope.locals[name]; dup && !strings.HasPrefix(name, "_") {
		p.report(diag.SynDuplicateParameter, sp, "duplicate parameter name `"+name+"`")
		return
	}
	p.declare(name)
}

func paramsEmpty(params *ast.ParametersNode) bool {
	return len(params.Requireds) == 0 && len(params.Optionals) == 0 &&
		params.Rest == nil && len(params.Posts) == 0 &&
		len(params.Keywords) == 0 && params.KeywordRest == nil &&
		params.Block == nil
}

// parseClass parses class definitions, including class << expr.
func (p *Parser) parseClass(kw token.Token) ast.Node {
	if _, ok := p.accept(token.Shl); ok {
		expr := p.parseExpression()
		p.skipTerminators()
		p.pushClosedScope()
		p.classDepth++
		body := p.parseBodyStatements()
		p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close singleton class")
		p.classDepth--
		p.popScope()
		return &ast.SingletonClassNode{
			Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
			Expression: expr,
			Body:       body,
		}
	}

	path := p.parseDefinitionConstantPath("class")

	var superclass ast.Node
	if _, ok := p.accept(token.Lt); ok {
		if p.atTerminator() {
			p.report(diag.SynExpectSuperclass, p.peek().Span, "expected a superclass after `<`")
			superclass = p.missing()
		} else {
			superclass = p.parseExpression()
		}
	}
	p.skipTerminators()

	p.pushClosedScope()
	p.classDepth++
	body := p.parseBodyStatements()
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close class")
	p.classDepth--
	p.popScope()
	return &ast.ClassNode{
		Base:         ast.Base{Loc: p.spanFrom(kw.Span)},
		ConstantPath: path,
		Superclass:   superclass,
		Body:         body,
	}
}

func (p *Parser) parseModule(kw token.Token) ast.Node {
	path := p.parseDefinitionConstantPath("module")
	p.skipTerminators()

	p.pushClosedScope()
	p.classDepth++
	body := p.parseBodyStatements()
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close module")
	p.classDepth--
	p.popScope()
	return &ast.ModuleNode{
		Base:         ast.Base{Loc: p.spanFrom(kw.Span)},
		ConstantPath: path,
		Body:         body,
	}
}

// parseDefinitionConstantPath parses the A::B::C name of a class or
// module definition.
func (p *Parser) parseDefinitionConstantPath(what string) ast.Node {
	var path ast.Node
	if _, ok := p.accept(token.ColonColon); ok {
		name := p.expect(token.Constant, diag.SynExpectConstant,
			"expected a constant after `::` in "+what+" name")
		path = &ast.ConstantPathNode{
			Base: ast.Base{Loc: p.spanFrom(p.lastSpan)},
			Name: name.Text,
		}
	} else {
		name := p.expect(token.Constant, diag.SynExpectConstant,
			"expected a constant name after "+what)
		if name.Kind == token.Missing {
			return p.missing()
		}
		path = &ast.ConstantReadNode{Base: ast.Base{Loc: name.Span}, Name: name.Text}
	}

	for p.at(token.ColonColon) && p.peekN(1).Kind == token.Constant {
		p.advance() // ::
		name := p.advance()
		path = &ast.ConstantPathNode{
			Base:   ast.Base{Loc: path.Span().Cover(name.Span)},
			Parent: path,
			Name:   name.Text,
		}
	}
	return path
}
