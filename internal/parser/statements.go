package parser

import (
	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/token"
)

// stopAt builds a statement-list stop predicate over the given kinds.
func stopAt(kinds ...token.Kind) func(*Parser) bool {
	return func(p *Parser) bool {
		return p.atAny(kinds...)
	}
}

func stopAtEOF(p *Parser) bool {
	return p.at(token.EOF)
}

var bodyStops = []token.Kind{
	token.KwEnd, token.KwElse, token.KwElsif, token.KwWhen, token.KwIn,
	token.KwRescue, token.KwEnsure,
	token.RParen, token.RBrace, token.RBracket, token.EmbExprEnd,
}

// stopAtBody stops at every clause keyword and closing delimiter, which
// is safe for any nested statement list: the enclosing construct eats
// the ones it owns and everything else is an error at that level.
func stopAtBody(p *Parser) bool {
	return p.atAny(bodyStops...)
}

// parseStatements parses a terminator-separated statement run. Returns
// nil when the run is empty.
func (p *Parser) parseStatements(stop func(*Parser) bool) *ast.StatementsNode {
	p.skipTerminators()
	start := p.peek().Span
	var body []ast.Node
	for !p.at(token.EOF) && !stop(p) {
		stmt := p.parseStatement()
		body = append(body, stmt)
		if !p.atTerminator() && !stop(p) {
			p.report(diag.SynUnexpectedToken, p.peek().Span,
				"unexpected "+p.peek().Kind.String()+" after statement")
			p.resync(bodyStops...)
		}
		p.skipTerminators()
	}
	if len(body) == 0 {
		return nil
	}
	sp := start.Cover(body[len(body)-1].Span())
	return &ast.StatementsNode{Base: ast.Base{Loc: sp}, Body: body}
}

func (p *Parser) parseStatement() ast.Node {
	var n ast.Node
	switch p.peek().Kind {
	case token.KwBEGIN:
		n = p.parsePreExecution()
	case token.KwEND:
		n = p.parsePostExecution()
	case token.KwAlias:
		n = p.parseAlias()
	case token.KwUndef:
		n = p.parseUndef()
	default:
		n = p.parseExpressionStatement()
	}
	return p.parseModifiers(n)
}

// parseModifiers folds trailing if/unless/while/until modifiers onto an
// already-parsed statement.
func (p *Parser) parseModifiers(n ast.Node) ast.Node {
	for {
		switch p.peek().Kind {
		case token.KwIf:
			p.advance()
			pred := p.parseExpression()
			n = &ast.IfNode{
				Base:       ast.Base{Loc: n.Span().Cover(pred.Span())},
				Predicate:  pred,
				Statements: wrapStatement(n),
			}
		case token.KwUnless:
			p.advance()
			pred := p.parseExpression()
			n = &ast.UnlessNode{
				Base:       ast.Base{Loc: n.Span().Cover(pred.Span())},
				Predicate:  pred,
				Statements: wrapStatement(n),
			}
		case token.KwWhile:
			p.advance()
			pred := p.parseExpression()
			n = &ast.WhileNode{
				Base:       ast.Base{Loc: n.Span().Cover(pred.Span())},
				Predicate:  pred,
				Statements: wrapStatement(n),
				DoWhile:    isBeginBody(n),
			}
		case token.KwUntil:
			p.advance()
			pred := p.parseExpression()
			n = &ast.UntilNode{
				Base:       ast.Base{Loc: n.Span().Cover(pred.Span())},
				Predicate:  pred,
				Statements: wrapStatement(n),
				DoWhile:    isBeginBody(n),
			}
		default:
			return n
		}
	}
}

// isBeginBody reports the begin...end while form, which executes its
// body before the first predicate check.
func isBeginBody(n ast.Node) bool {
	_, ok := n.(*ast.BeginNode)
	return ok
}

func wrapStatement(n ast.Node) *ast.StatementsNode {
	return &ast.StatementsNode{Base: ast.Base{Loc: n.Span()}, Body: []ast.Node{n}}
}

// parseExpressionStatement parses one expression and the statement-only
// forms layered on it: multiple assignment, and the => / in pattern
// matching operators.
func (p *Parser) parseExpressionStatement() ast.Node {
	if p.atAny(token.UStar, token.Star) && p.multiTargetAhead() {
		return p.parseMultiWrite(nil)
	}
	expr := p.parseExpression()

	switch {
	case p.at(token.Comma) && p.targetable(expr):
		return p.parseMultiWrite(expr)
	case p.at(token.FatArrow):
		p.advance()
		pat := p.parsePattern()
		return &ast.MatchRequiredNode{
			Base:    ast.Base{Loc: expr.Span().Cover(pat.Span())},
			Value:   expr,
			Pattern: pat,
		}
	case p.at(token.KwIn):
		p.advance()
		pat := p.parsePattern()
		return &ast.MatchPredicateNode{
			Base:    ast.Base{Loc: expr.Span().Cover(pat.Span())},
			Value:   expr,
			Pattern: pat,
		}
	}
	return expr
}

// multiTargetAhead distinguishes `*a, b = xs` from a stray splat.
func (p *Parser) multiTargetAhead() bool {
	for i := 1; ; i++ {
		switch p.peekN(i).Kind {
		case token.Assign:
			return true
		case token.Newline, token.Semicolon, token.EOF:
			return false
		}
		if i > 64 {
			return false
		}
	}
}

// parseMultiWrite parses a destructuring assignment. first is the
// already-parsed leading target, or nil when the statement starts with
// a splat.
func (p *Parser) parseMultiWrite(first ast.Node) ast.Node {
	start := p.peek().Span
	var lefts []ast.Node
	var rest ast.Node
	var rights []ast.Node
	started := false
	if first != nil {
		start = first.Span()
		lefts = append(lefts, p.toTarget(first))
		started = true
		if !p.at(token.Comma) {
			p.report(diag.SynExpectAssignTarget, p.peek().Span, "expected `,` in multiple assignment")
		}
	}

	for {
		if started {
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
		}
		started = true

		if p.at(token.Assign) {
			// Trailing comma: a, = value
			rest = &ast.ImplicitRestNode{Base: ast.Base{Loc: p.hereSpan()}}
			break
		}
		if p.atAny(token.UStar, token.Star) {
			st := p.advance()
			var target ast.Node
			if !p.atAny(token.Comma, token.Assign) {
				target = p.toTarget(p.parseMLHSItem())
			}
			sp := st.Span
			if target != nil {
				sp = sp.Cover(target.Span())
			}
			rest = &ast.SplatNode{Base: ast.Base{Loc: sp}, Expression: target}
			continue
		}
		item := p.toTarget(p.parseMLHSItem())
		if rest == nil {
			lefts = append(lefts, item)
		} else {
			rights = append(rights, item)
		}
	}

	p.expect(token.Assign, diag.SynExpectAssignTarget, "expected `=` after assignment targets")
	value := p.parseAssignValue()
	return &ast.MultiWriteNode{
		Base:   ast.Base{Loc: start.Cover(value.Span())},
		Lefts:  lefts,
		Rest:   rest,
		Rights: rights,
		Value:  value,
	}
}

// parseAssignValue parses the right-hand side of an assignment,
// folding `= 1, 2` value lists into an array.
func (p *Parser) parseAssignValue() ast.Node {
	first := p.parseRHSItem()
	if !p.at(token.Comma) {
		return first
	}
	elems := []ast.Node{first}
	for {
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		elems = append(elems, p.parseRHSItem())
	}
	sp := elems[0].Span().Cover(elems[len(elems)-1].Span())
	return &ast.ArrayNode{Base: ast.Base{Loc: sp}, Elements: elems}
}

func (p *Parser) parseRHSItem() ast.Node {
	if p.atAny(token.UStar, token.Star) {
		st := p.advance()
		expr := p.parseExpression()
		return &ast.SplatNode{Base: ast.Base{Loc: st.Span.Cover(expr.Span())}, Expression: expr}
	}
	return p.parseExpression()
}

// parseMLHSItem parses one multiple-assignment slot; parenthesized
// groups nest as MultiTargetNodes.
func (p *Parser) parseMLHSItem() ast.Node {
	if lp, ok := p.accept(token.LParen); ok {
		var lefts, rights []ast.Node
		var rest ast.Node
		for !p.atAny(token.RParen, token.EOF) {
			if p.atAny(token.UStar, token.Star) {
				st := p.advance()
				var target ast.Node
				if !p.atAny(token.Comma, token.RParen) {
					target = p.toTarget(p.parseMLHSItem())
				}
				sp := st.Span
				if target != nil {
					sp = sp.Cover(target.Span())
				}
				rest = &ast.SplatNode{Base: ast.Base{Loc: sp}, Expression: target}
			} else {
				item := p.toTarget(p.parseMLHSItem())
				if rest == nil {
					lefts = append(lefts, item)
				} else {
					rights = append(rights, item)
				}
			}
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
		}
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close assignment group")
		return &ast.MultiTargetNode{
			Base:   ast.Base{Loc: p.spanFrom(lp.Span)},
			Lefts:  lefts,
			Rest:   rest,
			Rights: rights,
		}
	}
	return p.parseExpressionPrec(precTernary)
}

func (p *Parser) parsePreExecution() ast.Node {
	kw := p.advance()
	if p.defDepth > 0 || p.blockDepth > 0 {
		p.report(diag.SynBeginBlockPlacement, kw.Span, "BEGIN is only allowed at the top level")
	}
	p.expect(token.LBrace, diag.SynExpectDelimiter, "expected `{` after BEGIN")
	stmts := p.parseStatements(stopAt(token.RBrace))
	p.expect(token.RBrace, diag.SynExpectDelimiter, "expected `}` to close BEGIN block")
	return &ast.PreExecutionNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Statements: stmts,
	}
}

func (p *Parser) parsePostExecution() ast.Node {
	kw := p.advance()
	if p.defDepth > 0 {
		p.warn(diag.WarnEndInMethod, kw.Span, "END in a method body; use at_exit instead")
	}
	p.expect(token.LBrace, diag.SynExpectDelimiter, "expected `{` after END")
	stmts := p.parseStatements(stopAt(token.RBrace))
	p.expect(token.RBrace, diag.SynExpectDelimiter, "expected `}` to close END block")
	return &ast.PostExecutionNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Statements: stmts,
	}
}

func (p *Parser) parseAlias() ast.Node {
	kw := p.advance()
	if p.atAny(token.GVar, token.BackRef, token.NthRef) {
		newName := p.parseGlobalAliasOperand()
		oldName := p.parseGlobalAliasOperand()
		return &ast.AliasGlobalVariableNode{
			Base:    ast.Base{Loc: p.spanFrom(kw.Span)},
			NewName: newName,
			OldName: oldName,
		}
	}
	newName := p.parseMethodNameOperand()
	oldName := p.parseMethodNameOperand()
	return &ast.AliasMethodNode{
		Base:    ast.Base{Loc: p.spanFrom(kw.Span)},
		NewName: newName,
		OldName: oldName,
	}
}

func (p *Parser) parseGlobalAliasOperand() ast.Node {
	switch p.peek().Kind {
	case token.GVar:
		t := p.advance()
		return &ast.GlobalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.BackRef:
		t := p.advance()
		return &ast.BackReferenceReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.NthRef:
		t := p.advance()
		return &ast.NumberedReferenceReadNode{Base: ast.Base{Loc: t.Span}, Number: nthRefNumber(t.Text)}
	default:
		p.report(diag.SynExpectIdentifier, p.peek().Span, "expected a global variable")
		return p.missing()
	}
}

// parseMethodNameOperand parses a method name as a symbol, for alias
// and undef operands.
func (p *Parser) parseMethodNameOperand() ast.Node {
	t := p.peek()
	switch {
	case t.Kind == token.Symbol:
		p.advance()
		return &ast.SymbolNode{Base: ast.Base{Loc: t.Span}, Unescaped: symbolText(t)}
	case t.Kind == token.SymbolBegin:
		return p.parseSymbolLiteral(p.advance())
	case t.Kind == token.Ident || t.Kind == token.Constant || t.IsKeyword():
		p.advance()
		return &ast.SymbolNode{Base: ast.Base{Loc: t.Span}, Unescaped: t.Text}
	case isOperatorMethodToken(t.Kind):
		p.advance()
		name := operatorMethodName(t)
		if name == "[" {
			name = p.finishBracketMethodName()
		}
		return &ast.SymbolNode{Base: ast.Base{Loc: p.spanFrom(t.Span)}, Unescaped: name}
	default:
		p.report(diag.SynExpectMethodName, t.Span, "expected a method name")
		return p.missing()
	}
}

func (p *Parser) parseUndef() ast.Node {
	kw := p.advance()
	var names []ast.Node
	names = append(names, p.parseMethodNameOperand())
	for {
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		names = append(names, p.parseMethodNameOperand())
	}
	return &ast.UndefNode{
		Base:  ast.Base{Loc: p.spanFrom(kw.Span)},
		Names: names,
	}
}

func nthRefNumber(text string) int {
	n := 0
	for i := 1; i < len(text); i++ {
		n = n*10 + int(text[i]-'0')
	}
	return n
}

// symbolText strips the leading colon from a Symbol token.
func symbolText(t token.Token) string {
	if len(t.Text) > 0 && t.Text[0] == ':' {
		return t.Text[1:]
	}
	return t.Text
}
