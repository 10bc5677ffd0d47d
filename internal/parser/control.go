package parser

import (
	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/token"
)

// parseIf parses if/elsif chains. For elsif the keyword has already
// been consumed and the node doubles as the Subsequent link.
func (p *Parser) parseIf(kw token.Token, isElsif bool) ast.Node {
	pred := p.parseExpression()
	p.acceptThen()

	stmts := p.parseStatements(stopAtBody)

	var subsequent ast.Node
	switch p.peek().Kind {
	case token.KwElsif:
		subsequent = p.parseIf(p.advance(), true)
	case token.KwElse:
		subsequent = p.parseElse()
	}

	if !isElsif {
		p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close if")
	}
	return &ast.IfNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Predicate:  pred,
		Statements: stmts,
		Subsequent: subsequent,
	}
}

func (p *Parser) parseUnless(kw token.Token) ast.Node {
	pred := p.parseExpression()
	p.acceptThen()

	stmts := p.parseStatements(stopAtBody)

	var elseClause *ast.ElseNode
	if p.at(token.KwElse) {
		elseClause = p.parseElse()
	}
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close unless")
	return &ast.UnlessNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Predicate:  pred,
		Statements: stmts,
		Else:       elseClause,
	}
}

// acceptThen consumes the optional then keyword or a statement
// terminator after a condition.
func (p *Parser) acceptThen() {
	p.skipTerminators()
	if _, ok := p.accept(token.KwThen); ok {
		p.skipTerminators()
	}
}

func (p *Parser) parseElse() *ast.ElseNode {
	kw := p.advance() // else
	stmts := p.parseStatements(stopAtBody)
	return &ast.ElseNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Statements: stmts,
	}
}

func (p *Parser) parseWhile(kw token.Token) ast.Node {
	pred := p.parseLoopPredicate()
	stmts := p.parseStatements(stopAtBody)
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close while")
	return &ast.WhileNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Predicate:  pred,
		Statements: stmts,
	}
}

func (p *Parser) parseUntil(kw token.Token) ast.Node {
	pred := p.parseLoopPredicate()
	stmts := p.parseStatements(stopAtBody)
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close until")
	return &ast.UntilNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Predicate:  pred,
		Statements: stmts,
	}
}

// parseLoopPredicate parses a loop condition with do-block attachment
// suppressed, then eats the do or terminator separating the body.
func (p *Parser) parseLoopPredicate() ast.Node {
	p.noDoDepth++
	pred := p.parseExpression()
	p.noDoDepth--
	p.skipTerminators()
	if _, ok := p.accept(token.KwDo); ok {
		p.skipTerminators()
	}
	return pred
}

func (p *Parser) parseFor(kw token.Token) ast.Node {
	index := p.parseForIndex()

	p.expect(token.KwIn, diag.SynExpectDo, "expected `in` after for targets")
	p.noDoDepth++
	collection := p.parseExpression()
	p.noDoDepth--
	p.skipTerminators()
	if _, ok := p.accept(token.KwDo); ok {
		p.skipTerminators()
	}

	stmts := p.parseStatements(stopAtBody)
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close for")
	return &ast.ForNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Index:      index,
		Collection: collection,
		Statements: stmts,
	}
}

// parseForIndex parses the target list before in, declaring each local.
func (p *Parser) parseForIndex() ast.Node {
	first := p.parseMLHSItem()
	if !p.at(token.Comma) {
		return first
	}
	lefts := []ast.Node{first}
	var rest ast.Node
	var rights []ast.Node
	for {
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		if p.at(token.KwIn) {
			break
		}
		if st, ok := p.accept(token.UStar); ok {
			var expr ast.Node
			sp := st.Span
			if !p.atAny(token.Comma, token.KwIn) {
				expr = p.parseMLHSItem()
				sp = sp.Cover(expr.Span())
			}
			rest = &ast.SplatNode{Base: ast.Base{Loc: sp}, Expression: expr}
			continue
		}
		item := p.parseMLHSItem()
		if rest != nil {
			rights = append(rights, item)
		} else {
			lefts = append(lefts, item)
		}
	}
	sp := first.Span().Cover(p.lastSpan)
	return &ast.MultiTargetNode{
		Base:   ast.Base{Loc: sp},
		Lefts:  lefts,
		Rest:   rest,
		Rights: rights,
	}
}

// parseCase dispatches between when and in forms after the optional
// predicate.
func (p *Parser) parseCase(kw token.Token) ast.Node {
	var pred ast.Node
	p.skipNewlines()
	if !p.atAny(token.KwWhen, token.KwIn) {
		pred = p.parseExpression()
	}
	p.skipTerminators()

	switch p.peek().Kind {
	case token.KwIn:
		return p.parseCaseMatch(kw, pred)
	case token.KwWhen:
		return p.parseCaseWhen(kw, pred)
	default:
		p.report(diag.SynExpectWhen, p.peek().Span, "expected `when` or `in` after case")
		p.resync(token.KwEnd)
		p.accept(token.KwEnd)
		return &ast.CaseNode{
			Base:      ast.Base{Loc: p.spanFrom(kw.Span)},
			Predicate: pred,
		}
	}
}

func (p *Parser) parseCaseWhen(kw token.Token, pred ast.Node) ast.Node {
	var clauses []ast.Node
	for p.at(token.KwWhen) {
		wkw := p.advance()
		var conds []ast.Node
		for {
			if st, ok := p.accept(token.UStar); ok {
				expr := p.parseExpressionPrec(precTernary)
				conds = append(conds, &ast.SplatNode{
					Base:       ast.Base{Loc: st.Span.Cover(expr.Span())},
					Expression: expr,
				})
			} else {
				conds = append(conds, p.parseExpressionPrec(precTernary))
			}
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			p.skipNewlines()
		}
		p.acceptThen()
		stmts := p.parseStatements(stopAtBody)
		clauses = append(clauses, &ast.WhenNode{
			Base:       ast.Base{Loc: p.spanFrom(wkw.Span)},
			Conditions: conds,
			Statements: stmts,
		})
	}

	var elseClause *ast.ElseNode
	if p.at(token.KwElse) {
		elseClause = p.parseElse()
	}
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close case")
	return &ast.CaseNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Predicate:  pred,
		Conditions: clauses,
		Else:       elseClause,
	}
}

func (p *Parser) parseCaseMatch(kw token.Token, pred ast.Node) ast.Node {
	var clauses []ast.Node
	for p.at(token.KwIn) {
		ikw := p.advance()
		pattern := p.parsePattern()

		var guard ast.Node
		if _, ok := p.accept(token.KwIf); ok {
			guard = p.parseExpression()
		} else if _, ok := p.accept(token.KwUnless); ok {
			guard = p.parseExpression()
		}

		p.acceptThen()
		stmts := p.parseStatements(stopAtBody)
		clauses = append(clauses, &ast.InNode{
			Base:       ast.Base{Loc: p.spanFrom(ikw.Span)},
			Pattern:    pattern,
			Guard:      guard,
			Statements: stmts,
		})
	}

	var elseClause *ast.ElseNode
	if p.at(token.KwElse) {
		elseClause = p.parseElse()
	}
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close case")
	return &ast.CaseMatchNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Predicate:  pred,
		Conditions: clauses,
		Else:       elseClause,
	}
}

// parseBegin parses begin/rescue/else/ensure/end. The node is always a
// BeginNode even without clauses so the begin...end while form can be
// told apart from a plain group.
func (p *Parser) parseBegin(kw token.Token) ast.Node {
	stmts := p.parseStatements(stopAtBody)
	rescue, elseClause, ensure := p.parseBodyClauses()
	p.expect(token.KwEnd, diag.SynExpectEnd, "expected `end` to close begin")
	return &ast.BeginNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Statements: stmts,
		Rescue:     rescue,
		Else:       elseClause,
		Ensure:     ensure,
	}
}

// parseBodyStatements parses a def or block body, wrapping it in a
// BeginNode only when rescue, else, or ensure clauses appear.
func (p *Parser) parseBodyStatements() ast.Node {
	start := p.peek().Span
	stmts := p.parseStatements(stopAtBody)
	if !p.atAny(token.KwRescue, token.KwElse, token.KwEnsure) {
		if stmts == nil {
			return nil
		}
		return stmts
	}
	rescue, elseClause, ensure := p.parseBodyClauses()
	return &ast.BeginNode{
		Base:       ast.Base{Loc: start.Cover(p.lastSpan)},
		Statements: stmts,
		Rescue:     rescue,
		Else:       elseClause,
		Ensure:     ensure,
	}
}

// parseBodyClauses parses the rescue chain, else, and ensure that may
// trail a body. The caller consumes the closing end.
func (p *Parser) parseBodyClauses() (*ast.RescueNode, *ast.ElseNode, *ast.EnsureNode) {
	var rescue *ast.RescueNode
	if p.at(token.KwRescue) {
		rescue = p.parseRescueClause()
	}

	var elseClause *ast.ElseNode
	if p.at(token.KwElse) {
		elseClause = p.parseElse()
		if rescue == nil {
			p.report(diag.SynUnexpectedToken, elseClause.Loc,
				"else without rescue is useless")
		}
	}

	var ensure *ast.EnsureNode
	if kw, ok := p.accept(token.KwEnsure); ok {
		stmts := p.parseStatements(stopAtBody)
		ensure = &ast.EnsureNode{
			Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
			Statements: stmts,
		}
	}
	return rescue, elseClause, ensure
}

// parseRescueClause parses one rescue clause and links any chained
// clauses through Subsequent.
func (p *Parser) parseRescueClause() *ast.RescueNode {
	kw := p.advance() // rescue

	var exceptions []ast.Node
	if !p.atAny(token.FatArrow, token.Newline, token.Semicolon, token.KwThen) {
		for {
			exceptions = append(exceptions, p.parseExpressionPrec(precTernary))
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			p.skipNewlines()
		}
	}

	var reference ast.Node
	if _, ok := p.accept(token.FatArrow); ok {
		target := p.parseExpressionPrec(precTernary)
		if p.targetable(target) {
			reference = p.toTarget(target)
		} else {
			p.report(diag.SynExpectAssignTarget, target.Span(),
				"cannot assign the exception to this expression")
			reference = target
		}
	}

	p.acceptThen()
	stmts := p.parseStatements(stopAtBody)

	var subsequent *ast.RescueNode
	if p.at(token.KwRescue) {
		subsequent = p.parseRescueClause()
	}
	return &ast.RescueNode{
		Base:       ast.Base{Loc: p.spanFrom(kw.Span)},
		Exceptions: exceptions,
		Reference:  reference,
		Statements: stmts,
		Subsequent: subsequent,
	}
}
