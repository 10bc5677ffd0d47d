package parser

import (
	"strings"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/token"
)

func (p *Parser) parseExpression() ast.Node {
	return p.parseExpressionPrec(precComposition)
}

// parseExpressionPrec is the precedence-climbing loop. Assignment and
// the rescue modifier sit outside binaryPrec because they need special
// right-hand handling.
func (p *Parser) parseExpressionPrec(minPrec int) ast.Node {
	left := p.parsePrefix(minPrec)
	return p.parseInfix(left, minPrec)
}

func (p *Parser) parseInfix(left ast.Node, minPrec int) ast.Node {
	for {
		t := p.peek()
		switch t.Kind {
		case token.Assign, token.OpAssign:
			if precAssign < minPrec {
				return left
			}
			left = p.parseAssignment(left, p.advance())
			continue
		case token.KwRescue:
			if precModifierRescue < minPrec {
				return left
			}
			p.advance()
			rhs := p.parseExpressionPrec(precModifierRescue)
			left = &ast.RescueModifierNode{
				Base:             ast.Base{Loc: left.Span().Cover(rhs.Span())},
				Expression:       left,
				RescueExpression: rhs,
			}
			continue
		}

		prec, rightAssoc := binaryPrec(t.Kind)
		if prec == precNone || prec < minPrec {
			return left
		}

		switch t.Kind {
		case token.Question:
			left = p.parseTernary(left)
		case token.Dot2, token.Dot3:
			left = p.parseRangeTail(left, p.advance())
		case token.KwAnd, token.Amp2:
			p.advance()
			right := p.parseExpressionPrec(prec + 1)
			left = &ast.AndNode{
				Base:  ast.Base{Loc: left.Span().Cover(right.Span())},
				Left:  left,
				Right: right,
			}
		case token.KwOr, token.Pipe2:
			p.advance()
			right := p.parseExpressionPrec(prec + 1)
			left = &ast.OrNode{
				Base:  ast.Base{Loc: left.Span().Cover(right.Span())},
				Left:  left,
				Right: right,
			}
		default:
			op := p.advance()
			next := prec + 1
			if rightAssoc {
				next = prec
			}
			right := p.parseExpressionPrec(next)
			left = p.binaryCall(left, op, right)
		}
	}
}

// binaryCall builds the method-call representation of a binary
// operator expression.
func (p *Parser) binaryCall(left ast.Node, op token.Token, right ast.Node) ast.Node {
	sp := left.Span().Cover(right.Span())
	args := &ast.ArgumentsNode{
		Base:      ast.Base{Loc: right.Span()},
		Arguments: []ast.Node{right},
	}
	return &ast.CallNode{
		Base:      ast.Base{Loc: sp},
		Receiver:  left,
		Name:      op.Text,
		Arguments: args,
	}
}

func (p *Parser) parseTernary(pred ast.Node) ast.Node {
	p.advance() // ?
	p.skipNewlines()
	mid := p.parseExpressionPrec(precTernary)
	p.skipNewlines()
	p.expect(token.Colon, diag.SynExpectDelimiter, "expected `:` in ternary expression")
	p.skipNewlines()
	right := p.parseExpressionPrec(precTernary)
	sp := pred.Span().Cover(right.Span())
	return &ast.IfNode{
		Base:       ast.Base{Loc: sp},
		Predicate:  pred,
		Statements: wrapStatement(mid),
		Subsequent: &ast.ElseNode{
			Base:       ast.Base{Loc: right.Span()},
			Statements: wrapStatement(right),
		},
	}
}

// parseRangeTail finishes `left .. right` where the right endpoint is
// optional.
func (p *Parser) parseRangeTail(left ast.Node, op token.Token) ast.Node {
	var right ast.Node
	sp := op.Span
	if left != nil {
		sp = left.Span().Cover(op.Span)
	}
	if p.rangeOperandAhead() {
		right = p.parseExpressionPrec(precRange + 1)
		sp = sp.Cover(right.Span())
	}
	return &ast.RangeNode{
		Base:      ast.Base{Loc: sp},
		Left:      left,
		Right:     right,
		Exclusive: op.Kind == token.Dot3,
	}
}

// rangeOperandAhead reports whether a right range endpoint follows, as
// opposed to an endless range.
func (p *Parser) rangeOperandAhead() bool {
	switch p.peek().Kind {
	case token.Newline, token.Semicolon, token.EOF, token.RParen,
		token.RBracket, token.RBrace, token.Comma, token.EmbExprEnd,
		token.KwThen, token.KwDo, token.KwEnd, token.KwIf, token.KwUnless,
		token.KwWhile, token.KwUntil, token.KwRescue, token.FatArrow:
		return false
	default:
		return true
	}
}

func (p *Parser) parsePrefix(minPrec int) ast.Node {
	t := p.peek()
	switch t.Kind {
	case token.Bang:
		op := p.advance()
		operand := p.parseExpressionPrec(precUnary)
		return p.unaryCall(op, operand, "!")
	case token.Tilde:
		op := p.advance()
		operand := p.parseExpressionPrec(precUnary)
		return p.unaryCall(op, operand, "~")
	case token.UPlus:
		op := p.advance()
		operand := p.parseExpressionPrec(precUnary)
		return p.unaryCall(op, operand, "+@")
	case token.UMinus:
		return p.parseUnaryMinus(p.advance())
	case token.KwNot:
		op := p.advance()
		var operand ast.Node
		if lp, ok := p.accept(token.LParen); ok {
			operand = p.parseParenBody(lp)
		} else {
			operand = p.parseExpressionPrec(precAssign)
		}
		return p.unaryCall(op, operand, "!")
	case token.KwDefined:
		return p.parseDefined(p.advance())
	case token.Dot2, token.Dot3:
		// Beginless range.
		return p.parseRangeTail(nil, p.advance())
	default:
		return p.parsePostfixed()
	}
}

func (p *Parser) unaryCall(op token.Token, operand ast.Node, name string) ast.Node {
	return &ast.CallNode{
		Base:     ast.Base{Loc: op.Span.Cover(operand.Span())},
		Receiver: operand,
		Name:     name,
	}
}

// parseUnaryMinus folds the sign into numeric literals, keeping the
// `-n ** e` reading where the exponent binds first.
func (p *Parser) parseUnaryMinus(op token.Token) ast.Node {
	if p.atAny(token.Integer, token.Float, token.Rational, token.Imaginary) {
		lit := p.parseNumericLiteral(p.advance())
		if p.at(token.Star2) {
			power := p.parseInfix(lit, precPower)
			return p.unaryCall(op, power, "-@")
		}
		return negateLiteral(op, lit)
	}
	operand := p.parseExpressionPrec(precUnaryMinus)
	return p.unaryCall(op, operand, "-@")
}

func negateLiteral(op token.Token, lit ast.Node) ast.Node {
	switch n := lit.(type) {
	case *ast.IntegerNode:
		n.Value = -n.Value
		n.Loc = op.Span.Cover(n.Loc)
		return n
	case *ast.FloatNode:
		n.Value = -n.Value
		n.Loc = op.Span.Cover(n.Loc)
		return n
	case *ast.RationalNode:
		n.Numerator = -n.Numerator
		n.Loc = op.Span.Cover(n.Loc)
		return n
	case *ast.ImaginaryNode:
		n.Numeric = negateLiteral(op, n.Numeric)
		n.Loc = op.Span.Cover(n.Loc)
		return n
	default:
		return lit
	}
}

func (p *Parser) parseDefined(kw token.Token) ast.Node {
	var value ast.Node
	if _, ok := p.accept(token.LParen); ok {
		p.skipNewlines()
		value = p.parseExpression()
		p.skipNewlines()
		p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)` to close defined?")
	} else {
		value = p.parseExpressionPrec(precUnary)
	}
	return &ast.DefinedNode{
		Base:  ast.Base{Loc: p.spanFrom(kw.Span)},
		Value: value,
	}
}

// parseAssignment converts left into a write node. tok is Assign or
// OpAssign; for OpAssign the operator (without `=`) rides in Text.
func (p *Parser) parseAssignment(left ast.Node, tok token.Token) ast.Node {
	operator := strings.TrimSuffix(tok.Text, "=")
	value := p.parseAssignValueFor(tok)
	sp := left.Span().Cover(value.Span())
	base := ast.Base{Loc: sp}

	switch target := left.(type) {
	case *ast.LocalVariableReadNode:
		p.declare(target.Name)
		return localWrite(base, target.Name, tok, operator, value)
	case *ast.ItLocalVariableReadNode:
		p.declare("it")
		return localWrite(base, "it", tok, operator, value)
	case *ast.InstanceVariableReadNode:
		switch classify(tok, operator) {
		case writePlain:
			return &ast.InstanceVariableWriteNode{Base: base, Name: target.Name, Value: value}
		case writeOr:
			return &ast.InstanceVariableOrWriteNode{Base: base, Name: target.Name, Value: value}
		case writeAnd:
			return &ast.InstanceVariableAndWriteNode{Base: base, Name: target.Name, Value: value}
		default:
			return &ast.InstanceVariableOperatorWriteNode{Base: base, Name: target.Name, Operator: operator, Value: value}
		}
	case *ast.ClassVariableReadNode:
		switch classify(tok, operator) {
		case writePlain:
			return &ast.ClassVariableWriteNode{Base: base, Name: target.Name, Value: value}
		case writeOr:
			return &ast.ClassVariableOrWriteNode{Base: base, Name: target.Name, Value: value}
		case writeAnd:
			return &ast.ClassVariableAndWriteNode{Base: base, Name: target.Name, Value: value}
		default:
			return &ast.ClassVariableOperatorWriteNode{Base: base, Name: target.Name, Operator: operator, Value: value}
		}
	case *ast.GlobalVariableReadNode:
		switch classify(tok, operator) {
		case writePlain:
			return &ast.GlobalVariableWriteNode{Base: base, Name: target.Name, Value: value}
		case writeOr:
			return &ast.GlobalVariableOrWriteNode{Base: base, Name: target.Name, Value: value}
		case writeAnd:
			return &ast.GlobalVariableAndWriteNode{Base: base, Name: target.Name, Value: value}
		default:
			return &ast.GlobalVariableOperatorWriteNode{Base: base, Name: target.Name, Operator: operator, Value: value}
		}
	case *ast.ConstantReadNode:
		switch classify(tok, operator) {
		case writePlain:
			return &ast.ConstantWriteNode{Base: base, Name: target.Name, Value: value}
		case writeOr:
			return &ast.ConstantOrWriteNode{Base: base, Name: target.Name, Value: value}
		case writeAnd:
			return &ast.ConstantAndWriteNode{Base: base, Name: target.Name, Value: value}
		default:
			return &ast.ConstantOperatorWriteNode{Base: base, Name: target.Name, Operator: operator, Value: value}
		}
	case *ast.ConstantPathNode:
		if classify(tok, operator) == writePlain {
			return &ast.ConstantPathWriteNode{Base: base, Target: target, Value: value}
		}
		p.report(diag.SynExpectAssignTarget, tok.Span, "constant path does not support operator assignment")
		return &ast.ConstantPathWriteNode{Base: base, Target: target, Value: value}
	case *ast.CallNode:
		return p.callAssignment(target, tok, operator, value, base)
	default:
		p.report(diag.SynExpectAssignTarget, tok.Span, "cannot assign to this expression")
		return &ast.MissingNode{Base: base}
	}
}

// parseAssignValueFor parses the assignment right-hand side. Plain `=`
// at statement level may take a bare value list; operator assignment
// never does.
func (p *Parser) parseAssignValueFor(tok token.Token) ast.Node {
	p.skipNewlines()
	if tok.Kind == token.Assign {
		return p.parseAssignValue()
	}
	return p.parseExpressionPrec(precAssign)
}

type writeForm uint8

const (
	writePlain writeForm = iota
	writeOr
	writeAnd
	writeOperator
)

func classify(tok token.Token, operator string) writeForm {
	if tok.Kind == token.Assign {
		return writePlain
	}
	switch operator {
	case "||":
		return writeOr
	case "&&":
		return writeAnd
	default:
		return writeOperator
	}
}

// localWrite builds the local-variable write family. A bare identifier
// reaches here as a read node even when it was undeclared, because the
// primary parser resolves assignment lookahead before classifying.
func localWrite(base ast.Base, name string, tok token.Token, operator string, value ast.Node) ast.Node {
	switch classify(tok, operator) {
	case writePlain:
		return &ast.LocalVariableWriteNode{Base: base, Name: name, Value: value}
	case writeOr:
		return &ast.LocalVariableOrWriteNode{Base: base, Name: name, Value: value}
	case writeAnd:
		return &ast.LocalVariableAndWriteNode{Base: base, Name: name, Value: value}
	default:
		return &ast.LocalVariableOperatorWriteNode{Base: base, Name: name, Operator: operator, Value: value}
	}
}

// callAssignment handles attribute and index assignment targets.
func (p *Parser) callAssignment(target *ast.CallNode, tok token.Token, operator string, value ast.Node, base ast.Base) ast.Node {
	if target.VariableCall {
		p.declare(target.Name)
		return localWrite(base, target.Name, tok, operator, value)
	}

	if target.Name == "[]" {
		if classify(tok, operator) == writePlain {
			args := appendArgument(target.Arguments, value)
			return &ast.CallNode{
				Base:           base,
				Receiver:       target.Receiver,
				Name:           "[]=",
				Arguments:      args,
				Block:          target.Block,
				AttributeWrite: true,
			}
		}
		switch classify(tok, operator) {
		case writeOr:
			return &ast.IndexOrWriteNode{Base: base, Receiver: target.Receiver, Arguments: target.Arguments, Block: target.Block, Value: value}
		case writeAnd:
			return &ast.IndexAndWriteNode{Base: base, Receiver: target.Receiver, Arguments: target.Arguments, Block: target.Block, Value: value}
		default:
			return &ast.IndexOperatorWriteNode{Base: base, Receiver: target.Receiver, Arguments: target.Arguments, Block: target.Block, Operator: operator, Value: value}
		}
	}

	if target.Receiver != nil && target.Arguments == nil && target.Block == nil {
		switch classify(tok, operator) {
		case writePlain:
			args := &ast.ArgumentsNode{Base: ast.Base{Loc: value.Span()}, Arguments: []ast.Node{value}}
			return &ast.CallNode{
				Base:           base,
				Receiver:       target.Receiver,
				Name:           target.Name + "=",
				Arguments:      args,
				SafeNavigation: target.SafeNavigation,
				AttributeWrite: true,
			}
		case writeOr:
			return &ast.CallOrWriteNode{Base: base, Receiver: target.Receiver, Name: target.Name, Value: value, SafeNavigation: target.SafeNavigation}
		case writeAnd:
			return &ast.CallAndWriteNode{Base: base, Receiver: target.Receiver, Name: target.Name, Value: value, SafeNavigation: target.SafeNavigation}
		default:
			return &ast.CallOperatorWriteNode{Base: base, Receiver: target.Receiver, Name: target.Name, Operator: operator, Value: value, SafeNavigation: target.SafeNavigation}
		}
	}

	p.report(diag.SynExpectAssignTarget, tok.Span, "cannot assign to a method call with arguments")
	return &ast.MissingNode{Base: base}
}

func appendArgument(args *ast.ArgumentsNode, extra ast.Node) *ast.ArgumentsNode {
	if args == nil {
		return &ast.ArgumentsNode{Base: ast.Base{Loc: extra.Span()}, Arguments: []ast.Node{extra}}
	}
	out := &ast.ArgumentsNode{
		Base:      ast.Base{Loc: args.Loc.Cover(extra.Span())},
		Arguments: append(append([]ast.Node(nil), args.Arguments...), extra),
	}
	return out
}

// targetable reports whether n can appear on the left of a multiple
// assignment.
func (p *Parser) targetable(n ast.Node) bool {
	switch c := n.(type) {
	case *ast.LocalVariableReadNode, *ast.InstanceVariableReadNode,
		*ast.ClassVariableReadNode, *ast.GlobalVariableReadNode,
		*ast.ConstantReadNode, *ast.ConstantPathNode:
		return true
	case *ast.CallNode:
		if c.VariableCall {
			return true
		}
		if c.Name == "[]" {
			return true
		}
		return c.Receiver != nil && c.Arguments == nil && c.Block == nil
	default:
		return false
	}
}

// toTarget rewrites a parsed expression into its target form and
// declares any local it introduces.
func (p *Parser) toTarget(n ast.Node) ast.Node {
	switch c := n.(type) {
	case *ast.LocalVariableReadNode:
		p.declare(c.Name)
		return &ast.LocalVariableTargetNode{Base: ast.Base{Loc: c.Loc}, Name: c.Name}
	case *ast.InstanceVariableReadNode:
		return &ast.InstanceVariableTargetNode{Base: ast.Base{Loc: c.Loc}, Name: c.Name}
	case *ast.ClassVariableReadNode:
		return &ast.ClassVariableTargetNode{Base: ast.Base{Loc: c.Loc}, Name: c.Name}
	case *ast.GlobalVariableReadNode:
		return &ast.GlobalVariableTargetNode{Base: ast.Base{Loc: c.Loc}, Name: c.Name}
	case *ast.ConstantReadNode:
		return &ast.ConstantTargetNode{Base: ast.Base{Loc: c.Loc}, Name: c.Name}
	case *ast.ConstantPathNode:
		return &ast.ConstantPathTargetNode{Base: ast.Base{Loc: c.Loc}, Path: c}
	case *ast.CallNode:
		if c.VariableCall {
			p.declare(c.Name)
			return &ast.LocalVariableTargetNode{Base: ast.Base{Loc: c.Loc}, Name: c.Name}
		}
		if c.Name == "[]" {
			return &ast.IndexTargetNode{Base: ast.Base{Loc: c.Loc}, Receiver: c.Receiver, Arguments: c.Arguments, Block: c.Block}
		}
		if c.Receiver != nil && c.Arguments == nil && c.Block == nil {
			return &ast.CallTargetNode{Base: ast.Base{Loc: c.Loc}, Receiver: c.Receiver, Name: c.Name, SafeNavigation: c.SafeNavigation}
		}
	case *ast.MultiTargetNode, *ast.SplatNode:
		return n
	}
	p.report(diag.SynExpectAssignTarget, n.Span(), "cannot use this expression as an assignment target")
	return &ast.MissingNode{Base: ast.Base{Loc: n.Span()}}
}
