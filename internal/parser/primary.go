package parser

import (
	"math"
	"strconv"
	"strings"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/token"
)

// parsePostfixed parses a primary expression and its postfix chain of
// method calls, constant paths, indexing, and blocks.
func (p *Parser) parsePostfixed() ast.Node {
	left := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case token.Dot, token.AmpDot:
			op := p.advance()
			left = p.parseCallOn(left, op.Kind == token.AmpDot)
		case token.ColonColon:
			if p.peekN(1).Kind == token.Constant && p.peekN(2).Kind != token.LParen {
				p.advance()
				name := p.advance()
				left = &ast.ConstantPathNode{
					Base:   ast.Base{Loc: left.Span().Cover(name.Span)},
					Parent: left,
					Name:   name.Text,
				}
			} else {
				p.advance()
				left = p.parseCallOn(left, false)
			}
		case token.LBracketIdx:
			left = p.parseIndexCall(left)
		case token.LBrace:
			if !p.callLike(left) {
				return left
			}
			left = p.attachBlock(left, p.parseBraceBlock())
		case token.KwDo:
			if p.noDoDepth > 0 || !p.callLike(left) {
				return left
			}
			left = p.attachBlock(left, p.parseDoBlock())
		default:
			return left
		}
	}
}

// callLike reports whether a block may attach to the node.
func (p *Parser) callLike(n ast.Node) bool {
	switch c := n.(type) {
	case *ast.CallNode:
		return c.Block == nil
	case *ast.SuperNode:
		return c.Block == nil
	case *ast.ForwardingSuperNode:
		return c.Block == nil
	case *ast.LambdaNode:
		return false
	default:
		return false
	}
}

func (p *Parser) attachBlock(n ast.Node, block ast.Node) ast.Node {
	switch c := n.(type) {
	case *ast.CallNode:
		c.Block = block
		c.VariableCall = false
		c.Loc = c.Loc.Cover(block.Span())
		return c
	case *ast.SuperNode:
		c.Block = block
		c.Loc = c.Loc.Cover(block.Span())
		return c
	case *ast.ForwardingSuperNode:
		if b, ok := block.(*ast.BlockNode); ok {
			c.Block = b
			c.Loc = c.Loc.Cover(b.Span())
		}
		return c
	default:
		return n
	}
}

func (p *Parser) parsePrimary() ast.Node {
	t := p.peek()
	switch t.Kind {
	case token.Integer, token.Float, token.Rational, token.Imaginary:
		return p.parseNumericLiteral(p.advance())
	case token.CharLit:
		p.advance()
		return &ast.StringNode{Base: ast.Base{Loc: t.Span}, Unescaped: t.Text}
	case token.Symbol:
		p.advance()
		return &ast.SymbolNode{Base: ast.Base{Loc: t.Span}, Unescaped: symbolText(t)}
	case token.StringBegin:
		return p.parseStringConcat(p.parseStringLiteral(p.advance()))
	case token.XStringBegin:
		return p.parseXStringLiteral(p.advance())
	case token.SymbolBegin:
		return p.parseSymbolLiteral(p.advance())
	case token.RegexpBegin:
		return p.parseRegexpLiteral(p.advance())
	case token.WordsBegin:
		return p.parseWordList(p.advance(), false)
	case token.SymbolsBegin:
		return p.parseWordList(p.advance(), true)
	case token.HeredocBegin:
		return p.parseStringConcat(p.parseHeredoc(p.advance()))

	case token.KwNil:
		p.advance()
		return &ast.NilNode{Base: ast.Base{Loc: t.Span}}
	case token.KwTrue:
		p.advance()
		return &ast.TrueNode{Base: ast.Base{Loc: t.Span}}
	case token.KwFalse:
		p.advance()
		return &ast.FalseNode{Base: ast.Base{Loc: t.Span}}
	case token.KwSelf:
		p.advance()
		return &ast.SelfNode{Base: ast.Base{Loc: t.Span}}
	case token.KwFile:
		p.advance()
		return &ast.SourceFileNode{Base: ast.Base{Loc: t.Span}, Filepath: p.opts.Filepath}
	case token.KwLine:
		p.advance()
		return &ast.SourceLineNode{Base: ast.Base{Loc: t.Span}}
	case token.KwEncoding:
		p.advance()
		return &ast.SourceEncodingNode{Base: ast.Base{Loc: t.Span}}

	case token.IVar:
		p.advance()
		return &ast.InstanceVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.CVar:
		p.advance()
		return &ast.ClassVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.GVar:
		p.advance()
		return &ast.GlobalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.BackRef:
		p.advance()
		return &ast.BackReferenceReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
	case token.NthRef:
		p.advance()
		return &ast.NumberedReferenceReadNode{Base: ast.Base{Loc: t.Span}, Number: nthRefNumber(t.Text)}

	case token.Constant:
		return p.parseConstantOrCall(p.advance())
	case token.Ident:
		return p.parseIdentifier(p.advance())
	case token.ColonColon:
		// ::Foo root constant path.
		op := p.advance()
		name := p.expect(token.Constant, diag.SynExpectConstant, "expected a constant after `::`")
		return &ast.ConstantPathNode{
			Base: ast.Base{Loc: op.Span.Cover(name.Span)},
			Name: name.Text,
		}

	case token.LParen:
		return p.parseParenBody(p.advance())
	case token.LBracket:
		return p.parseArrayLiteral(p.advance())
	case token.LBrace:
		return p.parseHashLiteral(p.advance())
	case token.Arrow:
		return p.parseLambda(p.advance())

	case token.KwIf:
		return p.parseIf(p.advance(), false)
	case token.KwUnless:
		return p.parseUnless(p.advance())
	case token.KwWhile:
		return p.parseWhile(p.advance())
	case token.KwUntil:
		return p.parseUntil(p.advance())
	case token.KwCase:
		return p.parseCase(p.advance())
	case token.KwFor:
		return p.parseFor(p.advance())
	case token.KwBegin:
		return p.parseBegin(p.advance())
	case token.KwDef:
		return p.parseDef(p.advance())
	case token.KwClass:
		return p.parseClass(p.advance())
	case token.KwModule:
		return p.parseModule(p.advance())

	case token.KwSuper:
		return p.parseSuper(p.advance())
	case token.KwYield:
		return p.parseYield(p.advance())
	case token.KwBreak:
		return p.parseJump(p.advance())
	case token.KwNext:
		return p.parseJump(p.advance())
	case token.KwReturn:
		return p.parseJump(p.advance())
	case token.KwRedo:
		p.advance()
		return &ast.RedoNode{Base: ast.Base{Loc: t.Span}}
	case token.KwRetry:
		p.advance()
		return &ast.RetryNode{Base: ast.Base{Loc: t.Span}}

	case token.Missing, token.Invalid:
		p.advance()
		return &ast.MissingNode{Base: ast.Base{Loc: t.Span}}

	default:
		return p.missingExpr("expected an expression, got " + t.Kind.String())
	}
}

// parseParenBody parses the statements inside ( ) after the opener has
// been consumed.
func (p *Parser) parseParenBody(lp token.Token) ast.Node {
	stmts := p.parseStatements(stopAt(token.RParen))
	p.expect(token.RParen, diag.SynExpectDelimiter, "expected `)`")
	return &ast.ParenthesesNode{
		Base: ast.Base{Loc: p.spanFrom(lp.Span)},
		Body: stmts,
	}
}

// parseConstantOrCall handles a leading Constant token: a constant
// read, or a method call when arguments follow.
func (p *Parser) parseConstantOrCall(t token.Token) ast.Node {
	if p.at(token.LParen) {
		return p.parseCallTail(nil, t.Span, t.Text, false)
	}
	if p.startsCommandArg() {
		return p.parseCommandCall(nil, t.Span, t.Text, false)
	}
	return &ast.ConstantReadNode{Base: ast.Base{Loc: t.Span}, Name: t.Text}
}

// parseIdentifier resolves a bare lowercase name: local variable,
// implicit block parameter, or method call.
func (p *Parser) parseIdentifier(t token.Token) ast.Node {
	name := t.Text

	if p.declared(name) && !p.at(token.LParen) {
		return &ast.LocalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: name}
	}

	if num, ok := numberedParamIndex(name); ok && !p.at(token.LParen) && !p.startsCommandArg() {
		if bs := p.blockScope(); bs != nil && !bs.hasParams {
			if num > bs.numberedMax {
				bs.numberedMax = num
			}
			bs.locals[name] = struct{}{}
			return &ast.LocalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: name}
		}
		p.report(diag.SynNumberedInOrdinary, t.Span, "numbered parameter "+name+" outside a block")
		return &ast.LocalVariableReadNode{Base: ast.Base{Loc: t.Span}, Name: name}
	}

	if name == "it" && p.opts.Version >= Ruby34 && !p.at(token.LParen) && !p.startsCommandArg() {
		if bs := p.blockScope(); bs != nil && !bs.hasParams && bs.numberedMax == 0 {
			bs.usedIt = true
			return &ast.ItLocalVariableReadNode{Base: ast.Base{Loc: t.Span}}
		}
	}

	if p.at(token.LParen) {
		return p.parseCallTail(nil, t.Span, name, false)
	}
	if p.startsCommandArg() {
		return p.parseCommandCall(nil, t.Span, name, false)
	}
	return &ast.CallNode{
		Base:         ast.Base{Loc: t.Span},
		Name:         name,
		VariableCall: true,
	}
}

func numberedParamIndex(name string) (int, bool) {
	if len(name) == 2 && name[0] == '_' && name[1] >= '1' && name[1] <= '9' {
		return int(name[1] - '0'), true
	}
	return 0, false
}

// startsCommandArg reports whether the current token can begin the
// first argument of a paren-less call. The lexer has already committed
// to unary readings (UMinus, UStar, ...) where spacing demanded them.
func (p *Parser) startsCommandArg() bool {
	t := p.peek()
	if t.Flags&token.FlagSpaceBefore == 0 {
		return false
	}
	switch t.Kind {
	case token.Integer, token.Float, token.Rational, token.Imaginary,
		token.CharLit, token.StringBegin, token.XStringBegin, token.Symbol,
		token.SymbolBegin, token.RegexpBegin, token.WordsBegin,
		token.SymbolsBegin, token.HeredocBegin,
		token.Ident, token.Constant, token.IVar, token.CVar, token.GVar,
		token.BackRef, token.NthRef, token.Label,
		token.KwNil, token.KwTrue, token.KwFalse, token.KwSelf,
		token.KwDefined, token.KwNot, token.KwFile, token.KwLine,
		token.KwEncoding, token.KwSuper, token.KwYield,
		token.UPlus, token.UMinus, token.UStar, token.UStar2, token.UAmp,
		token.Bang, token.Tilde, token.Arrow, token.ColonColon,
		token.LBracket:
		return true
	default:
		return false
	}
}

func (p *Parser) parseNumericLiteral(t token.Token) ast.Node {
	switch t.Kind {
	case token.Integer:
		v, ok := parseIntegerText(t.Text)
		if !ok {
			p.report(diag.LexBadNumber, t.Span, "integer literal out of range")
		}
		return &ast.IntegerNode{Base: ast.Base{Loc: t.Span}, Value: v}
	case token.Float:
		v, err := strconv.ParseFloat(strings.ReplaceAll(t.Text, "_", ""), 64)
		if err != nil {
			p.report(diag.LexBadNumber, t.Span, "malformed float literal")
		}
		return &ast.FloatNode{Base: ast.Base{Loc: t.Span}, Value: v}
	case token.Rational:
		num, den := parseRationalText(strings.TrimSuffix(t.Text, "r"))
		return &ast.RationalNode{Base: ast.Base{Loc: t.Span}, Numerator: num, Denominator: den}
	case token.Imaginary:
		inner := strings.TrimSuffix(t.Text, "i")
		var numeric ast.Node
		if strings.HasSuffix(inner, "r") {
			num, den := parseRationalText(strings.TrimSuffix(inner, "r"))
			numeric = &ast.RationalNode{Base: ast.Base{Loc: t.Span}, Numerator: num, Denominator: den}
		} else if strings.ContainsAny(inner, ".eE") && !strings.HasPrefix(inner, "0x") {
			v, _ := strconv.ParseFloat(strings.ReplaceAll(inner, "_", ""), 64)
			numeric = &ast.FloatNode{Base: ast.Base{Loc: t.Span}, Value: v}
		} else {
			v, _ := parseIntegerText(inner)
			numeric = &ast.IntegerNode{Base: ast.Base{Loc: t.Span}, Value: v}
		}
		return &ast.ImaginaryNode{Base: ast.Base{Loc: t.Span}, Numeric: numeric}
	default:
		return &ast.MissingNode{Base: ast.Base{Loc: t.Span}}
	}
}

func parseIntegerText(text string) (int64, bool) {
	s := strings.ReplaceAll(text, "_", "")
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		s, base = s[2:], 2
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		s, base = s[2:], 8
	case strings.HasPrefix(s, "0d"), strings.HasPrefix(s, "0D"):
		s = s[2:]
	case len(s) > 1 && s[0] == '0':
		s, base = s[1:], 8
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseRationalText(text string) (int64, int64) {
	s := strings.ReplaceAll(text, "_", "")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		fracDigits := len(s) - dot - 1
		num, _ := strconv.ParseInt(s[:dot]+s[dot+1:], 10, 64)
		den := int64(math.Pow10(fracDigits))
		if den == 0 {
			den = 1
		}
		return num, den
	}
	v, _ := strconv.ParseInt(s, 10, 64)
	return v, 1
}

func (p *Parser) parseArrayLiteral(lb token.Token) ast.Node {
	var elems []ast.Node
	p.skipNewlines()
	for !p.atAny(token.RBracket, token.EOF) {
		if p.atAny(token.UStar, token.Star) {
			st := p.advance()
			expr := p.parseExpressionPrec(precTernary)
			elems = append(elems, &ast.SplatNode{
				Base:       ast.Base{Loc: st.Span.Cover(expr.Span())},
				Expression: expr,
			})
		} else if p.at(token.Label) {
			// Trailing key: value pairs fold into one hash element.
			elems = append(elems, p.parseBareHash(token.RBracket))
			break
		} else {
			expr := p.parseExpressionPrec(precTernary)
			if p.at(token.FatArrow) {
				elems = append(elems, p.parseBareHashFrom(expr, token.RBracket))
				break
			}
			elems = append(elems, expr)
		}
		p.skipNewlines()
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}
	p.expect(token.RBracket, diag.SynExpectDelimiter, "expected `]` to close array literal")
	return &ast.ArrayNode{Base: ast.Base{Loc: p.spanFrom(lb.Span)}, Elements: elems}
}

func (p *Parser) parseHashLiteral(lb token.Token) ast.Node {
	var elems []ast.Node
	p.skipNewlines()
	for !p.atAny(token.RBrace, token.EOF) {
		elems = append(elems, p.parseHashElement())
		p.skipNewlines()
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
	}
	p.expect(token.RBrace, diag.SynExpectDelimiter, "expected `}` to close hash literal")
	return &ast.HashNode{Base: ast.Base{Loc: p.spanFrom(lb.Span)}, Elements: elems}
}

// parseHashElement parses one `key => value`, `key: value`, `key:`
// shorthand, or `**splat` entry.
func (p *Parser) parseHashElement() ast.Node {
	switch p.peek().Kind {
	case token.UStar2, token.Star2:
		st := p.advance()
		expr := p.parseExpressionPrec(precTernary)
		return &ast.AssocSplatNode{
			Base:  ast.Base{Loc: st.Span.Cover(expr.Span())},
			Value: expr,
		}
	case token.Label:
		lt := p.advance()
		key := &ast.SymbolNode{Base: ast.Base{Loc: lt.Span}, Unescaped: lt.Text}
		var value ast.Node
		sp := lt.Span
		if p.hashValueAhead() {
			value = p.parseExpressionPrec(precTernary)
			sp = sp.Cover(value.Span())
		}
		return &ast.AssocNode{Base: ast.Base{Loc: sp}, Key: key, Value: value}
	default:
		key := p.parseExpressionPrec(precTernary)
		p.expect(token.FatArrow, diag.SynExpectDelimiter, "expected `=>` in hash entry")
		value := p.parseExpressionPrec(precTernary)
		return &ast.AssocNode{
			Base:  ast.Base{Loc: key.Span().Cover(value.Span())},
			Key:   key,
			Value: value,
		}
	}
}

// hashValueAhead reports whether a value expression follows a label, as
// opposed to the {x:} punning shorthand.
func (p *Parser) hashValueAhead() bool {
	switch p.peek().Kind {
	case token.Comma, token.RBrace, token.RBracket, token.RParen,
		token.Newline, token.Semicolon, token.EOF:
		return false
	default:
		return true
	}
}

// parseBareHash collects label pairs at the tail of an array literal or
// argument list into a single hash node.
func (p *Parser) parseBareHash(closing token.Kind) ast.Node {
	first := p.parseHashElement()
	return p.parseBareHashElems(first, closing)
}

func (p *Parser) parseBareHashFrom(key ast.Node, closing token.Kind) ast.Node {
	p.advance() // =>
	value := p.parseExpressionPrec(precTernary)
	first := &ast.AssocNode{
		Base:  ast.Base{Loc: key.Span().Cover(value.Span())},
		Key:   key,
		Value: value,
	}
	return p.parseBareHashElems(first, closing)
}

func (p *Parser) parseBareHashElems(first ast.Node, closing token.Kind) ast.Node {
	elems := []ast.Node{first}
	for {
		p.skipNewlines()
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		p.skipNewlines()
		if p.atAny(closing, token.EOF) {
			break
		}
		elems = append(elems, p.parseHashElement())
	}
	sp := elems[0].Span().Cover(elems[len(elems)-1].Span())
	return &ast.HashNode{Base: ast.Base{Loc: sp}, Elements: elems}
}
