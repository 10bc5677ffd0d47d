package serialize

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"garnet/internal/ast"
	"garnet/internal/source"
)

// decoder carries a sticky error and the original source buffer.
// Source-derived names are rebuilt by slicing src with the record's
// span, so spans are validated before any slice happens.
type decoder struct {
	dec *msgpack.Decoder
	src []byte
	err error
}

func (d *decoder) fail(err error) {
	if d.err == nil && err != nil {
		d.err = fmt.Errorf("serialize: decode: %w", err)
	}
}

func (d *decoder) failf(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("serialize: decode: "+format, args...)
	}
}

// head reads the record prefix shared by every node: tag, span,
// newline flag. It returns the kind and the populated Base.
func (d *decoder) head() (ast.NodeKind, ast.Base) {
	if d.err != nil {
		return ast.KindInvalid, ast.Base{}
	}
	if _, err := d.dec.DecodeArrayLen(); err != nil {
		d.fail(err)
		return ast.KindInvalid, ast.Base{}
	}
	tag, err := d.dec.DecodeUint16()
	if err != nil {
		d.fail(err)
		return ast.KindInvalid, ast.Base{}
	}
	start := d.u32()
	end := d.u32()
	newline := d.b()
	if d.err != nil {
		return ast.KindInvalid, ast.Base{}
	}
	if start > end || end > uint32(len(d.src)) {
		d.failf("span [%d,%d) out of range for %d source bytes", start, end, len(d.src))
		return ast.KindInvalid, ast.Base{}
	}
	kind := ast.NodeKind(tag)
	if kind <= ast.KindInvalid || int(kind) >= ast.Count() {
		d.failf("unknown node tag %d", tag)
		return ast.KindInvalid, ast.Base{}
	}
	return kind, ast.Base{
		Loc:     source.Span{Start: start, End: end},
		Newline: newline,
	}
}

func (d *decoder) u32() uint32 {
	if d.err != nil {
		return 0
	}
	v, err := d.dec.DecodeUint32()
	d.fail(err)
	return v
}

func (d *decoder) str() string {
	if d.err != nil {
		return ""
	}
	v, err := d.dec.DecodeString()
	d.fail(err)
	return v
}

func (d *decoder) b() bool {
	if d.err != nil {
		return false
	}
	v, err := d.dec.DecodeBool()
	d.fail(err)
	return v
}

func (d *decoder) i64() int64 {
	if d.err != nil {
		return 0
	}
	v, err := d.dec.DecodeInt64()
	d.fail(err)
	return v
}

func (d *decoder) f64() float64 {
	if d.err != nil {
		return 0
	}
	v, err := d.dec.DecodeFloat64()
	d.fail(err)
	return v
}

func (d *decoder) u8() uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.dec.DecodeUint8()
	d.fail(err)
	return v
}

func (d *decoder) int() int {
	return int(d.i64())
}

func (d *decoder) nodes() []ast.Node {
	if d.err != nil {
		return nil
	}
	n, err := d.dec.DecodeArrayLen()
	if err != nil {
		d.fail(err)
		return nil
	}
	if n <= 0 {
		return nil
	}
	out := make([]ast.Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.node())
	}
	return out
}

// text rebuilds a source-derived name from the node's own span.
func (d *decoder) text(b ast.Base) string {
	return string(d.src[b.Loc.Start:b.Loc.End])
}

// as decodes the next record and asserts its concrete type. Nil records
// stay nil.
func as[T ast.Node](d *decoder) T {
	var zero T
	n := d.node()
	if n == nil {
		return zero
	}
	t, ok := n.(T)
	if !ok {
		d.failf("node %s in a slot expecting %T", n.Kind(), zero)
		return zero
	}
	return t
}

// node reads one record. A msgpack nil stands for an absent child.
func (d *decoder) node() ast.Node {
	if d.err != nil {
		return nil
	}
	c, err := d.dec.PeekCode()
	if err != nil {
		d.fail(err)
		return nil
	}
	if c == msgpcode.Nil {
		d.fail(d.dec.DecodeNil())
		return nil
	}

	kind, b := d.head()
	if d.err != nil {
		return nil
	}

	switch kind {
	case ast.KindProgram:
		return &ast.ProgramNode{Base: b, Statements: as[*ast.StatementsNode](d)}
	case ast.KindStatements:
		return &ast.StatementsNode{Base: b, Body: d.nodes()}
	case ast.KindMissing:
		return &ast.MissingNode{Base: b}
	case ast.KindParentheses:
		return &ast.ParenthesesNode{Base: b, Body: as[*ast.StatementsNode](d)}
	case ast.KindBegin:
		return &ast.BeginNode{
			Base:       b,
			Statements: as[*ast.StatementsNode](d),
			Rescue:     as[*ast.RescueNode](d),
			Else:       as[*ast.ElseNode](d),
			Ensure:     as[*ast.EnsureNode](d),
		}
	case ast.KindRescue:
		return &ast.RescueNode{
			Base:       b,
			Exceptions: d.nodes(),
			Reference:  d.node(),
			Statements: as[*ast.StatementsNode](d),
			Subsequent: as[*ast.RescueNode](d),
		}
	case ast.KindElse:
		return &ast.ElseNode{Base: b, Statements: as[*ast.StatementsNode](d)}
	case ast.KindEnsure:
		return &ast.EnsureNode{Base: b, Statements: as[*ast.StatementsNode](d)}
	case ast.KindRescueModifier:
		return &ast.RescueModifierNode{Base: b, Expression: d.node(), RescueExpression: d.node()}

	case ast.KindInteger:
		return &ast.IntegerNode{Base: b, Value: d.i64()}
	case ast.KindFloat:
		return &ast.FloatNode{Base: b, Value: d.f64()}
	case ast.KindRational:
		return &ast.RationalNode{Base: b, Numerator: d.i64(), Denominator: d.i64()}
	case ast.KindImaginary:
		return &ast.ImaginaryNode{Base: b, Numeric: d.node()}
	case ast.KindString:
		return &ast.StringNode{Base: b, Unescaped: d.str()}
	case ast.KindInterpolatedString:
		return &ast.InterpolatedStringNode{Base: b, Parts: d.nodes()}
	case ast.KindXString:
		return &ast.XStringNode{Base: b, Unescaped: d.str()}
	case ast.KindInterpolatedXString:
		return &ast.InterpolatedXStringNode{Base: b, Parts: d.nodes()}
	case ast.KindSymbol:
		return &ast.SymbolNode{Base: b, Unescaped: d.str()}
	case ast.KindInterpolatedSymbol:
		return &ast.InterpolatedSymbolNode{Base: b, Parts: d.nodes()}
	case ast.KindRegularExpression:
		return &ast.RegularExpressionNode{Base: b, Unescaped: d.str(), Flags: ast.RegexpFlags(d.u8())}
	case ast.KindInterpolatedRegularExpression:
		return &ast.InterpolatedRegularExpressionNode{Base: b, Parts: d.nodes(), Flags: ast.RegexpFlags(d.u8())}
	case ast.KindEmbeddedStatements:
		return &ast.EmbeddedStatementsNode{Base: b, Statements: as[*ast.StatementsNode](d)}
	case ast.KindEmbeddedVariable:
		return &ast.EmbeddedVariableNode{Base: b, Variable: d.node()}
	case ast.KindArray:
		return &ast.ArrayNode{Base: b, Elements: d.nodes()}
	case ast.KindHash:
		return &ast.HashNode{Base: b, Elements: d.nodes()}
	case ast.KindAssoc:
		return &ast.AssocNode{Base: b, Key: d.node(), Value: d.node()}
	case ast.KindAssocSplat:
		return &ast.AssocSplatNode{Base: b, Value: d.node()}
	case ast.KindRange:
		return &ast.RangeNode{Base: b, Left: d.node(), Right: d.node(), Exclusive: d.b()}
	case ast.KindNil:
		return &ast.NilNode{Base: b}
	case ast.KindTrue:
		return &ast.TrueNode{Base: b}
	case ast.KindFalse:
		return &ast.FalseNode{Base: b}
	case ast.KindSelf:
		return &ast.SelfNode{Base: b}
	case ast.KindSourceFile:
		return &ast.SourceFileNode{Base: b, Filepath: d.str()}
	case ast.KindSourceLine:
		return &ast.SourceLineNode{Base: b}
	case ast.KindSourceEncoding:
		return &ast.SourceEncodingNode{Base: b}

	case ast.KindLocalVariableRead:
		return &ast.LocalVariableReadNode{Base: b, Name: d.text(b)}
	case ast.KindLocalVariableTarget:
		return &ast.LocalVariableTargetNode{Base: b, Name: d.text(b)}
	case ast.KindItLocalVariableRead:
		return &ast.ItLocalVariableReadNode{Base: b}
	case ast.KindInstanceVariableRead:
		return &ast.InstanceVariableReadNode{Base: b, Name: d.text(b)}
	case ast.KindInstanceVariableTarget:
		return &ast.InstanceVariableTargetNode{Base: b, Name: d.text(b)}
	case ast.KindClassVariableRead:
		return &ast.ClassVariableReadNode{Base: b, Name: d.text(b)}
	case ast.KindClassVariableTarget:
		return &ast.ClassVariableTargetNode{Base: b, Name: d.text(b)}
	case ast.KindGlobalVariableRead:
		return &ast.GlobalVariableReadNode{Base: b, Name: d.text(b)}
	case ast.KindGlobalVariableTarget:
		return &ast.GlobalVariableTargetNode{Base: b, Name: d.text(b)}
	case ast.KindConstantRead:
		return &ast.ConstantReadNode{Base: b, Name: d.text(b)}
	case ast.KindConstantTarget:
		return &ast.ConstantTargetNode{Base: b, Name: d.text(b)}
	case ast.KindBackReferenceRead:
		return &ast.BackReferenceReadNode{Base: b, Name: d.text(b)}
	case ast.KindNumberedReferenceRead:
		return &ast.NumberedReferenceReadNode{Base: b, Number: d.int()}

	case ast.KindLocalVariableWrite:
		return &ast.LocalVariableWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindLocalVariableOperatorWrite:
		return &ast.LocalVariableOperatorWriteNode{Base: b, Name: d.str(), Operator: d.str(), Value: d.node()}
	case ast.KindLocalVariableOrWrite:
		return &ast.LocalVariableOrWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindLocalVariableAndWrite:
		return &ast.LocalVariableAndWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindInstanceVariableWrite:
		return &ast.InstanceVariableWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindInstanceVariableOperatorWrite:
		return &ast.InstanceVariableOperatorWriteNode{Base: b, Name: d.str(), Operator: d.str(), Value: d.node()}
	case ast.KindInstanceVariableOrWrite:
		return &ast.InstanceVariableOrWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindInstanceVariableAndWrite:
		return &ast.InstanceVariableAndWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindClassVariableWrite:
		return &ast.ClassVariableWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindClassVariableOperatorWrite:
		return &ast.ClassVariableOperatorWriteNode{Base: b, Name: d.str(), Operator: d.str(), Value: d.node()}
	case ast.KindClassVariableOrWrite:
		return &ast.ClassVariableOrWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindClassVariableAndWrite:
		return &ast.ClassVariableAndWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindGlobalVariableWrite:
		return &ast.GlobalVariableWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindGlobalVariableOperatorWrite:
		return &ast.GlobalVariableOperatorWriteNode{Base: b, Name: d.str(), Operator: d.str(), Value: d.node()}
	case ast.KindGlobalVariableOrWrite:
		return &ast.GlobalVariableOrWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindGlobalVariableAndWrite:
		return &ast.GlobalVariableAndWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindConstantWrite:
		return &ast.ConstantWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindConstantOperatorWrite:
		return &ast.ConstantOperatorWriteNode{Base: b, Name: d.str(), Operator: d.str(), Value: d.node()}
	case ast.KindConstantOrWrite:
		return &ast.ConstantOrWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindConstantAndWrite:
		return &ast.ConstantAndWriteNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindConstantPath:
		return &ast.ConstantPathNode{Base: b, Parent: d.node(), Name: d.str()}
	case ast.KindConstantPathWrite:
		return &ast.ConstantPathWriteNode{Base: b, Target: as[*ast.ConstantPathNode](d), Value: d.node()}
	case ast.KindConstantPathTarget:
		return &ast.ConstantPathTargetNode{Base: b, Path: as[*ast.ConstantPathNode](d)}

	case ast.KindCall:
		return &ast.CallNode{
			Base:           b,
			Receiver:       d.node(),
			Name:           d.str(),
			Arguments:      as[*ast.ArgumentsNode](d),
			Block:          d.node(),
			SafeNavigation: d.b(),
			VariableCall:   d.b(),
			AttributeWrite: d.b(),
		}
	case ast.KindCallOperatorWrite:
		return &ast.CallOperatorWriteNode{
			Base:           b,
			Receiver:       d.node(),
			Name:           d.str(),
			Operator:       d.str(),
			Value:          d.node(),
			SafeNavigation: d.b(),
		}
	case ast.KindCallOrWrite:
		return &ast.CallOrWriteNode{
			Base:           b,
			Receiver:       d.node(),
			Name:           d.str(),
			Value:          d.node(),
			SafeNavigation: d.b(),
		}
	case ast.KindCallAndWrite:
		return &ast.CallAndWriteNode{
			Base:           b,
			Receiver:       d.node(),
			Name:           d.str(),
			Value:          d.node(),
			SafeNavigation: d.b(),
		}
	case ast.KindCallTarget:
		return &ast.CallTargetNode{Base: b, Receiver: d.node(), Name: d.str(), SafeNavigation: d.b()}
	case ast.KindIndexTarget:
		return &ast.IndexTargetNode{Base: b, Receiver: d.node(), Arguments: as[*ast.ArgumentsNode](d), Block: d.node()}
	case ast.KindIndexOperatorWrite:
		return &ast.IndexOperatorWriteNode{
			Base:      b,
			Receiver:  d.node(),
			Arguments: as[*ast.ArgumentsNode](d),
			Block:     d.node(),
			Operator:  d.str(),
			Value:     d.node(),
		}
	case ast.KindIndexOrWrite:
		return &ast.IndexOrWriteNode{
			Base:      b,
			Receiver:  d.node(),
			Arguments: as[*ast.ArgumentsNode](d),
			Block:     d.node(),
			Value:     d.node(),
		}
	case ast.KindIndexAndWrite:
		return &ast.IndexAndWriteNode{
			Base:      b,
			Receiver:  d.node(),
			Arguments: as[*ast.ArgumentsNode](d),
			Block:     d.node(),
			Value:     d.node(),
		}

	case ast.KindArguments:
		return &ast.ArgumentsNode{Base: b, Arguments: d.nodes()}
	case ast.KindKeywordHash:
		return &ast.KeywordHashNode{Base: b, Elements: d.nodes()}
	case ast.KindSplat:
		return &ast.SplatNode{Base: b, Expression: d.node()}
	case ast.KindBlockArgument:
		return &ast.BlockArgumentNode{Base: b, Expression: d.node()}
	case ast.KindForwardingArguments:
		return &ast.ForwardingArgumentsNode{Base: b}
	case ast.KindBlock:
		return &ast.BlockNode{Base: b, Parameters: d.node(), Body: d.node()}
	case ast.KindBlockParameters:
		return &ast.BlockParametersNode{Base: b, Parameters: as[*ast.ParametersNode](d), Locals: d.nodes()}
	case ast.KindNumberedParameters:
		return &ast.NumberedParametersNode{Base: b, Maximum: d.int()}
	case ast.KindItParameters:
		return &ast.ItParametersNode{Base: b}
	case ast.KindLambda:
		return &ast.LambdaNode{Base: b, Parameters: d.node(), Body: d.node()}
	case ast.KindSuper:
		return &ast.SuperNode{Base: b, Arguments: as[*ast.ArgumentsNode](d), Block: d.node()}
	case ast.KindForwardingSuper:
		return &ast.ForwardingSuperNode{Base: b, Block: as[*ast.BlockNode](d)}
	case ast.KindYield:
		return &ast.YieldNode{Base: b, Arguments: as[*ast.ArgumentsNode](d)}

	case ast.KindAnd:
		return &ast.AndNode{Base: b, Left: d.node(), Right: d.node()}
	case ast.KindOr:
		return &ast.OrNode{Base: b, Left: d.node(), Right: d.node()}
	case ast.KindDefined:
		return &ast.DefinedNode{Base: b, Value: d.node()}
	case ast.KindIf:
		return &ast.IfNode{Base: b, Predicate: d.node(), Statements: as[*ast.StatementsNode](d), Subsequent: d.node()}
	case ast.KindUnless:
		return &ast.UnlessNode{Base: b, Predicate: d.node(), Statements: as[*ast.StatementsNode](d), Else: as[*ast.ElseNode](d)}
	case ast.KindWhile:
		return &ast.WhileNode{Base: b, Predicate: d.node(), Statements: as[*ast.StatementsNode](d), DoWhile: d.b()}
	case ast.KindUntil:
		return &ast.UntilNode{Base: b, Predicate: d.node(), Statements: as[*ast.StatementsNode](d), DoWhile: d.b()}
	case ast.KindFor:
		return &ast.ForNode{Base: b, Index: d.node(), Collection: d.node(), Statements: as[*ast.StatementsNode](d)}
	case ast.KindCase:
		return &ast.CaseNode{Base: b, Predicate: d.node(), Conditions: d.nodes(), Else: as[*ast.ElseNode](d)}
	case ast.KindWhen:
		return &ast.WhenNode{Base: b, Conditions: d.nodes(), Statements: as[*ast.StatementsNode](d)}
	case ast.KindCaseMatch:
		return &ast.CaseMatchNode{Base: b, Predicate: d.node(), Conditions: d.nodes(), Else: as[*ast.ElseNode](d)}
	case ast.KindIn:
		return &ast.InNode{Base: b, Pattern: d.node(), Guard: d.node(), Statements: as[*ast.StatementsNode](d)}
	case ast.KindBreak:
		return &ast.BreakNode{Base: b, Arguments: as[*ast.ArgumentsNode](d)}
	case ast.KindNext:
		return &ast.NextNode{Base: b, Arguments: as[*ast.ArgumentsNode](d)}
	case ast.KindRedo:
		return &ast.RedoNode{Base: b}
	case ast.KindRetry:
		return &ast.RetryNode{Base: b}
	case ast.KindReturn:
		return &ast.ReturnNode{Base: b, Arguments: as[*ast.ArgumentsNode](d)}

	case ast.KindMultiWrite:
		return &ast.MultiWriteNode{Base: b, Lefts: d.nodes(), Rest: d.node(), Rights: d.nodes(), Value: d.node()}
	case ast.KindMultiTarget:
		return &ast.MultiTargetNode{Base: b, Lefts: d.nodes(), Rest: d.node(), Rights: d.nodes()}
	case ast.KindImplicitRest:
		return &ast.ImplicitRestNode{Base: b}

	case ast.KindDef:
		return &ast.DefNode{
			Base:       b,
			Name:       d.str(),
			Receiver:   d.node(),
			Parameters: as[*ast.ParametersNode](d),
			Body:       d.node(),
			Endless:    d.b(),
		}
	case ast.KindParameters:
		return &ast.ParametersNode{
			Base:        b,
			Requireds:   d.nodes(),
			Optionals:   d.nodes(),
			Rest:        d.node(),
			Posts:       d.nodes(),
			Keywords:    d.nodes(),
			KeywordRest: d.node(),
			Block:       as[*ast.BlockParameterNode](d),
		}
	case ast.KindRequiredParameter:
		return &ast.RequiredParameterNode{Base: b, Name: d.text(b)}
	case ast.KindOptionalParameter:
		return &ast.OptionalParameterNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindRestParameter:
		return &ast.RestParameterNode{Base: b, Name: d.str()}
	case ast.KindRequiredKeywordParameter:
		return &ast.RequiredKeywordParameterNode{Base: b, Name: d.str()}
	case ast.KindOptionalKeywordParameter:
		return &ast.OptionalKeywordParameterNode{Base: b, Name: d.str(), Value: d.node()}
	case ast.KindKeywordRestParameter:
		return &ast.KeywordRestParameterNode{Base: b, Name: d.str()}
	case ast.KindNoKeywordsParameter:
		return &ast.NoKeywordsParameterNode{Base: b}
	case ast.KindForwardingParameter:
		return &ast.ForwardingParameterNode{Base: b}
	case ast.KindBlockParameter:
		return &ast.BlockParameterNode{Base: b, Name: d.str()}
	case ast.KindClass:
		return &ast.ClassNode{Base: b, ConstantPath: d.node(), Superclass: d.node(), Body: d.node()}
	case ast.KindSingletonClass:
		return &ast.SingletonClassNode{Base: b, Expression: d.node(), Body: d.node()}
	case ast.KindModule:
		return &ast.ModuleNode{Base: b, ConstantPath: d.node(), Body: d.node()}
	case ast.KindAliasMethod:
		return &ast.AliasMethodNode{Base: b, NewName: d.node(), OldName: d.node()}
	case ast.KindAliasGlobalVariable:
		return &ast.AliasGlobalVariableNode{Base: b, NewName: d.node(), OldName: d.node()}
	case ast.KindUndef:
		return &ast.UndefNode{Base: b, Names: d.nodes()}

	case ast.KindArrayPattern:
		return &ast.ArrayPatternNode{Base: b, Constant: d.node(), Requireds: d.nodes(), Rest: d.node(), Posts: d.nodes()}
	case ast.KindHashPattern:
		return &ast.HashPatternNode{Base: b, Constant: d.node(), Elements: d.nodes(), Rest: d.node()}
	case ast.KindFindPattern:
		return &ast.FindPatternNode{
			Base:      b,
			Constant:  d.node(),
			Left:      as[*ast.SplatNode](d),
			Requireds: d.nodes(),
			Right:     as[*ast.SplatNode](d),
		}
	case ast.KindAlternationPattern:
		return &ast.AlternationPatternNode{Base: b, Left: d.node(), Right: d.node()}
	case ast.KindCapturePattern:
		return &ast.CapturePatternNode{Base: b, Value: d.node(), Target: as[*ast.LocalVariableTargetNode](d)}
	case ast.KindPinnedVariable:
		return &ast.PinnedVariableNode{Base: b, Variable: d.node()}
	case ast.KindPinnedExpression:
		return &ast.PinnedExpressionNode{Base: b, Expression: d.node()}
	case ast.KindMatchPredicate:
		return &ast.MatchPredicateNode{Base: b, Value: d.node(), Pattern: d.node()}
	case ast.KindMatchRequired:
		return &ast.MatchRequiredNode{Base: b, Value: d.node(), Pattern: d.node()}

	case ast.KindPreExecution:
		return &ast.PreExecutionNode{Base: b, Statements: as[*ast.StatementsNode](d)}
	case ast.KindPostExecution:
		return &ast.PostExecutionNode{Base: b, Statements: as[*ast.StatementsNode](d)}
	}

	d.failf("unhandled node tag %d", kind)
	return nil
}
