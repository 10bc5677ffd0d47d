package serialize

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"garnet/internal/ast"
)

// encoder carries a sticky error so the per-kind layouts below read as
// straight-line field lists.
type encoder struct {
	enc *msgpack.Encoder
	err error
}

func (e *encoder) fail(err error) {
	if e.err == nil && err != nil {
		e.err = fmt.Errorf("serialize: encode: %w", err)
	}
}

// head opens a node record: array header, kind tag, span, newline flag.
func (e *encoder) head(n ast.Node, fields int) {
	if e.err != nil {
		return
	}
	e.fail(e.enc.EncodeArrayLen(4 + fields))
	e.fail(e.enc.EncodeUint16(uint16(n.Kind())))
	sp := n.Span()
	e.fail(e.enc.EncodeUint32(sp.Start))
	e.fail(e.enc.EncodeUint32(sp.End))
	e.fail(e.enc.EncodeBool(n.NewlineFlag()))
}

func (e *encoder) str(s string) {
	if e.err == nil {
		e.fail(e.enc.EncodeString(s))
	}
}

func (e *encoder) b(v bool) {
	if e.err == nil {
		e.fail(e.enc.EncodeBool(v))
	}
}

func (e *encoder) i64(v int64) {
	if e.err == nil {
		e.fail(e.enc.EncodeInt(v))
	}
}

func (e *encoder) f64(v float64) {
	if e.err == nil {
		e.fail(e.enc.EncodeFloat64(v))
	}
}

func (e *encoder) u8(v uint8) {
	if e.err == nil {
		e.fail(e.enc.EncodeUint8(v))
	}
}

func (e *encoder) nodes(ns []ast.Node) {
	if e.err != nil {
		return
	}
	e.fail(e.enc.EncodeArrayLen(len(ns)))
	for _, n := range ns {
		e.node(n)
	}
}

// node writes one node record, dispatching on the concrete type. Nil
// children become msgpack nil.
func (e *encoder) node(n ast.Node) {
	if e.err != nil {
		return
	}
	if n == nil {
		e.fail(e.enc.EncodeNil())
		return
	}

	switch v := n.(type) {
	case *ast.ProgramNode:
		e.head(v, 1)
		e.node(optNode(v.Statements))
	case *ast.StatementsNode:
		e.head(v, 1)
		e.nodes(v.Body)
	case *ast.MissingNode:
		e.head(v, 0)
	case *ast.ParenthesesNode:
		e.head(v, 1)
		e.node(optNode(v.Body))
	case *ast.BeginNode:
		e.head(v, 4)
		e.node(optNode(v.Statements))
		e.node(optNode(v.Rescue))
		e.node(optNode(v.Else))
		e.node(optNode(v.Ensure))
	case *ast.RescueNode:
		e.head(v, 4)
		e.nodes(v.Exceptions)
		e.node(v.Reference)
		e.node(optNode(v.Statements))
		e.node(optNode(v.Subsequent))
	case *ast.ElseNode:
		e.head(v, 1)
		e.node(optNode(v.Statements))
	case *ast.EnsureNode:
		e.head(v, 1)
		e.node(optNode(v.Statements))
	case *ast.RescueModifierNode:
		e.head(v, 2)
		e.node(v.Expression)
		e.node(v.RescueExpression)

	case *ast.IntegerNode:
		e.head(v, 1)
		e.i64(v.Value)
	case *ast.FloatNode:
		e.head(v, 1)
		e.f64(v.Value)
	case *ast.RationalNode:
		e.head(v, 2)
		e.i64(v.Numerator)
		e.i64(v.Denominator)
	case *ast.ImaginaryNode:
		e.head(v, 1)
		e.node(v.Numeric)
	case *ast.StringNode:
		e.head(v, 1)
		e.str(v.Unescaped)
	case *ast.InterpolatedStringNode:
		e.head(v, 1)
		e.nodes(v.Parts)
	case *ast.XStringNode:
		e.head(v, 1)
		e.str(v.Unescaped)
	case *ast.InterpolatedXStringNode:
		e.head(v, 1)
		e.nodes(v.Parts)
	case *ast.SymbolNode:
		e.head(v, 1)
		e.str(v.Unescaped)
	case *ast.InterpolatedSymbolNode:
		e.head(v, 1)
		e.nodes(v.Parts)
	case *ast.RegularExpressionNode:
		e.head(v, 2)
		e.str(v.Unescaped)
		e.u8(uint8(v.Flags))
	case *ast.InterpolatedRegularExpressionNode:
		e.head(v, 2)
		e.nodes(v.Parts)
		e.u8(uint8(v.Flags))
	case *ast.EmbeddedStatementsNode:
		e.head(v, 1)
		e.node(optNode(v.Statements))
	case *ast.EmbeddedVariableNode:
		e.head(v, 1)
		e.node(v.Variable)
	case *ast.ArrayNode:
		e.head(v, 1)
		e.nodes(v.Elements)
	case *ast.HashNode:
		e.head(v, 1)
		e.nodes(v.Elements)
	case *ast.AssocNode:
		e.head(v, 2)
		e.node(v.Key)
		e.node(v.Value)
	case *ast.AssocSplatNode:
		e.head(v, 1)
		e.node(v.Value)
	case *ast.RangeNode:
		e.head(v, 3)
		e.node(v.Left)
		e.node(v.Right)
		e.b(v.Exclusive)
	case *ast.NilNode:
		e.head(v, 0)
	case *ast.TrueNode:
		e.head(v, 0)
	case *ast.FalseNode:
		e.head(v, 0)
	case *ast.SelfNode:
		e.head(v, 0)
	case *ast.SourceFileNode:
		e.head(v, 1)
		e.str(v.Filepath)
	case *ast.SourceLineNode:
		e.head(v, 0)
	case *ast.SourceEncodingNode:
		e.head(v, 0)

	// Read and target names are the node's own source slice, so only
	// the span travels.
	case *ast.LocalVariableReadNode:
		e.head(v, 0)
	case *ast.LocalVariableTargetNode:
		e.head(v, 0)
	case *ast.ItLocalVariableReadNode:
		e.head(v, 0)
	case *ast.InstanceVariableReadNode:
		e.head(v, 0)
	case *ast.InstanceVariableTargetNode:
		e.head(v, 0)
	case *ast.ClassVariableReadNode:
		e.head(v, 0)
	case *ast.ClassVariableTargetNode:
		e.head(v, 0)
	case *ast.GlobalVariableReadNode:
		e.head(v, 0)
	case *ast.GlobalVariableTargetNode:
		e.head(v, 0)
	case *ast.ConstantReadNode:
		e.head(v, 0)
	case *ast.ConstantTargetNode:
		e.head(v, 0)
	case *ast.BackReferenceReadNode:
		e.head(v, 0)
	case *ast.NumberedReferenceReadNode:
		e.head(v, 1)
		e.i64(int64(v.Number))

	case *ast.LocalVariableWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.LocalVariableOperatorWriteNode:
		e.head(v, 3)
		e.str(v.Name)
		e.str(v.Operator)
		e.node(v.Value)
	case *ast.LocalVariableOrWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.LocalVariableAndWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.InstanceVariableWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.InstanceVariableOperatorWriteNode:
		e.head(v, 3)
		e.str(v.Name)
		e.str(v.Operator)
		e.node(v.Value)
	case *ast.InstanceVariableOrWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.InstanceVariableAndWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ClassVariableWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ClassVariableOperatorWriteNode:
		e.head(v, 3)
		e.str(v.Name)
		e.str(v.Operator)
		e.node(v.Value)
	case *ast.ClassVariableOrWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ClassVariableAndWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.GlobalVariableWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.GlobalVariableOperatorWriteNode:
		e.head(v, 3)
		e.str(v.Name)
		e.str(v.Operator)
		e.node(v.Value)
	case *ast.GlobalVariableOrWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.GlobalVariableAndWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ConstantWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ConstantOperatorWriteNode:
		e.head(v, 3)
		e.str(v.Name)
		e.str(v.Operator)
		e.node(v.Value)
	case *ast.ConstantOrWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ConstantAndWriteNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.ConstantPathNode:
		e.head(v, 2)
		e.node(v.Parent)
		e.str(v.Name)
	case *ast.ConstantPathWriteNode:
		e.head(v, 2)
		e.node(optNode(v.Target))
		e.node(v.Value)
	case *ast.ConstantPathTargetNode:
		e.head(v, 1)
		e.node(optNode(v.Path))

	case *ast.CallNode:
		e.head(v, 7)
		e.node(v.Receiver)
		e.str(v.Name)
		e.node(optNode(v.Arguments))
		e.node(v.Block)
		e.b(v.SafeNavigation)
		e.b(v.VariableCall)
		e.b(v.AttributeWrite)
	case *ast.CallOperatorWriteNode:
		e.head(v, 5)
		e.node(v.Receiver)
		e.str(v.Name)
		e.str(v.Operator)
		e.node(v.Value)
		e.b(v.SafeNavigation)
	case *ast.CallOrWriteNode:
		e.head(v, 4)
		e.node(v.Receiver)
		e.str(v.Name)
		e.node(v.Value)
		e.b(v.SafeNavigation)
	case *ast.CallAndWriteNode:
		e.head(v, 4)
		e.node(v.Receiver)
		e.str(v.Name)
		e.node(v.Value)
		e.b(v.SafeNavigation)
	case *ast.CallTargetNode:
		e.head(v, 3)
		e.node(v.Receiver)
		e.str(v.Name)
		e.b(v.SafeNavigation)
	case *ast.IndexTargetNode:
		e.head(v, 3)
		e.node(v.Receiver)
		e.node(optNode(v.Arguments))
		e.node(v.Block)
	case *ast.IndexOperatorWriteNode:
		e.head(v, 5)
		e.node(v.Receiver)
		e.node(optNode(v.Arguments))
		e.node(v.Block)
		e.str(v.Operator)
		e.node(v.Value)
	case *ast.IndexOrWriteNode:
		e.head(v, 4)
		e.node(v.Receiver)
		e.node(optNode(v.Arguments))
		e.node(v.Block)
		e.node(v.Value)
	case *ast.IndexAndWriteNode:
		e.head(v, 4)
		e.node(v.Receiver)
		e.node(optNode(v.Arguments))
		e.node(v.Block)
		e.node(v.Value)

	case *ast.ArgumentsNode:
		e.head(v, 1)
		e.nodes(v.Arguments)
	case *ast.KeywordHashNode:
		e.head(v, 1)
		e.nodes(v.Elements)
	case *ast.SplatNode:
		e.head(v, 1)
		e.node(v.Expression)
	case *ast.BlockArgumentNode:
		e.head(v, 1)
		e.node(v.Expression)
	case *ast.ForwardingArgumentsNode:
		e.head(v, 0)
	case *ast.BlockNode:
		e.head(v, 2)
		e.node(v.Parameters)
		e.node(v.Body)
	case *ast.BlockParametersNode:
		e.head(v, 2)
		e.node(optNode(v.Parameters))
		e.nodes(v.Locals)
	case *ast.NumberedParametersNode:
		e.head(v, 1)
		e.i64(int64(v.Maximum))
	case *ast.ItParametersNode:
		e.head(v, 0)
	case *ast.LambdaNode:
		e.head(v, 2)
		e.node(v.Parameters)
		e.node(v.Body)
	case *ast.SuperNode:
		e.head(v, 2)
		e.node(optNode(v.Arguments))
		e.node(v.Block)
	case *ast.ForwardingSuperNode:
		e.head(v, 1)
		e.node(optNode(v.Block))
	case *ast.YieldNode:
		e.head(v, 1)
		e.node(optNode(v.Arguments))

	case *ast.AndNode:
		e.head(v, 2)
		e.node(v.Left)
		e.node(v.Right)
	case *ast.OrNode:
		e.head(v, 2)
		e.node(v.Left)
		e.node(v.Right)
	case *ast.DefinedNode:
		e.head(v, 1)
		e.node(v.Value)
	case *ast.IfNode:
		e.head(v, 3)
		e.node(v.Predicate)
		e.node(optNode(v.Statements))
		e.node(v.Subsequent)
	case *ast.UnlessNode:
		e.head(v, 3)
		e.node(v.Predicate)
		e.node(optNode(v.Statements))
		e.node(optNode(v.Else))
	case *ast.WhileNode:
		e.head(v, 3)
		e.node(v.Predicate)
		e.node(optNode(v.Statements))
		e.b(v.DoWhile)
	case *ast.UntilNode:
		e.head(v, 3)
		e.node(v.Predicate)
		e.node(optNode(v.Statements))
		e.b(v.DoWhile)
	case *ast.ForNode:
		e.head(v, 3)
		e.node(v.Index)
		e.node(v.Collection)
		e.node(optNode(v.Statements))
	case *ast.CaseNode:
		e.head(v, 3)
		e.node(v.Predicate)
		e.nodes(v.Conditions)
		e.node(optNode(v.Else))
	case *ast.WhenNode:
		e.head(v, 2)
		e.nodes(v.Conditions)
		e.node(optNode(v.Statements))
	case *ast.CaseMatchNode:
		e.head(v, 3)
		e.node(v.Predicate)
		e.nodes(v.Conditions)
		e.node(optNode(v.Else))
	case *ast.InNode:
		e.head(v, 3)
		e.node(v.Pattern)
		e.node(v.Guard)
		e.node(optNode(v.Statements))
	case *ast.BreakNode:
		e.head(v, 1)
		e.node(optNode(v.Arguments))
	case *ast.NextNode:
		e.head(v, 1)
		e.node(optNode(v.Arguments))
	case *ast.RedoNode:
		e.head(v, 0)
	case *ast.RetryNode:
		e.head(v, 0)
	case *ast.ReturnNode:
		e.head(v, 1)
		e.node(optNode(v.Arguments))

	case *ast.MultiWriteNode:
		e.head(v, 4)
		e.nodes(v.Lefts)
		e.node(v.Rest)
		e.nodes(v.Rights)
		e.node(v.Value)
	case *ast.MultiTargetNode:
		e.head(v, 3)
		e.nodes(v.Lefts)
		e.node(v.Rest)
		e.nodes(v.Rights)
	case *ast.ImplicitRestNode:
		e.head(v, 0)

	case *ast.DefNode:
		e.head(v, 5)
		e.str(v.Name)
		e.node(v.Receiver)
		e.node(optNode(v.Parameters))
		e.node(v.Body)
		e.b(v.Endless)
	case *ast.ParametersNode:
		e.head(v, 7)
		e.nodes(v.Requireds)
		e.nodes(v.Optionals)
		e.node(v.Rest)
		e.nodes(v.Posts)
		e.nodes(v.Keywords)
		e.node(v.KeywordRest)
		e.node(optNode(v.Block))
	case *ast.RequiredParameterNode:
		e.head(v, 0)
	case *ast.OptionalParameterNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.RestParameterNode:
		e.head(v, 1)
		e.str(v.Name)
	case *ast.RequiredKeywordParameterNode:
		e.head(v, 1)
		e.str(v.Name)
	case *ast.OptionalKeywordParameterNode:
		e.head(v, 2)
		e.str(v.Name)
		e.node(v.Value)
	case *ast.KeywordRestParameterNode:
		e.head(v, 1)
		e.str(v.Name)
	case *ast.NoKeywordsParameterNode:
		e.head(v, 0)
	case *ast.ForwardingParameterNode:
		e.head(v, 0)
	case *ast.BlockParameterNode:
		e.head(v, 1)
		e.str(v.Name)
	case *ast.ClassNode:
		e.head(v, 3)
		e.node(v.ConstantPath)
		e.node(v.Superclass)
		e.node(v.Body)
	case *ast.SingletonClassNode:
		e.head(v, 2)
		e.node(v.Expression)
		e.node(v.Body)
	case *ast.ModuleNode:
		e.head(v, 2)
		e.node(v.ConstantPath)
		e.node(v.Body)
	case *ast.AliasMethodNode:
		e.head(v, 2)
		e.node(v.NewName)
		e.node(v.OldName)
	case *ast.AliasGlobalVariableNode:
		e.head(v, 2)
		e.node(v.NewName)
		e.node(v.OldName)
	case *ast.UndefNode:
		e.head(v, 1)
		e.nodes(v.Names)

	case *ast.ArrayPatternNode:
		e.head(v, 4)
		e.node(v.Constant)
		e.nodes(v.Requireds)
		e.node(v.Rest)
		e.nodes(v.Posts)
	case *ast.HashPatternNode:
		e.head(v, 3)
		e.node(v.Constant)
		e.nodes(v.Elements)
		e.node(v.Rest)
	case *ast.FindPatternNode:
		e.head(v, 4)
		e.node(v.Constant)
		e.node(optNode(v.Left))
		e.nodes(v.Requireds)
		e.node(optNode(v.Right))
	case *ast.AlternationPatternNode:
		e.head(v, 2)
		e.node(v.Left)
		e.node(v.Right)
	case *ast.CapturePatternNode:
		e.head(v, 2)
		e.node(v.Value)
		e.node(optNode(v.Target))
	case *ast.PinnedVariableNode:
		e.head(v, 1)
		e.node(v.Variable)
	case *ast.PinnedExpressionNode:
		e.head(v, 1)
		e.node(v.Expression)
	case *ast.MatchPredicateNode:
		e.head(v, 2)
		e.node(v.Value)
		e.node(v.Pattern)
	case *ast.MatchRequiredNode:
		e.head(v, 2)
		e.node(v.Value)
		e.node(v.Pattern)

	case *ast.PreExecutionNode:
		e.head(v, 1)
		e.node(optNode(v.Statements))
	case *ast.PostExecutionNode:
		e.head(v, 1)
		e.node(optNode(v.Statements))

	default:
		e.fail(fmt.Errorf("unhandled node kind %s", n.Kind()))
	}
}

// optNode lifts a typed nil pointer into a nil interface.
func optNode[N interface {
	ast.Node
	comparable
}](n N) ast.Node {
	var zero N
	if n == zero {
		return nil
	}
	return n
}
