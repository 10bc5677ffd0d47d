package ast

// CallNode is a method call in any surface form: explicit receiver,
// operator sugar, or a bare identifier that did not resolve to a local
// variable (VariableCall true).
type CallNode struct {
	Base
	Receiver       Node
	Name           string
	Arguments      *ArgumentsNode
	Block          Node // BlockNode or BlockArgumentNode
	SafeNavigation bool // receiver&.name
	VariableCall   bool
	AttributeWrite bool // receiver.name = value sugar
}

func (n *CallNode) Kind() NodeKind { return KindCall }
func (n *CallNode) ChildNodes() []Node {
	return []Node{n.Receiver, opt(n.Arguments), n.Block}
}
func (n *CallNode) Accept(v Visitor) { v.VisitCall(n) }

// CallOperatorWriteNode is receiver.name op= value.
type CallOperatorWriteNode struct {
	Base
	Receiver       Node
	Name           string
	Operator       string
	Value          Node
	SafeNavigation bool
}

func (n *CallOperatorWriteNode) Kind() NodeKind     { return KindCallOperatorWrite }
func (n *CallOperatorWriteNode) ChildNodes() []Node { return []Node{n.Receiver, n.Value} }
func (n *CallOperatorWriteNode) Accept(v Visitor)   { v.VisitCallOperatorWrite(n) }

// CallOrWriteNode is receiver.name ||= value.
type CallOrWriteNode struct {
	Base
	Receiver       Node
	Name           string
	Value          Node
	SafeNavigation bool
}

func (n *CallOrWriteNode) Kind() NodeKind     { return KindCallOrWrite }
func (n *CallOrWriteNode) ChildNodes() []Node { return []Node{n.Receiver, n.Value} }
func (n *CallOrWriteNode) Accept(v Visitor)   { v.VisitCallOrWrite(n) }

// CallAndWriteNode is receiver.name &&= value.
type CallAndWriteNode struct {
	Base
	Receiver       Node
	Name           string
	Value          Node
	SafeNavigation bool
}

func (n *CallAndWriteNode) Kind() NodeKind     { return KindCallAndWrite }
func (n *CallAndWriteNode) ChildNodes() []Node { return []Node{n.Receiver, n.Value} }
func (n *CallAndWriteNode) Accept(v Visitor)   { v.VisitCallAndWrite(n) }

// CallTargetNode is receiver.name appearing as a multiple-assignment
// slot.
type CallTargetNode struct {
	Base
	Receiver       Node
	Name           string
	SafeNavigation bool
}

func (n *CallTargetNode) Kind() NodeKind     { return KindCallTarget }
func (n *CallTargetNode) ChildNodes() []Node { return []Node{n.Receiver} }
func (n *CallTargetNode) Accept(v Visitor)   { v.VisitCallTarget(n) }

// IndexTargetNode is receiver[args] as a multiple-assignment slot.
type IndexTargetNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Block     Node
}

func (n *IndexTargetNode) Kind() NodeKind { return KindIndexTarget }
func (n *IndexTargetNode) ChildNodes() []Node {
	return []Node{n.Receiver, opt(n.Arguments), n.Block}
}
func (n *IndexTargetNode) Accept(v Visitor) { v.VisitIndexTarget(n) }

// IndexOperatorWriteNode is receiver[args] op= value.
type IndexOperatorWriteNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Block     Node
	Operator  string
	Value     Node
}

func (n *IndexOperatorWriteNode) Kind() NodeKind { return KindIndexOperatorWrite }
func (n *IndexOperatorWriteNode) ChildNodes() []Node {
	return []Node{n.Receiver, opt(n.Arguments), n.Block, n.Value}
}
func (n *IndexOperatorWriteNode) Accept(v Visitor) { v.VisitIndexOperatorWrite(n) }

// IndexOrWriteNode is receiver[args] ||= value.
type IndexOrWriteNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Block     Node
	Value     Node
}

func (n *IndexOrWriteNode) Kind() NodeKind { return KindIndexOrWrite }
func (n *IndexOrWriteNode) ChildNodes() []Node {
	return []Node{n.Receiver, opt(n.Arguments), n.Block, n.Value}
}
func (n *IndexOrWriteNode) Accept(v Visitor) { v.VisitIndexOrWrite(n) }

// IndexAndWriteNode is receiver[args] &&= value.
type IndexAndWriteNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Block     Node
	Value     Node
}

func (n *IndexAndWriteNode) Kind() NodeKind { return KindIndexAndWrite }
func (n *IndexAndWriteNode) ChildNodes() []Node {
	return []Node{n.Receiver, opt(n.Arguments), n.Block, n.Value}
}
func (n *IndexAndWriteNode) Accept(v Visitor) { v.VisitIndexAndWrite(n) }

// ArgumentsNode is the positional and keyword arguments of one call.
type ArgumentsNode struct {
	Base
	Arguments []Node
}

func (n *ArgumentsNode) Kind() NodeKind     { return KindArguments }
func (n *ArgumentsNode) ChildNodes() []Node { return append([]Node(nil), n.Arguments...) }
func (n *ArgumentsNode) Accept(v Visitor)   { v.VisitArguments(n) }

// KeywordHashNode is the trailing bare key: value arguments of a call,
// kept distinct from a braced HashNode literal.
type KeywordHashNode struct {
	Base
	Elements []Node
}

func (n *KeywordHashNode) Kind() NodeKind     { return KindKeywordHash }
func (n *KeywordHashNode) ChildNodes() []Node { return append([]Node(nil), n.Elements...) }
func (n *KeywordHashNode) Accept(v Visitor)   { v.VisitKeywordHash(n) }

// SplatNode is *expr; Expression is nil for a bare * (forwarding or an
// anonymous rest target).
type SplatNode struct {
	Base
	Expression Node
}

func (n *SplatNode) Kind() NodeKind     { return KindSplat }
func (n *SplatNode) ChildNodes() []Node { return []Node{n.Expression} }
func (n *SplatNode) Accept(v Visitor)   { v.VisitSplat(n) }

// BlockArgumentNode is &expr in an argument list; Expression is nil for
// the bare & forwarding form.
type BlockArgumentNode struct {
	Base
	Expression Node
}

func (n *BlockArgumentNode) Kind() NodeKind     { return KindBlockArgument }
func (n *BlockArgumentNode) ChildNodes() []Node { return []Node{n.Expression} }
func (n *BlockArgumentNode) Accept(v Visitor)   { v.VisitBlockArgument(n) }

// ForwardingArgumentsNode is `...` in an argument list, forwarding the
// enclosing method's positional, keyword, and block arguments.
type ForwardingArgumentsNode struct{ Base }

func (n *ForwardingArgumentsNode) Kind() NodeKind     { return KindForwardingArguments }
func (n *ForwardingArgumentsNode) ChildNodes() []Node { return nil }
func (n *ForwardingArgumentsNode) Accept(v Visitor)   { v.VisitForwardingArguments(n) }

// BlockNode is a do...end or braced block attached to a call.
// Parameters is a BlockParametersNode, NumberedParametersNode, or
// ItParametersNode.
type BlockNode struct {
	Base
	Parameters Node
	Body       Node // StatementsNode or BeginNode
}

func (n *BlockNode) Kind() NodeKind     { return KindBlock }
func (n *BlockNode) ChildNodes() []Node { return []Node{n.Parameters, n.Body} }
func (n *BlockNode) Accept(v Visitor)   { v.VisitBlock(n) }

// BlockParametersNode is the |params; locals| declaration of a block.
type BlockParametersNode struct {
	Base
	Parameters *ParametersNode
	Locals     []Node // LocalVariableTargetNode after the semicolon
}

func (n *BlockParametersNode) Kind() NodeKind { return KindBlockParameters }
func (n *BlockParametersNode) ChildNodes() []Node {
	out := []Node{opt(n.Parameters)}
	return append(out, n.Locals...)
}
func (n *BlockParametersNode) Accept(v Visitor) { v.VisitBlockParameters(n) }

// NumberedParametersNode marks a block using _1.._9; Maximum is the
// highest number referenced.
type NumberedParametersNode struct {
	Base
	Maximum int
}

func (n *NumberedParametersNode) Kind() NodeKind     { return KindNumberedParameters }
func (n *NumberedParametersNode) ChildNodes() []Node { return nil }
func (n *NumberedParametersNode) Accept(v Visitor)   { v.VisitNumberedParameters(n) }

// ItParametersNode marks a block using the implicit it parameter.
type ItParametersNode struct{ Base }

func (n *ItParametersNode) Kind() NodeKind     { return KindItParameters }
func (n *ItParametersNode) ChildNodes() []Node { return nil }
func (n *ItParametersNode) Accept(v Visitor)   { v.VisitItParameters(n) }

// LambdaNode is the -> (params) { body } literal.
type LambdaNode struct {
	Base
	Parameters Node
	Body       Node
}

func (n *LambdaNode) Kind() NodeKind     { return KindLambda }
func (n *LambdaNode) ChildNodes() []Node { return []Node{n.Parameters, n.Body} }
func (n *LambdaNode) Accept(v Visitor)   { v.VisitLambda(n) }

// SuperNode is super with explicit arguments (possibly empty parens).
type SuperNode struct {
	Base
	Arguments *ArgumentsNode
	Block     Node
}

func (n *SuperNode) Kind() NodeKind     { return KindSuper }
func (n *SuperNode) ChildNodes() []Node { return []Node{opt(n.Arguments), n.Block} }
func (n *SuperNode) Accept(v Visitor)   { v.VisitSuper(n) }

// ForwardingSuperNode is bare super, forwarding the enclosing method's
// arguments.
type ForwardingSuperNode struct {
	Base
	Block *BlockNode
}

func (n *ForwardingSuperNode) Kind() NodeKind     { return KindForwardingSuper }
func (n *ForwardingSuperNode) ChildNodes() []Node { return []Node{opt(n.Block)} }
func (n *ForwardingSuperNode) Accept(v Visitor)   { v.VisitForwardingSuper(n) }

// YieldNode is yield with optional arguments.
type YieldNode struct {
	Base
	Arguments *ArgumentsNode
}

func (n *YieldNode) Kind() NodeKind     { return KindYield }
func (n *YieldNode) ChildNodes() []Node { return []Node{opt(n.Arguments)} }
func (n *YieldNode) Accept(v Visitor)   { v.VisitYield(n) }
