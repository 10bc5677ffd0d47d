package ast

// DefNode is a method definition. Receiver is set for singleton
// definitions (def self.x, def obj.x). Endless definitions store their
// single expression in Body as a StatementsNode.
type DefNode struct {
	Base
	Name       string
	Receiver   Node
	Parameters *ParametersNode
	Body       Node // StatementsNode or BeginNode, nil for empty body
	Endless    bool
}

func (n *DefNode) Kind() NodeKind { return KindDef }
func (n *DefNode) ChildNodes() []Node {
	return []Node{n.Receiver, opt(n.Parameters), n.Body}
}
func (n *DefNode) Accept(v Visitor) { v.VisitDef(n) }

// ParametersNode groups a signature's parameters by family, in
// declaration order within each family.
type ParametersNode struct {
	Base
	Requireds   []Node // RequiredParameterNode or MultiTargetNode
	Optionals   []Node // OptionalParameterNode
	Rest        Node   // RestParameterNode, or ImplicitRestNode in blocks
	Posts       []Node // required parameters after the rest
	Keywords    []Node // Required/OptionalKeywordParameterNode
	KeywordRest Node   // KeywordRestParameterNode, NoKeywordsParameterNode, or ForwardingParameterNode
	Block       *BlockParameterNode
}

func (n *ParametersNode) Kind() NodeKind { return KindParameters }
func (n *ParametersNode) ChildNodes() []Node {
	out := append([]Node(nil), n.Requireds...)
	out = append(out, n.Optionals...)
	out = append(out, n.Rest)
	out = append(out, n.Posts...)
	out = append(out, n.Keywords...)
	out = append(out, n.KeywordRest, opt(n.Block))
	return out
}
func (n *ParametersNode) Accept(v Visitor) { v.VisitParameters(n) }

type RequiredParameterNode struct {
	Base
	Name string
}

func (n *RequiredParameterNode) Kind() NodeKind     { return KindRequiredParameter }
func (n *RequiredParameterNode) ChildNodes() []Node { return nil }
func (n *RequiredParameterNode) Accept(v Visitor)   { v.VisitRequiredParameter(n) }

type OptionalParameterNode struct {
	Base
	Name  string
	Value Node
}

func (n *OptionalParameterNode) Kind() NodeKind     { return KindOptionalParameter }
func (n *OptionalParameterNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *OptionalParameterNode) Accept(v Visitor)   { v.VisitOptionalParameter(n) }

// RestParameterNode is *name; Name is empty for the anonymous *.
type RestParameterNode struct {
	Base
	Name string
}

func (n *RestParameterNode) Kind() NodeKind     { return KindRestParameter }
func (n *RestParameterNode) ChildNodes() []Node { return nil }
func (n *RestParameterNode) Accept(v Visitor)   { v.VisitRestParameter(n) }

type RequiredKeywordParameterNode struct {
	Base
	Name string
}

func (n *RequiredKeywordParameterNode) Kind() NodeKind     { return KindRequiredKeywordParameter }
func (n *RequiredKeywordParameterNode) ChildNodes() []Node { return nil }
func (n *RequiredKeywordParameterNode) Accept(v Visitor)   { v.VisitRequiredKeywordParameter(n) }

type OptionalKeywordParameterNode struct {
	Base
	Name  string
	Value Node
}

func (n *OptionalKeywordParameterNode) Kind() NodeKind     { return KindOptionalKeywordParameter }
func (n *OptionalKeywordParameterNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *OptionalKeywordParameterNode) Accept(v Visitor)   { v.VisitOptionalKeywordParameter(n) }

// KeywordRestParameterNode is **name; Name is empty for the anonymous
// **.
type KeywordRestParameterNode struct {
	Base
	Name string
}

func (n *KeywordRestParameterNode) Kind() NodeKind     { return KindKeywordRestParameter }
func (n *KeywordRestParameterNode) ChildNodes() []Node { return nil }
func (n *KeywordRestParameterNode) Accept(v Visitor)   { v.VisitKeywordRestParameter(n) }

// NoKeywordsParameterNode is the **nil declaration.
type NoKeywordsParameterNode struct{ Base }

func (n *NoKeywordsParameterNode) Kind() NodeKind     { return KindNoKeywordsParameter }
func (n *NoKeywordsParameterNode) ChildNodes() []Node { return nil }
func (n *NoKeywordsParameterNode) Accept(v Visitor)   { v.VisitNoKeywordsParameter(n) }

// ForwardingParameterNode is the `...` declaration, accepting and
// forwarding every kind of argument.
type ForwardingParameterNode struct{ Base }

func (n *ForwardingParameterNode) Kind() NodeKind     { return KindForwardingParameter }
func (n *ForwardingParameterNode) ChildNodes() []Node { return nil }
func (n *ForwardingParameterNode) Accept(v Visitor)   { v.VisitForwardingParameter(n) }

// BlockParameterNode is &name; Name is empty for the anonymous &.
type BlockParameterNode struct {
	Base
	Name string
}

func (n *BlockParameterNode) Kind() NodeKind     { return KindBlockParameter }
func (n *BlockParameterNode) ChildNodes() []Node { return nil }
func (n *BlockParameterNode) Accept(v Visitor)   { v.VisitBlockParameter(n) }

// ClassNode is a class definition. ConstantPath is a ConstantReadNode
// or ConstantPathNode.
type ClassNode struct {
	Base
	ConstantPath Node
	Superclass   Node
	Body         Node // StatementsNode or BeginNode
}

func (n *ClassNode) Kind() NodeKind { return KindClass }
func (n *ClassNode) ChildNodes() []Node {
	return []Node{n.ConstantPath, n.Superclass, n.Body}
}
func (n *ClassNode) Accept(v Visitor) { v.VisitClass(n) }

// SingletonClassNode is `class << expr ... end`.
type SingletonClassNode struct {
	Base
	Expression Node
	Body       Node
}

func (n *SingletonClassNode) Kind() NodeKind     { return KindSingletonClass }
func (n *SingletonClassNode) ChildNodes() []Node { return []Node{n.Expression, n.Body} }
func (n *SingletonClassNode) Accept(v Visitor)   { v.VisitSingletonClass(n) }

// ModuleNode is a module definition.
type ModuleNode struct {
	Base
	ConstantPath Node
	Body         Node
}

func (n *ModuleNode) Kind() NodeKind     { return KindModule }
func (n *ModuleNode) ChildNodes() []Node { return []Node{n.ConstantPath, n.Body} }
func (n *ModuleNode) Accept(v Visitor)   { v.VisitModule(n) }

// AliasMethodNode is `alias new old` with method name or symbol
// operands.
type AliasMethodNode struct {
	Base
	NewName Node
	OldName Node
}

func (n *AliasMethodNode) Kind() NodeKind     { return KindAliasMethod }
func (n *AliasMethodNode) ChildNodes() []Node { return []Node{n.NewName, n.OldName} }
func (n *AliasMethodNode) Accept(v Visitor)   { v.VisitAliasMethod(n) }

// AliasGlobalVariableNode is `alias $new $old`.
type AliasGlobalVariableNode struct {
	Base
	NewName Node
	OldName Node
}

func (n *AliasGlobalVariableNode) Kind() NodeKind     { return KindAliasGlobalVariable }
func (n *AliasGlobalVariableNode) ChildNodes() []Node { return []Node{n.NewName, n.OldName} }
func (n *AliasGlobalVariableNode) Accept(v Visitor)   { v.VisitAliasGlobalVariable(n) }

// UndefNode is `undef name, name2`.
type UndefNode struct {
	Base
	Names []Node
}

func (n *UndefNode) Kind() NodeKind     { return KindUndef }
func (n *UndefNode) ChildNodes() []Node { return append([]Node(nil), n.Names...) }
func (n *UndefNode) Accept(v Visitor)   { v.VisitUndef(n) }
