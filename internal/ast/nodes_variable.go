package ast

// The variable node families share one shape per access form: read,
// write, operator write (+=), or-write (||=), and-write (&&=), and
// target (multiple-assignment slot).

// LocalVariableReadNode reads a local variable known to the current
// scope chain. A bare identifier that was never a target parses as a
// zero-argument CallNode instead.
type LocalVariableReadNode struct {
	Base
	Name string
}

func (n *LocalVariableReadNode) Kind() NodeKind     { return KindLocalVariableRead }
func (n *LocalVariableReadNode) ChildNodes() []Node { return nil }
func (n *LocalVariableReadNode) Accept(v Visitor)   { v.VisitLocalVariableRead(n) }

type LocalVariableWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *LocalVariableWriteNode) Kind() NodeKind     { return KindLocalVariableWrite }
func (n *LocalVariableWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *LocalVariableWriteNode) Accept(v Visitor)   { v.VisitLocalVariableWrite(n) }

type LocalVariableOperatorWriteNode struct {
	Base
	Name     string
	Operator string // without the trailing =
	Value    Node
}

func (n *LocalVariableOperatorWriteNode) Kind() NodeKind     { return KindLocalVariableOperatorWrite }
func (n *LocalVariableOperatorWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *LocalVariableOperatorWriteNode) Accept(v Visitor)   { v.VisitLocalVariableOperatorWrite(n) }

type LocalVariableOrWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *LocalVariableOrWriteNode) Kind() NodeKind     { return KindLocalVariableOrWrite }
func (n *LocalVariableOrWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *LocalVariableOrWriteNode) Accept(v Visitor)   { v.VisitLocalVariableOrWrite(n) }

type LocalVariableAndWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *LocalVariableAndWriteNode) Kind() NodeKind     { return KindLocalVariableAndWrite }
func (n *LocalVariableAndWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *LocalVariableAndWriteNode) Accept(v Visitor)   { v.VisitLocalVariableAndWrite(n) }

type LocalVariableTargetNode struct {
	Base
	Name string
}

func (n *LocalVariableTargetNode) Kind() NodeKind     { return KindLocalVariableTarget }
func (n *LocalVariableTargetNode) ChildNodes() []Node { return nil }
func (n *LocalVariableTargetNode) Accept(v Visitor)   { v.VisitLocalVariableTarget(n) }

// ItLocalVariableReadNode is the implicit `it` block parameter (3.4+).
type ItLocalVariableReadNode struct{ Base }

func (n *ItLocalVariableReadNode) Kind() NodeKind     { return KindItLocalVariableRead }
func (n *ItLocalVariableReadNode) ChildNodes() []Node { return nil }
func (n *ItLocalVariableReadNode) Accept(v Visitor)   { v.VisitItLocalVariableRead(n) }

type InstanceVariableReadNode struct {
	Base
	Name string
}

func (n *InstanceVariableReadNode) Kind() NodeKind     { return KindInstanceVariableRead }
func (n *InstanceVariableReadNode) ChildNodes() []Node { return nil }
func (n *InstanceVariableReadNode) Accept(v Visitor)   { v.VisitInstanceVariableRead(n) }

type InstanceVariableWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *InstanceVariableWriteNode) Kind() NodeKind     { return KindInstanceVariableWrite }
func (n *InstanceVariableWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *InstanceVariableWriteNode) Accept(v Visitor)   { v.VisitInstanceVariableWrite(n) }

type InstanceVariableOperatorWriteNode struct {
	Base
	Name     string
	Operator string
	Value    Node
}

func (n *InstanceVariableOperatorWriteNode) Kind() NodeKind {
	return KindInstanceVariableOperatorWrite
}
func (n *InstanceVariableOperatorWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *InstanceVariableOperatorWriteNode) Accept(v Visitor) {
	v.VisitInstanceVariableOperatorWrite(n)
}

type InstanceVariableOrWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *InstanceVariableOrWriteNode) Kind() NodeKind     { return KindInstanceVariableOrWrite }
func (n *InstanceVariableOrWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *InstanceVariableOrWriteNode) Accept(v Visitor)   { v.VisitInstanceVariableOrWrite(n) }

type InstanceVariableAndWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *InstanceVariableAndWriteNode) Kind() NodeKind     { return KindInstanceVariableAndWrite }
func (n *InstanceVariableAndWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *InstanceVariableAndWriteNode) Accept(v Visitor)   { v.VisitInstanceVariableAndWrite(n) }

type InstanceVariableTargetNode struct {
	Base
	Name string
}

func (n *InstanceVariableTargetNode) Kind() NodeKind     { return KindInstanceVariableTarget }
func (n *InstanceVariableTargetNode) ChildNodes() []Node { return nil }
func (n *InstanceVariableTargetNode) Accept(v Visitor)   { v.VisitInstanceVariableTarget(n) }

type ClassVariableReadNode struct {
	Base
	Name string
}

func (n *ClassVariableReadNode) Kind() NodeKind     { return KindClassVariableRead }
func (n *ClassVariableReadNode) ChildNodes() []Node { return nil }
func (n *ClassVariableReadNode) Accept(v Visitor)   { v.VisitClassVariableRead(n) }

type ClassVariableWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *ClassVariableWriteNode) Kind() NodeKind     { return KindClassVariableWrite }
func (n *ClassVariableWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ClassVariableWriteNode) Accept(v Visitor)   { v.VisitClassVariableWrite(n) }

type ClassVariableOperatorWriteNode struct {
	Base
	Name     string
	Operator string
	Value    Node
}

func (n *ClassVariableOperatorWriteNode) Kind() NodeKind     { return KindClassVariableOperatorWrite }
func (n *ClassVariableOperatorWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ClassVariableOperatorWriteNode) Accept(v Visitor)   { v.VisitClassVariableOperatorWrite(n) }

type ClassVariableOrWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *ClassVariableOrWriteNode) Kind() NodeKind     { return KindClassVariableOrWrite }
func (n *ClassVariableOrWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ClassVariableOrWriteNode) Accept(v Visitor)   { v.VisitClassVariableOrWrite(n) }

type ClassVariableAndWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *ClassVariableAndWriteNode) Kind() NodeKind     { return KindClassVariableAndWrite }
func (n *ClassVariableAndWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ClassVariableAndWriteNode) Accept(v Visitor)   { v.VisitClassVariableAndWrite(n) }

type ClassVariableTargetNode struct {
	Base
	Name string
}

func (n *ClassVariableTargetNode) Kind() NodeKind     { return KindClassVariableTarget }
func (n *ClassVariableTargetNode) ChildNodes() []Node { return nil }
func (n *ClassVariableTargetNode) Accept(v Visitor)   { v.VisitClassVariableTarget(n) }

type GlobalVariableReadNode struct {
	Base
	Name string
}

func (n *GlobalVariableReadNode) Kind() NodeKind     { return KindGlobalVariableRead }
func (n *GlobalVariableReadNode) ChildNodes() []Node { return nil }
func (n *GlobalVariableReadNode) Accept(v Visitor)   { v.VisitGlobalVariableRead(n) }

type GlobalVariableWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *GlobalVariableWriteNode) Kind() NodeKind     { return KindGlobalVariableWrite }
func (n *GlobalVariableWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *GlobalVariableWriteNode) Accept(v Visitor)   { v.VisitGlobalVariableWrite(n) }

type GlobalVariableOperatorWriteNode struct {
	Base
	Name     string
	Operator string
	Value    Node
}

func (n *GlobalVariableOperatorWriteNode) Kind() NodeKind     { return KindGlobalVariableOperatorWrite }
func (n *GlobalVariableOperatorWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *GlobalVariableOperatorWriteNode) Accept(v Visitor)   { v.VisitGlobalVariableOperatorWrite(n) }

type GlobalVariableOrWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *GlobalVariableOrWriteNode) Kind() NodeKind     { return KindGlobalVariableOrWrite }
func (n *GlobalVariableOrWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *GlobalVariableOrWriteNode) Accept(v Visitor)   { v.VisitGlobalVariableOrWrite(n) }

type GlobalVariableAndWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *GlobalVariableAndWriteNode) Kind() NodeKind     { return KindGlobalVariableAndWrite }
func (n *GlobalVariableAndWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *GlobalVariableAndWriteNode) Accept(v Visitor)   { v.VisitGlobalVariableAndWrite(n) }

type GlobalVariableTargetNode struct {
	Base
	Name string
}

func (n *GlobalVariableTargetNode) Kind() NodeKind     { return KindGlobalVariableTarget }
func (n *GlobalVariableTargetNode) ChildNodes() []Node { return nil }
func (n *GlobalVariableTargetNode) Accept(v Visitor)   { v.VisitGlobalVariableTarget(n) }

type ConstantReadNode struct {
	Base
	Name string
}

func (n *ConstantReadNode) Kind() NodeKind     { return KindConstantRead }
func (n *ConstantReadNode) ChildNodes() []Node { return nil }
func (n *ConstantReadNode) Accept(v Visitor)   { v.VisitConstantRead(n) }

type ConstantWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *ConstantWriteNode) Kind() NodeKind     { return KindConstantWrite }
func (n *ConstantWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ConstantWriteNode) Accept(v Visitor)   { v.VisitConstantWrite(n) }

type ConstantOperatorWriteNode struct {
	Base
	Name     string
	Operator string
	Value    Node
}

func (n *ConstantOperatorWriteNode) Kind() NodeKind     { return KindConstantOperatorWrite }
func (n *ConstantOperatorWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ConstantOperatorWriteNode) Accept(v Visitor)   { v.VisitConstantOperatorWrite(n) }

type ConstantOrWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *ConstantOrWriteNode) Kind() NodeKind     { return KindConstantOrWrite }
func (n *ConstantOrWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ConstantOrWriteNode) Accept(v Visitor)   { v.VisitConstantOrWrite(n) }

type ConstantAndWriteNode struct {
	Base
	Name  string
	Value Node
}

func (n *ConstantAndWriteNode) Kind() NodeKind     { return KindConstantAndWrite }
func (n *ConstantAndWriteNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *ConstantAndWriteNode) Accept(v Visitor)   { v.VisitConstantAndWrite(n) }

type ConstantTargetNode struct {
	Base
	Name string
}

func (n *ConstantTargetNode) Kind() NodeKind     { return KindConstantTarget }
func (n *ConstantTargetNode) ChildNodes() []Node { return nil }
func (n *ConstantTargetNode) Accept(v Visitor)   { v.VisitConstantTarget(n) }

// ConstantPathNode is Foo::Bar. Parent is nil for a ::Foo root path.
type ConstantPathNode struct {
	Base
	Parent Node
	Name   string
}

func (n *ConstantPathNode) Kind() NodeKind     { return KindConstantPath }
func (n *ConstantPathNode) ChildNodes() []Node { return []Node{n.Parent} }
func (n *ConstantPathNode) Accept(v Visitor)   { v.VisitConstantPath(n) }

type ConstantPathWriteNode struct {
	Base
	Target *ConstantPathNode
	Value  Node
}

func (n *ConstantPathWriteNode) Kind() NodeKind     { return KindConstantPathWrite }
func (n *ConstantPathWriteNode) ChildNodes() []Node { return []Node{opt(n.Target), n.Value} }
func (n *ConstantPathWriteNode) Accept(v Visitor)   { v.VisitConstantPathWrite(n) }

type ConstantPathTargetNode struct {
	Base
	Path *ConstantPathNode
}

func (n *ConstantPathTargetNode) Kind() NodeKind     { return KindConstantPathTarget }
func (n *ConstantPathTargetNode) ChildNodes() []Node { return []Node{opt(n.Path)} }
func (n *ConstantPathTargetNode) Accept(v Visitor)   { v.VisitConstantPathTarget(n) }

// BackReferenceReadNode is $&, $', $`, or $+.
type BackReferenceReadNode struct {
	Base
	Name string
}

func (n *BackReferenceReadNode) Kind() NodeKind     { return KindBackReferenceRead }
func (n *BackReferenceReadNode) ChildNodes() []Node { return nil }
func (n *BackReferenceReadNode) Accept(v Visitor)   { v.VisitBackReferenceRead(n) }

// NumberedReferenceReadNode is $1, $2, ...
type NumberedReferenceReadNode struct {
	Base
	Number int
}

func (n *NumberedReferenceReadNode) Kind() NodeKind     { return KindNumberedReferenceRead }
func (n *NumberedReferenceReadNode) ChildNodes() []Node { return nil }
func (n *NumberedReferenceReadNode) Accept(v Visitor)   { v.VisitNumberedReferenceRead(n) }
