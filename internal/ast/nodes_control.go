package ast

// AndNode is `left && right` or `left and right`.
type AndNode struct {
	Base
	Left  Node
	Right Node
}

func (n *AndNode) Kind() NodeKind     { return KindAnd }
func (n *AndNode) ChildNodes() []Node { return []Node{n.Left, n.Right} }
func (n *AndNode) Accept(v Visitor)   { v.VisitAnd(n) }

// OrNode is `left || right` or `left or right`.
type OrNode struct {
	Base
	Left  Node
	Right Node
}

func (n *OrNode) Kind() NodeKind     { return KindOr }
func (n *OrNode) ChildNodes() []Node { return []Node{n.Left, n.Right} }
func (n *OrNode) Accept(v Visitor)   { v.VisitOr(n) }

// DefinedNode is defined?(expr) or defined? expr.
type DefinedNode struct {
	Base
	Value Node
}

func (n *DefinedNode) Kind() NodeKind     { return KindDefined }
func (n *DefinedNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *DefinedNode) Accept(v Visitor)   { v.VisitDefined(n) }

// IfNode covers if/elsif/end, the if modifier, and the ternary
// operator. Subsequent is an IfNode for elsif or an ElseNode.
type IfNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	Subsequent Node
}

func (n *IfNode) Kind() NodeKind { return KindIf }
func (n *IfNode) ChildNodes() []Node {
	if modifierForm(n.Statements, n.Predicate) {
		return []Node{n.Statements, n.Predicate, n.Subsequent}
	}
	return []Node{n.Predicate, opt(n.Statements), n.Subsequent}
}
func (n *IfNode) Accept(v Visitor) { v.VisitIf(n) }

// UnlessNode covers unless/end and the unless modifier.
type UnlessNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	Else       *ElseNode
}

func (n *UnlessNode) Kind() NodeKind { return KindUnless }
func (n *UnlessNode) ChildNodes() []Node {
	if modifierForm(n.Statements, n.Predicate) {
		return []Node{n.Statements, n.Predicate, opt(n.Else)}
	}
	return []Node{n.Predicate, opt(n.Statements), opt(n.Else)}
}
func (n *UnlessNode) Accept(v Visitor) { v.VisitUnless(n) }

// WhileNode covers while/end and the while modifier. DoWhile marks the
// begin...end while form, which runs the body before the first test.
type WhileNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	DoWhile    bool
}

func (n *WhileNode) Kind() NodeKind { return KindWhile }
func (n *WhileNode) ChildNodes() []Node {
	if modifierForm(n.Statements, n.Predicate) {
		return []Node{n.Statements, n.Predicate}
	}
	return []Node{n.Predicate, opt(n.Statements)}
}
func (n *WhileNode) Accept(v Visitor) { v.VisitWhile(n) }

// UntilNode covers until/end and the until modifier.
type UntilNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	DoWhile    bool
}

func (n *UntilNode) Kind() NodeKind { return KindUntil }
func (n *UntilNode) ChildNodes() []Node {
	if modifierForm(n.Statements, n.Predicate) {
		return []Node{n.Statements, n.Predicate}
	}
	return []Node{n.Predicate, opt(n.Statements)}
}
func (n *UntilNode) Accept(v Visitor) { v.VisitUntil(n) }

// ForNode is `for index in collection ... end`. Index is a target node
// or a MultiTargetNode.
type ForNode struct {
	Base
	Index      Node
	Collection Node
	Statements *StatementsNode
}

func (n *ForNode) Kind() NodeKind { return KindFor }
func (n *ForNode) ChildNodes() []Node {
	return []Node{n.Index, n.Collection, opt(n.Statements)}
}
func (n *ForNode) Accept(v Visitor) { v.VisitFor(n) }

// CaseNode is a case/when dispatch. Predicate is nil for the
// conditionless form.
type CaseNode struct {
	Base
	Predicate  Node
	Conditions []Node // WhenNode list
	Else       *ElseNode
}

func (n *CaseNode) Kind() NodeKind { return KindCase }
func (n *CaseNode) ChildNodes() []Node {
	out := []Node{n.Predicate}
	out = append(out, n.Conditions...)
	return append(out, opt(n.Else))
}
func (n *CaseNode) Accept(v Visitor) { v.VisitCase(n) }

// WhenNode is one when clause of a CaseNode.
type WhenNode struct {
	Base
	Conditions []Node
	Statements *StatementsNode
}

func (n *WhenNode) Kind() NodeKind { return KindWhen }
func (n *WhenNode) ChildNodes() []Node {
	out := append([]Node(nil), n.Conditions...)
	return append(out, opt(n.Statements))
}
func (n *WhenNode) Accept(v Visitor) { v.VisitWhen(n) }

// CaseMatchNode is a case/in pattern dispatch.
type CaseMatchNode struct {
	Base
	Predicate  Node
	Conditions []Node // InNode list
	Else       *ElseNode
}

func (n *CaseMatchNode) Kind() NodeKind { return KindCaseMatch }
func (n *CaseMatchNode) ChildNodes() []Node {
	out := []Node{n.Predicate}
	out = append(out, n.Conditions...)
	return append(out, opt(n.Else))
}
func (n *CaseMatchNode) Accept(v Visitor) { v.VisitCaseMatch(n) }

// InNode is one in clause of a CaseMatchNode. Guard is the expression
// after a trailing if or unless, or nil.
type InNode struct {
	Base
	Pattern    Node
	Guard      Node
	Statements *StatementsNode
}

func (n *InNode) Kind() NodeKind { return KindIn }
func (n *InNode) ChildNodes() []Node {
	return []Node{n.Pattern, n.Guard, opt(n.Statements)}
}
func (n *InNode) Accept(v Visitor) { v.VisitIn(n) }

// BreakNode is break with optional arguments.
type BreakNode struct {
	Base
	Arguments *ArgumentsNode
}

func (n *BreakNode) Kind() NodeKind     { return KindBreak }
func (n *BreakNode) ChildNodes() []Node { return []Node{opt(n.Arguments)} }
func (n *BreakNode) Accept(v Visitor)   { v.VisitBreak(n) }

// NextNode is next with optional arguments.
type NextNode struct {
	Base
	Arguments *ArgumentsNode
}

func (n *NextNode) Kind() NodeKind     { return KindNext }
func (n *NextNode) ChildNodes() []Node { return []Node{opt(n.Arguments)} }
func (n *NextNode) Accept(v Visitor)   { v.VisitNext(n) }

type RedoNode struct{ Base }

func (n *RedoNode) Kind() NodeKind     { return KindRedo }
func (n *RedoNode) ChildNodes() []Node { return nil }
func (n *RedoNode) Accept(v Visitor)   { v.VisitRedo(n) }

type RetryNode struct{ Base }

func (n *RetryNode) Kind() NodeKind     { return KindRetry }
func (n *RetryNode) ChildNodes() []Node { return nil }
func (n *RetryNode) Accept(v Visitor)   { v.VisitRetry(n) }

// ReturnNode is return with optional arguments.
type ReturnNode struct {
	Base
	Arguments *ArgumentsNode
}

func (n *ReturnNode) Kind() NodeKind     { return KindReturn }
func (n *ReturnNode) ChildNodes() []Node { return []Node{opt(n.Arguments)} }
func (n *ReturnNode) Accept(v Visitor)   { v.VisitReturn(n) }

// MultiWriteNode is a destructuring assignment a, b = 1, 2. Lefts and
// Rights surround an optional splat Rest.
type MultiWriteNode struct {
	Base
	Lefts  []Node
	Rest   Node // SplatNode or ImplicitRestNode, or nil
	Rights []Node
	Value  Node
}

func (n *MultiWriteNode) Kind() NodeKind { return KindMultiWrite }
func (n *MultiWriteNode) ChildNodes() []Node {
	out := append([]Node(nil), n.Lefts...)
	out = append(out, n.Rest)
	out = append(out, n.Rights...)
	return append(out, n.Value)
}
func (n *MultiWriteNode) Accept(v Visitor) { v.VisitMultiWrite(n) }

// MultiTargetNode is a nested destructuring group (a, (b, c)) or the
// target list of a for loop.
type MultiTargetNode struct {
	Base
	Lefts  []Node
	Rest   Node
	Rights []Node
}

func (n *MultiTargetNode) Kind() NodeKind { return KindMultiTarget }
func (n *MultiTargetNode) ChildNodes() []Node {
	out := append([]Node(nil), n.Lefts...)
	out = append(out, n.Rest)
	return append(out, n.Rights...)
}
func (n *MultiTargetNode) Accept(v Visitor) { v.VisitMultiTarget(n) }

// ImplicitRestNode marks the trailing comma form `a, = value`.
type ImplicitRestNode struct{ Base }

func (n *ImplicitRestNode) Kind() NodeKind     { return KindImplicitRest }
func (n *ImplicitRestNode) ChildNodes() []Node { return nil }
func (n *ImplicitRestNode) Accept(v Visitor)   { v.VisitImplicitRest(n) }
