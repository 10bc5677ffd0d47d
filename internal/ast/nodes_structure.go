package ast

// ProgramNode is the root of every parse. Its span covers the whole
// source buffer.
type ProgramNode struct {
	Base
	Statements *StatementsNode
}

func (n *ProgramNode) Kind() NodeKind     { return KindProgram }
func (n *ProgramNode) ChildNodes() []Node { return []Node{opt(n.Statements)} }
func (n *ProgramNode) Accept(v Visitor)   { v.VisitProgram(n) }

// StatementsNode is an ordered list of statements forming a body.
type StatementsNode struct {
	Base
	Body []Node
}

func (n *StatementsNode) Kind() NodeKind     { return KindStatements }
func (n *StatementsNode) ChildNodes() []Node { return append([]Node(nil), n.Body...) }
func (n *StatementsNode) Accept(v Visitor)   { v.VisitStatements(n) }

// MissingNode stands in for a construct the parser expected but could
// not find. Its span is zero-width at the error position.
type MissingNode struct {
	Base
}

func (n *MissingNode) Kind() NodeKind     { return KindMissing }
func (n *MissingNode) ChildNodes() []Node { return nil }
func (n *MissingNode) Accept(v Visitor)   { v.VisitMissing(n) }

// ParenthesesNode is a parenthesized expression or statement group.
type ParenthesesNode struct {
	Base
	Body *StatementsNode
}

func (n *ParenthesesNode) Kind() NodeKind     { return KindParentheses }
func (n *ParenthesesNode) ChildNodes() []Node { return []Node{opt(n.Body)} }
func (n *ParenthesesNode) Accept(v Visitor)   { v.VisitParentheses(n) }

// BeginNode is a begin/rescue/else/ensure/end region. Method and block
// bodies with rescue clauses reuse it.
type BeginNode struct {
	Base
	Statements *StatementsNode
	Rescue     *RescueNode
	Else       *ElseNode
	Ensure     *EnsureNode
}

func (n *BeginNode) Kind() NodeKind { return KindBegin }
func (n *BeginNode) ChildNodes() []Node {
	return []Node{opt(n.Statements), opt(n.Rescue), opt(n.Else), opt(n.Ensure)}
}
func (n *BeginNode) Accept(v Visitor) { v.VisitBegin(n) }

// RescueNode is one rescue clause. Chained clauses link through
// Subsequent.
type RescueNode struct {
	Base
	Exceptions []Node
	Reference  Node // assignment target after =>, or nil
	Statements *StatementsNode
	Subsequent *RescueNode
}

func (n *RescueNode) Kind() NodeKind { return KindRescue }
func (n *RescueNode) ChildNodes() []Node {
	out := append([]Node(nil), n.Exceptions...)
	out = append(out, n.Reference, opt(n.Statements), opt(n.Subsequent))
	return out
}
func (n *RescueNode) Accept(v Visitor) { v.VisitRescue(n) }

// ElseNode is the else clause of if/unless/case/begin.
type ElseNode struct {
	Base
	Statements *StatementsNode
}

func (n *ElseNode) Kind() NodeKind     { return KindElse }
func (n *ElseNode) ChildNodes() []Node { return []Node{opt(n.Statements)} }
func (n *ElseNode) Accept(v Visitor)   { v.VisitElse(n) }

// EnsureNode is the ensure clause of a begin region.
type EnsureNode struct {
	Base
	Statements *StatementsNode
}

func (n *EnsureNode) Kind() NodeKind     { return KindEnsure }
func (n *EnsureNode) ChildNodes() []Node { return []Node{opt(n.Statements)} }
func (n *EnsureNode) Accept(v Visitor)   { v.VisitEnsure(n) }

// RescueModifierNode is `expr rescue fallback`.
type RescueModifierNode struct {
	Base
	Expression       Node
	RescueExpression Node
}

func (n *RescueModifierNode) Kind() NodeKind     { return KindRescueModifier }
func (n *RescueModifierNode) ChildNodes() []Node { return []Node{n.Expression, n.RescueExpression} }
func (n *RescueModifierNode) Accept(v Visitor)   { v.VisitRescueModifier(n) }

// PreExecutionNode is a BEGIN { ... } block.
type PreExecutionNode struct {
	Base
	Statements *StatementsNode
}

func (n *PreExecutionNode) Kind() NodeKind     { return KindPreExecution }
func (n *PreExecutionNode) ChildNodes() []Node { return []Node{opt(n.Statements)} }
func (n *PreExecutionNode) Accept(v Visitor)   { v.VisitPreExecution(n) }

// PostExecutionNode is an END { ... } block.
type PostExecutionNode struct {
	Base
	Statements *StatementsNode
}

func (n *PostExecutionNode) Kind() NodeKind     { return KindPostExecution }
func (n *PostExecutionNode) ChildNodes() []Node { return []Node{opt(n.Statements)} }
func (n *PostExecutionNode) Accept(v Visitor)   { v.VisitPostExecution(n) }
