package ast

// ArrayPatternNode is [a, b, *rest, c] in pattern position, optionally
// prefixed by a deconstructing constant: Foo[a, b].
type ArrayPatternNode struct {
	Base
	Constant  Node
	Requireds []Node
	Rest      Node
	Posts     []Node
}

func (n *ArrayPatternNode) Kind() NodeKind { return KindArrayPattern }
func (n *ArrayPatternNode) ChildNodes() []Node {
	out := []Node{n.Constant}
	out = append(out, n.Requireds...)
	out = append(out, n.Rest)
	return append(out, n.Posts...)
}
func (n *ArrayPatternNode) Accept(v Visitor) { v.VisitArrayPattern(n) }

// HashPatternNode is {key: pat, **rest} in pattern position.
type HashPatternNode struct {
	Base
	Constant Node
	Elements []Node // AssocNode list
	Rest     Node   // AssocSplatNode or NoKeywordsParameterNode
}

func (n *HashPatternNode) Kind() NodeKind { return KindHashPattern }
func (n *HashPatternNode) ChildNodes() []Node {
	out := []Node{n.Constant}
	out = append(out, n.Elements...)
	return append(out, n.Rest)
}
func (n *HashPatternNode) Accept(v Visitor) { v.VisitHashPattern(n) }

// FindPatternNode is [*pre, a, b, *post], matching a subsequence.
type FindPatternNode struct {
	Base
	Constant  Node
	Left      *SplatNode
	Requireds []Node
	Right     *SplatNode
}

func (n *FindPatternNode) Kind() NodeKind { return KindFindPattern }
func (n *FindPatternNode) ChildNodes() []Node {
	out := []Node{n.Constant, opt(n.Left)}
	out = append(out, n.Requireds...)
	return append(out, opt(n.Right))
}
func (n *FindPatternNode) Accept(v Visitor) { v.VisitFindPattern(n) }

// AlternationPatternNode is `left | right`.
type AlternationPatternNode struct {
	Base
	Left  Node
	Right Node
}

func (n *AlternationPatternNode) Kind() NodeKind     { return KindAlternationPattern }
func (n *AlternationPatternNode) ChildNodes() []Node { return []Node{n.Left, n.Right} }
func (n *AlternationPatternNode) Accept(v Visitor)   { v.VisitAlternationPattern(n) }

// CapturePatternNode is `pattern => name`, binding the matched value.
type CapturePatternNode struct {
	Base
	Value  Node
	Target *LocalVariableTargetNode
}

func (n *CapturePatternNode) Kind() NodeKind     { return KindCapturePattern }
func (n *CapturePatternNode) ChildNodes() []Node { return []Node{n.Value, opt(n.Target)} }
func (n *CapturePatternNode) Accept(v Visitor)   { v.VisitCapturePattern(n) }

// PinnedVariableNode is ^name, matching against an existing binding
// instead of creating one.
type PinnedVariableNode struct {
	Base
	Variable Node
}

func (n *PinnedVariableNode) Kind() NodeKind     { return KindPinnedVariable }
func (n *PinnedVariableNode) ChildNodes() []Node { return []Node{n.Variable} }
func (n *PinnedVariableNode) Accept(v Visitor)   { v.VisitPinnedVariable(n) }

// PinnedExpressionNode is ^(expr).
type PinnedExpressionNode struct {
	Base
	Expression Node
}

func (n *PinnedExpressionNode) Kind() NodeKind     { return KindPinnedExpression }
func (n *PinnedExpressionNode) ChildNodes() []Node { return []Node{n.Expression} }
func (n *PinnedExpressionNode) Accept(v Visitor)   { v.VisitPinnedExpression(n) }

// MatchPredicateNode is `value in pattern`, evaluating to a boolean.
type MatchPredicateNode struct {
	Base
	Value   Node
	Pattern Node
}

func (n *MatchPredicateNode) Kind() NodeKind     { return KindMatchPredicate }
func (n *MatchPredicateNode) ChildNodes() []Node { return []Node{n.Value, n.Pattern} }
func (n *MatchPredicateNode) Accept(v Visitor)   { v.VisitMatchPredicate(n) }

// MatchRequiredNode is `value => pattern`, raising on mismatch.
type MatchRequiredNode struct {
	Base
	Value   Node
	Pattern Node
}

func (n *MatchRequiredNode) Kind() NodeKind     { return KindMatchRequired }
func (n *MatchRequiredNode) ChildNodes() []Node { return []Node{n.Value, n.Pattern} }
func (n *MatchRequiredNode) Accept(v Visitor)   { v.VisitMatchRequired(n) }
