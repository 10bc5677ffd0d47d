package ast

import (
	"garnet/internal/source"
)

// Node is one variant of the abstract syntax tree. Nodes are plain data
// aggregates: behavior lives in visitors, not on the node types. Every
// node owns its children exclusively; trees never share subtrees.
//
// Invariant: a node's span contains the spans of all its children, and
// children returned by ChildNodes are ordered by source position.
type Node interface {
	Kind() NodeKind
	Span() source.Span
	// ChildNodes returns the direct children in source order, including
	// nil slots for absent optional children.
	ChildNodes() []Node
	// Accept dispatches to the visit method matching the node's kind.
	Accept(v Visitor)

	// NewlineFlag is set by the newline-marking pass on nodes that begin
	// a steppable source line.
	NewlineFlag() bool
	SetNewlineFlag(bool)
}

// Base carries the location metadata shared by every node variant.
type Base struct {
	Loc source.Span
	// Newline marks nodes that start a new logical source line; set by
	// the post-parse newline pass, never by the parser itself.
	Newline bool
}

func (b *Base) Span() source.Span     { return b.Loc }
func (b *Base) NewlineFlag() bool     { return b.Newline }
func (b *Base) SetNewlineFlag(v bool) { b.Newline = v }

// opt converts a possibly-nil concrete node pointer into a Node slot,
// avoiding the non-nil interface around a nil pointer.
func opt[N interface {
	Node
	comparable
}](n N) Node {
	var zero N
	if n == zero {
		return nil
	}
	return n
}

// modifierForm reports whether a conditional was written in modifier
// position (`body if cond`), where the body precedes the predicate in
// the source. ChildNodes ordering follows the written order.
func modifierForm(body *StatementsNode, predicate Node) bool {
	return body != nil && predicate != nil &&
		body.Loc.Start < predicate.Span().Start
}
