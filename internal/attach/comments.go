package attach

import (
	"garnet/internal/ast"
	"garnet/internal/source"
	"garnet/internal/token"
)

// Target records where one comment attached. Trailing comments follow
// code on the same line and bind to the preceding node; leading
// comments bind to the node that follows them.
type Target struct {
	Comment  token.Comment
	Node     ast.Node
	Trailing bool
}

// Comments maps every comment to exactly one node by a descending
// interval search from the root. Comments arrive in source order and
// targets are returned in the same order.
func Comments(root *ast.ProgramNode, comments []token.Comment, file *source.File) []Target {
	if root == nil || len(comments) == 0 {
		return nil
	}
	targets := make([]Target, 0, len(comments))
	for _, c := range comments {
		targets = append(targets, locate(root, c, file))
	}
	return targets
}

// locate descends from the root, tracking the closest node ending
// before the comment and the closest one starting after it, then
// applies the same-line tie-break.
func locate(root *ast.ProgramNode, c token.Comment, file *source.File) Target {
	var preceding, following ast.Node
	var enclosing ast.Node = root

	for {
		descended := false
		for _, child := range enclosing.ChildNodes() {
			if child == nil || child.Span().Empty() {
				continue
			}
			sp := child.Span()
			switch {
			case sp.End <= c.Span.Start:
				if preceding == nil || sp.End > preceding.Span().End {
					preceding = child
				}
			case sp.Start >= c.Span.End:
				if following == nil || sp.Start < following.Span().Start {
					following = child
				}
			case sp.Start <= c.Span.Start && c.Span.End <= sp.End:
				enclosing = child
				descended = true
			}
		}
		if !descended {
			break
		}
	}

	switch {
	case trailsCode(c, file) && preceding != nil:
		return Target{Comment: c, Node: preceding, Trailing: true}
	case following != nil:
		return Target{Comment: c, Node: leadingTarget(following)}
	case preceding != nil:
		return Target{Comment: c, Node: preceding, Trailing: true}
	default:
		return Target{Comment: c, Node: enclosing, Trailing: true}
	}
}

// leadingTarget refines a following candidate to the deepest node
// sharing its start offset, so a comment above a wrapper (a statement
// list, say) lands on the construct actually written there.
func leadingTarget(n ast.Node) ast.Node {
	for {
		refined := false
		for _, child := range n.ChildNodes() {
			if child == nil || child.Span().Empty() {
				continue
			}
			if child.Span().Start == n.Span().Start {
				n = child
				refined = true
			}
			break
		}
		if !refined {
			return n
		}
	}
}

// trailsCode reports whether non-whitespace source precedes the comment
// on its own line.
func trailsCode(c token.Comment, file *source.File) bool {
	line := file.LineAt(c.Span.Start)
	var lineStart uint32
	if line > 1 {
		lineStart = file.LineIdx[line-2] + 1
	}
	for _, b := range file.Content[lineStart:c.Span.Start] {
		if b != ' ' && b != '\t' {
			return true
		}
	}
	return false
}
