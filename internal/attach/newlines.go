// Package attach implements the post-parse passes that relate the tree
// back to the raw source: newline marking for steppable-line queries
// and comment-to-node attachment.
package attach

import (
	"garnet/internal/ast"
	"garnet/internal/source"
)

// MarkNewlines sets the newline flag on the first node of every source
// line inside statement lists and interpolated literal parts. The pass
// only writes flags; tree shape is untouched.
func MarkNewlines(root ast.Node, file *source.File) {
	if root == nil {
		return
	}
	m := &newlineMarker{
		file: file,
		seen: make(map[uint32]struct{}, len(file.LineIdx)+1),
	}
	m.Self = m
	root.Accept(m)
}

type newlineMarker struct {
	ast.Walker
	file *source.File
	seen map[uint32]struct{}
}

func (m *newlineMarker) mark(nodes []ast.Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		line := m.file.LineAt(n.Span().Start)
		if _, ok := m.seen[line]; ok {
			continue
		}
		m.seen[line] = struct{}{}
		n.SetNewlineFlag(true)
	}
}

func (m *newlineMarker) VisitStatements(n *ast.StatementsNode) {
	m.mark(n.Body)
	ast.WalkChildren(m, n)
}

func (m *newlineMarker) VisitInterpolatedString(n *ast.InterpolatedStringNode) {
	m.mark(n.Parts)
	ast.WalkChildren(m, n)
}

func (m *newlineMarker) VisitInterpolatedXString(n *ast.InterpolatedXStringNode) {
	m.mark(n.Parts)
	ast.WalkChildren(m, n)
}

func (m *newlineMarker) VisitInterpolatedSymbol(n *ast.InterpolatedSymbolNode) {
	m.mark(n.Parts)
	ast.WalkChildren(m, n)
}

func (m *newlineMarker) VisitInterpolatedRegularExpression(n *ast.InterpolatedRegularExpressionNode) {
	m.mark(n.Parts)
	ast.WalkChildren(m, n)
}
