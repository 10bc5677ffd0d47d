package driver

import (
	"garnet/internal/ast"
	"garnet/internal/attach"
	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

// ParseResult bundles everything one parse produced: the tree, the
// diagnostics, the comment side channel, and the prologue facts. The
// attachment passes are deferred until asked for and run at most once.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.ProgramNode
	Bag     *diag.Bag

	Comments      []token.Comment
	MagicComments []source.MagicComment
	// EncodingName is the negotiated source encoding, "UTF-8" unless a
	// magic comment said otherwise.
	EncodingName        string
	FrozenStringLiteral bool

	// DataOffset is where the __END__ section starts, when HasData.
	DataOffset uint32
	HasData    bool

	newlinesMarked   bool
	commentsAttached bool
	commentTargets   []attach.Target
}

// Success reports whether parsing produced no error-severity
// diagnostics. Warnings do not affect success.
func (r *ParseResult) Success() bool {
	return !r.Bag.HasErrors()
}

// Failure is the complement of Success.
func (r *ParseResult) Failure() bool {
	return r.Bag.HasErrors()
}

// MarkNewlines runs the newline-marking pass over the tree. Repeat
// calls are no-ops.
func (r *ParseResult) MarkNewlines() {
	if r.newlinesMarked || r.Tree == nil {
		return
	}
	r.newlinesMarked = true
	attach.MarkNewlines(r.Tree, r.File)
}

// AttachComments maps every comment to a node. The result is computed
// once and cached.
func (r *ParseResult) AttachComments() []attach.Target {
	if !r.commentsAttached {
		r.commentsAttached = true
		r.commentTargets = attach.Comments(r.Tree, r.Comments, r.File)
	}
	return r.commentTargets
}

// CommentTargets returns the attachment results, running the pass on
// first use.
func (r *ParseResult) CommentTargets() []attach.Target {
	return r.AttachComments()
}
