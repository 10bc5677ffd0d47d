package attach

import (
	"testing"

	"garnet/internal/ast"
	"garnet/internal/lexer"
	"garnet/internal/parser"
	"garnet/internal/source"
	"garnet/internal/token"
)

func parseWithComments(t *testing.T, src string) (*ast.ProgramNode, []token.Comment, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rb", []byte(src))
	f := fs.Get(id)
	lx := lexer.New(f, lexer.Options{})
	prog := parser.ParseProgram(f, lx, parser.Options{})
	return prog, lx.Comments(), f
}

func TestMarkNewlinesFirstNodePerLine(t *testing.T) {
	prog, _, f := parseWithComments(t, "a = 1\nb = 2; c = 3\n")
	MarkNewlines(prog, f)

	stmts := prog.Statements.Body
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}
	if !stmts[0].NewlineFlag() {
		t.Error("first statement of line 1 should be marked")
	}
	if !stmts[1].NewlineFlag() {
		t.Error("first statement of line 2 should be marked")
	}
	if stmts[2].NewlineFlag() {
		t.Error("second statement on line 2 should not be marked")
	}

	w := stmts[0].(*ast.LocalVariableWriteNode)
	if w.Value.NewlineFlag() {
		t.Error("nested value on an already-marked line should not be marked")
	}
}

func TestMarkNewlinesIdempotentShape(t *testing.T) {
	prog, _, f := parseWithComments(t, "if a\n  b\nend\n")
	MarkNewlines(prog, f)

	ifn := prog.Statements.Body[0].(*ast.IfNode)
	if !ifn.NewlineFlag() {
		t.Error("if statement should be marked")
	}
	if !ifn.Statements.Body[0].NewlineFlag() {
		t.Error("body statement on its own line should be marked")
	}
	if ifn.Predicate.NewlineFlag() {
		t.Error("predicate shares the if line and should not be marked")
	}
}

func TestCommentAttachment(t *testing.T) {
	src := "x = 1 # about x\n# about y\ny = 2\n"
	prog, comments, f := parseWithComments(t, src)
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}

	targets := Comments(prog, comments, f)
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}

	trailing := targets[0]
	if !trailing.Trailing {
		t.Error("same-line comment should attach as trailing")
	}
	if w, ok := trailing.Node.(*ast.LocalVariableWriteNode); !ok || w.Name != "x" {
		t.Errorf("trailing comment attached to %T, want write of x", trailing.Node)
	}

	leading := targets[1]
	if leading.Trailing {
		t.Error("own-line comment should attach as leading")
	}
	if w, ok := leading.Node.(*ast.LocalVariableWriteNode); !ok || w.Name != "y" {
		t.Errorf("leading comment attached to %T, want write of y", leading.Node)
	}
}

func TestCommentAboveFirstStatement(t *testing.T) {
	src := "# Builds a widget.\ndef build\nend\n"
	prog, comments, f := parseWithComments(t, src)
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}

	targets := Comments(prog, comments, f)
	if targets[0].Trailing {
		t.Error("doc comment should attach as leading")
	}
	def, ok := targets[0].Node.(*ast.DefNode)
	if !ok {
		t.Fatalf("doc comment attached to %T, want the def", targets[0].Node)
	}
	if def.Name != "build" {
		t.Errorf("attached to def %q, want build", def.Name)
	}
}

func TestCommentsEmptyInputs(t *testing.T) {
	prog, _, f := parseWithComments(t, "x = 1\n")
	if got := Comments(nil, nil, f); got != nil {
		t.Errorf("nil root should yield nil targets, got %v", got)
	}
	if got := Comments(prog, nil, f); got != nil {
		t.Errorf("no comments should yield nil targets, got %v", got)
	}
}
