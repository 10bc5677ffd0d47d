package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/token"
)

func TestParseSource(t *testing.T) {
	src := []byte("# frozen_string_literal: true\nx = 1\nx\n__END__\ntrailer\n")
	res, err := ParseSource("snippet.rb", src, Config{})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}

	if !res.Success() || res.Failure() {
		t.Errorf("clean source should succeed: %v", res.Bag.Items())
	}
	if res.Tree == nil || len(res.Tree.Statements.Body) != 2 {
		t.Fatal("expected two statements")
	}
	if !res.FrozenStringLiteral {
		t.Error("frozen_string_literal directive should be recorded")
	}
	if len(res.MagicComments) != 1 {
		t.Errorf("got %d magic comments, want 1", len(res.MagicComments))
	}
	if res.EncodingName != "UTF-8" {
		t.Errorf("encoding = %q, want UTF-8", res.EncodingName)
	}
	if !res.HasData {
		t.Fatal("__END__ section should set HasData")
	}
	if want := uint32(len(src) - len("trailer\n")); res.DataOffset != want {
		t.Errorf("data offset = %d, want %d", res.DataOffset, want)
	}
	if len(res.Comments) != 1 {
		t.Errorf("got %d comments, want 1", len(res.Comments))
	}
}

func TestParseSourceUnknownEncoding(t *testing.T) {
	res, err := ParseSource("enc.rb", []byte("# encoding: martian\nx = 1\n"), Config{})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Success() {
		t.Fatal("unknown encoding should fail the parse")
	}
	if res.Bag.Items()[0].Code != diag.LexUnknownEncoding {
		t.Errorf("code = %v, want LexUnknownEncoding", res.Bag.Items()[0].Code)
	}
}

func TestParseSourceDiagnosticCap(t *testing.T) {
	res, err := ParseSource("bad.rb", []byte("def\ndef\ndef\ndef\n"), Config{MaxDiagnostics: 3})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Success() {
		t.Fatal("broken source should fail")
	}
	if got := res.Bag.Len(); got > 3 {
		t.Errorf("bag holds %d diagnostics, want at most 3", got)
	}
}

func TestMarkNewlinesAndAttachCached(t *testing.T) {
	res, err := ParseSource("marks.rb", []byte("a = 1 # note\nb = 2\n"), Config{})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}

	res.MarkNewlines()
	res.MarkNewlines()
	if !res.Tree.Statements.Body[0].NewlineFlag() {
		t.Error("first statement should be marked")
	}

	first := res.AttachComments()
	if len(first) != 1 {
		t.Fatalf("got %d targets, want 1", len(first))
	}
	if !first[0].Trailing {
		t.Error("same-line comment should attach as trailing")
	}
	second := res.AttachComments()
	if len(second) != len(first) {
		t.Error("repeat AttachComments should return the cached targets")
	}
}

func TestLineOffsetShiftsReportedLines(t *testing.T) {
	res, err := ParseSource("frag.rb", []byte("a = 1\nb = 2\n"), Config{LineOffset: 10})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}

	second := res.Tree.Statements.Body[1]
	start, _ := res.FileSet.Resolve(second.Span())
	if start.Line != 12 {
		t.Errorf("reported line = %d, want 12", start.Line)
	}
	if second.Span().Start != 6 {
		t.Errorf("byte offset = %d, offsets must not shift", second.Span().Start)
	}
	if got := res.File.GetLine(12); got != "b = 2" {
		t.Errorf("GetLine(12) = %q, want the second physical line", got)
	}
}

func TestFrozenStringLiteralDefault(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dflt bool
		want bool
	}{
		{"no directive, default off", "x = 1\n", false, false},
		{"no directive, default on", "x = 1\n", true, true},
		{"directive true beats default off", "# frozen_string_literal: true\n", false, true},
		{"directive false beats default on", "# frozen_string_literal: false\n", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseSource("f.rb", []byte(tt.src), Config{FrozenStringLiteral: tt.dflt})
			if err != nil {
				t.Fatalf("ParseSource: %v", err)
			}
			if res.FrozenStringLiteral != tt.want {
				t.Errorf("frozen = %v, want %v", res.FrozenStringLiteral, tt.want)
			}
		})
	}
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("toks.rb", []byte("a = 1\n"), Config{})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("token stream should end with EOF")
	}
	want := []token.Kind{token.Ident, token.Assign, token.Integer, token.Newline, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d = %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
}

func TestParseFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.rb")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Parse(path, Config{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Success() {
		t.Errorf("diagnostics: %v", res.Bag.Items())
	}
	if _, ok := res.Tree.Statements.Body[0].(*ast.LocalVariableWriteNode); !ok {
		t.Errorf("statement is %T, want LocalVariableWriteNode", res.Tree.Statements.Body[0])
	}

	if _, err := Parse(filepath.Join(dir, "missing.rb"), Config{}); err == nil {
		t.Error("missing file should return an error")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.rb":          "y = 2\n",
		"a.rb":          "x = 1\n",
		"sub/c.rb":      "def broken\n",
		"sub/note.txt":  "not ruby\n",
		".hidden/d.rb":  "ignored = true\n",
		"sub/deep/e.rb": "z = 3\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	results, err := ParseDir(context.Background(), dir, Config{})
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Path > results[i].Path {
			t.Fatal("results should be sorted by path")
		}
	}

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
			continue
		}
		if r.Result.Failure() {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("got %d failing files, want 1", failures)
	}
}

func TestListRubyFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.rb"), []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := ListRubyFiles(dir)
	if err != nil {
		t.Fatalf("ListRubyFiles: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "a.rb" {
		t.Errorf("paths = %v, want just a.rb", paths)
	}
}
