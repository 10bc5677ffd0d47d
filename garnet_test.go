package garnet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"garnet/internal/ast"
	"garnet/internal/parser"
	"garnet/internal/token"
)

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		grammar string
		want    parser.RubyVersion
		bad     bool
	}{
		{"", parser.Ruby34, false},
		{"latest", parser.Ruby34, false},
		{"3.4", parser.Ruby34, false},
		{"3.3", parser.Ruby33, false},
		{"2.7", 0, true},
		{"ruby", 0, true},
	}
	for _, tt := range tests {
		t.Run("grammar "+tt.grammar, func(t *testing.T) {
			got, err := ResolveVersion(tt.grammar)
			if tt.bad {
				var verr *VersionError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want *VersionError", err)
				}
				if verr.Requested != tt.grammar {
					t.Errorf("Requested = %q, want %q", verr.Requested, tt.grammar)
				}
				if !strings.Contains(verr.Error(), tt.grammar) {
					t.Errorf("message %q should quote the input", verr.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("version = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	res, err := Parse([]byte("x = 1\nx + 1\n"), ParseConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Success() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if res.File.Path != "(string)" {
		t.Errorf("default name = %q, want (string)", res.File.Path)
	}
	if len(res.Tree.Statements.Body) != 2 {
		t.Errorf("got %d statements, want 2", len(res.Tree.Statements.Body))
	}
}

func TestParseNeverFailsOnBadSource(t *testing.T) {
	res, err := Parse([]byte("def class end ]"), ParseConfig{})
	if err != nil {
		t.Fatalf("malformed source must not return an error, got %v", err)
	}
	if res.Tree == nil {
		t.Fatal("malformed source should still produce a tree")
	}
	if res.Success() {
		t.Error("malformed source should carry error diagnostics")
	}
}

func TestParseBadGrammar(t *testing.T) {
	_, err := Parse([]byte("x = 1"), ParseConfig{Grammar: "9.9"})
	var verr *VersionError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *VersionError", err)
	}
}

func TestParseScopes(t *testing.T) {
	res, err := Parse([]byte("outer"), ParseConfig{Scopes: [][]string{{"outer"}}})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := res.Tree.Statements.Body[0].(*ast.LocalVariableReadNode); !ok {
		t.Errorf("seeded local should parse as a read, got %T", res.Tree.Statements.Body[0])
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.rb")
	if err := os.WriteFile(path, []byte("puts :hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ParseFile(path, ParseConfig{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if !res.Success() {
		t.Errorf("diagnostics: %v", res.Bag.Items())
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "gone.rb"), ParseConfig{}); err == nil {
		t.Error("missing file should surface the read error")
	}
}

func TestLex(t *testing.T) {
	res, err := Lex([]byte("a = 1\n"), ParseConfig{})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("token stream should end with EOF")
	}
}

func TestParseLexSpansAgree(t *testing.T) {
	src := []byte("a = 1\n")
	toks, res, err := ParseLex(src, ParseConfig{})
	if err != nil {
		t.Fatalf("ParseLex: %v", err)
	}

	write, ok := res.Tree.Statements.Body[0].(*ast.LocalVariableWriteNode)
	if !ok {
		t.Fatalf("statement is %T, want LocalVariableWriteNode", res.Tree.Statements.Body[0])
	}
	if got := toks.Tokens[0].Span.Start; got != write.Span().Start {
		t.Errorf("token start %d and node start %d should agree", got, write.Span().Start)
	}
}
