package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"garnet/internal/diag"
	"garnet/internal/driver"
	"garnet/internal/source"
)

func failingParse(t *testing.T, src string) (*driver.ParseResult, *source.FileSet) {
	t.Helper()
	res, err := driver.ParseSource("bad.rb", []byte(src), driver.Config{})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Success() {
		t.Fatalf("source %q should produce diagnostics", src)
	}
	return res, res.FileSet
}

func TestPretty(t *testing.T) {
	res, fs := failingParse(t, "def foo\n  1\n")
	res.Bag.Sort()

	var buf bytes.Buffer
	Pretty(&buf, res.Bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "bad.rb:") {
		t.Errorf("output should carry the path:\n%s", out)
	}
	if !strings.Contains(out, "ERROR S2005") {
		t.Errorf("output should name severity and code:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output should carry a caret marker:\n%s", out)
	}
	if !strings.Contains(out, " | ") {
		t.Errorf("output should carry a source gutter:\n%s", out)
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	res, fs := failingParse(t, "def\ndef\ndef\n")

	var buf bytes.Buffer
	Pretty(&buf, res.Bag, fs, PrettyOpts{Max: 1})
	out := buf.String()

	if !strings.Contains(out, "more") {
		t.Errorf("truncated output should say how many were dropped:\n%s", out)
	}
	if got := strings.Count(out, "ERROR"); got != 1 {
		t.Errorf("got %d headings, want 1:\n%s", got, out)
	}
}

func TestPrettyBasenamePath(t *testing.T) {
	res, err := driver.ParseSource("some/dir/bad.rb", []byte("def foo\n"), driver.Config{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	Pretty(&buf, res.Bag, res.FileSet, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "some/dir") {
		t.Errorf("basename mode should drop directories:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	res, fs := failingParse(t, "def foo\n  1\n")

	var buf bytes.Buffer
	if err := JSON(&buf, res.Bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out []DiagnosticOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("no diagnostics rendered")
	}
	first := out[0]
	if first.Severity != "ERROR" {
		t.Errorf("severity = %q, want ERROR", first.Severity)
	}
	if !strings.HasPrefix(first.Code, "S") {
		t.Errorf("code = %q, want a syntax code", first.Code)
	}
	if first.Path != "bad.rb" {
		t.Errorf("path = %q, want bad.rb", first.Path)
	}
	if first.Pos == nil || first.Pos.Line == 0 {
		t.Error("positions were requested and should be present")
	}
}

func TestTokensPretty(t *testing.T) {
	res := driver.TokenizeSource("toks.rb", []byte("a = 1\n"), driver.Config{})

	var buf bytes.Buffer
	if err := TokensPretty(&buf, res.Tokens, res.FileSet); err != nil {
		t.Fatalf("TokensPretty: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Ident") || !strings.Contains(out, "Integer") {
		t.Errorf("output should name token kinds:\n%s", out)
	}
	if !strings.Contains(out, `"a"`) {
		t.Errorf("output should quote token text:\n%s", out)
	}
	if !strings.Contains(out, "at 1:1-1:2") {
		t.Errorf("output should carry line:col ranges:\n%s", out)
	}
}

func TestTokensJSON(t *testing.T) {
	res := driver.TokenizeSource("toks.rb", []byte("x = 1\n"), driver.Config{})

	var buf bytes.Buffer
	if err := TokensJSON(&buf, res.Tokens); err != nil {
		t.Fatalf("TokensJSON: %v", err)
	}

	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("got %d tokens, want 5", len(out))
	}
	if out[0].Kind != "Ident" || out[0].Text != "x" {
		t.Errorf("token 0 = %+v", out[0])
	}
	if out[len(out)-1].Kind != "EOF" {
		t.Errorf("stream should end at EOF, got %q", out[len(out)-1].Kind)
	}
}

func TestTree(t *testing.T) {
	res, err := driver.ParseSource("tree.rb", []byte("a = 1\n"), driver.Config{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	Tree(&buf, res.Tree)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "ProgramNode [") {
		t.Errorf("dump should start at the root:\n%s", out)
	}
	if !strings.Contains(out, `LocalVariableWriteNode`) || !strings.Contains(out, `name="a"`) {
		t.Errorf("dump should show the write and its name:\n%s", out)
	}
	if !strings.Contains(out, "  StatementsNode") {
		t.Errorf("children should be indented:\n%s", out)
	}
}

func TestTreeJSON(t *testing.T) {
	res, err := driver.ParseSource("tree.rb", []byte("a = 1\n"), driver.Config{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := TreeJSON(&buf, res.Tree); err != nil {
		t.Fatalf("TreeJSON: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out["type"] != "ProgramNode" {
		t.Errorf("root type = %v, want ProgramNode", out["type"])
	}
	if _, ok := out["children"]; !ok {
		t.Error("root should carry children")
	}
}

func TestSummaryScalars(t *testing.T) {
	res, err := driver.ParseSource("sum.rb", []byte("foo(1)\n"), driver.Config{})
	if err != nil {
		t.Fatal(err)
	}
	call := res.Tree.Statements.Body[0]
	got := Summary(call)
	if !strings.HasPrefix(got, "CallNode [") {
		t.Errorf("Summary = %q, should start with the kind", got)
	}
	if !strings.Contains(got, `name="foo"`) {
		t.Errorf("Summary = %q, should carry the call name", got)
	}
}

func TestPrettyNoColorBytes(t *testing.T) {
	bag := diag.NewBag(0)
	fs := source.NewFileSet()
	fs.AddVirtual("x.rb", []byte("boom\n"))
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{Start: 0, End: 4},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("color off should emit no escape sequences:\n%q", buf.String())
	}
}
