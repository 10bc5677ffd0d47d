package parser

import (
	"testing"

	"garnet/internal/ast"
	"garnet/internal/diag"
	"garnet/internal/lexer"
	"garnet/internal/source"
)

func parseSrc(t *testing.T, src string, opts Options) (*ast.ProgramNode, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rb", []byte(src))
	f := fs.Get(id)
	bag := diag.NewBag(0)
	if opts.Reporter == nil {
		opts.Reporter = &diag.BagReporter{Bag: bag}
	}
	lx := lexer.New(f, lexer.Options{Reporter: opts.Reporter})
	prog := ParseProgram(f, lx, opts)
	if prog == nil {
		t.Fatal("ParseProgram returned nil")
	}
	return prog, bag
}

func body(t *testing.T, prog *ast.ProgramNode, want int) []ast.Node {
	t.Helper()
	if prog.Statements == nil {
		t.Fatal("program has no statements")
	}
	if len(prog.Statements.Body) != want {
		t.Fatalf("got %d statements, want %d", len(prog.Statements.Body), want)
	}
	return prog.Statements.Body
}

func node[T ast.Node](t *testing.T, n ast.Node) T {
	t.Helper()
	out, ok := n.(T)
	if !ok {
		t.Fatalf("node is %T, want %T", n, out)
	}
	return out
}

func TestLocalVariableDisambiguation(t *testing.T) {
	prog, bag := parseSrc(t, "a = 1\na\nb", Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := body(t, prog, 3)

	w := node[*ast.LocalVariableWriteNode](t, stmts[0])
	if w.Name != "a" {
		t.Errorf("write name = %q, want a", w.Name)
	}
	node[*ast.IntegerNode](t, w.Value)

	r := node[*ast.LocalVariableReadNode](t, stmts[1])
	if r.Name != "a" {
		t.Errorf("read name = %q, want a", r.Name)
	}

	c := node[*ast.CallNode](t, stmts[2])
	if c.Name != "b" || !c.VariableCall {
		t.Errorf("bare identifier = %q (variable call %v), want method call b", c.Name, c.VariableCall)
	}
}

func TestScopeSeeding(t *testing.T) {
	prog, _ := parseSrc(t, "x", Options{Scopes: [][]string{{"x"}}})
	stmts := body(t, prog, 1)
	r := node[*ast.LocalVariableReadNode](t, stmts[0])
	if r.Name != "x" {
		t.Errorf("read name = %q, want x", r.Name)
	}
}

func TestBinaryOperatorsAsCalls(t *testing.T) {
	prog, _ := parseSrc(t, "x * 2 + 1", Options{})
	stmts := body(t, prog, 1)

	add := node[*ast.CallNode](t, stmts[0])
	if add.Name != "+" {
		t.Fatalf("top call = %q, want +", add.Name)
	}
	if add.Arguments == nil || len(add.Arguments.Arguments) != 1 {
		t.Fatal("binary call should carry exactly one argument")
	}
	node[*ast.IntegerNode](t, add.Arguments.Arguments[0])

	mul := node[*ast.CallNode](t, add.Receiver)
	if mul.Name != "*" {
		t.Errorf("receiver call = %q, want *", mul.Name)
	}
}

func TestBooleanOperators(t *testing.T) {
	prog, _ := parseSrc(t, "a && b\nc or d", Options{})
	stmts := body(t, prog, 2)
	node[*ast.AndNode](t, stmts[0])
	node[*ast.OrNode](t, stmts[1])
}

func TestTernary(t *testing.T) {
	prog, _ := parseSrc(t, "a ? 1 : 2", Options{})
	stmts := body(t, prog, 1)

	ifn := node[*ast.IfNode](t, stmts[0])
	if ifn.Statements == nil || len(ifn.Statements.Body) != 1 {
		t.Fatal("ternary consequent should hold one statement")
	}
	els := node[*ast.ElseNode](t, ifn.Subsequent)
	if els.Statements == nil || len(els.Statements.Body) != 1 {
		t.Fatal("ternary alternative should hold one statement")
	}
}

func TestRanges(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		exclusive bool
		endless   bool
	}{
		{"inclusive", "1..2", false, false},
		{"exclusive", "1...2", true, false},
		{"endless", "1..", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, _ := parseSrc(t, tt.src, Options{})
			stmts := body(t, prog, 1)
			r := node[*ast.RangeNode](t, stmts[0])
			if r.Exclusive != tt.exclusive {
				t.Errorf("exclusive = %v, want %v", r.Exclusive, tt.exclusive)
			}
			if (r.Right == nil) != tt.endless {
				t.Errorf("right nil = %v, want %v", r.Right == nil, tt.endless)
			}
		})
	}
}

func TestMethodCall(t *testing.T) {
	prog, _ := parseSrc(t, "foo.bar(1, 2)\na&.b", Options{})
	stmts := body(t, prog, 2)

	c := node[*ast.CallNode](t, stmts[0])
	if c.Name != "bar" {
		t.Errorf("call name = %q, want bar", c.Name)
	}
	recv := node[*ast.CallNode](t, c.Receiver)
	if recv.Name != "foo" || !recv.VariableCall {
		t.Errorf("receiver = %q (variable call %v)", recv.Name, recv.VariableCall)
	}
	if c.Arguments == nil || len(c.Arguments.Arguments) != 2 {
		t.Error("call should carry two arguments")
	}

	safe := node[*ast.CallNode](t, stmts[1])
	if !safe.SafeNavigation {
		t.Error("&. call should set SafeNavigation")
	}
}

func TestDef(t *testing.T) {
	prog, bag := parseSrc(t, "def add(a, b)\n  a + b\nend", Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := body(t, prog, 1)

	def := node[*ast.DefNode](t, stmts[0])
	if def.Name != "add" {
		t.Errorf("def name = %q, want add", def.Name)
	}
	if def.Endless {
		t.Error("block-form def should not be endless")
	}
	if def.Parameters == nil || len(def.Parameters.Requireds) != 2 {
		t.Fatal("def should take two required parameters")
	}
	p0 := node[*ast.RequiredParameterNode](t, def.Parameters.Requireds[0])
	if p0.Name != "a" {
		t.Errorf("parameter 0 = %q, want a", p0.Name)
	}

	defBody := node[*ast.StatementsNode](t, def.Body)
	sum := node[*ast.CallNode](t, defBody.Body[0])
	node[*ast.LocalVariableReadNode](t, sum.Receiver)
}

func TestEndlessDef(t *testing.T) {
	prog, _ := parseSrc(t, "def square(x) = x * x", Options{})
	stmts := body(t, prog, 1)

	def := node[*ast.DefNode](t, stmts[0])
	if !def.Endless {
		t.Fatal("def with = body should be endless")
	}
	defBody := node[*ast.StatementsNode](t, def.Body)
	if len(defBody.Body) != 1 {
		t.Fatalf("endless body has %d statements, want 1", len(defBody.Body))
	}
}

func TestArgumentForwarding(t *testing.T) {
	prog, bag := parseSrc(t, "def build(...)\n  new(...)\nend", Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := body(t, prog, 1)

	def := node[*ast.DefNode](t, stmts[0])
	if def.Parameters == nil {
		t.Fatal("def (...) should produce a parameter list")
	}
	node[*ast.ForwardingParameterNode](t, def.Parameters.KeywordRest)

	defBody := node[*ast.StatementsNode](t, def.Body)
	call := node[*ast.CallNode](t, defBody.Body[0])
	if call.Name != "new" {
		t.Errorf("call name = %q, want new", call.Name)
	}
	if call.Arguments == nil || len(call.Arguments.Arguments) != 1 {
		t.Fatal("new(...) should carry one argument")
	}
	node[*ast.ForwardingArgumentsNode](t, call.Arguments.Arguments[0])

	t.Run("outside a forwarding method", func(t *testing.T) {
		_, bag := parseSrc(t, "def plain(a)\n  other(...)\nend", Options{})
		if !bag.HasErrors() {
			t.Fatal("... without a ... parameter should be an error")
		}
		if got := bag.Items()[0].Code; got != diag.SynInvalidForwarding {
			t.Errorf("code = %v, want %v", got, diag.SynInvalidForwarding)
		}
	})

	t.Run("beginless range argument", func(t *testing.T) {
		prog, bag := parseSrc(t, "take(...9)", Options{})
		if bag.HasErrors() {
			t.Fatalf("unexpected errors: %v", bag.Items())
		}
		call := node[*ast.CallNode](t, body(t, prog, 1)[0])
		rng := node[*ast.RangeNode](t, call.Arguments.Arguments[0])
		if !rng.Exclusive || rng.Left != nil {
			t.Error("...9 should parse as an exclusive beginless range")
		}
		node[*ast.IntegerNode](t, rng.Right)
	})
}

func TestIfElsifElse(t *testing.T) {
	prog, _ := parseSrc(t, "if a\n1\nelsif b\n2\nelse\n3\nend", Options{})
	stmts := body(t, prog, 1)

	outer := node[*ast.IfNode](t, stmts[0])
	elsif := node[*ast.IfNode](t, outer.Subsequent)
	els := node[*ast.ElseNode](t, elsif.Subsequent)
	if els.Statements == nil || len(els.Statements.Body) != 1 {
		t.Error("else branch should hold one statement")
	}
}

func TestModifierIf(t *testing.T) {
	prog, _ := parseSrc(t, "foo if bar", Options{})
	stmts := body(t, prog, 1)
	ifn := node[*ast.IfNode](t, stmts[0])
	if ifn.Statements == nil || len(ifn.Statements.Body) != 1 {
		t.Fatal("modifier if should wrap the statement")
	}
	node[*ast.CallNode](t, ifn.Statements.Body[0])
}

func TestMultiWrite(t *testing.T) {
	prog, _ := parseSrc(t, "a, b = 1, 2\na, *rest = xs", Options{})
	stmts := body(t, prog, 2)

	mw := node[*ast.MultiWriteNode](t, stmts[0])
	if len(mw.Lefts) != 2 {
		t.Fatalf("got %d targets, want 2", len(mw.Lefts))
	}
	node[*ast.LocalVariableTargetNode](t, mw.Lefts[0])
	arr := node[*ast.ArrayNode](t, mw.Value)
	if len(arr.Elements) != 2 {
		t.Errorf("value list folded into %d elements, want 2", len(arr.Elements))
	}

	splat := node[*ast.MultiWriteNode](t, stmts[1])
	if splat.Rest == nil {
		t.Fatal("expected a rest target")
	}
	node[*ast.SplatNode](t, splat.Rest)
}

func TestCaseMatch(t *testing.T) {
	prog, _ := parseSrc(t, "case x\nin [1, y]\ny\nend", Options{})
	stmts := body(t, prog, 1)

	cm := node[*ast.CaseMatchNode](t, stmts[0])
	if len(cm.Conditions) != 1 {
		t.Fatalf("got %d in clauses, want 1", len(cm.Conditions))
	}
	in := node[*ast.InNode](t, cm.Conditions[0])
	node[*ast.ArrayPatternNode](t, in.Pattern)
	if in.Statements == nil || len(in.Statements.Body) != 1 {
		t.Fatal("in clause should hold one statement")
	}
	// y is bound by the pattern, so the body reads a local.
	node[*ast.LocalVariableReadNode](t, in.Statements.Body[0])
}

func TestBlocks(t *testing.T) {
	prog, _ := parseSrc(t, "foo { |x| x }\nbar { _1 }\nbaz { it }", Options{Version: Ruby34})
	stmts := body(t, prog, 3)

	withParams := node[*ast.CallNode](t, stmts[0])
	blk := node[*ast.BlockNode](t, withParams.Block)
	params := node[*ast.BlockParametersNode](t, blk.Parameters)
	if params.Parameters == nil || len(params.Parameters.Requireds) != 1 {
		t.Fatal("block should take one parameter")
	}
	blkBody := node[*ast.StatementsNode](t, blk.Body)
	node[*ast.LocalVariableReadNode](t, blkBody.Body[0])

	numbered := node[*ast.CallNode](t, stmts[1])
	nb := node[*ast.BlockNode](t, numbered.Block)
	np := node[*ast.NumberedParametersNode](t, nb.Parameters)
	if np.Maximum != 1 {
		t.Errorf("numbered maximum = %d, want 1", np.Maximum)
	}

	itCall := node[*ast.CallNode](t, stmts[2])
	ib := node[*ast.BlockNode](t, itCall.Block)
	node[*ast.ItParametersNode](t, ib.Parameters)
}

func TestStringInterpolation(t *testing.T) {
	prog, _ := parseSrc(t, `"a#{b}c"`, Options{})
	stmts := body(t, prog, 1)

	interp := node[*ast.InterpolatedStringNode](t, stmts[0])
	if len(interp.Parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(interp.Parts))
	}
	node[*ast.StringNode](t, interp.Parts[0])
	node[*ast.EmbeddedStatementsNode](t, interp.Parts[1])
	node[*ast.StringNode](t, interp.Parts[2])
}

func TestRescueModifier(t *testing.T) {
	prog, _ := parseSrc(t, "risky rescue fallback", Options{})
	stmts := body(t, prog, 1)
	node[*ast.RescueModifierNode](t, stmts[0])
}

func TestErrorRecoveryProducesTree(t *testing.T) {
	prog, bag := parseSrc(t, "def foo\n1\n", Options{})
	if !bag.HasErrors() {
		t.Fatal("missing end should report an error")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynExpectEnd {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics %v should include SynExpectEnd", bag.Items())
	}
	stmts := body(t, prog, 1)
	def := node[*ast.DefNode](t, stmts[0])
	if def.Name != "foo" {
		t.Errorf("recovered def name = %q, want foo", def.Name)
	}
}

func TestChildNodesSourceOrdered(t *testing.T) {
	sources := []string{
		"foo if bar",
		"foo unless bar",
		"x = 0\nx += 1 while x < 3",
		"x = 10\nx -= 1 until x.zero?",
		"begin\n  work\nend while retryable",
		"if a\n1\nelse\n2\nend",
		"a ? 1 : 2",
		"foo do |x|\n  x\nend unless done",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			prog, _ := parseSrc(t, src, Options{})
			checkChildOrder(t, prog)
		})
	}
}

func checkChildOrder(t *testing.T, n ast.Node) {
	t.Helper()
	var prevEnd uint32
	for _, c := range n.ChildNodes() {
		if c == nil || c.Span().Empty() {
			continue
		}
		sp := c.Span()
		if sp.Start < prevEnd {
			t.Fatalf("%s child %s [%d,%d) out of source order (previous child ended at %d)",
				n.Kind(), c.Kind(), sp.Start, sp.End, prevEnd)
		}
		prevEnd = sp.End
		checkChildOrder(t, c)
	}
}

func TestProgramSpanCoversSource(t *testing.T) {
	src := "a = 1\nb = 2\n"
	prog, bag := parseSrc(t, src, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if sp := prog.Span(); sp.Start != 0 || int(sp.End) != len(src) {
		t.Errorf("program span = %v, want [0,%d)", sp, len(src))
	}
}

func TestTruncatedSecondDef(t *testing.T) {
	prog, bag := parseSrc(t, "def foo; end; def", Options{})
	if !bag.HasErrors() {
		t.Fatal("truncated def should report an error")
	}

	stmts := body(t, prog, 2)
	foo := node[*ast.DefNode](t, stmts[0])
	if foo.Name != "foo" {
		t.Errorf("first def = %q, want foo", foo.Name)
	}
	// The broken definition still shows up; only its name is missing.
	node[*ast.DefNode](t, stmts[1])
}

func TestMaxErrorsCapsReporting(t *testing.T) {
	prog, bag := parseSrc(t, "def\ndef\ndef\ndef\n", Options{MaxErrors: 2})
	if prog.Statements == nil {
		t.Fatal("tree should survive error cap")
	}
	if got := bag.Len(); got > 2 {
		t.Errorf("reported %d diagnostics, want at most 2", got)
	}
}
