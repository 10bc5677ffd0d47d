package ast

import (
	"testing"

	"garnet/internal/source"
)

func sampleTree() *ProgramNode {
	// a = foo(1)
	call := &CallNode{
		Base: Base{Loc: source.Span{Start: 4, End: 10}},
		Name: "foo",
		Arguments: &ArgumentsNode{
			Base:      Base{Loc: source.Span{Start: 8, End: 9}},
			Arguments: []Node{&IntegerNode{Base: Base{Loc: source.Span{Start: 8, End: 9}}, Value: 1}},
		},
	}
	write := &LocalVariableWriteNode{
		Base:  Base{Loc: source.Span{Start: 0, End: 10}},
		Name:  "a",
		Value: call,
	}
	return &ProgramNode{
		Base: Base{Loc: source.Span{Start: 0, End: 10}},
		Statements: &StatementsNode{
			Base: Base{Loc: source.Span{Start: 0, End: 10}},
			Body: []Node{write},
		},
	}
}

type kindCollector struct {
	Walker
	kinds []NodeKind
}

func (c *kindCollector) VisitProgram(n *ProgramNode) {
	c.kinds = append(c.kinds, n.Kind())
	WalkChildren(c, n)
}

func (c *kindCollector) VisitStatements(n *StatementsNode) {
	c.kinds = append(c.kinds, n.Kind())
	WalkChildren(c, n)
}

func (c *kindCollector) VisitLocalVariableWrite(n *LocalVariableWriteNode) {
	c.kinds = append(c.kinds, n.Kind())
	WalkChildren(c, n)
}

func (c *kindCollector) VisitCall(n *CallNode) {
	c.kinds = append(c.kinds, n.Kind())
	WalkChildren(c, n)
}

func TestWalkerVisitsPreorder(t *testing.T) {
	c := &kindCollector{}
	c.Self = c
	sampleTree().Accept(c)

	want := []NodeKind{KindProgram, KindStatements, KindLocalVariableWrite, KindCall}
	if len(c.kinds) != len(want) {
		t.Fatalf("visited %v, want %v", c.kinds, want)
	}
	for i := range want {
		if c.kinds[i] != want[i] {
			t.Fatalf("visit %d = %v, want %v (all: %v)", i, c.kinds[i], want[i], c.kinds)
		}
	}
}

type callCounter struct {
	Walker
	calls int
}

func (c *callCounter) VisitCall(n *CallNode) {
	c.calls++
	WalkChildren(c, n)
}

func TestWalkerDefaultDescends(t *testing.T) {
	// Only VisitCall is overridden; the walker must still reach the
	// call nested under unvisited node kinds.
	c := &callCounter{}
	c.Self = c
	sampleTree().Accept(c)

	if c.calls != 1 {
		t.Errorf("visited %d calls, want 1", c.calls)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindProgram, "ProgramNode"},
		{KindCall, "CallNode"},
		{KindLocalVariableRead, "LocalVariableReadNode"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint16(tt.kind), got, tt.want)
		}
	}
}

func TestKindStringsUnique(t *testing.T) {
	seen := make(map[string]NodeKind, Count())
	for k := NodeKind(1); int(k) < Count(); k++ {
		s := k.String()
		if s == "" {
			t.Errorf("kind %d has no name", uint16(k))
			continue
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("kinds %d and %d share the name %q", uint16(prev), uint16(k), s)
		}
		seen[s] = k
	}
}

func TestChildNodesOrder(t *testing.T) {
	tree := sampleTree()
	kids := tree.Statements.Body[0].ChildNodes()
	if len(kids) != 1 {
		t.Fatalf("write has %d children, want 1", len(kids))
	}
	if kids[0].Kind() != KindCall {
		t.Errorf("child kind = %v, want KindCall", kids[0].Kind())
	}

	ifn := &IfNode{Predicate: &IntegerNode{Value: 1}}
	kids = ifn.ChildNodes()
	if len(kids) != 3 {
		t.Fatalf("if has %d child slots, want 3", len(kids))
	}
	if kids[1] != nil || kids[2] != nil {
		t.Error("absent optional children should come back nil")
	}
}

func TestNewlineFlag(t *testing.T) {
	n := &IntegerNode{Value: 7}
	if n.NewlineFlag() {
		t.Error("flag should default to false")
	}
	n.SetNewlineFlag(true)
	if !n.NewlineFlag() {
		t.Error("flag should stick after SetNewlineFlag")
	}
}
