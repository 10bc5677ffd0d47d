package lexer

import (
	"testing"

	"garnet/internal/diag"
	"garnet/internal/source"
	"garnet/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *Lexer) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rb", []byte(src))
	lx := New(fs.Get(id), Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, lx
		}
		if len(toks) > 1000 {
			t.Fatalf("runaway lexer on %q", src)
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestKindSequences(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{
			name: "assignment",
			src:  "a = 1",
			want: []token.Kind{token.Ident, token.Assign, token.Integer, token.EOF},
		},
		{
			name: "two statements",
			src:  "a = 1\nb = 2",
			want: []token.Kind{
				token.Ident, token.Assign, token.Integer, token.Newline,
				token.Ident, token.Assign, token.Integer, token.EOF,
			},
		},
		{
			name: "operator assignment",
			src:  "x += 2",
			want: []token.Kind{token.Ident, token.OpAssign, token.Integer, token.EOF},
		},
		{
			name: "no newline after binary operator",
			src:  "a +\n1",
			want: []token.Kind{token.Ident, token.Plus, token.Integer, token.EOF},
		},
		{
			name: "no newline inside parens",
			src:  "foo(1,\n2)",
			want: []token.Kind{
				token.Ident, token.LParen, token.Integer, token.Comma,
				token.Integer, token.RParen, token.EOF,
			},
		},
		{
			name: "plain string",
			src:  `"foo"`,
			want: []token.Kind{token.StringBegin, token.StringContent, token.StringEnd, token.EOF},
		},
		{
			name: "interpolated string",
			src:  `"a#{b}c"`,
			want: []token.Kind{
				token.StringBegin, token.StringContent, token.EmbExprBegin,
				token.Ident, token.EmbExprEnd, token.StringContent,
				token.StringEnd, token.EOF,
			},
		},
		{
			name: "embedded variable shorthand",
			src:  `"x#@foo"`,
			want: []token.Kind{
				token.StringBegin, token.StringContent, token.EmbVar,
				token.StringEnd, token.EOF,
			},
		},
		{
			name: "symbol",
			src:  ":sym",
			want: []token.Kind{token.Symbol, token.EOF},
		},
		{
			name: "label in hash",
			src:  "{ a: 1 }",
			want: []token.Kind{
				token.LBrace, token.Label, token.Integer, token.RBrace, token.EOF,
			},
		},
		{
			name: "index versus array literal",
			src:  "a[1]\n[1]",
			want: []token.Kind{
				token.Ident, token.LBracketIdx, token.Integer, token.RBracket, token.Newline,
				token.LBracket, token.Integer, token.RBracket, token.EOF,
			},
		},
		{
			name: "variable sigils",
			src:  "@a @@b $c",
			want: []token.Kind{token.IVar, token.CVar, token.GVar, token.EOF},
		},
		{
			name: "method definition",
			src:  "def foo\nend",
			want: []token.Kind{token.KwDef, token.Ident, token.Newline, token.KwEnd, token.EOF},
		},
		{
			name: "unary minus at expression start",
			src:  "-1",
			want: []token.Kind{token.UMinus, token.Integer, token.EOF},
		},
		{
			name: "binary minus",
			src:  "a - 1",
			want: []token.Kind{token.Ident, token.Minus, token.Integer, token.EOF},
		},
		{
			name: "command argument minus",
			src:  "foo -1",
			want: []token.Kind{token.Ident, token.UMinus, token.Integer, token.EOF},
		},
		{
			name: "command argument splat",
			src:  "foo *args",
			want: []token.Kind{token.Ident, token.UStar, token.Ident, token.EOF},
		},
		{
			name: "regexp at expression start",
			src:  "/ab/",
			want: []token.Kind{token.RegexpBegin, token.StringContent, token.RegexpEnd, token.EOF},
		},
		{
			name: "division after value",
			src:  "a / b",
			want: []token.Kind{token.Ident, token.Slash, token.Ident, token.EOF},
		},
		{
			name: "word list",
			src:  "%w[a b]",
			want: []token.Kind{
				token.WordsBegin, token.StringContent, token.WordsSep,
				token.StringContent, token.StringEnd, token.EOF,
			},
		},
		{
			name: "numeric flavors",
			src:  "1 2.5 3r 4i",
			want: []token.Kind{
				token.Integer, token.Float, token.Rational, token.Imaginary, token.EOF,
			},
		},
		{
			name: "safe navigation",
			src:  "a&.b",
			want: []token.Kind{token.Ident, token.AmpDot, token.Ident, token.EOF},
		},
		{
			name: "line continuation",
			src:  "a \\\n1",
			want: []token.Kind{token.Ident, token.Integer, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _ := lexAll(t, tt.src)
			got := kinds(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("token kinds = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d = %v, want %v (all: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestTokenText(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		index int
		want  string
	}{
		{"op assign carries operator", "x ||= 1", 1, "||="},
		{"symbol keeps colon", ":foo", 0, ":foo"},
		{"ivar keeps sigil", "@foo", 0, "@foo"},
		{"cvar keeps sigil", "@@foo", 0, "@@foo"},
		{"gvar keeps sigil", "$foo", 0, "$foo"},
		{"label drops colon", "{ key: 1 }", 1, "key"},
		{"string content unescapes", `"a\nb"`, 1, "a\nb"},
		{"regexp flags on end token", "/x/im", 2, "im"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _ := lexAll(t, tt.src)
			if tt.index >= len(toks) {
				t.Fatalf("only %d tokens", len(toks))
			}
			if got := toks[tt.index].Text; got != tt.want {
				t.Errorf("token %d text = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestHeredoc(t *testing.T) {
	toks, _ := lexAll(t, "<<~DOC\n  hi\nDOC\n")
	got := kinds(toks)
	want := []token.Kind{
		token.HeredocBegin, token.StringContent, token.HeredocEnd,
		token.Newline, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
	if toks[0].Flags&token.FlagSquiggly == 0 {
		t.Error("squiggly heredoc opener should carry FlagSquiggly")
	}
}

func TestCommentsSideChannel(t *testing.T) {
	src := "# leading\nx = 1 # trailing\n=begin\ndoc\n=end\ny = 2\n"
	toks, lx := lexAll(t, src)

	for _, tok := range toks {
		if tok.Kind == token.Invalid {
			t.Fatalf("unexpected Invalid token")
		}
	}
	comments := lx.Comments()
	if len(comments) != 3 {
		t.Fatalf("got %d comments, want 3", len(comments))
	}
	if comments[0].Kind != token.CommentInline {
		t.Errorf("comment 0 kind = %v, want inline", comments[0].Kind)
	}
	if comments[2].Kind != token.CommentEmbDoc {
		t.Errorf("comment 2 kind = %v, want embdoc", comments[2].Kind)
	}
}

func TestDataSection(t *testing.T) {
	src := "x = 1\n__END__\nraw data\n"
	toks, lx := lexAll(t, src)

	off, ok := lx.DataOffset()
	if !ok {
		t.Fatal("expected a data section")
	}
	if want := uint32(len("x = 1\n__END__\n")); off != want {
		t.Errorf("data offset = %d, want %d", off, want)
	}
	got := kinds(toks)
	want := []token.Kind{token.Ident, token.Assign, token.Integer, token.Newline, token.EOF}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
}

func TestUnterminatedStringReports(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rb", []byte(`"abc`))
	bag := diag.NewBag(0)
	lx := New(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	for {
		if lx.Next().Kind == token.EOF {
			break
		}
	}
	if !bag.HasErrors() {
		t.Fatal("unterminated string should report an error")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want LexUnterminatedString", bag.Items()[0].Code)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rb", []byte("a b c"))
	lx := New(fs.Get(id), Options{})

	if got := lx.Peek().Text; got != "a" {
		t.Fatalf("Peek = %q, want a", got)
	}
	if got := lx.PeekN(2).Text; got != "c" {
		t.Fatalf("PeekN(2) = %q, want c", got)
	}
	if got := lx.Next().Text; got != "a" {
		t.Fatalf("Next after Peek = %q, want a", got)
	}
}
