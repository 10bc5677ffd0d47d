package serialize

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"garnet/internal/ast"
	"garnet/internal/attach"
	"garnet/internal/lexer"
	"garnet/internal/parser"
	"garnet/internal/source"
)

func parseTree(t *testing.T, src string) *ast.ProgramNode {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rb", []byte(src))
	f := fs.Get(id)
	lx := lexer.New(f, lexer.Options{})
	prog := parser.ParseProgram(f, lx, parser.Options{})
	attach.MarkNewlines(prog, f)
	return prog
}

const roundTripSource = `class Greeter
  def initialize(name)
    @name = name
  end

  def greet(loud: false)
    msg = "hi #{@name}"
    loud ? msg.upcase : msg
  end

  def self.build(...)
    new(...)
  end
end

xs = [1, 2.5, :three]
h = { a: 1, "b" => 2 }
xs.each { |x| x + 1 }
case h
in { a: Integer => n }
  n
else
  0
end
`

func TestRoundTrip(t *testing.T) {
	tree := parseTree(t, roundTripSource)

	var first bytes.Buffer
	if err := Encode(&first, tree); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(bytes.NewReader(first.Bytes()), []byte(roundTripSource))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var second bytes.Buffer
	if err := Encode(&second, decoded); err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("re-encoding a decoded tree should reproduce the stream byte for byte")
	}
}

func TestDecodeRebuildsSourceDerivedNames(t *testing.T) {
	src := "value = 1\nvalue\n"
	tree := parseTree(t, src)

	var buf bytes.Buffer
	if err := Encode(&buf, tree); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(bytes.NewReader(buf.Bytes()), []byte(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	prog, ok := decoded.(*ast.ProgramNode)
	if !ok {
		t.Fatalf("decoded root is %T, want ProgramNode", decoded)
	}
	read, ok := prog.Statements.Body[1].(*ast.LocalVariableReadNode)
	if !ok {
		t.Fatalf("second statement is %T, want LocalVariableReadNode", prog.Statements.Body[1])
	}
	if read.Name != "value" {
		t.Errorf("rebuilt name = %q, want value", read.Name)
	}
}

func TestEncodeNilTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	decoded, err := Decode(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != nil {
		t.Errorf("decoded = %v, want nil", decoded)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(2); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeString("not-a-tree"); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeUint16(SchemaVersion); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(bytes.NewReader(buf.Bytes()), nil); !errors.Is(err, ErrBadMagic) {
		t.Errorf("err = %v, want ErrBadMagic", err)
	}
}

func TestDecodeSchemaVersionMismatch(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(2); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeString(Magic); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeUint16(SchemaVersion + 1); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(bytes.NewReader(buf.Bytes()), nil); !errors.Is(err, ErrSchemaVersion) {
		t.Errorf("err = %v, want ErrSchemaVersion", err)
	}
}

func TestDecodeRejectsTruncatedSource(t *testing.T) {
	src := "a = 1\nb = 2\n"
	tree := parseTree(t, src)

	var buf bytes.Buffer
	if err := Encode(&buf, tree); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := Decode(bytes.NewReader(buf.Bytes()), []byte("a = 1")); err == nil {
		t.Error("spans past the end of src should fail to decode")
	}
}
