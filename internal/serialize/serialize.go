// Package serialize persists syntax trees as msgpack streams. The
// format is a two-element header followed by the tree in preorder; a
// record stores the node's stable kind tag, span offsets, the newline
// flag, and only those fields that cannot be recomputed from the
// original source bytes.
package serialize

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"garnet/internal/ast"
)

const (
	// Magic identifies a serialized tree stream.
	Magic = "garnet-ast"
	// SchemaVersion bumps whenever a record layout changes. Kind tags
	// are append-only and never force a bump on their own.
	SchemaVersion = 1
)

var (
	// ErrBadMagic means the stream does not start with the expected
	// header.
	ErrBadMagic = errors.New("serialize: not a garnet ast stream")
	// ErrSchemaVersion means the stream was written by an incompatible
	// schema revision.
	ErrSchemaVersion = errors.New("serialize: unsupported schema version")
)

// Encode writes the tree to w. A nil tree encodes as a header followed
// by a single nil record.
func Encode(w io.Writer, tree ast.Node) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(2); err != nil {
		return fmt.Errorf("serialize: header: %w", err)
	}
	if err := enc.EncodeString(Magic); err != nil {
		return fmt.Errorf("serialize: header: %w", err)
	}
	if err := enc.EncodeUint16(SchemaVersion); err != nil {
		return fmt.Errorf("serialize: header: %w", err)
	}
	e := &encoder{enc: enc}
	e.node(tree)
	return e.err
}

// Decode reads a tree from r. src must be the exact source buffer the
// tree was parsed from: source-derived strings are rebuilt from span
// offsets and every span is validated against len(src).
func Decode(r io.Reader, src []byte) (ast.Node, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("serialize: header: %w", err)
	}
	if n != 2 {
		return nil, ErrBadMagic
	}
	magic, err := dec.DecodeString()
	if err != nil {
		return nil, fmt.Errorf("serialize: header: %w", err)
	}
	if magic != Magic {
		return nil, ErrBadMagic
	}
	version, err := dec.DecodeUint16()
	if err != nil {
		return nil, fmt.Errorf("serialize: header: %w", err)
	}
	if version != SchemaVersion {
		return nil, fmt.Errorf("%w: stream has %d, decoder supports %d",
			ErrSchemaVersion, version, SchemaVersion)
	}

	d := &decoder{dec: dec, src: src}
	tree := d.node()
	if d.err != nil {
		return nil, d.err
	}
	return tree, nil
}
