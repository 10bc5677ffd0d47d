package source

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// MagicComment is one `# key: value` directive from the file prologue.
type MagicComment struct {
	Key   string
	Value string
	Span  Span
}

// Prologue holds everything negotiated before lexing starts: the
// declared source encoding plus the recognized magic-comment switches.
type Prologue struct {
	EncodingName        string
	UnknownEncoding     string // set when the declared name did not resolve
	FrozenStringLiteral bool
	HasFrozenDirective  bool
	Magics              []MagicComment
}

var (
	emacsStyle = regexp.MustCompile(`-\*-\s*(.+?)\s*-\*-`)
	magicPair  = regexp.MustCompile(`\A\s*([A-Za-z][A-Za-z0-9_-]*)\s*:\s*(\S+)`)
)

// ScanPrologue inspects the leading comment lines of content for magic
// comments. Directives are only honored before the first line of code;
// a shebang on line 1 is skipped.
func ScanPrologue(f *File) Prologue {
	p := Prologue{EncodingName: "UTF-8"}
	content := f.Content
	var off uint32
	if bytes.HasPrefix(content, []byte("#!")) {
		nl := bytes.IndexByte(content, '\n')
		if nl < 0 {
			return p
		}
		off = uint32(nl) + 1
	}

	for int(off) < len(content) {
		rest := content[off:]
		nl := bytes.IndexByte(rest, '\n')
		lineEnd := len(content)
		if nl >= 0 {
			lineEnd = int(off) + nl
		}
		line := content[off:lineEnd]
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || trimmed[0] != '#' {
			break
		}
		indent := uint32(len(line) - len(trimmed))
		scanMagicLine(&p, string(trimmed[1:]), Span{File: f.ID, Start: off + indent, End: uint32(lineEnd)})
		if nl < 0 {
			break
		}
		off = uint32(lineEnd) + 1
	}
	return p
}

func scanMagicLine(p *Prologue, body string, sp Span) {
	if m := emacsStyle.FindStringSubmatch(body); m != nil {
		for _, part := range strings.Split(m[1], ";") {
			recordMagic(p, part, sp)
		}
		return
	}
	recordMagic(p, body, sp)
}

func recordMagic(p *Prologue, text string, sp Span) {
	m := magicPair.FindStringSubmatch(text)
	if m == nil {
		return
	}
	key := strings.ToLower(m[1])
	val := m[2]
	switch key {
	case "encoding", "coding":
		p.EncodingName = val
		if !knownEncoding(val) {
			p.UnknownEncoding = val
		}
	case "frozen_string_literal":
		p.HasFrozenDirective = true
		p.FrozenStringLiteral = strings.EqualFold(val, "true")
	case "warn_indent":
		// accepted but only recorded
	default:
		return
	}
	p.Magics = append(p.Magics, MagicComment{Key: key, Value: val, Span: sp})
}

// knownEncoding reports whether a Ruby encoding name resolves, through
// the IANA registry for anything beyond the common aliases. Content is
// kept as raw bytes either way; only the declared name travels on the
// parse result.
func knownEncoding(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "ascii-8bit", "binary", "us-ascii", "ascii":
		return true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	return err == nil && enc != nil
}

// ValidUTF8Prefix returns the length of the longest valid UTF-8 run
// starting at content[off:]. A zero result means content[off] begins an
// invalid sequence.
func ValidUTF8Prefix(content []byte, off uint32) uint32 {
	var n uint32
	for int(off+n) < len(content) {
		r, size := utf8.DecodeRune(content[off+n:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		n += uint32(size)
	}
	return n
}
