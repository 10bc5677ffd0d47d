package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSpanOps(t *testing.T) {
	a := Span{Start: 2, End: 6}
	b := Span{Start: 4, End: 10}

	if a.Empty() {
		t.Error("non-empty span reported empty")
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("zero-width span should be empty")
	}
	if got := a.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}
	if !a.Contains(Span{Start: 3, End: 5}) {
		t.Error("Contains should accept an inner span")
	}
	if a.Contains(b) {
		t.Error("Contains should reject an overlapping span")
	}
	if !a.ContainsOffset(5) || a.ContainsOffset(6) {
		t.Error("ContainsOffset should be half-open")
	}
	if got := a.Cover(b); got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = %v, want [2,10)", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rb", []byte("ab\ncde\nf"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
		end   LineCol
	}{
		{"first line", Span{File: id, Start: 0, End: 2}, LineCol{1, 1}, LineCol{1, 3}},
		{"second line", Span{File: id, Start: 3, End: 6}, LineCol{2, 1}, LineCol{2, 4}},
		{"crosses lines", Span{File: id, Start: 1, End: 7}, LineCol{1, 2}, LineCol{3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve = %v..%v, want %v..%v", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.rb", []byte("one\ntwo\nthree")))

	if got := f.GetLine(2); got != "two" {
		t.Errorf("GetLine(2) = %q, want two", got)
	}
	if got := f.GetLine(3); got != "three" {
		t.Errorf("GetLine(3) = %q, want three", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
}

func TestLoadStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.rb")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFx = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x = 1" {
		t.Errorf("content = %q, BOM should be stripped", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM flag should be set")
	}
}

func TestAddVirtualFlags(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.rb", []byte("x = 1")))
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual file should carry FileVirtual")
	}
}

func TestScanPrologue(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		frozen bool
		hasDir bool
		encod  string
		unknow string
		magics int
	}{
		{
			name:  "plain code",
			src:   "x = 1\n",
			encod: "UTF-8",
		},
		{
			name:   "frozen true",
			src:    "# frozen_string_literal: true\nx = 1\n",
			frozen: true,
			hasDir: true,
			encod:  "UTF-8",
			magics: 1,
		},
		{
			name:   "frozen false still recorded",
			src:    "# frozen_string_literal: false\n",
			frozen: false,
			hasDir: true,
			encod:  "UTF-8",
			magics: 1,
		},
		{
			name:   "shebang then directive",
			src:    "#!/usr/bin/env ruby\n# frozen_string_literal: true\n",
			frozen: true,
			hasDir: true,
			encod:  "UTF-8",
			magics: 1,
		},
		{
			name:   "directive after code ignored",
			src:    "x = 1\n# frozen_string_literal: true\n",
			encod:  "UTF-8",
			magics: 0,
		},
		{
			name:   "encoding comment",
			src:    "# encoding: iso-8859-1\n",
			encod:  "iso-8859-1",
			magics: 1,
		},
		{
			name:   "unknown encoding",
			src:    "# encoding: martian\n",
			encod:  "martian",
			unknow: "martian",
			magics: 1,
		},
		{
			name:   "emacs style",
			src:    "# -*- coding: utf-8; frozen_string_literal: true -*-\n",
			frozen: true,
			hasDir: true,
			encod:  "utf-8",
			magics: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			f := fs.Get(fs.AddVirtual("test.rb", []byte(tt.src)))
			p := ScanPrologue(f)

			if p.FrozenStringLiteral != tt.frozen {
				t.Errorf("frozen = %v, want %v", p.FrozenStringLiteral, tt.frozen)
			}
			if p.HasFrozenDirective != tt.hasDir {
				t.Errorf("has directive = %v, want %v", p.HasFrozenDirective, tt.hasDir)
			}
			if p.EncodingName != tt.encod {
				t.Errorf("encoding = %q, want %q", p.EncodingName, tt.encod)
			}
			if p.UnknownEncoding != tt.unknow {
				t.Errorf("unknown = %q, want %q", p.UnknownEncoding, tt.unknow)
			}
			if len(p.Magics) != tt.magics {
				t.Errorf("got %d magic comments, want %d", len(p.Magics), tt.magics)
			}
		})
	}
}

func TestValidUTF8Prefix(t *testing.T) {
	content := []byte("ab\xC3\xA9\xFFcd")
	if got := ValidUTF8Prefix(content, 0); got != 4 {
		t.Errorf("prefix from 0 = %d, want 4", got)
	}
	if got := ValidUTF8Prefix(content, 4); got != 0 {
		t.Errorf("prefix at invalid byte = %d, want 0", got)
	}
	if got := ValidUTF8Prefix(content, 5); got != 2 {
		t.Errorf("prefix after invalid byte = %d, want 2", got)
	}
}
