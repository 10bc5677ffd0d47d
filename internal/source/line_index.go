package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// buildLineIndex returns the offsets of all newline bytes in content.
func buildLineIndex(content []byte) []uint32 {
	var idx []uint32
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("file offset overflow: %w", err))
			}
			idx = append(idx, off)
		}
	}
	return idx
}

// toLineCol converts a byte offset into a 1-based line/column pair.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Number of newlines strictly before off.
	line := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	})
	col := off
	if line > 0 {
		col = off - lineIdx[line-1] - 1
	}
	return LineCol{Line: uint32(line) + 1, Col: col + 1}
}

// LineStartOffsets returns the byte offset of the first byte of each line.
// Line 1 starts at offset 0; every '\n' begins a new line.
func (f *File) LineStartOffsets() []uint32 {
	starts := make([]uint32, 0, len(f.LineIdx)+1)
	starts = append(starts, 0)
	for _, nl := range f.LineIdx {
		if int(nl)+1 < len(f.Content) {
			starts = append(starts, nl+1)
		}
	}
	return starts
}

// LineAt returns the 1-based line number containing the byte offset.
func (f *File) LineAt(off uint32) uint32 {
	return toLineCol(f.LineIdx, off).Line
}

// GetLine returns the text of the 1-based line, without its newline.
// Line numbers are in reported space, so a LineOffset is subtracted
// back out. Out-of-range line numbers yield "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum <= f.LineOffset {
		return ""
	}
	lineNum -= f.LineOffset
	lenIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	end := lenContent
	if lineNum-1 < lenIdx {
		end = f.LineIdx[lineNum-1]
	}
	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}
