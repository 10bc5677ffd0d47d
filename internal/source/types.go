package source

// FileID indexes a file inside a FileSet.
type FileID uint32

// FileFlags records normalization applied when the file was loaded.
type FileFlags uint8

const (
	// FileHadBOM means a UTF-8 BOM was stripped from the content.
	FileHadBOM FileFlags = 1 << iota
	// FileVirtual marks in-memory files (stdin, tests, eval snippets).
	FileVirtual
)

// File is one loaded source buffer plus derived metadata.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the byte offset of every '\n' in Content, ascending.
	LineIdx []uint32
	Flags   FileFlags
	// LineOffset shifts reported line numbers, for fragments embedded
	// at a known line of a larger document. Byte offsets never shift.
	LineOffset uint32
}

// LineCol is a 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
