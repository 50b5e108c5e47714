package srcrange

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex caches line-start byte offsets for one file so repeated
// offset-to-(line,column) conversions don't rescan the source.
//
// Grounded on the teacher's text.TextFile: newlineEndingIndexes plus a
// sort.Search lookup, generalized here to also report the column in
// UTF-16 code units (spec.md §4.7: "so the output is consumable by
// language-server clients").
type LineIndex struct {
	src        []byte
	lineStarts []uint32 // byte offset of the first byte of each line; lineStarts[0] == 0.
}

// NewLineIndex scans src once for '\n' bytes.
func NewLineIndex(src []byte) *LineIndex {
	starts := []uint32{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return &LineIndex{src: src, lineStarts: starts}
}

// Position converts a byte offset to a 1-indexed (line, column) pair,
// with column measured in UTF-16 code units from the start of the line.
func (li *LineIndex) Position(offset uint32) (line, column int) {
	// sort.Search finds the first lineStart > offset; the line
	// containing offset is the one just before it.
	idx := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	})
	lineNo := idx - 1
	if lineNo < 0 {
		lineNo = 0
	}
	lineStart := li.lineStarts[lineNo]

	end := offset
	if end > uint32(len(li.src)) {
		end = uint32(len(li.src))
	}

	col := utf16Units(li.src[lineStart:end])
	return lineNo + 1, col + 1
}

// utf16Units returns how many UTF-16 code units b decodes to.
func utf16Units(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		n += len(utf16.Encode([]rune{r}))
		b = b[size:]
	}
	return n
}
