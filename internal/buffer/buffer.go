// Package buffer implements the rope-backed text store of a document.
//
// All offsets are byte offsets. Out-of-range arguments are clamped to the
// nearest valid boundary rather than reported as errors.
package buffer

import "strings"

// Buffer is a mutable text store over a persistent rope.
type Buffer struct {
	root     *node
	revision uint64
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer holding s.
func FromString(s string) *Buffer {
	return &Buffer{root: fromString(s)}
}

// Len returns the byte length of the text.
func (b *Buffer) Len() int {
	if b.root == nil {
		return 0
	}
	return b.root.length
}

// Revision increases on every mutation. Equal revisions imply equal text.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// String returns the full text. Use sparingly for large buffers.
func (b *Buffer) String() string {
	return b.Slice(0, b.Len())
}

// Slice returns the text in [start,end), clamped.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clampRange(start, end)
	if start == end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	b.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at offset i.
func (b *Buffer) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= b.Len() {
		return 0, false
	}
	return b.root.byteAt(i), true
}

// SetText replaces the whole content.
func (b *Buffer) SetText(s string) {
	b.root = fromString(s)
	b.revision++
}

// Insert inserts text at offset and returns the clamped offset used.
func (b *Buffer) Insert(offset int, text string) int {
	offset = b.clampOffset(offset)
	if text == "" {
		return offset
	}
	left, right := split(b.root, offset)
	b.root = balanced(join(join(left, fromString(text)), right))
	b.revision++
	return offset
}

// Delete removes [start,end) and returns the removed text. Reversed ranges
// are swapped and out-of-range bounds clamped.
func (b *Buffer) Delete(start, end int) string {
	start, end = b.clampRange(start, end)
	if start == end {
		return ""
	}
	deleted := b.Slice(start, end)
	left, rest := split(b.root, start)
	_, right := split(rest, end-start)
	b.root = balanced(join(left, right))
	b.revision++
	return deleted
}

// newlines returns the number of '\n' bytes in the buffer.
func (b *Buffer) newlines() int {
	if b.root == nil {
		return 0
	}
	return b.root.newlines
}

// LineCount returns the number of lines. A trailing newline yields a final
// empty line, and an empty buffer has one line.
func (b *Buffer) LineCount() int {
	return b.newlines() + 1
}

// ClampRow clamps row into [0, LineCount-1].
func (b *Buffer) ClampRow(row int) int {
	if row < 0 {
		return 0
	}
	if last := b.LineCount() - 1; row > last {
		return last
	}
	return row
}

// LineStart returns the byte offset where row begins.
func (b *Buffer) LineStart(row int) int {
	row = b.ClampRow(row)
	if row == 0 {
		return 0
	}
	return b.root.nthNewline(row) + 1
}

// lineEnd returns the offset just past row's terminator (or Len for the last row).
func (b *Buffer) lineEnd(row int) int {
	row = b.ClampRow(row)
	if row >= b.newlines() {
		return b.Len()
	}
	return b.root.nthNewline(row+1) + 1
}

// LineLen returns the byte length of row including its terminator.
func (b *Buffer) LineLen(row int) int {
	return b.lineEnd(row) - b.LineStart(row)
}

// LineLenWithoutNewline returns the byte length of row excluding "\n" or "\r\n".
func (b *Buffer) LineLenWithoutNewline(row int) int {
	row = b.ClampRow(row)
	start := b.LineStart(row)
	n := b.lineEnd(row) - start
	if row < b.newlines() {
		n-- // '\n'
		if c, ok := b.ByteAt(start + n - 1); ok && n > 0 && c == '\r' {
			n--
		}
	}
	return n
}

// Line returns the text of row without its terminator.
func (b *Buffer) Line(row int) string {
	start := b.LineStart(row)
	return b.Slice(start, start+b.LineLenWithoutNewline(row))
}

// PosToByte converts (row, col) to a byte offset, clamping both.
func (b *Buffer) PosToByte(row, col int) int {
	row = b.ClampRow(row)
	if col < 0 {
		col = 0
	}
	if n := b.LineLenWithoutNewline(row); col > n {
		col = n
	}
	return b.LineStart(row) + col
}

// ByteToPos converts a byte offset to (row, col). When the buffer ends with a
// newline, Len maps to column 0 of the trailing empty line. An offset between
// '\r' and '\n' maps to the end of its line.
func (b *Buffer) ByteToPos(i int) (row, col int) {
	i = b.clampOffset(i)
	if b.root == nil {
		return 0, 0
	}
	row = b.root.newlinesBefore(i)
	col = i - b.LineStart(row)
	if n := b.LineLenWithoutNewline(row); col > n {
		col = n
	}
	return row, col
}

func (b *Buffer) clampOffset(i int) int {
	if i < 0 {
		return 0
	}
	if n := b.Len(); i > n {
		return n
	}
	return i
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	return b.clampOffset(start), b.clampOffset(end)
}
