package core

import (
	"strings"

	"github.com/bethropolis/tidecore/internal/buffer"
	"github.com/bethropolis/tidecore/internal/core/cursor"
	"github.com/bethropolis/tidecore/internal/core/history"
	"github.com/bethropolis/tidecore/internal/core/selection"
	"github.com/bethropolis/tidecore/internal/core/width"
	"github.com/bethropolis/tidecore/internal/types"
	"github.com/bethropolis/tidecore/internal/utils"
)

// opContext is everything one operation may mutate. Buffer edits go
// through Insert and Delete so they are recorded and dirty rows tracked.
type opContext struct {
	buf     *buffer.Buffer
	cursors *cursor.Manager
	sel     *selection.Manager
	widths  *width.Manager
	tx      *history.Transaction

	edits      int
	structural bool
	dirtyFirst int
	dirtyLast  int
	rebuild    bool
}

func (c *opContext) markDirty(first, last int, structural bool) {
	if c.edits == 0 {
		c.dirtyFirst, c.dirtyLast = first, last
	} else {
		c.dirtyFirst = min(c.dirtyFirst, first)
		c.dirtyLast = max(c.dirtyLast, last)
	}
	c.edits++
	c.structural = c.structural || structural
}

// Insert inserts text at offset and returns the clamped offset used.
func (c *opContext) Insert(offset int, text string) int {
	if text == "" {
		return offset
	}
	at := c.buf.Insert(offset, text)
	row, _ := c.buf.ByteToPos(at)
	n := strings.Count(text, "\n")
	c.markDirty(row, row+n, n > 0)
	if c.tx != nil {
		c.tx.Record(history.Edit{Type: history.InsertAction, Offset: at, Text: text})
	}
	return at
}

// Delete removes [start, end) and returns the removed text.
func (c *opContext) Delete(start, end int) string {
	if start > end {
		start, end = end, start
	}
	start = max(0, min(start, c.buf.Len()))
	end = max(0, min(end, c.buf.Len()))
	if start == end {
		return ""
	}
	row, _ := c.buf.ByteToPos(start)
	deleted := c.buf.Delete(start, end)
	c.markDirty(row, row, strings.Contains(deleted, "\n"))
	if c.tx != nil {
		c.tx.Record(history.Edit{Type: history.DeleteAction, Offset: start, Text: deleted})
	}
	return deleted
}

func (c *opContext) offset(p types.Position) int {
	return c.buf.PosToByte(p.Row, p.Col)
}

// cursorOffsets returns the byte offset of every cursor in list order.
func (c *opContext) cursorOffsets() []int {
	offsets := make([]int, 0, c.cursors.Len())
	c.cursors.Map(func(e *cursor.Entry) {
		offsets = append(offsets, c.buf.PosToByte(e.Cursor.Row, e.Cursor.Col))
	})
	return offsets
}

// placeCursors re-projects byte offsets onto the cursors. The sticky
// column follows the new column.
func (c *opContext) placeCursors(offsets []int) {
	i := 0
	c.cursors.Map(func(e *cursor.Entry) {
		row, col := c.buf.ByteToPos(offsets[i])
		e.Cursor = cursor.Cursor{Row: row, Col: col, StickyCol: col}
		i++
	})
}

// deleteSelection removes the active selection, leaving one cursor at its
// start. It reports whether anything was deleted. An empty selection is
// dropped so its anchor does not outlive the edit.
func (c *opContext) deleteSelection() bool {
	if !c.sel.IsActive() {
		c.sel.Clear()
		return false
	}
	s := c.sel.Selection()
	c.Delete(c.offset(s.Start), c.offset(s.End))
	c.sel.Clear()
	c.collapseTo(cursor.New(c.buf, s.Start.Row, s.Start.Col))
	return true
}

// collapseTo keeps only the active cursor and moves it to cur.
func (c *opContext) collapseTo(cur cursor.Cursor) {
	c.cursors.Collapse()
	c.cursors.Set(0, cur)
}

// prevBoundary returns the start of the unit before offset: a CRLF pair
// or a grapheme cluster.
func (c *opContext) prevBoundary(offset int) int {
	row, col := c.buf.ByteToPos(offset)
	if col == 0 {
		if prev, ok := c.buf.ByteAt(offset - 2); ok && prev == '\r' {
			if nl, _ := c.buf.ByteAt(offset - 1); nl == '\n' {
				return offset - 2
			}
		}
		return offset - 1
	}
	return c.buf.LineStart(row) + utils.PrevGraphemeBoundary(c.buf.Line(row), col)
}

// nextBoundary returns the end of the unit after offset: a CRLF pair, a
// single terminator byte, or a grapheme cluster.
func (c *opContext) nextBoundary(offset int) int {
	row, col := c.buf.ByteToPos(offset)
	if col >= c.buf.LineLenWithoutNewline(row) {
		if b, _ := c.buf.ByteAt(offset); b == '\r' {
			if nl, ok := c.buf.ByteAt(offset + 1); ok && nl == '\n' {
				return offset + 2
			}
		}
		return offset + 1
	}
	return c.buf.LineStart(row) + utils.NextGraphemeBoundary(c.buf.Line(row), col)
}
