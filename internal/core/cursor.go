package core

import (
	"github.com/bethropolis/tidecore/internal/core/cursor"
	"github.com/bethropolis/tidecore/internal/types"
)

// motion moves a single cursor against the buffer.
type motion func(c *cursor.Cursor, t cursor.Text)

// move applies m to every cursor. With extend the selection is anchored at
// the active cursor's old position and follows it; otherwise any selection
// is cleared.
func (e *Editor) move(extend bool, m motion) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		from := c.cursors.Active().Cursor.Pos()
		if !extend {
			c.sel.Clear()
		}
		c.cursors.Map(func(en *cursor.Entry) { m(&en.Cursor, c.buf) })
		if extend {
			c.sel.Extend(c.buf, from, c.cursors.Active().Cursor.Pos())
		}
	})
}

// MoveLeft moves every cursor back one grapheme, wrapping to the previous line.
func (e *Editor) MoveLeft(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).Left)
}

// MoveRight moves every cursor forward one grapheme, wrapping to the next line.
func (e *Editor) MoveRight(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).Right)
}

// MoveUp moves every cursor up a row, keeping its sticky column.
func (e *Editor) MoveUp(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).Up)
}

// MoveDown moves every cursor down a row, keeping its sticky column.
func (e *Editor) MoveDown(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).Down)
}

// MoveToLineStart moves every cursor to column 0.
func (e *Editor) MoveToLineStart(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).ToLineStart)
}

// MoveToLineEnd moves every cursor before its line terminator.
func (e *Editor) MoveToLineEnd(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).ToLineEnd)
}

// MoveToStart moves every cursor to the start of the buffer.
func (e *Editor) MoveToStart(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).ToStart)
}

// MoveToEnd moves every cursor to the end of the buffer.
func (e *Editor) MoveToEnd(extend bool) ChangeSet {
	return e.move(extend, (*cursor.Cursor).ToEnd)
}

// MoveTo collapses to the active cursor and moves it to (row, col).
func (e *Editor) MoveTo(row, col int, extend bool) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		from := c.cursors.Active().Cursor.Pos()
		c.collapseTo(cursor.New(c.buf, row, col))
		if extend {
			c.sel.Extend(c.buf, from, c.cursors.Active().Cursor.Pos())
		} else {
			c.sel.Clear()
		}
	})
}

// SelectAll selects the whole buffer, leaving one cursor at the end.
func (e *Editor) SelectAll() ChangeSet {
	return e.withOp(false, func(c *opContext) {
		end := cursor.Cursor{}
		end.ToEnd(c.buf)
		c.collapseTo(end)
		c.sel.Set(c.buf, types.Position{}, end.Pos())
	})
}

// SelectLine selects row including its terminator.
func (e *Editor) SelectLine(row int) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		row = c.buf.ClampRow(row)
		end := cursor.New(c.buf, row, c.buf.LineLenWithoutNewline(row))
		if row < c.buf.LineCount()-1 {
			end = cursor.New(c.buf, row+1, 0)
		}
		c.collapseTo(end)
		c.sel.Set(c.buf, types.Position{Row: row}, end.Pos())
	})
}

// SelectWord selects the word at (row, col) and puts the cursor at its end.
func (e *Editor) SelectWord(row, col int) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		at := cursor.New(c.buf, row, col)
		start, end := wordRange(c.buf.Line(at.Row), at.Col)
		c.collapseTo(cursor.New(c.buf, at.Row, end))
		if start == end {
			c.sel.Clear()
			return
		}
		c.sel.Set(c.buf, types.Position{Row: at.Row, Col: start}, types.Position{Row: at.Row, Col: end})
	})
}

// ClearSelection drops the selection without moving cursors.
func (e *Editor) ClearSelection() ChangeSet {
	return e.withOp(false, func(c *opContext) { c.sel.Clear() })
}

// AddCursor adds an independent cursor at (row, col) and makes it active.
func (e *Editor) AddCursor(row, col int) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		c.sel.Clear()
		c.cursors.AddCursor(cursor.New(c.buf, row, col))
	})
}

// AddCursorAbove grows or shrinks each column group upwards.
func (e *Editor) AddCursorAbove() ChangeSet {
	return e.withOp(false, func(c *opContext) {
		c.sel.Clear()
		c.cursors.AddCursorAbove(c.buf)
	})
}

// AddCursorBelow grows or shrinks each column group downwards.
func (e *Editor) AddCursorBelow() ChangeSet {
	return e.withOp(false, func(c *opContext) {
		c.sel.Clear()
		c.cursors.AddCursorBelow(c.buf)
	})
}

// RemoveCursor removes the cursor with id. The last cursor is never removed.
func (e *Editor) RemoveCursor(id uint64) ChangeSet {
	return e.withOp(false, func(c *opContext) { c.cursors.RemoveCursor(id) })
}

// CollapseCursors keeps only the active cursor.
func (e *Editor) CollapseCursors() ChangeSet {
	return e.withOp(false, func(c *opContext) { c.cursors.Collapse() })
}
