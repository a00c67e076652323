package core

import (
	"github.com/bethropolis/tidecore/internal/core/cursor"
	"github.com/bethropolis/tidecore/internal/logger"
)

// InsertText inserts text at every cursor. An active selection is replaced.
func (e *Editor) InsertText(text string) ChangeSet {
	return e.withOp(true, func(c *opContext) {
		c.deleteSelection()
		if text == "" {
			return
		}
		offsets := c.cursorOffsets()
		// Reverse order keeps lower offsets valid while inserting above them.
		for i := len(offsets) - 1; i >= 0; i-- {
			at := c.Insert(offsets[i], text)
			for j := range offsets {
				if j != i && offsets[j] >= at {
					offsets[j] += len(text)
				}
			}
			offsets[i] = at + len(text)
		}
		c.placeCursors(offsets)
	})
}

// InsertNewLine inserts "\n" at every cursor.
func (e *Editor) InsertNewLine() ChangeSet {
	return e.InsertText("\n")
}

// Backspace deletes the selection, or the grapheme (or CRLF pair) before
// every cursor.
func (e *Editor) Backspace() ChangeSet {
	return e.withOp(true, func(c *opContext) {
		if c.deleteSelection() {
			return
		}
		offsets := c.cursorOffsets()
		for i := len(offsets) - 1; i >= 0; i-- {
			end := offsets[i]
			if end == 0 {
				continue
			}
			start := c.prevBoundary(end)
			c.Delete(start, end)
			shiftAfterDelete(offsets, i, start, end)
			offsets[i] = start
		}
		c.placeCursors(offsets)
	})
}

// Delete deletes the selection, or the grapheme (or line terminator)
// after every cursor.
func (e *Editor) Delete() ChangeSet {
	return e.withOp(true, func(c *opContext) {
		if c.deleteSelection() {
			return
		}
		offsets := c.cursorOffsets()
		for i := len(offsets) - 1; i >= 0; i-- {
			start := offsets[i]
			if start >= c.buf.Len() {
				continue
			}
			end := c.nextBoundary(start)
			c.Delete(start, end)
			shiftAfterDelete(offsets, i, start, end)
		}
		c.placeCursors(offsets)
	})
}

// shiftAfterDelete remaps every offset but skip after [start, end) was
// removed. Offsets inside the range collapse to start.
func shiftAfterDelete(offsets []int, skip, start, end int) {
	n := end - start
	for j := range offsets {
		switch {
		case j == skip:
		case offsets[j] >= end:
			offsets[j] -= n
		case offsets[j] > start:
			offsets[j] = start
		}
	}
}

// Undo reverts the most recent transaction. With nothing to undo it
// returns an empty ChangeSet.
func (e *Editor) Undo() ChangeSet {
	tx, ok := e.history.PopUndo()
	if !ok {
		return ChangeSet{}
	}
	logger.Debugf("Editor: undoing %d edit(s)", len(tx.Edits))
	return e.withOp(false, func(c *opContext) {
		tx.Revert(c)
		c.cursors.Restore(tx.Before.Cursors)
		c.sel.Restore(tx.Before.Selection)
		c.rebuild = true
	})
}

// Redo reapplies the most recently undone transaction.
func (e *Editor) Redo() ChangeSet {
	tx, ok := e.history.PopRedo()
	if !ok {
		return ChangeSet{}
	}
	logger.Debugf("Editor: redoing %d edit(s)", len(tx.Edits))
	return e.withOp(false, func(c *opContext) {
		tx.Replay(c)
		c.cursors.Restore(tx.After.Cursors)
		c.sel.Restore(tx.After.Selection)
		c.rebuild = true
	})
}

// LoadText replaces the whole buffer, clearing history, cursors, the
// selection and cached widths.
func (e *Editor) LoadText(text string) ChangeSet {
	e.history.Clear()
	return e.withOp(false, func(c *opContext) {
		c.buf.SetText(text)
		c.cursors.Reset(cursor.Cursor{})
		c.sel.Clear()
		c.rebuild = true
		if n := c.buf.LineCount(); n > 0 {
			c.markDirty(0, n-1, true)
		}
	})
}
