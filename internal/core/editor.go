// Package core implements the editing engine: one Editor per view,
// orchestrating buffer edits, cursors, the selection, the width cache and
// undo history as atomic operations that report a ChangeSet.
package core

import (
	"github.com/bethropolis/tidecore/internal/buffer"
	"github.com/bethropolis/tidecore/internal/core/cursor"
	"github.com/bethropolis/tidecore/internal/core/history"
	"github.com/bethropolis/tidecore/internal/core/selection"
	"github.com/bethropolis/tidecore/internal/core/width"
	"github.com/bethropolis/tidecore/internal/logger"
)

// State is the cursor and selection state an editor can be restored to.
type State = history.State

// Editor owns the cursors, selection, width cache and undo history of one
// view over a buffer. Every mutating method runs as one atomic operation and
// returns the ChangeSet describing what changed.
type Editor struct {
	buffer    *buffer.Buffer
	cursors   *cursor.Manager
	selection *selection.Manager
	widths    *width.Manager
	history   *history.Manager
}

// NewEditor creates an Editor over buf. maxUndo bounds the undo stack;
// zero or less uses history.DefaultMaxHistory.
func NewEditor(buf *buffer.Buffer, maxUndo int) *Editor {
	if buf == nil {
		buf = buffer.New()
	}
	return &Editor{
		buffer:    buf,
		cursors:   cursor.NewManager(),
		selection: selection.NewManager(),
		widths:    width.NewManager(buf.LineCount()),
		history:   history.NewManager(maxUndo),
	}
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() *buffer.Buffer {
	return e.buffer
}

// Text returns the full buffer contents.
func (e *Editor) Text() string {
	return e.buffer.String()
}

// Cursors returns the sorted cursor list.
func (e *Editor) Cursors() []cursor.Entry {
	return e.cursors.Cursors()
}

// ActiveCursor returns the active cursor.
func (e *Editor) ActiveCursor() cursor.Entry {
	return e.cursors.Active()
}

// Selection returns the current selection.
func (e *Editor) Selection() selection.Selection {
	return e.selection.Selection()
}

// SelectedText returns the selected text, or "" without a selection.
func (e *Editor) SelectedText() string {
	if !e.selection.IsActive() {
		return ""
	}
	s := e.selection.Selection()
	return e.buffer.Slice(e.buffer.PosToByte(s.Start.Row, s.Start.Col), e.buffer.PosToByte(s.End.Row, s.End.Col))
}

// CanUndo reports whether Undo has a transaction to revert.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo has a transaction to reapply.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// MaxLineWidth returns the widest measured line.
func (e *Editor) MaxLineWidth() int {
	return e.widths.Max()
}

// LinesNeedingMeasurement lists unmeasured rows in [first, last].
func (e *Editor) LinesNeedingMeasurement(first, last int) []int {
	if n := e.buffer.LineCount(); e.widths.Len() != n {
		e.widths.ClearAndRebuild(n)
	}
	return e.widths.LinesNeedingMeasurement(first, last)
}

// UpdateLineWidth records the measured width of row.
func (e *Editor) UpdateLineWidth(row, w int) ChangeSet {
	n := e.buffer.LineCount()
	cs := ChangeSet{LineCountBefore: n, LineCountAfter: n}
	if e.widths.UpdateLineWidth(row, w) {
		cs.Mask |= ChangeWidths
	}
	return cs
}

// State captures cursors and selection.
func (e *Editor) State() State {
	return State{Cursors: e.cursors.Snapshot(), Selection: e.selection.Selection()}
}

// RestoreState reinstates a captured state, clamping cursors to the
// current buffer.
func (e *Editor) RestoreState(s State) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		c.cursors.Restore(s.Cursors)
		c.cursors.Map(func(en *cursor.Entry) { en.Cursor.Clamp(c.buf) })
		sel := s.Selection
		if sel.Active {
			sel.Anchor = cursor.New(c.buf, sel.Anchor.Row, sel.Anchor.Col).Pos()
			sel.Update(c.buf, c.cursors.Active().Cursor.Pos())
		}
		c.sel.Restore(sel)
	})
}

// withOp runs op as one atomic operation. It snapshots the pre-op state,
// opens a transaction when record is set, commits it if it holds edits,
// normalizes cursors, keeps the width cache in step with the buffer and
// returns the resulting ChangeSet.
func (e *Editor) withOp(record bool, op func(c *opContext)) ChangeSet {
	// Another view on the same buffer may have edited it since our last op.
	e.cursors.Map(func(en *cursor.Entry) { en.Cursor.Clamp(e.buffer) })

	before := e.State()
	linesBefore := e.buffer.LineCount()
	revBefore := e.buffer.Revision()

	c := &opContext{
		buf:     e.buffer,
		cursors: e.cursors,
		sel:     e.selection,
		widths:  e.widths,
	}
	if record {
		c.tx = &history.Transaction{Before: before}
	}

	op(c)
	e.cursors.SortAndDedup()
	after := e.State()
	linesAfter := e.buffer.LineCount()

	if c.tx != nil {
		c.tx.After = after
		e.history.Push(c.tx)
	}

	cs := ChangeSet{LineCountBefore: linesBefore, LineCountAfter: linesAfter}
	if e.buffer.Revision() != revBefore {
		cs.Mask |= ChangeBuffer
	}
	if linesBefore != linesAfter {
		cs.Mask |= ChangeLineCount
	}
	if !before.Cursors.Equal(after.Cursors) {
		cs.Mask |= ChangeCursor
	}
	if before.Selection != after.Selection {
		cs.Mask |= ChangeSelection
	}
	if c.edits > 0 {
		first, last := c.dirtyFirst, c.dirtyLast
		if c.edits > 1 && c.structural {
			last = linesAfter - 1
		}
		last = min(last, linesAfter-1)
		first = min(first, last)
		cs.DirtyFirstRow, cs.DirtyLastRow, cs.HasDirtyRows = first, last, true
	}
	if e.syncWidths(c, dirtyStart(cs), linesAfter) {
		cs.Mask |= ChangeWidths
	}
	if cs.Mask&(ChangeBuffer|ChangeCursor) != 0 {
		cs.Mask |= ChangeScroll
	}
	if !cs.Empty() {
		logger.DebugTagf("editor", "op changed %v, lines %d -> %d", cs.Mask, linesBefore, linesAfter)
	}
	return cs
}

func dirtyStart(cs ChangeSet) int {
	if cs.HasDirtyRows {
		return cs.DirtyFirstRow
	}
	return 0
}

// syncWidths updates the width cache after an op and reports whether any
// cached width was invalidated.
func (e *Editor) syncWidths(c *opContext, editRow, lineCount int) bool {
	switch {
	case c.rebuild:
		e.widths.ClearAndRebuild(lineCount)
		return true
	case c.edits == 0:
		return false
	case c.edits > 1 && c.structural:
		e.widths.Sync(lineCount, editRow)
		e.widths.InvalidateRange(editRow, lineCount-1)
	default:
		e.widths.Sync(lineCount, editRow)
		e.widths.InvalidateRange(editRow, c.dirtyLast)
	}
	return true
}
