package core

import (
	"github.com/bethropolis/tidecore/internal/core/cursor"
	"github.com/bethropolis/tidecore/internal/core/find"
	"github.com/bethropolis/tidecore/internal/types"
)

// Select collapses to one cursor at to and selects [from, to).
func (e *Editor) Select(from, to types.Position) ChangeSet {
	return e.withOp(false, func(c *opContext) {
		end := cursor.New(c.buf, to.Row, to.Col)
		c.collapseTo(end)
		start := cursor.New(c.buf, from.Row, from.Col).Pos()
		if start == end.Pos() {
			c.sel.Clear()
			return
		}
		c.sel.Set(c.buf, start, end.Pos())
	})
}

// Find selects the next match of f from the active cursor. Searching
// backward starts at the selection start so the current match is skipped.
func (e *Editor) Find(f *find.Finder, forward bool) (find.Match, ChangeSet, bool) {
	from := e.cursors.Active().Cursor.Pos()
	if sel := e.selection.Selection(); !forward && sel.IsActive() {
		from = sel.Start
	}
	m, ok := f.Next(e.buffer, from, forward, true)
	if !ok {
		return find.Match{}, ChangeSet{}, false
	}
	return m, e.Select(m.Start, m.End), true
}

// Replace substitutes matches with their expansion of template as one
// undoable edit. Matches must be in document order and must not overlap.
// The cursor ends after the last replacement.
func (e *Editor) Replace(f *find.Finder, matches []find.Match, template string) ChangeSet {
	if len(matches) == 0 {
		return ChangeSet{}
	}
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = f.Expand(e.buffer, m, template)
	}
	return e.withOp(true, func(c *opContext) {
		c.sel.Clear()
		delta := 0
		for i := 0; i < len(matches)-1; i++ {
			delta += len(texts[i]) - (c.offset(matches[i].End) - c.offset(matches[i].Start))
		}
		last := len(matches) - 1
		end := c.offset(matches[last].Start) + len(texts[last]) + delta
		for i := last; i >= 0; i-- {
			start := c.offset(matches[i].Start)
			c.Delete(start, c.offset(matches[i].End))
			c.Insert(start, texts[i])
		}
		row, col := c.buf.ByteToPos(end)
		c.collapseTo(cursor.New(c.buf, row, col))
	})
}
