// Package cursor implements cursor positions and the multi-cursor manager.
package cursor

import (
	"github.com/bethropolis/tidecore/internal/types"
	"github.com/bethropolis/tidecore/internal/utils"
)

// Text is the part of a buffer cursors need to clamp and move.
type Text interface {
	LineCount() int
	LineLenWithoutNewline(row int) int
	Line(row int) string
}

// Cursor is a clamped (row, column) position. StickyCol is the desired
// column for vertical motion; Col is always min(StickyCol, line length)
// after a vertical move while StickyCol stays untouched.
type Cursor struct {
	Row       int
	Col       int
	StickyCol int
}

// New returns a cursor at (row, col) clamped against t.
func New(t Text, row, col int) Cursor {
	c := Cursor{Row: row, Col: col}
	c.clamp(t)
	c.StickyCol = c.Col
	return c
}

// Pos returns the cursor position.
func (c Cursor) Pos() types.Position {
	return types.Position{Row: c.Row, Col: c.Col}
}

func clampRow(t Text, row int) int {
	if row < 0 {
		return 0
	}
	if last := t.LineCount() - 1; row > last {
		return last
	}
	return row
}

// columnFor clamps col on row and snaps it to a rune start.
func columnFor(t Text, row, col int) int {
	if col <= 0 {
		return 0
	}
	if n := t.LineLenWithoutNewline(row); col >= n {
		return n
	}
	return utils.SnapToRuneStart(t.Line(row), col)
}

// clamp re-validates row then column against the current text.
func (c *Cursor) clamp(t Text) {
	c.Row = clampRow(t, c.Row)
	c.Col = columnFor(t, c.Row, c.Col)
}

// Clamp re-validates the cursor, leaving StickyCol alone.
func (c *Cursor) Clamp(t Text) {
	c.clamp(t)
}

// Left moves one grapheme left, wrapping to the end of the previous line.
func (c *Cursor) Left(t Text) {
	c.clamp(t)
	switch {
	case c.Col > 0:
		c.Col = utils.PrevGraphemeBoundary(t.Line(c.Row), c.Col)
	case c.Row > 0:
		c.Row--
		c.Col = t.LineLenWithoutNewline(c.Row)
	}
	c.StickyCol = c.Col
}

// Right moves one grapheme right, wrapping to the start of the next line.
func (c *Cursor) Right(t Text) {
	c.clamp(t)
	switch {
	case c.Col < t.LineLenWithoutNewline(c.Row):
		c.Col = utils.NextGraphemeBoundary(t.Line(c.Row), c.Col)
	case c.Row < t.LineCount()-1:
		c.Row++
		c.Col = 0
	}
	c.StickyCol = c.Col
}

// Up moves one line up keeping the sticky column.
func (c *Cursor) Up(t Text) {
	c.Row = clampRow(t, c.Row)
	if c.Row > 0 {
		c.Row--
	}
	c.Col = columnFor(t, c.Row, c.StickyCol)
}

// Down moves one line down keeping the sticky column.
func (c *Cursor) Down(t Text) {
	c.Row = clampRow(t, c.Row)
	if c.Row < t.LineCount()-1 {
		c.Row++
	}
	c.Col = columnFor(t, c.Row, c.StickyCol)
}

// ToLineStart moves to column 0.
func (c *Cursor) ToLineStart(t Text) {
	c.Row = clampRow(t, c.Row)
	c.Col, c.StickyCol = 0, 0
}

// ToLineEnd moves past the last character of the line.
func (c *Cursor) ToLineEnd(t Text) {
	c.Row = clampRow(t, c.Row)
	c.Col = t.LineLenWithoutNewline(c.Row)
	c.StickyCol = c.Col
}

// ToStart moves to the start of the document.
func (c *Cursor) ToStart(t Text) {
	c.Row, c.Col, c.StickyCol = 0, 0, 0
}

// ToEnd moves to the end of the document.
func (c *Cursor) ToEnd(t Text) {
	c.Row = t.LineCount() - 1
	c.Col = t.LineLenWithoutNewline(c.Row)
	c.StickyCol = c.Col
}

// MoveTo jumps to (row, col), clamped.
func (c *Cursor) MoveTo(t Text, row, col int) {
	c.Row, c.Col = row, col
	c.clamp(t)
	c.StickyCol = c.Col
}
