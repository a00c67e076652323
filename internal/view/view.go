// Package view binds editors to documents. Each view has its own editor
// and viewport; several views may share one document's buffer.
package view

import (
	"github.com/bethropolis/tidecore/internal/core"
	"github.com/bethropolis/tidecore/internal/core/width"
	"github.com/bethropolis/tidecore/internal/types"
)

// View is one editor over a document.
type View struct {
	id       types.ViewID
	docID    types.DocumentID
	editor   *core.Editor
	viewport Viewport
	tabWidth int
}

func (v *View) ID() types.ViewID             { return v.id }
func (v *View) DocumentID() types.DocumentID { return v.docID }
func (v *View) Editor() *core.Editor         { return v.editor }
func (v *View) Viewport() Viewport           { return v.viewport }

// SetSize resizes the viewport and keeps the cursor visible.
func (v *View) SetSize(w, h int) {
	v.viewport.Width, v.viewport.Height = w, h
	v.EnsureCursorVisible()
}

// Scroll returns the current scroll offsets.
func (v *View) Scroll() types.ScrollOffsets {
	return v.viewport.Offsets()
}

// SetScroll moves the viewport without moving the cursor.
func (v *View) SetScroll(s types.ScrollOffsets) {
	v.viewport.FirstRow = max(s.Row, 0)
	v.viewport.FirstCol = max(s.Col, 0)
}

// EnsureCursorVisible scrolls to the active cursor and reports whether the
// viewport moved.
func (v *View) EnsureCursorVisible() bool {
	c := v.editor.ActiveCursor().Cursor
	line := v.editor.GetBuffer().Line(c.Row)
	col := width.DefaultMeasure(line[:min(c.Col, len(line))], v.tabWidth)
	return v.viewport.EnsureVisible(c.Row, col)
}

// Apply follows up on an editor ChangeSet, scrolling when it asks for it.
func (v *View) Apply(cs core.ChangeSet) core.ChangeSet {
	if cs.Mask.Has(core.ChangeScroll) && !v.EnsureCursorVisible() {
		cs.Mask &^= core.ChangeScroll
	}
	return cs
}
