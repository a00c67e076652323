// Package selection holds the anchor-relative selection of an editor.
package selection

import (
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
)

// Offsets converts positions to byte offsets for ordering.
type Offsets interface {
	PosToByte(row, col int) int
}

// Selection is a range derived from an anchor and a live cursor. Start and
// End are ordered by byte offset and always recomputed from the anchor.
type Selection struct {
	Start  types.Position
	End    types.Position
	Anchor types.Position
	Active bool
}

// IsActive reports whether the selection covers at least one byte.
func (s Selection) IsActive() bool {
	return s.Active && s.Start != s.End
}

// Begin anchors a new selection at anchor.
func (s *Selection) Begin(anchor types.Position) {
	s.Anchor = anchor
	s.Start = anchor
	s.End = anchor
	s.Active = true
}

// Update recomputes Start/End from the anchor and the cursor position:
// whichever side the cursor has moved past becomes End.
func (s *Selection) Update(t Offsets, cursor types.Position) {
	if t.PosToByte(cursor.Row, cursor.Col) < t.PosToByte(s.Anchor.Row, s.Anchor.Col) {
		s.Start, s.End = cursor, s.Anchor
	} else {
		s.Start, s.End = s.Anchor, cursor
	}
}

// Manager owns the single active selection.
type Manager struct {
	sel Selection
}

// NewManager creates a manager with no selection.
func NewManager() *Manager {
	return &Manager{}
}

// Selection returns the current selection value.
func (m *Manager) Selection() Selection {
	return m.sel
}

// IsActive reports whether a non-empty selection exists.
func (m *Manager) IsActive() bool {
	return m.sel.IsActive()
}

// Extend starts a selection at from when none is in progress, then
// stretches it to the cursor at to.
func (m *Manager) Extend(t Offsets, from, to types.Position) {
	if !m.sel.Active {
		m.sel.Begin(from)
		logger.DebugTagf("selection", "started at %v", from)
	}
	m.sel.Update(t, to)
}

// Set selects from anchor to cursor in one step.
func (m *Manager) Set(t Offsets, anchor, cursor types.Position) {
	m.sel.Begin(anchor)
	m.sel.Update(t, cursor)
}

// Clear drops the selection.
func (m *Manager) Clear() {
	if m.sel.Active {
		logger.DebugTagf("selection", "cleared")
	}
	m.sel = Selection{}
}

// Restore replaces the selection verbatim.
func (m *Manager) Restore(s Selection) {
	m.sel = s
}
