// Package width caches rendered line widths so a front end only measures
// lines whose content changed. The cache never measures anything itself.
package width

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidecore/internal/logger"
)

// Unmeasured marks a line whose width is unknown.
const Unmeasured = -1

// DefaultTabWidth is used when a non-positive tab width is given.
const DefaultTabWidth = 4

// DefaultMeasure returns the cell width of line, expanding tabs to the next
// multiple of tabWidth.
func DefaultMeasure(line string, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	col := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if gr.Str() == "\t" {
			col += tabWidth - col%tabWidth
			continue
		}
		col += gr.Width()
	}
	return col
}

// Manager is the per-line width cache.
type Manager struct {
	widths []int
	max    int
	maxRow int
}

// NewManager creates a cache for lineCount unmeasured lines.
func NewManager(lineCount int) *Manager {
	m := &Manager{}
	m.ClearAndRebuild(lineCount)
	return m
}

// Len returns the number of tracked lines.
func (m *Manager) Len() int {
	return len(m.widths)
}

// Max returns the widest measured line width, or 0.
func (m *Manager) Max() int {
	return m.max
}

// Width returns the cached width of row, or Unmeasured.
func (m *Manager) Width(row int) int {
	if row < 0 || row >= len(m.widths) {
		return Unmeasured
	}
	return m.widths[row]
}

// NeedsWidthMeasurement reports whether row has no cached width.
func (m *Manager) NeedsWidthMeasurement(row int) bool {
	return m.Width(row) == Unmeasured
}

// UpdateLineWidth records a measured width. It reports whether the
// maximum changed.
func (m *Manager) UpdateLineWidth(row, w int) bool {
	if row < 0 || row >= len(m.widths) || w < 0 {
		return false
	}
	m.widths[row] = w
	switch {
	case w > m.max:
		m.max, m.maxRow = w, row
		return true
	case row == m.maxRow && w < m.max:
		old := m.max
		m.recalcMax()
		return m.max != old
	}
	return false
}

// LinesNeedingMeasurement lists unmeasured rows in [first, last].
func (m *Manager) LinesNeedingMeasurement(first, last int) []int {
	first = max(first, 0)
	last = min(last, len(m.widths)-1)
	var rows []int
	for row := first; row <= last; row++ {
		if m.widths[row] == Unmeasured {
			rows = append(rows, row)
		}
	}
	return rows
}

// InvalidateRange marks rows [first, last] unmeasured.
func (m *Manager) InvalidateRange(first, last int) {
	first = max(first, 0)
	last = min(last, len(m.widths)-1)
	if first > last {
		return
	}
	hitMax := false
	for row := first; row <= last; row++ {
		m.widths[row] = Unmeasured
		if row == m.maxRow {
			hitMax = true
		}
	}
	if hitMax {
		m.recalcMax()
	}
}

// Sync resizes the cache to lineCount after an edit whose changed rows
// begin at editRow. Added rows are inserted unmeasured after editRow;
// removed rows are taken from just after it. editRow is invalidated.
func (m *Manager) Sync(lineCount, editRow int) {
	if lineCount < 1 {
		lineCount = 1
	}
	editRow = max(0, min(editRow, len(m.widths)-1))
	delta := lineCount - len(m.widths)
	at := editRow + 1

	switch {
	case delta > 0:
		grown := make([]int, 0, lineCount)
		grown = append(grown, m.widths[:at]...)
		for i := 0; i < delta; i++ {
			grown = append(grown, Unmeasured)
		}
		m.widths = append(grown, m.widths[at:]...)
		if m.maxRow >= at {
			m.maxRow += delta
		}
	case delta < 0:
		end := min(at-delta, len(m.widths))
		removedMax := m.maxRow >= at && m.maxRow < end
		m.widths = append(m.widths[:at], m.widths[end:]...)
		for len(m.widths) > lineCount {
			m.widths = m.widths[:len(m.widths)-1]
		}
		if removedMax || m.maxRow >= len(m.widths) {
			m.recalcMax()
		} else if m.maxRow >= end {
			m.maxRow += delta
		}
	}
	if delta != 0 {
		logger.DebugTagf("width", "synced to %d lines (delta %d at row %d)", lineCount, delta, editRow)
	}
	m.InvalidateRange(editRow, editRow)
}

// ClearAndRebuild discards all cached widths and tracks lineCount lines.
func (m *Manager) ClearAndRebuild(lineCount int) {
	if lineCount < 1 {
		lineCount = 1
	}
	m.widths = make([]int, lineCount)
	for i := range m.widths {
		m.widths[i] = Unmeasured
	}
	m.max, m.maxRow = 0, -1
}

func (m *Manager) recalcMax() {
	m.max, m.maxRow = 0, -1
	for row, w := range m.widths {
		if w > m.max {
			m.max, m.maxRow = w, row
		}
	}
}
