package cursor

import "github.com/bethropolis/tidecore/internal/logger"

// AddCursorAbove grows or shrinks every column group by one row upwards.
func (m *Manager) AddCursorAbove(t Text) bool {
	return m.growOrShrink(t, -1)
}

// AddCursorBelow grows or shrinks every column group by one row downwards.
func (m *Manager) AddCursorBelow(t Text) bool {
	return m.growOrShrink(t, 1)
}

// ensureAllInGroups tags every ungrouped cursor with a fresh group.
func (m *Manager) ensureAllInGroups() {
	for i := range m.entries {
		if m.entries[i].Group == 0 {
			m.entries[i].Group = m.newGroup()
		}
	}
}

// groupOrder lists distinct group ids in cursor order.
func (m *Manager) groupOrder() []uint64 {
	seen := make(map[uint64]bool)
	var order []uint64
	for _, e := range m.entries {
		if !seen[e.Group] {
			seen[e.Group] = true
			order = append(order, e.Group)
		}
	}
	return order
}

// growOrShrink applies one add-above (dir -1) or add-below (dir +1) step.
//
// A group whose cursors extend contiguously from its main cursor (lowest id)
// on the side opposite dir loses the farthest cursor of that side; other
// groups gain one cursor per member, one row further in dir.
func (m *Manager) growOrShrink(t Text, dir int) bool {
	m.ensureAllInGroups()
	changed := false
	lastRow := t.LineCount() - 1

	for _, g := range m.groupOrder() {
		var members []Entry
		for _, e := range m.entries {
			if e.Group == g {
				members = append(members, e)
			}
		}
		main := members[0]
		for _, e := range members[1:] {
			if e.ID < main.ID {
				main = e
			}
		}

		if far, ok := shrinkTarget(members, main, dir); ok {
			m.removeEntry(far.ID, main.ID)
			logger.DebugTagf("cursor", "group %d shrank: removed cursor %d at row %d", g, far.ID, far.Cursor.Row)
			changed = true
			continue
		}

		for _, e := range members {
			row := e.Cursor.Row + dir
			if row < 0 || row > lastRow {
				continue
			}
			c := Cursor{Row: row, Col: columnFor(t, row, e.Cursor.StickyCol), StickyCol: e.Cursor.StickyCol}
			id := m.newID()
			m.entries = append(m.entries, Entry{ID: id, Cursor: c, Group: g})
			m.activeID = id
			changed = true
		}
	}

	m.SortAndDedup()
	return changed
}

// shrinkTarget finds the farthest member on the side opposite dir, provided
// the rows between main and it are all occupied by the group.
func shrinkTarget(members []Entry, main Entry, dir int) (Entry, bool) {
	rows := make(map[int]bool)
	var far Entry
	found := false
	for _, e := range members {
		delta := (e.Cursor.Row - main.Cursor.Row) * dir
		if delta >= 0 {
			continue
		}
		rows[e.Cursor.Row] = true
		if !found || abs(e.Cursor.Row-main.Cursor.Row) > abs(far.Cursor.Row-main.Cursor.Row) ||
			(e.Cursor.Row == far.Cursor.Row && e.ID > far.ID) {
			far = e
			found = true
		}
	}
	if !found {
		return Entry{}, false
	}
	for r := main.Cursor.Row - dir; r != far.Cursor.Row; r -= dir {
		if !rows[r] {
			return Entry{}, false
		}
	}
	return far, true
}

// removeEntry drops id, moving the active cursor to fallback if needed.
func (m *Manager) removeEntry(id, fallback uint64) {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	if m.activeID == id {
		m.activeID = fallback
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
