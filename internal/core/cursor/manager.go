package cursor

import "sort"

// Entry is a live cursor. IDs are monotonic and never reused; they break
// ties when sorting and deduplicating (lower id wins). Group is the column
// group tag from add-cursor-above/below; 0 means ungrouped.
type Entry struct {
	ID     uint64
	Cursor Cursor
	Group  uint64
}

// Snapshot is a restorable copy of the cursor list.
type Snapshot struct {
	Entries  []Entry
	ActiveID uint64
}

// Equal reports whether two snapshots hold the same cursors and active id.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.ActiveID != o.ActiveID || len(s.Entries) != len(o.Entries) {
		return false
	}
	for i := range s.Entries {
		if s.Entries[i] != o.Entries[i] {
			return false
		}
	}
	return true
}

// Manager owns the set of live cursors. At least one cursor always exists.
type Manager struct {
	entries   []Entry
	activeID  uint64
	nextID    uint64
	nextGroup uint64
}

// NewManager creates a manager with one cursor at the document start.
func NewManager() *Manager {
	m := &Manager{}
	m.Reset(Cursor{})
	return m
}

func (m *Manager) newID() uint64 {
	m.nextID++
	return m.nextID
}

func (m *Manager) newGroup() uint64 {
	m.nextGroup++
	return m.nextGroup
}

// Len returns the number of cursors.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Cursors returns a copy of the cursor list in sorted order.
func (m *Manager) Cursors() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// ActiveIndex returns the index of the active cursor.
func (m *Manager) ActiveIndex() int {
	for i, e := range m.entries {
		if e.ID == m.activeID {
			return i
		}
	}
	return len(m.entries) - 1
}

// Active returns the active cursor entry.
func (m *Manager) Active() Entry {
	return m.entries[m.ActiveIndex()]
}

// SetActive makes the cursor with id active.
func (m *Manager) SetActive(id uint64) bool {
	for _, e := range m.entries {
		if e.ID == id {
			m.activeID = id
			return true
		}
	}
	return false
}

// Set replaces the cursor at index i.
func (m *Manager) Set(i int, c Cursor) {
	if i >= 0 && i < len(m.entries) {
		m.entries[i].Cursor = c
	}
}

// Map calls fn with a pointer to every entry in order.
func (m *Manager) Map(fn func(e *Entry)) {
	for i := range m.entries {
		fn(&m.entries[i])
	}
}

// Reset replaces every cursor with a single ungrouped cursor.
func (m *Manager) Reset(c Cursor) {
	id := m.newID()
	m.entries = []Entry{{ID: id, Cursor: c}}
	m.activeID = id
}

// AddCursor adds an independent cursor and makes it active. The list is
// re-sorted and deduplicated, so the new cursor may merge into an existing
// one at the same position.
func (m *Manager) AddCursor(c Cursor) uint64 {
	id := m.newID()
	m.entries = append(m.entries, Entry{ID: id, Cursor: c})
	m.activeID = id
	m.SortAndDedup()
	return m.activeID
}

// RemoveCursor removes the cursor with id. It is a no-op when only one
// cursor remains. Removing the active cursor makes the last cursor active.
func (m *Manager) RemoveCursor(id uint64) bool {
	if len(m.entries) <= 1 {
		return false
	}
	for i, e := range m.entries {
		if e.ID != id {
			continue
		}
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
		if m.activeID == id {
			m.activeID = m.entries[len(m.entries)-1].ID
		}
		return true
	}
	return false
}

// Collapse keeps only the active cursor.
func (m *Manager) Collapse() {
	active := m.Active()
	active.Group = 0
	m.entries = []Entry{active}
}

// Snapshot captures the cursor list.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{Entries: m.Cursors(), ActiveID: m.activeID}
}

// Restore replaces the cursor list verbatim. Ids in the snapshot are kept;
// the id counters never move backwards.
func (m *Manager) Restore(s Snapshot) {
	if len(s.Entries) == 0 {
		m.Reset(Cursor{})
		return
	}
	m.entries = make([]Entry, len(s.Entries))
	copy(m.entries, s.Entries)
	m.activeID = s.ActiveID
	for _, e := range s.Entries {
		m.nextID = max(m.nextID, e.ID)
		m.nextGroup = max(m.nextGroup, e.Group)
	}
	if !m.SetActive(s.ActiveID) {
		m.activeID = m.entries[len(m.entries)-1].ID
	}
}

// SortAndDedup orders cursors by (row, col), ungrouped before grouped at
// the same position, then by id, and drops exact position duplicates.
func (m *Manager) SortAndDedup() {
	sort.SliceStable(m.entries, func(i, j int) bool {
		a, b := m.entries[i], m.entries[j]
		if a.Cursor.Row != b.Cursor.Row {
			return a.Cursor.Row < b.Cursor.Row
		}
		if a.Cursor.Col != b.Cursor.Col {
			return a.Cursor.Col < b.Cursor.Col
		}
		if ag, bg := a.Group != 0, b.Group != 0; ag != bg {
			return !ag
		}
		return a.ID < b.ID
	})

	out := m.entries[:0]
	for _, e := range m.entries {
		if n := len(out); n > 0 && out[n-1].Cursor.Row == e.Cursor.Row && out[n-1].Cursor.Col == e.Cursor.Col {
			if e.ID == m.activeID {
				m.activeID = out[n-1].ID
			}
			continue
		}
		out = append(out, e)
	}
	m.entries = out
}
