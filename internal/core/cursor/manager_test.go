package cursor

import (
	"testing"

	"github.com/bethropolis/tidecore/internal/buffer"
)

func rows(m *Manager) []int {
	var out []int
	for _, e := range m.Cursors() {
		out = append(out, e.Cursor.Row)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIDsMonotonicAndNeverReused(t *testing.T) {
	b := buffer.FromString("a\nb\nc")
	m := NewManager()
	first := m.Active().ID
	id2 := m.AddCursor(New(b, 1, 0))
	m.RemoveCursor(id2)
	id3 := m.AddCursor(New(b, 2, 0))
	if !(first < id2 && id2 < id3) {
		t.Errorf("ids must increase: %d %d %d", first, id2, id3)
	}
}

func TestRemoveLastCursorIsNoop(t *testing.T) {
	m := NewManager()
	if m.RemoveCursor(m.Active().ID) {
		t.Error("removing the only cursor must be refused")
	}
	if m.Len() != 1 {
		t.Errorf("expected one cursor, got %d", m.Len())
	}
}

func TestRemoveActiveRetargetsToLast(t *testing.T) {
	b := buffer.FromString("a\nb\nc")
	m := NewManager()
	m.AddCursor(New(b, 2, 0))
	mid := m.AddCursor(New(b, 1, 0))
	m.RemoveCursor(mid)
	if got := m.Active().Cursor.Row; got != 2 {
		t.Errorf("expected active to move to last cursor (row 2), got row %d", got)
	}
}

func TestSortAndDedup(t *testing.T) {
	b := buffer.FromString("abc\nabc")
	m := NewManager()
	first := m.AddCursor(New(b, 1, 1))
	m.AddCursor(New(b, 0, 2))
	survivor := m.AddCursor(New(b, 1, 1))
	added := m.nextID
	if m.Len() != 3 {
		t.Fatalf("expected duplicate to merge, got %d cursors", m.Len())
	}
	got := m.Cursors()
	if got[0].Cursor.Pos().Col != 0 || got[1].Cursor.Col != 2 || got[2].Cursor.Row != 1 {
		t.Errorf("cursors not sorted: %+v", got)
	}
	if survivor != first || m.Active().ID == added {
		t.Errorf("expected the older cursor %d to stay active, got %d (new id %d)", first, m.Active().ID, added)
	}
	if m.Active().Cursor.Row != 1 || m.Active().Cursor.Col != 1 {
		t.Errorf("active should be the surviving cursor at 1:1, got %+v", m.Active())
	}
}

func TestUngroupedSortsBeforeGrouped(t *testing.T) {
	m := NewManager()
	m.entries = []Entry{
		{ID: 5, Cursor: Cursor{Row: 0, Col: 1}, Group: 3},
		{ID: 9, Cursor: Cursor{Row: 0, Col: 1}},
	}
	m.activeID = 5
	m.SortAndDedup()
	if m.Len() != 1 || m.entries[0].ID != 9 {
		t.Errorf("ungrouped cursor should win the tie, got %+v", m.entries)
	}
	if m.activeID != 9 {
		t.Errorf("active should follow the survivor, got %d", m.activeID)
	}
}

func TestAddBelowThenAboveShrinks(t *testing.T) {
	b := buffer.FromString("aaaa\nbbbb\ncccc\ndddd\neeee")
	m := NewManager()
	m.Reset(New(b, 1, 2))

	m.AddCursorBelow(b)
	if want := []int{1, 2}; !equalInts(rows(m), want) {
		t.Fatalf("after below: rows %v, want %v", rows(m), want)
	}
	m.AddCursorBelow(b)
	if want := []int{1, 2, 3}; !equalInts(rows(m), want) {
		t.Fatalf("after below x2: rows %v, want %v", rows(m), want)
	}
	m.AddCursorAbove(b)
	if want := []int{1, 2}; !equalInts(rows(m), want) {
		t.Fatalf("above should shrink: rows %v, want %v", rows(m), want)
	}
	m.AddCursorAbove(b)
	if want := []int{1}; !equalInts(rows(m), want) {
		t.Fatalf("above should shrink back to main: rows %v, want %v", rows(m), want)
	}
	m.AddCursorAbove(b)
	if want := []int{0, 1}; !equalInts(rows(m), want) {
		t.Fatalf("above should now grow: rows %v, want %v", rows(m), want)
	}
	for _, e := range m.Cursors() {
		if e.Cursor.Col != 2 {
			t.Errorf("grown cursors keep the column, got %+v", e)
		}
	}
}

func TestAddAboveStopsAtBufferStart(t *testing.T) {
	b := buffer.FromString("ab\ncd")
	m := NewManager()
	m.AddCursorAbove(b)
	if m.Len() != 1 {
		t.Errorf("no rows above row 0, got %d cursors", m.Len())
	}
}

func TestGroupsGrowIndependently(t *testing.T) {
	b := buffer.FromString("a\nb\nc\nd\ne\nf")
	m := NewManager()
	m.Reset(New(b, 0, 0))
	m.AddCursor(New(b, 3, 0))
	m.AddCursorBelow(b)
	if want := []int{0, 1, 3, 4}; !equalInts(rows(m), want) {
		t.Errorf("each group should grow by one: rows %v, want %v", rows(m), want)
	}
	groups := map[uint64]int{}
	for _, e := range m.Cursors() {
		if e.Group == 0 {
			t.Errorf("cursor %d should be grouped", e.ID)
		}
		groups[e.Group]++
	}
	if len(groups) != 2 {
		t.Errorf("expected two groups, got %v", groups)
	}
}

func TestGrowUsesStickyColumn(t *testing.T) {
	b := buffer.FromString("abcdef\nx\nabcdef")
	m := NewManager()
	m.Reset(New(b, 0, 4))
	m.AddCursorBelow(b)
	m.AddCursorBelow(b)
	got := m.Cursors()
	if got[1].Cursor.Col != 1 || got[2].Cursor.Col != 4 {
		t.Errorf("expected columns 4,1,4, got %+v", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	b := buffer.FromString("a\nb")
	m := NewManager()
	m.AddCursor(New(b, 1, 0))
	snap := m.Snapshot()
	m.Reset(New(b, 0, 1))
	m.Restore(snap)
	if !m.Snapshot().Equal(snap) {
		t.Errorf("restore should be verbatim: %+v vs %+v", m.Snapshot(), snap)
	}
	if id := m.AddCursor(New(b, 0, 1)); id <= snap.ActiveID {
		t.Errorf("ids must keep increasing after restore, got %d", id)
	}
}
