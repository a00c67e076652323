package tab

import (
	"reflect"
	"testing"

	"github.com/bethropolis/tidecore/internal/types"
)

func TestNavigateHistoryLiveTabs(t *testing.T) {
	m, _ := newTestManager(Options{HistoryNavigation: true})
	tabs := openAll(t, m, "/a", "/b", "/c")

	steps := []struct {
		delta int
		moved bool
		want  types.TabID
	}{
		{-1, true, tabs[1]},
		{-1, true, tabs[0]},
		{-1, false, tabs[0]},
		{2, true, tabs[2]},
		{1, false, tabs[2]},
	}
	for i, s := range steps {
		moved, err := m.NavigateHistory(s.delta)
		if err != nil {
			t.Fatal(err)
		}
		if moved != s.moved || m.ActiveID() != s.want {
			t.Errorf("step %d: expected %v/%s, got %v/%s", i, s.moved, s.want, moved, m.ActiveID())
		}
	}
	// Navigation does not grow the log.
	if got := m.History().Entries(); !reflect.DeepEqual(got, tabs) {
		t.Errorf("expected history %v, got %v", tabs, got)
	}
}

func TestMoveActiveTabByUsesHistory(t *testing.T) {
	m, _ := newTestManager(Options{HistoryNavigation: true})
	tabs := openAll(t, m, "/a", "/b", "/c")
	m.Activate(tabs[0])
	if err := m.MoveActiveTabBy(-1); err != nil {
		t.Fatal(err)
	}
	if m.ActiveID() != tabs[2] {
		t.Errorf("expected previous activation %s, got %s", tabs[2], m.ActiveID())
	}
}

func TestNavigateReopensClosedTab(t *testing.T) {
	m, _ := newTestManager(Options{HistoryNavigation: true, ReopenClosed: true})
	tabs := openAll(t, m, "/a", "/b", "/c")

	m.Activate(tabs[1])
	v := m.ActiveView()
	v.Editor().MoveTo(2, 3, false)
	v.Editor().MoveRight(true)
	scroll := types.ScrollOffsets{Row: 1, Col: 2}
	m.SetScroll(tabs[1], scroll)
	m.Activate(tabs[2])
	if _, err := m.Close(CloseSingle, tabs[1], false); err != nil {
		t.Fatal(err)
	}
	if m.Closed().Len() != 1 {
		t.Fatalf("expected closed info kept, got %d", m.Closed().Len())
	}

	moved, err := m.NavigateHistory(-1)
	if err != nil || !moved {
		t.Fatalf("expected navigation to succeed, got %v %v", moved, err)
	}
	reopened := m.ActiveID()
	if reopened == tabs[1] || reopened == 0 {
		t.Fatalf("expected a new tab id, got %s", reopened)
	}
	info, _ := m.Info(reopened)
	if info.Path != "/b" || info.Scroll != scroll {
		t.Errorf("expected /b at %+v, got %+v", scroll, info)
	}
	ed := m.ActiveView().Editor()
	if got := ed.ActiveCursor().Cursor.Pos(); got != (types.Position{Row: 2, Col: 4}) {
		t.Errorf("expected cursor restored at (2,4), got %v", got)
	}
	if ed.SelectedText() != "e" {
		t.Errorf("expected selection restored, got %q", ed.SelectedText())
	}
	if m.History().References(tabs[1]) || !m.History().References(reopened) {
		t.Errorf("expected history remapped, got %v", m.History().Entries())
	}
	if m.Closed().Len() != 0 {
		t.Error("expected closed info consumed")
	}
}

func TestNavigateDropsClosedTabWithoutReopen(t *testing.T) {
	m, _ := newTestManager(Options{HistoryNavigation: true})
	tabs := openAll(t, m, "/a", "/b", "/c")
	m.Close(CloseSingle, tabs[1], false)

	moved, err := m.NavigateHistory(-1)
	if err != nil || !moved {
		t.Fatalf("expected navigation to continue past the closed tab, got %v %v", moved, err)
	}
	if m.ActiveID() != tabs[0] {
		t.Errorf("expected %s, got %s", tabs[0], m.ActiveID())
	}
	if got := m.History().Entries(); !reflect.DeepEqual(got, []types.TabID{tabs[0], tabs[2]}) {
		t.Errorf("expected unresolvable entry dropped, got %v", got)
	}
	if m.Len() != 2 {
		t.Errorf("expected no tab reopened, got %d tabs", m.Len())
	}
}

func TestNavigateRemapsToTabWithSamePath(t *testing.T) {
	m, _ := newTestManager(Options{HistoryNavigation: true, ReopenClosed: true})
	tabs := openAll(t, m, "/a", "/b", "/c")
	m.Close(CloseSingle, tabs[1], false)
	again, _ := m.OpenFile("/b")

	m.NavigateHistory(-1)
	if m.ActiveID() != tabs[2] {
		t.Fatalf("expected %s, got %s", tabs[2], m.ActiveID())
	}
	moved, _ := m.NavigateHistory(-1)
	if !moved || m.ActiveID() != again {
		t.Fatalf("expected the live /b tab %s, got %s", again, m.ActiveID())
	}
	want := []types.TabID{tabs[0], again, tabs[2], again}
	if got := m.History().Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if m.Len() != 3 || m.Closed().Len() != 0 {
		t.Errorf("expected no reopen, got %d tabs and %d closed", m.Len(), m.Closed().Len())
	}
}

func TestNavigateUntitledIsUnresolvable(t *testing.T) {
	m, _ := newTestManager(Options{ReopenClosed: true})
	a := m.NewTab()
	b := m.NewTab()
	m.Activate(a)
	m.Close(CloseSingle, b, false)

	if res := m.Resolve(b); res.Outcome != Unresolvable {
		t.Errorf("expected unresolvable, got %v", res.Outcome)
	}
	moved, _ := m.NavigateHistory(-1)
	if moved || m.ActiveID() != a {
		t.Errorf("expected active tab unchanged, got %v %s", moved, m.ActiveID())
	}
}

func TestHistoryLimitPrunesClosedInfo(t *testing.T) {
	m, _ := newTestManager(Options{HistoryLimit: 2, ReopenClosed: true})
	tabs := openAll(t, m, "/a", "/b")
	m.Close(CloseSingle, tabs[0], false)
	if m.Closed().Len() != 1 {
		t.Fatalf("expected closed info, got %d", m.Closed().Len())
	}
	openAll(t, m, "/c")
	if m.Closed().Len() != 0 {
		t.Errorf("expected info pruned once history forgot the tab, got %d", m.Closed().Len())
	}
}
