package tab

import (
	"errors"
	"io/fs"
	"path"
	"reflect"
	"testing"

	"github.com/bethropolis/tidecore/internal/document"
	"github.com/bethropolis/tidecore/internal/types"
	"github.com/bethropolis/tidecore/internal/view"
)

type memFS map[string]string

func (m memFS) Read(p string) (string, error) {
	text, ok := m[p]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return text, nil
}

func (m memFS) Write(p, text string) error {
	m[p] = text
	return nil
}

func (m memFS) Canonicalize(p string) (string, error) {
	return path.Clean("/" + p), nil
}

func newTestManager(opts Options) (*Manager, *document.Manager) {
	files := memFS{"/a": "alpha\nbeta", "/b": "one\ntwo\nthree", "/c": "c", "/d": "d"}
	docs := document.NewManager(files, nil)
	return NewManager(docs, view.NewManager(view.Options{}), opts, nil), docs
}

func ids(m *Manager) []types.TabID {
	var out []types.TabID
	for _, t := range m.Tabs() {
		out = append(out, t.ID)
	}
	return out
}

func openAll(t *testing.T, m *Manager, paths ...string) []types.TabID {
	t.Helper()
	var out []types.TabID
	for _, p := range paths {
		id, err := m.OpenFile(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		out = append(out, id)
	}
	return out
}

func TestPinPreservesActiveIdentity(t *testing.T) {
	m, _ := newTestManager(Options{})
	a, b, c := m.NewTab(), m.NewTab(), m.NewTab()
	if m.ActiveID() != c {
		t.Fatalf("expected C active")
	}
	if err := m.Pin(c); err != nil {
		t.Fatal(err)
	}
	if got := ids(m); !reflect.DeepEqual(got, []types.TabID{c, a, b}) {
		t.Errorf("expected [C A B], got %v", got)
	}
	if m.ActiveID() != c {
		t.Errorf("expected C to stay active, got %s", m.ActiveID())
	}
	if !m.Tabs()[0].Pinned || m.Tabs()[0].Title != "Untitled-3" {
		t.Errorf("unexpected first tab %+v", m.Tabs()[0])
	}
}

func TestUnpinLandsAfterPinned(t *testing.T) {
	m, _ := newTestManager(Options{})
	a, b, c := m.NewTab(), m.NewTab(), m.NewTab()
	m.Pin(c)
	m.Pin(b)
	if got := ids(m); !reflect.DeepEqual(got, []types.TabID{c, b, a}) {
		t.Fatalf("expected [C B A], got %v", got)
	}
	m.Unpin(c)
	if got := ids(m); !reflect.DeepEqual(got, []types.TabID{b, c, a}) {
		t.Errorf("expected [B C A], got %v", got)
	}
}

func TestCloseCandidates(t *testing.T) {
	m, _ := newTestManager(Options{})
	t1, t2, t3, t4 := m.NewTab(), m.NewTab(), m.NewTab(), m.NewTab()

	tests := []struct {
		kind CloseKind
		want []types.TabID
	}{
		{CloseSingle, []types.TabID{t2}},
		{CloseOthers, []types.TabID{t1, t3, t4}},
		{CloseLeft, []types.TabID{t1}},
		{CloseRight, []types.TabID{t3, t4}},
		{CloseAll, []types.TabID{t1, t2, t3, t4}},
	}
	for _, tt := range tests {
		got, err := m.CloseCandidates(tt.kind, t2)
		if err != nil {
			t.Fatalf("%v: %v", tt.kind, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v: expected %v, got %v", tt.kind, tt.want, got)
		}
	}

	// Pinned tabs are never candidates of the group variants.
	m.Pin(t4)
	m.Pin(t1)
	for kind, want := range map[CloseKind][]types.TabID{
		CloseOthers: {t3},
		CloseLeft:   nil,
		CloseRight:  {t3},
		CloseAll:    {t2, t3},
	} {
		got, _ := m.CloseCandidates(kind, t2)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v with pinned: expected %v, got %v", kind, want, got)
		}
	}

	if _, err := m.CloseCandidates(CloseOthers, 0); !errors.Is(err, ErrNoID) {
		t.Errorf("expected ErrNoID, got %v", err)
	}
	if _, err := m.CloseCandidates(CloseOthers, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClosePinnedSingle(t *testing.T) {
	m, _ := newTestManager(Options{})
	a := m.NewTab()
	m.NewTab()
	m.Pin(a)
	if _, err := m.Close(CloseSingle, a, false); !errors.Is(err, ErrPinned) {
		t.Fatalf("expected ErrPinned, got %v", err)
	}
	closed, err := m.Close(CloseSingle, a, true)
	if err != nil || len(closed) != 1 || m.Len() != 1 {
		t.Errorf("expected pinned tab closed, got %v %v", closed, err)
	}
}

func TestCloseClean(t *testing.T) {
	m, _ := newTestManager(Options{})
	tabs := openAll(t, m, "/a", "/b", "/c")
	v, _ := m.views.Get(m.Tabs()[1].ViewID)
	v.Editor().InsertText("dirty ")

	closed, err := m.Close(CloseClean, tabs[0], false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(closed, []types.TabID{tabs[0], tabs[2]}) {
		t.Errorf("expected clean tabs closed, got %v", closed)
	}
	info := m.Tabs()
	if len(info) != 1 || !info[0].Modified || info[0].Path != "/b" {
		t.Errorf("expected only modified /b left, got %+v", info)
	}
	if m.ActiveID() != tabs[1] {
		t.Errorf("expected /b active, got %s", m.ActiveID())
	}
}

func TestCloseActivatesMostRecentHistory(t *testing.T) {
	m, _ := newTestManager(Options{})
	t1, t2 := m.NewTab(), m.NewTab()
	m.NewTab()
	m.NewTab()
	m.Activate(t1)
	m.Activate(t2)
	if _, err := m.Close(CloseSingle, t2, false); err != nil {
		t.Fatal(err)
	}
	if m.ActiveID() != t1 {
		t.Errorf("expected most recent history entry t1, got %s", m.ActiveID())
	}
}

func TestCloseFallsBackToNeighbours(t *testing.T) {
	m, _ := newTestManager(Options{HistoryLimit: 1})
	t1, t2, t3 := m.NewTab(), m.NewTab(), m.NewTab()
	m.Activate(t2)
	m.Close(CloseSingle, t2, false)
	if m.ActiveID() != t3 {
		t.Fatalf("expected right neighbour t3, got %s", m.ActiveID())
	}
	m.Close(CloseSingle, t3, false)
	if m.ActiveID() != t1 {
		t.Errorf("expected left neighbour t1, got %s", m.ActiveID())
	}
	m.Close(CloseSingle, t1, false)
	if m.ActiveID() != 0 || m.Active() != nil {
		t.Error("expected no active tab once all are closed")
	}
}

func TestCloseReleasesDocument(t *testing.T) {
	m, docs := newTestManager(Options{})
	id := openAll(t, m, "/a")[0]
	m.Close(CloseSingle, id, false)
	if len(docs.Documents()) != 0 {
		t.Errorf("expected document closed with its last view, got %v", docs.Documents())
	}
}

func TestOpenFileReusesTab(t *testing.T) {
	m, _ := newTestManager(Options{})
	first := openAll(t, m, "/a", "/b")
	again, err := m.OpenFile("/x/../a")
	if err != nil {
		t.Fatal(err)
	}
	if again != first[0] || m.Len() != 2 || m.ActiveID() != first[0] {
		t.Errorf("expected existing tab reused and activated, got %s of %v", again, ids(m))
	}
}

func TestMove(t *testing.T) {
	m, _ := newTestManager(Options{})
	a, b, c := m.NewTab(), m.NewTab(), m.NewTab()
	if err := m.Move(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := ids(m); !reflect.DeepEqual(got, []types.TabID{b, c, a}) {
		t.Errorf("expected [B C A], got %v", got)
	}
	if err := m.Move(3, 0); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("expected ErrInvalidMove, got %v", err)
	}
	m.Pin(a)
	if err := m.Move(0, 2); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("pinned tab must not move past unpinned tabs, got %v", err)
	}
	if err := m.Move(2, 0); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("unpinned tab must not move before pinned tabs, got %v", err)
	}
}

func TestMoveActiveTabByWraps(t *testing.T) {
	m, _ := newTestManager(Options{})
	tabs := []types.TabID{m.NewTab(), m.NewTab(), m.NewTab()}

	steps := []struct {
		delta int
		want  types.TabID
	}{
		{1, tabs[0]},
		{-1, tabs[2]},
		{-4, tabs[1]},
		{7, tabs[2]},
		{3, tabs[2]},
	}
	for _, s := range steps {
		if err := m.MoveActiveTabBy(s.delta); err != nil {
			t.Fatal(err)
		}
		if m.ActiveID() != s.want {
			t.Errorf("delta %d: expected %s, got %s", s.delta, s.want, m.ActiveID())
		}
	}
}

func TestSetScrollAndIdentifierErrors(t *testing.T) {
	m, _ := newTestManager(Options{})
	id := m.NewTab()
	want := types.ScrollOffsets{Row: 4, Col: 2}
	if err := m.SetScroll(id, want); err != nil {
		t.Fatal(err)
	}
	if info, _ := m.Info(id); info.Scroll != want {
		t.Errorf("expected scroll %+v, got %+v", want, info.Scroll)
	}
	if err := m.Activate(0); !errors.Is(err, ErrNoID) {
		t.Errorf("expected ErrNoID, got %v", err)
	}
	if err := m.Pin(77); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParseCloseKind(t *testing.T) {
	k, err := ParseCloseKind("others")
	if err != nil || k != CloseOthers {
		t.Errorf("expected CloseOthers, got %v %v", k, err)
	}
	if _, err := ParseCloseKind("bogus"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
