package core

import (
	"testing"

	"github.com/bethropolis/tidecore/internal/core/find"
	"github.com/bethropolis/tidecore/internal/types"
)

func TestFindSelectsMatches(t *testing.T) {
	e := newEditor("cat hat cat\ncat")
	f, err := find.Compile("cat")
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		forward bool
		start   types.Position
	}{
		{true, types.Position{Row: 0, Col: 0}},
		{true, types.Position{Row: 0, Col: 8}},
		{true, types.Position{Row: 1, Col: 0}},
		{true, types.Position{Row: 0, Col: 0}},
		{false, types.Position{Row: 1, Col: 0}},
		{false, types.Position{Row: 0, Col: 8}},
	}
	for i, s := range steps {
		m, cs, ok := e.Find(f, s.forward)
		if !ok || m.Start != s.start {
			t.Fatalf("step %d: expected match at %v, got %v (%v)", i, s.start, m.Start, ok)
		}
		if !cs.Mask.Has(ChangeCursor) && i > 0 {
			t.Errorf("step %d: expected cursor change, got %v", i, cs.Mask)
		}
		if got := e.SelectedText(); got != "cat" {
			t.Errorf("step %d: expected selection %q, got %q", i, "cat", got)
		}
		if got := e.ActiveCursor().Cursor.Pos(); got != m.End {
			t.Errorf("step %d: expected cursor at %v, got %v", i, m.End, got)
		}
	}

	if _, _, ok := e.Find(mustCompile(t, "dog"), true); ok {
		t.Error("expected no match for dog")
	}
}

func mustCompile(t *testing.T, term string) *find.Finder {
	t.Helper()
	f, err := find.Compile(term)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestReplaceIsOneUndoStep(t *testing.T) {
	const text = "cat hat cat\ncat"
	e := newEditor(text)
	e.MoveTo(0, 5, false)
	e.AddCursor(1, 1)
	f := mustCompile(t, "c(a)t")

	cs := e.Replace(f, f.All(e.GetBuffer()), "$1$1")
	if got := e.Text(); got != "aa hat aa\naa" {
		t.Fatalf("expected %q, got %q", "aa hat aa\naa", got)
	}
	if !cs.Mask.Has(ChangeBuffer) {
		t.Errorf("expected buffer change, got %v", cs.Mask)
	}
	if got := positions(e); len(got) != 1 || got[0] != (types.Position{Row: 1, Col: 2}) {
		t.Errorf("expected one cursor at 1:2, got %v", got)
	}

	e.Undo()
	if got := e.Text(); got != text {
		t.Errorf("expected undo to restore %q, got %q", text, got)
	}
	if cs := e.Replace(f, nil, "x"); !cs.Empty() {
		t.Errorf("expected empty ChangeSet for no matches, got %v", cs.Mask)
	}
}
