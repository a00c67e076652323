package selection

import (
	"testing"

	"github.com/bethropolis/tidecore/internal/buffer"
	"github.com/bethropolis/tidecore/internal/types"
)

func TestZeroWidthSelectionInactive(t *testing.T) {
	b := buffer.FromString("abc")
	m := NewManager()
	p := types.Position{Row: 0, Col: 1}
	m.Extend(b, p, p)
	if m.IsActive() {
		t.Error("zero-width selection must not be active")
	}
	if !m.Selection().Active {
		t.Error("active flag should still be set while anchored")
	}
}

func TestUpdateOrdersByOffset(t *testing.T) {
	b := buffer.FromString("abc\ndef")
	m := NewManager()
	anchor := types.Position{Row: 1, Col: 1}
	m.Extend(b, anchor, types.Position{Row: 0, Col: 2})
	sel := m.Selection()
	if sel.Start != (types.Position{Row: 0, Col: 2}) || sel.End != anchor {
		t.Errorf("cursor before anchor should become Start, got %+v", sel)
	}

	m.Extend(b, types.Position{}, types.Position{Row: 1, Col: 3})
	sel = m.Selection()
	if sel.Anchor != anchor {
		t.Errorf("extending must keep the original anchor, got %+v", sel.Anchor)
	}
	if sel.Start != anchor || sel.End != (types.Position{Row: 1, Col: 3}) {
		t.Errorf("cursor past anchor should become End, got %+v", sel)
	}
}

func TestClear(t *testing.T) {
	b := buffer.FromString("abc")
	m := NewManager()
	m.Set(b, types.Position{}, types.Position{Row: 0, Col: 3})
	if !m.IsActive() {
		t.Fatal("expected active selection")
	}
	m.Clear()
	if m.IsActive() || m.Selection().Active {
		t.Error("clear should drop the selection")
	}
}
