package width

import (
	"reflect"
	"testing"
)

func TestDefaultMeasure(t *testing.T) {
	tests := []struct {
		line string
		tab  int
		want int
	}{
		{"", 4, 0},
		{"abc", 4, 3},
		{"\tx", 4, 5},
		{"ab\tx", 4, 5},
		{"ab\tx", 0, 5},
		{"日本", 4, 4},
		{"é", 4, 1},
	}
	for _, tt := range tests {
		if got := DefaultMeasure(tt.line, tt.tab); got != tt.want {
			t.Errorf("DefaultMeasure(%q, %d) = %d, want %d", tt.line, tt.tab, got, tt.want)
		}
	}
}

func TestUpdateTracksMax(t *testing.T) {
	m := NewManager(3)
	if !m.NeedsWidthMeasurement(1) {
		t.Fatal("new lines should need measurement")
	}
	m.UpdateLineWidth(0, 5)
	m.UpdateLineWidth(1, 9)
	m.UpdateLineWidth(2, 7)
	if m.Max() != 9 {
		t.Fatalf("expected max 9, got %d", m.Max())
	}
	// Shrinking the widest line rescans.
	if !m.UpdateLineWidth(1, 2) {
		t.Error("expected max to change")
	}
	if m.Max() != 7 {
		t.Errorf("expected max 7 after shrink, got %d", m.Max())
	}
	// Shrinking a non-max line keeps the max.
	m.UpdateLineWidth(0, 1)
	if m.Max() != 7 {
		t.Errorf("expected max 7, got %d", m.Max())
	}
}

func TestSyncGrowAndShrink(t *testing.T) {
	m := NewManager(3)
	m.UpdateLineWidth(0, 3)
	m.UpdateLineWidth(1, 4)
	m.UpdateLineWidth(2, 10)

	m.Sync(5, 0)
	if m.Len() != 5 {
		t.Fatalf("expected 5 lines, got %d", m.Len())
	}
	want := []int{Unmeasured, Unmeasured, Unmeasured, 4, 10}
	if !reflect.DeepEqual(m.widths, want) {
		t.Errorf("expected %v, got %v", want, m.widths)
	}
	if m.Max() != 10 || m.maxRow != 4 {
		t.Errorf("expected max 10 at row 4, got %d at %d", m.Max(), m.maxRow)
	}

	m.Sync(3, 2)
	want = []int{Unmeasured, Unmeasured, Unmeasured}
	if !reflect.DeepEqual(m.widths, want) {
		t.Errorf("expected %v, got %v", want, m.widths)
	}
	if m.Max() != 0 {
		t.Errorf("removing the max line should rescan, got max %d", m.Max())
	}
}

func TestLinesNeedingMeasurement(t *testing.T) {
	m := NewManager(4)
	m.UpdateLineWidth(1, 2)
	got := m.LinesNeedingMeasurement(0, 10)
	if !reflect.DeepEqual(got, []int{0, 2, 3}) {
		t.Errorf("expected [0 2 3], got %v", got)
	}
	m.ClearAndRebuild(2)
	if got := m.LinesNeedingMeasurement(0, 1); len(got) != 2 {
		t.Errorf("expected all lines unmeasured after rebuild, got %v", got)
	}
}
