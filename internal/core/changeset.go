package core

// Mask is a set of Change bits.
type Mask uint8

const (
	ChangeBuffer Mask = 1 << iota
	ChangeCursor
	ChangeSelection
	ChangeLineCount
	ChangeWidths
	ChangeScroll
)

// Has reports whether every bit in bits is set.
func (m Mask) Has(bits Mask) bool {
	return m&bits == bits
}

func (m Mask) String() string {
	names := []string{"buffer", "cursor", "selection", "lines", "widths", "scroll"}
	out := ""
	for i, name := range names {
		if m&(1<<i) == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	if out == "" {
		return "none"
	}
	return out
}

// ChangeSet describes what an editor operation changed, so a front end
// can redraw only what is needed. Dirty rows are in post-operation
// coordinates and only meaningful when HasDirtyRows is true.
type ChangeSet struct {
	Mask            Mask
	LineCountBefore int
	LineCountAfter  int
	DirtyFirstRow   int
	DirtyLastRow    int
	HasDirtyRows    bool
}

// Empty reports whether nothing changed.
func (cs ChangeSet) Empty() bool {
	return cs.Mask == 0
}

// Merge folds o into cs, widening the dirty range.
func (cs ChangeSet) Merge(o ChangeSet) ChangeSet {
	out := cs
	out.Mask |= o.Mask
	out.LineCountAfter = o.LineCountAfter
	if o.HasDirtyRows {
		if !out.HasDirtyRows {
			out.DirtyFirstRow, out.DirtyLastRow = o.DirtyFirstRow, o.DirtyLastRow
		} else {
			out.DirtyFirstRow = min(out.DirtyFirstRow, o.DirtyFirstRow)
			out.DirtyLastRow = max(out.DirtyLastRow, o.DirtyLastRow)
		}
		out.HasDirtyRows = true
	}
	return out
}
