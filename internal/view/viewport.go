package view

import "github.com/bethropolis/tidecore/internal/types"

// Viewport is the visible window onto a view's text.
type Viewport struct {
	FirstRow  int
	FirstCol  int
	Height    int
	Width     int
	ScrollOff int
}

// Offsets returns the scroll position.
func (v Viewport) Offsets() types.ScrollOffsets {
	return types.ScrollOffsets{Row: v.FirstRow, Col: v.FirstCol}
}

// LastRow returns the last visible row.
func (v Viewport) LastRow() int {
	return v.FirstRow + max(v.Height, 1) - 1
}

func (v Viewport) effectiveScrollOff() int {
	if v.ScrollOff*2 >= v.Height {
		if v.Height > 0 {
			return (v.Height - 1) / 2
		}
		return 0
	}
	return v.ScrollOff
}

// EnsureVisible scrolls so that (row, visualCol) is on screen, keeping
// ScrollOff rows of context above and below. It reports whether the
// viewport moved. A viewport without a size never scrolls.
func (v *Viewport) EnsureVisible(row, visualCol int) bool {
	if v.Height <= 0 || v.Width <= 0 {
		return false
	}
	before := *v
	off := v.effectiveScrollOff()

	if row < v.FirstRow+off {
		v.FirstRow = max(row-off, 0)
	} else if row >= v.FirstRow+v.Height-off {
		v.FirstRow = row - v.Height + 1 + off
	}

	if visualCol < v.FirstCol {
		v.FirstCol = visualCol
	} else if visualCol >= v.FirstCol+v.Width {
		v.FirstCol = visualCol - v.Width + 1
	}
	return *v != before
}
