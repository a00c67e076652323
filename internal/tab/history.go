package tab

import "github.com/bethropolis/tidecore/internal/types"

// DefaultHistoryLimit is used when Options.HistoryLimit is not positive.
const DefaultHistoryLimit = 100

// History is an append-on-activate log of tab ids plus a navigation
// cursor. Activating the tab already at the tail does not append. The
// cursor is only set while replaying history; explicit activation clears it.
type History struct {
	entries []types.TabID
	pos     int
	limit   int
}

// NewHistory creates an empty history holding at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{pos: -1, limit: limit}
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []types.TabID {
	out := make([]types.TabID, len(h.entries))
	copy(out, h.entries)
	return out
}

// Navigating reports whether the navigation cursor is set.
func (h *History) Navigating() bool {
	return h.pos >= 0
}

// Record logs an explicit activation and leaves navigation mode. It
// returns the ids that fell off the front of the log.
func (h *History) Record(id types.TabID) []types.TabID {
	h.pos = -1
	if n := len(h.entries); n > 0 && h.entries[n-1] == id {
		return nil
	}
	h.entries = append(h.entries, id)
	if over := len(h.entries) - h.limit; over > 0 {
		dropped := make([]types.TabID, over)
		copy(dropped, h.entries[:over])
		h.entries = append(h.entries[:0], h.entries[over:]...)
		return dropped
	}
	return nil
}

// References reports whether id appears anywhere in the log.
func (h *History) References(id types.TabID) bool {
	for _, e := range h.entries {
		if e == id {
			return true
		}
	}
	return false
}

// Remap replaces every occurrence of from with to.
func (h *History) Remap(from, to types.TabID) {
	for i, e := range h.entries {
		if e == from {
			h.entries[i] = to
		}
	}
	h.compact()
}

// Remove deletes every occurrence of id.
func (h *History) Remove(id types.TabID) {
	out := h.entries[:0]
	for i, e := range h.entries {
		if e == id {
			if i < h.pos {
				h.pos--
			}
			continue
		}
		out = append(out, e)
	}
	h.entries = out
	h.compact()
}

// compact merges consecutive duplicates, keeping the navigation cursor on
// the same logical entry.
func (h *History) compact() {
	if len(h.entries) == 0 {
		h.pos = -1
		return
	}
	out := h.entries[:1]
	pos := h.pos
	for i := 1; i < len(h.entries); i++ {
		if h.entries[i] == out[len(out)-1] {
			if i <= h.pos {
				pos--
			}
			continue
		}
		out = append(out, h.entries[i])
	}
	h.entries = out
	if h.pos >= 0 {
		h.pos = max(0, min(pos, len(out)-1))
	}
}

// cursor returns the navigation position, the tail when not navigating.
func (h *History) cursor() int {
	if h.pos >= 0 {
		return h.pos
	}
	return len(h.entries) - 1
}

// next finds the nearest entry from the cursor in direction dir (+1/-1)
// whose id differs from current. Consecutive duplicates are skipped.
func (h *History) next(dir int, current types.TabID) (int, bool) {
	for i := h.cursor() + dir; i >= 0 && i < len(h.entries); i += dir {
		if h.entries[i] != current {
			return i, true
		}
	}
	return -1, false
}

// removeAt deletes entry i.
func (h *History) removeAt(i int) {
	if i < 0 || i >= len(h.entries) {
		return
	}
	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	if i < h.pos {
		h.pos--
	}
	h.compact()
}

// setCursor enters navigation mode at i.
func (h *History) setCursor(i int) {
	if i >= 0 && i < len(h.entries) {
		h.pos = i
	}
}
