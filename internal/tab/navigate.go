package tab

import (
	"fmt"

	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
)

// Outcome is the result of resolving a history entry to a tab.
type Outcome int

const (
	// Existing means a live tab serves the entry.
	Existing Outcome = iota
	// NeedsReopen means the entry's closed tab can be rebuilt.
	NeedsReopen
	// Unresolvable means the entry must be dropped.
	Unresolvable
)

func (o Outcome) String() string {
	switch o {
	case Existing:
		return "existing"
	case NeedsReopen:
		return "needs-reopen"
	}
	return "unresolvable"
}

// Resolution is what a history entry resolves to. Target is the live tab
// for Existing.
type Resolution struct {
	Outcome Outcome
	Target  types.TabID
	Info    ClosedInfo
}

// Resolve decides how history entry id can be served, trying in order: the
// live tab itself, a live tab holding the closed tab's file, and reopening
// the closed tab when enabled.
func (m *Manager) Resolve(id types.TabID) Resolution {
	if m.index(id) >= 0 {
		return Resolution{Outcome: Existing, Target: id}
	}
	info, ok := m.closed.Peek(id)
	if !ok {
		return Resolution{Outcome: Unresolvable}
	}
	if doc, found := m.docs.FindByPath(info.Path); found {
		for _, t := range m.tabs {
			if t.DocumentID == doc.ID() {
				return Resolution{Outcome: Existing, Target: t.ID, Info: info}
			}
		}
	}
	if m.opts.ReopenClosed {
		return Resolution{Outcome: NeedsReopen, Info: info}
	}
	return Resolution{Outcome: Unresolvable, Info: info}
}

// NavigateHistory moves delta distinct entries through the activation
// history (negative is back). Entries whose tab is gone are resolved or
// dropped. When history runs out the active tab is unchanged and false is
// returned.
func (m *Manager) NavigateHistory(delta int) (bool, error) {
	if delta == 0 {
		return false, nil
	}
	dir := 1
	if delta < 0 {
		dir, delta = -1, -delta
	}

	current := m.active
	pos := -1
	for steps := delta; steps > 0; {
		i, ok := m.history.next(dir, current)
		if !ok {
			logger.Debugf("Tab: history exhausted navigating %+d", dir)
			break
		}
		id := m.history.entries[i]
		res := m.Resolve(id)
		logger.DebugTagf("tab-history", "entry %d (%s) -> %v", i, id, res.Outcome)

		switch res.Outcome {
		case Existing:
			if res.Target != id {
				m.closed.Take(id)
				m.history.Remap(id, res.Target)
				i = m.historyIndexNear(i, res.Target)
				if res.Target == current {
					continue
				}
			}
			current = res.Target
		case NeedsReopen:
			reopened, err := m.reopen(id, res.Info)
			if err != nil {
				logger.Warnf("Tab: reopening %s failed: %v", id, err)
				m.closed.Take(id)
				m.history.removeAt(i)
				continue
			}
			m.history.Remap(id, reopened)
			i = m.historyIndexNear(i, reopened)
			current = reopened
		case Unresolvable:
			m.closed.Take(id)
			m.history.removeAt(i)
			continue
		}
		m.history.setCursor(i)
		pos = i
		steps--
	}

	if pos < 0 || current == m.active {
		return false, nil
	}
	m.activate(current, false)
	return true, nil
}

// historyIndexNear returns the index of id closest to i after a remap
// compacted the log.
func (m *Manager) historyIndexNear(i int, id types.TabID) int {
	best := -1
	for j, e := range m.history.entries {
		if e != id {
			continue
		}
		if best < 0 || abs(j-i) < abs(best-i) {
			best = j
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// reopen rebuilds a closed tab from its stored info as a new tab with a
// new id, restoring cursors, selection and scroll.
func (m *Manager) reopen(old types.TabID, info ClosedInfo) (types.TabID, error) {
	if _, ok := m.closed.Take(old); !ok {
		return 0, fmt.Errorf("%s: %w", old, ErrNotFound)
	}
	doc, err := m.docs.Open(info.Path)
	if err != nil {
		return 0, err
	}
	t, v := m.addTab(doc)
	v.Editor().RestoreState(info.State)
	v.SetScroll(info.Scroll)
	logger.Infof("Tab: reopened %s as %s (%s)", old, t.ID, info.Path)
	return t.ID, nil
}
