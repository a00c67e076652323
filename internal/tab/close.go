package tab

import (
	"fmt"

	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
)

// CloseCandidates lists the tabs a close of kind anchored at anchor would
// close. Pinned tabs are left out of every kind except CloseSingle.
func (m *Manager) CloseCandidates(kind CloseKind, anchor types.TabID) ([]types.TabID, error) {
	idx, err := m.lookup(anchor)
	if err != nil {
		return nil, err
	}
	var ids []types.TabID
	for i, t := range m.tabs {
		var take bool
		switch kind {
		case CloseSingle:
			take = i == idx
		case CloseLeft:
			take = i < idx
		case CloseRight:
			take = i > idx
		case CloseOthers:
			take = i != idx
		case CloseClean:
			take = !m.isModified(t)
		case CloseAll:
			take = true
		default:
			return nil, fmt.Errorf("close: unknown kind %v", kind)
		}
		if take && (kind == CloseSingle || !t.Pinned) {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

func (m *Manager) isModified(t *Tab) bool {
	d, err := m.docs.Get(t.DocumentID)
	return err == nil && d.IsModified()
}

// Close closes the candidate tabs of kind. Closing a single pinned tab
// requires closePinned. It returns the ids closed.
func (m *Manager) Close(kind CloseKind, anchor types.TabID, closePinned bool) ([]types.TabID, error) {
	ids, err := m.CloseCandidates(kind, anchor)
	if err != nil {
		return nil, err
	}
	if kind == CloseSingle && len(ids) == 1 && !closePinned {
		if t, _ := m.Get(ids[0]); t != nil && t.Pinned {
			return nil, fmt.Errorf("close %s: %w", t.ID, ErrPinned)
		}
	}

	order := make([]types.TabID, len(m.tabs))
	for i, t := range m.tabs {
		order[i] = t.ID
	}
	oldActive := m.active
	for _, id := range ids {
		m.closeTab(id)
	}
	if m.index(oldActive) < 0 {
		m.active = 0
		if next := m.successor(order, oldActive); next != 0 {
			m.activate(next, true)
		}
	}
	logger.Debugf("Tab: closed %d tab(s) (%v)", len(ids), kind)
	return ids, nil
}

// closeTab removes one tab, remembering it for history navigation when
// history still references it.
func (m *Manager) closeTab(id types.TabID) {
	i := m.index(id)
	if i < 0 {
		return
	}
	t := m.tabs[i]
	doc, derr := m.docs.Get(t.DocumentID)
	v, verr := m.views.Get(t.ViewID)

	if derr == nil && verr == nil && doc.HasPath() && m.history.References(id) {
		m.closed.Put(id, ClosedInfo{
			Path:   doc.Path(),
			State:  v.Editor().State(),
			Scroll: v.Scroll(),
		})
	}
	if verr == nil {
		if err := m.views.Remove(t.ViewID); err != nil {
			logger.Warnf("Tab: removing view of %s: %v", id, err)
		}
	}
	if derr == nil && len(m.views.ViewsForDocument(t.DocumentID)) == 0 {
		if err := m.docs.Close(t.DocumentID); err != nil {
			logger.Warnf("Tab: closing document of %s: %v", id, err)
		}
	}
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	m.post(event.TypeTabClosed, event.TabData{TabID: id, DocumentID: t.DocumentID})
}

// successor picks the tab to activate after the active tab closed: the most
// recent live history entry, else the nearest live tab right of the old
// active tab in the pre-close order, else the nearest one left of it.
func (m *Manager) successor(order []types.TabID, oldActive types.TabID) types.TabID {
	entries := m.history.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if m.index(entries[i]) >= 0 {
			return entries[i]
		}
	}

	at := -1
	for i, id := range order {
		if id == oldActive {
			at = i
			break
		}
	}
	for i := at + 1; i < len(order); i++ {
		if m.index(order[i]) >= 0 {
			return order[i]
		}
	}
	for i := at - 1; i >= 0; i-- {
		if m.index(order[i]) >= 0 {
			return order[i]
		}
	}
	return 0
}
