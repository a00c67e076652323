package tab

import (
	"fmt"

	"github.com/bethropolis/tidecore/internal/document"
	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
	"github.com/bethropolis/tidecore/internal/view"
)

// Manager owns the tab list. Pinned tabs always precede unpinned ones.
type Manager struct {
	docs    *document.Manager
	views   *view.Manager
	events  event.Poster
	opts    Options
	tabs    []*Tab
	active  types.TabID
	nextID  uint64
	history *History
	closed  *ClosedStore
}

// NewManager creates a tab manager over docs and views. events may be nil.
func NewManager(docs *document.Manager, views *view.Manager, opts Options, events event.Poster) *Manager {
	return &Manager{
		docs:    docs,
		views:   views,
		events:  events,
		opts:    opts,
		history: NewHistory(opts.HistoryLimit),
		closed:  NewClosedStore(),
	}
}

func (m *Manager) post(t event.Type, data interface{}) {
	if m.events != nil {
		m.events.Post(t, data)
	}
}

// History exposes the activation log.
func (m *Manager) History() *History { return m.history }

// Closed exposes the closed-tab store.
func (m *Manager) Closed() *ClosedStore { return m.closed }

// Len returns the number of open tabs.
func (m *Manager) Len() int { return len(m.tabs) }

func (m *Manager) index(id types.TabID) int {
	for i, t := range m.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) lookup(id types.TabID) (int, error) {
	if id == 0 {
		return -1, ErrNoID
	}
	i := m.index(id)
	if i < 0 {
		return -1, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return i, nil
}

// Get returns the tab with id.
func (m *Manager) Get(id types.TabID) (*Tab, error) {
	i, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return m.tabs[i], nil
}

// ActiveID returns the active tab id, or zero without tabs.
func (m *Manager) ActiveID() types.TabID { return m.active }

// Active returns the active tab, or nil.
func (m *Manager) Active() *Tab {
	if i := m.index(m.active); i >= 0 {
		return m.tabs[i]
	}
	return nil
}

// ActiveView returns the view of the active tab, or nil.
func (m *Manager) ActiveView() *view.View {
	t := m.Active()
	if t == nil {
		return nil
	}
	v, err := m.views.Get(t.ViewID)
	if err != nil {
		return nil
	}
	return v
}

func (m *Manager) pinnedCount() int {
	n := 0
	for _, t := range m.tabs {
		if t.Pinned {
			n++
		}
	}
	return n
}

// addTab creates a tab for doc with a new view and appends it.
func (m *Manager) addTab(doc *document.Document) (*Tab, *view.View) {
	v := m.views.Create(doc.ID(), doc.Buffer())
	m.nextID++
	t := &Tab{ID: types.TabID(m.nextID), DocumentID: doc.ID(), ViewID: v.ID()}
	m.tabs = append(m.tabs, t)
	m.post(event.TypeTabOpened, event.TabData{TabID: t.ID, DocumentID: t.DocumentID})
	logger.Debugf("Tab: opened %s for %s", t.ID, doc.ID())
	return t, v
}

// NewTab opens an untitled document in a new active tab.
func (m *Manager) NewTab() types.TabID {
	t, _ := m.addTab(m.docs.New())
	m.activate(t.ID, true)
	return t.ID
}

// OpenFile activates the tab already showing path, or opens it in a new
// active tab.
func (m *Manager) OpenFile(path string) (types.TabID, error) {
	if doc, ok := m.docs.FindByPath(path); ok {
		for _, t := range m.tabs {
			if t.DocumentID == doc.ID() {
				m.activate(t.ID, true)
				return t.ID, nil
			}
		}
	}
	doc, err := m.docs.Open(path)
	if err != nil {
		return 0, err
	}
	t, _ := m.addTab(doc)
	m.activate(t.ID, true)
	return t.ID, nil
}

// Activate makes id the active tab and records it in history.
func (m *Manager) Activate(id types.TabID) error {
	if _, err := m.lookup(id); err != nil {
		return err
	}
	m.activate(id, true)
	return nil
}

func (m *Manager) activate(id types.TabID, record bool) {
	prev := m.active
	m.active = id
	if t := m.Active(); t != nil {
		if err := m.views.SetActive(t.ViewID); err != nil {
			logger.Warnf("Tab: activating %s: %v", id, err)
		}
	}
	if record {
		if dropped := m.history.Record(id); len(dropped) > 0 {
			m.closed.Prune(m.history.References)
		}
	}
	if prev != id {
		m.post(event.TypeTabActivated, event.TabActivatedData{TabID: id, Previous: prev})
	}
}

// SetScroll stores scroll offsets on a tab's view.
func (m *Manager) SetScroll(id types.TabID, s types.ScrollOffsets) error {
	t, err := m.Get(id)
	if err != nil {
		return err
	}
	v, err := m.views.Get(t.ViewID)
	if err != nil {
		return err
	}
	v.SetScroll(s)
	return nil
}

// Info returns a snapshot of one tab.
func (m *Manager) Info(id types.TabID) (Info, error) {
	t, err := m.Get(id)
	if err != nil {
		return Info{}, err
	}
	return m.info(t), nil
}

func (m *Manager) info(t *Tab) Info {
	info := Info{
		ID:         t.ID,
		DocumentID: t.DocumentID,
		ViewID:     t.ViewID,
		Pinned:     t.Pinned,
		Active:     t.ID == m.active,
	}
	if d, err := m.docs.Get(t.DocumentID); err == nil {
		info.Title, info.HasPath, info.Path, info.Modified = d.Title(), d.HasPath(), d.Path(), d.IsModified()
	}
	if v, err := m.views.Get(t.ViewID); err == nil {
		info.Scroll = v.Scroll()
	}
	return info
}

// Tabs returns snapshots of every tab in order.
func (m *Manager) Tabs() []Info {
	out := make([]Info, 0, len(m.tabs))
	for _, t := range m.tabs {
		out = append(out, m.info(t))
	}
	return out
}

// Pin pins a tab, moving it to the first unpinned slot.
func (m *Manager) Pin(id types.TabID) error {
	return m.setPinned(id, true)
}

// Unpin unpins a tab, moving it just after the last pinned tab.
func (m *Manager) Unpin(id types.TabID) error {
	return m.setPinned(id, false)
}

func (m *Manager) setPinned(id types.TabID, pinned bool) error {
	i, err := m.lookup(id)
	if err != nil {
		return err
	}
	t := m.tabs[i]
	if t.Pinned == pinned {
		return nil
	}
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	t.Pinned = pinned
	// Both land on the pinned/unpinned boundary.
	at := m.pinnedCount()
	m.insertAt(at, t)
	logger.Debugf("Tab: %s pinned=%v, moved %d -> %d", id, pinned, i, at)
	if at != i {
		m.post(event.TypeTabMoved, event.TabMovedData{TabID: id, From: i, To: at})
	}
	return nil
}

func (m *Manager) insertAt(i int, t *Tab) {
	m.tabs = append(m.tabs, nil)
	copy(m.tabs[i+1:], m.tabs[i:])
	m.tabs[i] = t
}

// Move moves the tab at index from to index to. A tab cannot cross the
// pinned/unpinned boundary.
func (m *Manager) Move(from, to int) error {
	n := len(m.tabs)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d -> %d with %d tabs: %w", from, to, n, ErrInvalidMove)
	}
	t := m.tabs[from]
	pinned := m.pinnedCount()
	if (t.Pinned && to >= pinned) || (!t.Pinned && to < pinned) {
		return fmt.Errorf("move %d -> %d crosses pinned tabs: %w", from, to, ErrInvalidMove)
	}
	if from == to {
		return nil
	}
	m.tabs = append(m.tabs[:from], m.tabs[from+1:]...)
	m.insertAt(to, t)
	m.post(event.TypeTabMoved, event.TabMovedData{TabID: t.ID, From: from, To: to})
	return nil
}

// MoveActiveTabBy activates the tab delta steps away. With history
// navigation enabled it walks history; otherwise it cycles through the
// tab order with wraparound.
func (m *Manager) MoveActiveTabBy(delta int) error {
	if m.opts.HistoryNavigation {
		_, err := m.NavigateHistory(delta)
		return err
	}
	n := len(m.tabs)
	if n == 0 || delta == 0 {
		return nil
	}
	cur := max(m.index(m.active), 0)
	next := ((cur+delta)%n + n) % n
	m.activate(m.tabs[next].ID, true)
	return nil
}
