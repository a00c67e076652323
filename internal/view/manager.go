package view

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bethropolis/tidecore/internal/buffer"
	"github.com/bethropolis/tidecore/internal/core"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
)

var ErrNotFound = errors.New("view not found")

// Options configure new views.
type Options struct {
	MaxUndo   int
	TabWidth  int
	ScrollOff int
}

// Manager creates and tracks views.
type Manager struct {
	opts   Options
	views  map[types.ViewID]*View
	active types.ViewID
	nextID uint64
}

// NewManager creates a view manager.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts, views: make(map[types.ViewID]*View)}
}

// Create makes a view with a fresh editor over buf.
func (m *Manager) Create(docID types.DocumentID, buf *buffer.Buffer) *View {
	m.nextID++
	v := &View{
		id:       types.ViewID(m.nextID),
		docID:    docID,
		editor:   core.NewEditor(buf, m.opts.MaxUndo),
		viewport: Viewport{ScrollOff: m.opts.ScrollOff},
		tabWidth: m.opts.TabWidth,
	}
	m.views[v.id] = v
	logger.Debugf("View: created %s for %s", v.id, docID)
	return v
}

// Get returns the view with id.
func (m *Manager) Get(id types.ViewID) (*View, error) {
	if id == 0 {
		return nil, types.ErrInvalidID
	}
	v, ok := m.views[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return v, nil
}

// Remove destroys a view. Removing the active view leaves none active.
func (m *Manager) Remove(id types.ViewID) error {
	if _, err := m.Get(id); err != nil {
		return err
	}
	delete(m.views, id)
	if m.active == id {
		m.active = 0
	}
	return nil
}

// SetActive marks a view active.
func (m *Manager) SetActive(id types.ViewID) error {
	if _, err := m.Get(id); err != nil {
		return err
	}
	m.active = id
	return nil
}

// Active returns the active view, or nil.
func (m *Manager) Active() *View {
	return m.views[m.active]
}

// ViewsForDocument lists the views bound to docID in creation order.
func (m *Manager) ViewsForDocument(docID types.DocumentID) []types.ViewID {
	var ids []types.ViewID
	for id, v := range m.views {
		if v.docID == docID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
