package document

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrNoPath    = errors.New("document has no path")
	ErrPathInUse = errors.New("path is open in another document")
)

// Manager creates, opens and saves documents. Each canonical path is open
// in at most one document.
type Manager struct {
	io       FileIO
	events   event.Poster
	docs     map[types.DocumentID]*Document
	byPath   map[string]types.DocumentID
	order    []types.DocumentID
	nextID   uint64
	untitled int
}

// NewManager creates a document manager. A nil io uses OSFileIO; events
// may be nil.
func NewManager(io FileIO, events event.Poster) *Manager {
	if io == nil {
		io = OSFileIO{}
	}
	return &Manager{
		io:     io,
		events: events,
		docs:   make(map[types.DocumentID]*Document),
		byPath: make(map[string]types.DocumentID),
	}
}

func (m *Manager) post(t event.Type, d *Document) {
	if m.events != nil {
		m.events.Post(t, event.DocumentData{DocumentID: d.id, Path: d.path})
	}
}

func (m *Manager) add(d *Document) {
	m.docs[d.id] = d
	m.order = append(m.order, d.id)
	if d.path != "" {
		m.byPath[d.path] = d.id
	}
	m.post(event.TypeDocumentOpened, d)
}

func (m *Manager) newID() types.DocumentID {
	m.nextID++
	return types.DocumentID(m.nextID)
}

// New creates an empty untitled document.
func (m *Manager) New() *Document {
	m.untitled++
	title := "Untitled"
	if m.untitled > 1 {
		title += "-" + strconv.Itoa(m.untitled)
	}
	d := newDocument(m.newID(), "", title, "")
	m.add(d)
	logger.Debugf("Document: created %s (%s)", d.id, title)
	return d
}

// Open opens path, returning the already open document for the same
// canonical path. A file that does not exist opens as an empty document
// bound to the path.
func (m *Manager) Open(path string) (*Document, error) {
	canonical, err := m.io.Canonicalize(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", path, err)
	}
	if id, ok := m.byPath[canonical]; ok {
		logger.Debugf("Document: %s already open as %s", canonical, id)
		return m.docs[id], nil
	}

	text, err := m.io.Read(canonical)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to open file '%s': %w", canonical, err)
		}
		logger.Infof("Document: %s does not exist, opening empty", canonical)
		text = ""
	}
	d := newDocument(m.newID(), canonical, "", text)
	m.add(d)
	logger.Debugf("Document: opened %s as %s (%d bytes)", canonical, d.id, len(text))
	return d, nil
}

// Get returns the document with id.
func (m *Manager) Get(id types.DocumentID) (*Document, error) {
	if id == 0 {
		return nil, types.ErrInvalidID
	}
	d, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return d, nil
}

// FindByPath returns the open document for path, if any.
func (m *Manager) FindByPath(path string) (*Document, bool) {
	canonical, err := m.io.Canonicalize(path)
	if err != nil {
		return nil, false
	}
	id, ok := m.byPath[canonical]
	if !ok {
		return nil, false
	}
	return m.docs[id], true
}

// Save writes the document to its path.
func (m *Manager) Save(id types.DocumentID) error {
	d, err := m.Get(id)
	if err != nil {
		return err
	}
	if !d.HasPath() {
		return fmt.Errorf("%s: %w", id, ErrNoPath)
	}
	return m.write(d)
}

// SaveAs binds the document to path and writes it there.
func (m *Manager) SaveAs(id types.DocumentID, path string) error {
	d, err := m.Get(id)
	if err != nil {
		return err
	}
	canonical, err := m.io.Canonicalize(path)
	if err != nil {
		return fmt.Errorf("failed to resolve '%s': %w", path, err)
	}
	if other, ok := m.byPath[canonical]; ok && other != id {
		return fmt.Errorf("%s: %w", canonical, ErrPathInUse)
	}
	if d.path != "" {
		delete(m.byPath, d.path)
	}
	d.path = canonical
	d.title = filepath.Base(canonical)
	m.byPath[canonical] = id
	return m.write(d)
}

func (m *Manager) write(d *Document) error {
	if err := m.io.Write(d.path, d.buf.String()); err != nil {
		return err
	}
	d.markSaved()
	logger.Infof("Document: saved %s to %s", d.id, d.path)
	m.post(event.TypeDocumentSaved, d)
	return nil
}

// Close forgets the document.
func (m *Manager) Close(id types.DocumentID) error {
	d, err := m.Get(id)
	if err != nil {
		return err
	}
	delete(m.docs, id)
	if d.path != "" {
		delete(m.byPath, d.path)
	}
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.post(event.TypeDocumentClosed, d)
	return nil
}

// Documents returns snapshots of every open document in open order.
func (m *Manager) Documents() []Info {
	out := make([]Info, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.docs[id].Info())
	}
	return out
}
