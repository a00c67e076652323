// Package document owns open documents: a buffer plus its path, title and
// saved state.
package document

import (
	"path/filepath"

	"github.com/bethropolis/tidecore/internal/buffer"
	"github.com/bethropolis/tidecore/internal/types"
)

// Document is an open buffer with its file metadata.
type Document struct {
	id            types.DocumentID
	path          string
	title         string
	buf           *buffer.Buffer
	savedRevision uint64
}

func newDocument(id types.DocumentID, path, title, text string) *Document {
	buf := buffer.FromString(text)
	if title == "" {
		title = filepath.Base(path)
	}
	return &Document{id: id, path: path, title: title, buf: buf, savedRevision: buf.Revision()}
}

func (d *Document) ID() types.DocumentID   { return d.id }
func (d *Document) Path() string           { return d.path }
func (d *Document) HasPath() bool          { return d.path != "" }
func (d *Document) Title() string          { return d.title }
func (d *Document) Buffer() *buffer.Buffer { return d.buf }

// IsModified reports whether the buffer changed since it was loaded or
// last saved.
func (d *Document) IsModified() bool {
	return d.buf.Revision() != d.savedRevision
}

func (d *Document) markSaved() {
	d.savedRevision = d.buf.Revision()
}

// Info is a plain snapshot of a document.
type Info struct {
	ID       types.DocumentID
	Title    string
	HasPath  bool
	Path     string
	Modified bool
}

// Info returns a snapshot of d.
func (d *Document) Info() Info {
	return Info{ID: d.id, Title: d.title, HasPath: d.HasPath(), Path: d.path, Modified: d.IsModified()}
}
