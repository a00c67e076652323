package core

import "github.com/bethropolis/tidecore/internal/logger"

// Clipboard is where copied text goes and pasted text comes from.
type Clipboard interface {
	Read() string
	Write(text string)
}

// Copy writes the selected text to cb. It reports whether anything was
// copied.
func (e *Editor) Copy(cb Clipboard) bool {
	text := e.SelectedText()
	if text == "" {
		return false
	}
	cb.Write(text)
	logger.Debugf("Editor: Copied %d bytes", len(text))
	return true
}

// Cut copies the selection to cb and deletes it.
func (e *Editor) Cut(cb Clipboard) ChangeSet {
	if !e.Copy(cb) {
		return ChangeSet{}
	}
	return e.withOp(true, func(c *opContext) { c.deleteSelection() })
}

// Paste inserts the clipboard contents at every cursor, replacing any
// selection.
func (e *Editor) Paste(cb Clipboard) ChangeSet {
	text := cb.Read()
	if text == "" {
		return ChangeSet{}
	}
	logger.Debugf("Editor: Pasting %d bytes", len(text))
	return e.InsertText(text)
}
