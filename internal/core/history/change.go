// Package history provides undo/redo via stacks of recorded transactions.
package history

import (
	"github.com/bethropolis/tidecore/internal/core/cursor"
	"github.com/bethropolis/tidecore/internal/core/selection"
)

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == InsertAction {
		return "insert"
	}
	return "delete"
}

// Text is the subset of the buffer an edit is applied to.
type Text interface {
	Insert(offset int, text string) int
	Delete(start, end int) string
}

// Edit is a single reversible buffer mutation at a byte offset. For an
// insert Text is what was inserted; for a delete it is exactly the bytes
// removed from [Offset, Offset+len(Text)).
type Edit struct {
	Type   ActionType
	Offset int
	Text   string
}

// End returns the byte offset just past the affected text.
func (e Edit) End() int {
	return e.Offset + len(e.Text)
}

// Inverse returns the edit that undoes e.
func (e Edit) Inverse() Edit {
	if e.Type == InsertAction {
		return Edit{Type: DeleteAction, Offset: e.Offset, Text: e.Text}
	}
	return Edit{Type: InsertAction, Offset: e.Offset, Text: e.Text}
}

// Apply performs the edit on t.
func (e Edit) Apply(t Text) {
	switch e.Type {
	case InsertAction:
		t.Insert(e.Offset, e.Text)
	case DeleteAction:
		t.Delete(e.Offset, e.End())
	}
}

// State is the cursor and selection state a transaction restores.
type State struct {
	Cursors   cursor.Snapshot
	Selection selection.Selection
}

// Transaction groups the edits of one editor operation together with the
// state before and after it.
type Transaction struct {
	Before State
	After  State
	Edits  []Edit
}

// Record appends an edit.
func (tx *Transaction) Record(e Edit) {
	if e.Text == "" {
		return
	}
	tx.Edits = append(tx.Edits, e)
}

// Empty reports whether the transaction recorded no edits.
func (tx *Transaction) Empty() bool {
	return len(tx.Edits) == 0
}

// Revert applies the inverse of every edit in reverse order.
func (tx *Transaction) Revert(t Text) {
	for i := len(tx.Edits) - 1; i >= 0; i-- {
		tx.Edits[i].Inverse().Apply(t)
	}
}

// Replay applies every edit in order.
func (tx *Transaction) Replay(t Text) {
	for _, e := range tx.Edits {
		e.Apply(t)
	}
}
