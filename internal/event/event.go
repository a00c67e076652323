package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidecore/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeDocumentOpened
	TypeDocumentSaved
	TypeDocumentClosed

	// Editing events
	TypeBufferModified
	TypeCursorMoved

	// Tab events
	TypeTabOpened
	TypeTabClosed
	TypeTabActivated
	TypeTabMoved

	// Input events
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeDocumentOpened: "DocumentOpened",
	TypeDocumentSaved:  "DocumentSaved",
	TypeDocumentClosed: "DocumentClosed",
	TypeBufferModified: "BufferModified",
	TypeCursorMoved:    "CursorMoved",
	TypeTabOpened:      "TabOpened",
	TypeTabClosed:      "TabClosed",
	TypeTabActivated:   "TabActivated",
	TypeTabMoved:       "TabMoved",
	TypeKeyPressed:     "KeyPressed",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// DocumentData identifies a document and its path, if any.
type DocumentData struct {
	DocumentID types.DocumentID
	Path       string
}

// BufferModifiedData describes an edit made through a view.
type BufferModifiedData struct {
	DocumentID types.DocumentID
	ViewID     types.ViewID
	FirstRow   int
	LastRow    int
}

// CursorMovedData carries the active cursor of a view.
type CursorMovedData struct {
	ViewID      types.ViewID
	NewPosition types.Position
}

// TabData identifies a tab.
type TabData struct {
	TabID      types.TabID
	DocumentID types.DocumentID
}

// TabActivatedData carries the newly active tab and the one before it
// (zero when there was none).
type TabActivatedData struct {
	TabID    types.TabID
	Previous types.TabID
}

// TabMovedData describes a reorder.
type TabMovedData struct {
	TabID    types.TabID
	From, To int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}
