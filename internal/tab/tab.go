// Package tab manages tabs: document/view pairs with pin state, ordering,
// an activation history and recovery of recently closed tabs.
package tab

import (
	"errors"
	"fmt"

	"github.com/bethropolis/tidecore/internal/types"
)

var (
	ErrNotFound    = errors.New("tab not found")
	ErrNoID        = errors.New("no tab id given")
	ErrInvalidMove = errors.New("invalid tab move")
	ErrPinned      = errors.New("tab is pinned")
)

// Tab binds a document and the view editing it.
type Tab struct {
	ID         types.TabID
	DocumentID types.DocumentID
	ViewID     types.ViewID
	Pinned     bool
}

// Info is a plain snapshot of a tab.
type Info struct {
	ID         types.TabID
	DocumentID types.DocumentID
	ViewID     types.ViewID
	Title      string
	HasPath    bool
	Path       string
	Modified   bool
	Pinned     bool
	Active     bool
	Scroll     types.ScrollOffsets
}

// CloseKind selects which tabs a close operation targets relative to an
// anchor tab.
type CloseKind int

const (
	CloseSingle CloseKind = iota
	CloseLeft
	CloseRight
	CloseOthers
	CloseClean
	CloseAll
)

var closeKindNames = []string{"single", "left", "right", "others", "clean", "all"}

func (k CloseKind) String() string {
	if k >= 0 && int(k) < len(closeKindNames) {
		return closeKindNames[k]
	}
	return fmt.Sprintf("CloseKind(%d)", int(k))
}

// ParseCloseKind maps a name such as "others" to its CloseKind.
func ParseCloseKind(name string) (CloseKind, error) {
	for i, n := range closeKindNames {
		if n == name {
			return CloseKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown close kind %q", name)
}

// Options configure a tab manager.
type Options struct {
	// HistoryNavigation makes MoveActiveTabBy walk the activation history
	// instead of the tab order.
	HistoryNavigation bool
	// ReopenClosed lets history navigation reopen closed tabs.
	ReopenClosed bool
	// HistoryLimit bounds the activation history.
	HistoryLimit int
}
