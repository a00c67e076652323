package types

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when constructing an id from zero.
var ErrInvalidID = errors.New("invalid id: ids are nonzero")

// DocumentID identifies an open document.
type DocumentID uint64

// ViewID identifies an editing view.
type ViewID uint64

// TabID identifies a tab. Tab ids are assigned monotonically and never reused.
type TabID uint64

// NewTabID validates a raw tab id.
func NewTabID(raw uint64) (TabID, error) {
	if raw == 0 {
		return 0, ErrInvalidID
	}
	return TabID(raw), nil
}

// ParseTabID parses a decimal tab id as typed on the command surface.
func ParseTabID(s string) (TabID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return NewTabID(n)
}

func (id DocumentID) String() string { return "doc#" + strconv.FormatUint(uint64(id), 10) }
func (id ViewID) String() string     { return "view#" + strconv.FormatUint(uint64(id), 10) }
func (id TabID) String() string      { return "tab#" + strconv.FormatUint(uint64(id), 10) }
