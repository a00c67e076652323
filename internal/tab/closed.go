package tab

import (
	"github.com/bethropolis/tidecore/internal/core"
	"github.com/bethropolis/tidecore/internal/types"
)

// ClosedInfo is what is kept of a closed tab so history navigation can
// find or rebuild it.
type ClosedInfo struct {
	Path   string
	State  core.State
	Scroll types.ScrollOffsets
}

// ClosedStore holds ClosedInfo for closed tabs still referenced by history.
type ClosedStore struct {
	infos map[types.TabID]ClosedInfo
}

// NewClosedStore creates an empty store.
func NewClosedStore() *ClosedStore {
	return &ClosedStore{infos: make(map[types.TabID]ClosedInfo)}
}

// Put records info for a closed tab.
func (s *ClosedStore) Put(id types.TabID, info ClosedInfo) {
	s.infos[id] = info
}

// Peek returns the info for id without removing it.
func (s *ClosedStore) Peek(id types.TabID) (ClosedInfo, bool) {
	info, ok := s.infos[id]
	return info, ok
}

// Take removes and returns the info for id.
func (s *ClosedStore) Take(id types.TabID) (ClosedInfo, bool) {
	info, ok := s.infos[id]
	if ok {
		delete(s.infos, id)
	}
	return info, ok
}

// Prune drops every entry whose id keep rejects.
func (s *ClosedStore) Prune(keep func(id types.TabID) bool) {
	for id := range s.infos {
		if !keep(id) {
			delete(s.infos, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *ClosedStore) Len() int {
	return len(s.infos)
}
