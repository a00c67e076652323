package workspace

import (
	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/tab"
)

// subscribe wires the workspace's own reactions to core events.
func (w *Workspace) subscribe() {
	w.events.Subscribe(event.TypeDocumentSaved, w.handleDocumentSaved)
	w.events.Subscribe(event.TypeTabActivated, w.handleTabActivated)
}

func (w *Workspace) handleDocumentSaved(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentData); ok {
		w.SetStatusMessage("Saved %s", data.Path)
	}
	return false
}

// handleTabActivated gives a newly shown view the current screen size.
func (w *Workspace) handleTabActivated(e event.Event) bool {
	if w.width > 0 && w.height > 0 {
		if v := w.tabs.ActiveView(); v != nil {
			v.SetSize(w.width, w.height)
		}
	}
	return false
}

// activeInfo returns a snapshot of the active tab.
func (w *Workspace) activeInfo() (tab.Info, bool) {
	id := w.tabs.ActiveID()
	if id == 0 {
		return tab.Info{}, false
	}
	info, err := w.tabs.Info(id)
	return info, err == nil
}
