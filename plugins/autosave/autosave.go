// Package autosave saves a modified file-backed tab when focus leaves it.
package autosave

import (
	"sync"

	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const defaultEnabled = false

// AutoSave saves the previously active tab on every tab switch.
type AutoSave struct {
	api plugin.EditorAPI

	mutex   sync.RWMutex
	enabled bool
	saved   int
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{enabled: defaultEnabled}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and subscribes to tab activation.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	name := p.Name()

	p.mutex.Lock()
	if v, ok := api.PluginConfigValue(name, "enabled"); ok {
		if b, isBool := v.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, v, p.enabled)
		}
	}
	enabled := p.enabled
	p.mutex.Unlock()

	api.SubscribeEvent(event.TypeTabActivated, p.handleTabActivated)
	logger.Infof("%s initialized. Enabled: %v", name, enabled)
	return nil
}

// Shutdown performs cleanup (nothing needed).
func (p *AutoSave) Shutdown() error {
	return nil
}

// SetEnabled switches saving on or off.
func (p *AutoSave) SetEnabled(on bool) {
	p.mutex.Lock()
	p.enabled = on
	p.mutex.Unlock()
}

// Saved returns how many saves the plugin made.
func (p *AutoSave) Saved() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.saved
}

func (p *AutoSave) handleTabActivated(e event.Event) bool {
	data, ok := e.Data.(event.TabActivatedData)
	if !ok || data.Previous == 0 {
		return false
	}
	p.mutex.RLock()
	enabled := p.enabled
	p.mutex.RUnlock()
	if !enabled {
		return false
	}

	info, err := p.api.TabInfo(data.Previous)
	if err != nil {
		// Closed tabs are gone already.
		return false
	}
	if !info.Modified || !info.HasPath {
		return false
	}
	if err := p.api.SaveTab(data.Previous); err != nil {
		logger.Errorf("%s: Auto-save failed for %q: %v", p.Name(), info.Path, err)
		return false
	}
	p.mutex.Lock()
	p.saved++
	p.mutex.Unlock()
	logger.Infof("%s: Auto-saved %q", p.Name(), info.Path)
	return false
}
