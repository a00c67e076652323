package workspace

import (
	"fmt"

	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/plugin"
	"github.com/bethropolis/tidecore/plugins/autosave"
	"github.com/bethropolis/tidecore/plugins/wordcount"
)

// builtinPlugins returns fresh instances of the plugins shipped with
// tidecore.
func builtinPlugins() []plugin.Plugin {
	return []plugin.Plugin{
		wordcount.New(),
		autosave.New(),
	}
}

// registerPlugins registers every plugin, logging failures and returning
// the first one.
func registerPlugins(pm *plugin.Manager, plugins []plugin.Plugin) error {
	var firstErr error
	for _, p := range plugins {
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrapped := fmt.Errorf("failed to register plugin %q: %w", p.Name(), err)
			logger.Errorf("%v", wrapped)
			if firstErr == nil {
				firstErr = wrapped
			}
		}
	}
	return firstErr
}
