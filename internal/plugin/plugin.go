// Package plugin defines the interface built-in plugins implement and the
// API they get to reach the workspace.
package plugin

import (
	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/tab"
	"github.com/bethropolis/tidecore/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
type CommandFunc func(args []string) error

// EditorAPI is what plugins can use to interact with the workspace. Calls
// act on the active tab unless they take a tab id.
type EditorAPI interface {
	// --- Active buffer ---
	BufferText() string
	BufferLineCount() int
	BufferFilePath() string
	IsBufferModified() bool
	Cursor() types.Position

	// --- Tabs ---
	TabInfo(id types.TabID) (tab.Info, error)
	SaveTab(id types.TabID) error

	// --- Event bus ---
	PostEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Commands & status ---
	RegisterCommand(name, usage string, cmdFunc CommandFunc) error
	SetStatusMessage(format string, args ...interface{})

	// PluginConfigValue reads key from the [plugins.<plugin>] config table.
	PluginConfigValue(plugin, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins
	// subscribe to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the workspace closes.
	Shutdown() error
}
