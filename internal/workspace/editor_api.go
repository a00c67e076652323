package workspace

import (
	"github.com/bethropolis/tidecore/internal/commands"
	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/plugin"
	"github.com/bethropolis/tidecore/internal/tab"
	"github.com/bethropolis/tidecore/internal/types"
)

// Ensure editorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*editorAPI)(nil)

// editorAPI is the plugin-facing view of a workspace.
type editorAPI struct {
	ws *Workspace
}

func newEditorAPI(ws *Workspace) *editorAPI {
	return &editorAPI{ws: ws}
}

// --- Active buffer ---

func (api *editorAPI) BufferText() string {
	if v := api.ws.tabs.ActiveView(); v != nil {
		return v.Editor().Text()
	}
	return ""
}

func (api *editorAPI) BufferLineCount() int {
	if v := api.ws.tabs.ActiveView(); v != nil {
		return v.Editor().GetBuffer().LineCount()
	}
	return 0
}

func (api *editorAPI) BufferFilePath() string {
	info, _ := api.ws.activeInfo()
	return info.Path
}

func (api *editorAPI) IsBufferModified() bool {
	info, _ := api.ws.activeInfo()
	return info.Modified
}

func (api *editorAPI) Cursor() types.Position {
	if v := api.ws.tabs.ActiveView(); v != nil {
		return v.Editor().ActiveCursor().Cursor.Pos()
	}
	return types.Position{}
}

// --- Tabs ---

func (api *editorAPI) TabInfo(id types.TabID) (tab.Info, error) {
	return api.ws.tabs.Info(id)
}

func (api *editorAPI) SaveTab(id types.TabID) error {
	t, err := api.ws.tabs.Get(id)
	if err != nil {
		return err
	}
	return api.ws.docs.Save(t.DocumentID)
}

// --- Event bus ---

// PostEvent queues an event; it is delivered after the running command.
func (api *editorAPI) PostEvent(eventType event.Type, data interface{}) {
	api.ws.events.Post(eventType, data)
}

func (api *editorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.ws.events.Subscribe(eventType, handler)
}

// --- Commands & status ---

func (api *editorAPI) RegisterCommand(name, usage string, cmdFunc plugin.CommandFunc) error {
	return api.ws.commands.Register(name, usage, commands.Func(cmdFunc))
}

func (api *editorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.ws.SetStatusMessage(format, args...)
}

func (api *editorAPI) PluginConfigValue(name, key string) (interface{}, bool) {
	section := api.ws.cfg.Plugins.Section(name)
	if section == nil {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}
