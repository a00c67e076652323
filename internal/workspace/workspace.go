// Package workspace is the single owner of all editing state. Every
// command runs against it to completion and then the queued events are
// delivered.
package workspace

import (
	"errors"
	"fmt"
	"io"

	"github.com/bethropolis/tidecore/internal/clipboard"
	"github.com/bethropolis/tidecore/internal/commands"
	"github.com/bethropolis/tidecore/internal/config"
	"github.com/bethropolis/tidecore/internal/core/find"
	"github.com/bethropolis/tidecore/internal/document"
	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/input"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/plugin"
	"github.com/bethropolis/tidecore/internal/tab"
	"github.com/bethropolis/tidecore/internal/view"
	"github.com/gdamore/tcell/v2"
)

// ErrNoActiveTab is returned by editing commands when no tab is open.
var ErrNoActiveTab = errors.New("no active tab")

// Options are the collaborators a workspace is built with. Zero values
// select the defaults: OS file I/O, the system clipboard when the config
// asks for it, discarded output and the built-in plugins.
type Options struct {
	FileIO    document.FileIO
	Clipboard clipboard.Backend
	Output    io.Writer
	Plugins   []plugin.Plugin
}

// Workspace encapsulates the managers behind one editing session.
type Workspace struct {
	cfg       *config.Config
	events    *event.Manager
	docs      *document.Manager
	views     *view.Manager
	tabs      *tab.Manager
	clipboard *clipboard.Manager
	commands  *commands.Registry
	input     *input.Processor
	plugins   *plugin.Manager
	api       plugin.EditorAPI
	out       io.Writer
	search    *find.Finder

	statusMessage string
	width, height int
}

// New creates a workspace from cfg, registers the built-in commands and
// initializes plugins.
func New(cfg *config.Config, opts Options) *Workspace {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	backend := opts.Clipboard
	if backend == nil && cfg.Editor.SystemClipboard {
		backend = clipboard.System()
	}
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	events := event.NewManager()
	docs := document.NewManager(opts.FileIO, events)
	views := view.NewManager(view.Options{
		MaxUndo:   cfg.History.MaxUndo,
		TabWidth:  cfg.Editor.TabWidth,
		ScrollOff: cfg.Editor.ScrollOff,
	})
	tabs := tab.NewManager(docs, views, tab.Options{
		HistoryNavigation: cfg.Tabs.HistoryNavigation,
		ReopenClosed:      cfg.Tabs.ReopenClosed,
		HistoryLimit:      cfg.Tabs.HistoryLimit,
	}, events)
	w := &Workspace{
		cfg:       cfg,
		events:    events,
		docs:      docs,
		views:     views,
		tabs:      tabs,
		clipboard: clipboard.NewManager(backend),
		commands:  commands.NewRegistry(),
		input:     input.NewProcessor(),
		plugins:   plugin.NewManager(),
		out:       out,
	}
	w.api = newEditorAPI(w)

	w.registerCommands()
	w.subscribe()

	plugins := opts.Plugins
	if plugins == nil {
		plugins = builtinPlugins()
	}
	if err := registerPlugins(w.plugins, plugins); err != nil {
		logger.Warnf("Workspace: %v", err)
	}
	w.plugins.InitializePlugins(w.api)

	w.events.Post(event.TypeAppReady, nil)
	w.events.Flush()
	return w
}

func (w *Workspace) Config() *config.Config        { return w.cfg }
func (w *Workspace) Events() *event.Manager        { return w.events }
func (w *Workspace) Documents() *document.Manager  { return w.docs }
func (w *Workspace) Views() *view.Manager          { return w.views }
func (w *Workspace) Tabs() *tab.Manager            { return w.tabs }
func (w *Workspace) Commands() *commands.Registry  { return w.commands }
func (w *Workspace) Clipboard() *clipboard.Manager { return w.clipboard }
func (w *Workspace) Plugins() *plugin.Manager      { return w.plugins }

// Status returns the last status message.
func (w *Workspace) Status() string {
	return w.statusMessage
}

// SetStatusMessage updates the status message.
func (w *Workspace) SetStatusMessage(format string, args ...interface{}) {
	w.statusMessage = fmt.Sprintf(format, args...)
	logger.DebugTagf("status", "%s", w.statusMessage)
}

// Execute runs one command line and delivers the events it queued.
func (w *Workspace) Execute(line string) error {
	defer w.events.Flush()
	return w.commands.Execute(line)
}

// Run runs a command by name and delivers the events it queued.
func (w *Workspace) Run(name string, args ...string) error {
	defer w.events.Flush()
	return w.commands.Run(name, args)
}

// HandleKey translates a key event through the keymap and runs the bound
// command. It reports whether a command ran.
func (w *Workspace) HandleKey(ev *tcell.EventKey) (bool, error) {
	w.events.Post(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
	if p := w.input.Prompt(); p.Active() {
		return true, w.handlePromptKey(p, ev)
	}
	inv := w.input.ProcessEvent(ev)
	if inv.IsZero() {
		w.events.Flush()
		return false, nil
	}
	return true, w.Run(inv.Command, inv.Args...)
}

// handlePromptKey feeds ev to the open prompt and runs the line once it
// is submitted. A search prompt submitted empty repeats the last search.
func (w *Workspace) handlePromptKey(p *input.Prompt, ev *tcell.EventKey) error {
	kind := p.Kind()
	line, submitted := p.HandleKey(ev)
	if !submitted {
		w.SetStatusMessage("%s", p.String())
		w.events.Flush()
		return nil
	}
	w.SetStatusMessage("")
	if kind == input.PromptSearch {
		if line == "" {
			return w.Run("find-next")
		}
		return w.Run("find", line)
	}
	return w.Execute(line)
}

// Resize sets the viewport size of every view created from now on and of
// the active view.
func (w *Workspace) Resize(width, height int) {
	w.width, w.height = width, height
	if v := w.tabs.ActiveView(); v != nil {
		v.SetSize(width, height)
	}
}

// Close shuts plugins down. Unsaved changes are reported, not saved.
func (w *Workspace) Close() {
	for _, info := range w.tabs.Tabs() {
		if info.Modified {
			logger.Warnf("Workspace: closing with unsaved changes in %s", info.Title)
		}
	}
	w.events.Post(event.TypeAppQuit, nil)
	w.events.Flush()
	w.plugins.ShutdownPlugins()
}
