// Package config loads tidecore settings from defaults, a TOML file and
// command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidecore/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config  `toml:"logger"`
	Editor  EditorConfig   `toml:"editor"`
	Tabs    TabsConfig     `toml:"tabs"`
	History HistoryConfig  `toml:"history"`
	Plugins PluginSections `toml:"plugins"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// TabsConfig controls tab switching and history.
type TabsConfig struct {
	// HistoryNavigation makes next/prev tab walk activation history instead
	// of the tab order.
	HistoryNavigation bool `toml:"history_navigation"`
	// ReopenClosed lets history navigation rebuild closed tabs.
	ReopenClosed bool `toml:"reopen_closed"`
	HistoryLimit int  `toml:"history_limit"`
}

// HistoryConfig bounds undo history.
type HistoryConfig struct {
	MaxUndo int `toml:"max_undo"`
}

// PluginSections holds the free-form [plugins.<name>] tables.
type PluginSections map[string]map[string]interface{}

// Section returns the table for plugin name, or nil.
func (p PluginSections) Section(name string) map[string]interface{} {
	if p == nil {
		return nil
	}
	return p[name]
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{LogLevel: "info"},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: DefaultSystemClipboard,
		},
		Tabs: TabsConfig{
			HistoryNavigation: DefaultHistoryNavigation,
			ReopenClosed:      DefaultReopenClosed,
			HistoryLimit:      DefaultHistoryLimit,
		},
		History: HistoryConfig{MaxUndo: DefaultMaxUndo},
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" when that dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// decodeFile decodes filePath over cfg, so keys absent from the file keep
// their current values. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("checking config file %q: %w", filePath, err)
	}
	md, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", filePath, err)
	}
	var unknown []string
	for _, key := range md.Undecoded() {
		// Plugin tables are free-form.
		if len(key) > 0 && key[0] == "plugins" {
			continue
		}
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// validate resets invalid values to defaults and returns a note for each.
func (c *Config) validate() []string {
	defaults := NewDefaultConfig()
	var notes []string
	if c.Editor.TabWidth <= 0 {
		notes = append(notes, fmt.Sprintf("editor.tab_width %d, using %d", c.Editor.TabWidth, defaults.Editor.TabWidth))
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		notes = append(notes, fmt.Sprintf("editor.scroll_off %d, using %d", c.Editor.ScrollOff, defaults.Editor.ScrollOff))
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Tabs.HistoryLimit <= 0 {
		notes = append(notes, fmt.Sprintf("tabs.history_limit %d, using %d", c.Tabs.HistoryLimit, defaults.Tabs.HistoryLimit))
		c.Tabs.HistoryLimit = defaults.Tabs.HistoryLimit
	}
	if c.History.MaxUndo <= 0 {
		notes = append(notes, fmt.Sprintf("history.max_undo %d, using %d", c.History.MaxUndo, defaults.History.MaxUndo))
		c.History.MaxUndo = defaults.History.MaxUndo
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	return notes
}

// Result is a loaded configuration plus what went wrong loading it. The
// logger is not running yet while loading, so problems are reported back
// for the caller to log once it is.
type Result struct {
	Config   *Config
	Path     string
	Unknown  []string
	Adjusted []string
}

// Log reports unknown keys and adjusted values through the logger.
func (r Result) Log() {
	if len(r.Unknown) > 0 {
		logger.Warnf("Config file %q: unrecognized keys: %v", r.Path, r.Unknown)
	}
	for _, note := range r.Adjusted {
		logger.Warnf("Config: invalid %s", note)
	}
}

// LoadConfig builds the configuration from defaults, the file at path (the
// default location when empty) and set flags. A file error still returns
// the default-plus-flags configuration.
func LoadConfig(path string, flags *Flags) (Result, error) {
	res := Result{Config: NewDefaultConfig(), Path: path}
	if res.Path == "" {
		res.Path = DefaultPath()
	}

	var loadErr error
	if res.Path != "" {
		file := NewDefaultConfig()
		unknown, err := decodeFile(res.Path, file)
		if err != nil {
			loadErr = err
		} else {
			res.Config, res.Unknown = file, unknown
		}
	}

	if flags != nil {
		flags.ApplyOverrides(res.Config)
	}
	res.Adjusted = res.Config.validate()
	return res, loadErr
}
