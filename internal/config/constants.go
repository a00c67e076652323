package config

// Base application details
const AppName = "tidecore"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tidecore.log"

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultSystemClipboard = false

// Tab defaults
const DefaultHistoryNavigation = false
const DefaultReopenClosed = true
const DefaultHistoryLimit = 100

// Undo depth per view
const DefaultMaxUndo = 100
