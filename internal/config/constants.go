package config

import "time"

// Base application details
const AppName = "undoglow"
const ConfigDirName = "undoglow"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "undoglow.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultMaxHistory = 100
const SystemClipboard = false

// Change highlight defaults. The flash duration is latency added to every
// qualifying deletion, so it stays well under perceptible sluggishness.
const DefaultMinEditSize = 2
const DefaultFlashDuration = 20 * time.Millisecond
const DefaultFadeDuration = 750 * time.Millisecond
const DefaultDeleteBg = "#7f3535" // diff-removed red
const DefaultInsertBg = "#2f6b3a" // diff-added green

// DefaultTargetCommands are the commands whose edits get highlighted.
func DefaultTargetCommands() []string {
	return []string{"undo", "redo"}
}
