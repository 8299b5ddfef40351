// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mirelk/undoglow/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`    // Settings under [logger]
	Editor    EditorConfig    `toml:"editor"`    // Settings under [editor]
	Highlight HighlightConfig `toml:"highlight"` // Settings under [highlight]
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	AutoIndent      bool `toml:"auto_indent"`
}

// HighlightConfig holds the change highlight settings.
type HighlightConfig struct {
	// TargetCommands are the command names whose edits get highlighted.
	TargetCommands []string `toml:"target_commands"`
	// MinEditSize suppresses edits smaller than this many bytes.
	MinEditSize int `toml:"min_edit_size"`
	// FlashDurationMs is how long the pre-deletion flash blocks, in ms.
	FlashDurationMs int `toml:"flash_duration_ms"`
	// FadeDurationMs is how long the insert highlight takes to fade, in ms.
	FadeDurationMs int `toml:"fade_duration_ms"`
	// DeleteBg and InsertBg are hex background colors for the two styles.
	DeleteBg string `toml:"delete_bg"`
	InsertBg string `toml:"insert_bg"`
}

// FlashDuration returns the configured flash duration.
func (h HighlightConfig) FlashDuration() time.Duration {
	return time.Duration(h.FlashDurationMs) * time.Millisecond
}

// FadeDuration returns the configured fade duration.
func (h HighlightConfig) FadeDuration() time.Duration {
	return time.Duration(h.FadeDurationMs) * time.Millisecond
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			AutoIndent:      true,
		},
		Highlight: HighlightConfig{
			TargetCommands:  DefaultTargetCommands(),
			MinEditSize:     DefaultMinEditSize,
			FlashDurationMs: int(DefaultFlashDuration / time.Millisecond),
			FadeDurationMs:  int(DefaultFadeDuration / time.Millisecond),
			DeleteBg:        DefaultDeleteBg,
			InsertBg:        DefaultInsertBg,
		},
	}
}

// loadFromFile decodes a TOML file over cfg, so keys the file omits keep
// their current (default) values. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		logger.Warnf("Config: unrecognized key '%s' in %s", key, filePath)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if len(c.Highlight.TargetCommands) == 0 {
		c.Highlight.TargetCommands = defaults.Highlight.TargetCommands
	}
	if c.Highlight.MinEditSize <= 0 {
		c.Highlight.MinEditSize = defaults.Highlight.MinEditSize
	}
	if c.Highlight.FlashDurationMs <= 0 {
		c.Highlight.FlashDurationMs = defaults.Highlight.FlashDurationMs
	}
	if c.Highlight.FadeDurationMs <= 0 {
		c.Highlight.FadeDurationMs = defaults.Highlight.FadeDurationMs
	}
	if c.Highlight.DeleteBg == "" {
		c.Highlight.DeleteBg = defaults.Highlight.DeleteBg
	}
	if c.Highlight.InsertBg == "" {
		c.Highlight.InsertBg = defaults.Highlight.InsertBg
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if configDir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			if err := loadFromFile(effectivePath, cfg); err != nil {
				loadErr = err
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
