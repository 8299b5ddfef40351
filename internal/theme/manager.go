// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mirelk/undoglow/internal/config"
	"github.com/mirelk/undoglow/internal/logger"
)

// Manager holds loaded themes and tracks the active one.
type Manager struct {
	themes      map[string]*Theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager creates a manager with the built-in theme plus any TOML themes
// found under the user config directory.
func NewManager() *Manager {
	mgr := &Manager{themes: make(map[string]*Theme)}

	if configDir, err := os.UserConfigDir(); err == nil {
		mgr.themesDir = filepath.Join(configDir, config.ConfigDirName, "themes")
	} else {
		logger.Warnf("Could not find user config dir, custom themes disabled: %v", err)
	}

	mgr.themes[strings.ToLower(GlowDark.Name)] = &GlowDark

	if mgr.themesDir != "" {
		if err := mgr.loadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", mgr.themesDir, err)
		}
	}

	mgr.activeTheme = mgr.themes[strings.ToLower(GlowDark.Name)]
	return mgr
}

// loadThemesFromDir scans the themes directory for .toml files. A missing
// directory is not an error.
func (m *Manager) loadThemesFromDir() error {
	if _, err := os.Stat(m.themesDir); os.IsNotExist(err) {
		return nil
	}

	files, err := os.ReadDir(m.themesDir)
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		t, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}
		key := strings.ToLower(t.Name)
		if existing, ok := m.themes[key]; ok {
			logger.Warnf("Theme '%s' from '%s' overrides '%s'", t.Name, filePath, existing.Name)
		}
		m.themes[key] = t
		loaded++
	}
	if loaded > 0 {
		logger.Infof("Loaded %d custom themes from %s", loaded, m.themesDir)
	}
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme activates a theme by name, case-insensitive.
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != t {
		m.activeTheme = t
		logger.Infof("Active theme set to: %s", t.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	return names
}

// ApplyHighlightColors overrides the active theme's highlight backgrounds
// with the configured hex colors. Invalid colors keep the theme's values.
func (m *Manager) ApplyHighlightColors(deleteBg, insertBg string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	apply := func(styleName, hex string) {
		if hex == "" {
			return
		}
		color, err := ParseColor(hex)
		if err != nil {
			logger.Warnf("Invalid highlight color '%s' for %s: %v", hex, styleName, err)
			return
		}
		base := m.activeTheme.Styles[StyleDefault]
		m.activeTheme.Styles[styleName] = base.Background(color)
	}
	apply(StyleHighlightDelete, deleteBg)
	apply(StyleHighlightInsert, insertBg)
}
