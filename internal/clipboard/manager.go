// Package clipboard provides the yank register, optionally mirrored to the
// system clipboard.
package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/mirelk/undoglow/internal/logger"
)

// Manager holds yanked text. With system clipboard enabled, writes are
// mirrored out and reads prefer the system clipboard, falling back to the
// internal register when the system side is unavailable.
type Manager struct {
	useSystem bool
	register  []byte
}

// NewManager creates a clipboard manager.
func NewManager(useSystem bool) *Manager {
	if useSystem && sysclip.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported on this platform, using internal register")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// Write stores text in the register (and the system clipboard when enabled).
func (m *Manager) Write(text []byte) {
	m.register = append(m.register[:0], text...)
	if m.useSystem {
		if err := sysclip.WriteAll(string(text)); err != nil {
			logger.Warnf("Clipboard: system write failed: %v", err)
		}
	}
	logger.Debugf("Clipboard: stored %d bytes", len(text))
}

// Read returns the current clipboard content, or nil when empty.
func (m *Manager) Read() []byte {
	if m.useSystem {
		if text, err := sysclip.ReadAll(); err == nil && text != "" {
			return []byte(text)
		}
	}
	if len(m.register) == 0 {
		return nil
	}
	out := make([]byte, len(m.register))
	copy(out, m.register)
	return out
}
