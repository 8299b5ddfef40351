// internal/core/editor.go
package core

import (
	"github.com/mirelk/undoglow/internal/buffer"
	"github.com/mirelk/undoglow/internal/clipboard"
	"github.com/mirelk/undoglow/internal/config"
	"github.com/mirelk/undoglow/internal/history"
	"github.com/mirelk/undoglow/internal/types"
)

// Editor holds the editing state of one surface: buffer, cursor, viewport,
// undo history, and the yank register.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible visual column (0-based)
	viewWidth  int // Cached terminal width
	viewHeight int // Cached terminal height (excluding status bar)
	ScrollOff  int // Lines to keep visible above/below the cursor

	historyMgr   *history.Manager
	clipboardMgr *clipboard.Manager
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buffer:    buf,
		ScrollOff: config.DefaultScrollOff,
	}
	e.historyMgr = history.NewManager(e, config.DefaultMaxHistory)
	e.clipboardMgr = clipboard.NewManager(false)
	return e
}

// SetClipboardManager replaces the clipboard manager (e.g. to enable the
// system clipboard from config).
func (e *Editor) SetClipboardManager(mgr *clipboard.Manager) {
	if mgr != nil {
		e.clipboardMgr = mgr
	}
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetHistoryManager returns the undo/redo manager.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyMgr
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor moves the cursor, clamping to the buffer, and keeps it visible.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = e.clampToBuffer(pos)
	e.ScrollToCursor()
}

// SetViewSize updates the cached view dimensions.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	e.viewHeight = height - config.StatusBarHeight
	if e.viewHeight < 0 {
		e.viewHeight = 0
	}
	e.ScrollToCursor()
}

// GetViewport returns the viewport origin (top line, leftmost visual col).
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// ViewHeight returns the number of text rows in the view.
func (e *Editor) ViewHeight() int {
	return e.viewHeight
}

// SaveBuffer writes the buffer to disk.
func (e *Editor) SaveBuffer(filePath ...string) error {
	path := ""
	if len(filePath) > 0 {
		path = filePath[0]
	}
	return e.buffer.Save(path)
}

// clampToBuffer bounds a position to valid buffer coordinates.
func (e *Editor) clampToBuffer(pos types.Position) types.Position {
	lineCount := e.buffer.LineCount()
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := e.lineRuneCount(pos.Line); pos.Col > max {
		pos.Col = max
	}
	return pos
}
