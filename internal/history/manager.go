// internal/history/manager.go
package history

import (
	"fmt"
	"sync"

	"github.com/mirelk/undoglow/internal/buffer"
	"github.com/mirelk/undoglow/internal/logger"
	"github.com/mirelk/undoglow/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the
// editor. Undo and redo replay changes through the buffer, so the buffer's
// own change notifications fire along the normal path.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	SetCursor(types.Position)
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // Index of the next change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}
	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	m.currentIndex = len(m.changes)

	logger.Debugf("History: Recorded %v change. Index: %d, Count: %d", change.Type, m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change. Returns false when there is
// nothing to undo.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex <= 0 {
		logger.Debugf("History: Nothing to undo.")
		return false, nil
	}

	m.currentIndex--
	change := m.changes[m.currentIndex]
	buf := m.editor.GetBuffer()

	var err error
	switch change.Type {
	case InsertAction:
		// Undo an insert by deleting the inserted text.
		err = buf.Delete(change.StartPosition, change.EndPosition)
	case DeleteAction:
		// Undo a delete by inserting the deleted text back.
		err = buf.Insert(change.StartPosition, change.Text)
	}
	if err != nil {
		m.currentIndex++ // Revert index change on error
		return false, fmt.Errorf("undo failed: %w", err)
	}

	m.editor.SetCursor(change.CursorBefore)
	logger.Debugf("History: Undid %v change at %v.", change.Type, change.StartPosition)
	return true, nil
}

// Redo reapplies the last undone change. Returns false when there is
// nothing to redo.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex >= len(m.changes) {
		logger.Debugf("History: Nothing to redo.")
		return false, nil
	}

	change := m.changes[m.currentIndex]
	buf := m.editor.GetBuffer()

	var err error
	var finalCursor types.Position
	switch change.Type {
	case InsertAction:
		err = buf.Insert(change.StartPosition, change.Text)
		finalCursor = change.EndPosition
	case DeleteAction:
		err = buf.Delete(change.StartPosition, change.EndPosition)
		finalCursor = change.StartPosition
	}
	if err != nil {
		return false, fmt.Errorf("redo failed: %w", err)
	}

	m.editor.SetCursor(finalCursor)
	m.currentIndex++
	logger.Debugf("History: Redid %v change. New currentIndex=%d", change.Type, m.currentIndex)
	return true, nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}
