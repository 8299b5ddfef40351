// internal/app/events.go
package app

import (
	"github.com/mirelk/undoglow/internal/event"
	"github.com/mirelk/undoglow/internal/types"
)

// busNotifier forwards buffer change notifications onto the event bus,
// where the highlight coordinator observes them ahead of other handlers.
type busNotifier struct {
	events *event.Manager
}

func (n *busNotifier) NotifyPreChange(span types.Span) {
	n.events.Dispatch(event.TypePreChange, event.PreChangeData{Span: span})
}

func (n *busNotifier) NotifyPostChange(span types.Span, removed int) {
	n.events.Dispatch(event.TypePostChange, event.PostChangeData{Span: span, Removed: removed})
}

// subscribeStatusHandlers wires status bar updates to bus events.
func (a *App) subscribeStatusHandlers() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeCycleBegin, a.handleCycleBeginForStatus)
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false
}

func (a *App) handleCycleBeginForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CycleBeginData); ok {
		a.statusBar.SetLastCommand(data.Command)
	}
	return false
}
