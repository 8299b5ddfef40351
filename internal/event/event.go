// internal/event/event.go
package event

import "github.com/mirelk/undoglow/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Command Cycle Events
	TypeCycleBegin // Fired once before each dispatched command's body runs

	// Buffer Mutation Events
	TypePreChange  // Fired before text in a span is deleted or replaced
	TypePostChange // Fired after text was inserted into a span

	// Core Editor Events
	TypeBufferSaved // Fired after the buffer is successfully saved
	TypeCursorMoved // Fired when the cursor position changes

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Standard subscriber priorities. Higher priority handlers observe first;
// the highlight coordinator must see mutations before any other subscriber
// so unrelated observers cannot interleave misattributed notifications.
const (
	PriorityCoordinator = 100
	PriorityDefault     = 0
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// CycleBeginData identifies the command whose cycle is starting.
type CycleBeginData struct {
	Command string
}

// PreChangeData describes a span about to be deleted or replaced.
type PreChangeData struct {
	Span types.Span
}

// PostChangeData describes a span that was just inserted. Removed is the
// byte length deleted as part of the same low-level edit; zero means a
// pure insertion.
type PostChangeData struct {
	Span    types.Span
	Removed int
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// AppReadyData and AppQuitData are placeholders for lifecycle payloads.
type AppReadyData struct{}
type AppQuitData struct{}
