// internal/buffer/buffer.go
package buffer

import "github.com/mirelk/undoglow/internal/types"

// Notifier receives change notifications from the buffer. For every
// mutation the buffer emits NotifyPreChange for the span about to be
// altered, performs the edit, then emits NotifyPostChange for the span the
// new text occupies (removed is the byte length deleted by the same edit;
// zero means pure insertion). Both run synchronously on the mutating
// goroutine, pre strictly before post.
type Notifier interface {
	NotifyPreChange(span types.Span)
	NotifyPostChange(span types.Span, removed int)
}

// Buffer defines the interface for text buffer operations.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	FilePath() string
	IsModified() bool

	Insert(pos types.Position, text []byte) error
	Delete(start, end types.Position) error
	TextRange(start, end types.Position) ([]byte, error)

	// Offset conversion between positions and flat byte offsets, the
	// coordinate space of change notifications and highlight spans.
	OffsetFor(pos types.Position) int
	PositionFor(offset int) types.Position

	SetNotifier(n Notifier)
}
