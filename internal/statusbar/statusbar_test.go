// internal/statusbar/statusbar_test.go
package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/mirelk/undoglow/internal/types"
)

func TestDefaultDisplayText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetFileInfo("notes.txt", true)
	sb.SetCursorInfo(types.Position{Line: 4, Col: 9})
	sb.SetLastCommand("undo")

	got := sb.defaultDisplayText()
	for _, want := range []string{"notes.txt", "[Modified]", "Line: 5", "Col: 10", "undo"} {
		if !strings.Contains(got, want) {
			t.Errorf("display text %q missing %q", got, want)
		}
	}
}

func TestDefaultDisplayTextNoName(t *testing.T) {
	sb := New(DefaultConfig())
	got := sb.defaultDisplayText()
	if !strings.Contains(got, "[No Name]") {
		t.Errorf("display text %q should show [No Name] for empty path", got)
	}
	if strings.Contains(got, "--  ") {
		t.Errorf("display text %q has a dangling command separator", got)
	}
}

func TestTemporaryMessageExpiry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MessageTimeout = 10 * time.Millisecond
	sb := New(cfg)

	sb.SetTemporaryMessage("saved %s", "notes.txt")
	sb.mu.RLock()
	msg := sb.tempMessage
	sb.mu.RUnlock()
	if msg != "saved notes.txt" {
		t.Errorf("tempMessage = %q", msg)
	}

	sb.ResetTemporaryMessage()
	sb.mu.RLock()
	msg = sb.tempMessage
	sb.mu.RUnlock()
	if msg != "" {
		t.Errorf("tempMessage after reset = %q", msg)
	}
}
