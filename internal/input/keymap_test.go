// internal/input/keymap_test.go
package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEventBindings(t *testing.T) {
	p := NewProcessor()

	cases := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"ctrl-z undo", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), CmdUndo},
		{"ctrl-y redo", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), CmdRedo},
		{"ctrl-r redo", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), CmdRedo},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CmdNewline},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), CmdDeleteBackward},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), CmdDeleteForward},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CmdMoveUp},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), CmdMoveLeft},
		{"ctrl-s save", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), CmdSave},
		{"escape quit", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{"unbound f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), CmdUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.ProcessEvent(tc.ev)
			if got.Name != tc.want {
				t.Errorf("ProcessEvent(%s) = %q, want %q", tc.name, got.Name, tc.want)
			}
		})
	}
}

func TestProcessEventRuneInsert(t *testing.T) {
	p := NewProcessor()

	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if got.Name != CmdSelfInsert || got.Rune != 'x' {
		t.Errorf("got %+v, want self-insert 'x'", got)
	}

	// Alt+rune is not a plain insertion.
	got = p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	if got.Name != CmdUnknown {
		t.Errorf("alt+rune mapped to %q, want unbound", got.Name)
	}
}

func TestBindOverridesDefault(t *testing.T) {
	p := NewProcessor()
	p.Bind(tcell.KeyCtrlY, CmdYankLine)

	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl))
	if got.Name != CmdYankLine {
		t.Errorf("rebinding ignored, got %q", got.Name)
	}
}
