// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Command names understood by the dispatcher. The input layer produces
// these; the app registers matching handlers.
const (
	CmdUnknown        = ""
	CmdSelfInsert     = "self-insert"
	CmdNewline        = "newline"
	CmdDeleteBackward = "delete-backward"
	CmdDeleteForward  = "delete-forward"
	CmdUndo           = "undo"
	CmdRedo           = "redo"
	CmdYankLine       = "yank-line"
	CmdPaste          = "paste"
	CmdSave           = "save"
	CmdQuit           = "quit"
	CmdMoveUp         = "move-up"
	CmdMoveDown       = "move-down"
	CmdMoveLeft       = "move-left"
	CmdMoveRight      = "move-right"
	CmdMoveHome       = "move-home"
	CmdMoveEnd        = "move-end"
	CmdPageUp         = "page-up"
	CmdPageDown       = "page-down"
)

// KeyCommand is a decoded input event: the command to dispatch plus the
// rune payload for self-insert.
type KeyCommand struct {
	Name string
	Rune rune
}

// Keymap maps special keys (arrows, Enter, control chords) to commands.
type Keymap map[tcell.Key]string

// Processor translates tcell key events into KeyCommands.
type Processor struct {
	keymap Keymap
}

// NewProcessor creates a processor with the default keybindings.
func NewProcessor() *Processor {
	p := &Processor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

func (p *Processor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = CmdMoveUp
	p.keymap[tcell.KeyDown] = CmdMoveDown
	p.keymap[tcell.KeyLeft] = CmdMoveLeft
	p.keymap[tcell.KeyRight] = CmdMoveRight
	p.keymap[tcell.KeyPgUp] = CmdPageUp
	p.keymap[tcell.KeyPgDn] = CmdPageDown
	p.keymap[tcell.KeyHome] = CmdMoveHome
	p.keymap[tcell.KeyEnd] = CmdMoveEnd

	p.keymap[tcell.KeyEnter] = CmdNewline
	p.keymap[tcell.KeyBackspace] = CmdDeleteBackward
	p.keymap[tcell.KeyBackspace2] = CmdDeleteBackward
	p.keymap[tcell.KeyDelete] = CmdDeleteForward

	// tcell reports Ctrl chords as dedicated key codes.
	p.keymap[tcell.KeyCtrlZ] = CmdUndo
	p.keymap[tcell.KeyCtrlY] = CmdRedo
	p.keymap[tcell.KeyCtrlR] = CmdRedo
	p.keymap[tcell.KeyCtrlK] = CmdYankLine
	p.keymap[tcell.KeyCtrlV] = CmdPaste
	p.keymap[tcell.KeyCtrlS] = CmdSave
	p.keymap[tcell.KeyCtrlQ] = CmdQuit
	p.keymap[tcell.KeyCtrlC] = CmdQuit
	p.keymap[tcell.KeyEscape] = CmdQuit
}

// Bind replaces or adds a binding. Used for config driven remapping.
func (p *Processor) Bind(key tcell.Key, command string) {
	p.keymap[key] = command
}

// ProcessEvent takes a tcell key event and returns the command to dispatch.
// An empty Name means the event has no binding.
func (p *Processor) ProcessEvent(ev *tcell.EventKey) KeyCommand {
	key := ev.Key()
	mod := ev.Modifiers()

	// Ctrl chords arrive with ModCtrl set alongside the dedicated key code.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if name, ok := p.keymap[key]; ok {
			return KeyCommand{Name: name}
		}
	}

	if key == tcell.KeyRune && mod == tcell.ModNone {
		return KeyCommand{Name: CmdSelfInsert, Rune: ev.Rune()}
	}

	return KeyCommand{Name: CmdUnknown}
}
