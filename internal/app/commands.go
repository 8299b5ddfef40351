// internal/app/commands.go
package app

import (
	"github.com/mirelk/undoglow/internal/dispatch"
	"github.com/mirelk/undoglow/internal/event"
	"github.com/mirelk/undoglow/internal/input"
	"github.com/mirelk/undoglow/internal/logger"
)

// registerCommands wires every key-reachable command into the dispatcher.
func (a *App) registerCommands() error {
	commands := map[string]dispatch.CommandFunc{
		input.CmdSelfInsert: func(arg dispatch.Arg) error {
			return a.editor.InsertRune(arg.Rune)
		},
		input.CmdNewline: func(dispatch.Arg) error {
			return a.editor.InsertNewLine(a.autoIndent)
		},
		input.CmdDeleteBackward: func(dispatch.Arg) error {
			return a.editor.DeleteBackward()
		},
		input.CmdDeleteForward: func(dispatch.Arg) error {
			return a.editor.DeleteForward()
		},
		input.CmdUndo: func(dispatch.Arg) error {
			undone, err := a.editor.Undo()
			if err == nil && !undone {
				a.statusBar.SetTemporaryMessage("Nothing to undo")
			}
			return err
		},
		input.CmdRedo: func(dispatch.Arg) error {
			redone, err := a.editor.Redo()
			if err == nil && !redone {
				a.statusBar.SetTemporaryMessage("Nothing to redo")
			}
			return err
		},
		input.CmdYankLine: func(dispatch.Arg) error {
			if err := a.editor.YankLine(); err != nil {
				return err
			}
			a.statusBar.SetTemporaryMessage("Line yanked")
			return nil
		},
		input.CmdPaste: func(dispatch.Arg) error {
			pasted, err := a.editor.Paste()
			if err == nil && !pasted {
				a.statusBar.SetTemporaryMessage("Clipboard empty")
			}
			return err
		},
		input.CmdSave: func(dispatch.Arg) error {
			if err := a.editor.SaveBuffer(); err != nil {
				return err
			}
			path := a.editor.GetBuffer().FilePath()
			a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
			return nil
		},
		input.CmdQuit: func(dispatch.Arg) error {
			a.Quit()
			return nil
		},

		input.CmdMoveUp:    a.moveCommand(-1, 0),
		input.CmdMoveDown:  a.moveCommand(1, 0),
		input.CmdMoveLeft:  a.moveCommand(0, -1),
		input.CmdMoveRight: a.moveCommand(0, 1),
		input.CmdMoveHome: func(dispatch.Arg) error {
			a.editor.Home()
			a.emitCursorMoved()
			return nil
		},
		input.CmdMoveEnd: func(dispatch.Arg) error {
			a.editor.End()
			a.emitCursorMoved()
			return nil
		},
		input.CmdPageUp:   a.pageCommand(-1),
		input.CmdPageDown: a.pageCommand(1),
	}

	for name, fn := range commands {
		if err := a.dispatcher.Register(name, fn); err != nil {
			return err
		}
	}
	logger.Debugf("App: registered %d commands", len(commands))
	return nil
}

func (a *App) moveCommand(deltaLine, deltaCol int) dispatch.CommandFunc {
	return func(dispatch.Arg) error {
		a.editor.MoveCursor(deltaLine, deltaCol)
		a.emitCursorMoved()
		return nil
	}
}

func (a *App) pageCommand(deltaPages int) dispatch.CommandFunc {
	return func(dispatch.Arg) error {
		a.editor.PageMove(deltaPages)
		a.emitCursorMoved()
		return nil
	}
}

func (a *App) emitCursorMoved() {
	a.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{
		NewPosition: a.editor.GetCursor(),
	})
}
