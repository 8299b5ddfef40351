// internal/core/edit.go
package core

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/mirelk/undoglow/internal/history"
	"github.com/mirelk/undoglow/internal/types"
)

// positionAfterInsert computes where text ends when inserted at start.
func positionAfterInsert(start types.Position, text []byte) types.Position {
	parts := bytes.Split(text, []byte("\n"))
	if len(parts) == 1 {
		return types.Position{Line: start.Line, Col: start.Col + utf8.RuneCount(text)}
	}
	return types.Position{
		Line: start.Line + len(parts) - 1,
		Col:  utf8.RuneCount(parts[len(parts)-1]),
	}
}

// insertAndRecord performs an insertion at the cursor and records it.
func (e *Editor) insertAndRecord(text []byte) error {
	pos := e.Cursor
	if err := e.buffer.Insert(pos, text); err != nil {
		return err
	}
	end := positionAfterInsert(pos, text)
	e.historyMgr.RecordChange(history.Change{
		Type:          history.InsertAction,
		Text:          append([]byte{}, text...),
		StartPosition: pos,
		EndPosition:   end,
		CursorBefore:  pos,
	})
	e.SetCursor(end)
	return nil
}

// deleteAndRecord removes [start, end), recording the removed text.
func (e *Editor) deleteAndRecord(start, end types.Position) error {
	removed, err := e.buffer.TextRange(start, end)
	if err != nil {
		return fmt.Errorf("capturing text for undo: %w", err)
	}
	if err := e.buffer.Delete(start, end); err != nil {
		return err
	}
	e.historyMgr.RecordChange(history.Change{
		Type:          history.DeleteAction,
		Text:          removed,
		StartPosition: start,
		EndPosition:   end,
		CursorBefore:  e.Cursor,
	})
	e.SetCursor(start)
	return nil
}

// InsertRune inserts a single character at the cursor.
func (e *Editor) InsertRune(r rune) error {
	return e.insertAndRecord([]byte(string(r)))
}

// InsertNewLine breaks the current line at the cursor. With autoIndent the
// new line inherits the previous line's leading whitespace as a second
// insertion within the same command cycle.
func (e *Editor) InsertNewLine(autoIndent bool) error {
	prevLine := e.Cursor.Line
	if err := e.insertAndRecord([]byte("\n")); err != nil {
		return err
	}
	if !autoIndent {
		return nil
	}
	lineBytes, err := e.buffer.Line(prevLine)
	if err != nil {
		return nil
	}
	indent := leadingWhitespace(lineBytes)
	if len(indent) == 0 {
		return nil
	}
	return e.insertAndRecord(indent)
}

// DeleteBackward removes the character before the cursor, joining lines at
// column zero.
func (e *Editor) DeleteBackward() error {
	cur := e.Cursor
	if cur.Col > 0 {
		return e.deleteAndRecord(types.Position{Line: cur.Line, Col: cur.Col - 1}, cur)
	}
	if cur.Line > 0 {
		start := types.Position{Line: cur.Line - 1, Col: e.lineRuneCount(cur.Line - 1)}
		return e.deleteAndRecord(start, types.Position{Line: cur.Line, Col: 0})
	}
	return nil // Beginning of buffer
}

// DeleteForward removes the character under the cursor, joining lines at
// end of line.
func (e *Editor) DeleteForward() error {
	cur := e.Cursor
	if cur.Col < e.lineRuneCount(cur.Line) {
		return e.deleteAndRecord(cur, types.Position{Line: cur.Line, Col: cur.Col + 1})
	}
	if cur.Line < e.buffer.LineCount()-1 {
		return e.deleteAndRecord(cur, types.Position{Line: cur.Line + 1, Col: 0})
	}
	return nil // End of buffer
}

// YankLine copies the current line (with its newline) into the clipboard.
func (e *Editor) YankLine() error {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		return err
	}
	text := make([]byte, 0, len(lineBytes)+1)
	text = append(text, lineBytes...)
	text = append(text, '\n')
	e.clipboardMgr.Write(text)
	return nil
}

// Paste inserts the clipboard content at the cursor. Returns false when the
// clipboard is empty.
func (e *Editor) Paste() (bool, error) {
	text := e.clipboardMgr.Read()
	if len(text) == 0 {
		return false, nil
	}
	if err := e.insertAndRecord(text); err != nil {
		return false, err
	}
	return true, nil
}

// Undo reverts the most recent edit. Returns false when there is nothing
// to undo.
func (e *Editor) Undo() (bool, error) {
	return e.historyMgr.Undo()
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo() (bool, error) {
	return e.historyMgr.Redo()
}

func leadingWhitespace(line []byte) []byte {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	out := make([]byte, i)
	copy(out, line[:i])
	return out
}
