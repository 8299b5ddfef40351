package core

import (
	"testing"

	"github.com/mirelk/undoglow/internal/buffer"
	"github.com/mirelk/undoglow/internal/types"
)

func newTestEditor(t *testing.T, content string) *Editor {
	t.Helper()
	buf := buffer.NewSliceBuffer()
	if content != "" {
		if err := buf.Insert(types.Position{}, []byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	e := NewEditor(buf)
	e.SetViewSize(80, 24)
	return e
}

func TestInsertRuneAndUndo(t *testing.T) {
	e := newTestEditor(t, "ab")
	e.SetCursor(types.Position{Line: 0, Col: 1})

	if err := e.InsertRune('x'); err != nil {
		t.Fatal(err)
	}
	if got := string(e.GetBuffer().Bytes()); got != "axb" {
		t.Errorf("after insert: %q", got)
	}
	if e.Cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("cursor after insert: %v", e.Cursor)
	}

	ok, err := e.Undo()
	if err != nil || !ok {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if got := string(e.GetBuffer().Bytes()); got != "ab" {
		t.Errorf("after undo: %q", got)
	}
	if e.Cursor != (types.Position{Line: 0, Col: 1}) {
		t.Errorf("cursor after undo: %v", e.Cursor)
	}

	ok, err = e.Redo()
	if err != nil || !ok {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if got := string(e.GetBuffer().Bytes()); got != "axb" {
		t.Errorf("after redo: %q", got)
	}
}

func TestDeleteBackward(t *testing.T) {
	t.Run("mid line", func(t *testing.T) {
		e := newTestEditor(t, "abc")
		e.SetCursor(types.Position{Line: 0, Col: 2})
		if err := e.DeleteBackward(); err != nil {
			t.Fatal(err)
		}
		if got := string(e.GetBuffer().Bytes()); got != "ac" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("joins lines at column zero", func(t *testing.T) {
		e := newTestEditor(t, "ab\ncd")
		e.SetCursor(types.Position{Line: 1, Col: 0})
		if err := e.DeleteBackward(); err != nil {
			t.Fatal(err)
		}
		if got := string(e.GetBuffer().Bytes()); got != "abcd" {
			t.Errorf("got %q", got)
		}
		if e.Cursor != (types.Position{Line: 0, Col: 2}) {
			t.Errorf("cursor: %v", e.Cursor)
		}
	})

	t.Run("no-op at buffer start", func(t *testing.T) {
		e := newTestEditor(t, "ab")
		e.SetCursor(types.Position{})
		if err := e.DeleteBackward(); err != nil {
			t.Fatal(err)
		}
		if got := string(e.GetBuffer().Bytes()); got != "ab" {
			t.Errorf("got %q", got)
		}
	})
}

func TestDeleteForwardUndoRestores(t *testing.T) {
	e := newTestEditor(t, "abc\ndef")
	e.SetCursor(types.Position{Line: 0, Col: 3})
	// Deletes the newline, joining the lines.
	if err := e.DeleteForward(); err != nil {
		t.Fatal(err)
	}
	if got := string(e.GetBuffer().Bytes()); got != "abcdef" {
		t.Errorf("got %q", got)
	}
	if ok, _ := e.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if got := string(e.GetBuffer().Bytes()); got != "abc\ndef" {
		t.Errorf("after undo: %q", got)
	}
}

type countingNotifier struct {
	pres  int
	posts int
}

func (c *countingNotifier) NotifyPreChange(types.Span)       { c.pres++ }
func (c *countingNotifier) NotifyPostChange(types.Span, int) { c.posts++ }

func TestNewLineAutoIndent(t *testing.T) {
	e := newTestEditor(t, "\tindented")
	e.SetCursor(types.Position{Line: 0, Col: 9})

	counter := &countingNotifier{}
	e.GetBuffer().SetNotifier(counter)

	if err := e.InsertNewLine(true); err != nil {
		t.Fatal(err)
	}
	if got := string(e.GetBuffer().Bytes()); got != "\tindented\n\t" {
		t.Errorf("got %q", got)
	}
	// The newline and the inherited indent are two separate insertions
	// within the same command cycle.
	if counter.posts != 2 {
		t.Errorf("expected 2 post-change notifications, got %d", counter.posts)
	}
	if e.Cursor != (types.Position{Line: 1, Col: 1}) {
		t.Errorf("cursor: %v", e.Cursor)
	}
}

func TestYankPaste(t *testing.T) {
	e := newTestEditor(t, "one\ntwo")
	e.SetCursor(types.Position{Line: 0, Col: 0})
	if err := e.YankLine(); err != nil {
		t.Fatal(err)
	}
	e.SetCursor(types.Position{Line: 1, Col: 0})
	ok, err := e.Paste()
	if err != nil || !ok {
		t.Fatalf("paste: ok=%v err=%v", ok, err)
	}
	if got := string(e.GetBuffer().Bytes()); got != "one\none\ntwo" {
		t.Errorf("got %q", got)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")

	e.SetCursor(types.Position{Line: 0, Col: 2})
	e.MoveCursor(0, 1)
	if e.Cursor != (types.Position{Line: 1, Col: 0}) {
		t.Errorf("right wrap: %v", e.Cursor)
	}

	e.MoveCursor(0, -1)
	if e.Cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("left wrap: %v", e.Cursor)
	}
}
