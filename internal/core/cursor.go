// internal/core/cursor.go
package core

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// lineRuneCount returns the rune length of a line, 0 on bad index.
func (e *Editor) lineRuneCount(lineIdx int) int {
	lineBytes, err := e.buffer.Line(lineIdx)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(lineBytes)
}

// MoveCursor moves the cursor and adjusts the viewport, wrapping across
// line boundaries on horizontal movement.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	lineCount := e.buffer.LineCount()

	// Horizontal wrap-around at line edges.
	if deltaLine == 0 && lineCount > 0 {
		if deltaCol > 0 && e.Cursor.Col >= e.lineRuneCount(e.Cursor.Line) && e.Cursor.Line < lineCount-1 {
			e.Cursor.Line++
			e.Cursor.Col = 0
			e.ScrollToCursor()
			return
		}
		if deltaCol < 0 && e.Cursor.Col <= 0 && e.Cursor.Line > 0 {
			e.Cursor.Line--
			e.Cursor.Col = e.lineRuneCount(e.Cursor.Line)
			e.ScrollToCursor()
			return
		}
	}

	target := e.Cursor
	target.Line += deltaLine
	target.Col += deltaCol
	e.Cursor = e.clampToBuffer(target)
	e.ScrollToCursor()
}

// PageMove scrolls by whole view heights.
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	e.MoveCursor(deltaPages*e.viewHeight, 0)
}

// Home moves the cursor to the beginning of the current line.
func (e *Editor) Home() {
	e.Cursor.Col = 0
	e.ScrollToCursor()
}

// End moves the cursor to the end of the current line.
func (e *Editor) End() {
	e.Cursor.Col = e.lineRuneCount(e.Cursor.Line)
	e.ScrollToCursor()
}

// calculateVisualColumn computes the visual screen column for a rune index,
// handling multi-width characters and grapheme clusters.
func calculateVisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// ScrollToCursor adjusts the viewport so the cursor stays visible,
// honoring ScrollOff.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if e.Cursor.Line < e.ViewportY+scrollOff {
		e.ViewportY = e.Cursor.Line - scrollOff
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + scrollOff
	}

	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = calculateVisualColumn(lineBytes, e.Cursor.Col)
	}
	if cursorVisualCol < e.ViewportX {
		e.ViewportX = cursorVisualCol
	} else if cursorVisualCol >= e.ViewportX+e.viewWidth {
		e.ViewportX = cursorVisualCol - e.viewWidth + 1
	}

	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}
