// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mirelk/undoglow/internal/config"
	"github.com/mirelk/undoglow/internal/core"
	"github.com/mirelk/undoglow/internal/logger"
	"github.com/mirelk/undoglow/internal/theme"
	"github.com/mirelk/undoglow/internal/types"
	"github.com/rivo/uniseg"
)

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

// gutterWidth returns the width of the line number gutter, or 0 when the
// screen is too narrow for one.
func gutterWidth(lineCount, screenWidth int) (total, digits int) {
	if lineCount <= 0 {
		lineCount = 1
	}
	digits = int(math.Log10(float64(lineCount))) + 1
	total = digits + 1
	if total >= screenWidth {
		return 0, 0
	}
	return total, digits
}

// DrawBuffer draws the visible portion of the buffer with the given theme.
// The overlay, when active, recolors the cells whose byte offsets fall
// inside its span.
func DrawBuffer(tuiManager *TUI, editor *core.Editor, activeTheme *theme.Theme, overlay *Overlay) {
	if activeTheme == nil {
		activeTheme = &theme.GlowDark
	}

	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	lineNumberStyle := activeTheme.GetStyle(theme.StyleLineNumber)

	var regionSpan types.Span
	var regionStyle tcell.Style
	regionActive := false
	if overlay != nil {
		regionSpan, regionStyle, regionActive = overlay.Resolve(activeTheme)
	}

	width, height := tuiManager.Size()
	viewY, viewX := editor.GetViewport()
	viewHeight := height - config.StatusBarHeight

	if viewHeight <= 0 || width <= 0 {
		return
	}

	buf := editor.GetBuffer()
	lines := buf.Lines()

	gutter, maxDigits := gutterWidth(len(lines), width)
	textAreaWidth := width - gutter

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		for fillX := 0; fillX < width; fillX++ {
			tuiManager.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if gutter > 0 && bufferLineIdx >= 0 && bufferLineIdx < len(lines) {
			numStyle := lineNumberStyle
			if editor.GetCursor().Line == bufferLineIdx {
				numStyle = lineNumberStyle.Bold(true)
			}
			lineNumStr := fmt.Sprintf("%*d", maxDigits, bufferLineIdx+1)
			for i, r := range lineNumStr {
				if i < maxDigits {
					tuiManager.screen.SetContent(i, screenY, r, nil, numStyle)
				}
			}
		}

		if bufferLineIdx < 0 || bufferLineIdx >= len(lines) {
			continue
		}

		lineBytes := lines[bufferLineIdx]
		lineStartOffset := buf.OffsetFor(types.Position{Line: bufferLineIdx, Col: 0})

		gr := uniseg.NewGraphemes(string(lineBytes))
		currentVisualX := 0
		byteInLine := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			clusterBytes := len(gr.Str())
			clusterVisualStart := currentVisualX

			screenX := (clusterVisualStart - viewX) + gutter

			if clusterVisualStart+clusterWidth > viewX && clusterVisualStart < viewX+textAreaWidth {
				currentStyle := defaultStyle
				if regionActive {
					offset := lineStartOffset + byteInLine
					if regionSpan.Contains(offset) {
						currentStyle = regionStyle
					}
				}

				if screenX >= gutter && screenX < width {
					mainRune := clusterRunes[0]
					combining := clusterRunes[1:]

					if mainRune == '\t' {
						tabWidth := config.DefaultTabWidth
						visualScreenX := currentVisualX - viewX + gutter
						spaces := tabWidth - (visualScreenX % tabWidth)
						for i := 0; i < spaces && screenX+i < width; i++ {
							tuiManager.screen.SetContent(screenX+i, screenY, ' ', nil, currentStyle)
						}
					} else {
						tuiManager.screen.SetContent(screenX, screenY, mainRune, combining, currentStyle)
						for cw := 1; cw < clusterWidth; cw++ {
							if screenX+cw < width {
								tuiManager.screen.SetContent(screenX+cw, screenY, ' ', nil, currentStyle)
							}
						}
					}
				}
			}

			currentVisualX += clusterWidth
			byteInLine += clusterBytes
			if currentVisualX >= viewX+textAreaWidth {
				break
			}
		}

		// A highlight that covers the trailing newline extends one cell
		// past the end of the line so deletions of whole lines read as a
		// contiguous block.
		if regionActive {
			endOfLine := lineStartOffset + len(lineBytes)
			if regionSpan.Contains(endOfLine) {
				screenX := (currentVisualX - viewX) + gutter
				if screenX >= gutter && screenX < width {
					tuiManager.screen.SetContent(screenX, screenY, ' ', nil, regionStyle)
				}
			}
		}
	}
}

// DrawCursor positions the terminal cursor using visual width calculations.
func DrawCursor(tuiManager *TUI, editor *core.Editor) {
	cursor := editor.GetCursor()
	viewY, viewX := editor.GetViewport()

	width, height := tuiManager.Size()
	gutter, _ := gutterWidth(editor.GetBuffer().LineCount(), width)

	cursorVisualCol := 0
	lineBytes, err := editor.GetBuffer().Line(cursor.Line)
	if err == nil {
		cursorVisualCol = calculateVisualColumn(lineBytes, cursor.Col)
	} else {
		logger.Debugf("DrawCursor: error getting line %d: %v", cursor.Line, err)
	}

	screenX := (cursorVisualCol - viewX) + gutter
	screenY := cursor.Line - viewY

	viewHeight := height - config.StatusBarHeight
	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 {
		tuiManager.screen.HideCursor()
	} else {
		tuiManager.screen.ShowCursor(screenX, screenY)
	}
}
