// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mirelk/undoglow/internal/types"
	"github.com/mirelk/undoglow/internal/utils"
)

// SliceBuffer stores the text as a slice of lines. Lines are joined with a
// single '\n' in the flat offset space.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
	notifier Notifier
}

// NewSliceBuffer creates an empty SliceBuffer with a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// SetNotifier installs the change notifier. A nil notifier silences
// notifications.
func (sb *SliceBuffer) SetNotifier(n Notifier) {
	sb.notifier = n
}

// Load reads a file into the buffer, replacing existing content. A missing
// file yields an empty buffer bound to that path.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	return nil
}

// Save writes the buffer content to the stored path, or to filePath when
// given, and clears the modified flag.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes returns the full content, lines joined with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range sb.lines {
		buf.Write(line)
		if i < len(sb.lines)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// --- Offset conversion ---

// OffsetFor returns the flat byte offset of a (clamped) position.
func (sb *SliceBuffer) OffsetFor(pos types.Position) int {
	pos = sb.clampPosition(pos)
	offset := 0
	for i := 0; i < pos.Line; i++ {
		offset += len(sb.lines[i]) + 1 // +1 for the joining newline
	}
	return offset + utils.RuneIndexToByteOffset(sb.lines[pos.Line], pos.Col)
}

// PositionFor returns the (clamped) position of a flat byte offset.
func (sb *SliceBuffer) PositionFor(offset int) types.Position {
	if offset < 0 {
		return types.Position{}
	}
	for i, line := range sb.lines {
		if offset <= len(line) {
			return types.Position{Line: i, Col: utils.ByteOffsetToRuneIndex(line, offset)}
		}
		offset -= len(line) + 1
	}
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCount(sb.lines[last])}
}

// TextRange returns a copy of the text in [start, end).
func (sb *SliceBuffer) TextRange(start, end types.Position) ([]byte, error) {
	if end.Before(start) {
		start, end = end, start
	}
	content := sb.Bytes()
	startOff := sb.OffsetFor(start)
	endOff := sb.OffsetFor(end)
	if startOff > len(content) || endOff > len(content) {
		return nil, fmt.Errorf("range %v-%v out of bounds", start, end)
	}
	out := make([]byte, endOff-startOff)
	copy(out, content[startOff:endOff])
	return out, nil
}

// --- Mutation ---

// Insert inserts text at a position. Emits a zero-width pre-change at the
// insertion point, then a post-change covering the inserted bytes.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) error {
	if len(text) == 0 {
		return nil
	}

	pos = sb.clampPosition(pos)
	offset := sb.OffsetFor(pos)

	if sb.notifier != nil {
		sb.notifier.NotifyPreChange(types.Span{Start: offset, End: offset})
	}

	line := sb.lines[pos.Line]
	b := utils.RuneIndexToByteOffset(line, pos.Col)
	head := append([]byte{}, line[:b]...)
	tail := append([]byte{}, line[b:]...)

	parts := bytes.Split(text, []byte("\n"))
	if len(parts) == 1 {
		sb.lines[pos.Line] = append(append(head, parts[0]...), tail...)
	} else {
		newLines := make([][]byte, 0, len(sb.lines)+len(parts)-1)
		newLines = append(newLines, sb.lines[:pos.Line]...)
		newLines = append(newLines, append(head, parts[0]...))
		for i := 1; i < len(parts)-1; i++ {
			lineCopy := make([]byte, len(parts[i]))
			copy(lineCopy, parts[i])
			newLines = append(newLines, lineCopy)
		}
		lastPart := append([]byte{}, parts[len(parts)-1]...)
		newLines = append(newLines, append(lastPart, tail...))
		newLines = append(newLines, sb.lines[pos.Line+1:]...)
		sb.lines = newLines
	}
	sb.modified = true

	if sb.notifier != nil {
		sb.notifier.NotifyPostChange(types.Span{Start: offset, End: offset + len(text)}, 0)
	}
	return nil
}

// Delete removes the text in [start, end). Emits a pre-change covering the
// doomed span, then a zero-width post-change carrying the removed length.
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	if end.Before(start) {
		start, end = end, start
	}
	start = sb.clampPosition(start)
	end = sb.clampPosition(end)

	startOff := sb.OffsetFor(start)
	endOff := sb.OffsetFor(end)
	if startOff >= endOff {
		return nil // Nothing to delete
	}

	if sb.notifier != nil {
		sb.notifier.NotifyPreChange(types.Span{Start: startOff, End: endOff})
	}

	startLine := sb.lines[start.Line]
	head := append([]byte{}, startLine[:utils.RuneIndexToByteOffset(startLine, start.Col)]...)
	endLine := sb.lines[end.Line]
	tail := append([]byte{}, endLine[utils.RuneIndexToByteOffset(endLine, end.Col):]...)

	newLines := make([][]byte, 0, len(sb.lines)-(end.Line-start.Line))
	newLines = append(newLines, sb.lines[:start.Line]...)
	newLines = append(newLines, append(head, tail...))
	newLines = append(newLines, sb.lines[end.Line+1:]...)
	sb.lines = newLines
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}
	sb.modified = true

	if sb.notifier != nil {
		sb.notifier.NotifyPostChange(types.Span{Start: startOff, End: startOff}, endOff-startOff)
	}
	return nil
}

// clampPosition bounds a position to valid buffer coordinates.
func (sb *SliceBuffer) clampPosition(pos types.Position) types.Position {
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := utf8.RuneCount(sb.lines[pos.Line]); pos.Col > max {
		pos.Col = max
	}
	return pos
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
