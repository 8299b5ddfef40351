// internal/utils/util.go
package utils

import "unicode/utf8"

// RuneIndexToByteOffset converts a rune index within a line to a byte
// offset. An index past the end of the line clamps to len(line).
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	for i := 0; i < runeIndex && byteOffset < len(line); i++ {
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
	}
	return byteOffset
}

// ByteOffsetToRuneIndex converts a byte offset within a line to a rune
// index. An offset inside a multi-byte rune counts the runes before it.
func ByteOffsetToRuneIndex(line []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	runeIndex := 0
	currentOffset := 0
	for currentOffset < byteOffset {
		_, size := utf8.DecodeRune(line[currentOffset:])
		if currentOffset+size > byteOffset {
			break
		}
		currentOffset += size
		runeIndex++
	}
	return runeIndex
}
