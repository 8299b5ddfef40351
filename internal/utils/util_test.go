// internal/utils/util_test.go
package utils

import "testing"

func TestRuneIndexToByteOffset(t *testing.T) {
	line := []byte("héllo")

	cases := []struct {
		runeIndex int
		want      int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 3}, // é is two bytes
		{5, 6},
		{9, 6}, // past the end clamps
	}
	for _, tc := range cases {
		if got := RuneIndexToByteOffset(line, tc.runeIndex); got != tc.want {
			t.Errorf("RuneIndexToByteOffset(%d) = %d, want %d", tc.runeIndex, got, tc.want)
		}
	}
}

func TestByteOffsetToRuneIndex(t *testing.T) {
	line := []byte("héllo")

	cases := []struct {
		byteOffset int
		want       int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1}, // inside é
		{3, 2},
		{6, 5},
		{99, 5}, // past the end clamps
	}
	for _, tc := range cases {
		if got := ByteOffsetToRuneIndex(line, tc.byteOffset); got != tc.want {
			t.Errorf("ByteOffsetToRuneIndex(%d) = %d, want %d", tc.byteOffset, got, tc.want)
		}
	}
}

func TestRoundTripASCII(t *testing.T) {
	line := []byte("plain ascii")
	for i := 0; i <= len(line); i++ {
		off := RuneIndexToByteOffset(line, i)
		if off != i {
			t.Errorf("ascii offset for rune %d = %d", i, off)
		}
		if back := ByteOffsetToRuneIndex(line, off); back != i {
			t.Errorf("round trip %d -> %d -> %d", i, off, back)
		}
	}
}
