// Package utils holds byte, rune and grapheme helpers for line text.
package utils

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in line.
// Returns -1 if runeIndex is past the end.
func RuneIndexToByteOffset(line string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	current := 0
	for offset := range line {
		if current == runeIndex {
			return offset
		}
		current++
	}
	if current == runeIndex {
		return len(line)
	}
	return -1
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in line.
// An offset inside a multi-byte rune counts only the runes before it.
func ByteOffsetToRuneIndex(line string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return utf8.RuneCountInString(line[:byteOffset])
}

// SnapToRuneStart moves col back to the start of the rune containing it.
func SnapToRuneStart(line string, col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(line) {
		return len(line)
	}
	for col > 0 && !utf8.RuneStart(line[col]) {
		col--
	}
	return col
}

// NextGraphemeBoundary returns the byte column just past the grapheme cluster
// starting at or containing col. At end of line it returns len(line).
func NextGraphemeBoundary(line string, col int) int {
	if col >= len(line) {
		return len(line)
	}
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		_, to := gr.Positions()
		if to > col {
			return to
		}
	}
	return len(line)
}

// PrevGraphemeBoundary returns the byte column where the grapheme cluster
// ending at or containing col begins. At column 0 it returns 0.
func PrevGraphemeBoundary(line string, col int) int {
	if col <= 0 {
		return 0
	}
	if col > len(line) {
		col = len(line)
	}
	prev := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		from, to := gr.Positions()
		if to >= col {
			return from
		}
		prev = to
	}
	return prev
}
