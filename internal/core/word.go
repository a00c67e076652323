package core

import (
	"unicode"
	"unicode/utf8"
)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type runeClass int

const (
	classSpace runeClass = iota
	classWord
	classPunct
)

func classOf(r rune) runeClass {
	switch {
	case isWordRune(r):
		return classWord
	case unicode.IsSpace(r):
		return classSpace
	}
	return classPunct
}

// wordRange returns the byte columns of the word at col in line. A word
// char at col expands both ways; otherwise a word ending at col is taken;
// otherwise the run of same-class characters at col.
func wordRange(line string, col int) (int, int) {
	col = max(0, min(col, len(line)))
	if col < len(line) {
		r, _ := utf8.DecodeRuneInString(line[col:])
		if isWordRune(r) {
			return expand(line, col, isWordRune)
		}
	}
	if col > 0 {
		r, _ := utf8.DecodeLastRuneInString(line[:col])
		if isWordRune(r) {
			return expand(line, col, isWordRune)
		}
	}
	if col < len(line) {
		r, _ := utf8.DecodeRuneInString(line[col:])
		cls := classOf(r)
		return expand(line, col, func(r rune) bool { return classOf(r) == cls })
	}
	return col, col
}

func expand(line string, col int, in func(rune) bool) (int, int) {
	start := col
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:start])
		if !in(r) {
			break
		}
		start -= size
	}
	end := col
	for end < len(line) {
		r, size := utf8.DecodeRuneInString(line[end:])
		if !in(r) {
			break
		}
		end += size
	}
	return start, end
}
