// Package wordcount adds the wc command.
package wordcount

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tidecore/internal/plugin"
	"github.com/rivo/uniseg"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts lines, words, characters and bytes of the active buffer.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", "", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) executeWordCount(args []string) error {
	text := p.api.BufferText()
	s := Count(text)
	s.Lines = p.api.BufferLineCount()
	p.api.SetStatusMessage("Lines: %d, Words: %d, Chars: %d, Bytes: %d", s.Lines, s.Words, s.Graphemes, s.Bytes)
	return nil
}

// Stats is the result of Count.
type Stats struct {
	Lines     int
	Words     int
	Graphemes int
	Bytes     int
}

// Count computes word, grapheme and byte counts of text. A word is a
// Unicode word segment holding at least one letter or digit.
func Count(text string) Stats {
	s := Stats{Bytes: len(text), Graphemes: uniseg.GraphemeClusterCount(text)}
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(word) {
			s.Words++
		}
	}
	return s
}

func isWord(seg string) bool {
	for len(seg) > 0 {
		r, size := utf8.DecodeRuneInString(seg)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		seg = seg[size:]
	}
	return false
}
