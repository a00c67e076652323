package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PromptKind says what a submitted prompt line is for.
type PromptKind string

const (
	PromptCommand PromptKind = ":"
	PromptSearch  PromptKind = "/"
)

// ParsePromptKind parses ":" or "/".
func ParsePromptKind(s string) (PromptKind, error) {
	switch k := PromptKind(s); k {
	case PromptCommand, PromptSearch:
		return k, nil
	}
	return "", fmt.Errorf("unknown prompt %q", s)
}

// Prompt is a one-line input mode. While open it takes every key: runes
// append, Backspace erases (closing the prompt when empty), Ctrl+U clears,
// Enter submits and Escape cancels.
type Prompt struct {
	kind   PromptKind
	text   []rune
	active bool
}

// Open starts an empty prompt of kind.
func (p *Prompt) Open(kind PromptKind) {
	p.kind, p.text, p.active = kind, p.text[:0], true
}

func (p *Prompt) Active() bool     { return p.active }
func (p *Prompt) Kind() PromptKind { return p.kind }

// String is the prompt as it should be displayed, "" when closed.
func (p *Prompt) String() string {
	if !p.active {
		return ""
	}
	return string(p.kind) + string(p.text)
}

func (p *Prompt) close() {
	p.active = false
	p.text = p.text[:0]
}

// HandleKey edits the line. It returns the line and true when Enter
// submits it.
func (p *Prompt) HandleKey(ev *tcell.EventKey) (string, bool) {
	if !p.active {
		return "", false
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		line := string(p.text)
		p.close()
		return line, true
	case tcell.KeyEscape:
		p.close()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.text) == 0 {
			p.close()
		} else {
			p.text = p.text[:len(p.text)-1]
		}
	case tcell.KeyCtrlU:
		p.text = p.text[:0]
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			p.text = append(p.text, ev.Rune())
		}
	}
	return "", false
}
