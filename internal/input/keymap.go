// Package input translates tcell key events into command invocations.
package input

import (
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Binding is a key plus the modifiers that matter for it.
type Binding struct {
	Key tcell.Key
	Mod tcell.ModMask
}

// Keymap maps bindings to invocations.
type Keymap map[Binding]Invocation

// Processor translates tcell events into invocations.
type Processor struct {
	keymap Keymap
	prompt Prompt
}

// NewProcessor creates a processor with the default bindings.
func NewProcessor() *Processor {
	return &Processor{keymap: DefaultKeymap()}
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	km := Keymap{
		{tcell.KeyEnter, tcell.ModNone}:      call("newline"),
		{tcell.KeyTab, tcell.ModNone}:        call("insert", "\t"),
		{tcell.KeyBackspace, tcell.ModNone}:  call("backspace"),
		{tcell.KeyBackspace2, tcell.ModNone}: call("backspace"),
		{tcell.KeyDelete, tcell.ModNone}:     call("delete"),
		{tcell.KeyHome, tcell.ModNone}:       call("line-start"),
		{tcell.KeyEnd, tcell.ModNone}:        call("line-end"),
		{tcell.KeyHome, tcell.ModShift}:      call("select-line-start"),
		{tcell.KeyEnd, tcell.ModShift}:       call("select-line-end"),
		{tcell.KeyHome, tcell.ModCtrl}:       call("doc-start"),
		{tcell.KeyEnd, tcell.ModCtrl}:        call("doc-end"),

		{tcell.KeyCtrlZ, tcell.ModNone}:  call("undo"),
		{tcell.KeyCtrlY, tcell.ModNone}:  call("redo"),
		{tcell.KeyCtrlC, tcell.ModNone}:  call("copy"),
		{tcell.KeyCtrlX, tcell.ModNone}:  call("cut"),
		{tcell.KeyCtrlV, tcell.ModNone}:  call("paste"),
		{tcell.KeyCtrlA, tcell.ModNone}:  call("select-all"),
		{tcell.KeyCtrlD, tcell.ModNone}:  call("select-word"),
		{tcell.KeyCtrlL, tcell.ModNone}:  call("select-line"),
		{tcell.KeyCtrlS, tcell.ModNone}:  call("save"),
		{tcell.KeyCtrlN, tcell.ModNone}:  call("new"),
		{tcell.KeyCtrlW, tcell.ModNone}:  call("close"),
		{tcell.KeyEscape, tcell.ModNone}: call("collapse"),
		{tcell.KeyCtrlP, tcell.ModNone}:  call("prompt", string(PromptCommand)),
		{tcell.KeyCtrlF, tcell.ModNone}:  call("prompt", string(PromptSearch)),
		{tcell.KeyF3, tcell.ModNone}:     call("find-next"),
		{tcell.KeyF3, tcell.ModShift}:    call("find-prev"),

		{tcell.KeyPgDn, tcell.ModCtrl}:                call("next-tab"),
		{tcell.KeyPgUp, tcell.ModCtrl}:                call("prev-tab"),
		{tcell.KeyLeft, tcell.ModAlt}:                 call("history-back"),
		{tcell.KeyRight, tcell.ModAlt}:                call("history-forward"),
		{tcell.KeyUp, tcell.ModCtrl | tcell.ModAlt}:   call("add-cursor-above"),
		{tcell.KeyDown, tcell.ModCtrl | tcell.ModAlt}: call("add-cursor-below"),
	}
	for key, dir := range map[tcell.Key]string{
		tcell.KeyLeft:  "left",
		tcell.KeyRight: "right",
		tcell.KeyUp:    "up",
		tcell.KeyDown:  "down",
	} {
		km[Binding{key, tcell.ModNone}] = call(dir)
		km[Binding{key, tcell.ModShift}] = call("select-" + dir)
	}
	return km
}

// Prompt returns the processor's line prompt.
func (p *Processor) Prompt() *Prompt {
	return &p.prompt
}

// Bind replaces the invocation for b.
func (p *Processor) Bind(b Binding, inv Invocation) {
	p.keymap[b] = inv
}

// ProcessEvent returns the invocation for ev, zero when nothing is bound.
// Printable runes without Ctrl or Alt insert themselves.
func (p *Processor) ProcessEvent(ev *tcell.EventKey) Invocation {
	key, mod := ev.Key(), ev.Modifiers()
	// KeyCtrlA..KeyCtrlZ already imply Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}
	mod &^= tcell.ModMeta

	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Invocation{}
		}
		return call("insert", string(ev.Rune()))
	}
	if inv, ok := p.keymap[Binding{key, mod}]; ok {
		return inv
	}
	logger.DebugTagf("input", "unbound key %s", ev.Name())
	return Invocation{}
}
