package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEvent(t *testing.T) {
	p := NewProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "insert x"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), "insert X"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), ""},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "newline"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "select-left"},
		{"alt left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), "history-back"},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), "undo"},
		{"ctrl page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModCtrl), "next-tab"},
		{"add cursor", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModCtrl|tcell.ModAlt), "add-cursor-below"},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ProcessEvent(tt.ev).String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBindOverrides(t *testing.T) {
	p := NewProcessor()
	p.Bind(Binding{tcell.KeyF5, tcell.ModNone}, Invocation{Command: "tabs"})
	inv := p.ProcessEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	if inv.Command != "tabs" || inv.IsZero() {
		t.Errorf("expected tabs, got %+v", inv)
	}
}
