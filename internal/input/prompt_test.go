package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func typeText(p *Prompt, s string) {
	for _, r := range s {
		p.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestPromptSubmit(t *testing.T) {
	var p Prompt
	p.Open(PromptCommand)
	typeText(&p, "opeen")
	p.HandleKey(key(tcell.KeyBackspace2))
	p.HandleKey(key(tcell.KeyBackspace2))
	typeText(&p, "n a.txt")
	if got := p.String(); got != ":open a.txt" {
		t.Errorf("expected %q, got %q", ":open a.txt", got)
	}
	line, ok := p.HandleKey(key(tcell.KeyEnter))
	if !ok || line != "open a.txt" {
		t.Errorf("expected submitted %q, got %q (%v)", "open a.txt", line, ok)
	}
	if p.Active() || p.String() != "" {
		t.Error("expected prompt closed after submit")
	}
}

func TestPromptCancel(t *testing.T) {
	var p Prompt
	p.Open(PromptSearch)
	typeText(&p, "abc")
	p.HandleKey(key(tcell.KeyCtrlU))
	if got := p.String(); got != "/" {
		t.Errorf("expected cleared prompt, got %q", got)
	}
	p.HandleKey(key(tcell.KeyBackspace))
	if p.Active() {
		t.Error("expected backspace on empty prompt to close it")
	}

	p.Open(PromptSearch)
	typeText(&p, "x")
	if _, ok := p.HandleKey(key(tcell.KeyEscape)); ok || p.Active() {
		t.Error("expected escape to cancel")
	}
	if _, ok := p.HandleKey(key(tcell.KeyEnter)); ok {
		t.Error("expected closed prompt to ignore keys")
	}
}

func TestParsePromptKind(t *testing.T) {
	for _, s := range []string{":", "/"} {
		if k, err := ParsePromptKind(s); err != nil || string(k) != s {
			t.Errorf("%q: got %q, %v", s, k, err)
		}
	}
	if _, err := ParsePromptKind("?"); err == nil {
		t.Error("expected error for unknown prompt")
	}
}
