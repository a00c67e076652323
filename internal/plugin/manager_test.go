package plugin

import (
	"errors"
	"reflect"
	"testing"
)

type fakePlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(EditorAPI) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestManagerLifecycle(t *testing.T) {
	var log []string
	m := NewManager()
	for _, p := range []*fakePlugin{
		{name: "a", log: &log},
		{name: "broken", initErr: errors.New("boom"), log: &log},
		{name: "b", log: &log},
	} {
		if err := m.Register(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Register(&fakePlugin{name: "a", log: &log}); err == nil {
		t.Error("expected duplicate name to fail")
	}
	if err := m.Register(&fakePlugin{log: &log}); err == nil {
		t.Error("expected empty name to fail")
	}

	m.InitializePlugins(nil)
	if got := m.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected broken plugin dropped, got %v", got)
	}
	if _, ok := m.GetPlugin("broken"); ok {
		t.Error("expected broken plugin unregistered")
	}

	m.ShutdownPlugins()
	want := []string{"init a", "init broken", "init b", "shutdown b", "shutdown a"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected %v, got %v", want, log)
	}
}
