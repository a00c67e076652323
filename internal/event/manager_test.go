package event

import "testing"

func TestPostDefersUntilFlush(t *testing.T) {
	m := NewManager()
	var got []Type
	m.Subscribe(TypeTabOpened, func(e Event) bool {
		got = append(got, e.Type)
		return false
	})

	m.Post(TypeTabOpened, TabData{})
	if len(got) != 0 {
		t.Fatal("handler ran before Flush")
	}
	if n := m.Flush(); n != 1 {
		t.Errorf("expected 1 delivered, got %d", n)
	}
	if len(got) != 1 {
		t.Errorf("expected handler to run once, got %d", len(got))
	}
}

func TestFlushDeliversEventsPostedByHandlers(t *testing.T) {
	m := NewManager()
	var order []Type
	m.Subscribe(TypeTabClosed, func(e Event) bool {
		order = append(order, e.Type)
		m.Post(TypeTabActivated, TabActivatedData{})
		return false
	})
	m.Subscribe(TypeTabActivated, func(e Event) bool {
		order = append(order, e.Type)
		return false
	})

	m.Post(TypeTabClosed, TabData{})
	m.Flush()
	if len(order) != 2 || order[0] != TypeTabClosed || order[1] != TypeTabActivated {
		t.Errorf("expected closed then activated, got %v", order)
	}
	if m.Pending() != 0 {
		t.Error("queue should be empty")
	}
}

func TestConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	second := false
	m.Subscribe(TypeAppReady, func(Event) bool { return true })
	m.Subscribe(TypeAppReady, func(Event) bool { second = true; return false })
	m.Dispatch(TypeAppReady, nil)
	if second {
		t.Error("consumed event reached a later handler")
	}
}

func TestFlushIsBounded(t *testing.T) {
	m := NewManager()
	m.Subscribe(TypeAppQuit, func(Event) bool {
		m.Post(TypeAppQuit, nil)
		return false
	})
	m.Post(TypeAppQuit, nil)
	if n := m.Flush(); n != maxFlushRounds {
		t.Errorf("expected %d deliveries, got %d", maxFlushRounds, n)
	}
}
