package event

import (
	"sync"

	"github.com/bethropolis/tidecore/internal/logger"
)

// maxFlushRounds bounds how often handlers posting new events can extend a
// single Flush.
const maxFlushRounds = 32

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed and later handlers should not
// see it.
type Handler func(e Event) bool

// Poster queues events for later delivery.
type Poster interface {
	Post(eventType Type, data interface{})
}

// Manager handles event subscriptions and dispatching. Events posted with
// Post are held until Flush, so a handler never runs inside the operation
// that produced its event.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	queue    []Event
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: Handler subscribed to type %v", eventType)
}

// Post queues an event.
func (m *Manager) Post(eventType Type, data interface{}) {
	m.mu.Lock()
	m.queue = append(m.queue, Event{Type: eventType, Data: data})
	m.mu.Unlock()
}

// Pending returns the number of queued events.
func (m *Manager) Pending() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.queue)
}

// Flush delivers queued events in order, including events posted by
// handlers while flushing. It returns the number of events delivered.
func (m *Manager) Flush() int {
	delivered := 0
	for round := 0; round < maxFlushRounds; round++ {
		m.mu.Lock()
		batch := m.queue
		m.queue = nil
		m.mu.Unlock()

		if len(batch) == 0 {
			return delivered
		}
		for _, e := range batch {
			m.Dispatch(e.Type, e.Data)
			delivered++
		}
	}
	if n := m.Pending(); n > 0 {
		logger.Warnf("Event Manager: %d event(s) left queued after %d rounds", n, maxFlushRounds)
	}
	return delivered
}

// Dispatch sends an event to all registered handlers for its type right away.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "dispatching %v to %d handler(s)", eventType, len(handlers))
	for _, handler := range handlers {
		if handler(event) {
			break
		}
	}
}
