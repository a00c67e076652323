// Package clipboard holds the copy/paste register, optionally mirrored to
// the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tidecore/internal/logger"
)

// Backend is an external clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System returns the OS clipboard backend, or nil when no clipboard
// utility is available.
func System() Backend {
	if clipboard.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
		return nil
	}
	return systemBackend{}
}

// Manager is the shared register. Writes always land in the register and
// are mirrored to the backend; reads prefer the backend and fall back to
// the register when it fails.
type Manager struct {
	mu       sync.Mutex
	register string
	backend  Backend
}

// NewManager creates a register over backend, which may be nil.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// Write stores text.
func (m *Manager) Write(text string) {
	m.mu.Lock()
	m.register = text
	backend := m.backend
	m.mu.Unlock()

	if backend != nil {
		if err := backend.WriteAll(text); err != nil {
			logger.Warnf("Clipboard: system write failed: %v", err)
		}
	}
	logger.Debugf("Clipboard: stored %d bytes", len(text))
}

// Read returns the current clipboard content.
func (m *Manager) Read() string {
	m.mu.Lock()
	register, backend := m.register, m.backend
	m.mu.Unlock()

	if backend != nil {
		text, err := backend.ReadAll()
		if err == nil {
			return text
		}
		logger.Warnf("Clipboard: system read failed: %v", err)
	}
	return register
}
