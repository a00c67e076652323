package history

import "github.com/bethropolis/tidecore/internal/logger"

const DefaultMaxHistory = 100

// Manager holds the undo and redo stacks.
type Manager struct {
	undo       []*Transaction
	redo       []*Transaction
	maxHistory int
}

// NewManager creates a history manager keeping at most maxHistory
// transactions on the undo stack.
func NewManager(maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{maxHistory: maxHistory}
}

// Push records a committed transaction and clears the redo stack.
// Transactions without edits are ignored.
func (m *Manager) Push(tx *Transaction) bool {
	if tx == nil || tx.Empty() {
		return false
	}
	m.undo = append(m.undo, tx)
	if len(m.undo) > m.maxHistory {
		m.undo = m.undo[len(m.undo)-m.maxHistory:]
	}
	m.redo = m.redo[:0]
	logger.DebugTagf("history", "recorded %d edit(s), undo=%d", len(tx.Edits), len(m.undo))
	return true
}

// PopUndo removes the newest transaction and moves it to the redo stack.
func (m *Manager) PopUndo() (*Transaction, bool) {
	n := len(m.undo)
	if n == 0 {
		logger.DebugTagf("history", "nothing to undo")
		return nil, false
	}
	tx := m.undo[n-1]
	m.undo = m.undo[:n-1]
	m.redo = append(m.redo, tx)
	return tx, true
}

// PopRedo removes the newest undone transaction and moves it back to the
// undo stack.
func (m *Manager) PopRedo() (*Transaction, bool) {
	n := len(m.redo)
	if n == 0 {
		logger.DebugTagf("history", "nothing to redo")
		return nil, false
	}
	tx := m.redo[n-1]
	m.redo = m.redo[:n-1]
	m.undo = append(m.undo, tx)
	return tx, true
}

// Clear resets both stacks. Call this on file load.
func (m *Manager) Clear() {
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
	logger.Debugf("History: Cleared.")
}

// CanUndo returns true if there are transactions that can be undone.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo returns true if there are transactions that can be redone.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDepth returns the number of undoable transactions.
func (m *Manager) UndoDepth() int { return len(m.undo) }
