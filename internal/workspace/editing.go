package workspace

import (
	"github.com/bethropolis/tidecore/internal/buffer"
	"github.com/bethropolis/tidecore/internal/core"
	"github.com/bethropolis/tidecore/internal/event"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/types"
	"github.com/bethropolis/tidecore/internal/utils"
	"github.com/bethropolis/tidecore/internal/view"
)

// Commands and messages count columns in runes; the core counts bytes.

// displayPos converts a byte column to the rune column shown to users.
func displayPos(buf *buffer.Buffer, p types.Position) types.Position {
	return types.Position{Row: p.Row, Col: utils.ByteOffsetToRuneIndex(buf.Line(p.Row), p.Col)}
}

// bytePos converts a rune column typed by a user to a byte column. Columns
// past the end of the line land at its end.
func bytePos(buf *buffer.Buffer, row, col int) types.Position {
	row = buf.ClampRow(row)
	line := buf.Line(row)
	off := utils.RuneIndexToByteOffset(line, col)
	if off < 0 {
		off = len(line)
	}
	return types.Position{Row: row, Col: off}
}

// activeView returns the active tab's view.
func (w *Workspace) activeView() (*view.View, error) {
	v := w.tabs.ActiveView()
	if v == nil {
		return nil, ErrNoActiveTab
	}
	return v, nil
}

// edit runs op on the active editor, lets the view follow the cursor and
// queues the events the ChangeSet calls for.
func (w *Workspace) edit(op func(e *core.Editor) core.ChangeSet) (core.ChangeSet, error) {
	v, err := w.activeView()
	if err != nil {
		return core.ChangeSet{}, err
	}
	cs := v.Apply(op(v.Editor()))
	w.publish(v, cs)
	return cs, nil
}

// publish queues BufferModified and CursorMoved for a ChangeSet.
func (w *Workspace) publish(v *view.View, cs core.ChangeSet) {
	if cs.Empty() {
		return
	}
	logger.DebugTagf("changeset", "%s: %s", v.ID(), cs.Mask)
	if cs.Mask.Has(core.ChangeBuffer) {
		data := event.BufferModifiedData{DocumentID: v.DocumentID(), ViewID: v.ID(), FirstRow: -1, LastRow: -1}
		if cs.HasDirtyRows {
			data.FirstRow, data.LastRow = cs.DirtyFirstRow, cs.DirtyLastRow
		}
		w.events.Post(event.TypeBufferModified, data)
	}
	if cs.Mask.Has(core.ChangeCursor) {
		w.events.Post(event.TypeCursorMoved, event.CursorMovedData{
			ViewID:      v.ID(),
			NewPosition: v.Editor().ActiveCursor().Cursor.Pos(),
		})
	}
}
