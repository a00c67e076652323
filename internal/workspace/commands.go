package workspace

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidecore/internal/commands"
	"github.com/bethropolis/tidecore/internal/core"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/tab"
	"github.com/bethropolis/tidecore/internal/types"
)

type motion func(e *core.Editor, extend bool) core.ChangeSet

var motions = []struct {
	name string
	fn   motion
}{
	{"left", (*core.Editor).MoveLeft},
	{"right", (*core.Editor).MoveRight},
	{"up", (*core.Editor).MoveUp},
	{"down", (*core.Editor).MoveDown},
	{"line-start", (*core.Editor).MoveToLineStart},
	{"line-end", (*core.Editor).MoveToLineEnd},
	{"doc-start", (*core.Editor).MoveToStart},
	{"doc-end", (*core.Editor).MoveToEnd},
}

var closeCommands = []struct {
	name string
	kind tab.CloseKind
}{
	{"close", tab.CloseSingle},
	{"close-left", tab.CloseLeft},
	{"close-right", tab.CloseRight},
	{"close-others", tab.CloseOthers},
	{"close-clean", tab.CloseClean},
	{"close-all", tab.CloseAll},
}

// registerCommands registers the built-in commands.
func (w *Workspace) registerCommands() {
	cmds := []commands.Command{
		{Name: "new", Run: w.cmdNew},
		{Name: "open", Usage: "<path>...", Run: w.cmdOpen},
		{Name: "save", Usage: "[path]", Run: w.cmdSave},
		{Name: "activate", Usage: "<tab>", Run: w.cmdActivate},
		{Name: "pin", Usage: "[tab]", Run: w.cmdPin(true)},
		{Name: "unpin", Usage: "[tab]", Run: w.cmdPin(false)},
		{Name: "move-tab", Usage: "<from> <to>", Run: w.cmdMoveTab},
		{Name: "next-tab", Usage: "[n]", Run: w.cmdCycle("next-tab", 1)},
		{Name: "prev-tab", Usage: "[n]", Run: w.cmdCycle("prev-tab", -1)},
		{Name: "history-back", Usage: "[n]", Run: w.cmdHistory("history-back", -1)},
		{Name: "history-forward", Usage: "[n]", Run: w.cmdHistory("history-forward", 1)},
		{Name: "scroll", Usage: "<row> <col>", Run: w.cmdScroll},
		{Name: "resize", Usage: "<width> <height>", Run: w.cmdResize},
		{Name: "tabs", Run: w.cmdTabs},

		{Name: "insert", Usage: "<text>...", Run: w.cmdInsert},
		{Name: "newline", Run: w.simple((*core.Editor).InsertNewLine)},
		{Name: "backspace", Run: w.simple((*core.Editor).Backspace)},
		{Name: "delete", Run: w.simple((*core.Editor).Delete)},
		{Name: "goto", Usage: "<row> <col>", Run: w.cmdGoto},
		{Name: "select-word", Usage: "[row col]", Run: w.cmdSelectWord},
		{Name: "select-line", Usage: "[row]", Run: w.cmdSelectLine},
		{Name: "select-all", Run: w.simple((*core.Editor).SelectAll)},
		{Name: "clear-selection", Run: w.simple((*core.Editor).ClearSelection)},
		{Name: "add-cursor", Usage: "<row> <col>", Run: w.cmdAddCursor},
		{Name: "add-cursor-above", Run: w.simple((*core.Editor).AddCursorAbove)},
		{Name: "add-cursor-below", Run: w.simple((*core.Editor).AddCursorBelow)},
		{Name: "collapse", Run: w.simple((*core.Editor).CollapseCursors)},
		{Name: "undo", Run: w.cmdUndo(true)},
		{Name: "redo", Run: w.cmdUndo(false)},
		{Name: "copy", Run: w.cmdCopy},
		{Name: "cut", Run: w.cmdCut},
		{Name: "paste", Run: w.cmdPaste},
		{Name: "text", Run: w.cmdText},
		{Name: "cursors", Run: w.cmdCursors},
	}
	for _, m := range motions {
		cmds = append(cmds,
			commands.Command{Name: m.name, Run: w.cmdMotion(m.fn, false)},
			commands.Command{Name: "select-" + m.name, Run: w.cmdMotion(m.fn, true)},
		)
	}
	for _, c := range closeCommands {
		cmds = append(cmds, commands.Command{Name: c.name, Usage: "[tab] [!]", Run: w.cmdClose(c.kind)})
	}
	cmds = append(cmds, w.searchCommands()...)

	for _, c := range cmds {
		if err := w.commands.Register(c.Name, c.Usage, c.Run); err != nil {
			logger.Warnf("Workspace: registering %q: %v", c.Name, err)
		}
	}
}

// tabArg parses args[i] as a tab id, defaulting to the active tab.
func (w *Workspace) tabArg(args []string, i int) (types.TabID, error) {
	if i < len(args) {
		return types.ParseTabID(args[i])
	}
	if id := w.tabs.ActiveID(); id != 0 {
		return id, nil
	}
	return 0, ErrNoActiveTab
}

// countArg parses an optional positive repeat count.
func countArg(name string, args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := commands.Int(name, "[n]", args, 0)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, commands.Usagef(name, "[n]")
	}
	return n, nil
}

// --- Documents & tabs ---

func (w *Workspace) cmdNew(args []string) error {
	id := w.tabs.NewTab()
	w.SetStatusMessage("New tab %s", id)
	return nil
}

func (w *Workspace) cmdOpen(args []string) error {
	if len(args) == 0 {
		return commands.Usagef("open", "<path>...")
	}
	for _, path := range args {
		if _, err := w.tabs.OpenFile(path); err != nil {
			return err
		}
	}
	if info, ok := w.activeInfo(); ok {
		w.SetStatusMessage("Opened %s", info.Path)
	}
	return nil
}

func (w *Workspace) cmdSave(args []string) error {
	t := w.tabs.Active()
	if t == nil {
		return ErrNoActiveTab
	}
	if len(args) > 0 {
		return w.docs.SaveAs(t.DocumentID, args[0])
	}
	return w.docs.Save(t.DocumentID)
}

func (w *Workspace) cmdActivate(args []string) error {
	if len(args) != 1 {
		return commands.Usagef("activate", "<tab>")
	}
	id, err := types.ParseTabID(args[0])
	if err != nil {
		return err
	}
	return w.tabs.Activate(id)
}

func (w *Workspace) cmdPin(pinned bool) commands.Func {
	return func(args []string) error {
		id, err := w.tabArg(args, 0)
		if err != nil {
			return err
		}
		if pinned {
			return w.tabs.Pin(id)
		}
		return w.tabs.Unpin(id)
	}
}

func (w *Workspace) cmdMoveTab(args []string) error {
	from, err := commands.Int("move-tab", "<from> <to>", args, 0)
	if err != nil {
		return err
	}
	to, err := commands.Int("move-tab", "<from> <to>", args, 1)
	if err != nil {
		return err
	}
	return w.tabs.Move(from, to)
}

func (w *Workspace) cmdCycle(name string, dir int) commands.Func {
	return func(args []string) error {
		n, err := countArg(name, args)
		if err != nil {
			return err
		}
		return w.tabs.MoveActiveTabBy(dir * n)
	}
}

func (w *Workspace) cmdHistory(name string, dir int) commands.Func {
	return func(args []string) error {
		n, err := countArg(name, args)
		if err != nil {
			return err
		}
		moved, err := w.tabs.NavigateHistory(dir * n)
		if err != nil {
			return err
		}
		if !moved {
			w.SetStatusMessage("No further tab history")
		}
		return nil
	}
}

func (w *Workspace) cmdClose(kind tab.CloseKind) commands.Func {
	return func(args []string) error {
		force := false
		var rest []string
		for _, a := range args {
			if a == "!" {
				force = true
				continue
			}
			rest = append(rest, a)
		}
		anchor, err := w.tabArg(rest, 0)
		if err != nil {
			return err
		}
		closed, err := w.tabs.Close(kind, anchor, force)
		if err != nil {
			return err
		}
		w.SetStatusMessage("Closed %d tab(s)", len(closed))
		return nil
	}
}

func (w *Workspace) cmdScroll(args []string) error {
	row, err := commands.Int("scroll", "<row> <col>", args, 0)
	if err != nil {
		return err
	}
	col, err := commands.Int("scroll", "<row> <col>", args, 1)
	if err != nil {
		return err
	}
	id, err := w.tabArg(nil, 0)
	if err != nil {
		return err
	}
	return w.tabs.SetScroll(id, types.ScrollOffsets{Row: row, Col: col})
}

func (w *Workspace) cmdResize(args []string) error {
	width, err := commands.Int("resize", "<width> <height>", args, 0)
	if err != nil {
		return err
	}
	height, err := commands.Int("resize", "<width> <height>", args, 1)
	if err != nil {
		return err
	}
	w.Resize(width, height)
	return nil
}

func (w *Workspace) cmdTabs(args []string) error {
	for _, info := range w.tabs.Tabs() {
		fmt.Fprintln(w.out, formatTab(info))
	}
	return nil
}

func formatTab(info tab.Info) string {
	var b strings.Builder
	if info.Active {
		b.WriteString("* ")
	} else {
		b.WriteString("  ")
	}
	fmt.Fprintf(&b, "%d %s", uint64(info.ID), info.Title)
	if info.Pinned {
		b.WriteString(" [pinned]")
	}
	if info.Modified {
		b.WriteString(" [+]")
	}
	return b.String()
}

// --- Editing ---

func (w *Workspace) simple(op func(e *core.Editor) core.ChangeSet) commands.Func {
	return func(args []string) error {
		_, err := w.edit(op)
		return err
	}
}

func (w *Workspace) cmdMotion(m motion, extend bool) commands.Func {
	return func(args []string) error {
		_, err := w.edit(func(e *core.Editor) core.ChangeSet { return m(e, extend) })
		return err
	}
}

func (w *Workspace) cmdInsert(args []string) error {
	if len(args) == 0 {
		return commands.Usagef("insert", "<text>...")
	}
	text := strings.Join(args, " ")
	_, err := w.edit(func(e *core.Editor) core.ChangeSet { return e.InsertText(text) })
	return err
}

func (w *Workspace) cmdGoto(args []string) error {
	row, col, err := position("goto", args)
	if err != nil {
		return err
	}
	_, err = w.edit(func(e *core.Editor) core.ChangeSet {
		p := bytePos(e.GetBuffer(), row, col)
		return e.MoveTo(p.Row, p.Col, false)
	})
	return err
}

func (w *Workspace) cmdAddCursor(args []string) error {
	row, col, err := position("add-cursor", args)
	if err != nil {
		return err
	}
	_, err = w.edit(func(e *core.Editor) core.ChangeSet {
		p := bytePos(e.GetBuffer(), row, col)
		return e.AddCursor(p.Row, p.Col)
	})
	return err
}

func (w *Workspace) cmdSelectWord(args []string) error {
	var at *types.Position
	if len(args) > 0 {
		row, col, err := position("select-word", args)
		if err != nil {
			return err
		}
		at = &types.Position{Row: row, Col: col}
	}
	_, err := w.edit(func(e *core.Editor) core.ChangeSet {
		p := e.ActiveCursor().Cursor.Pos()
		if at != nil {
			p = bytePos(e.GetBuffer(), at.Row, at.Col)
		}
		return e.SelectWord(p.Row, p.Col)
	})
	return err
}

func (w *Workspace) cmdSelectLine(args []string) error {
	row := -1
	if len(args) > 0 {
		n, err := commands.Int("select-line", "[row]", args, 0)
		if err != nil {
			return err
		}
		row = n
	}
	_, err := w.edit(func(e *core.Editor) core.ChangeSet {
		if row < 0 {
			row = e.ActiveCursor().Cursor.Row
		}
		return e.SelectLine(row)
	})
	return err
}

func position(name string, args []string) (int, int, error) {
	row, err := commands.Int(name, "<row> <col>", args, 0)
	if err != nil {
		return 0, 0, err
	}
	col, err := commands.Int(name, "<row> <col>", args, 1)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func (w *Workspace) cmdUndo(undo bool) commands.Func {
	return func(args []string) error {
		op, what := (*core.Editor).Undo, "undo"
		if !undo {
			op, what = (*core.Editor).Redo, "redo"
		}
		cs, err := w.edit(op)
		if err == nil && cs.Empty() {
			w.SetStatusMessage("Nothing to %s", what)
		}
		return err
	}
}

func (w *Workspace) cmdCopy(args []string) error {
	v, err := w.activeView()
	if err != nil {
		return err
	}
	if v.Editor().Copy(w.clipboard) {
		w.SetStatusMessage("Copied %d bytes", len(v.Editor().SelectedText()))
	} else {
		w.SetStatusMessage("Nothing selected")
	}
	return nil
}

func (w *Workspace) cmdCut(args []string) error {
	cs, err := w.edit(func(e *core.Editor) core.ChangeSet { return e.Cut(w.clipboard) })
	if err == nil && cs.Empty() {
		w.SetStatusMessage("Nothing selected")
	}
	return err
}

func (w *Workspace) cmdPaste(args []string) error {
	_, err := w.edit(func(e *core.Editor) core.ChangeSet { return e.Paste(w.clipboard) })
	return err
}

func (w *Workspace) cmdText(args []string) error {
	v, err := w.activeView()
	if err != nil {
		return err
	}
	fmt.Fprintln(w.out, v.Editor().Text())
	return nil
}

func (w *Workspace) cmdCursors(args []string) error {
	v, err := w.activeView()
	if err != nil {
		return err
	}
	ed := v.Editor()
	active := ed.ActiveCursor().ID
	for _, en := range ed.Cursors() {
		marker := " "
		if en.ID == active {
			marker = "*"
		}
		fmt.Fprintf(w.out, "%s %s\n", marker, displayPos(ed.GetBuffer(), en.Cursor.Pos()))
	}
	if sel := ed.Selection(); sel.IsActive() {
		buf := ed.GetBuffer()
		fmt.Fprintf(w.out, "selection %s-%s %q\n", displayPos(buf, sel.Start), displayPos(buf, sel.End), ed.SelectedText())
	}
	return nil
}
