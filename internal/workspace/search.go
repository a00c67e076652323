package workspace

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidecore/internal/commands"
	"github.com/bethropolis/tidecore/internal/core"
	"github.com/bethropolis/tidecore/internal/core/find"
	"github.com/bethropolis/tidecore/internal/input"
)

func (w *Workspace) searchCommands() []commands.Command {
	return []commands.Command{
		{Name: "find", Usage: "<pattern>...", Run: w.cmdFind},
		{Name: "find-next", Run: w.cmdFindNext(true)},
		{Name: "find-prev", Run: w.cmdFindNext(false)},
		{Name: "substitute", Usage: "/pattern/replacement/[g]", Run: w.cmdSubstitute},
		{Name: "replace-all", Usage: "<pattern> <replacement>", Run: w.cmdReplaceAll},
		{Name: "prompt", Usage: "[:|/]", Run: w.cmdPrompt},
	}
}

// cmdPrompt opens the key-driven line prompt.
func (w *Workspace) cmdPrompt(args []string) error {
	kind := input.PromptCommand
	if len(args) > 0 {
		k, err := input.ParsePromptKind(args[0])
		if err != nil {
			return err
		}
		kind = k
	}
	p := w.input.Prompt()
	p.Open(kind)
	w.SetStatusMessage("%s", p.String())
	return nil
}

// cmdFind compiles a new search term and jumps to its first match from
// the cursor.
func (w *Workspace) cmdFind(args []string) error {
	if len(args) == 0 {
		return commands.Usagef("find", "<pattern>...")
	}
	f, err := find.Compile(strings.Join(args, " "))
	if err != nil {
		return err
	}
	w.search = f
	return w.findNext(true)
}

func (w *Workspace) cmdFindNext(forward bool) commands.Func {
	return func([]string) error { return w.findNext(forward) }
}

func (w *Workspace) findNext(forward bool) error {
	if w.search == nil {
		return fmt.Errorf("no previous search")
	}
	v, err := w.activeView()
	if err != nil {
		return err
	}
	m, cs, ok := v.Editor().Find(w.search, forward)
	if !ok {
		w.SetStatusMessage("Pattern not found: %s", w.search.Term())
		return nil
	}
	w.publish(v, v.Apply(cs))
	buf := v.Editor().GetBuffer()
	at := displayPos(buf, m.Start)
	w.SetStatusMessage("Match at %d:%d (%d total)", at.Row+1, at.Col+1, len(w.search.All(buf)))
	return nil
}

// cmdSubstitute replaces on the active cursor's line: the first match, or
// every match with the g flag.
func (w *Workspace) cmdSubstitute(args []string) error {
	if len(args) != 1 {
		return commands.Usagef("substitute", "/pattern/replacement/[g]")
	}
	pattern, repl, global, err := find.ParseSubstitute(args[0])
	if err != nil {
		return err
	}
	f, err := find.Compile(pattern)
	if err != nil {
		return err
	}
	v, err := w.activeView()
	if err != nil {
		return err
	}
	matches := f.Line(v.Editor().GetBuffer(), v.Editor().ActiveCursor().Cursor.Row)
	if !global && len(matches) > 1 {
		matches = matches[:1]
	}
	return w.replace(f, matches, repl)
}

func (w *Workspace) cmdReplaceAll(args []string) error {
	if len(args) != 2 {
		return commands.Usagef("replace-all", "<pattern> <replacement>")
	}
	f, err := find.Compile(args[0])
	if err != nil {
		return err
	}
	v, err := w.activeView()
	if err != nil {
		return err
	}
	return w.replace(f, f.All(v.Editor().GetBuffer()), args[1])
}

func (w *Workspace) replace(f *find.Finder, matches []find.Match, repl string) error {
	if len(matches) == 0 {
		w.SetStatusMessage("Pattern not found: %s", f.Term())
		return nil
	}
	if _, err := w.edit(func(e *core.Editor) core.ChangeSet { return e.Replace(f, matches, repl) }); err != nil {
		return err
	}
	w.SetStatusMessage("Replaced %d occurrence(s)", len(matches))
	return nil
}
