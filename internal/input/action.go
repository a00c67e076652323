package input

import "strings"

// Invocation is a command call produced by a key press.
type Invocation struct {
	Command string
	Args    []string
}

// IsZero reports whether no command is bound.
func (i Invocation) IsZero() bool {
	return i.Command == ""
}

func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Command
	}
	return i.Command + " " + strings.Join(i.Args, " ")
}

func call(name string, args ...string) Invocation {
	return Invocation{Command: name, Args: args}
}
