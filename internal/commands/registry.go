// Package commands holds the named-command registry that scripts, key
// bindings and plugins dispatch through.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/tidecore/internal/logger"
)

var (
	// ErrUnknownCommand is returned for a name nothing registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned by commands given the wrong arguments.
	ErrUsage = errors.New("usage")
)

// Func runs a command with its parsed arguments.
type Func func(args []string) error

// Command is a registered command.
type Command struct {
	Name  string
	Usage string
	Run   Func
}

// Usagef wraps ErrUsage with the command's expected arguments.
func Usagef(name, usage string) error {
	return fmt.Errorf("%s %s: %w", name, usage, ErrUsage)
}

// Registry maps names to commands. Plugins may register from any
// goroutine, so it is guarded by a lock.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Names must be unique.
func (r *Registry) Register(name, usage string, fn Func) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("command %q has no function", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	r.commands[name] = Command{Name: name, Usage: usage, Run: fn}
	logger.DebugTagf("commands", "registered %q", name)
	return nil
}

// Lookup returns the command registered as name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[name]
	return c, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Run executes name with args.
func (r *Registry) Run(name string, args []string) error {
	c, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	logger.Debugf("Commands: running %q with args %q", name, args)
	if err := c.Run(args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Execute parses a command line and runs it. A blank line or a line
// starting with '#' does nothing.
func (r *Registry) Execute(line string) error {
	fields, err := Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 || fields[0][0] == '#' {
		return nil
	}
	return r.Run(fields[0], fields[1:])
}
