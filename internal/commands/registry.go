package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command // name and aliases map to command
	cmds   []Command          // one entry per command, sorted by name
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for i, name := range names {
		if _, exists := r.byName[name]; exists {
			if i == 0 {
				return fmt.Errorf("command already registered: %s", name)
			}
			return fmt.Errorf("command alias already registered: %s", name)
		}
	}

	for _, name := range names {
		r.byName[name] = c
	}

	i := sort.Search(len(r.cmds), func(i int) bool { return r.cmds[i].Name() >= c.Name() })
	r.cmds = append(r.cmds, nil)
	copy(r.cmds[i+1:], r.cmds[i:])
	r.cmds[i] = c
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns all commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Command(nil), r.cmds...)
}

// DefaultRegistry is the global command registry. Every command in this
// package registers itself here from init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
// Panics on a duplicate name, so it is only called from init.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
