package commands

import (
	"errors"
	"fmt"
	"slices"
)

// ErrAlreadyRegistered is returned when a name or alias is taken.
var ErrAlreadyRegistered = errors.New("command already registered")

// Registry holds registered commands by primary name, with aliases
// resolving to a primary name.
// Registration happens from init functions, so it is not guarded by a lock.
type Registry struct {
	cmds    map[string]Command
	aliases map[string]string // alias -> primary name
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds:    make(map[string]Command),
		aliases: make(map[string]string),
	}
}

// Register adds a command to the registry.
// Nothing is registered if the name or any alias clashes with an existing entry.
func (r *Registry) Register(c Command) error {
	name := c.Name()
	if owner, taken := r.owner(name); taken {
		return fmt.Errorf("%w: %s (by %s)", ErrAlreadyRegistered, name, owner)
	}

	aliases := c.Aliases()
	for i, alias := range aliases {
		if alias == name || slices.Contains(aliases[:i], alias) {
			return fmt.Errorf("%w: %s (by %s)", ErrAlreadyRegistered, alias, name)
		}
		if owner, taken := r.owner(alias); taken {
			return fmt.Errorf("%w: %s (by %s)", ErrAlreadyRegistered, alias, owner)
		}
	}

	r.cmds[name] = c
	for _, alias := range aliases {
		r.aliases[alias] = name
	}
	return nil
}

// owner reports which command, if any, already uses name.
func (r *Registry) owner(name string) (string, bool) {
	if _, ok := r.cmds[name]; ok {
		return name, true
	}
	primary, ok := r.aliases[name]
	return primary, ok
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	if primary, ok := r.aliases[name]; ok {
		name = primary
	}
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all commands sorted by name. Aliases are not repeated.
func (r *Registry) All() []Command {
	result := make([]Command, 0, len(r.cmds))
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		result = append(result, r.cmds[name])
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
// It panics on a clash, since that is a programming error.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
