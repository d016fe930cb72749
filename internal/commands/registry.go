package commands

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps the words typed on the command line, and in shell lines,
// to commands. A command is reachable by its name and by each alias.
type Registry struct {
	mu     sync.RWMutex
	byWord map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byWord: make(map[string]Command)}
}

// Register makes c reachable by its name and aliases. Nothing is added if
// any of those words is already taken, so "add" and "create" can never end
// up pointing at different commands.
func (r *Registry) Register(c Command) error {
	words := append([]string{c.Name()}, c.Aliases()...)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range words {
		if w == "" || strings.HasPrefix(w, "-") {
			return fmt.Errorf("command %s: invalid word %q", c.Name(), w)
		}
		if prev, taken := r.byWord[w]; taken {
			return fmt.Errorf("command %s: %q already used by %s", c.Name(), w, prev.Name())
		}
	}
	for _, w := range words {
		r.byWord[w] = c
	}
	return nil
}

// Find resolves a typed word to its command.
func (r *Registry) Find(word string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byWord[word]
	return c, ok
}

// All lists each command once, by name, for help output.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cmds []Command
	for w, c := range r.byWord {
		if w == c.Name() {
			cmds = append(cmds, c)
		}
	}
	slices.SortFunc(cmds, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return cmds
}

// DefaultRegistry holds the commands registered by this package's init
// functions.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry. A clash is a programming error.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
