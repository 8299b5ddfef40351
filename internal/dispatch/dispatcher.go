// Package dispatch routes named commands through a registry. Every dispatch
// is one command cycle: the cycle-begin event fires first, then the command
// body runs, all synchronously on the calling goroutine.
package dispatch

import (
	"fmt"

	"github.com/mirelk/undoglow/internal/event"
	"github.com/mirelk/undoglow/internal/logger"
)

// Arg carries the payload of a dispatched command.
type Arg struct {
	Rune rune // The typed character, for self-insert
}

// CommandFunc is the body of a named command.
type CommandFunc func(arg Arg) error

// Dispatcher owns the command registry and the command cycle boundary.
type Dispatcher struct {
	eventManager *event.Manager
	commands     map[string]CommandFunc
	current      string
}

// New creates a dispatcher wired to the given event manager.
func New(eventManager *event.Manager) *Dispatcher {
	return &Dispatcher{
		eventManager: eventManager,
		commands:     make(map[string]CommandFunc),
	}
}

// Register adds a command to the registry.
func (d *Dispatcher) Register(name string, fn CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("command '%s' has no body", name)
	}
	if _, exists := d.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	d.commands[name] = fn
	logger.Debugf("Dispatcher: Registered command %q", name)
	return nil
}

// Dispatch runs one command cycle: emit cycle-begin, then the body. An
// unknown command is an error and starts no cycle.
func (d *Dispatcher) Dispatch(name string, arg Arg) error {
	fn, exists := d.commands[name]
	if !exists {
		return fmt.Errorf("unknown command: %s", name)
	}

	d.current = name
	d.eventManager.Dispatch(event.TypeCycleBegin, event.CycleBeginData{Command: name})

	if err := fn(arg); err != nil {
		logger.Debugf("Dispatcher: Command %q failed: %v", name, err)
		return fmt.Errorf("command '%s': %w", name, err)
	}
	return nil
}

// Current returns the name of the command in the active (or most recent)
// cycle.
func (d *Dispatcher) Current() string {
	return d.current
}

// Known reports whether a command name is registered.
func (d *Dispatcher) Known(name string) bool {
	_, exists := d.commands[name]
	return exists
}
