// Package glow coordinates transient text highlights around undo-style
// commands: a blocking pre-deletion flash and a non-blocking post-insertion
// overlay. It observes the buffer's mutation notifications, attributes at
// most one deletion flash to the user's actual edit per command cycle, and
// tears stale highlights down when the user moves on to other commands.
//
// Everything here runs on the host's single command goroutine; correctness
// rests on strict notification ordering and the single-ticket Gate, not on
// mutual exclusion.
package glow

import (
	"time"

	"github.com/mirelk/undoglow/internal/event"
	"github.com/mirelk/undoglow/internal/logger"
	"github.com/mirelk/undoglow/internal/types"
)

// Config controls which commands are highlighted and how.
type Config struct {
	// TargetCommands are the command names whose mutations get highlighted.
	TargetCommands []string
	// MinEditSize is the minimum span length (bytes) an edit must cover.
	// Incidental one-byte edits preceding the real edit are common and must
	// not steal the highlight.
	MinEditSize int
	// FlashDuration is how long the pre-deletion flash stays visible. This
	// much latency is added to every qualifying deletion, so it must stay
	// small enough that holding down the undo key remains fluid.
	FlashDuration time.Duration
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		TargetCommands: []string{"undo", "redo"},
		MinEditSize:    2,
		FlashDuration:  20 * time.Millisecond,
	}
}

// Coordinator is the per-surface highlight state machine. One instance per
// editing surface; multiple surfaces run independent coordinators.
type Coordinator struct {
	targets  map[string]struct{}
	minSize  int
	flashFor time.Duration

	surface Surface
	region  *Region
	gate    Gate
	sleep   func(time.Duration)

	current string // command of the active cycle
}

// Option adjusts a Coordinator at construction time.
type Option func(*Coordinator)

// WithSleep replaces the blocking wait used by the deletion flash. Tests use
// this to avoid real delays.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Coordinator) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// New creates a coordinator for one editing surface.
func New(cfg Config, surface Surface, opts ...Option) *Coordinator {
	def := DefaultConfig()
	if len(cfg.TargetCommands) == 0 {
		cfg.TargetCommands = def.TargetCommands
	}
	if cfg.MinEditSize <= 0 {
		cfg.MinEditSize = def.MinEditSize
	}
	if cfg.FlashDuration <= 0 {
		cfg.FlashDuration = def.FlashDuration
	}

	targets := make(map[string]struct{}, len(cfg.TargetCommands))
	for _, name := range cfg.TargetCommands {
		targets[name] = struct{}{}
	}

	c := &Coordinator{
		targets:  targets,
		minSize:  cfg.MinEditSize,
		flashFor: cfg.FlashDuration,
		surface:  surface,
		region:   newRegion(surface),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach subscribes the coordinator to the bus ahead of other observers, so
// no other subscriber can interleave notifications it would misattribute.
func (c *Coordinator) Attach(em *event.Manager) {
	em.SubscribeWithPriority(event.TypeCycleBegin, event.PriorityCoordinator, func(e event.Event) bool {
		if data, ok := e.Data.(event.CycleBeginData); ok {
			c.BeginCycle(data.Command)
		}
		return false
	})
	em.SubscribeWithPriority(event.TypePreChange, event.PriorityCoordinator, func(e event.Event) bool {
		if data, ok := e.Data.(event.PreChangeData); ok {
			c.PreChange(data.Span)
		}
		return false
	})
	em.SubscribeWithPriority(event.TypePostChange, event.PriorityCoordinator, func(e event.Event) bool {
		if data, ok := e.Data.(event.PostChangeData); ok {
			c.PostChange(data.Span, data.Removed)
		}
		return false
	})
}

// BeginCycle runs once at the start of every command cycle, before the
// command body and before any mutation notification of the cycle. It re-arms
// the gate for target commands and is the sole place stale highlights from
// earlier cycles are torn down.
func (c *Coordinator) BeginCycle(command string) {
	c.current = command
	if c.isTarget(command) {
		c.gate.Arm()
		return
	}
	c.gate.Disarm()
	if c.region.Alive() {
		logger.Debugf("glow: clearing stale highlight %v on %q", c.region.Span(), command)
		c.region.Clear()
	}
}

// PreChange reacts to a notification that the span is about to be deleted or
// replaced. For the first qualifying notification of a target-command cycle
// it shows the delete-style flash and blocks until the flash duration
// elapses, so the user perceives the highlight before the text vanishes.
// Any precondition failure is a silent no-op.
func (c *Coordinator) PreChange(span types.Span) {
	if span.IsEmpty() {
		return
	}
	if !c.isTarget(c.current) {
		return
	}
	// Size check before the gate: a spurious undersized edit firing first
	// must not consume the ticket and mask the real edit.
	if !c.passes(span) {
		return
	}
	if !c.gate.TryConsume() {
		return
	}

	logger.Debugf("glow: flashing deletion %v for %q", span, c.current)
	c.region.Place(span, StyleDelete)
	c.surface.ForceRedraw()
	c.sleep(c.flashFor)
}

// PostChange reacts to a notification that text was inserted into the span.
// Pure insertions (removed == 0) of qualifying size get the insert-style
// overlay. The path is deliberately not gated: re-triggering just moves the
// region, so within one cycle the last qualifying insertion wins, and the
// rendering layer fades the overlay out on its own schedule.
func (c *Coordinator) PostChange(span types.Span, removed int) {
	if removed != 0 {
		return
	}
	if !c.isTarget(c.current) {
		return
	}
	if !c.passes(span) {
		return
	}

	logger.Debugf("glow: highlighting insertion %v for %q", span, c.current)
	c.region.Place(span, StyleInsert)
}

// Region exposes the highlight region, primarily for the rendering layer.
func (c *Coordinator) Region() *Region {
	return c.region
}

// CurrentCommand returns the command of the active cycle.
func (c *Coordinator) CurrentCommand() string {
	return c.current
}

// isTarget is the command classifier: pure set membership.
func (c *Coordinator) isTarget(command string) bool {
	_, ok := c.targets[command]
	return ok
}

// passes is the size filter: pure, idempotent span-length check.
func (c *Coordinator) passes(span types.Span) bool {
	return span.Len() >= c.minSize
}
