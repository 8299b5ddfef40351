// internal/glow/gate.go
package glow

// Gate is the per-cycle single-use permission token. The first qualifying
// mutation notification of a target-command cycle consumes it; every later
// one in the same cycle is ignored. This keeps unrelated automated edits
// (re-indentation and the like) from stealing or duplicating the highlight.
//
// A plain boolean is enough: all operations run on the single command
// goroutine and notifications are delivered synchronously in command order.
type Gate struct {
	open bool
}

// Arm opens the gate. Called only at cycle begin when the new command is a
// target command.
func (g *Gate) Arm() {
	g.open = true
}

// Disarm closes the gate without consuming it.
func (g *Gate) Disarm() {
	g.open = false
}

// TryConsume closes the gate and returns true if it was open; returns false
// if it was already closed.
func (g *Gate) TryConsume() bool {
	if !g.open {
		return false
	}
	g.open = false
	return true
}
