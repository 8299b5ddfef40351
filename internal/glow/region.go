// internal/glow/region.go
package glow

import "github.com/mirelk/undoglow/internal/types"

// Style selects the appearance of the highlight region.
type Style int

const (
	// StyleDelete marks text that is about to be removed.
	StyleDelete Style = iota
	// StyleInsert marks text that was just inserted.
	StyleInsert
)

func (s Style) String() string {
	switch s {
	case StyleDelete:
		return "delete"
	case StyleInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Surface is the capability the coordinator needs from the editing surface:
// a single styled region marker it can create, move, and destroy, plus a way
// to force an immediate visual refresh. The tui provides the real
// implementation; tests substitute a mock.
type Surface interface {
	PlaceRegion(span types.Span, style Style)
	RemoveRegion()
	ForceRedraw()
}

// Region tracks the one highlight region alive per editing surface. It is
// created lazily on first placement, repositioned (not recreated) on reuse,
// and destroyed when a non-target command cycle begins while it is alive.
type Region struct {
	surface Surface
	span    types.Span
	style   Style
	alive   bool
}

func newRegion(surface Surface) *Region {
	return &Region{surface: surface}
}

// Place creates or moves the region to the given span with the given style.
func (r *Region) Place(span types.Span, style Style) {
	r.span = span
	r.style = style
	r.alive = true
	r.surface.PlaceRegion(span, style)
}

// Clear destroys the region marker if it is alive.
func (r *Region) Clear() {
	if !r.alive {
		return
	}
	r.alive = false
	r.surface.RemoveRegion()
}

// Alive reports whether the region marker currently exists on the surface.
func (r *Region) Alive() bool {
	return r.alive
}

// Span returns the region's current span. Meaningful only while alive.
func (r *Region) Span() types.Span {
	return r.span
}
