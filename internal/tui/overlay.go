// internal/tui/overlay.go
package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mirelk/undoglow/internal/glow"
	"github.com/mirelk/undoglow/internal/theme"
	"github.com/mirelk/undoglow/internal/types"
)

// Overlay is the rendering side of the change highlight. It records the
// span and style the coordinator placed and resolves them into a tcell
// style at draw time. Insert highlights fade toward the default background
// over fadeFor; delete highlights hold steady until removed.
type Overlay struct {
	mu       sync.Mutex
	span     types.Span
	style    glow.Style
	active   bool
	placedAt time.Time

	fadeFor time.Duration
	now     func() time.Time
	redraw  func()
}

// NewOverlay creates an overlay whose insert highlight fades over fadeFor.
func NewOverlay(fadeFor time.Duration) *Overlay {
	return &Overlay{
		fadeFor: fadeFor,
		now:     time.Now,
	}
}

// SetRedrawFunc installs the synchronous full-redraw callback used by
// ForceRedraw. Must be set before the overlay is attached to a coordinator.
func (o *Overlay) SetRedrawFunc(fn func()) {
	o.mu.Lock()
	o.redraw = fn
	o.mu.Unlock()
}

// PlaceRegion records the highlighted span. Placing over an existing
// region replaces it and restarts any fade.
func (o *Overlay) PlaceRegion(span types.Span, style glow.Style) {
	o.mu.Lock()
	o.span = span
	o.style = style
	o.active = true
	o.placedAt = o.now()
	o.mu.Unlock()
}

// RemoveRegion discards the highlight.
func (o *Overlay) RemoveRegion() {
	o.mu.Lock()
	o.active = false
	o.mu.Unlock()
}

// ForceRedraw repaints the screen immediately. The coordinator calls this
// before its blocking flash so the highlight is visible during the pause.
func (o *Overlay) ForceRedraw() {
	o.mu.Lock()
	fn := o.redraw
	o.mu.Unlock()
	if fn != nil {
		fn()
	}
}

var _ glow.Surface = (*Overlay)(nil)

// Resolve returns the current span and its tcell style, or ok=false when
// no highlight should be drawn. An insert highlight whose fade has
// completed deactivates itself here.
func (o *Overlay) Resolve(activeTheme *theme.Theme) (types.Span, tcell.Style, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.active {
		return types.Span{}, tcell.StyleDefault, false
	}

	switch o.style {
	case glow.StyleDelete:
		return o.span, activeTheme.GetStyle(theme.StyleHighlightDelete), true
	case glow.StyleInsert:
		progress := o.fadeProgress()
		if progress >= 1 {
			o.active = false
			return types.Span{}, tcell.StyleDefault, false
		}
		from := activeTheme.GetStyle(theme.StyleHighlightInsert)
		to := activeTheme.GetStyle(theme.StyleDefault)
		return o.span, theme.FadeStyle(from, to, progress), true
	}
	return types.Span{}, tcell.StyleDefault, false
}

// Fading reports whether an insert highlight is still animating. The app
// keeps its fade ticker running while this is true.
func (o *Overlay) Fading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active && o.style == glow.StyleInsert && o.fadeProgress() < 1
}

// fadeProgress is called with the mutex held.
func (o *Overlay) fadeProgress() float64 {
	if o.fadeFor <= 0 {
		return 1
	}
	return float64(o.now().Sub(o.placedAt)) / float64(o.fadeFor)
}
