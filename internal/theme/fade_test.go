// internal/theme/fade_test.go
package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFadeStyleEndpoints(t *testing.T) {
	from := tcell.StyleDefault.Background(tcell.NewRGBColor(0x2f, 0x6b, 0x3a))
	to := tcell.StyleDefault.Background(tcell.NewRGBColor(0x2a, 0x2f, 0x38))

	if got := FadeStyle(from, to, 0); got != from {
		t.Error("progress 0 should return the from style unchanged")
	}
	if got := FadeStyle(from, to, -0.5); got != from {
		t.Error("negative progress should clamp to from")
	}
	if got := FadeStyle(from, to, 1); got != to {
		t.Error("progress 1 should return the to style unchanged")
	}
	if got := FadeStyle(from, to, 2); got != to {
		t.Error("progress above 1 should clamp to to")
	}
}

func TestFadeStyleMidpointDiffers(t *testing.T) {
	from := tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	to := tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 255))

	mid := FadeStyle(from, to, 0.5)
	if mid == from || mid == to {
		t.Error("midpoint blend should differ from both endpoints")
	}

	_, bg, _ := mid.Decompose()
	if !bg.Valid() {
		t.Fatal("blended background should be a concrete RGB color")
	}
}

func TestFadeStyleKeepsForeground(t *testing.T) {
	fg := tcell.NewRGBColor(10, 20, 30)
	from := tcell.StyleDefault.Foreground(fg).Background(tcell.NewRGBColor(255, 0, 0))
	to := tcell.StyleDefault.Background(tcell.NewRGBColor(0, 255, 0))

	mid := FadeStyle(from, to, 0.5)
	gotFg, _, _ := mid.Decompose()
	if gotFg != fg {
		t.Errorf("foreground changed during fade: got %v, want %v", gotFg, fg)
	}
}

func TestFadeStyleDefaultBackgroundFallsBack(t *testing.T) {
	from := tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	to := tcell.StyleDefault // terminal default bg, not blendable

	early := FadeStyle(from, to, 0.25)
	_, bg, _ := early.Decompose()
	_, fromBg, _ := from.Decompose()
	if bg != fromBg {
		t.Errorf("early fade toward default bg should keep from bg, got %v", bg)
	}

	late := FadeStyle(from, to, 0.75)
	_, bg, _ = late.Decompose()
	_, toBg, _ := to.Decompose()
	if bg != toBg {
		t.Errorf("late fade toward default bg should snap to to bg, got %v", bg)
	}
}
