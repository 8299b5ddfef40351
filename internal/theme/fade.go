// internal/theme/fade.go
package theme

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// FadeStyle blends the background of from toward the background of to.
// progress runs from 0 (fully from) to 1 (fully to). Foreground and
// attributes come from the from style. Blending happens in Lab space so the
// ramp looks even to the eye.
func FadeStyle(from, to tcell.Style, progress float64) tcell.Style {
	if progress <= 0 {
		return from
	}
	if progress >= 1 {
		return to
	}

	_, fromBg, _ := from.Decompose()
	_, toBg, _ := to.Decompose()

	blended := blendColors(fromBg, toBg, progress)
	return from.Background(blended)
}

// blendColors interpolates two tcell colors. Colors without RGB values
// (terminal default, reset) cannot be blended; the nearer endpoint wins.
func blendColors(from, to tcell.Color, progress float64) tcell.Color {
	fromC, fromOk := colorfulFromTcell(from)
	toC, toOk := colorfulFromTcell(to)
	if !fromOk || !toOk {
		if progress < 0.5 {
			return from
		}
		return to
	}
	return tcellFromColorful(fromC.BlendLab(toC, progress))
}

func colorfulFromTcell(c tcell.Color) (colorful.Color, bool) {
	if !c.Valid() || c == tcell.ColorDefault || c == tcell.ColorReset {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, true
}

func tcellFromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
