// internal/theme/theme.go
package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mirelk/undoglow/internal/logger"
)

// Style names used by the UI. Custom themes may define any subset; missing
// names fall back to Default.
const (
	StyleDefault         = "Default"
	StyleLineNumber      = "LineNumber"
	StyleStatusBar       = "StatusBar"
	StyleStatusModified  = "StatusBarModified"
	StyleStatusMessage   = "StatusBarMessage"
	StyleHighlightDelete = "HighlightDelete"
	StyleHighlightInsert = "HighlightInsert"
)

// Theme is a named set of tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up a style by name, falling back to Default and finally
// to tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': style '%s' not found, falling back to Default", t.Name, name)
		}
		return defStyle
	}
	logger.Warnf("Theme '%s': no '%s' or Default style, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// GlowDark is the built-in theme.
var GlowDark Theme

func init() {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	dim := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	deleteBg := tcell.NewHexColor(0x7f3535)
	insertBg := tcell.NewHexColor(0x2f6b3a)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	GlowDark = Theme{
		Name:   "Glow Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:        base,
			StyleLineNumber:     base.Foreground(dim),
			StyleStatusBar:      tcell.StyleDefault.Background(bg).Foreground(fg),
			StyleStatusModified: tcell.StyleDefault.Background(bg).Foreground(yellow),
			StyleStatusMessage:  tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),

			StyleHighlightDelete: base.Background(deleteBg),
			StyleHighlightInsert: base.Background(insertBg),
		},
	}
}
