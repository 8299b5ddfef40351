// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/mirelk/undoglow/internal/logger"
)

// tomlStyleDef is a single style in a theme file. Pointer fields detect
// missing values so unset attributes inherit from Default.
type tomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

type tomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]tomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme file into a Theme.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var raw tomlTheme
	metadata, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': unrecognized keys in '%s': %v", raw.Name, filePath, metadata.Undecoded())
	}

	if raw.Name == "" {
		raw.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := &Theme{
		Name:   raw.Name,
		IsDark: raw.IsDark,
		Styles: make(map[string]tcell.Style),
	}

	base := tcell.StyleDefault
	if def, ok := raw.Styles[StyleDefault]; ok {
		base, err = convertTomlStyle(def, tcell.StyleDefault)
		if err != nil {
			logger.Warnf("Theme '%s': bad Default style, using tcell default: %v", t.Name, err)
			base = tcell.StyleDefault
		}
	}
	t.Styles[StyleDefault] = base

	for name, def := range raw.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}

	return t, nil
}

// convertTomlStyle builds a tcell.Style from a definition, inheriting unset
// attributes from base.
func convertTomlStyle(def tomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base

	if def.Fg != nil {
		color, err := ParseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := ParseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background '%s': %w", *def.Bg, err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}

	return style, nil
}

// ParseColor converts "#RRGGBB", "reset" or "default" into a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color '%s', want #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
