// internal/config/flags.go
package config

import (
	"flag"
	"strings"
)

// Flags holds values parsed from the command line. Pointer fields
// distinguish "not set" from zero values.
type Flags struct {
	ConfigFile      *string
	LogLevel        *string
	LogFile         *string
	TabWidth        *int
	ScrollOff       *int
	SystemClipboard *bool
	TargetCommands  *string
	MinEditSize     *int
	FlashDurationMs *int
	FadeDurationMs  *int

	set map[string]bool
}

// DefineFlags registers the command line flags on the given FlagSet.
func DefineFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{set: make(map[string]bool)}

	f.ConfigFile = fs.String("config", "", "Path to the configuration file")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warning, error)")
	f.LogFile = fs.String("logfile", "", "Path to the log file ('-' for stderr)")
	f.TabWidth = fs.Int("tabwidth", 0, "Tab width in columns")
	f.ScrollOff = fs.Int("scrolloff", -1, "Lines of context kept around the cursor")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use the system clipboard for yank and paste")
	f.TargetCommands = fs.String("highlight-commands", "", "Comma separated commands whose edits are highlighted")
	f.MinEditSize = fs.Int("highlight-min-size", 0, "Smallest edit size in bytes that gets highlighted")
	f.FlashDurationMs = fs.Int("highlight-flash-ms", 0, "Pre-deletion flash duration in milliseconds")
	f.FadeDurationMs = fs.Int("highlight-fade-ms", 0, "Insert highlight fade duration in milliseconds")

	return f
}

// ParseFlags parses the arguments and records which flags were set.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return nil
}

// ApplyOverrides applies explicitly set flags over the loaded config.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set["loglevel"] {
		cfg.Logger.LogLevel = *f.LogLevel
	}
	if f.set["logfile"] {
		cfg.Logger.LogFilePath = *f.LogFile
	}
	if f.set["tabwidth"] {
		cfg.Editor.TabWidth = *f.TabWidth
	}
	if f.set["scrolloff"] {
		cfg.Editor.ScrollOff = *f.ScrollOff
	}
	if f.set["system-clipboard"] {
		cfg.Editor.SystemClipboard = *f.SystemClipboard
	}
	if f.set["highlight-commands"] {
		cfg.Highlight.TargetCommands = splitCommands(*f.TargetCommands)
	}
	if f.set["highlight-min-size"] {
		cfg.Highlight.MinEditSize = *f.MinEditSize
	}
	if f.set["highlight-flash-ms"] {
		cfg.Highlight.FlashDurationMs = *f.FlashDurationMs
	}
	if f.set["highlight-fade-ms"] {
		cfg.Highlight.FadeDurationMs = *f.FadeDurationMs
	}
}

func splitCommands(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
