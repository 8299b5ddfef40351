// internal/config/config_test.go
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.validate()

	if cfg.Highlight.MinEditSize != DefaultMinEditSize {
		t.Errorf("MinEditSize = %d, want %d", cfg.Highlight.MinEditSize, DefaultMinEditSize)
	}
	if got := cfg.Highlight.FlashDuration(); got != DefaultFlashDuration {
		t.Errorf("FlashDuration() = %v, want %v", got, DefaultFlashDuration)
	}
	if got := cfg.Highlight.FadeDuration(); got != DefaultFadeDuration {
		t.Errorf("FadeDuration() = %v, want %v", got, DefaultFadeDuration)
	}
	want := DefaultTargetCommands()
	if len(cfg.Highlight.TargetCommands) != len(want) {
		t.Fatalf("TargetCommands = %v, want %v", cfg.Highlight.TargetCommands, want)
	}
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := &Config{}
	cfg.Editor.TabWidth = -3
	cfg.Highlight.MinEditSize = 0
	cfg.Highlight.FlashDurationMs = -10
	cfg.validate()

	if cfg.Editor.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d, want %d", cfg.Editor.TabWidth, DefaultTabWidth)
	}
	if cfg.Highlight.MinEditSize != DefaultMinEditSize {
		t.Errorf("MinEditSize = %d, want %d", cfg.Highlight.MinEditSize, DefaultMinEditSize)
	}
	if cfg.Highlight.FlashDurationMs != int(DefaultFlashDuration/time.Millisecond) {
		t.Errorf("FlashDurationMs = %d", cfg.Highlight.FlashDurationMs)
	}
}

func TestFileKeepsDefaultsForUnsetKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[highlight]\nmin_edit_size = 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := NewDefaultConfig()
	if err := loadFromFile(path, cfg); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Highlight.MinEditSize != 5 {
		t.Errorf("MinEditSize = %d, want 5", cfg.Highlight.MinEditSize)
	}
	if cfg.Highlight.FlashDurationMs != int(DefaultFlashDuration/time.Millisecond) {
		t.Errorf("FlashDurationMs lost default: %d", cfg.Highlight.FlashDurationMs)
	}
	if len(cfg.Highlight.TargetCommands) == 0 {
		t.Error("TargetCommands lost default")
	}
	if !cfg.Editor.AutoIndent {
		t.Error("AutoIndent default clobbered by unrelated file")
	}
}

func TestMissingFileIsNotAnError(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := loadFromFile(filepath.Join(t.TempDir(), "absent.toml"), cfg); err != nil {
		t.Fatalf("loadFromFile on missing file: %v", err)
	}
}

func TestFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := DefineFlags(fs)
	args := []string{
		"-highlight-commands", "undo, redo ,paste",
		"-highlight-flash-ms", "35",
		"-scrolloff", "0",
	}
	if err := flags.ParseFlags(fs, args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg := NewDefaultConfig()
	flags.ApplyOverrides(cfg)

	wantCmds := []string{"undo", "redo", "paste"}
	if len(cfg.Highlight.TargetCommands) != len(wantCmds) {
		t.Fatalf("TargetCommands = %v, want %v", cfg.Highlight.TargetCommands, wantCmds)
	}
	for i, cmd := range wantCmds {
		if cfg.Highlight.TargetCommands[i] != cmd {
			t.Errorf("TargetCommands[%d] = %q, want %q", i, cfg.Highlight.TargetCommands[i], cmd)
		}
	}
	if cfg.Highlight.FlashDurationMs != 35 {
		t.Errorf("FlashDurationMs = %d, want 35", cfg.Highlight.FlashDurationMs)
	}
	if cfg.Editor.ScrollOff != 0 {
		t.Errorf("ScrollOff = %d, want 0", cfg.Editor.ScrollOff)
	}
	if cfg.Editor.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth changed without flag: %d", cfg.Editor.TabWidth)
	}
}
