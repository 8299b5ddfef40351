// internal/app/app.go
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mirelk/undoglow/internal/buffer"
	"github.com/mirelk/undoglow/internal/clipboard"
	"github.com/mirelk/undoglow/internal/config"
	"github.com/mirelk/undoglow/internal/core"
	"github.com/mirelk/undoglow/internal/dispatch"
	"github.com/mirelk/undoglow/internal/event"
	"github.com/mirelk/undoglow/internal/glow"
	"github.com/mirelk/undoglow/internal/input"
	"github.com/mirelk/undoglow/internal/logger"
	"github.com/mirelk/undoglow/internal/statusbar"
	"github.com/mirelk/undoglow/internal/theme"
	"github.com/mirelk/undoglow/internal/tui"
)

// fadeFrameInterval is how often the drawing loop repaints while an insert
// highlight is still fading.
const fadeFrameInterval = 33 * time.Millisecond

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	dispatcher   *dispatch.Dispatcher
	processor    *input.Processor
	coordinator  *glow.Coordinator
	overlay      *tui.Overlay
	themeManager *theme.Manager
	cfg          *config.Config
	filePath     string
	autoIndent   bool

	quit          chan struct{}
	redrawRequest chan struct{}

	drawMu sync.Mutex
}

// NewApp creates and wires a new application instance.
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	themeManager := theme.NewManager()
	themeManager.ApplyHighlightColors(cfg.Highlight.DeleteBg, cfg.Highlight.InsertBg)

	tuiManager, err := tui.New(themeManager.Current())
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf := buffer.NewSliceBuffer()
	if filePath != "" {
		if err := buf.Load(filePath); err != nil {
			logger.Warnf("Error loading file '%s': %v", filePath, err)
		}
	}

	editor := core.NewEditor(buf)
	editor.SetClipboardManager(clipboard.NewManager(cfg.Editor.SystemClipboard))

	eventManager := event.NewManager()
	buf.SetNotifier(&busNotifier{events: eventManager})

	overlay := tui.NewOverlay(cfg.Highlight.FadeDuration())
	coordinator := glow.New(glow.Config{
		TargetCommands: cfg.Highlight.TargetCommands,
		MinEditSize:    cfg.Highlight.MinEditSize,
		FlashDuration:  cfg.Highlight.FlashDuration(),
	}, overlay)
	coordinator.Attach(eventManager)

	dispatcher := dispatch.New(eventManager)

	a := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusbar.New(statusBarConfig(themeManager.Current())),
		eventManager:  eventManager,
		dispatcher:    dispatcher,
		processor:     input.NewProcessor(),
		coordinator:   coordinator,
		overlay:       overlay,
		themeManager:  themeManager,
		cfg:           cfg,
		filePath:      filePath,
		autoIndent:    cfg.Editor.AutoIndent,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	// The coordinator repaints through this hook while its flash blocks.
	overlay.SetRedrawFunc(a.drawEditor)

	if err := a.registerCommands(); err != nil {
		tuiManager.Close()
		return nil, err
	}
	a.subscribeStatusHandlers()

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	return a, nil
}

// statusBarConfig derives status bar styles from the active theme.
func statusBarConfig(t *theme.Theme) statusbar.Config {
	cfg := statusbar.DefaultConfig()
	cfg.StyleDefault = t.GetStyle(theme.StyleStatusBar)
	cfg.StyleModified = t.GetStyle(theme.StyleStatusModified)
	cfg.StyleMessage = t.GetStyle(theme.StyleStatusMessage)
	cfg.MessageTimeout = config.MessageTimeout
	return cfg
}

// Run starts the application's event and drawing loops and blocks until
// the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("undoglow - Ctrl+S Save | Ctrl+Z Undo | ESC Quit")
	a.requestRedraw()

	fadeTicker := time.NewTicker(fadeFrameInterval)
	defer fadeTicker.Stop()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.editor.SetViewSize(w, h)
			a.drawEditor()
		case <-fadeTicker.C:
			if a.overlay.Fading() {
				a.drawEditor()
			}
		}
	}
}

// eventLoop handles TUI events, translating key events into commands.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			cmd := a.processor.ProcessEvent(eventData)
			if cmd.Name == input.CmdUnknown {
				break
			}
			if err := a.dispatcher.Dispatch(cmd.Name, dispatch.Arg{Rune: cmd.Rune}); err != nil {
				logger.Debugf("App: command %q: %v", cmd.Name, err)
				a.statusBar.SetTemporaryMessage("%v", err)
			}
			needsRedraw = true
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// drawEditor repaints the whole screen. Safe to call from the dispatch
// goroutine as well as the drawing loop.
func (a *App) drawEditor() {
	a.drawMu.Lock()
	defer a.drawMu.Unlock()

	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	activeTheme := a.themeManager.Current()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, activeTheme, a.overlay)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetLastCommand(a.dispatcher.Current())
}

// requestRedraw queues a redraw without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// Quit signals the drawing loop to exit.
func (a *App) Quit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}
