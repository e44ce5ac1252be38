package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/backend/terminal/render"
	"github.com/valerio/go-tinyengine/tinyengine/debug"
	"github.com/valerio/go-tinyengine/tinyengine/display"
	"github.com/valerio/go-tinyengine/tinyengine/input"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

const (
	width  = video.FramebufferWidth
	height = video.FramebufferHeight

	screenTop = 1
	dividerX  = width
	logsX     = dividerX + 2
)

// Backend implements the Backend interface using tcell for terminal rendering.
// Each text cell shows two pixels stacked with an upper half block.
type Backend struct {
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	config    backend.BackendConfig

	quitRequested atomic.Bool
	quitReported  bool
	signals       chan os.Signal

	// Copy of the last presented frame for F12 snapshots
	currentFrame *video.FrameBuffer
}

// New creates a new terminal backend
func New() *Backend {
	return NewWithScreen(nil)
}

// NewWithScreen creates a terminal backend drawing to screen. A nil screen
// opens the controlling terminal on Init.
func NewWithScreen(screen tcell.Screen) *Backend {
	newScreen := tcell.NewScreen
	if screen != nil {
		newScreen = func() (tcell.Screen, error) { return screen, nil }
	}
	return &Backend{
		newScreen:    newScreen,
		logLevel:     slog.LevelInfo,
		currentFrame: video.NewFrameBuffer(),
	}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config

	screen, err := t.newScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.screen = screen

	// Logs would corrupt the screen, so capture them for the side panel
	t.logBuffer = render.NewLogBuffer(100)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))
	slog.Info("Terminal backend initialized")

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	// Set up signal handling for graceful shutdown
	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	go t.handleSignals(t.signals)

	return nil
}

// Update processes pending key events and renders the frame
func (t *Backend) Update(frame *video.FrameBuffer) error {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	if t.quitRequested.Load() {
		if !t.quitReported {
			t.quitReported = true
			t.config.Callbacks.Quit()
		}
		return nil
	}

	t.currentFrame.CopyFrom(frame)
	t.render(frame)
	t.screen.Show()
	return nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
		close(t.signals)
		t.signals = nil
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// LogLevel returns the minimum level shown in the log panel
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel
}

func (t *Backend) handleSignals(signals <-chan os.Signal) {
	if _, ok := <-signals; ok {
		t.quitRequested.Store(true)
	}
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	act, ok := input.Lookup(keyName(ev))
	if !ok {
		return
	}

	switch act {
	case input.Quit:
		t.quitRequested.Store(true)
	case input.Snapshot:
		debug.TakeSnapshot(t.currentFrame)
	case input.LogLevelIncrease:
		t.changeLogLevel(1)
	case input.LogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyCtrlC:
		return "Ctrl+C"
	case tcell.KeyF12:
		return "F12"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	switch direction {
	case -1:
		switch t.logLevel {
		case slog.LevelDebug:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelError
		}
	case 1:
		switch t.logLevel {
		case slog.LevelError:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelDebug
		}
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < display.TerminalMinWidth || termHeight < display.TerminalMinHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", display.TerminalMinWidth, display.TerminalMinHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	t.drawBorders(termWidth, termHeight)
	t.drawScreen(frame)
	if t.config.ShowLogs {
		t.drawLogs(logsX, screenTop, termWidth-logsX, termHeight)
	}
}

func (t *Backend) drawBorders(termWidth, termHeight int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	title := t.config.Title
	if title == "" {
		title = "tinyengine"
	}
	t.drawText(1, 0, dividerX-1, " "+title+" ", titleStyle)

	if t.config.ShowLogs {
		levelTitle := fmt.Sprintf(" Logs [%s] (-/+ filter) ", render.LevelTag(t.logLevel))
		t.drawText(logsX, 0, termWidth-logsX, levelTitle, titleStyle)
	}

	t.drawText(0, termHeight-1, termWidth, " ESC/q=exit F12=snapshot | Logs: +/- filter ", borderStyle)
}

func (t *Backend) drawScreen(frame *video.FrameBuffer) {
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			char, style := render.HalfBlockCell(frame.GetPixel(x, y), frame.GetPixel(x, y+1))
			t.screen.SetContent(x, screenTop+y/2, char, nil, style)
		}
	}
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	availableHeight := termHeight - startY - 1
	if width <= 0 || availableHeight <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.Recent(availableHeight, t.logLevel) {
		style := infoStyle
		switch entry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		text := render.FormatLogEntry(entry)
		if len(text) > width && width > 3 {
			text = text[:width-3] + "..."
		}
		t.drawText(startX, startY+i, width, text, style)
	}
}

func (t *Backend) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	col := 0
	for _, ch := range text {
		if col >= maxWidth {
			break
		}
		t.screen.SetContent(x+col, y, ch, nil, style)
		col++
	}
}
