//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/debug"
	"github.com/valerio/go-tinyengine/tinyengine/display"
	"github.com/valerio/go-tinyengine/tinyengine/input"
	"github.com/valerio/go-tinyengine/tinyengine/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	texture   *sdl.Texture
	running   bool
	callbacks backend.BackendCallbacks

	// Copy of the last presented frame for F12 snapshots
	currentFrame *video.FrameBuffer
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{
		currentFrame: video.NewFrameBuffer(),
	}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.BackendConfig) error {
	s.callbacks = config.Callbacks

	scale := config.Scale
	if scale <= 0 {
		scale = display.DefaultPixelScale
	}
	scale = min(scale, display.MaxPixelScale)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	// The framebuffer is uploaded as is, no conversion needed
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB565,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", scale)
	return nil
}

// Update renders a frame and processes events
func (s *Backend) Update(frame *video.FrameBuffer) error {
	if !s.running {
		return nil
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		s.handleEvent(event)
	}

	if !s.running {
		return nil
	}

	s.currentFrame.CopyFrom(frame)
	return s.renderFrame(frame)
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.quit()

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return
		}
		act, ok := input.Lookup(keyName(e.Keysym.Sym))
		if !ok {
			return
		}
		switch act {
		case input.Quit:
			s.quit()
		case input.Snapshot:
			debug.TakeSnapshot(s.currentFrame)
		}
	}
}

// keyName follows input.DefaultKeyMap naming. Printable SDL keycodes are
// their ASCII value.
func keyName(sym sdl.Keycode) string {
	switch sym {
	case sdl.K_ESCAPE:
		return "Escape"
	case sdl.K_F12:
		return "F12"
	}
	if sym > ' ' && sym < 0x7F {
		return string(rune(sym))
	}
	return ""
}

func (s *Backend) quit() {
	s.running = false
	s.callbacks.Quit()
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	pixels := frame.ToSlice()
	if err := s.texture.Update(nil, unsafe.Pointer(&pixels[0]), display.RGB565Pitch); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	// Clear renderer and draw texture scaled up
	s.renderer.SetDrawColor(0, 0, 0, display.FullAlpha)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}
