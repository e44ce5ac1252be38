// Package tinyengine runs the frame loop: every tick clears the active
// buffer, lets the scene draw into it, swaps and hands the finished frame to
// a display backend.
package tinyengine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/draw"
	"github.com/valerio/go-tinyengine/tinyengine/timing"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// Scene draws one frame into the render context.
type Scene interface {
	Draw(ctx *draw.RenderContext, frame int) error
}

// SceneFunc adapts a plain function to Scene.
type SceneFunc func(ctx *draw.RenderContext, frame int) error

func (f SceneFunc) Draw(ctx *draw.RenderContext, frame int) error {
	return f(ctx, frame)
}

// Engine owns the double buffer and drives a Scene on a Backend.
type Engine struct {
	config  Config
	buffers *video.Buffers
	ctx     *draw.RenderContext
	backend backend.Backend
	scene   Scene
	limiter timing.Limiter

	running atomic.Bool
	frame   int

	fps         float64
	fpsFrames   int
	fpsWindowAt time.Time
}

// New creates an engine. Missing config fields take their defaults.
func New(config Config, b backend.Backend, scene Scene) (*Engine, error) {
	if b == nil {
		return nil, errors.New("engine requires a backend")
	}
	if scene == nil {
		return nil, errors.New("engine requires a scene")
	}
	config.Defaults()

	stepper, ok := draw.NewStepper(config.Stepper)
	if !ok {
		return nil, fmt.Errorf("unknown texel stepper %q", config.Stepper)
	}

	limiter, err := timing.NewLimiter(config.Limiter, config.FPSLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame limiter: %w", err)
	}

	buffers := video.NewBuffers()
	buffers.SetFillColor(config.FillColor)

	e := &Engine{
		config:  config,
		buffers: buffers,
		ctx:     draw.NewRenderContext(buffers, stepper),
		backend: b,
		scene:   scene,
		limiter: limiter,
	}
	e.Reset()
	return e, nil
}

// Context returns the render context scenes draw through.
func (e *Engine) Context() *draw.RenderContext {
	return e.ctx
}

// Frame returns the number of frames ticked since the last reset.
func (e *Engine) Frame() int {
	return e.frame
}

// FPS returns the frame rate measured over the last full second.
func (e *Engine) FPS() float64 {
	return e.fps
}

// Tick renders and presents one frame.
func (e *Engine) Tick() error {
	e.ctx.Clear()
	if err := e.scene.Draw(e.ctx, e.frame); err != nil {
		return fmt.Errorf("failed to draw frame %d: %w", e.frame, err)
	}

	// The finished buffer goes to the backend while the next frame draws
	// into the other one.
	finished := e.buffers.Active()
	e.buffers.Swap()
	if err := e.backend.Update(finished); err != nil {
		return fmt.Errorf("failed to present frame %d: %w", e.frame, err)
	}

	e.frame++
	e.measureFPS()
	return nil
}

// Run initializes the backend and ticks until Stop is called or the backend
// requests a quit.
func (e *Engine) Run() (err error) {
	display := e.config.Display
	onQuit := display.Callbacks.OnQuit
	display.Callbacks.OnQuit = func() {
		if onQuit != nil {
			onQuit()
		}
		e.Stop()
	}

	if err := e.backend.Init(display); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if cerr := e.backend.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to clean up backend: %w", cerr)
		}
	}()

	slog.Info("Engine started",
		"fps_limit", e.config.FPSLimit,
		"limiter", e.config.Limiter,
		"stepper", e.config.Stepper)

	e.running.Store(true)
	e.limiter.Reset()
	for e.running.Load() {
		e.limiter.WaitForNextFrame()
		if err := e.Tick(); err != nil {
			e.running.Store(false)
			return err
		}
	}

	slog.Info("Engine stopped", "frames", e.frame, "fps", e.fps)
	return nil
}

// Stop makes Run return after the current frame. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.running.Store(false)
}

// Reset clears both buffers, the frame counter and the timing state.
func (e *Engine) Reset() {
	e.buffers.Clear()
	e.buffers.Swap()
	e.buffers.Clear()
	e.buffers.Swap()

	e.frame = 0
	e.fps = 0
	e.fpsFrames = 0
	e.fpsWindowAt = time.Now()
	e.limiter.Reset()
	slog.Debug("Engine reset")
}

func (e *Engine) measureFPS() {
	e.fpsFrames++
	elapsed := time.Since(e.fpsWindowAt)
	if elapsed < time.Second {
		return
	}

	e.fps = float64(e.fpsFrames) / elapsed.Seconds()
	e.fpsFrames = 0
	e.fpsWindowAt = time.Now()
	slog.Debug("Frame rate", "fps", e.fps, "frame", e.frame)
}
