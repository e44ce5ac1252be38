// Package script hosts Lua scenes. A script defines a global draw(frame)
// function and calls into the "engine_draw" module to render.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/valerio/go-tinyengine/tinyengine"
	"github.com/valerio/go-tinyengine/tinyengine/draw"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

const (
	moduleName   = "engine_draw"
	drawCallback = "draw"
	spriteType   = "sprite"
)

// ErrNoDrawFunction is returned when a script does not define draw(frame).
var ErrNoDrawFunction = errors.New("script does not define a draw function")

var _ tinyengine.Scene = (*Host)(nil)

// Host owns a Lua state and implements tinyengine.Scene by calling the
// script's draw function once per frame. A Host is not safe for concurrent
// use.
type Host struct {
	state   *lua.LState
	ctx     *draw.RenderContext
	vp      draw.Viewport
	baseDir string
}

// New creates a host. sprite, when not nil, is exposed to scripts as
// engine_draw.sprite.
func New(sprite *video.PixelSource) *Host {
	h := &Host{
		state:   lua.NewState(),
		vp:      draw.FullScreen,
		baseDir: ".",
	}
	h.register(sprite)
	return h
}

// LoadFile runs the script at path. Relative paths passed to
// engine_draw.load are resolved against the script's directory.
func (h *Host) LoadFile(path string) error {
	h.baseDir = filepath.Dir(path)
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("failed to run script %s: %w", path, err)
	}
	slog.Info("Loaded script", "path", path)
	return nil
}

// LoadString runs Lua source code.
func (h *Host) LoadString(source string) error {
	if err := h.state.DoString(source); err != nil {
		return fmt.Errorf("failed to run script: %w", err)
	}
	return nil
}

// Draw calls the script's draw(frame). Drawing calls made by the script go
// to ctx for the duration of the call.
func (h *Host) Draw(ctx *draw.RenderContext, frame int) error {
	fn, ok := h.state.GetGlobal(drawCallback).(*lua.LFunction)
	if !ok {
		return ErrNoDrawFunction
	}

	h.ctx = ctx
	defer func() { h.ctx = nil }()

	err := h.state.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(frame))
	if err != nil {
		return fmt.Errorf("failed to draw frame %d: %w", frame, err)
	}
	return nil
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.state.Close()
}

func (h *Host) register(sprite *video.PixelSource) {
	L := h.state

	mt := L.NewTypeMetatable(spriteType)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"size": spriteSize,
	}))

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"fill":         h.fill,
		"pixel":        h.pixel,
		"line":         h.line,
		"rect":         h.rect,
		"outline":      h.outline,
		"rotated_rect": h.rotatedRect,
		"thick_line":   h.thickLine,
		"blit":         h.blit,
		"blit_rotate":  h.blitRotate,
		"viewport":     h.viewport,
		"load":         h.load,
		"rgb":          rgb,
	})
	for name, color := range video.NamedColors {
		L.SetField(mod, name, lua.LNumber(color))
	}
	L.SetField(mod, "width", lua.LNumber(video.FramebufferWidth))
	L.SetField(mod, "height", lua.LNumber(video.FramebufferHeight))
	if sprite != nil {
		L.SetField(mod, "sprite", newSprite(L, sprite))
	}

	L.SetGlobal(moduleName, mod)
	L.PreloadModule(moduleName, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
}
