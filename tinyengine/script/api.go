package script

import (
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/valerio/go-tinyengine/tinyengine/draw"
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/resource"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// target returns the context of the frame being drawn, raising a Lua error
// when called outside draw().
func (h *Host) target(L *lua.LState) *draw.RenderContext {
	if h.ctx == nil {
		L.RaiseError("drawing is only allowed inside draw()")
	}
	return h.ctx
}

func checkColor(L *lua.LState, n int) video.Color {
	return video.Color(uint16(L.CheckInt(n)))
}

func checkFloat(L *lua.LState, n int) float32 {
	return float32(L.CheckNumber(n))
}

func optScale(L *lua.LState, n int) fixed.Q16 {
	return fixed.FromFloat(float64(L.OptNumber(n, 1)))
}

func checkAngle(L *lua.LState, n int) fixed.Angle {
	return fixed.AngleFromRadians(float64(L.CheckNumber(n)))
}

// fill(color)
func (h *Host) fill(L *lua.LState) int {
	h.target(L).FillColor(checkColor(L, 1))
	return 0
}

// pixel(color, x, y)
func (h *Host) pixel(L *lua.LState) int {
	h.target(L).SetPixel(checkColor(L, 1), L.CheckInt(2), L.CheckInt(3))
	return 0
}

// line(color, x0, y0, x1, y1)
func (h *Host) line(L *lua.LState) int {
	h.target(L).DrawLine(checkColor(L, 1), checkFloat(L, 2), checkFloat(L, 3), checkFloat(L, 4), checkFloat(L, 5))
	return 0
}

// rect(color, x, y, w, h)
func (h *Host) rect(L *lua.LState) int {
	h.target(L).FillRect(checkColor(L, 1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5))
	return 0
}

// outline(color, x, y, w, h)
func (h *Host) outline(L *lua.LState) int {
	h.target(L).OutlineRect(checkColor(L, 1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5))
	return 0
}

// rotated_rect(color, cx, cy, w, h, radians [, sx, sy, outline])
func (h *Host) rotatedRect(L *lua.LState) int {
	ctx := h.target(L)
	color := checkColor(L, 1)
	x, y := L.CheckInt(2), L.CheckInt(3)
	w, ht := L.CheckInt(4), L.CheckInt(5)
	theta := checkAngle(L, 6)
	xsc, ysc := optScale(L, 7), optScale(L, 8)

	if L.OptBool(9, false) {
		ctx.OutlineRectRotate(color, x, y, w, ht, xsc, ysc, theta, h.vp)
	} else {
		ctx.FillRectRotate(color, x, y, w, ht, xsc, ysc, theta, h.vp)
	}
	return 0
}

// thick_line(color, x0, y0, x1, y1, thickness [, outline])
func (h *Host) thickLine(L *lua.LState) int {
	h.target(L).ThickLine(checkColor(L, 1),
		checkFloat(L, 2), checkFloat(L, 3), checkFloat(L, 4), checkFloat(L, 5),
		checkFloat(L, 6), L.OptBool(7, false), h.vp)
	return 0
}

// blit(sprite, x, y [, sx, sy])
func (h *Host) blit(L *lua.LState) int {
	ctx := h.target(L)
	src := checkSprite(L, 1)
	ctx.BlitScale(src, L.CheckInt(2), L.CheckInt(3), optScale(L, 4), optScale(L, 5))
	return 0
}

// blit_rotate(sprite, cx, cy, radians [, sx, sy])
func (h *Host) blitRotate(L *lua.LState) int {
	ctx := h.target(L)
	src := checkSprite(L, 1)
	ctx.BlitScaleRotate(src, L.CheckInt(2), L.CheckInt(3), optScale(L, 5), optScale(L, 6), checkAngle(L, 4))
	return 0
}

// viewport(x, y, w, h) clips rotated rects and thick lines; viewport()
// resets it to the full screen.
func (h *Host) viewport(L *lua.LState) int {
	if L.GetTop() == 0 {
		h.vp = draw.FullScreen
		return 0
	}
	h.vp = draw.Viewport{X: L.CheckInt(1), Y: L.CheckInt(2), W: L.CheckInt(3), H: L.CheckInt(4)}
	return 0
}

// load(path [, transparent]) returns a sprite.
func (h *Host) load(L *lua.LState) int {
	path := L.CheckString(1)
	if !filepath.IsAbs(path) {
		path = filepath.Join(h.baseDir, path)
	}

	opts := resource.DefaultOptions
	if L.GetTop() >= 2 {
		opts.Transparent = checkColor(L, 2)
	}
	src, err := resource.Load(path, opts)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(newSprite(L, src))
	return 1
}

// rgb(r, g, b) packs 8-bit channels into a color.
func rgb(L *lua.LState) int {
	c := video.RGB(uint8(L.CheckInt(1)), uint8(L.CheckInt(2)), uint8(L.CheckInt(3)))
	L.Push(lua.LNumber(c))
	return 1
}

func newSprite(L *lua.LState, src *video.PixelSource) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = src
	L.SetMetatable(ud, L.GetTypeMetatable(spriteType))
	return ud
}

func checkSprite(L *lua.LState, n int) *video.PixelSource {
	ud := L.CheckUserData(n)
	if src, ok := ud.Value.(*video.PixelSource); ok {
		return src
	}
	L.ArgError(n, "sprite expected")
	return nil
}

// sprite:size() returns width and height.
func spriteSize(L *lua.LState) int {
	src := checkSprite(L, 1)
	L.Push(lua.LNumber(src.Width))
	L.Push(lua.LNumber(src.Height))
	return 2
}
