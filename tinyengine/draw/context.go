// Package draw rasterizes into the active frame buffer of a RenderContext:
// solid fills, lines, axis-aligned rectangles, and scaled or rotated sprite and
// rectangle blits built on fixed point shears.
package draw

import (
	"math"

	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// RenderContext bundles the double buffer and the texel stepper used by every
// draw call of a frame. It is not safe for concurrent use.
type RenderContext struct {
	buffers *video.Buffers
	stepper TexelStepper
}

// NewRenderContext creates a context over buffers. A nil stepper selects a
// SoftwareStepper.
func NewRenderContext(buffers *video.Buffers, stepper TexelStepper) *RenderContext {
	if stepper == nil {
		stepper = NewSoftwareStepper()
	}
	return &RenderContext{
		buffers: buffers,
		stepper: stepper,
	}
}

func (c *RenderContext) Buffers() *video.Buffers { return c.buffers }

func (c *RenderContext) Stepper() TexelStepper { return c.stepper }

// Target is the buffer currently being drawn into.
func (c *RenderContext) Target() *video.FrameBuffer {
	return c.buffers.Active()
}

// Clear resets the target to the configured fill color or background.
func (c *RenderContext) Clear() {
	c.buffers.Clear()
}

func (c *RenderContext) FillColor(color video.Color) {
	FillColor(c.Target(), color)
}

func (c *RenderContext) FillFromBuffer(src *video.FrameBuffer) {
	FillFromBuffer(c.Target(), src)
}

func (c *RenderContext) SetPixel(color video.Color, x, y int) {
	SetPixel(c.Target(), color, x, y)
}

func (c *RenderContext) DrawLine(color video.Color, x0, y0, x1, y1 float32) {
	DrawLine(c.Target(), color, x0, y0, x1, y1)
}

func (c *RenderContext) FillRect(color video.Color, x, y, width, height int) {
	FillRect(c.Target(), color, x, y, width, height)
}

func (c *RenderContext) OutlineRect(color video.Color, x, y, width, height int) {
	OutlineRect(c.Target(), color, x, y, width, height)
}

func (c *RenderContext) BlitScale(src *video.PixelSource, x, y int, xsc, ysc fixed.Q16) {
	BlitScale(c.Target(), src, x, y, xsc, ysc, c.stepper)
}

func (c *RenderContext) BlitScaleRotate(src *video.PixelSource, x, y int, xsc, ysc fixed.Q16, theta fixed.Angle) {
	BlitScaleRotate(c.Target(), src, x, y, xsc, ysc, theta, c.stepper)
}

func (c *RenderContext) FillRectRotate(color video.Color, x, y, width, height int, xsc, ysc fixed.Q16, theta fixed.Angle, vp Viewport) {
	FillRectScaleRotateViewport(c.Target(), color, x, y, width, height, xsc, ysc, theta, vp)
}

func (c *RenderContext) OutlineRectRotate(color video.Color, x, y, width, height int, xsc, ysc fixed.Q16, theta fixed.Angle, vp Viewport) {
	OutlineRectScaleRotateViewport(c.Target(), color, x, y, width, height, xsc, ysc, theta, vp)
}

// ThickLine draws a segment of the given thickness as a rectangle rotated
// onto the segment and centered on its midpoint. When outline is set only the
// four edges are drawn, as lines between the rotated corners. Outlines are
// not clipped to vp.
func (c *RenderContext) ThickLine(color video.Color, x0, y0, x1, y1, thickness float32, outline bool, vp Viewport) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	midX := float64(x0+x1) / 2
	midY := float64(y0+y1) / 2

	// The rectangle's height axis points down; rotating by atan2(dx, dy)
	// turns it onto the segment.
	theta := fixed.AngleFromRadians(math.Atan2(dx, dy))

	if !outline {
		c.FillRectRotate(color, int(midX), int(midY), int(thickness), int(length), fixed.One, fixed.One, theta, vp)
		return
	}

	a, b, _ := fixed.ShearCoefficients(theta)
	cos := fixed.Cos(a, b).Float()
	sin := -b.Float()
	hw := float64(thickness) / 2
	hh := length / 2

	// (u, v) maps to (u cos + v sin, v cos - u sin) around the midpoint.
	corner := func(u, v float64) (float32, float32) {
		return float32(midX + u*cos + v*sin), float32(midY + v*cos - u*sin)
	}
	ax, ay := corner(-hw, -hh)
	bx, by := corner(hw, -hh)
	cx, cy := corner(hw, hh)
	ex, ey := corner(-hw, hh)

	target := c.Target()
	DrawLine(target, color, ax, ay, bx, by)
	DrawLine(target, color, bx, by, cx, cy)
	DrawLine(target, color, cx, cy, ex, ey)
	DrawLine(target, color, ex, ey, ax, ay)
}
