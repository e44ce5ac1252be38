package draw

import "github.com/valerio/go-tinyengine/tinyengine/video"

// Viewport is the screen region a camera may draw into.
type Viewport struct {
	X, Y int
	W, H int
}

// FullScreen covers the whole frame buffer.
var FullScreen = Viewport{X: 0, Y: 0, W: video.FramebufferWidth, H: video.FramebufferHeight}

// Contains reports whether (x, y) lies inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return IsInsideViewport(x, y, v.X, v.Y, v.W, v.H)
}

// IsInsideViewport reports whether x is in [vx, vx+vw) and y is in [vy, vy+vh).
func IsInsideViewport(x, y, vx, vy, vw, vh int) bool {
	return x >= vx && y >= vy && x < vx+vw && y < vy+vh
}
