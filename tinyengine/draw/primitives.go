package draw

import "github.com/valerio/go-tinyengine/tinyengine/video"

const (
	screenWidth  = video.FramebufferWidth
	screenHeight = video.FramebufferHeight
)

func inBounds(x, y int) bool {
	return x >= 0 && x < screenWidth && y >= 0 && y < screenHeight
}

// FillColor overwrites every pixel of dst with color.
func FillColor(dst *video.FrameBuffer, color video.Color) {
	dst.Fill(color)
}

// FillFromBuffer copies src into dst.
func FillFromBuffer(dst, src *video.FrameBuffer) {
	dst.CopyFrom(src)
}

// SetPixel writes color at (x, y). Coordinates outside the buffer are ignored.
func SetPixel(dst *video.FrameBuffer, color video.Color, x, y int) {
	if !inBounds(x, y) {
		return
	}
	dst.SetPixel(x, y, color)
}

// DrawLine draws a line with a digital differential analyzer. The step count
// is the larger of the truncated x and y deltas, so a segment whose
// fractional endpoints span one more pixel than its truncated length can end
// a pixel short. A zero length segment plots its start pixel.
func DrawLine(dst *video.FrameBuffer, color video.Color, x0, y0, x1, y1 float32) {
	dx := x1 - x0
	dy := y1 - y0

	steps := absInt(int(dx))
	if sy := absInt(int(dy)); sy > steps {
		steps = sy
	}

	x, y := x0, y0
	SetPixel(dst, color, int(x), int(y))
	if steps == 0 {
		return
	}

	slopeX := dx / float32(steps)
	slopeY := dy / float32(steps)
	for step := 0; step < steps; step++ {
		x += slopeX
		y += slopeY
		SetPixel(dst, color, int(x), int(y))
	}
}

// FillRect fills the axis-aligned rectangle with its top-left corner at (x, y).
func FillRect(dst *video.FrameBuffer, color video.Color, x, y, width, height int) {
	x0, y0, x1, y1 := clipRect(x, y, width, height)
	pixels := dst.ToSlice()
	for py := y0; py < y1; py++ {
		row := pixels[py*screenWidth+x0 : py*screenWidth+x1]
		for i := range row {
			row[i] = color
		}
	}
}

// OutlineRect draws the one pixel border of the axis-aligned rectangle.
func OutlineRect(dst *video.FrameBuffer, color video.Color, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	FillRect(dst, color, x, y, width, 1)
	FillRect(dst, color, x, y+height-1, width, 1)
	if height > 2 {
		FillRect(dst, color, x, y+1, 1, height-2)
		FillRect(dst, color, x+width-1, y+1, 1, height-2)
	}
}

// clipRect intersects a rectangle with the screen, returning half-open bounds.
// An empty result has x0 >= x1 or y0 >= y1.
func clipRect(x, y, width, height int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+width, screenWidth), min(y+height, screenHeight)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
