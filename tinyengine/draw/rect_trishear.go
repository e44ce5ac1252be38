package draw

import (
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// rectExtent scales a width by height rectangle and moves its corner left
// (or up) for a negative scale so the extents are always positive.
func rectExtent(x, y, width, height int, xsc, ysc fixed.Q16) (rx, ry, xe, ye int) {
	xe = scaledExtent(width, xsc)
	ye = scaledExtent(height, ysc)
	if xe < 0 {
		xe = -xe
		x -= xe
	}
	if ye < 0 {
		ye = -ye
		y -= ye
	}
	return x, y, xe, ye
}

func plotClipped(pixels []video.Color, vp Viewport, x, y int, color video.Color) {
	if inBounds(x, y) && vp.Contains(x, y) {
		pixels[y*screenWidth+x] = color
	}
}

// FillRectScaleTrishearViewport fills a width by height rectangle scaled by
// (xsc, ysc) and sheared by (xsr, ysr, xsr2), walking it the same way
// BlitScaleTrishear walks a source. Only pixels inside vp are written.
func FillRectScaleTrishearViewport(dst *video.FrameBuffer, color video.Color, x, y, width, height int, xsc, ysc, xsr, ysr, xsr2 fixed.Q16, vp Viewport) {
	x, y, xe, ye := rectExtent(x, y, width, height, xsc, ysc)
	pixels := dst.ToSlice()

	xshift := 0
	for cy := 0; cy < ye; cy++ {
		rowShift := xshift >> 16
		yp := (y+cy)<<16 + rowShift*int(ysr)
		for cx := 0; cx < xe; cx++ {
			py := yp >> 16
			px := x + cx + rowShift + (((py - y) * int(xsr2)) >> 16)
			plotClipped(pixels, vp, px, py, color)
			yp += int(ysr)
		}
		xshift += int(xsr)
	}
}

// OutlineRectScaleTrishearViewport draws the border of the rectangle
// FillRectScaleTrishearViewport would fill: its first and last rows in full
// and the first and last pixel of every row in between.
func OutlineRectScaleTrishearViewport(dst *video.FrameBuffer, color video.Color, x, y, width, height int, xsc, ysc, xsr, ysr, xsr2 fixed.Q16, vp Viewport) {
	x, y, xe, ye := rectExtent(x, y, width, height, xsc, ysc)
	pixels := dst.ToSlice()

	xshift := 0
	for cy := 0; cy < ye; cy++ {
		rowShift := xshift >> 16
		yp := (y+cy)<<16 + rowShift*int(ysr)

		step := 1
		if cy != 0 && cy != ye-1 && xe > 1 {
			step = xe - 1
		}
		for cx := 0; cx < xe; cx += step {
			py := (yp + cx*int(ysr)) >> 16
			px := x + cx + rowShift + (((py - y) * int(xsr2)) >> 16)
			plotClipped(pixels, vp, px, py, color)
		}
		xshift += int(xsr)
	}
}

// FillRectScaleRotateViewport fills a width by height rectangle scaled by
// (xsc, ysc) and rotated by theta about its center, which lands on (x, y).
func FillRectScaleRotateViewport(dst *video.FrameBuffer, color video.Color, x, y, width, height int, xsc, ysc fixed.Q16, theta fixed.Angle, vp Viewport) {
	a, b, _ := fixed.ShearCoefficients(theta)
	dx, dy := rectPivot(width, height, xsc, ysc, a, b)
	FillRectScaleTrishearViewport(dst, color, x-dx, y-dy, width, height, xsc, ysc, a, b, a, vp)
}

// OutlineRectScaleRotateViewport is the outline counterpart of
// FillRectScaleRotateViewport.
func OutlineRectScaleRotateViewport(dst *video.FrameBuffer, color video.Color, x, y, width, height int, xsc, ysc fixed.Q16, theta fixed.Angle, vp Viewport) {
	a, b, _ := fixed.ShearCoefficients(theta)
	dx, dy := rectPivot(width, height, xsc, ysc, a, b)
	OutlineRectScaleTrishearViewport(dst, color, x-dx, y-dy, width, height, xsc, ysc, a, b, a, vp)
}

// A rectangle is symmetric under a half turn, so the fold's flip is dropped.
func rectPivot(width, height int, xsc, ysc, a, b fixed.Q16) (dx, dy int) {
	xe := absInt(scaledExtent(width, xsc))
	ye := absInt(scaledExtent(height, ysc))
	return RotationPivotOffset(xe, ye, a, b, xsc < 0, ysc < 0)
}
