package draw

import (
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// scaledExtent returns size*scale truncated toward negative infinity.
func scaledExtent(size int, scale fixed.Q16) int {
	return int((int64(size) * int64(scale)) >> fixed.FracBits)
}

// texelWalk is the destination extent and source sampling start of a scaled
// blit. A negative scale mirrors the source: the destination still spans
// [x, x+xe) but texels are read from the right (or bottom) edge leftwards.
type texelWalk struct {
	x, y   int
	xe, ye int

	tx0, dtx fixed.Q16
	ty0, dty fixed.Q16
}

// newTexelWalk samples texel centers: the first pixel reads half a step into
// the source, so destination pixel i maps to source coordinate (i+0.5)*step.
// The walk is empty when either extent truncates to zero.
func newTexelWalk(src *video.PixelSource, x, y int, xsc, ysc fixed.Q16) (texelWalk, bool) {
	xe := scaledExtent(src.Width, xsc)
	ye := scaledExtent(src.Height, ysc)
	if xe == 0 || ye == 0 {
		return texelWalk{}, false
	}

	w := texelWalk{
		x:   x,
		y:   y,
		xe:  xe,
		ye:  ye,
		dtx: fixed.Q16((int64(src.Width) << fixed.FracBits) / int64(xe)),
		dty: fixed.Q16((int64(src.Height) << fixed.FracBits) / int64(ye)),
	}
	w.tx0 = w.dtx >> 1
	w.ty0 = w.dty >> 1

	if xe < 0 {
		w.xe = -xe
		w.x -= w.xe
		w.tx0 = fixed.FromInt(src.Width) - (-w.dtx)>>1
	}
	if ye < 0 {
		w.ye = -ye
		w.y -= w.ye
		w.ty0 = fixed.FromInt(src.Height) - (-w.dty)>>1
	}
	return w, true
}
