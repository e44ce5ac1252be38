package draw

import (
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// BlitScaleTrishear draws src scaled by (xsc, ysc) and then sheared by the
// x-y-x sequence (xsr, ysr, xsr2). With xsr = xsr2 = tan(θ/2) and
// ysr = -sin θ the three shears compose to a rotation by θ. If flip is set
// the source is sampled rotated by half a turn.
//
// (x, y) is where the unsheared top-left corner lands. Each step of the walk
// writes at most one pixel and out of bounds writes are dropped. Texels equal
// to the transparency key are skipped.
func BlitScaleTrishear(dst *video.FrameBuffer, src *video.PixelSource, x, y int, xsc, ysc, xsr, ysr, xsr2 fixed.Q16, flip bool) {
	w, ok := newTexelWalk(src, x, y, xsc, ysc)
	if !ok {
		return
	}

	pixels := dst.ToSlice()
	keyed := src.Keyed()

	xshift := 0
	ty := w.ty0
	for cy := 0; cy < w.ye; cy++ {
		rowShift := xshift >> 16
		yshift := rowShift * int(ysr)

		v := int(ty.Int())
		if flip {
			v = src.Height - 1 - v
		}
		rowOff := v * src.Stride

		tx := w.tx0
		for cx := 0; cx < w.xe; cx++ {
			ry := cy + (yshift >> 16)
			px := w.x + cx + rowShift + ((ry * int(xsr2)) >> 16)
			py := w.y + ry

			if inBounds(px, py) {
				u := int(tx.Int())
				if flip {
					u = src.Width - 1 - u
				}
				if texel := src.Data[rowOff+u]; !keyed || texel != src.Transparent {
					pixels[py*screenWidth+px] = texel
				}
			}

			tx += w.dtx
			yshift += int(ysr)
		}

		xshift += int(xsr)
		ty += w.dty
	}
}

// BlitScaleRotate draws src scaled by (xsc, ysc) and rotated by theta about
// the center of the scaled image, which lands on (x, y). A zero angle takes the
// axis-aligned path through stepper and produces the same pixels.
func BlitScaleRotate(dst *video.FrameBuffer, src *video.PixelSource, x, y int, xsc, ysc fixed.Q16, theta fixed.Angle, stepper TexelStepper) {
	xe := absInt(scaledExtent(src.Width, xsc))
	ye := absInt(scaledExtent(src.Height, ysc))

	if theta.Normalize() == 0 {
		dx, dy := RotationPivotOffset(xe, ye, 0, 0, xsc < 0, ysc < 0)
		BlitScale(dst, src, x-dx, y-dy, xsc, ysc, stepper)
		return
	}

	a, b, flip := fixed.ShearCoefficients(theta)
	dx, dy := RotationPivotOffset(xe, ye, a, b, xsc < 0, ysc < 0)
	BlitScaleTrishear(dst, src, x-dx, y-dy, xsc, ysc, a, b, a, flip)
}
