package draw

import (
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// BlitScale copies src into dst with its top-left corner at (x, y), scaled by
// (xsc, ysc). A negative scale mirrors the source along that axis. Texels equal
// to the source transparency key are skipped and destination pixels outside
// the buffer are dropped.
//
// Texel lookup goes through stepper. If stepper is nil or rejects the source
// stride, a SoftwareStepper is used instead.
func BlitScale(dst *video.FrameBuffer, src *video.PixelSource, x, y int, xsc, ysc fixed.Q16, stepper TexelStepper) {
	w, ok := newTexelWalk(src, x, y, xsc, ysc)
	if !ok {
		return
	}

	if stepper == nil || !stepper.Configure(src.Stride) {
		sw := NewSoftwareStepper()
		sw.Configure(src.Stride)
		stepper = sw
	}

	pixels := dst.ToSlice()
	keyed := src.Keyed()

	ty := w.ty0
	for cy := 0; cy < w.ye; cy, ty = cy+1, ty+w.dty {
		py := w.y + cy
		if py < 0 || py >= screenHeight {
			continue
		}

		stepper.Row(w.tx0, w.dtx, ty)
		row := pixels[py*screenWidth : (py+1)*screenWidth]
		for cx := 0; cx < w.xe; cx++ {
			texel := src.Data[stepper.Next()]
			px := w.x + cx
			if px < 0 || px >= screenWidth {
				continue
			}
			if keyed && texel == src.Transparent {
				continue
			}
			row[px] = texel
		}
	}
}
