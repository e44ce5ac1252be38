package debug

import (
	"bufio"
	"fmt"
	"io"

	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// DumpRegion writes the RGB565 values of a frame region as hex, one row per
// line. The region is clipped to the frame.
func DumpRegion(w io.Writer, frame *video.FrameBuffer, x, y, width, height int) error {
	x0, y0 := max(x, 0), max(y, 0)
	x1 := min(x+width, video.FramebufferWidth)
	y1 := min(y+height, video.FramebufferHeight)

	bw := bufio.NewWriter(w)
	for py := y0; py < y1; py++ {
		fmt.Fprintf(bw, "%3d:", py)
		for px := x0; px < x1; px++ {
			fmt.Fprintf(bw, " %04X", uint16(frame.GetPixel(px, py)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DiffCount returns the number of pixels that differ between two frames.
func DiffCount(a, b *video.FrameBuffer) int {
	n := 0
	pa, pb := a.ToSlice(), b.ToSlice()
	for i := range pa {
		if pa[i] != pb[i] {
			n++
		}
	}
	return n
}
