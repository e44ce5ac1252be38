package draw

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// patternSource returns a width x height source where every texel is unique
// and never equals the transparency key.
func patternSource(t testing.TB, width, height, stride int, transparent video.Color) *video.PixelSource {
	t.Helper()
	data := make([]video.Color, stride*height)
	for v := 0; v < height; v++ {
		for u := 0; u < stride; u++ {
			data[v*stride+u] = video.Color(0x1000 + v*stride + u)
		}
	}
	src, err := video.NewPixelSource(width, height, stride, data, transparent)
	require.NoError(t, err)
	return src
}

func countColor(fb *video.FrameBuffer, color video.Color) int {
	n := 0
	for _, p := range fb.ToSlice() {
		if p == color {
			n++
		}
	}
	return n
}

func countNot(fb *video.FrameBuffer, color video.Color) int {
	return len(fb.ToSlice()) - countColor(fb, color)
}
