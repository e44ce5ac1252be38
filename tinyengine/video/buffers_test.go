package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffersActiveNeverNil(t *testing.T) {
	b := NewBuffers()
	for i := 0; i < 5; i++ {
		require.NotNil(t, b.Active())
		require.NotNil(t, b.Inactive())
		assert.NotSame(t, b.Active(), b.Inactive())
		b.Swap()
	}
}

func TestBuffersSwapInvolution(t *testing.T) {
	b := NewBuffers()
	first := b.Active()

	b.Swap()
	assert.NotSame(t, first, b.Active())
	assert.Same(t, first, b.Inactive())

	b.Swap()
	assert.Same(t, first, b.Active())
}

func TestBuffersClearWithColor(t *testing.T) {
	b := NewBuffers()
	b.SetFillColor(SkyBlueColor)
	assert.Equal(t, SkyBlueColor, b.FillColor())

	b.Clear()
	for _, px := range b.Active().ToSlice() {
		require.Equal(t, SkyBlueColor, px)
	}

	// Only the active buffer is touched.
	for _, px := range b.Inactive().ToSlice() {
		require.Equal(t, BlackColor, px)
	}
}

func TestBuffersClearWithBackground(t *testing.T) {
	b := NewBuffers()
	b.SetFillColor(RedColor)

	bg := NewFrameBuffer()
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			bg.SetPixel(x, y, Color(y*FramebufferWidth+x))
		}
	}
	b.SetFillBackground(bg)
	assert.Same(t, bg, b.FillBackground())

	b.Clear()
	assert.Equal(t, bg.ToSlice(), b.Active().ToSlice())
	assert.NotSame(t, bg, b.Active())

	b.SetFillBackground(nil)
	b.Clear()
	assert.Equal(t, RedColor, b.Active().GetPixel(64, 64))
}
