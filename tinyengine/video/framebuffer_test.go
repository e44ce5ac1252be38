package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBufferSetGet(t *testing.T) {
	fb := NewFrameBuffer()
	assert.Len(t, fb.ToSlice(), FramebufferSize)

	fb.SetPixel(0, 0, RedColor)
	fb.SetPixel(127, 127, BlueColor)
	fb.SetPixel(5, 9, GreenColor)

	assert.Equal(t, RedColor, fb.GetPixel(0, 0))
	assert.Equal(t, BlueColor, fb.GetPixel(127, 127))
	assert.Equal(t, GreenColor, fb.ToSlice()[9*FramebufferWidth+5])
}

func TestFrameBufferFillIdempotent(t *testing.T) {
	fb := NewFrameBuffer()
	fb.Fill(OrangeColor)
	once := append([]Color(nil), fb.ToSlice()...)
	fb.Fill(OrangeColor)

	assert.Equal(t, once, fb.ToSlice())
	for _, px := range once {
		if px != OrangeColor {
			t.Fatalf("expected %04X everywhere, got %04X", OrangeColor, px)
		}
	}
}

func TestFrameBufferSource(t *testing.T) {
	fb := NewFrameBuffer()
	fb.SetPixel(3, 4, PinkColor)

	src := fb.Source(NoTransparency)
	assert.Equal(t, FramebufferWidth, src.Width)
	assert.Equal(t, FramebufferHeight, src.Height)
	assert.Equal(t, FramebufferWidth, src.Stride)
	assert.Equal(t, PinkColor, src.At(3, 4))
	assert.False(t, src.Keyed())
}
