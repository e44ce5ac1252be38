package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

func TestRenderContextDrawsIntoActiveBuffer(t *testing.T) {
	buffers := video.NewBuffers()
	ctx := NewRenderContext(buffers, nil)
	require.IsType(t, &SoftwareStepper{}, ctx.Stepper())

	ctx.SetPixel(video.RedColor, 1, 1)
	assert.Equal(t, video.RedColor, buffers.Active().GetPixel(1, 1))

	buffers.Swap()
	assert.Equal(t, video.RedColor, buffers.Inactive().GetPixel(1, 1))
	assert.Equal(t, video.BlackColor, ctx.Target().GetPixel(1, 1))

	ctx.FillRect(video.BlueColor, 0, 0, 2, 2)
	assert.Equal(t, 4, countColor(ctx.Target(), video.BlueColor))
	assert.Equal(t, 0, countColor(buffers.Inactive(), video.BlueColor))
}

func TestRenderContextClear(t *testing.T) {
	buffers := video.NewBuffers()
	buffers.SetFillColor(video.SkyBlueColor)
	ctx := NewRenderContext(buffers, NewInterpStepper())

	ctx.FillColor(video.RedColor)
	ctx.Clear()
	assert.Equal(t, video.FramebufferSize, countColor(ctx.Target(), video.SkyBlueColor))
}

func TestRenderContextBlitUsesStepper(t *testing.T) {
	src := patternSource(t, 4, 4, 4, video.NoTransparency)

	soft := NewRenderContext(video.NewBuffers(), NewSoftwareStepper())
	interp := NewRenderContext(video.NewBuffers(), NewInterpStepper())
	for _, ctx := range []*RenderContext{soft, interp} {
		ctx.BlitScale(src, 3, 3, 3*fixed.One, fixed.One+fixed.Half)
		ctx.BlitScaleRotate(src, 80, 80, 2*fixed.One, 2*fixed.One, 0)
	}
	assert.Equal(t, soft.Target().ToSlice(), interp.Target().ToSlice())
}

func TestThickLineFilled(t *testing.T) {
	ctx := NewRenderContext(video.NewBuffers(), nil)
	ctx.ThickLine(video.WhiteColor, 10, 20, 30, 20, 3, false, FullScreen)

	fb := ctx.Target()
	assert.Equal(t, 60, countColor(fb, video.WhiteColor))
	assert.Equal(t, video.WhiteColor, fb.GetPixel(20, 20))
	assert.Equal(t, video.WhiteColor, fb.GetPixel(10, 19))
	assert.Equal(t, video.BlackColor, fb.GetPixel(20, 22))
	assert.Equal(t, video.BlackColor, fb.GetPixel(30, 20))
}

func TestThickLineOutlined(t *testing.T) {
	ctx := NewRenderContext(video.NewBuffers(), nil)
	ctx.ThickLine(video.WhiteColor, 10, 20, 30, 20, 3, true, FullScreen)

	fb := ctx.Target()
	assert.Equal(t, video.WhiteColor, fb.GetPixel(20, 18))
	assert.Equal(t, video.WhiteColor, fb.GetPixel(20, 21))
	assert.Equal(t, video.BlackColor, fb.GetPixel(20, 20))
}
