package draw

import (
	"testing"

	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

func BenchmarkBlitScale(b *testing.B) {
	src := patternSource(b, 32, 32, 32, video.NoTransparency)

	steppers := []struct {
		name    string
		stepper TexelStepper
	}{
		{"software", NewSoftwareStepper()},
		{"interp", NewInterpStepper()},
	}

	for _, tc := range steppers {
		b.Run(tc.name, func(b *testing.B) {
			fb := video.NewFrameBuffer()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BlitScale(fb, src, 0, 0, 4*fixed.One, 4*fixed.One, tc.stepper)
			}
		})
	}
}

func BenchmarkBlitScaleRotate(b *testing.B) {
	src := patternSource(b, 32, 32, 32, video.NoTransparency)
	fb := video.NewFrameBuffer()
	stepper := NewSoftwareStepper()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BlitScaleRotate(fb, src, 64, 64, 3*fixed.One, 3*fixed.One, fixed.Angle(i), stepper)
	}
}

func BenchmarkFillRectRotate(b *testing.B) {
	fb := video.NewFrameBuffer()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillRectScaleRotateViewport(fb, video.RedColor, 64, 64, 80, 40, fixed.One, fixed.One, fixed.Angle(i), FullScreen)
	}
}
