// Package demo holds built-in scenes that exercise every draw entry point.
package demo

import (
	"fmt"
	"math"
	"sort"

	"github.com/valerio/go-tinyengine/tinyengine"
	"github.com/valerio/go-tinyengine/tinyengine/draw"
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

const spriteSize = 16

// SpriteKey is the transparency key of DefaultSprite.
const SpriteKey = video.PinkColor

// DefaultSprite returns a 16x16 arrow with keyed corners. Its stride is a
// power of two so both texel steppers can sample it.
func DefaultSprite() *video.PixelSource {
	data := make([]video.Color, spriteSize*spriteSize)
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			c := SpriteKey
			switch {
			case y < 8 && x >= 7-y && x <= 8+y:
				c = video.YellowColor
			case y >= 8 && x >= 5 && x <= 10:
				c = video.OrangeColor
			}
			if x == 0 || y == 0 || x == spriteSize-1 || y == spriteSize-1 {
				if c != SpriteKey {
					c = video.BrownColor
				}
			}
			data[y*spriteSize+x] = c
		}
	}

	src, _ := video.NewPixelSource(spriteSize, spriteSize, spriteSize, data, SpriteKey)
	return src
}

// Factory builds a scene around a sprite.
type Factory func(sprite *video.PixelSource) tinyengine.Scene

var scenes = map[string]Factory{
	"primitives": Primitives,
	"sprites":    Sprites,
	"shapes":     Shapes,
}

// Names lists the built-in scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the named scene. A nil sprite selects DefaultSprite.
func New(name string, sprite *video.PixelSource) (tinyengine.Scene, error) {
	factory, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, available: %v", name, Names())
	}
	if sprite == nil {
		sprite = DefaultSprite()
	}
	return factory(sprite), nil
}

// Primitives draws pixels, lines and axis-aligned rectangles.
func Primitives(_ *video.PixelSource) tinyengine.Scene {
	return tinyengine.SceneFunc(func(ctx *draw.RenderContext, frame int) error {
		ctx.FillColor(video.DarkGreyColor)

		// A fan of lines around the center, rotating one step per frame.
		for i := 0; i < 16; i++ {
			theta := fixed.Angle(i*64 + frame*2).Radians()
			x1, y1 := polar(64, 64, 60, theta)
			ctx.DrawLine(video.SkyBlueColor, 64, 64, x1, y1)
		}

		ctx.FillRect(video.RedColor, 4, 4, 20, 12)
		ctx.OutlineRect(video.WhiteColor, 2, 2, 24, 16)
		ctx.FillRect(video.GreenColor, 104+frame%16, 108, 12, 12)
		for x := 0; x < video.FramebufferWidth; x += 4 {
			ctx.SetPixel(video.YellowColor, x, 125)
		}
		return nil
	})
}

// Sprites blits the sprite scaled, mirrored and rotated.
func Sprites(sprite *video.PixelSource) tinyengine.Scene {
	return tinyengine.SceneFunc(func(ctx *draw.RenderContext, frame int) error {
		ctx.FillColor(video.BlueColor)

		pulse := fixed.One + fixed.Q16(frame%32)*fixed.One/32
		ctx.BlitScale(sprite, 4, 4, pulse, pulse)
		ctx.BlitScale(sprite, 124, 4, -fixed.One, fixed.One)
		ctx.BlitScale(sprite, 4, 124, fixed.One, -fixed.One)

		theta := fixed.Angle(frame * 8)
		ctx.BlitScaleRotate(sprite, 64, 64, 3*fixed.One, 3*fixed.One, theta)
		ctx.BlitScaleRotate(sprite, 100, 100, fixed.One, fixed.One+fixed.Half, -theta)
		return nil
	})
}

// Shapes draws rotated rectangles clipped to a viewport, and thick lines.
func Shapes(_ *video.PixelSource) tinyengine.Scene {
	vp := draw.Viewport{X: 8, Y: 8, W: 112, H: 80}

	return tinyengine.SceneFunc(func(ctx *draw.RenderContext, frame int) error {
		ctx.FillColor(video.BlackColor)
		ctx.OutlineRect(video.GreyColor, vp.X-1, vp.Y-1, vp.W+2, vp.H+2)

		theta := fixed.Angle(frame * 6)
		ctx.FillRectRotate(video.PurpleColor, 64, 48, 60, 24, fixed.One, fixed.One, theta, vp)
		ctx.OutlineRectRotate(video.CyanColor, 64, 48, 60, 24, fixed.One+fixed.Half, fixed.One+fixed.Half, theta, vp)
		ctx.FillRectRotate(video.OrangeColor, 20, 20, 16, 16, fixed.One, fixed.One, -2*theta, vp)

		offset := float32(frame % 40)
		ctx.ThickLine(video.MagentaColor, 10, 100+offset/4, 118, 120-offset/4, 5, false, draw.FullScreen)
		ctx.ThickLine(video.LightGreyColor, 10, 110, 118, 110, 7, true, draw.FullScreen)
		return nil
	})
}

func polar(cx, cy, r float32, theta float64) (float32, float32) {
	return cx + r*float32(math.Cos(theta)), cy + r*float32(math.Sin(theta))
}
