package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// UpperHalfBlock draws the top pixel in the foreground and the bottom one in
// the background, packing two pixel rows into one text row.
const UpperHalfBlock = '▀'

// PixelColor converts an RGB565 pixel to a true-colour terminal color.
func PixelColor(pixel video.Color) tcell.Color {
	r, g, b := pixel.RGB888()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HalfBlockCell returns the glyph and style for a cell showing top above bottom.
func HalfBlockCell(top, bottom video.Color) (rune, tcell.Style) {
	style := tcell.StyleDefault.Foreground(PixelColor(top)).Background(PixelColor(bottom))
	return UpperHalfBlock, style
}
