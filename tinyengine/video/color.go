package video

import "image/color"

// Color is a 16-bit RGB565 pixel: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

const (
	BlackColor     Color = 0x0000
	WhiteColor     Color = 0xFFFF
	RedColor       Color = 0xF800
	GreenColor     Color = 0x07E0
	BlueColor      Color = 0x001F
	YellowColor    Color = 0xFFE0
	CyanColor      Color = 0x07FF
	MagentaColor   Color = 0xF81F
	OrangeColor    Color = 0xFD20
	BrownColor     Color = 0xA145
	GreyColor      Color = 0x8410
	DarkGreyColor  Color = 0x4208
	LightGreyColor Color = 0xC618
	SkyBlueColor   Color = 0x867D
	PurpleColor    Color = 0x8010
	PinkColor      Color = 0xFE19
)

// NoTransparency is the reserved transparency key meaning every source pixel
// is opaque. It is a near-black that assets are not expected to use as a key.
const NoTransparency Color = 0x0821

// NamedColors maps the lowercase names exposed to scene scripts.
var NamedColors = map[string]Color{
	"black":     BlackColor,
	"white":     WhiteColor,
	"red":       RedColor,
	"green":     GreenColor,
	"blue":      BlueColor,
	"yellow":    YellowColor,
	"cyan":      CyanColor,
	"magenta":   MagentaColor,
	"orange":    OrangeColor,
	"brown":     BrownColor,
	"grey":      GreyColor,
	"darkgrey":  DarkGreyColor,
	"lightgrey": LightGreyColor,
	"skyblue":   SkyBlueColor,
	"purple":    PurpleColor,
	"pink":      PinkColor,
}

// RGB packs 8-bit channels into RGB565, dropping the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB888 expands the color to 8-bit channels, replicating the high bits into
// the low ones so that white stays 0xFF.
func (c Color) RGB888() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB888()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// RGB565Model converts any color to the framebuffer format.
var RGB565Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
