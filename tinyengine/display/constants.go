package display

import "github.com/valerio/go-tinyengine/tinyengine/video"

// RGB565 pixel format constants
const (
	// RGB565BytesPerPixel is the size of one framebuffer pixel
	RGB565BytesPerPixel = 2
	// RGB565Pitch is the number of bytes in one framebuffer row
	RGB565Pitch = video.FramebufferWidth * RGB565BytesPerPixel
	// RGBABytesPerPixel is the number of bytes per pixel in RGBA format
	RGBABytesPerPixel = 4
	// FullAlpha is the alpha value for fully opaque pixels
	FullAlpha = 255
)

// Backend scaling and window constants
const (
	// DefaultPixelScale is the default scaling factor for screen pixels
	DefaultPixelScale = 4
	// MaxPixelScale bounds window and snapshot upscaling
	MaxPixelScale = 16
	// DefaultWindowWidth is the default window width (screen width * scale)
	DefaultWindowWidth = video.FramebufferWidth * DefaultPixelScale // 512
	// DefaultWindowHeight is the default window height (screen height * scale)
	DefaultWindowHeight = video.FramebufferHeight * DefaultPixelScale // 512
)

// Terminal layout constants
const (
	// TerminalScreenRows is the number of text rows the screen takes with
	// two pixel rows per cell
	TerminalScreenRows = video.FramebufferHeight / 2
	// TerminalMinWidth leaves room for the screen, a divider and a log column
	TerminalMinWidth = video.FramebufferWidth + 20
	// TerminalMinHeight fits the screen plus title and help rows
	TerminalMinHeight = TerminalScreenRows + 2
)
