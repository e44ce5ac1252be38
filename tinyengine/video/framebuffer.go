package video

const (
	FramebufferWidth  = 128
	FramebufferHeight = 128
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// FrameBuffer is a fixed-size RGB565 pixel array.
type FrameBuffer struct {
	buffer []Color
}

// NewFrameBuffer creates a frame buffer of FramebufferWidth x FramebufferHeight pixels.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]Color, FramebufferSize),
	}
}

func (fb *FrameBuffer) Width() int  { return FramebufferWidth }
func (fb *FrameBuffer) Height() int { return FramebufferHeight }

// GetPixel returns the pixel at (x, y). Coordinates are not checked.
func (fb *FrameBuffer) GetPixel(x, y int) Color {
	return fb.buffer[y*FramebufferWidth+x]
}

// SetPixel writes the pixel at (x, y). Coordinates are not checked; callers
// that may be out of range go through draw.SetPixel.
func (fb *FrameBuffer) SetPixel(x, y int, color Color) {
	fb.buffer[y*FramebufferWidth+x] = color
}

// Fill overwrites every pixel with color.
func (fb *FrameBuffer) Fill(color Color) {
	buf := fb.buffer
	for i := range buf {
		buf[i] = color
	}
}

// CopyFrom copies every pixel of src into fb.
func (fb *FrameBuffer) CopyFrom(src *FrameBuffer) {
	copy(fb.buffer, src.buffer)
}

// ToSlice exposes the backing pixels in row-major order.
func (fb *FrameBuffer) ToSlice() []Color {
	return fb.buffer
}

// Source views the frame buffer as a PixelSource so it can be blitted.
// The returned source shares memory with fb.
func (fb *FrameBuffer) Source(transparent Color) *PixelSource {
	return &PixelSource{
		Width:       FramebufferWidth,
		Height:      FramebufferHeight,
		Stride:      FramebufferWidth,
		Data:        fb.buffer,
		Transparent: transparent,
	}
}
