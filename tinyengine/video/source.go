package video

import (
	"errors"
	"fmt"
)

// ErrInvalidPixelSource is returned when pixel source dimensions do not match its data.
var ErrInvalidPixelSource = errors.New("invalid pixel source")

// Texel coordinates are Q16.16, so a dimension must fit in 15 bits.
const maxSourceDimension = 0x7FFF

// PixelSource is a read-only rectangle of RGB565 texels. Stride is the number
// of texels between two rows and may exceed Width. Sources are borrowed by
// draw calls and never retained.
type PixelSource struct {
	Width       int
	Height      int
	Stride      int
	Data        []Color
	Transparent Color
}

// NewPixelSource validates the layout of data and wraps it. data is not copied.
func NewPixelSource(width, height, stride int, data []Color, transparent Color) (*PixelSource, error) {
	if width <= 0 || height <= 0 || width > maxSourceDimension || height > maxSourceDimension {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidPixelSource, width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("%w: stride %d smaller than width %d", ErrInvalidPixelSource, stride, width)
	}
	if need := stride*(height-1) + width; len(data) < need {
		return nil, fmt.Errorf("%w: have %d texels, need %d", ErrInvalidPixelSource, len(data), need)
	}

	return &PixelSource{
		Width:       width,
		Height:      height,
		Stride:      stride,
		Data:        data,
		Transparent: transparent,
	}, nil
}

// At returns the texel at (u, v). Coordinates are not checked.
func (s *PixelSource) At(u, v int) Color {
	return s.Data[v*s.Stride+u]
}

// Keyed reports whether the source has a transparency key.
func (s *PixelSource) Keyed() bool {
	return s.Transparent != NoTransparency
}
