// Package resource decodes image files into pixel sources the rasterizer can
// blit. BMP, PNG and TGA are supported.
package resource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"github.com/valerio/go-tinyengine/tinyengine/bit"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// ErrUnsupportedFormat is returned for data no registered decoder recognizes.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Options control how decoded images become pixel sources.
type Options struct {
	// Transparent is the source's transparency key. Pixels with alpha below
	// half are replaced by it unless it is video.NoTransparency.
	Transparent video.Color
	// PadStride rounds the row stride up to a power of two so the
	// interpolator stepper can sample the source.
	PadStride bool
}

// DefaultOptions keeps every pixel and the natural stride.
var DefaultOptions = Options{Transparent: video.NoTransparency}

// decoders picks a decoder by file extension. TGA has no magic number, so
// files are never sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".bmp": bmp.Decode,
	".png": png.Decode,
	".tga": tga.Decode,
}

// Load reads and decodes the image file at path.
func Load(path string, opts Options) (*video.PixelSource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	src, err := FromImage(img, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return src, nil
}

// Decode sniffs the format of the image in r and decodes it.
func Decode(r io.Reader, opts Options) (*video.PixelSource, error) {
	img, format, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	src, err := FromImage(img, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s image: %w", format, err)
	}
	return src, nil
}

// FromImage converts img to RGB565.
func FromImage(img image.Image, opts Options) (*video.PixelSource, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	stride := width
	if opts.PadStride {
		stride = nextPow2(width)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty image", video.ErrInvalidPixelSource)
	}

	keyed := opts.Transparent != video.NoTransparency
	data := make([]video.Color, stride*height)
	for y := 0; y < height; y++ {
		row := data[y*stride : y*stride+width]
		for x := range row {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			if _, _, _, a := c.RGBA(); keyed && a < 0x8000 {
				row[x] = opts.Transparent
				continue
			}
			row[x] = video.RGB565Model.Convert(c).(video.Color)
		}
	}

	return video.NewPixelSource(width, height, stride, data, opts.Transparent)
}

func nextPow2(v int) int {
	if v <= 1 || bit.IsPow2(v) {
		return max(v, 1)
	}
	return 1 << (bit.Log2(v) + 1)
}
