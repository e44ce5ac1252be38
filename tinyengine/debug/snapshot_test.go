package debug

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

func testFrame() *video.FrameBuffer {
	frame := video.NewFrameBuffer()
	frame.Fill(video.BlueColor)
	frame.SetPixel(0, 0, video.WhiteColor)
	frame.SetPixel(127, 127, video.RedColor)
	return frame
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"webp", FormatWebP, false},
		{"", FormatPNG, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFrameImage(t *testing.T) {
	img := FrameImage(testFrame(), 1)
	assert.Equal(t, 128, img.Bounds().Dx())

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, []uint32{r, g, b, a})

	scaled := FrameImage(testFrame(), 3)
	assert.Equal(t, 384, scaled.Bounds().Dx())
	assert.Equal(t, 384, scaled.Bounds().Dy())
	assert.Equal(t, img.At(0, 0), scaled.At(2, 2))
	assert.Equal(t, img.At(127, 127), scaled.At(383, 381))
	assert.Equal(t, img.At(1, 0), scaled.At(3, 0))

	// Out of range scales are clamped.
	assert.Equal(t, 128, FrameImage(testFrame(), 0).Bounds().Dx())
}

func TestEncodeFramePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeFrame(&buf, testFrame(), FormatPNG, 1))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, video.RedColor, video.RGB565Model.Convert(img.At(127, 127)))
	assert.Equal(t, video.BlueColor, video.RGB565Model.Convert(img.At(64, 64)))
}

func TestEncodeFrameWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeFrame(&buf, testFrame(), FormatWebP, 2))

	data := buf.Bytes()
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestEncodeFrameUnknownFormat(t *testing.T) {
	assert.Error(t, EncodeFrame(&bytes.Buffer{}, testFrame(), Format("bmp"), 1))
}

func TestSaveFrameToDir(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveFrameToDir(testFrame(), "frame_1", dir, FormatWebP, 1)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "frame_1_"))
	assert.True(t, strings.HasSuffix(path, ".webp"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDumpRegion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpRegion(&buf, testFrame(), -1, 0, 3, 2))

	assert.Equal(t, "  0: FFFF 001F\n  1: 001F 001F\n", buf.String())
}

func TestDiffCount(t *testing.T) {
	a, b := testFrame(), testFrame()
	assert.Equal(t, 0, DiffCount(a, b))

	b.SetPixel(5, 5, video.GreenColor)
	b.SetPixel(6, 5, video.GreenColor)
	assert.Equal(t, 2, DiffCount(a, b))
}
