package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/valerio/go-tinyengine/tinyengine/display"
	"github.com/valerio/go-tinyengine/tinyengine/video"
	"golang.org/x/image/draw"
)

// Format is an image encoding for frame snapshots.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat accepts "png" or "webp", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatWebP:
		return f, nil
	case "":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported snapshot format %q", s)
}

// TakeSnapshot handles F12 snapshot logic for backends
func TakeSnapshot(frame *video.FrameBuffer) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFrameToDir(frame, "tinyengine_snapshot", "", FormatPNG, display.DefaultPixelScale); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// FrameImage converts a framebuffer to an RGBA image, upscaled by scale with
// nearest neighbour sampling so pixels stay sharp.
func FrameImage(frame *video.FrameBuffer, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, video.FramebufferWidth, video.FramebufferHeight))
	for i, pixel := range frame.ToSlice() {
		idx := i * display.RGBABytesPerPixel
		r, g, b := pixel.RGB888()
		img.Pix[idx] = r
		img.Pix[idx+1] = g
		img.Pix[idx+2] = b
		img.Pix[idx+3] = display.FullAlpha
	}

	scale = min(max(scale, 1), display.MaxPixelScale)
	if scale == 1 {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, video.FramebufferWidth*scale, video.FramebufferHeight*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// EncodeFrame writes the frame to w in the given format.
func EncodeFrame(w io.Writer, frame *video.FrameBuffer, format Format, scale int) error {
	img := FrameImage(frame, scale)

	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("failed to encode WebP: %w", err)
		}
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
	return nil
}

// SaveFrameToDir saves a framebuffer with a timestamp to a specific directory
// and returns the written path. An empty directory means the working directory.
func SaveFrameToDir(frame *video.FrameBuffer, baseName, directory string, format Format, scale int) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", baseName, timestamp, format)

	// Determine output directory
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	filePath := filepath.Join(outputDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := EncodeFrame(file, frame, format, scale); err != nil {
		return "", err
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", video.FramebufferWidth, video.FramebufferHeight), "scale", scale, "format", format)
	return filePath, nil
}
