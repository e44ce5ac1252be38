package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/debug"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// Backend implements the Backend interface for automated testing and batch processing
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	lastFrame      *video.FrameBuffer
	saved          []string
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int          // Save snapshot every N frames
	Directory string       // Directory to save snapshots
	Name      string       // Scene name for snapshot filenames
	Format    debug.Format // PNG or WebP
	Scale     int          // Nearest neighbour upscale factor
}

// New creates a backend that quits after maxFrames frames. A non-positive
// maxFrames runs until the engine is stopped.
func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		lastFrame:      video.NewFrameBuffer(),
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	if config.ShowLogs {
		// Set up debug logging for headless mode
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	return nil
}

// Update counts the frame, keeps a copy of it and handles snapshots
func (h *Backend) Update(frame *video.FrameBuffer) error {
	h.frameCount++
	h.lastFrame.CopyFrom(frame)

	// Save snapshot if needed
	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	// Log progress periodically
	if h.frameCount%10 == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.maxFrames <= 0 || h.frameCount < h.maxFrames {
		return nil
	}

	// Save final snapshot if enabled and we haven't just saved one
	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
		h.saveSnapshot(frame)
	}

	if h.snapshotConfig.Enabled {
		slog.Info("Headless execution completed", "frames", h.frameCount, "snapshots_saved_to", h.snapshotConfig.Directory)
	} else {
		slog.Info("Headless execution completed", "frames", h.frameCount)
	}

	h.config.Callbacks.Quit()
	return nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns the number of frames presented so far.
func (h *Backend) FrameCount() int {
	return h.frameCount
}

// LastFrame returns a copy of the most recently presented frame.
func (h *Backend) LastFrame() *video.FrameBuffer {
	return h.lastFrame
}

// Snapshots lists the files written so far, oldest first.
func (h *Backend) Snapshots() []string {
	return h.saved
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, sceneName, format string, scale int) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Scale:    scale,
	}

	if !config.Enabled {
		return config, nil
	}

	f, err := debug.ParseFormat(format)
	if err != nil {
		return config, err
	}
	config.Format = f

	// Set up snapshot directory
	if directory == "" {
		tempDir, err := os.MkdirTemp("", "tinyengine-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	// Scene names may be script paths
	config.Name = filepath.Base(sceneName)
	config.Name = strings.TrimSuffix(config.Name, filepath.Ext(config.Name))
	if config.Name == "" || config.Name == "." {
		config.Name = "tinyengine"
	}

	return config, nil
}

// saveSnapshot saves a snapshot for the current frame
func (h *Backend) saveSnapshot(frame *video.FrameBuffer) {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)

	path, err := debug.SaveFrameToDir(frame, baseName, h.snapshotConfig.Directory, h.snapshotConfig.Format, h.snapshotConfig.Scale)
	if err != nil {
		slog.Error("Failed to save snapshot", "frame", h.frameCount, "error", err)
		return
	}
	h.saved = append(h.saved, path)
}
