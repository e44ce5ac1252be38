package backend

import "github.com/valerio/go-tinyengine/tinyengine/video"

// Backend is a display sink. The engine hands it each finished frame.
// Backends are responsible for:
// - Presenting frames on their specific output (terminal, SDL window, files)
// - Watching for platform quit requests and reporting them through OnQuit
// - Handling backend-specific features (snapshots, log panels)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update presents the frame that was just drawn. The frame is only valid
	// until Update returns; backends that keep it must copy it.
	Update(frame *video.FrameBuffer) error

	// Cleanup resources when shutting down
	Cleanup() error
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title     string
	Scale     int              // Window pixel scale, 0 selects the default
	ShowLogs  bool             // Backends may ignore unsupported features
	Callbacks BackendCallbacks // Callbacks for backend communication
}

// BackendCallbacks allows backends to communicate with the engine
type BackendCallbacks struct {
	// OnQuit requests shutdown (e.g., window close, frame budget reached)
	OnQuit func()
}

// Quit invokes OnQuit if set.
func (c BackendCallbacks) Quit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}
