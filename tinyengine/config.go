package tinyengine

import (
	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/display"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

// Config contains frame loop and rendering settings.
type Config struct {
	FPSLimit  float64     // target frames per second
	Limiter   string      // "adaptive", "ticker" or "none"
	Stepper   string      // texel stepper for scaled blits: "software" or "interp"
	FillColor video.Color // color every frame starts from
	// Display is passed to the backend's Init. OnQuit is chained with Engine.Stop.
	Display backend.BackendConfig
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.FPSLimit <= 0 {
		c.FPSLimit = 60
	}
	if c.Limiter == "" {
		c.Limiter = "adaptive"
	}
	if c.Stepper == "" {
		c.Stepper = "software"
	}
	if c.Display.Title == "" {
		c.Display.Title = "tinyengine"
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = display.DefaultPixelScale
	}
}
