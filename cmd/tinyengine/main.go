package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"
	"github.com/valerio/go-tinyengine/tinyengine"
	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/backend/headless"
	"github.com/valerio/go-tinyengine/tinyengine/backend/sdl2"
	"github.com/valerio/go-tinyengine/tinyengine/backend/terminal"
	"github.com/valerio/go-tinyengine/tinyengine/demo"
	"github.com/valerio/go-tinyengine/tinyengine/resource"
	"github.com/valerio/go-tinyengine/tinyengine/script"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "tinyengine"
	app.Description = "A 128x128 RGB565 software rasterizer"
	app.Usage = "tinyengine [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Usage: "Built-in scene to run (" + strings.Join(demo.Names(), ", ") + ")",
			Value: "sprites",
		},
		cli.StringFlag{
			Name:  "script",
			Usage: "Lua script defining draw(frame); overrides --scene",
		},
		cli.StringFlag{
			Name:  "sprite",
			Usage: "Image (bmp, png, tga) used as the scene sprite",
		},
		cli.StringFlag{
			Name:  "transparent",
			Usage: "Transparency key of --sprite, a color name or RGB565 value (e.g. pink, 0xF81F)",
		},
		cli.StringFlag{
			Name:  "stepper",
			Usage: "Texel stepper for scaled blits: software or interp",
			Value: "software",
		},
		cli.Float64Flag{
			Name:  "fps",
			Usage: "Frame rate limit",
			Value: 60,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame limiter: adaptive, ticker or none",
			Value: "adaptive",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window pixel scale (sdl2)",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "logs",
			Usage: "Show the log panel (terminal) or debug logs (headless)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.BoolFlag{
			Name:  "sdl2",
			Usage: "Use the SDL2 window backend (requires -tags sdl2)",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "snapshot-format",
			Usage: "Snapshot image format: png or webp",
			Value: "png",
		},
		cli.IntFlag{
			Name:  "snapshot-scale",
			Usage: "Snapshot upscale factor",
			Value: 1,
		},
	}
	app.Action = runEngine

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running engine", "error", err)
		os.Exit(1)
	}
}

func runEngine(c *cli.Context) error {
	sprite, err := loadSprite(c.String("sprite"), c.String("transparent"), c.String("stepper") == "interp")
	if err != nil {
		return err
	}

	scene, name, cleanup, err := createScene(c.String("scene"), c.String("script"), sprite)
	if err != nil {
		return err
	}
	defer cleanup()

	b, err := createBackend(c, name)
	if err != nil {
		return err
	}

	config := tinyengine.Config{
		FPSLimit: c.Float64("fps"),
		Limiter:  c.String("limiter"),
		Stepper:  c.String("stepper"),
		Display: backend.BackendConfig{
			Title:    "tinyengine - " + name,
			Scale:    c.Int("scale"),
			ShowLogs: c.Bool("logs") || c.Bool("headless"),
		},
	}
	if c.Bool("headless") {
		config.Limiter = "none"
	}

	engine, err := tinyengine.New(config, b, scene)
	if err != nil {
		return err
	}
	return engine.Run()
}

func createScene(sceneName, scriptPath string, sprite *video.PixelSource) (tinyengine.Scene, string, func(), error) {
	if scriptPath == "" {
		scene, err := demo.New(sceneName, sprite)
		return scene, sceneName, func() {}, err
	}

	if sprite == nil {
		sprite = demo.DefaultSprite()
	}
	host := script.New(sprite)
	if err := host.LoadFile(scriptPath); err != nil {
		host.Close()
		return nil, "", nil, err
	}
	return host, scriptPath, host.Close, nil
}

func createBackend(c *cli.Context, sceneName string) (backend.Backend, error) {
	switch {
	case c.Bool("headless"):
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, errors.New("headless mode requires --frames option with a positive value")
		}

		snapshotConfig, err := headless.CreateSnapshotConfig(
			c.Int("snapshot-interval"),
			c.String("snapshot-dir"),
			sceneName,
			c.String("snapshot-format"),
			c.Int("snapshot-scale"),
		)
		if err != nil {
			return nil, err
		}

		return headless.New(frames, snapshotConfig), nil
	case c.Bool("sdl2"):
		return sdl2.New(), nil
	default:
		return terminal.New(), nil
	}
}

// loadSprite pads the stride to a power of two when the interp stepper will
// sample it.
func loadSprite(path, transparent string, padStride bool) (*video.PixelSource, error) {
	if path == "" {
		return nil, nil
	}

	opts := resource.DefaultOptions
	opts.PadStride = padStride
	if transparent != "" {
		key, err := parseColor(transparent)
		if err != nil {
			return nil, err
		}
		opts.Transparent = key
	}

	sprite, err := resource.Load(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite: %w", err)
	}
	slog.Info("Loaded sprite", "path", path, "width", sprite.Width, "height", sprite.Height, "stride", sprite.Stride)
	return sprite, nil
}

// parseColor accepts a named color or an RGB565 integer in any base
// strconv understands.
func parseColor(s string) (video.Color, error) {
	if c, ok := video.NamedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return video.Color(v), nil
}
