package integration

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tinyengine/tinyengine"
	"github.com/valerio/go-tinyengine/tinyengine/backend/headless"
	"github.com/valerio/go-tinyengine/tinyengine/debug"
	"github.com/valerio/go-tinyengine/tinyengine/demo"
	"github.com/valerio/go-tinyengine/tinyengine/draw"
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
	"github.com/valerio/go-tinyengine/tinyengine/script"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

const frames = 60

// run drives scene headless for n frames and returns the last presented frame.
func run(t *testing.T, scene tinyengine.Scene, stepper string, n int, snapshots headless.SnapshotConfig) (*video.FrameBuffer, *headless.Backend) {
	t.Helper()

	b := headless.New(n, snapshots)
	engine, err := tinyengine.New(tinyengine.Config{Limiter: "none", Stepper: stepper}, b, scene)
	require.NoError(t, err)
	require.NoError(t, engine.Run())
	require.Equal(t, n, b.FrameCount())
	return b.LastFrame(), b
}

func frameBytes(fb *video.FrameBuffer) []byte {
	pixels := fb.ToSlice()
	data := make([]byte, 0, 2*len(pixels))
	for _, p := range pixels {
		data = append(data, byte(p), byte(p>>8))
	}
	return data
}

func TestScenesMatchAcrossSteppers(t *testing.T) {
	for _, name := range demo.Names() {
		t.Run(name, func(t *testing.T) {
			soft, err := demo.New(name, nil)
			require.NoError(t, err)
			interp, err := demo.New(name, nil)
			require.NoError(t, err)

			a, _ := run(t, soft, "software", frames, headless.SnapshotConfig{})
			b, _ := run(t, interp, "interp", frames, headless.SnapshotConfig{})

			if diff := debug.DiffCount(a, b); diff != 0 {
				var sb strings.Builder
				_ = debug.DumpRegion(&sb, a, 56, 56, 16, 16)
				t.Fatalf("steppers disagree on %d pixels, software frame center:\n%s", diff, sb.String())
			}
		})
	}
}

func TestScenesAreDeterministic(t *testing.T) {
	for _, name := range demo.Names() {
		t.Run(name, func(t *testing.T) {
			first, err := demo.New(name, nil)
			require.NoError(t, err)
			second, err := demo.New(name, nil)
			require.NoError(t, err)

			a, _ := run(t, first, "software", frames, headless.SnapshotConfig{})
			b, _ := run(t, second, "software", frames, headless.SnapshotConfig{})
			assert.Equal(t, md5.Sum(frameBytes(a)), md5.Sum(frameBytes(b)))
		})
	}
}

// TestGoldenFrames compares each scene's last frame with testdata/<scene>.bin.
// Set TINYENGINE_GENERATE_GOLDEN=true to (re)write the reference files.
func TestGoldenFrames(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	for _, name := range demo.Names() {
		t.Run(name, func(t *testing.T) {
			scene, err := demo.New(name, nil)
			require.NoError(t, err)
			fb, _ := run(t, scene, "software", frames, headless.SnapshotConfig{})

			data := frameBytes(fb)
			hash := fmt.Sprintf("%x", md5.Sum(data))
			binPath := filepath.Join("testdata", name+".bin")

			if os.Getenv("TINYENGINE_GENERATE_GOLDEN") == "true" {
				require.NoError(t, os.MkdirAll(filepath.Join("testdata", "snapshots"), 0755))
				require.NoError(t, os.WriteFile(binPath, data, 0644))
				_, err := debug.SaveFrameToDir(fb, name, filepath.Join("testdata", "snapshots"), debug.FormatPNG, 4)
				require.NoError(t, err)
				t.Logf("Reference files generated - hash: %s", hash)
				return
			}

			expected, err := os.ReadFile(binPath)
			if os.IsNotExist(err) {
				t.Skipf("Reference file not found: %s. Run with TINYENGINE_GENERATE_GOLDEN=true to generate it.", binPath)
			}
			require.NoError(t, err)

			expectedHash := fmt.Sprintf("%x", md5.Sum(expected))
			if hash != expectedHash {
				actualPath := filepath.Join("testdata", name+"_actual.bin")
				_ = os.WriteFile(actualPath, data, 0644)
				t.Errorf("Frame differs from reference\n  Expected hash: %s\n  Actual hash:   %s\n  Saved:         %s",
					expectedHash, hash, actualPath)
			}
		})
	}
}

func TestSnapshotsWritten(t *testing.T) {
	dir := t.TempDir()
	config, err := headless.CreateSnapshotConfig(10, dir, "shapes", "webp", 2)
	require.NoError(t, err)

	scene, err := demo.New("shapes", nil)
	require.NoError(t, err)
	_, b := run(t, scene, "software", 35, config)

	// Three periodic snapshots plus the final one.
	assert.Len(t, b.Snapshots(), 4)
	for _, path := range b.Snapshots() {
		assert.FileExists(t, path)
		assert.Equal(t, ".webp", filepath.Ext(path))
	}
}

func TestScriptMatchesGoScene(t *testing.T) {
	const source = `
function draw(frame)
	engine_draw.fill(engine_draw.darkgrey)
	engine_draw.rotated_rect(engine_draw.purple, 64, 64, 50, 20, frame * 0.05)
	engine_draw.blit_rotate(engine_draw.sprite, 64, 64, -frame * 0.05, 2, 2)
	engine_draw.thick_line(engine_draw.yellow, 4, 120, 124, 100, 3)
end`

	sprite := demo.DefaultSprite()
	host := script.New(sprite)
	defer host.Close()
	require.NoError(t, host.LoadString(source))

	native := tinyengine.SceneFunc(func(ctx *draw.RenderContext, frame int) error {
		theta := float64(frame) * 0.05
		ctx.FillColor(video.DarkGreyColor)
		ctx.FillRectRotate(video.PurpleColor, 64, 64, 50, 20, fixed.One, fixed.One, fixed.AngleFromRadians(theta), draw.FullScreen)
		ctx.BlitScaleRotate(sprite, 64, 64, 2*fixed.One, 2*fixed.One, fixed.AngleFromRadians(-theta))
		ctx.ThickLine(video.YellowColor, 4, 120, 124, 100, 3, false, draw.FullScreen)
		return nil
	})

	a, _ := run(t, host, "software", 25, headless.SnapshotConfig{})
	b, _ := run(t, native, "software", 25, headless.SnapshotConfig{})
	assert.Zero(t, debug.DiffCount(a, b))
}
