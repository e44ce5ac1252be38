package headless_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/backend/headless"
	"github.com/valerio/go-tinyengine/tinyengine/debug"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

func TestHeadlessBackend(t *testing.T) {
	t.Run("normal operation", func(t *testing.T) {
		quits := 0
		h := headless.New(3, headless.SnapshotConfig{})

		config := backend.BackendConfig{
			Title:     "Test",
			Callbacks: backend.BackendCallbacks{OnQuit: func() { quits++ }},
		}
		require.NoError(t, h.Init(config))

		frame := video.NewFrameBuffer()
		for i := 0; i < 3; i++ {
			frame.SetPixel(i, 0, video.RedColor)
			assert.NoError(t, h.Update(frame))

			if i < 2 {
				// Should not quit before reaching max frames
				assert.Equal(t, 0, quits)
			} else {
				assert.Equal(t, 1, quits)
			}
		}

		assert.Equal(t, 3, h.FrameCount())
		assert.Equal(t, video.RedColor, h.LastFrame().GetPixel(2, 0))

		// The kept frame is a copy.
		frame.Fill(video.BlackColor)
		assert.Equal(t, video.RedColor, h.LastFrame().GetPixel(2, 0))

		assert.NoError(t, h.Cleanup())
	})

	t.Run("unbounded", func(t *testing.T) {
		h := headless.New(0, headless.SnapshotConfig{})
		require.NoError(t, h.Init(backend.BackendConfig{
			Callbacks: backend.BackendCallbacks{OnQuit: func() { t.Fatal("unexpected quit") }},
		}))

		frame := video.NewFrameBuffer()
		for i := 0; i < 25; i++ {
			require.NoError(t, h.Update(frame))
		}
		assert.Equal(t, 25, h.FrameCount())
	})

	t.Run("snapshots", func(t *testing.T) {
		dir := t.TempDir()
		snapshots, err := headless.CreateSnapshotConfig(2, dir, "scenes/orbit.lua", "webp", 1)
		require.NoError(t, err)
		assert.Equal(t, "orbit", snapshots.Name)
		assert.Equal(t, debug.FormatWebP, snapshots.Format)

		h := headless.New(5, snapshots)
		require.NoError(t, h.Init(backend.BackendConfig{}))

		frame := video.NewFrameBuffer()
		for i := 0; i < 5; i++ {
			require.NoError(t, h.Update(frame))
		}

		// Frames 2 and 4, plus the final frame.
		require.Len(t, h.Snapshots(), 3)
		for _, path := range h.Snapshots() {
			assert.Equal(t, dir, filepath.Dir(path))
			_, err := os.Stat(path)
			assert.NoError(t, err)
		}
	})
}

func TestCreateSnapshotConfig(t *testing.T) {
	disabled, err := headless.CreateSnapshotConfig(0, "", "demo", "png", 1)
	require.NoError(t, err)
	assert.False(t, disabled.Enabled)

	temp, err := headless.CreateSnapshotConfig(10, "", "", "", 2)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(temp.Directory) })
	assert.True(t, temp.Enabled)
	assert.DirExists(t, temp.Directory)
	assert.Equal(t, "tinyengine", temp.Name)
	assert.Equal(t, debug.FormatPNG, temp.Format)

	_, err = headless.CreateSnapshotConfig(10, t.TempDir(), "demo", "tiff", 1)
	assert.Error(t, err)
}

func TestHeadlessImplementsBackend(t *testing.T) {
	// Compile-time check that headless.Backend implements backend.Backend
	var _ backend.Backend = (*headless.Backend)(nil)
}
