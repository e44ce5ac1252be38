//go:build !sdl2

package sdl2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-tinyengine/tinyengine/backend"
	"github.com/valerio/go-tinyengine/tinyengine/backend/sdl2"
	"github.com/valerio/go-tinyengine/tinyengine/video"
)

func TestStubReportsUnavailable(t *testing.T) {
	var b backend.Backend = sdl2.New()

	assert.ErrorIs(t, b.Init(backend.BackendConfig{}), sdl2.ErrUnavailable)
	assert.ErrorIs(t, b.Update(video.NewFrameBuffer()), sdl2.ErrUnavailable)
	assert.NoError(t, b.Cleanup())
}
