package timing

import (
	"fmt"
	"time"
)

// Limiter paces the engine's frame loop.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// FrameDuration returns the duration of a single frame at fps frames per
// second. A non-positive fps means unlimited and returns zero.
func FrameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

// NewLimiter builds the limiter registered under name for the given rate:
// "adaptive", "ticker" or "none". An unlimited rate always yields a no-op limiter.
func NewLimiter(name string, fps float64) (Limiter, error) {
	if fps <= 0 {
		return NewNoOpLimiter(), nil
	}

	switch name {
	case "adaptive", "":
		return NewAdaptiveLimiter(fps), nil
	case "ticker":
		return NewTickerLimiter(fps), nil
	case "none":
		return NewNoOpLimiter(), nil
	}
	return nil, fmt.Errorf("unknown limiter %q", name)
}
