package video

// Buffers owns the two frame buffers the engine alternates between. Exactly
// one of them is active, receiving draw writes, at any time; the other holds
// the frame most recently handed to the display.
//
// Buffers is not safe for concurrent use. The engine draws, swaps and sends
// from a single goroutine.
type Buffers struct {
	buffers [2]*FrameBuffer
	active  int

	fillColor      Color
	fillBackground *FrameBuffer
}

// NewBuffers allocates both frame buffers. An allocation failure aborts the
// process, there is nothing a caller could do to recover.
func NewBuffers() *Buffers {
	return &Buffers{
		buffers: [2]*FrameBuffer{NewFrameBuffer(), NewFrameBuffer()},
	}
}

// Active returns the buffer currently selected for writing. Never nil.
func (b *Buffers) Active() *FrameBuffer {
	return b.buffers[b.active]
}

// Inactive returns the buffer that is not being drawn into.
func (b *Buffers) Inactive() *FrameBuffer {
	return b.buffers[b.active^1]
}

// Swap toggles the active buffer. All writes to the previous active buffer
// must be finished.
func (b *Buffers) Swap() {
	b.active ^= 1
}

// SetFillColor sets the color used by Clear when no background is set.
func (b *Buffers) SetFillColor(color Color) {
	b.fillColor = color
}

// FillColor returns the clear color.
func (b *Buffers) FillColor() Color {
	return b.fillColor
}

// SetFillBackground sets an image that Clear copies into the active buffer
// instead of filling it. Passing nil returns to solid color clearing.
func (b *Buffers) SetFillBackground(background *FrameBuffer) {
	b.fillBackground = background
}

// FillBackground returns the clear background, or nil.
func (b *Buffers) FillBackground() *FrameBuffer {
	return b.fillBackground
}

// Clear prepares the active buffer for a new frame.
func (b *Buffers) Clear() {
	if b.fillBackground != nil {
		b.Active().CopyFrom(b.fillBackground)
		return
	}
	b.Active().Fill(b.fillColor)
}
