package draw

import (
	"github.com/valerio/go-tinyengine/tinyengine/bit"
	"github.com/valerio/go-tinyengine/tinyengine/fixed"
)

// TexelStepper produces source texel indices along one destination row of a
// scaled blit. Every implementation must return the same sequence of indices
// for the same inputs.
type TexelStepper interface {
	// Configure prepares the stepper for a source with the given stride.
	// It returns false if the stepper cannot handle that stride.
	Configure(stride int) bool
	// Row starts a new row at texel column tx, advancing dtx per pixel, on
	// texel row ty. All values are Q16.16 and tx, ty are non-negative.
	Row(tx, dtx, ty fixed.Q16)
	// Next returns the current texel index and advances one pixel.
	Next() int
}

// SoftwareStepper computes (ty>>16)*stride + (tx>>16) directly.
type SoftwareStepper struct {
	stride int
	rowOff int
	tx     fixed.Q16
	dtx    fixed.Q16
}

func NewSoftwareStepper() *SoftwareStepper {
	return &SoftwareStepper{}
}

func (s *SoftwareStepper) Configure(stride int) bool {
	s.stride = stride
	return stride > 0
}

func (s *SoftwareStepper) Row(tx, dtx, ty fixed.Q16) {
	s.tx = tx
	s.dtx = dtx
	s.rowOff = int(ty.Int()) * s.stride
}

func (s *SoftwareStepper) Next() int {
	idx := s.rowOff + int(s.tx.Int())
	s.tx += s.dtx
	return idx
}

// interpLane is one lane of a two-lane shift/mask/add interpolator.
type interpLane struct {
	accum uint32
	base  uint32
	shift uint
	mask  uint32
}

func (l *interpLane) result() uint32 {
	return (l.accum >> l.shift) & l.mask
}

// InterpStepper models a hardware interpolator configured for texture
// lookup. Lane 0 holds ty and shifts it so the integer part lands already
// multiplied by the stride. Lane 1 holds tx and adds dtx to itself on every
// pop. Only power-of-two strides can be expressed with a shift.
type InterpStepper struct {
	lanes [2]interpLane
	base2 uint32
}

func NewInterpStepper() *InterpStepper {
	return &InterpStepper{}
}

func (s *InterpStepper) Configure(stride int) bool {
	if !bit.IsPow2(stride) || stride > 1<<15 {
		return false
	}
	log2 := uint(bit.Log2(stride))

	s.lanes[0] = interpLane{shift: fixed.FracBits - log2, mask: bit.Mask(log2, 31)}
	s.lanes[1] = interpLane{shift: fixed.FracBits, mask: bit.Mask(0, 31)}
	s.base2 = 0
	return true
}

func (s *InterpStepper) Row(tx, dtx, ty fixed.Q16) {
	s.lanes[0].accum = uint32(ty)
	s.lanes[0].base = 0
	s.lanes[1].accum = uint32(tx)
	s.lanes[1].base = uint32(dtx)
}

// Next pops the full result (base2 + lane0 + lane1), then each lane adds its
// raw base to its accumulator.
func (s *InterpStepper) Next() int {
	result := s.base2 + s.lanes[0].result() + s.lanes[1].result()
	for i := range s.lanes {
		s.lanes[i].accum += s.lanes[i].base
	}
	return int(result)
}

// NewStepper returns the stepper registered under name: "software" or "interp".
func NewStepper(name string) (TexelStepper, bool) {
	switch name {
	case "software", "":
		return NewSoftwareStepper(), true
	case "interp":
		return NewInterpStepper(), true
	}
	return nil, false
}
