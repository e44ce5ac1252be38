package draw

import "github.com/valerio/go-tinyengine/tinyengine/fixed"

// RotationPivotOffset returns how far to move the top-left corner of an
// xe by ye image so that, after the shear sequence (a, b, a), its center
// stays where the corner was. flipX and flipY compensate for the extra
// shift a negative scale applies to the corner.
//
// a and b come from fixed.ShearCoefficients; (0, 0) is no rotation.
func RotationPivotOffset(xe, ye int, a, b fixed.Q16, flipX, flipY bool) (dx, dy int) {
	c := int64(fixed.Cos(a, b))
	hx := int64(xe / 2)
	hy := int64(ye / 2)

	dx = int((hx*c - hy*int64(b)) >> fixed.FracBits)
	dy = int((hy*c + hx*int64(b)) >> fixed.FracBits)
	if flipX {
		dx -= xe
	}
	if flipY {
		dy -= ye
	}
	return dx, dy
}
