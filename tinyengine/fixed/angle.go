package fixed

import "math"

//go:generate go run ../../cmd/gen_trig_table -out trig_table.go

// Angle is a rotation in 10-bit angle units: 1024 units make one full turn.
type Angle int16

const (
	// FullTurn is 2π.
	FullTurn Angle = 0x400
	// HalfTurn is π.
	HalfTurn Angle = 0x200
	// QuarterTurn is π/2.
	QuarterTurn Angle = 0x100

	angleMask = 0x3FF
	tableLen  = 2 * int(QuarterTurn)
)

// AngleFromRadians converts radians to angle units, rounding to the nearest
// unit and masking into one turn.
func AngleFromRadians(rad float64) Angle {
	return Angle(int64(math.Round(rad*float64(FullTurn)/(2*math.Pi))) & angleMask)
}

// Radians returns the angle in radians. Not used on any hot path.
func (a Angle) Radians() float64 {
	return float64(a) * 2 * math.Pi / float64(FullTurn)
}

// Normalize masks the angle into [0, FullTurn).
func (a Angle) Normalize() Angle {
	return a & angleMask
}

// Fold reduces theta into [-QuarterTurn, QuarterTurn]. When theta lies outside
// (-π/2, π/2] the half turn is removed and flip is set: the caller draws a
// 180° mirror of the rotated image instead.
func Fold(theta Angle) (folded Angle, flip bool) {
	theta &= angleMask
	if theta > HalfTurn {
		theta -= FullTurn
	}
	if theta > QuarterTurn {
		return theta - HalfTurn, true
	}
	if theta < -QuarterTurn {
		return theta + HalfTurn, true
	}
	return theta, false
}

// ShearCoefficients returns the (a, b) pair of the x-y-x shear sequence
// (a, b, a) that rotates by theta: a = tan(θ/2), b = -sin θ after folding.
// flip reports whether the fold removed a half turn.
func ShearCoefficients(theta Angle) (a, b Q16, flip bool) {
	theta, flip = Fold(theta)

	negative := theta < 0
	if negative {
		theta = -theta
	}

	idx := int(theta) << 1
	if idx == tableLen {
		// tan(π/4) = sin(π/2) = 1, one past the end of the table.
		a, b = One, -One
	} else {
		a, b = Q16(tanSinTable[idx]), -Q16(tanSinTable[idx+1])
	}

	if negative {
		a, b = -a, -b
	}
	return a, b, flip
}

// Cos returns the composite coefficient c = a*b + 1, which equals cos θ for
// the folded angle the coefficients were looked up for.
func Cos(a, b Q16) Q16 {
	return Mul(a, b) + One
}
