// Package fixed implements the Q16.16 scalar and the 10-bit angle unit used by
// the rasterizer, plus the table lookups that turn an angle into shear
// coefficients without runtime trigonometry.
package fixed

import "math"

// Q16 is a signed 16.16 fixed-point number.
type Q16 int32

const (
	// FracBits is the number of fractional bits in a Q16.
	FracBits = 16
	// One is 1.0 in Q16.16.
	One Q16 = 1 << FracBits
	// Half is 0.5 in Q16.16.
	Half Q16 = One >> 1
)

// FromInt converts an integer to Q16.16.
func FromInt(v int) Q16 {
	return Q16(v << FracBits)
}

// FromFloat converts a float to Q16.16, rounding to nearest. Callers use it
// at the boundary when turning node properties into rasterizer units.
func FromFloat(v float64) Q16 {
	return Q16(math.Round(v * float64(One)))
}

// Int returns the integer part, rounding toward negative infinity.
func (q Q16) Int() int32 {
	return int32(q) >> FracBits
}

// Float returns q as a float64. Only used for logging and tests.
func (q Q16) Float() float64 {
	return float64(q) / float64(One)
}

// Mul multiplies two Q16.16 values through a 64-bit intermediate.
func Mul(a, b Q16) Q16 {
	return Q16((int64(a) * int64(b)) >> FracBits)
}

// Div divides a by b through a 64-bit intermediate. b must not be zero.
func Div(a, b Q16) Q16 {
	return Q16((int64(a) << FracBits) / int64(b))
}

// Abs returns |q|.
func Abs(q Q16) Q16 {
	if q < 0 {
		return -q
	}
	return q
}
