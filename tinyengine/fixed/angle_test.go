package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in       Angle
		expected Angle
		flip     bool
	}{
		{0, 0, false},
		{0x100, 0x100, false},
		{0x101, -0xFF, true},
		{0x200, 0, true},
		{0x300, -0x100, false},
		{0x2FF, 0xFF, true},
		{0x3FF, -0x1, false},
		{0x400, 0, false},
		{-0x100, -0x100, false},
		{-0x101, 0xFF, true},
	}

	for _, tt := range tests {
		folded, flip := Fold(tt.in)
		if folded != tt.expected || flip != tt.flip {
			t.Errorf("Fold(%#x) = (%d, %v); want (%d, %v)", tt.in, folded, flip, tt.expected, tt.flip)
		}
	}
}

func TestShearCoefficientsZero(t *testing.T) {
	a, b, flip := ShearCoefficients(0)
	assert.Equal(t, Q16(0), a)
	assert.Equal(t, Q16(0), b)
	assert.False(t, flip)
	assert.Equal(t, One, Cos(a, b))
}

func TestShearCoefficientsQuarterTurn(t *testing.T) {
	a, b, flip := ShearCoefficients(QuarterTurn)
	assert.Equal(t, One, a)
	assert.Equal(t, -One, b)
	assert.False(t, flip)

	a, b, flip = ShearCoefficients(-QuarterTurn)
	assert.Equal(t, -One, a)
	assert.Equal(t, One, b)
	assert.False(t, flip)

	// cos(π/2) is exactly zero from the special case.
	assert.Equal(t, Q16(0), Cos(One, -One))
}

func TestShearCoefficientsHalfTurnFlips(t *testing.T) {
	a, b, flip := ShearCoefficients(HalfTurn)
	assert.Equal(t, Q16(0), a)
	assert.Equal(t, Q16(0), b)
	assert.True(t, flip)
}

func TestShearCoefficientsMatchTrig(t *testing.T) {
	for theta := Angle(-QuarterTurn + 1); theta < QuarterTurn; theta++ {
		a, b, flip := ShearCoefficients(theta)
		assert.False(t, flip)

		rad := theta.Radians()
		assert.InDelta(t, math.Tan(rad/2), a.Float(), 1e-4, "tan at %d", theta)
		assert.InDelta(t, -math.Sin(rad), b.Float(), 1e-4, "sin at %d", theta)
		assert.InDelta(t, math.Cos(rad), Cos(a, b).Float(), 1e-3, "cos at %d", theta)
	}
}

func TestShearCoefficientsSymmetric(t *testing.T) {
	for theta := Angle(1); theta <= QuarterTurn; theta++ {
		a, b, _ := ShearCoefficients(theta)
		na, nb, _ := ShearCoefficients(-theta)
		assert.Equal(t, -a, na)
		assert.Equal(t, -b, nb)
	}
}

func TestAngleFromRadians(t *testing.T) {
	tests := []struct {
		rad      float64
		expected Angle
	}{
		{0, 0},
		{math.Pi / 2, QuarterTurn},
		{math.Pi, HalfTurn},
		{-math.Pi / 2, 0x300},
		{2 * math.Pi, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AngleFromRadians(tt.rad), "radians %v", tt.rad)
	}
}

func TestTableMonotonic(t *testing.T) {
	for i := 2; i < tableLen; i += 2 {
		assert.Greater(t, tanSinTable[i], tanSinTable[i-2], "tan at pair %d", i/2)
		assert.Greater(t, tanSinTable[i+1], tanSinTable[i-1], "sin at pair %d", i/2)
	}
	assert.Less(t, tanSinTable[tableLen-2], int32(One))
	assert.LessOrEqual(t, tanSinTable[tableLen-1], int32(One))
}
