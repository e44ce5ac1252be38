package bit

// IsPow2 reports whether v is a positive power of two.
func IsPow2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Log2 returns the index of the highest set bit of v, or -1 when v is not positive.
func Log2(v int) int {
	if v <= 0 {
		return -1
	}

	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

// Mask returns a 32 bit mask with bits lsb through msb (inclusive) set.
func Mask(lsb, msb uint) uint32 {
	if msb >= 31 {
		return ^uint32(0) << lsb
	}
	return (uint32(1)<<(msb+1) - 1) &^ (uint32(1)<<lsb - 1)
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index uint, value uint32) bool {
	return (value>>index)&1 == 1
}
