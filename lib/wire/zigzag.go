package wire

// Zigzag maps a signed N-bit integer to an unsigned one so that small
// magnitudes (positive or negative) stay small in varint encoding:
// 0, -1, 1, -2, 2, ... map to 0, 1, 2, 3, 4, ...
//
// Encoding: (x << 1) ^ (x >> (N-1)), where the right shift is arithmetic
// (sign-extending), so a negative x produces an all-ones mask.

// ZigzagEncode16 maps a signed 16-bit value to its zigzag unsigned form.
func ZigzagEncode16(value int16) uint16 {
	return uint16(value<<1) ^ uint16(value>>15)
}

// ZigzagDecode16 inverts ZigzagEncode16.
func ZigzagDecode16(value uint16) int16 {
	return int16(value>>1) ^ -int16(value&1)
}

// ZigzagEncode32 maps a signed 32-bit value to its zigzag unsigned form.
func ZigzagEncode32(value int32) uint32 {
	return uint32(value<<1) ^ uint32(value>>31)
}

// ZigzagDecode32 inverts ZigzagEncode32.
func ZigzagDecode32(value uint32) int32 {
	return int32(value>>1) ^ -int32(value&1)
}

// ZigzagEncode64 maps a signed 64-bit value to its zigzag unsigned form.
func ZigzagEncode64(value int64) uint64 {
	return uint64(value<<1) ^ uint64(value>>63)
}

// ZigzagDecode64 inverts ZigzagEncode64.
func ZigzagDecode64(value uint64) int64 {
	return int64(value>>1) ^ -int64(value&1)
}
