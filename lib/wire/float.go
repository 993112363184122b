package wire

import "math"

// Float/double are transferred as their raw little-endian IEEE-754 bit
// pattern: no NaN-payload normalization, signed zero preserved. Behavior
// on big-endian hosts is not handled.

// PutFloat32 writes value's 4-byte little-endian IEEE-754 representation
// into dst.
func PutFloat32(dst []byte, value float32) {
	bits := math.Float32bits(value)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}

// Float32 reads a 4-byte little-endian IEEE-754 float from src.
func Float32(src []byte) float32 {
	bits := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	return math.Float32frombits(bits)
}

// PutFloat64 writes value's 8-byte little-endian IEEE-754 representation
// into dst.
func PutFloat64(dst []byte, value float64) {
	bits := math.Float64bits(value)
	for i := range 8 {
		dst[i] = byte(bits >> (8 * i))
	}
}

// Float64 reads an 8-byte little-endian IEEE-754 double from src.
func Float64(src []byte) float64 {
	var bits uint64
	for i := range 8 {
		bits |= uint64(src[i]) << (8 * i)
	}
	return math.Float64frombits(bits)
}
