package wire

import "testing"

func TestZigzag32BitExactVectors(t *testing.T) {
	cases := []struct {
		value int32
		want  uint32
	}{
		{-1, 1},
		{1, 2},
		{0, 0},
		{-2, 3},
		{2147483647, 4294967294},
		{-2147483648, 4294967295},
	}
	for _, c := range cases {
		got := ZigzagEncode32(c.value)
		if got != c.want {
			t.Errorf("ZigzagEncode32(%d) = %d, want %d", c.value, got, c.want)
		}
		back := ZigzagDecode32(got)
		if back != c.value {
			t.Errorf("ZigzagDecode32(%d) = %d, want %d", got, back, c.value)
		}
	}
}

func TestZigzagRoundTrip16(t *testing.T) {
	for v := -32768; v <= 32767; v += 31 {
		e := ZigzagEncode16(int16(v))
		d := ZigzagDecode16(e)
		if int(d) != v {
			t.Fatalf("zigzag16 round trip of %d failed, got %d", v, d)
		}
	}
}

func TestZigzagRoundTrip64Sparse(t *testing.T) {
	samples := []int64{0, -1, 1, -2, 2, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808}
	for _, v := range samples {
		e := ZigzagEncode64(v)
		d := ZigzagDecode64(e)
		if d != v {
			t.Fatalf("zigzag64 round trip of %d failed, got %d", v, d)
		}
	}
}

// TestZigzagOrderingPreservesMagnitude checks that |s1| < |s2| implies
// the zigzag-varint byte length of s1 is no greater than that of s2.
// Equal magnitudes are not compared: zigzag maps -n to 2n-1 and n to 2n,
// so e.g. 8192 (16384, 3 bytes) encodes longer than -8192 (16383, 2 bytes).
func TestZigzagOrderingPreservesMagnitude(t *testing.T) {
	magnitudes := []int32{0, 1, -1, 63, -64, 8192, -8192, 1 << 20, -(1 << 20)}
	byteLen := func(v int32) int {
		dst := make([]byte, MaxVarint64Bytes)
		return PutVarint32(dst, ZigzagEncode32(v))
	}
	for i := range magnitudes {
		for j := range magnitudes {
			a, b := magnitudes[i], magnitudes[j]
			absA, absB := abs32(a), abs32(b)
			if absA < absB && byteLen(a) > byteLen(b) {
				t.Errorf("|%d| < |%d| but varint(zigzag(%d)) is longer than varint(zigzag(%d))", a, b, a, b)
			}
		}
	}
}

func abs32(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}
