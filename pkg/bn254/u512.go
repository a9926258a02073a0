package bn254

import "math/bits"

// U512 is an unsigned 512-bit integer, limbs[0] least significant.
// It holds the full double-width product of two U256 values, the
// 64-byte packed Fq2 wire form (a1*q + a0) and FrInterpret's wide
// input, and the accumulator for the binary long division that reduces
// such values modulo a field modulus.
type U512 [8]uint64

// MulU256 returns the full 512-bit product of x and y.
func MulU256(x, y U256) U512 {
	var r U512
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			r[i+j] = lo
			carry = hi
		}
		r[i+4] = carry
	}
	return r
}

// IsZero reports whether x is zero.
func (x U512) IsZero() bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// bitLen returns the number of bits required to represent x.
func (x U512) bitLen() int {
	for i := 7; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

// bit returns bit i of x, 0 for i outside [0,512).
func (x U512) bit(i int) uint {
	if i < 0 || i >= 512 {
		return 0
	}
	return uint((x[i/64] >> (uint(i) % 64)) & 1)
}

// lo256 returns the low 256 bits of x.
func (x U512) lo256() U256 {
	return U256{x[0], x[1], x[2], x[3]}
}

// DivRem divides x by m using binary long division. The remainder is
// always valid (and < m); the quotient is only meaningful to callers
// treating the 512-bit value as quotient*m + remainder with both halves
// field elements, so DivRem reports ok=false, along with a zero
// quotient, when the true quotient does not fit in a U256 or is itself
// >= m. Callers that only want the reduction mod m may ignore ok.
func (x U512) DivRem(m U256) (quotient U256, remainder U256, ok bool) {
	if m.IsZero() {
		return U256{}, U256{}, false
	}
	var rem U512
	var quo U512
	n := x.bitLen()
	mWide := U512{m[0], m[1], m[2], m[3], 0, 0, 0, 0}
	for i := n - 1; i >= 0; i-- {
		rem = rem.shl1or(x.bit(i))
		if rem.cmp(mWide) >= 0 {
			rem = rem.sub(mWide)
			quo = quo.setBit(i)
		}
	}
	if quo[4] != 0 || quo[5] != 0 || quo[6] != 0 || quo[7] != 0 {
		return U256{}, rem.lo256(), false
	}
	q := quo.lo256()
	if q.Cmp(m) >= 0 {
		return U256{}, rem.lo256(), false
	}
	return q, rem.lo256(), true
}

// U512FromSlice decodes a big-endian byte slice into a U512. The slice
// must be exactly 64 bytes.
func U512FromSlice(b []byte) (U512, error) {
	if len(b) != 64 {
		return U512{}, newErr(InvalidU512Encoding, "u512 requires exactly 64 bytes")
	}
	var r U512
	for i := 0; i < 8; i++ {
		r[7-i] = beUint64(b[i*8 : i*8+8])
	}
	return r, nil
}

// Bytes64 encodes x as a big-endian 64-byte array.
func (x U512) Bytes64() [64]byte {
	var out [64]byte
	for i := 0; i < 8; i++ {
		putBeUint64(out[i*8:i*8+8], x[7-i])
	}
	return out
}

// addU256 returns x + y, ignoring any carry out of the 512th bit
// (callers only add values known to stay in range).
func (x U512) addU256(y U256) U512 {
	var r U512
	var c uint64
	r[0], c = bits.Add64(x[0], y[0], 0)
	r[1], c = bits.Add64(x[1], y[1], c)
	r[2], c = bits.Add64(x[2], y[2], c)
	r[3], c = bits.Add64(x[3], y[3], c)
	for i := 4; i < 8; i++ {
		r[i], c = bits.Add64(x[i], 0, c)
	}
	return r
}

func (x U512) shl1or(bit uint) U512 {
	var r U512
	var carry uint64 = uint64(bit)
	for i := 0; i < 8; i++ {
		r[i] = x[i]<<1 | carry
		carry = x[i] >> 63
	}
	return r
}

func (x U512) setBit(i int) U512 {
	x[i/64] |= 1 << (uint(i) % 64)
	return x
}

func (x U512) cmp(y U512) int {
	for i := 7; i >= 0; i-- {
		if x[i] < y[i] {
			return -1
		}
		if x[i] > y[i] {
			return 1
		}
	}
	return 0
}

func (x U512) sub(y U512) U512 {
	var r U512
	var b uint64
	for i := 0; i < 8; i++ {
		r[i], b = bits.Sub64(x[i], y[i], b)
	}
	return r
}
