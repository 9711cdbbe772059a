// Package spreadbits provides pure conversions between unsigned integers,
// little-endian bit vectors and their "spread" form, where a zero bit is
// interleaved after every data bit. The spread form turns bitwise operations
// into field additions: adding two spread values accumulates per-bit sums in
// independent two-bit slots, so the even-position bits of the sum carry the
// XOR and the odd-position bits the AND of the inputs.
//
// Everything in this package operates on native integers. It is used by
// solver hints, by the lookup-table loader and by test fixtures; it never
// touches circuit variables.
package spreadbits

import "fmt"

// BitsOf returns the little-endian bit vector of x over exactly n bits. It
// returns an error when x does not fit in n bits or when n exceeds 64.
func BitsOf(x uint64, n int) ([]bool, error) {
	if n < 0 || n > 64 {
		return nil, fmt.Errorf("bit length %d out of range", n)
	}
	if n < 64 && x>>n != 0 {
		return nil, fmt.Errorf("value %d does not fit in %d bits", x, n)
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = x>>i&1 == 1
	}
	return bits, nil
}

// IntOf packs a little-endian bit vector back into an integer. The vector
// must not be longer than 64 bits; word sizes are fixed by the protocol, so
// a longer input is an internal invariant violation and panics.
func IntOf(bits []bool) uint64 {
	if len(bits) > 64 {
		panic(fmt.Sprintf("spreadbits: %d bits do not fit in uint64", len(bits)))
	}
	var x uint64
	for i, b := range bits {
		if b {
			x |= 1 << i
		}
	}
	return x
}

// Spread places input bit i at position 2i and zero at position 2i+1,
// doubling the vector length.
func Spread(bits []bool) []bool {
	out := make([]bool, 2*len(bits))
	for i, b := range bits {
		out[2*i] = b
	}
	return out
}

// SpreadU16 is the dense-to-spread map the 16-bit lookup table is built
// from: bit i of x moves to bit 2i of the result.
func SpreadU16(x uint16) uint64 {
	v := uint64(x)
	v = (v | v<<8) & 0x00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f
	v = (v | v<<2) & 0x33333333
	v = (v | v<<1) & 0x55555555
	return v
}

// EvenBits collects the bits at even positions of x into a 32-bit value,
// undoing SpreadU16 on a (sum of) spread word(s).
func EvenBits(x uint64) uint32 {
	v := x & 0x5555555555555555
	v = (v | v>>1) & 0x3333333333333333
	v = (v | v>>2) & 0x0f0f0f0f0f0f0f0f
	v = (v | v>>4) & 0x00ff00ff00ff00ff
	v = (v | v>>8) & 0x0000ffff0000ffff
	v = (v | v>>16) & 0x00000000ffffffff
	return uint32(v)
}

// OddBits collects the bits at odd positions of x into a 32-bit value.
func OddBits(x uint64) uint32 {
	return EvenBits(x >> 1)
}
