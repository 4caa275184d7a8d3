package bittrie

import "math/bits"

// Key is an unsigned integer of up to 128 bits.
// Hi holds the most significant half, Lo the least significant one.
type Key struct {
	Hi uint64
	Lo uint64
}

// Bit returns the bit at position pos counting from the least significant bit (0..127).
func (k Key) Bit(pos int) byte {
	if pos >= 64 {
		return byte(k.Hi>>(pos-64)) & 1
	}
	return byte(k.Lo>>pos) & 1
}

// SetBit returns a copy of the key with the bit at position pos set to 1.
func (k Key) SetBit(pos int) Key {
	if pos >= 64 {
		k.Hi |= 1 << (pos - 64)
	} else {
		k.Lo |= 1 << pos
	}
	return k
}

// Len returns the minimal number of bits needed to represent the key.
func (k Key) Len() int {
	if k.Hi != 0 {
		return 64 + bits.Len64(k.Hi)
	}
	return bits.Len64(k.Lo)
}

// Xor returns k ^ o.
func (k Key) Xor(o Key) Key {
	return Key{k.Hi ^ o.Hi, k.Lo ^ o.Lo}
}

// IsZero reports whether all 128 bits are zero.
func (k Key) IsZero() bool {
	return k.Hi == 0 && k.Lo == 0
}

// Less compares keys as unsigned integers.
func (k Key) Less(o Key) bool {
	return k.Hi < o.Hi || k.Hi == o.Hi && k.Lo < o.Lo
}
