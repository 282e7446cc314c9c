package format

import (
	"strings"
)

// Bits holds one bit per element, each 0 or 1. Index 0 is the most significant bit.
type Bits []byte

const (
	ZERO byte = '0'
	ONE  byte = '1'
)

func BitsFromInt(value uint64, width int) Bits {
	out := make(Bits, width)
	for i := 0; i < width; i++ {
		shift := uint(width - 1 - i)
		if shift < 64 {
			out[i] = byte(value>>shift) & 1
		}
	}
	return out
}

func IntFromBits(bits Bits) uint64 {
	var out uint64
	for _, bit := range bits {
		out = out<<1 | uint64(bit&1)
	}
	return out
}

// ByteToBits expands one byte into eight bits, MSB first.
func ByteToBits(b byte) Bits {
	return BitsFromInt(uint64(b), 8)
}

// Valid reports whether every element is 0 or 1.
func (self Bits) Valid() bool {
	for _, bit := range self {
		if bit > 1 {
			return false
		}
	}
	return true
}

func (self Bits) Clone() Bits {
	out := make(Bits, len(self))
	copy(out, self)
	return out
}

func (self Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(self))
	for _, bit := range self {
		if bit == 1 {
			sb.WriteByte(ONE)
		} else if bit == 0 {
			sb.WriteByte(ZERO)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
