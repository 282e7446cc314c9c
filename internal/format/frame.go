package format

import (
	"errors"
	"fmt"
	"math"
)

// HeaderLen is the width of the big-endian byte count prepended to every payload.
const HeaderLen = 32

var ErrFraming = errors.New("framing error")

// Frame prepends the 32-bit length header to the payload bits.
func Frame(payload []byte) (Bits, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes do not fit the %d-bit header", ErrFraming, len(payload), HeaderLen)
	}
	out := make(Bits, 0, HeaderLen+len(payload)*8)
	out = append(out, BitsFromInt(uint64(len(payload)), HeaderLen)...)
	for _, b := range payload {
		out = append(out, ByteToBits(b)...)
	}
	return out, nil
}

// Unframe reads the header and returns exactly the declared number of bytes.
// Bits past the declared payload are padding and are dropped.
func Unframe(bits Bits) ([]byte, error) {
	if len(bits) < HeaderLen {
		return nil, fmt.Errorf("%w: %d bits available, header needs %d", ErrFraming, len(bits), HeaderLen)
	}
	n := IntFromBits(bits[:HeaderLen])
	need := uint64(HeaderLen) + n*8
	if uint64(len(bits)) < need {
		return nil, fmt.Errorf("%w: header declares %d bytes, need %d bits, have %d", ErrFraming, n, need, len(bits))
	}
	out := make([]byte, n)
	payload := bits[HeaderLen:need]
	for i := range out {
		out[i] = byte(IntFromBits(payload[i*8 : i*8+8]))
	}
	return out, nil
}
