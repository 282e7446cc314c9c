package encoding

import (
	"fmt"

	"github.com/harlequix/hamming3126/internal/format"
)

// WordLen is the length of a Hamming(31,26) codeword.
const WordLen = 31

// ParityPositions are the 1-based codeword positions holding parity bits.
var ParityPositions = []int{1, 2, 4, 8, 16}

// DataPositions are the remaining 1-based positions, ascending. Data bit i lives at DataPositions[i].
var DataPositions []int

// places maps a parity position to every other position it covers.
var places map[int][]int

func init() {
	parity := make(map[int]bool)
	for _, p := range ParityPositions {
		parity[p] = true
	}
	for pos := 1; pos <= WordLen; pos++ {
		if !parity[pos] {
			DataPositions = append(DataPositions, pos)
		}
	}
	places = make(map[int][]int)
	for _, p := range ParityPositions {
		for pos := 1; pos <= WordLen; pos++ {
			if pos != p && pos&p != 0 {
				places[p] = append(places[p], pos)
			}
		}
	}
}

// Status describes what DecodeBlock did to a codeword.
type Status struct {
	Syndrome int
}

func (self Status) Corrected() bool {
	return self.Syndrome != 0
}

// Position returns the corrected 1-based position, or 0 if the word was clean.
func (self Status) Position() int {
	return self.Syndrome
}

// IsParity reports whether the corrected bit was a parity bit, leaving the data untouched.
func (self Status) IsParity() bool {
	return self.Syndrome&(self.Syndrome-1) == 0 && self.Syndrome != 0
}

// EncodeBlock places 26 data bits at the non-parity positions and fills in the parity bits.
func EncodeBlock(data format.Bits) (format.Bits, error) {
	if len(data) != format.BlockLen {
		return nil, fmt.Errorf("%w: data block has %d bits, want %d", ErrMalformedWord, len(data), format.BlockLen)
	}
	if !data.Valid() {
		return nil, fmt.Errorf("%w: data block %s is not binary", ErrMalformedWord, data)
	}
	word := make(format.Bits, WordLen)
	for i, pos := range DataPositions {
		word[pos-1] = data[i]
	}
	for _, p := range ParityPositions {
		word[p-1] = calculateParity(word, places[p])
	}
	return word, nil
}

// Syndrome ORs together every parity position whose check fails. For a word with
// a single flipped bit it is that bit's 1-based position.
func Syndrome(word format.Bits) int {
	syndrome := 0
	for _, p := range ParityPositions {
		if calculateParity(word, places[p])^word[p-1] != 0 {
			syndrome |= p
		}
	}
	return syndrome
}

// DecodeBlock corrects at most one flipped bit and returns the 26 data bits.
// The input is not modified.
//
// The code has minimum distance 3. Two flipped bits produce a non-zero syndrome
// pointing at a third, intact position; that bit is "corrected" and the returned
// data is wrong without any error being reported.
func DecodeBlock(word format.Bits) (format.Bits, Status, error) {
	if len(word) != WordLen {
		return nil, Status{}, fmt.Errorf("%w: codeword has %d bits, want %d", ErrMalformedWord, len(word), WordLen)
	}
	if !word.Valid() {
		return nil, Status{}, fmt.Errorf("%w: codeword %s is not binary", ErrMalformedWord, word)
	}
	status := Status{Syndrome: Syndrome(word)}
	if status.Syndrome > WordLen {
		return nil, status, fmt.Errorf("%w: %d", ErrSyndromeRange, status.Syndrome)
	}
	fixed := word
	if status.Corrected() {
		fixed = word.Clone()
		fixed[status.Syndrome-1] ^= 1
	}
	return stripCode(fixed), status, nil
}

func stripCode(word format.Bits) format.Bits {
	out := make(format.Bits, len(DataPositions))
	for i, pos := range DataPositions {
		out[i] = word[pos-1]
	}
	return out
}

func calculateParity(bits format.Bits, positions []int) byte {
	var acc byte
	for _, pos := range positions {
		acc ^= bits[pos-1]
	}
	return acc
}
