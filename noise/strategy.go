package noise

import (
	"fmt"
	"math/rand"

	"github.com/harlequix/hamming3126/internal/format"
)

// Strategy flips bits of one codeword in place and returns the 1-based positions it touched.
type Strategy interface {
	Corrupt(word format.Bits, rng *rand.Rand) []int
	Name() string
}

const (
	Single  string = "single"
	Double  string = "double"
	Pattern string = "pattern"
)

func NewStrategy(name string, positions []int) (Strategy, error) {
	switch name {
	case Single:
		return NewSingleStrategy(), nil
	case Double:
		return NewDoubleStrategy(), nil
	case Pattern:
		return NewPatternStrategy(positions)
	default:
		return nil, fmt.Errorf("unknown noise strategy %q", name)
	}
}

func flip(word format.Bits, pos int) {
	word[pos-1] ^= 1
}
