package noise

import (
	"fmt"
	"math/rand"

	"github.com/harlequix/hamming3126/internal/encoding"
	"github.com/harlequix/hamming3126/internal/format"
)

// StrategyPattern flips the same fixed positions in every word it touches.
type StrategyPattern struct {
	positions []int
}

func NewPatternStrategy(positions []int) (*StrategyPattern, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("pattern strategy needs at least one position")
	}
	seen := make(map[int]bool)
	for _, pos := range positions {
		if pos < 1 || pos > encoding.WordLen {
			return nil, fmt.Errorf("position %d outside 1..%d", pos, encoding.WordLen)
		}
		if seen[pos] {
			return nil, fmt.Errorf("position %d repeated", pos)
		}
		seen[pos] = true
	}
	out := make([]int, len(positions))
	copy(out, positions)
	return &StrategyPattern{positions: out}, nil
}

func (self *StrategyPattern) Corrupt(word format.Bits, rng *rand.Rand) []int {
	for _, pos := range self.positions {
		flip(word, pos)
	}
	out := make([]int, len(self.positions))
	copy(out, self.positions)
	return out
}

func (self *StrategyPattern) Name() string {
	return Pattern
}
