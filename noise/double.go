package noise

import (
	"math/rand"

	"github.com/harlequix/hamming3126/internal/format"
)

// StrategyDouble flips two distinct bits. The decoder will miscorrect these words.
type StrategyDouble struct{}

func NewDoubleStrategy() *StrategyDouble {
	return &StrategyDouble{}
}

func (self *StrategyDouble) Corrupt(word format.Bits, rng *rand.Rand) []int {
	first := rng.Intn(len(word))
	second := rng.Intn(len(word) - 1)
	if second >= first {
		second++
	}
	flip(word, first+1)
	flip(word, second+1)
	return []int{first + 1, second + 1}
}

func (self *StrategyDouble) Name() string {
	return Double
}
