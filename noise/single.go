package noise

import (
	"math/rand"

	"github.com/harlequix/hamming3126/internal/format"
)

// StrategySingle flips one uniformly chosen bit. Always correctable.
type StrategySingle struct{}

func NewSingleStrategy() *StrategySingle {
	return &StrategySingle{}
}

func (self *StrategySingle) Corrupt(word format.Bits, rng *rand.Rand) []int {
	pos := rng.Intn(len(word)) + 1
	flip(word, pos)
	return []int{pos}
}

func (self *StrategySingle) Name() string {
	return Single
}
