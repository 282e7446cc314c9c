package noise

import (
	"fmt"
	"math/rand"

	"github.com/harlequix/hamming3126/internal/encoding"
	"github.com/harlequix/hamming3126/internal/format"
	log "github.com/harlequix/hamming3126/log"
)

// Flip records which positions of which word were corrupted.
type Flip struct {
	Word      int
	Positions []int
}

// Injector corrupts encoded codeword text, each word independently with probability Rate.
type Injector struct {
	strategy Strategy
	rate     float64
	rng      *rand.Rand
	log      *log.Logger
}

func NewInjector(strategy Strategy, rate float64, seed int64) (*Injector, error) {
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("rate %.3f outside [0,1]", rate)
	}
	return &Injector{
		strategy: strategy,
		rate:     rate,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log.NewLogger("Noise"),
	}, nil
}

func (self *Injector) CorruptText(text string) (string, []Flip, error) {
	tokens := encoding.SplitWords(text)
	words := make([]format.Bits, len(tokens))
	var flips []Flip
	for index, token := range tokens {
		word, err := encoding.ParseWord(token)
		if err != nil {
			return "", nil, fmt.Errorf("%w: word %d: %w", encoding.ErrFormat, index, err)
		}
		if self.rng.Float64() < self.rate {
			positions := self.strategy.Corrupt(word, self.rng)
			flips = append(flips, Flip{Word: index, Positions: positions})
			self.log.WithField("word", index).WithField("positions", positions).WithField("strategy", self.strategy.Name()).Debug("injected noise")
		}
		words[index] = word
	}
	return encoding.JoinWords(words), flips, nil
}
