package decoding

import (
	"fmt"

	"github.com/harlequix/hamming3126/internal/encoding"
	"github.com/harlequix/hamming3126/internal/format"
	log "github.com/harlequix/hamming3126/log"
)

// Correction records a single-bit fix applied to one codeword.
type Correction struct {
	Word     int
	Position int
	Parity   bool
}

// Decoder collects corrected data blocks in codeword order and unframes them.
type Decoder struct {
	field       []*format.Block
	set         []bool
	corrections []Correction
	log         *log.Logger
}

func NewDecoder(words int) *Decoder {
	field := make([]*format.Block, words)
	return &Decoder{
		field: field,
		set:   make([]bool, words),
		log:   log.NewLogger("Decoder"),
	}
}

// SetBlock stores the data bits decoded from codeword index.
func (self *Decoder) SetBlock(index int, data format.Bits, status encoding.Status) error {
	if index < 0 || index >= len(self.field) {
		return fmt.Errorf("word index %d out of range [0,%d)", index, len(self.field))
	}
	if len(data) != format.BlockLen {
		return fmt.Errorf("%w: block %d has %d bits", encoding.ErrMalformedWord, index, len(data))
	}
	self.field[index] = format.NewBlockFrom(data)
	self.set[index] = true
	if status.Corrected() {
		self.corrections = append(self.corrections, Correction{
			Word:     index,
			Position: status.Position(),
			Parity:   status.IsParity(),
		})
		self.log.WithField("word", index).WithField("position", status.Position()).Debug("corrected bit")
	}
	return nil
}

func (self *Decoder) Corrections() []Correction {
	return self.corrections
}

// Bits concatenates all data blocks in order.
func (self *Decoder) Bits() format.Bits {
	out := make(format.Bits, 0, len(self.field)*format.BlockLen)
	for _, block := range self.field {
		out = append(out, block.Bits()...)
	}
	return out
}

// Payload unframes the collected bits back into the original bytes.
func (self *Decoder) Payload() ([]byte, error) {
	for index, ok := range self.set {
		if !ok {
			return nil, fmt.Errorf("word %d was never decoded", index)
		}
	}
	return format.Unframe(self.Bits())
}
