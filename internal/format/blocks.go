package format

// BlockLen is the number of data bits carried by one codeword.
const BlockLen = 26

type Block struct {
	field Bits
}

func NewBlock() *Block {
	return &Block{
		field: make(Bits, BlockLen),
	}
}

// NewBlockFrom copies up to BlockLen bits; missing trailing bits stay zero.
func NewBlockFrom(bits Bits) *Block {
	block := NewBlock()
	copy(block.field, bits)
	return block
}

// Chunk splits a bit sequence into data blocks, zero padding the last one.
func Chunk(bits Bits) []*Block {
	out := make([]*Block, 0, (len(bits)+BlockLen-1)/BlockLen)
	for index := 0; index < len(bits); index += BlockLen {
		end := index + BlockLen
		if end > len(bits) {
			end = len(bits)
		}
		out = append(out, NewBlockFrom(bits[index:end]))
	}
	return out
}

func (self *Block) Bits() Bits {
	return self.field
}

func (self *Block) String() string {
	return self.field.String()
}
