package encoding

import (
	"fmt"
	"strings"

	"github.com/harlequix/hamming3126/internal/format"
)

// ParseWord reads a 31 character token of '0' and '1'.
func ParseWord(token string) (format.Bits, error) {
	if len(token) != WordLen {
		return nil, fmt.Errorf("%w: token has %d characters, want %d", ErrMalformedWord, len(token), WordLen)
	}
	word := make(format.Bits, WordLen)
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case format.ZERO:
			word[i] = 0
		case format.ONE:
			word[i] = 1
		default:
			return nil, fmt.Errorf("%w: character %q at offset %d is not binary", ErrMalformedWord, token[i], i)
		}
	}
	return word, nil
}

func FormatWord(word format.Bits) string {
	return word.String()
}

func DecodeWord(token string) (format.Bits, Status, error) {
	word, err := ParseWord(token)
	if err != nil {
		return nil, Status{}, err
	}
	return DecodeBlock(word)
}

// JoinWords renders codewords as tokens separated by a single space.
func JoinWords(words []format.Bits) string {
	var sb strings.Builder
	if len(words) > 0 {
		sb.Grow(len(words) * (WordLen + 1))
	}
	for i, word := range words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatWord(word))
	}
	return sb.String()
}

// SplitWords splits on any whitespace.
func SplitWords(text string) []string {
	return strings.Fields(text)
}
