package encoding

import "errors"

var (
	ErrMalformedWord = errors.New("malformed word")
	ErrFormat        = errors.New("invalid codeword format")
	// ErrSyndromeRange cannot occur with five parity positions over 31 bits.
	ErrSyndromeRange = errors.New("syndrome out of range")
)
