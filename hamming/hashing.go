package hamming

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest is the hex SHA3-256 of a payload, logged on both sides so a round trip can be compared by eye.
func Digest(payload []byte) string {
	sum := sha3.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
