package hamming

import (
	"fmt"
	"time"

	"github.com/harlequix/hamming3126/internal/decoding"
)

// Report summarises one encode, decode or check run.
type Report struct {
	Input       string
	Output      string
	Words       int
	Bytes       int
	Digest      string
	Corrections []decoding.Correction
	Elapsed     time.Duration
	Config      Config
}

func newReport(config Config) *Report {
	return &Report{Config: config}
}

func (self *Report) Corrected() int {
	return len(self.Corrections)
}

func (self *Report) String() string {
	return fmt.Sprintf("%d words, %d corrected, %d bytes, sha3 %s", self.Words, self.Corrected(), self.Bytes, self.Digest)
}
