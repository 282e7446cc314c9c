package hamming

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/harlequix/hamming3126/internal/decoding"
	"github.com/harlequix/hamming3126/internal/encoding"
	"github.com/harlequix/hamming3126/internal/format"
	log "github.com/harlequix/hamming3126/log"
)

// Codec runs the whole-file Hamming(31,26) pipelines.
type Codec struct {
	config Config
	logger *log.Logger
}

func NewCodec(config Config) *Codec {
	return &Codec{
		config: config,
		logger: log.NewLogger("Codec"),
	}
}

// New builds a Codec from the viper-backed configuration with the non-zero
// fields of override applied on top.
func New(override Config) (*Codec, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	config, err = config.Merge(override)
	if err != nil {
		return nil, err
	}
	return NewCodec(config), nil
}

func (self *Codec) Config() Config {
	return self.config
}

// Encode frames the payload, encodes it block by block and returns the
// space separated codeword text.
func (self *Codec) Encode(ctx context.Context, payload []byte) (string, *Report, error) {
	start := time.Now()
	report := newReport(self.config)
	bits, err := format.Frame(payload)
	if err != nil {
		return "", report, err
	}
	blocks := format.Chunk(bits)
	words := make([]format.Bits, len(blocks))
	err = self.dispatch(ctx, len(blocks), func(index int) error {
		word, err := encoding.EncodeBlock(blocks[index].Bits())
		if err != nil {
			return fmt.Errorf("block %d: %w", index, err)
		}
		words[index] = word
		return nil
	})
	if err != nil {
		return "", report, err
	}
	report.Words = len(words)
	report.Bytes = len(payload)
	report.Digest = Digest(payload)
	report.Elapsed = time.Since(start)
	self.logger.WithField("words", report.Words).WithField("bytes", report.Bytes).WithField("sha3", report.Digest).Debug("encoded payload")
	return encoding.JoinWords(words), report, nil
}

// Decode parses whitespace separated codewords, corrects single bit errors and
// returns the original payload.
func (self *Codec) Decode(ctx context.Context, text string) ([]byte, *Report, error) {
	start := time.Now()
	report := newReport(self.config)
	tokens := encoding.SplitWords(text)
	data := make([]format.Bits, len(tokens))
	statuses := make([]encoding.Status, len(tokens))
	err := self.dispatch(ctx, len(tokens), func(index int) error {
		block, status, err := encoding.DecodeWord(tokens[index])
		if errors.Is(err, encoding.ErrMalformedWord) {
			return fmt.Errorf("%w: word %d: %w", encoding.ErrFormat, index, err)
		}
		if err != nil {
			return fmt.Errorf("word %d: %w", index, err)
		}
		data[index] = block
		statuses[index] = status
		return nil
	})
	if err != nil {
		return nil, report, err
	}

	decoder := decoding.NewDecoder(len(tokens))
	for index := range tokens {
		if err := decoder.SetBlock(index, data[index], statuses[index]); err != nil {
			return nil, report, err
		}
	}
	payload, err := decoder.Payload()
	report.Words = len(tokens)
	report.Corrections = decoder.Corrections()
	if err != nil {
		return nil, report, err
	}
	report.Bytes = len(payload)
	report.Digest = Digest(payload)
	report.Elapsed = time.Since(start)
	self.logger.WithField("words", report.Words).WithField("corrected", report.Corrected()).WithField("sha3", report.Digest).Debug("decoded payload")
	return payload, report, nil
}

// EncodeFile writes path + EncodedSuffix and returns the output path.
func (self *Codec) EncodeFile(ctx context.Context, path string) (string, *Report, error) {
	payload, err := ioutil.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	text, report, err := self.Encode(ctx, payload)
	report.Input = path
	if err != nil {
		return "", report, fmt.Errorf("encoding %s: %w", path, err)
	}
	out := EncodedPath(path, self.config.EncodedSuffix)
	if err := ioutil.WriteFile(out, []byte(text), 0644); err != nil {
		return "", report, err
	}
	report.Output = out
	self.logger.WithField("input", path).WithField("output", out).Info("encoded file")
	return out, report, nil
}

// DecodeFile writes path with its extension replaced by DecodedExt. Nothing is
// written when decoding fails.
func (self *Codec) DecodeFile(ctx context.Context, path string) (string, *Report, error) {
	text, err := ioutil.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	payload, report, err := self.Decode(ctx, string(text))
	report.Input = path
	if err != nil {
		return "", report, fmt.Errorf("decoding %s: %w", path, err)
	}
	out := DecodedPath(path, self.config.DecodedExt)
	if err := ioutil.WriteFile(out, payload, 0644); err != nil {
		return "", report, err
	}
	report.Output = out
	self.logger.WithField("input", path).WithField("output", out).Info("decoded file")
	return out, report, nil
}

// Check decodes an encoded file without writing anything.
func (self *Codec) Check(ctx context.Context, path string) (*Report, error) {
	text, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	_, report, err := self.Decode(ctx, string(text))
	report.Input = path
	if err != nil {
		return report, fmt.Errorf("checking %s: %w", path, err)
	}
	return report, nil
}
