package noise

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/harlequix/hamming3126/hamming"
	"github.com/harlequix/hamming3126/internal/encoding"
	"github.com/harlequix/hamming3126/internal/format"
)

func countDiff(a, b format.Bits) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func TestStrategiesFlipPromisedBits(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pattern, err := NewPatternStrategy([]int{1, 31, 9})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		strategy Strategy
		flips    int
	}{
		{NewSingleStrategy(), 1},
		{NewDoubleStrategy(), 2},
		{pattern, 3},
	}
	for _, c := range cases {
		for n := 0; n < 100; n++ {
			word := make(format.Bits, encoding.WordLen)
			orig := word.Clone()
			positions := c.strategy.Corrupt(word, rng)
			if len(positions) != c.flips || countDiff(orig, word) != c.flips {
				t.Fatalf("%s flipped %v", c.strategy.Name(), positions)
			}
			for _, pos := range positions {
				if pos < 1 || pos > encoding.WordLen || word[pos-1] != 1 {
					t.Fatalf("%s reported bad position %d", c.strategy.Name(), pos)
				}
			}
		}
	}
}

func TestNewStrategy(t *testing.T) {
	for _, name := range []string{Single, Double} {
		s, err := NewStrategy(name, nil)
		if err != nil || s.Name() != name {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := NewStrategy(Pattern, nil); err == nil {
		t.Fatal("empty pattern accepted")
	}
	if _, err := NewStrategy(Pattern, []int{0}); err == nil {
		t.Fatal("position 0 accepted")
	}
	if _, err := NewStrategy(Pattern, []int{4, 4}); err == nil {
		t.Fatal("repeated position accepted")
	}
	if _, err := NewStrategy("burst", nil); err == nil {
		t.Fatal("unknown strategy accepted")
	}
}

func TestSingleNoiseIsCorrected(t *testing.T) {
	config := hamming.DefaultConfig()
	config.Workers = 2
	codec := hamming.NewCodec(config)
	payload := []byte("noise is only a problem when there is more than one bit of it")
	text, _, err := codec.Encode(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	injector, err := NewInjector(NewSingleStrategy(), 1, 42)
	if err != nil {
		t.Fatal(err)
	}
	noisy, flips, err := injector.CorruptText(text)
	if err != nil {
		t.Fatal(err)
	}
	if noisy == text || len(flips) != len(encoding.SplitWords(text)) {
		t.Fatalf("expected every word corrupted, got %d flips", len(flips))
	}
	out, report, err := codec.Decode(context.Background(), noisy)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("got %q", out)
	}
	for i, c := range report.Corrections {
		if c.Position != flips[i].Positions[0] {
			t.Fatalf("word %d: corrected %d, flipped %d", c.Word, c.Position, flips[i].Positions[0])
		}
	}
}

func TestInjectorRate(t *testing.T) {
	if _, err := NewInjector(NewSingleStrategy(), 1.5, 0); err == nil {
		t.Fatal("rate above 1 accepted")
	}
	injector, _ := NewInjector(NewSingleStrategy(), 0, 1)
	text := encoding.JoinWords([]format.Bits{make(format.Bits, encoding.WordLen)})
	out, flips, err := injector.CorruptText(text)
	if err != nil {
		t.Fatal(err)
	}
	if out != text || len(flips) != 0 {
		t.Fatal("rate 0 must not change anything")
	}
	if _, _, err := injector.CorruptText("0101"); !errors.Is(err, encoding.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}
