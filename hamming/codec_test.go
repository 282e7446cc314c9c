package hamming

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harlequix/hamming3126/internal/encoding"
	"github.com/harlequix/hamming3126/internal/format"
	log "github.com/harlequix/hamming3126/log"
)

func testCodec(workers int) *Codec {
	config := DefaultConfig()
	config.Workers = workers
	return NewCodec(config)
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "hamming")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestEncodeEmpty(t *testing.T) {
	text, report, err := testCodec(1).Encode(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	tokens := strings.Fields(text)
	// the 32-bit header alone spans two 26-bit blocks
	if len(tokens) != 2 || report.Words != 2 {
		t.Fatalf("got %d words: %q", len(tokens), text)
	}
	for _, token := range tokens {
		if token != strings.Repeat("0", encoding.WordLen) {
			t.Fatalf("expected all zero codeword, got %s", token)
		}
	}
	out, _, err := testCodec(1).Decode(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty payload, got %x", out)
	}
}

func TestEncodeFourBytes(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	text, _, err := testCodec(4).Encode(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(text, " ") != 2 || len(text) != 3*encoding.WordLen+2 {
		t.Fatalf("expected 3 space separated codewords, got %q", text)
	}
	if strings.HasSuffix(text, "\n") {
		t.Fatal("unexpected trailing newline")
	}
	out, report, err := testCodec(4).Decode(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("got %x, want %x", out, payload)
	}
	if report.Corrected() != 0 {
		t.Fatalf("unexpected corrections %v", report.Corrections)
	}
	if report.Digest != Digest(payload) {
		t.Fatal("digest mismatch")
	}
}

func TestRoundTripWorkers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	payload := make([]byte, 4096)
	rng.Read(payload)
	for _, workers := range []int{0, 1, 3, 16} {
		codec := testCodec(workers)
		text, _, err := codec.Encode(context.Background(), payload)
		if err != nil {
			t.Fatal(err)
		}
		out, _, err := codec.Decode(context.Background(), text)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, payload) {
			t.Fatalf("workers=%d: round trip mismatch", workers)
		}
	}
}

func TestDecodeCorrectsOneBitPerWord(t *testing.T) {
	payload := []byte("a Hamming(31,26) code corrects one bit per word")
	text, _, err := testCodec(2).Encode(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	tokens := strings.Fields(text)
	for i, token := range tokens {
		pos := i % encoding.WordLen
		b := []byte(token)
		if b[pos] == '0' {
			b[pos] = '1'
		} else {
			b[pos] = '0'
		}
		tokens[i] = string(b)
	}
	out, report, err := testCodec(2).Decode(context.Background(), strings.Join(tokens, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("got %q", out)
	}
	if report.Corrected() != len(tokens) {
		t.Fatalf("corrected %d of %d words", report.Corrected(), len(tokens))
	}
	for i, c := range report.Corrections {
		if c.Word != i || c.Position != i%encoding.WordLen+1 {
			t.Fatalf("correction %d: %+v", i, c)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	good := strings.Repeat("0", encoding.WordLen)
	cases := []string{
		good + " " + good[:30],
		good + " " + good[:30] + "2",
	}
	for _, text := range cases {
		_, _, err := testCodec(2).Decode(context.Background(), text)
		if !errors.Is(err, encoding.ErrFormat) {
			t.Fatalf("expected ErrFormat, got %v", err)
		}
		if !errors.Is(err, encoding.ErrMalformedWord) {
			t.Fatalf("expected wrapped ErrMalformedWord, got %v", err)
		}
	}
}

func TestDecodeFramingError(t *testing.T) {
	_, _, err := testCodec(1).Decode(context.Background(), "")
	if !errors.Is(err, format.ErrFraming) {
		t.Fatalf("empty input: %v", err)
	}
	text, _, _ := testCodec(1).Encode(context.Background(), []byte("truncate me please"))
	tokens := strings.Fields(text)
	_, _, err = testCodec(1).Decode(context.Background(), strings.Join(tokens[:len(tokens)-2], " "))
	if !errors.Is(err, format.ErrFraming) {
		t.Fatalf("truncated input: %v", err)
	}
}

func TestDecodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	text, _, _ := testCodec(1).Encode(context.Background(), []byte("x"))
	if _, _, err := testCodec(4).Decode(ctx, text); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := tempDir(t)
	path := filepath.Join(dir, "data.bin")
	payload := []byte{0x00, 0xff, 0x10, 0x20, 0x30}
	if err := ioutil.WriteFile(path, payload, 0644); err != nil {
		t.Fatal(err)
	}
	codec := testCodec(2)
	encoded, _, err := codec.EncodeFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if encoded != path+".hamming" {
		t.Fatalf("encoded path %s", encoded)
	}
	decoded, report, err := codec.DecodeFile(context.Background(), encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != path+".dec" {
		t.Fatalf("decoded path %s", decoded)
	}
	if report.Input != encoded || report.Output != decoded {
		t.Fatalf("report paths %+v", report)
	}
	out, err := ioutil.ReadFile(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("got %x", out)
	}
	check, err := codec.Check(context.Background(), encoded)
	if err != nil {
		t.Fatal(err)
	}
	if check.Bytes != len(payload) || check.Output != "" {
		t.Fatalf("check report %+v", check)
	}
}

func TestDecodeFileWritesNothingOnError(t *testing.T) {
	dir := tempDir(t)
	path := filepath.Join(dir, "broken.hamming")
	if err := ioutil.WriteFile(path, []byte(strings.Repeat("0", 30)), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := testCodec(1).DecodeFile(context.Background(), path)
	if !errors.Is(err, encoding.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.dec")); !os.IsNotExist(err) {
		t.Fatalf("output file should not exist: %v", err)
	}
}

func TestPaths(t *testing.T) {
	cases := map[string]string{
		"a.txt.hamming":       "a.txt.dec",
		"a":                   "a.dec",
		"dir.d/file":          "dir.d/file.dec",
		"dir/.hamming":        "dir/.hamming.dec",
		"/tmp/x/report.noisy": "/tmp/x/report.dec",
	}
	for in, want := range cases {
		if got := DecodedPath(in, ".dec"); got != want {
			t.Errorf("DecodedPath(%q) = %q, want %q", in, got, want)
		}
	}
	if EncodedPath("a.txt", ".hamming") != "a.txt.hamming" {
		t.Fatal("encoded suffix not appended")
	}
}

func TestDecodeFileLogsCorrectionOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel("debug")
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel("warn")
	}()

	dir := tempDir(t)
	path := filepath.Join(dir, "one.hamming")
	codec := testCodec(1)
	text, _, err := codec.Encode(context.Background(), []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	b := []byte(text)
	b[4] ^= 1
	if err := ioutil.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := codec.DecodeFile(context.Background(), path); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "corrected bit"); n != 1 {
		t.Fatalf("correction logged %d times:\n%s", n, buf.String())
	}
}
