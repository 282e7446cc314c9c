package hamming

import (
	"path/filepath"
	"strings"
)

// EncodedPath appends the encoded suffix: a.txt -> a.txt.hamming.
func EncodedPath(path, suffix string) string {
	return path + suffix
}

// DecodedPath replaces the last extension: a.txt.hamming -> a.txt.dec, a -> a.dec.
func DecodedPath(path, ext string) string {
	base := filepath.Base(path)
	old := filepath.Ext(base)
	if old == base {
		old = ""
	}
	return strings.TrimSuffix(path, old) + ext
}
