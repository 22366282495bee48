package palz

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fabiofdsantos/palz/util"
)

// Verification is the outcome of VerifyFile.
type Verification struct {
	Path       string
	RoundTrip  bool   // a plain file was encoded and decoded again
	Digest     uint64 // xxhash of the plain or decoded content
	Size       int64  // plain content size
	Compressed int64  // container size
	Stats      Stats
}

// VerifyFile checks path without writing anything. A .palz file must decode
// cleanly. Any other file is encoded in memory, decoded again and the
// digests of both plain texts must match.
func VerifyFile(path string, dict *Dictionary) (Verification, error) {
	v := Verification{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	container := data
	if !util.IsDotPalz(path) {
		v.RoundTrip = true
		var buf bytes.Buffer
		if _, err := Encode(data, &buf); err != nil {
			return v, err
		}
		container = buf.Bytes()
	}
	v.Compressed = int64(len(container))

	h := xxhash.New()
	var plain int64
	counter := writeCounter{w: h, n: &plain}
	v.Stats, err = Decode(bytes.NewReader(container), counter, dict)
	if err != nil {
		return v, err
	}
	v.Digest = h.Sum64()
	v.Size = plain

	if v.RoundTrip {
		if want := xxhash.Sum64(data); want != v.Digest {
			return v, fmt.Errorf("round trip mismatch: digest %016x, want %016x", v.Digest, want)
		}
	}
	return v, nil
}

type writeCounter struct {
	w io.Writer
	n *int64
}

func (c writeCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	*c.n += int64(n)
	return n, err
}
