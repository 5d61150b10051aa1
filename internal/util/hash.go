package util

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
)

// HashReader is an io.Reader that accumulates sha256 and total byte count
// in-flight.
type HashReader struct {
	r    io.Reader
	h    hash.Hash
	size int64
}

// NewHashReader wraps r with in-flight sha256 and size tracking.
func NewHashReader(r io.Reader) *HashReader {
	return &HashReader{r: r, h: sha256.New()}
}

func (r *HashReader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	if n > 0 {
		r.h.Write(p[:n])
		r.size += int64(n)
	}
	return
}

// SHA256 returns the hex-encoded sha256 of all bytes read so far.
func (r *HashReader) SHA256() string {
	return hex.EncodeToString(r.h.Sum(nil))
}

// Size returns the total bytes read so far.
func (r *HashReader) Size() int64 { return r.size }
