// Package zlib provides the store's compression codec backed by
// klauspost/compress.
package zlib

import (
	"bytes"
	"io"

	kzlib "github.com/klauspost/compress/zlib"

	"github.com/fwojciec/msdocs"
)

var _ msdocs.Codec = (*Codec)(nil)

// Codec compresses stored content with zlib.
type Codec struct{}

// Compress returns the zlib-compressed form of data.
func (Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := kzlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (Codec) Decompress(data []byte) ([]byte, error) {
	r, err := kzlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
