package mock

import (
	"context"

	"github.com/fwojciec/msdocs"
)

var _ msdocs.StoreWriter = (*StoreWriter)(nil)

// StoreWriter is a mock implementation of msdocs.StoreWriter.
type StoreWriter struct {
	PutFn  func(name, content string) error
	LenFn  func() int
	SaveFn func(ctx context.Context, path string) error
}

func (s *StoreWriter) Put(name, content string) error {
	return s.PutFn(name, content)
}

func (s *StoreWriter) Len() int {
	return s.LenFn()
}

func (s *StoreWriter) Save(ctx context.Context, path string) error {
	return s.SaveFn(ctx, path)
}

var _ msdocs.Codec = (*Codec)(nil)

// Codec is a mock implementation of msdocs.Codec.
type Codec struct {
	CompressFn   func(data []byte) ([]byte, error)
	DecompressFn func(data []byte) ([]byte, error)
}

func (c *Codec) Compress(data []byte) ([]byte, error) {
	return c.CompressFn(data)
}

func (c *Codec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressFn(data)
}
