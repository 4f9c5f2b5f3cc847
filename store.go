package msdocs

import "context"

// StoreWriter accumulates records during a build and persists them in bulk.
// The write side is intentionally read-free: content staged with Put cannot
// be read back, only saved. Open a StoreReader on the saved file instead.
// Implementations are not safe for concurrent use; the build pipeline is the
// sole writer.
type StoreWriter interface {
	// Put stages content under name. The last write for a given name wins.
	Put(name, content string) error

	// Len reports the number of staged records.
	Len() int

	// Save persists all staged records to path, replacing any existing file.
	Save(ctx context.Context, path string) error
}

// StoreReader provides read-only access to a persisted store.
type StoreReader interface {
	// Get returns the decompressed content stored under name.
	// Returns ENOTFOUND if the name is not present.
	Get(ctx context.Context, name string) (string, error)

	// Keys returns every stored symbol name.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying file handle.
	Close() error
}
