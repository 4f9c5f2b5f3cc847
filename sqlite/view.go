package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/fwojciec/msdocs"
)

// Compile-time interface verification.
var _ msdocs.StoreReader = (*View)(nil)

// View is the read side of a saved store. It never mutates the file.
//
// Caching is a constructor-time policy: by default decompressed content and
// the key set are memoized after first read. WithoutCache re-reads the file
// on every access, uniformly for Get and Keys, which trades memory for
// always-fresh reads when the backing file can change between queries.
type View struct {
	db    *sql.DB
	codec msdocs.Codec
	cache bool

	content map[string]string
	keys    []string
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithoutCache disables memoization of content and keys.
func WithoutCache() ViewOption {
	return func(v *View) { v.cache = false }
}

// OpenView opens the store file at path for reading.
// Returns ENOTFOUND if the file does not exist.
func OpenView(path string, codec msdocs.Codec, opts ...ViewOption) (*View, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, msdocs.Errorf(msdocs.ENOTFOUND, "store file %q not found", path)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	v := &View{
		db:      db,
		codec:   codec,
		cache:   true,
		content: make(map[string]string),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Get returns the decompressed content stored under name.
// Returns ENOTFOUND if the name is not present.
func (v *View) Get(ctx context.Context, name string) (string, error) {
	if v.cache {
		if content, ok := v.content[name]; ok {
			return content, nil
		}
	}

	var compressed []byte
	err := v.db.QueryRowContext(ctx, `SELECT content FROM docs WHERE name = ?`, name).Scan(&compressed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", msdocs.Errorf(msdocs.ENOTFOUND, "no description for %q", name)
	}
	if err != nil {
		return "", err
	}

	decompressed, err := v.codec.Decompress(compressed)
	if err != nil {
		return "", msdocs.Errorf(msdocs.EINTERNAL, "failed to decompress %q: %v", name, err)
	}

	content := string(decompressed)
	if v.cache {
		v.content[name] = content
	}
	return content, nil
}

// Keys returns every stored symbol name in lexicographic order.
func (v *View) Keys(ctx context.Context) ([]string, error) {
	if v.cache && v.keys != nil {
		return v.keys, nil
	}

	rows, err := v.db.QueryContext(ctx, `SELECT name FROM docs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		keys = append(keys, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if v.cache {
		v.keys = keys
	}
	return keys, nil
}

// Close releases the underlying database handle.
func (v *View) Close() error {
	return v.db.Close()
}
