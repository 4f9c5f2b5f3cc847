package sqlite

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/msdocs"
)

// Compile-time interface verification.
var _ msdocs.StoreWriter = (*Store)(nil)

// Store is the write side of the documentation store. It compresses content
// as it is staged and persists everything in a single transaction. Staged
// content cannot be read back; open a View on the saved file instead.
// Not safe for concurrent use.
type Store struct {
	codec msdocs.Codec
	data  map[string][]byte
}

// NewStore creates an empty Store using codec for value compression.
func NewStore(codec msdocs.Codec) *Store {
	return &Store{
		codec: codec,
		data:  make(map[string][]byte),
	}
}

// Put compresses and stages content under name. The last write for a given
// name wins.
func (s *Store) Put(name, content string) error {
	if name == "" {
		return msdocs.Errorf(msdocs.EINVALID, "record name required")
	}
	compressed, err := s.codec.Compress([]byte(content))
	if err != nil {
		return msdocs.Errorf(msdocs.EINTERNAL, "failed to compress %q: %v", name, err)
	}
	s.data[name] = compressed
	return nil
}

// Len reports the number of staged records.
func (s *Store) Len() int {
	return len(s.data)
}

// Save writes all staged records to a new store file at path, replacing any
// existing file.
func (s *Store) Save(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing store: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE docs (
			name TEXT PRIMARY KEY,
			content BLOB NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO docs (name, content) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for name, content := range s.data {
		if _, err := stmt.ExecContext(ctx, name, content); err != nil {
			return fmt.Errorf("failed to insert %q: %w", name, err)
		}
	}

	return tx.Commit()
}
