package extract

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/msdocs"
)

// Builder orchestrates extraction across the configured docset subpaths and
// feeds every record into the store.
type Builder struct {
	Extractor *Extractor
	Store     msdocs.StoreWriter
	Docsets   []string
	Logger    *slog.Logger
}

// Build extracts every docset under root into the store. The last write for
// a given name wins; an overwrite that changes content is reported at debug
// level. Zero records across all docsets is not an error.
func (b *Builder) Build(ctx context.Context, root string) (Stats, error) {
	logger := b.logger()

	// Content hashes per name make silent last-write-wins collisions
	// visible in the logs.
	hashes := make(map[string]uint64)
	emit := func(rec *msdocs.Record) {
		hash := xxhash.Sum64String(rec.Content)
		if prev, ok := hashes[rec.Name]; ok && prev != hash {
			logger.Debug("duplicate name overwritten with different content", "name", rec.Name)
		}
		hashes[rec.Name] = hash

		if err := b.Store.Put(rec.Name, rec.Content); err != nil {
			logger.Debug("failed to store record", "name", rec.Name, "error", msdocs.ErrorMessage(err))
		}
	}

	var total Stats
	for _, docset := range b.Docsets {
		dir := filepath.Join(root, docset)
		logger.Info("parsing", "dir", dir)

		stats, err := b.Extractor.ExtractDir(ctx, dir, emit)
		if err != nil {
			return total, err
		}
		total.add(stats)

		logger.Info("parsing completed", "dir", dir, "files", stats.Files, "parsed", stats.Parsed, "skipped", stats.Skipped)
	}
	return total, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
