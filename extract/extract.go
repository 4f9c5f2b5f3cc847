// Package extract walks documentation source trees and parses symbol
// records in parallel. It coordinates file discovery, parsing, and delivery
// of records to the store.
package extract

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/msdocs"
)

// sourceExt is the documentation source file extension.
const sourceExt = ".md"

// Stats summarizes one extraction run.
type Stats struct {
	Files   int // candidate files seen
	Parsed  int // records produced
	Skipped int // files that failed parsing
}

func (s *Stats) add(other Stats) {
	s.Files += other.Files
	s.Parsed += other.Parsed
	s.Skipped += other.Skipped
}

// Extractor parses every candidate file under a directory tree using a
// worker pool.
type Extractor struct {
	Parser      msdocs.RecordParser
	Concurrency int
	Logger      *slog.Logger
}

// ExtractDir parses all candidate files under dir and passes each record to
// emit from a single goroutine. Records arrive in no particular order; a
// file that fails to parse contributes nothing. A missing directory yields
// zero records and a warning rather than an error, so multi-root builds
// continue with whichever trees are present.
func (e *Extractor) ExtractDir(ctx context.Context, dir string, emit func(*msdocs.Record)) (Stats, error) {
	logger := e.logger()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("directory could not be found, skipping", "dir", dir)
		logger.Warn("try: git submodule update --recursive")
		return Stats{}, nil
	}

	files, err := candidateFiles(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	recordCh := make(chan *msdocs.Record, concurrency)
	var skipped atomic.Int64

	// Workers parse; the collector below is the sole caller of emit.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, file := range files {
			g.Go(func() error {
				rec, err := e.Parser.ParseFile(file)
				if err != nil {
					// Failures are per-file and observable via the parser's
					// logs; they never abort the pool.
					skipped.Add(1)
					return nil
				}
				select {
				case recordCh <- rec:
				case <-gctx.Done():
				}
				return nil
			})
		}
		_ = g.Wait()
		close(recordCh)
	}()

	stats := Stats{Files: len(files)}
	for rec := range recordCh {
		emit(rec)
		stats.Parsed++
	}
	stats.Skipped = int(skipped.Load())

	return stats, nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// candidateFiles lists documentation sources under dir, excluding
// underscore-prefixed include fragments, which are not standalone symbol
// pages.
func candidateFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if filepath.Ext(name) != sourceExt || strings.HasPrefix(name, "_") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
