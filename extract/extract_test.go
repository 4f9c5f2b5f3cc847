package extract_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/extract"
	"github.com/fwojciec/msdocs/markdown"
	"github.com/fwojciec/msdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTree writes files (relative path → content) into a new temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func functionPage(name string) string {
	return "---\ntitle: " + name + " function\n---\n\n## -description\n\nDocs for " + name + ".\n"
}

func TestExtractor_ExtractDir(t *testing.T) {
	t.Parallel()

	t.Run("extracts records from every candidate file", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"a/createfile.md":  functionPage("CreateFile"),
			"a/b/readfile.md":  functionPage("ReadFile"),
			"writefile.md":     functionPage("WriteFile"),
			"notes.txt":        "not a source file",
			"_fragment.md":     functionPage("Hidden"),
			"a/_included.md":   functionPage("AlsoHidden"),
			"a/structpage.md":  "---\ntitle: FILE_INFO structure\n---\nbody\n",
			"a/nofrontmat.md":  "# plain markdown\n",
		})

		e := &extract.Extractor{Parser: &markdown.Parser{}, Logger: discard()}

		// emit is documented to run on a single goroutine, so no locking.
		var names []string
		stats, err := e.ExtractDir(context.Background(), root, func(rec *msdocs.Record) {
			names = append(names, rec.Name)
		})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"CreateFile", "ReadFile", "WriteFile"}, names)
		assert.Equal(t, 5, stats.Files)
		assert.Equal(t, 3, stats.Parsed)
		assert.Equal(t, 2, stats.Skipped)
	})

	t.Run("missing directory warns and produces nothing", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{Parser: &markdown.Parser{}, Logger: discard()}

		called := false
		stats, err := e.ExtractDir(context.Background(), filepath.Join(t.TempDir(), "absent"), func(*msdocs.Record) {
			called = true
		})

		require.NoError(t, err)
		assert.False(t, called)
		assert.Zero(t, stats.Files)
		assert.Zero(t, stats.Parsed)
	})

	t.Run("a failing file never aborts the batch", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"good.md": functionPage("CreateFile"),
			"bad.md":  "no front matter at all",
		})

		parser := &mock.RecordParser{
			ParseFileFn: func(path string) (*msdocs.Record, error) {
				if filepath.Base(path) == "bad.md" {
					return nil, msdocs.Errorf(msdocs.EINVALID, "invalid file format in %s", path)
				}
				return &msdocs.Record{Name: "CreateFile", Content: "docs"}, nil
			},
		}
		e := &extract.Extractor{Parser: parser, Concurrency: 2, Logger: discard()}

		var parsed int
		stats, err := e.ExtractDir(context.Background(), root, func(*msdocs.Record) {
			parsed++
		})

		require.NoError(t, err)
		assert.Equal(t, 1, parsed)
		assert.Equal(t, 1, stats.Skipped)
	})
}
