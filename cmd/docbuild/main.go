// Command docbuild builds the offline API documentation store from one or
// more Microsoft docs source trees.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/msdocs/extract"
	"github.com/fwojciec/msdocs/markdown"
	msdocsslog "github.com/fwojciec/msdocs/slog"
	"github.com/fwojciec/msdocs/sqlite"
	"github.com/fwojciec/msdocs/zlib"
)

// docsets are the source subpaths scanned under the root directory.
var docsets = []string{
	"sdk-api/sdk-api-src/content",
	"windows-driver-docs-ddi/wdk-ddi-src/content",
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DirPath string `arg:"" optional:"" default:"." help:"Directory containing the SDK documentation trees"`
	Log     string `short:"l" help:"Write logs to this file instead of stderr"`
	Debug   bool   `short:"d" help:"Enable debug logging of per-file parse failures"`
	Output  string `short:"o" default:"msdocs.db" help:"Output store filepath"`
	Force   bool   `help:"Keep records with names that fail validation (diagnostic)"`
}

func main() {
	if err := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the builder with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docbuild"),
		kong.Description("Builds the offline API documentation store."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cli, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := sqlite.NewStore(zlib.Codec{})
	builder := &extract.Builder{
		Extractor: &extract.Extractor{
			Parser: msdocsslog.NewLoggingParser(&markdown.Parser{Force: cli.Force}, logger),
			Logger: logger,
		},
		Store:   store,
		Docsets: docsets,
		Logger:  logger,
	}

	logger.Info("starting the parsing")
	stats, err := builder.Build(ctx, cli.DirPath)
	if err != nil {
		return err
	}
	logger.Info("parsing finished", "files", stats.Files, "parsed", stats.Parsed, "skipped", stats.Skipped)

	// Zero records usually means the source submodules are not checked out
	// yet; that is "nothing to do", not a failure.
	if store.Len() == 0 {
		logger.Info("no files were parsed, exiting")
		fmt.Fprintln(stdout, "No documents found; nothing written.")
		return nil
	}

	if err := store.Save(ctx, cli.Output); err != nil {
		return fmt.Errorf("failed to save store to %q: %w", cli.Output, err)
	}
	logger.Info("saved", "path", cli.Output, "records", store.Len())
	fmt.Fprintf(stdout, "Saved %d records to %s\n", store.Len(), cli.Output)
	return nil
}

// newLogger builds the process logger from CLI flags. The returned func
// closes the log file, if any.
func newLogger(cli *CLI, stderr io.Writer) (*slog.Logger, func(), error) {
	w := stderr
	closeFn := func() {}
	if cli.Log != "" {
		f, err := os.Create(cli.Log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cli.Log, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}
