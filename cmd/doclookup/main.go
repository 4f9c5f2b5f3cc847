// Command doclookup resolves a symbol name against a built documentation
// store and prints the stored markdown. It stands in for the interactive
// viewer: raw selections are cleaned the same way, ambiguous matches are
// disambiguated with a terminal prompt, and misses produce a single
// "description not found" message.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/difflib"
	"github.com/fwojciec/msdocs/sqlite"
	"github.com/fwojciec/msdocs/zlib"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Name    string `arg:"" optional:"" help:"Raw symbol selection to look up (e.g. j_CreateFile(hFile))"`
	DB      string `env:"MSDOCS_DB" default:"msdocs.db" help:"Store filepath"`
	NoCache bool   `help:"Re-read the store file on every access"`
	Keys    bool   `help:"List all stored symbol names and exit"`
}

func main() {
	if err := Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the lookup with the given arguments.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doclookup"),
		kong.Description("Looks up API documentation in a built store."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var opts []sqlite.ViewOption
	if cli.NoCache {
		opts = append(opts, sqlite.WithoutCache())
	}
	view, err := sqlite.OpenView(cli.DB, zlib.Codec{}, opts...)
	if err != nil {
		if msdocs.ErrorCode(err) == msdocs.ENOTFOUND {
			fmt.Fprintf(stderr, "Hint: run docbuild first, or set MSDOCS_DB\n")
		}
		return fmt.Errorf("failed to open store at %q: %w", cli.DB, err)
	}
	defer view.Close()

	keys, err := view.Keys(ctx)
	if err != nil {
		return err
	}

	if cli.Keys {
		for _, key := range keys {
			fmt.Fprintln(stdout, key)
		}
		return nil
	}

	name := msdocs.CleanSelection(cli.Name)
	if name == "" {
		fmt.Fprintln(stdout, "invalid selection")
		return nil
	}

	resolver := msdocs.NewResolver(keys, &difflib.Matcher{}, &terminalPicker{in: stdin, out: stderr})
	key, err := resolver.Resolve(name)
	if err != nil {
		if msdocs.ErrorCode(err) == msdocs.ENOTFOUND {
			fmt.Fprintln(stdout, "description not found")
			return nil
		}
		return err
	}

	content, err := view.Get(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, content)
	return nil
}

var _ msdocs.Picker = (*terminalPicker)(nil)

// terminalPicker prompts for a single choice with a numbered list. Empty or
// unparseable input cancels the selection.
type terminalPicker struct {
	in  io.Reader
	out io.Writer
}

func (p *terminalPicker) Pick(options []string) (int, error) {
	fmt.Fprintln(p.out, "Select API:")
	for i, option := range options {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, option)
	}
	fmt.Fprint(p.out, "> ")

	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		return msdocs.PickCanceled, nil
	}

	var choice int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &choice); err != nil {
		return msdocs.PickCanceled, nil
	}
	if choice < 1 || choice > len(options) {
		return msdocs.PickCanceled, nil
	}
	return choice - 1, nil
}
