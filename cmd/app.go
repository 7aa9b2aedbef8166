// Package cmd implements the ppt CLI to run a simulated portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/eodhd"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the ppt tool; a main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&buyCmd{},
	&sellCmd{},
	&summaryCmd{},
	&symbolsCmd{},
	&analyzeCmd{},
	&infoCmd{},
	&adviseCmd{},
	&openCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "portfolio.json", "Path to the portfolio book file (JSON)")

// store returns the document store of the app book file.
func store() *papertrade.BookFile {
	return papertrade.NewBookFile(*bookFile)
}

// loadBook loads the app book, with a friendly error when no book has
// been created yet.
func loadBook() (*papertrade.Book, error) {
	s := store()
	if !s.Exists() {
		return nil, fmt.Errorf("no book found at %q, create one with 'ppt init'", s.Path())
	}
	return s.Load()
}

// newCatalog returns the instrument catalog the commands trade against.
func newCatalog() papertrade.Catalog {
	return eodhd.NewClient()
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails (e.g. no TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error on stderr and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
