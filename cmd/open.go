package cmd

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/pkg/browser"
)

type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open the book document in the browser" }
func (*openCmd) Usage() string {
	return `ppt open

  Opens the raw book document in the default browser.
`
}

func (*openCmd) SetFlags(_ *flag.FlagSet) {}

func (*openCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := store()
	if !s.Exists() {
		return fail(fmt.Errorf("no book found at %q, create one with 'ppt init'", s.Path()))
	}
	path, err := filepath.Abs(s.Path())
	if err != nil {
		return fail(err)
	}
	if err := browser.OpenFile(path); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
