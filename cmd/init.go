package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/papertrade"
	"github.com/google/subcommands"
)

type initCmd struct {
	budget string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new portfolio book with a starting budget" }
func (*initCmd) Usage() string {
	return `ppt init -budget <amount>

  Creates the portfolio book: the given cash budget and a zeroed position
  for every symbol of the tradable universe. Runs at most once; it refuses
  to overwrite an existing book.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "", "Starting cash budget, a non-negative whole amount")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	budget, err := papertrade.ParseBudget(c.budget)
	if err != nil {
		fmt.Println(err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	s := store()
	if s.Exists() {
		return fail(fmt.Errorf("book %q already exists", s.Path()))
	}

	symbols, err := newCatalog().Symbols()
	if err != nil {
		return fail(fmt.Errorf("cannot fetch the tradable universe: %w", err))
	}

	book := papertrade.NewBook(budget, symbols)
	if err := s.Save(book); err != nil {
		return fail(err)
	}

	fmt.Printf("Created %s with a budget of %s over %d symbols\n", s.Path(), book.Cash, len(symbols))
	return subcommands.ExitSuccess
}
