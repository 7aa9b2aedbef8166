package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type infoCmd struct {
	symbol string
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "print the company's business summary" }
func (*infoCmd) Usage() string {
	return `ppt info -s <symbol>

  Prints the business description of the company trading under the symbol.
`
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
}

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return fail(fmt.Errorf("missing symbol, use -s"))
	}
	summary, err := newCatalog().Summary(c.symbol)
	if err != nil {
		return fail(err)
	}
	printMarkdown(fmt.Sprintf("# %s\n\n%s\n", c.symbol, summary))
	return subcommands.ExitSuccess
}
