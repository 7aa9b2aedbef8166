package cmd

import (
	"context"
	"flag"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the cash budget and all open positions" }
func (*summaryCmd) Usage() string {
	return `ppt summary

  Displays the current book: cash budget, invested capital, and a table
  of the open positions.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(book)))
	return subcommands.ExitSuccess
}
