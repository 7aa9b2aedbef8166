package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/papertrade/advisor"
	"github.com/google/subcommands"
)

type adviseCmd struct {
	symbol string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "generate an investment recommendation for a symbol" }
func (*adviseCmd) Usage() string {
	return `ppt advise -s <symbol>

  Asks Gemini for an investment recommendation of the company trading
  under the symbol, and reports the generation time.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return fail(fmt.Errorf("missing symbol, use -s"))
	}

	a, err := advisor.New(ctx)
	if err != nil {
		return fail(err)
	}

	start := time.Now()
	text, err := a.Recommend(ctx, c.symbol)
	if err != nil {
		return fail(err)
	}
	printMarkdown(text)
	fmt.Fprintf(os.Stderr, "The time it took to generate the text is %.2f seconds\n", time.Since(start).Seconds())
	return subcommands.ExitSuccess
}
