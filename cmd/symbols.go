package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list the tradable instrument universe" }
func (*symbolsCmd) Usage() string {
	return `ppt symbols

  Lists every symbol that can be traded, one wrapped paragraph.
`
}

func (*symbolsCmd) SetFlags(_ *flag.FlagSet) {}

func (*symbolsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols, err := newCatalog().Symbols()
	if err != nil {
		return fail(err)
	}

	// wrap at ~70 columns
	line := 0
	var b strings.Builder
	for _, s := range symbols {
		if line+len(s)+1 > 70 {
			b.WriteByte('\n')
			line = 0
		} else if line > 0 {
			b.WriteByte(' ')
			line++
		}
		b.WriteString(s)
		line += len(s)
	}
	fmt.Println(b.String())
	return subcommands.ExitSuccess
}
