package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/etnz/papertrade"
	"github.com/google/subcommands"
)

// --- Buy Command ---

type buyCmd struct {
	symbol           string
	quantity         string
	unifiedPrecision bool
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `ppt buy -s <symbol> -q <shares>

  Buys shares of a symbol at its current reference price. The gross cost
  is debited from the cash budget; an order the budget cannot cover is
  rejected and changes nothing.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
	f.StringVar(&c.quantity, "q", "", "Number of shares to buy")
	f.BoolVar(&c.unifiedPrecision, "unified-precision", false, "Track the cash budget in cents instead of whole units")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shares, err := papertrade.ParseShares(c.quantity)
	if err != nil || shares <= 0 {
		if err == nil {
			err = fmt.Errorf("want a positive share count, got %q", c.quantity)
		}
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	return runTrade(c.symbol, shares, c.unifiedPrecision)
}

// --- Sell Command ---

type sellCmd struct {
	symbol           string
	quantity         string
	unifiedPrecision bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `ppt sell -s <symbol> -q <shares>

  Sells shares of a symbol at its current reference price. The proceeds
  are credited to the cash budget; selling more than is held would short
  the position and is rejected.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
	f.StringVar(&c.quantity, "q", "", "Number of shares to sell")
	f.BoolVar(&c.unifiedPrecision, "unified-precision", false, "Track the cash budget in cents instead of whole units")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shares, err := papertrade.ParseShares(c.quantity)
	if err != nil || shares <= 0 {
		if err == nil {
			err = fmt.Errorf("want a positive share count, got %q", c.quantity)
		}
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	return runTrade(c.symbol, -shares, c.unifiedPrecision)
}

// runTrade loads the book, resolves the current price, executes the
// signed order and saves the book back on acceptance.
func runTrade(symbol string, shares int64, unifiedPrecision bool) subcommands.ExitStatus {
	if symbol == "" {
		return fail(fmt.Errorf("missing symbol, use -s"))
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	book.UnifiedPrecision = unifiedPrecision

	if _, ok := book.Positions[symbol]; !ok {
		return fail(fmt.Errorf("%q is not in the tradable universe, list it with 'ppt symbols'", symbol))
	}

	price, err := newCatalog().Price(symbol)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Current price of %s is %s.\n", symbol, price)
	fmt.Printf("Shorting is not allowed. Your maximal purchase of %s is %d shares.\n", symbol, book.MaxBuyable(price))
	if held := book.Sellable(); len(held) > 0 {
		fmt.Print("You can also sell:")
		for _, sym := range slices.Sorted(maps.Keys(held)) {
			fmt.Printf(" %s (%d)", sym, held[sym])
		}
		fmt.Println()
	}

	verdict := book.Execute(papertrade.Order{Symbol: symbol, Shares: shares, Price: price})
	if verdict != papertrade.Accepted {
		fmt.Printf("This trade is outside of your portfolio limits: %s.\n", verdict)
		return subcommands.ExitFailure
	}

	if err := store().Save(book); err != nil {
		return fail(err)
	}

	pos := book.Positions[symbol]
	fmt.Printf("Done. %s: %d shares, average cost %s, invested %s, cash budget %s.\n",
		symbol, pos.Shares, pos.AverageCost, pos.Invested, book.Cash)
	return subcommands.ExitSuccess
}
