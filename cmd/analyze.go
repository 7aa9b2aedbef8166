package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/papertrade/chart"
	"github.com/etnz/papertrade/date"
	"github.com/etnz/papertrade/eodhd"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	symbol string
	from   string
	to     string
	outDir string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "render price and daily-return charts for a symbol" }
func (*analyzeCmd) Usage() string {
	return `ppt analyze -s <symbol> [-from <date>] [-to <date>] [-o <dir>]

  Fetches the daily closing prices of a symbol over a date range and
  renders two PNG charts: the closing price and the daily returns.
  The range defaults to the last three months.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
	f.StringVar(&c.from, "from", "", "Start date (YYYY-MM-DD), defaults to 90 days ago")
	f.StringVar(&c.to, "to", "", "End date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.outDir, "o", ".", "Directory to write the chart files into")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return fail(fmt.Errorf("missing symbol, use -s"))
	}

	to := date.Today()
	if c.to != "" {
		var err error
		if to, err = date.Parse(c.to); err != nil {
			return fail(err)
		}
	}
	from := to.Add(-90)
	if c.from != "" {
		var err error
		if from, err = date.Parse(c.from); err != nil {
			return fail(err)
		}
	}
	if to.Before(from) {
		return fail(fmt.Errorf("end date %s is before start date %s", to, from))
	}

	candles, err := eodhd.NewClient().History(c.symbol, from, to)
	if err != nil {
		return fail(err)
	}

	points := make([]chart.Point, len(candles))
	for i, candle := range candles {
		points[i] = chart.Point{Date: candle.Date, Close: candle.Close.InexactFloat64()}
	}

	price, err := chart.Price(c.symbol, points)
	if err != nil {
		return fail(err)
	}
	returns, err := chart.Returns(c.symbol, chart.DailyReturns(points))
	if err != nil {
		return fail(err)
	}

	for name, png := range map[string][]byte{
		fmt.Sprintf("%s_price.png", c.symbol):   price,
		fmt.Sprintf("%s_returns.png", c.symbol): returns,
	} {
		path := filepath.Join(c.outDir, name)
		if err := os.WriteFile(path, png, 0644); err != nil {
			return fail(err)
		}
		fmt.Println("Wrote", path)
	}
	return subcommands.ExitSuccess
}
