package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/papertrade/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Shell completion; exits early when invoked by the shell, a no-op otherwise.
	completion().Complete("ppt")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	symbolFlags := map[string]complete.Predictor{"s": predict.Something}
	tradeFlags := map[string]complete.Predictor{
		"s":                 predict.Something,
		"q":                 predict.Something,
		"unified-precision": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"book-file":     predict.Files("*.json"),
			"eodhd-api-key": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"init":    {Flags: map[string]complete.Predictor{"budget": predict.Something}},
			"buy":     {Flags: tradeFlags},
			"sell":    {Flags: tradeFlags},
			"summary": {},
			"symbols": {},
			"analyze": {Flags: map[string]complete.Predictor{
				"s":    predict.Something,
				"from": predict.Something,
				"to":   predict.Something,
				"o":    predict.Dirs("*"),
			}},
			"info":   {Flags: symbolFlags},
			"advise": {Flags: symbolFlags},
			"open":   {},
			"topic":  {Args: predict.Set{"readme", "trading", "budget", "analysis"}},
		},
	}
}
