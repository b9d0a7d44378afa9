// Command bt is the Bank-Tracker dashboard CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/CsikSzabi04/Bank-Tracker/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: Complete returns immediately when not
	// invoked by the shell's completion machinery.
	completion().Complete("bt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	rangeFlag := predict.Set{"week", "month", "year", "all"}
	categoryFlag := predict.Set(banktracker.Categories)
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"refresh":   {},
			"assets":    {Flags: map[string]complete.Predictor{"q": predict.Something}},
			"show":      {},
			"add":       {Flags: map[string]complete.Predictor{"id": predict.Something, "q": predict.Something}},
			"portfolio": {Flags: map[string]complete.Predictor{"clear": predict.Nothing}},
			"income":    {Flags: map[string]complete.Predictor{"a": predict.Something, "d": predict.Something, "c": categoryFlag}},
			"expense":   {Flags: map[string]complete.Predictor{"a": predict.Something, "d": predict.Something, "c": categoryFlag}},
			"tx":        {Flags: map[string]complete.Predictor{"r": rangeFlag, "id": predict.Something, "clear": predict.Nothing}},
			"summary":   {Flags: map[string]complete.Predictor{"r": rangeFlag}},
			"topic":     {},
			"assist":    {},
		},
		Flags: map[string]complete.Predictor{
			"data":        predict.Dirs("*"),
			"cmc-api-key": predict.Something,
		},
	}
}
