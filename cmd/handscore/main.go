package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Evaluate EvaluateCmd      `cmd:"" help:"Evaluate an 8-card hand and list every playable sub-hand"`
	Simulate SimulateCmd      `cmd:"" help:"Evaluate many seeded random hands and summarise them"`
	Table    TableCmd         `cmd:"" help:"Print the base score and multiplier table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handscore"),
		kong.Description("Enumerate and score the poker sub-hands playable from 8 cards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
