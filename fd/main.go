package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/AllenCyhCHAN/financial-dashboard/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and is a no-op in a normal run.
// Install with: COMP_INSTALL=1 fd
func completion() {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{"add", "tx", "account", "invest", "summary", "trends", "breakdown", "rates", "convert", "setup", "export", "import", "clear", "assist"} {
		sub[name] = &complete.Command{}
	}
	sub["topic"] = &complete.Command{
		Args: predict.Set{"readme", "periods", "categories", "currencies", "setup", "backup", "*"},
	}

	fd := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-path": predict.Dirs("*"),
			"currency":  predict.Set{"HKD", "USD"},
		},
	}
	fd.Complete("fd")
}
