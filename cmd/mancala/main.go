package main

import (
	"os"
	"time"

	"mancala/experiments"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Verbose bool             `help:"Enable debug logging"`

	Match      MatchCmd      `cmd:"" help:"Run a self-play match between two agents"`
	Experiment ExperimentCmd `cmd:"" help:"Run a canned experiment and write CSV records"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mancala"),
		kong.Description("Mancala engine with minimax and alpha-beta self-play"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type ExperimentCmd struct {
	Name string `arg:"" enum:"pruning,depth" help:"Experiment to run (pruning or depth)"`
}

func (c *ExperimentCmd) Run() error {
	if c.Name == "pruning" {
		return experiments.RunPruningExperiment()
	}
	return experiments.RunDepthExperiment()
}
