package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/tripgraph/config"
)

func main() {
	setupLogging(os.Getenv(config.EnvLogFormat), os.Getenv(config.EnvDebug) == "YES")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// newApp wires every command of the binary.
func newApp() *cli.App {
	return &cli.App{
		Name:        "tripgraph",
		Usage:       "cheapest and fastest routes between two stations",
		Description: "Reads a semicolon-delimited trip file and prints the station IDs of the best routes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "tripgraph.yaml",
				Usage:   "YAML configuration file (ignored when missing)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			routeCommand(),
			reachCommand(),
			graphCommand(),
		},
	}
}

// setupLogging points the global zerolog logger at the console unless JSON
// output is requested, and sets the level.
func setupLogging(format string, debug bool) {
	if format != "json" && format != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
