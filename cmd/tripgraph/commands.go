package main

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/tripgraph/builder"
	"github.com/katalvlaran/tripgraph/config"
	"github.com/katalvlaran/tripgraph/planner"
	"github.com/katalvlaran/tripgraph/timetable"
)

// queryFlags are shared by every command that loads trips.
func queryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "trip file (number;from;to;cost;departure;arrival)",
		},
		&cli.StringFlag{
			Name:  "strategy",
			Usage: "station selection strategy: linear or heap",
		},
	}
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "print the best route for each weight dimension",
		Flags: append(queryFlags(),
			&cli.IntFlag{Name: "from", Usage: "start station ID"},
			&cli.IntFlag{Name: "to", Usage: "finish station ID"},
			&cli.StringSliceFlag{Name: "by", Usage: "weight dimension (cost, time); repeatable"},
			&cli.BoolFlag{Name: "fewest-trips", Usage: "also print the route with the fewest trips"},
		),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			p, err := newPlanner(cfg)
			if err != nil {
				return err
			}
			dims, _ := cfg.DimensionList()

			out := c.App.Writer
			for i, dim := range dims {
				path, err := p.Route(dim, cfg.From, cfg.To)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if !path.Found() {
					log.Warn().Str("dimension", dim.String()).Int("from", cfg.From).Int("to", cfg.To).Msg("No route")
					fmt.Fprintf(out, "no %s route from %d to %d\n", dim, cfg.From, cfg.To)
					continue
				}
				for _, id := range path.Stations {
					fmt.Fprintln(out, id)
				}
				log.Info().
					Str("dimension", dim.String()).
					Int("hops", path.Hops()).
					Int64("weight", path.Weight).
					Msg("Route found")
			}

			if c.Bool("fewest-trips") {
				path, err := p.FewestTrips(cfg.From, cfg.To)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				if path == nil {
					fmt.Fprintf(out, "no route from %d to %d\n", cfg.From, cfg.To)
				}
				for _, id := range path {
					fmt.Fprintln(out, id)
				}
			}

			return nil
		},
	}
}

func reachCommand() *cli.Command {
	return &cli.Command{
		Name:  "reach",
		Usage: "print every station reachable from a start station and the trips needed",
		Flags: append(queryFlags(),
			&cli.IntFlag{Name: "from", Usage: "start station ID"},
			&cli.IntFlag{Name: "max-trips", Usage: "stop after this many trips (0 for no limit)"},
		),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			p, err := newPlanner(cfg)
			if err != nil {
				return err
			}
			res, err := p.Reachable(cfg.From, c.Int("max-trips"))
			if err != nil {
				return err
			}

			out := c.App.Writer
			for _, id := range res.Order {
				fmt.Fprintf(out, "%d;%d\n", id, res.Depth[id])
			}
			log.Info().Int("from", cfg.From).Int("reached", len(res.Order)).Msg("Reachable stations")

			return nil
		},
	}
}

func graphCommand() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "print the collapsed station graph of one weight dimension",
		Flags: append(queryFlags(),
			&cli.StringFlag{Name: "by", Value: "cost", Usage: "weight dimension (cost, time)"},
		),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			dim, err := builder.ParseDimension(c.String("by"))
			if err != nil {
				return err
			}
			p, err := newPlanner(cfg)
			if err != nil {
				return err
			}
			g, err := p.Graph(dim)
			if err != nil {
				return err
			}

			out := c.App.Writer
			for _, e := range g.Edges() {
				fmt.Fprintf(out, "%d;%d;%d\n", e.From, e.To, e.Weight)
			}
			st := g.Stats()
			log.Info().
				Str("dimension", dim.String()).
				Int("stations", st.Stations).
				Int("edges", st.Edges).
				Int64("min_weight", st.MinWeight).
				Int64("max_weight", st.MaxWeight).
				Msg("Graph built")

			return nil
		},
	}
}

// loadConfig merges file, environment and command-line flags, in that order.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv()

	if c.IsSet("data") {
		cfg.Data = c.String("data")
	}
	if c.IsSet("strategy") {
		cfg.Strategy = c.String("strategy")
	}
	if c.IsSet("from") {
		cfg.From = c.Int("from")
	}
	if c.IsSet("to") {
		cfg.To = c.Int("to")
	}
	if c.Command.Name == "route" && c.IsSet("by") {
		cfg.Dimensions = c.StringSlice("by")
	}
	if c.Bool("debug") {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	setupLogging(cfg.Log.Format, cfg.Log.Debug)
	log.Debug().Msg(pretty.Sprint(cfg))

	return cfg, nil
}

// newPlanner reads the trip file named by cfg.
func newPlanner(cfg config.Config) (*planner.Planner, error) {
	trips, err := timetable.ReadFile(cfg.Data)
	if err != nil {
		return nil, err
	}
	strategy, _ := cfg.SearchStrategy()

	return planner.New(trips, planner.WithStrategy(strategy), planner.WithLogger(log.Logger)), nil
}
