package main

import (
	"context"
	"flag"
	"fmt"
	"mintworks/config"
	"mintworks/experiments"
	"mintworks/game"
	"mintworks/snapshot"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("mintworks", flag.ExitOnError)
	fs.String("config", "", "Path to a YAML run config")
	fs.Int("games", 0, "Number of games to play (overrides config)")
	fs.Uint64("seed", 0, "Seed of the first game (overrides config)")
	fs.String("out", "", "Directory for CSV records (overrides config)")
	fs.String("snapshot", "", "Write the final snapshot of the last game here (zstd)")
	return fs
}

// overrides applies the flags set on the command line on top of cfg.
func overrides(fs *flag.FlagSet, cfg config.Config) config.Config {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "games":
			cfg.Games = v.(int)
		case "seed":
			cfg.Seed = v.(uint64)
		case "out":
			cfg.Output.Dir = v.(string)
		case "snapshot":
			cfg.Output.Snapshot = v.(string)
		}
	})
	return cfg
}

func main() {
	fs := newFlagSet()
	fs.Parse(os.Args[1:])

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if path := fs.Lookup("config").Value.String(); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	cfg = overrides(fs, cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	game.FavorLargeNeighbourhood = cfg.FavorLargeNeighbourhood

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	report, err := experiments.Run(ctx, cfg, log.Logger)
	if err != nil {
		return err
	}

	dir, err := experiments.Store(report, cfg.Output.Dir, "batch")
	if err != nil {
		return err
	}
	log.Info().Msgf("stored records in %s", dir)

	for _, s := range report.Seats {
		fmt.Printf("%10s: %d/%d wins\n", s.Label, s.Wins, s.Games)
	}

	if cfg.Output.Snapshot == "" {
		return nil
	}
	f, err := os.Create(cfg.Output.Snapshot)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := snapshot.Write(f, report.Last); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	log.Info().Msgf("stored final snapshot in %s", cfg.Output.Snapshot)
	return nil
}
