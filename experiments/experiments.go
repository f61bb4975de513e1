package experiments

import (
	"context"
	"errors"
	"fmt"
	"mintworks/cards"
	"mintworks/config"
	"mintworks/engine"
	"mintworks/experiments/metrics"
	"mintworks/game"
	"mintworks/player"

	"github.com/rs/zerolog"
)

// Report is the outcome of a batch of games.
type Report struct {
	Games []metrics.GameRecord
	Seats []metrics.SeatRecord
	Last  game.Snapshot // final snapshot of the last game
}

// Content loads and merges the configured packs.
func Content(names []string) ([]game.Plan, game.HookRegistry, error) {
	packs := make([]*cards.Pack, 0, len(names))
	for _, name := range names {
		p, err := cards.Named(name)
		if err != nil {
			return nil, nil, err
		}
		packs = append(packs, p)
	}
	return cards.Combine(packs...)
}

// Run plays cfg.Games games between random players. Game i is seeded with cfg.Seed+i.
// Aborted games are recorded, not returned as errors; only ctx cancellation stops the batch.
func Run(ctx context.Context, cfg config.Config, logger zerolog.Logger) (Report, error) {
	deck, hooks, err := Content(cfg.Packs)
	if err != nil {
		return Report{}, err
	}

	report := Report{}
	wins := map[string]int{}

	logger.Info().Msgf("starting batch of %d games...", cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		e, err := newGame(cfg, deck, hooks, seed, logger)
		if err != nil {
			return report, err
		}

		err = e.Run(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return report, err
		}
		if err != nil {
			logger.Warn().Err(err).Msgf("game %d of %d aborted", i+1, cfg.Games)
		}

		metric := e.Metric()
		report.Games = append(report.Games, metrics.GameRecord{Index: i + 1, GameMetric: metric})
		if metric.Winner != "" {
			wins[metric.Winner]++
		}
		report.Last = e.Snapshot()

		logger.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, metric.Winner)
	}

	for _, p := range cfg.Players {
		report.Seats = append(report.Seats, metrics.SeatRecord{
			Label:   p.Label,
			Age:     p.Age,
			Games:   cfg.Games,
			Wins:    wins[p.Label],
			WinRate: float64(wins[p.Label]) / float64(cfg.Games),
		})
	}

	logger.Info().Msg("completed batch")
	return report, nil
}

func newGame(cfg config.Config, deck []game.Plan, hooks game.HookRegistry, seed uint64, logger zerolog.Logger) (*engine.Engine, error) {
	factory := game.NewTurnFactory(hooks)
	seats := make([]engine.Seat, len(cfg.Players))
	for j, p := range cfg.Players {
		seats[j] = engine.Seat{
			Label:    p.Label,
			Age:      p.Age,
			Strategy: player.NewRandom(p.Label, factory, seed*uint64(len(cfg.Players))+uint64(j)),
		}
	}
	e, err := engine.New(seats, deck,
		engine.WithSeed(seed),
		engine.WithHooks(hooks),
		engine.WithLogger(logger),
		engine.WithCollector(metrics.NewCollector()),
		engine.WithStartingTokens(cfg.StartingTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return e, nil
}

// Store writes the report below dir/name/<timestamp>.
func Store(report Report, dir, name string) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteSeatRecords(report.Seats); err != nil {
		return "", fmt.Errorf("failed to write seat records: %w", err)
	}
	return writer.Dir(), nil
}
