package engine

import (
	"context"
	"fmt"
	"mintworks/game"
)

// Run plays turns until the game is scored, the engine is paused or ctx is cancelled
// between two turns.
func (e *Engine) Run(ctx context.Context) error {
	for e.phase != game.ScoringPhase {
		if e.paused.Load() {
			e.log.Debug().Msgf("paused in round %d", e.round)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Pause stops Run after the turn in progress has been fully applied.
func (e *Engine) Pause() {
	e.paused.Store(true)
}

func (e *Engine) Resume(ctx context.Context) error {
	e.paused.Store(false)
	return e.Run(ctx)
}

// Step plays exactly one Development turn. When it is the last pass of the phase the
// Upkeep phase runs as part of the same step.
func (e *Engine) Step(ctx context.Context) error {
	switch e.phase {
	case game.ScoringPhase:
		return game.ErrGameOver
	case game.UpkeepPhase:
		return e.upkeep(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.BeginTurn(ctx); err != nil {
		return err
	}
	s := e.players[e.toAct]
	label := s.state.Label

	turn, err := s.strategy.TakeTurn(ctx, e.View(label))
	if err != nil {
		return e.abort(fmt.Errorf("take turn %s: %w", label, err))
	}
	if err := e.factory.Validate(e.View(label), turn); err != nil {
		return e.abort(err)
	}
	e.begun = false

	if turn.Action.Kind == game.ActionPass {
		e.passes++
	} else {
		e.passes = 0
		if err := e.apply(ctx, s, turn); err != nil {
			return e.abort(err)
		}
	}
	e.collector.AddTurn(turn.Action.Kind)
	e.log.Debug().Int("round", e.round).Str("player", label).Msgf("played %s", turn.Action)

	if _, err := e.fireAll(ctx, s, game.TriggerTurn, post, nil); err != nil {
		return e.abort(err)
	}

	e.toAct = (e.toAct + 1) % len(e.players)
	if e.passes >= len(e.players) {
		return e.upkeep(ctx)
	}
	return nil
}

// BeginTurn fires the turn.pre hooks of the player to act, at most once per turn. Step
// calls it itself; callers that need the view the actor will decide on call it first.
func (e *Engine) BeginTurn(ctx context.Context) error {
	if e.phase != game.DevelopmentPhase {
		return fmt.Errorf("begin turn in %s phase: %w", e.phase, game.ErrInvalidTurn)
	}
	if e.begun {
		return nil
	}
	if _, err := e.fireAll(ctx, e.players[e.toAct], game.TriggerTurn, pre, nil); err != nil {
		return e.abort(err)
	}
	e.begun = true
	return nil
}

// abort ends the game on a fatal turn error. The error is also returned to the caller.
func (e *Engine) abort(err error) error {
	e.log.Error().Err(err).Int("round", e.round).Msg("invalid turn, ending game")
	e.err = err
	e.finish()
	return err
}

func (e *Engine) score() error {
	result := game.FindWinner(e.states(), e.rng)
	e.result = &result
	e.log.Info().Int("round", e.round).Msgf("game over, winner: %s", result.Winner)
	for _, s := range result.Scores {
		e.log.Debug().Msgf("%10s: stars=%d hood=%d tokens=%d", s.Player, s.Stars, s.Size, s.Tokens)
	}
	e.finish()
	return nil
}

func (e *Engine) finish() {
	e.phase = game.ScoringPhase
	winner := ""
	if e.result != nil {
		winner = e.result.Winner
	}
	e.metric = e.collector.Complete(winner, e.err)
	if e.endHook != nil {
		e.endHook(Outcome{Result: e.result, Err: e.err, Metric: e.metric})
	}
}
