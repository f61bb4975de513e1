package engine

import (
	"context"
	"mintworks/game"
	"mintworks/meta"
)

// upkeep ends the round. The game goes to Scoring when a player has reached the star
// threshold or the supply cannot be refilled.
func (e *Engine) upkeep(ctx context.Context) error {
	e.phase = game.UpkeepPhase

	for _, s := range e.players {
		if s.state.Neighbourhood.Stars() >= meta.SCORE_THRESHOLD {
			e.log.Info().Msgf("player %s reached %d stars", s.state.Label, s.state.Neighbourhood.Stars())
			return e.score()
		}
	}
	if !e.supply.Refill() {
		e.log.Info().Msg("plan supply cannot be refilled")
		return e.score()
	}

	for _, st := range []stage{pre, post} {
		for _, s := range e.players {
			if _, err := e.fireAll(ctx, s, game.TriggerUpkeep, st, nil); err != nil {
				return e.abort(err)
			}
		}
	}

	e.locations.EmptyAll()
	for _, s := range e.players {
		s.state.Tokens += meta.UPKEEP_TOKENS
	}

	e.round++
	e.passes = 0
	e.toAct = e.index(e.startingPlayer)
	e.phase = game.DevelopmentPhase
	e.collector.AddRound()
	e.log.Info().Msgf("round %d, player %s is starting", e.round, e.startingPlayer)

	if e.round > meta.MAX_ROUNDS {
		e.log.Warn().Msgf("round limit %d reached", meta.MAX_ROUNDS)
		return e.score()
	}
	return nil
}
