package engine

import (
	"context"
	"fmt"
	"mintworks/game"
	"mintworks/meta"
)

// apply resolves a validated non-pass turn: price it, check funds, pay, then run the
// action's effects and post hooks.
func (e *Engine) apply(ctx context.Context, s *seat, turn game.Turn) error {
	action := turn.Action
	loc := e.locations.ForAction(action.Kind)
	if loc == nil {
		return fmt.Errorf("%s: %w", action.Kind, game.ErrMissingLocation)
	}

	var plan *game.Plan
	cost := 0
	switch action.Kind {
	case game.ActionBuild:
		hp, ok := s.state.Neighbourhood.Plan(action.Plan)
		if !ok {
			return fmt.Errorf("build %s: %w", action.Plan, game.ErrPlanNotInHand)
		}
		p := hp.Plan.Clone()
		plan = &p
		price, ok := loc.MinSlotPrice()
		if !ok {
			return fmt.Errorf("%s: %w", loc.Name, game.ErrNoAvailableSlot)
		}
		delta, err := e.fireAll(ctx, s, game.TriggerBuild, pre, plan)
		if err != nil {
			return err
		}
		cost = price + delta
	case game.ActionSupply:
		p, ok := e.offered(action.Plan)
		if !ok {
			return fmt.Errorf("supply %s: %w", action.Plan, game.ErrPlanNotInSupply)
		}
		plan = &p
		delta, err := e.fireAll(ctx, s, game.TriggerSupply, pre, plan)
		if err != nil {
			return err
		}
		cost = p.Cost + delta
	default:
		price, ok := loc.MinSlotPrice()
		if !ok {
			return fmt.Errorf("%s: %w", loc.Name, game.ErrNoAvailableSlot)
		}
		cost = price
	}

	if action.Kind == game.ActionLotto && e.supply.DeckSize() == 0 {
		return fmt.Errorf("lotto: %w", game.ErrDeckEmpty)
	}
	if s.state.Tokens < cost {
		return fmt.Errorf("%w: %s has %d tokens, %s costs %d", game.ErrInsufficientFunds, s.state.Label, s.state.Tokens, action, cost)
	}

	paid := max(cost, 0)
	if err := loc.UseSlot(paid); err != nil {
		return err
	}
	s.state.Tokens -= paid

	switch action.Kind {
	case game.ActionBuild:
		if _, err := s.state.Neighbourhood.Build(action.Plan, e.locations, len(e.players)); err != nil {
			return err
		}
		if _, err := e.fireAll(ctx, s, game.TriggerBuild, post, plan); err != nil {
			return err
		}
	case game.ActionSupply:
		taken, err := e.supply.Take(action.Plan)
		if err != nil {
			return err
		}
		s.state.Neighbourhood.AddPlan(taken, false)
		if _, err := e.fireAll(ctx, s, game.TriggerSupply, post, plan); err != nil {
			return err
		}
	case game.ActionLotto:
		hp, ok := e.supply.LottoDraw()
		if !ok {
			return fmt.Errorf("lotto: %w", game.ErrDeckEmpty)
		}
		s.state.Neighbourhood.AddPlan(hp.Plan, true)
	case game.ActionProduce:
		s.state.Tokens += meta.PRODUCE_TOKENS
	case game.ActionWholesale:
		s.state.Tokens += meta.WHOLESALE_TOKENS
	case game.ActionLeadership:
		if e.index(action.PlayerName) < 0 {
			return fmt.Errorf("leadership %q: %w", action.PlayerName, game.ErrUnknownPlayer)
		}
		e.startingPlayer = action.PlayerName
		s.state.Tokens += meta.LEADERSHIP_TOKENS
	default:
		return fmt.Errorf("%w: cannot apply %s", game.ErrInvalidTurn, action.Kind)
	}
	return nil
}

func (e *Engine) offered(name string) (game.Plan, bool) {
	for _, p := range e.supply.Offer {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return game.Plan{}, false
}
