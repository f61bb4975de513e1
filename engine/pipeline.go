package engine

import (
	"context"
	"fmt"
	"mintworks/game"
)

type stage int

const (
	pre stage = iota
	post
)

func (s stage) String() string {
	if s == pre {
		return "pre"
	}
	return "post"
}

// fireAll runs one stage of a trigger over the seat's buildings in list order and applies
// every returned effect before the next building fires. It returns the summed cost
// adjustment. Buildings added while firing do not fire in the same pass.
func (e *Engine) fireAll(ctx context.Context, s *seat, trigger game.Trigger, st stage, plan *game.Plan) (int, error) {
	delta := 0
	n := len(s.state.Neighbourhood.Buildings)
	for i := 0; i < n && i < len(s.state.Neighbourhood.Buildings); i++ {
		b := &s.state.Neighbourhood.Buildings[i]
		hook := e.hooks.Lookup(b.Name, trigger)
		fn := hook.Pre
		if st == post {
			fn = hook.Post
		}
		if fn == nil {
			continue
		}
		name := b.Name
		eff, err := fn(&game.HookContext{
			Player:     &s.state,
			Building:   b,
			Locations:  e.locations,
			Plan:       plan,
			NumPlayers: len(e.players),
		})
		if err != nil {
			return 0, fmt.Errorf("%s %s.%s hook: %w", name, trigger, st, err)
		}
		d, err := e.applyEffect(ctx, s, trigger, st, plan, eff)
		if err != nil {
			return 0, fmt.Errorf("%s %s.%s hook: %w", name, trigger, st, err)
		}
		delta += d
	}
	return delta, nil
}

// applyEffect resolves one hook result. Cost adjustments are returned, everything else
// takes effect immediately.
func (e *Engine) applyEffect(ctx context.Context, s *seat, trigger game.Trigger, st stage, plan *game.Plan, eff game.Effect) (int, error) {
	switch eff := eff.(type) {
	case nil:
		return 0, nil
	case game.AdjustCost:
		if st != pre || (trigger != game.TriggerBuild && trigger != game.TriggerSupply) {
			return 0, fmt.Errorf("%w: cost adjustment in %s.%s", game.ErrInvalidEffect, trigger, st)
		}
		return eff.Delta, nil
	case game.TokensAll:
		for _, p := range e.players {
			p.state.Tokens += eff.Tokens
		}
		return 0, nil
	case game.TokensAllOther:
		for _, p := range e.players {
			if p.state.Label != eff.Except {
				p.state.Tokens += eff.Tokens
			}
		}
		return 0, nil
	case game.AutoBuild:
		if st != post || trigger != game.TriggerSupply || plan == nil {
			return 0, fmt.Errorf("%w: auto build in %s.%s", game.ErrInvalidEffect, trigger, st)
		}
		_, err := s.state.Neighbourhood.Build(plan.Name, e.locations, len(e.players))
		return 0, err
	case game.SelectPlayer:
		return 0, e.selectPlayer(ctx, s, eff)
	default:
		panic(fmt.Sprintf("unhandled effect %T", eff))
	}
}

func (e *Engine) selectPlayer(ctx context.Context, s *seat, eff game.SelectPlayer) error {
	label, err := s.strategy.SelectPlayerForEffect(ctx, eff, e.labels())
	if err != nil {
		return fmt.Errorf("select player %s: %w", s.state.Label, err)
	}
	i := e.index(label)
	if i < 0 || label == s.state.Label {
		return fmt.Errorf("%w: %q", game.ErrUnknownPlayer, label)
	}
	e.players[i].state.Tokens += eff.Tokens
	e.log.Debug().Str("player", s.state.Label).Msgf("selected %s for %d tokens", label, eff.Tokens)
	return nil
}
