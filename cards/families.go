package cards

import (
	"fmt"
	"mintworks/game"
)

// family builds the hooks of one parameterised card behaviour.
type family func(spec HookSpec) (game.Hooks, error)

var families = map[string]family{
	"upkeep_tokens":              upkeepTokens,
	"upkeep_tokens_per_building": upkeepTokensPerBuilding,
	"upkeep_tokens_all":          upkeepTokensAll,
	"upkeep_tokens_all_other":    upkeepTokensAllOther,
	"exhibit":                    exhibit,
	"coop":                       coop,
	"build_discount":             buildDiscount,
	"supply_discount":            supplyDiscount,
	"auto_build":                 autoBuild,
	"stars_per_type":             starsPerType,
	"stars_per_plan":             starsPerPlan,
	"stars_per_building":         starsPerBuilding,
	"deed":                       deed,
}

func pre(trigger game.Trigger, fn game.HookFunc) game.Hooks {
	return game.Hooks{trigger: {Pre: fn}}
}

func post(trigger game.Trigger, fn game.HookFunc) game.Hooks {
	return game.Hooks{trigger: {Post: fn}}
}

func upkeepTokens(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerUpkeep, func(h *game.HookContext) (game.Effect, error) {
		h.Player.Tokens += spec.Amount
		return nil, nil
	}), nil
}

func upkeepTokensPerBuilding(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerUpkeep, func(h *game.HookContext) (game.Effect, error) {
		h.Player.Tokens += spec.Amount * len(h.Player.Neighbourhood.Buildings)
		return nil, nil
	}), nil
}

func upkeepTokensAll(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerUpkeep, func(h *game.HookContext) (game.Effect, error) {
		return game.TokensAll{Tokens: spec.Amount}, nil
	}), nil
}

func upkeepTokensAllOther(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerUpkeep, func(h *game.HookContext) (game.Effect, error) {
		return game.TokensAllOther{Tokens: spec.Amount, Except: h.Player.Label}, nil
	}), nil
}

// exhibit adds a token to the building each upkeep; every stored token is a star.
func exhibit(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerUpkeep, func(h *game.HookContext) (game.Effect, error) {
		h.Building.State.Counter++
		h.Building.AdditionalStars = h.Building.State.Counter * spec.Amount
		return nil, nil
	}), nil
}

func coop(spec HookSpec) (game.Hooks, error) {
	return game.Hooks{game.TriggerUpkeep: {
		Pre: func(h *game.HookContext) (game.Effect, error) {
			h.Player.Tokens += spec.Amount
			return nil, nil
		},
		Post: func(h *game.HookContext) (game.Effect, error) {
			return game.SelectPlayer{Tokens: spec.Amount}, nil
		},
	}}, nil
}

func buildDiscount(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerBuild, func(h *game.HookContext) (game.Effect, error) {
		return game.AdjustCost{Delta: -spec.Amount}, nil
	}), nil
}

// supplyDiscount never takes a plan below a price of one.
func supplyDiscount(spec HookSpec) (game.Hooks, error) {
	return pre(game.TriggerSupply, func(h *game.HookContext) (game.Effect, error) {
		if h.Plan == nil {
			return game.AdjustCost{Delta: -spec.Amount}, nil
		}
		delta := -spec.Amount
		if h.Plan.Cost+delta < 1 {
			delta = min(0, 1-h.Plan.Cost)
		}
		return game.AdjustCost{Delta: delta}, nil
	}), nil
}

func autoBuild(HookSpec) (game.Hooks, error) {
	return post(game.TriggerSupply, func(h *game.HookContext) (game.Effect, error) {
		return game.AutoBuild{}, nil
	}), nil
}

func starsPerType(spec HookSpec) (game.Hooks, error) {
	pt, ok := planTypes[spec.Type]
	if !ok {
		return nil, fmt.Errorf("stars_per_type: %w: %q", ErrUnknownType, spec.Type)
	}
	return post(game.TriggerTurn, func(h *game.HookContext) (game.Effect, error) {
		h.Building.AdditionalStars = spec.Amount * h.Player.Neighbourhood.TypeCount(pt)
		return nil, nil
	}), nil
}

func starsPerPlan(spec HookSpec) (game.Hooks, error) {
	return post(game.TriggerTurn, func(h *game.HookContext) (game.Effect, error) {
		h.Building.AdditionalStars = spec.Amount * len(h.Player.Neighbourhood.Plans)
		return nil, nil
	}), nil
}

func starsPerBuilding(spec HookSpec) (game.Hooks, error) {
	return post(game.TriggerTurn, func(h *game.HookContext) (game.Effect, error) {
		h.Building.AdditionalStars = spec.Amount * len(h.Player.Neighbourhood.Buildings)
		return nil, nil
	}), nil
}

// deed makes the owner collect tokens at upkeep when someone used the linked location.
func deed(spec HookSpec) (game.Hooks, error) {
	find := func(h *game.HookContext) (*game.Location, error) {
		l := h.Locations.Find(h.Building.Location)
		if l == nil {
			return nil, fmt.Errorf("deed %s: %w: %q", h.Building.Name, game.ErrMissingLocation, h.Building.Location)
		}
		return l, nil
	}
	return game.Hooks{
		game.TriggerUpkeep: {Pre: func(h *game.HookContext) (game.Effect, error) {
			l, err := find(h)
			if err != nil {
				return nil, err
			}
			if !l.Available() {
				h.Player.Tokens += spec.Amount
			}
			return nil, nil
		}},
		game.TriggerBuild: {Post: func(h *game.HookContext) (game.Effect, error) {
			l, err := find(h)
			if err != nil {
				return nil, err
			}
			if !l.IsOpen() {
				l.Open(h.NumPlayers)
			}
			return nil, nil
		}},
	}, nil
}
